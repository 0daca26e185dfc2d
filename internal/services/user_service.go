package services

import (
	"errors"
	"fmt"

	"github.com/franciscosanchezn/gin-rappers-api/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// MinPasswordLength is the shortest accepted password
const MinPasswordLength = 6

var (
	ErrUserAlreadyExists = errors.New("user_already_exists")
	ErrPasswordMismatch  = errors.New("password confirmation does not match")
	ErrPasswordTooShort  = fmt.Errorf("password must be at least %d characters", MinPasswordLength)
)

// UserService provides methods to look up and register users
type UserService interface {
	// CreateUser validates the password pair, hashes it and stores the user
	CreateUser(user *models.User) error
	// GetUserByEmail retrieves a user by exact email match
	GetUserByEmail(email string) (*models.User, error)
	// GetUserByID retrieves a user by its ID
	GetUserByID(id uint) (*models.User, error)
	// FindOrCreateByEmail returns the user with this email, creating it with the
	// given password pair when absent
	FindOrCreateByEmail(email, password, passwordConfirmation string) (*models.User, bool, error)
	// CountUsers returns the number of stored users
	CountUsers() (int64, error)
}

type userService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) UserService {
	return &userService{db: db}
}

func (s *userService) CreateUser(user *models.User) error {
	if user.Password != user.PasswordConfirmation {
		return ErrPasswordMismatch
	}
	if len(user.Password) < MinPasswordLength {
		return ErrPasswordTooShort
	}

	var existing models.User
	err := s.db.Where("email = ?", user.Email).First(&existing).Error
	if err == nil {
		return ErrUserAlreadyExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("check existing user %s: %w", user.Email, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	user.EncryptedPassword = string(hash)

	return s.db.Create(user).Error
}

func (s *userService) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *userService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindOrCreateByEmail reports whether the user was created by this call.
// Lookup errors other than not-found are returned without creating anything.
func (s *userService) FindOrCreateByEmail(email, password, passwordConfirmation string) (*models.User, bool, error) {
	user, err := s.GetUserByEmail(email)
	if err == nil {
		return user, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("find user %s: %w", email, err)
	}

	user = &models.User{
		Email:                email,
		Password:             password,
		PasswordConfirmation: passwordConfirmation,
	}
	if err := s.CreateUser(user); err != nil {
		return nil, false, fmt.Errorf("create user %s: %w", email, err)
	}
	return user, true, nil
}

func (s *userService) CountUsers() (int64, error) {
	var count int64
	if err := s.db.Model(&models.User{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CheckPassword reports whether password matches the stored hash
func CheckPassword(user *models.User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.EncryptedPassword), []byte(password)) == nil
}
