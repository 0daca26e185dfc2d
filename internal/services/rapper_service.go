package services

import (
	"errors"

	"github.com/franciscosanchezn/gin-rappers-api/internal/models"
	"gorm.io/gorm"
)

// ErrUserNotPersisted is returned when a rapper owner has no stored ID
var ErrUserNotPersisted = errors.New("owner must be a stored user")

// RapperService provides methods to interact with the rapper table
type RapperService interface {
	// CreateRapperForUser stores a new rapper owned by user. It never checks for
	// an existing record: calling it twice with the same attributes stores two rows.
	CreateRapperForUser(user *models.User, rapper *models.Rapper) error
	// GetRappersByUserID retrieves the rappers owned by a user
	GetRappersByUserID(userID uint) ([]models.Rapper, error)
	// GetAllRappers retrieves all rappers ordered by ID
	GetAllRappers() ([]models.Rapper, error)
	// GetRapperByID retrieves a rapper by its ID
	GetRapperByID(id uint) (*models.Rapper, error)
	// CountRappers returns the number of stored rappers
	CountRappers() (int64, error)
}

// rapperService is the implementation of the RapperService interface
type rapperService struct {
	db *gorm.DB
}

// NewRapperService creates a new instance of RapperService
func NewRapperService(db *gorm.DB) RapperService {
	return &rapperService{db: db}
}

func (s *rapperService) CreateRapperForUser(user *models.User, rapper *models.Rapper) error {
	if user == nil || user.ID == 0 {
		return ErrUserNotPersisted
	}
	rapper.UserID = user.ID
	return s.db.Create(rapper).Error
}

func (s *rapperService) GetRappersByUserID(userID uint) ([]models.Rapper, error) {
	var rappers []models.Rapper
	if err := s.db.Where("user_id = ?", userID).Order("id").Find(&rappers).Error; err != nil {
		return nil, err
	}
	return rappers, nil
}

func (s *rapperService) GetAllRappers() ([]models.Rapper, error) {
	var rappers []models.Rapper
	if err := s.db.Order("id").Find(&rappers).Error; err != nil {
		return nil, err
	}
	return rappers, nil
}

func (s *rapperService) GetRapperByID(id uint) (*models.Rapper, error) {
	var rapper models.Rapper
	if err := s.db.First(&rapper, id).Error; err != nil {
		return nil, err
	}
	return &rapper, nil
}

func (s *rapperService) CountRappers() (int64, error) {
	var count int64
	if err := s.db.Model(&models.Rapper{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
