package services

import (
	"io"
	"testing"

	"github.com/franciscosanchezn/gin-rappers-api/internal/migrations"
	"github.com/franciscosanchezn/gin-rappers-api/internal/models"
	"github.com/franciscosanchezn/gin-rappers-api/internal/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db := testutil.NewTestDB(t)

	quiet := logrus.New()
	quiet.SetOutput(io.Discard)
	migrations.SetLogger(quiet)

	require.NoError(t, migrations.Up(db, migrations.All()...))
	return db
}

func TestCreateUser(t *testing.T) {
	db := setupTestDB(t)
	service := NewUserService(db)

	user := &models.User{Email: "test1@example.com", Password: "password", PasswordConfirmation: "password"}
	require.NoError(t, service.CreateUser(user))

	assert.NotZero(t, user.ID)
	assert.NotEqual(t, "password", user.EncryptedPassword)
	assert.True(t, CheckPassword(user, "password"))
	assert.False(t, CheckPassword(user, "wrong"))

	stored, err := service.GetUserByEmail("test1@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, stored.ID)
	assert.Empty(t, stored.Password, "plain password is never persisted")
	assert.False(t, stored.CreatedAt.IsZero())
}

func TestCreateUserValidation(t *testing.T) {
	testCases := []struct {
		name     string
		user     models.User
		expected error
	}{
		{
			name:     "should reject mismatched confirmation",
			user:     models.User{Email: "a@example.com", Password: "password", PasswordConfirmation: "passw0rd"},
			expected: ErrPasswordMismatch,
		},
		{
			name:     "should reject short password",
			user:     models.User{Email: "b@example.com", Password: "pass", PasswordConfirmation: "pass"},
			expected: ErrPasswordTooShort,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDB(t)
			service := NewUserService(db)

			err := service.CreateUser(&tt.user)

			assert.ErrorIs(t, err, tt.expected)
			count, err := service.CountUsers()
			require.NoError(t, err)
			assert.Zero(t, count)
		})
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	service := NewUserService(db)

	require.NoError(t, service.CreateUser(&models.User{Email: "dup@example.com", Password: "password", PasswordConfirmation: "password"}))
	err := service.CreateUser(&models.User{Email: "dup@example.com", Password: "password", PasswordConfirmation: "password"})

	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestCreateUserReportsLookupFailure(t *testing.T) {
	db := testutil.NewTestDB(t) // no users table
	service := NewUserService(db)

	err := service.CreateUser(&models.User{Email: "test1@example.com", Password: "password", PasswordConfirmation: "password"})

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUserAlreadyExists)
	assert.ErrorContains(t, err, "check existing user test1@example.com")
}

func TestGetUserByEmailNotFound(t *testing.T) {
	db := setupTestDB(t)
	service := NewUserService(db)

	user, err := service.GetUserByEmail("nobody@example.com")

	assert.Nil(t, user)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestFindOrCreateByEmailIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	service := NewUserService(db)

	first, created, err := service.FindOrCreateByEmail("test1@example.com", "password", "password")
	require.NoError(t, err)
	assert.True(t, created)

	for i := 0; i < 3; i++ {
		again, created, err := service.FindOrCreateByEmail("test1@example.com", "password", "password")
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, first.ID, again.ID)
	}

	count, err := service.CountUsers()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	byID, err := service.GetUserByID(first.ID)
	require.NoError(t, err)
	assert.Equal(t, "test1@example.com", byID.Email)
}

func TestFindOrCreateByEmailIgnoresPasswordForExistingUser(t *testing.T) {
	db := setupTestDB(t)
	service := NewUserService(db)

	_, _, err := service.FindOrCreateByEmail("test2@example.com", "password", "password")
	require.NoError(t, err)

	// the pair is only validated on creation
	user, created, err := service.FindOrCreateByEmail("test2@example.com", "x", "y")
	require.NoError(t, err)
	assert.False(t, created)
	assert.True(t, CheckPassword(user, "password"))
}

func TestFindOrCreateByEmailValidationFailure(t *testing.T) {
	db := setupTestDB(t)
	service := NewUserService(db)

	user, created, err := service.FindOrCreateByEmail("test1@example.com", "password", "different")

	assert.Nil(t, user)
	assert.False(t, created)
	assert.ErrorIs(t, err, ErrPasswordMismatch)
	assert.Contains(t, err.Error(), "create user test1@example.com")
}

func TestFindOrCreateByEmailStorageFailure(t *testing.T) {
	db := testutil.NewTestDB(t) // no users table
	service := NewUserService(db)

	user, created, err := service.FindOrCreateByEmail("test1@example.com", "password", "password")

	assert.Nil(t, user)
	assert.False(t, created)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "find user test1@example.com")
}

func TestCreateRapperForUser(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserService(db)
	rappers := NewRapperService(db)

	owner, _, err := users.FindOrCreateByEmail("test2@example.com", "password", "password")
	require.NoError(t, err)

	rapper := &models.Rapper{
		Name:   "DOAX",
		Genre:  "Gangsta Rap",
		Songs:  "Can Code This, Nothing But a Code Thang",
		Awards: 5,
		Price:  "$80/hr",
		Rating: 4.9,
		Image:  "https://example.com/doax.png",
	}
	require.NoError(t, rappers.CreateRapperForUser(owner, rapper))

	assert.NotZero(t, rapper.ID)
	assert.Equal(t, owner.ID, rapper.UserID)

	stored, err := rappers.GetRapperByID(rapper.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.9, stored.Rating)
	assert.Equal(t, "$80/hr", stored.Price)
	assert.Equal(t, owner.ID, stored.UserID)
	assert.False(t, stored.CreatedAt.IsZero())
	assert.False(t, stored.UpdatedAt.IsZero())
}

func TestCreateRapperForUserDuplicates(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserService(db)
	rappers := NewRapperService(db)

	owner, _, err := users.FindOrCreateByEmail("test1@example.com", "password", "password")
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		rapper := &models.Rapper{Name: "Nicod", Genre: "Classical"}
		require.NoError(t, rappers.CreateRapperForUser(owner, rapper))
	}

	owned, err := rappers.GetRappersByUserID(owner.ID)
	require.NoError(t, err)
	require.Len(t, owned, 2)
	assert.Equal(t, owned[0].Name, owned[1].Name)
	assert.NotEqual(t, owned[0].ID, owned[1].ID)
}

func TestCreateRapperForUserRequiresStoredUser(t *testing.T) {
	db := setupTestDB(t)
	rappers := NewRapperService(db)

	assert.ErrorIs(t, rappers.CreateRapperForUser(nil, &models.Rapper{Name: "Nicod"}), ErrUserNotPersisted)
	assert.ErrorIs(t, rappers.CreateRapperForUser(&models.User{Email: "new@example.com"}, &models.Rapper{Name: "Nicod"}), ErrUserNotPersisted)

	count, err := rappers.CountRappers()
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestGetRappersByUserIDScopesToOwner(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserService(db)
	rappers := NewRapperService(db)

	first, _, err := users.FindOrCreateByEmail("test1@example.com", "password", "password")
	require.NoError(t, err)
	second, _, err := users.FindOrCreateByEmail("test2@example.com", "password", "password")
	require.NoError(t, err)

	require.NoError(t, rappers.CreateRapperForUser(first, &models.Rapper{Name: "Charla Mae"}))
	require.NoError(t, rappers.CreateRapperForUser(second, &models.Rapper{Name: "DOAX"}))

	owned, err := rappers.GetRappersByUserID(second.ID)
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, "DOAX", owned[0].Name)

	all, err := rappers.GetAllRappers()
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = rappers.GetRapperByID(999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
