package models

import (
	"time"
)

// User owns zero or more rappers. Password and PasswordConfirmation are only
// read when the user is created; the stored credential is the bcrypt hash.
type User struct {
	ID                   uint      `gorm:"primaryKey"`
	Email                string    `gorm:"uniqueIndex;not null"`
	EncryptedPassword    string    `gorm:"not null"`
	Password             string    `gorm:"-"`
	PasswordConfirmation string    `gorm:"-"`
	CreatedAt            time.Time `gorm:"not null"`
	UpdatedAt            time.Time `gorm:"not null"`

	Rappers []Rapper
}

func (User) TableName() string {
	return "users"
}
