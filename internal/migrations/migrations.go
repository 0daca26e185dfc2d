// Package migrations defines the schema changes of the rappers store.
//
// There is no version bookkeeping: applying a migration whose table already
// exists fails with the store's own error, and the caller decides what to do.
package migrations

import (
	"fmt"

	"github.com/franciscosanchezn/gin-rappers-api/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// SetLogger replaces the package logger
func SetLogger(logger *logrus.Logger) {
	log = logger
}

// Migration is a reversible schema change
type Migration struct {
	Name string
	Up   func(db *gorm.DB) error
	Down func(db *gorm.DB) error
}

// CreateUsers creates the users table that owns rappers.
var CreateUsers = Migration{
	Name: "create_users",
	Up: func(db *gorm.DB) error {
		return db.Migrator().CreateTable(&models.User{})
	},
	Down: func(db *gorm.DB) error {
		return db.Migrator().DropTable(models.User{}.TableName())
	},
}

// CreateRappers creates the rappers table: name, genre, songs, awards, price,
// rating, image and user_id, plus timestamps. No index or foreign key.
var CreateRappers = Migration{
	Name: "create_rappers",
	Up: func(db *gorm.DB) error {
		return db.Migrator().CreateTable(&models.Rapper{})
	},
	Down: func(db *gorm.DB) error {
		return db.Migrator().DropTable(models.Rapper{}.TableName())
	},
}

// All returns every migration in apply order
func All() []Migration {
	return []Migration{CreateUsers, CreateRappers}
}

// Up applies the migrations in order, stopping at the first failure.
// Migrations applied before the failure stay applied.
func Up(db *gorm.DB, migrations ...Migration) error {
	for _, m := range migrations {
		if err := m.Up(db); err != nil {
			log.WithError(err).WithFields(logrus.Fields{
				"migration": m.Name,
				"direction": "up",
			}).Error("Migration failed")
			return fmt.Errorf("migration %s: %w", m.Name, err)
		}
		log.WithFields(logrus.Fields{
			"migration": m.Name,
			"direction": "up",
		}).Info("Migration applied")
	}
	return nil
}

// Down reverts the migrations in reverse order, stopping at the first failure
func Down(db *gorm.DB, migrations ...Migration) error {
	for i := len(migrations) - 1; i >= 0; i-- {
		m := migrations[i]
		if err := m.Down(db); err != nil {
			log.WithError(err).WithFields(logrus.Fields{
				"migration": m.Name,
				"direction": "down",
			}).Error("Rollback failed")
			return fmt.Errorf("rollback %s: %w", m.Name, err)
		}
		log.WithFields(logrus.Fields{
			"migration": m.Name,
			"direction": "down",
		}).Info("Migration reverted")
	}
	return nil
}
