package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/franciscosanchezn/gin-rappers-api/internal/config"
	"github.com/franciscosanchezn/gin-rappers-api/internal/database"
	"github.com/franciscosanchezn/gin-rappers-api/internal/migrations"
	"github.com/franciscosanchezn/gin-rappers-api/internal/models"
	"github.com/franciscosanchezn/gin-rappers-api/internal/seed"
	"github.com/franciscosanchezn/gin-rappers-api/internal/services"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const usage = `usage: rappers <command>

commands:
  migrate   create the users and rappers tables
  rollback  drop the rappers and users tables
  seed      load the sample users and rappers
  setup     migrate, then seed`

var log = logrus.New()

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	// Load environment variables
	loadDotenvFile()

	// Load configuration and initialize logger
	configuration := loadConfig()
	setUpLogger(configuration)

	if err := run(os.Args[1], configuration); err != nil {
		fields := logrus.Fields{}
		var cmdErr *models.CommandError
		if errors.As(err, &cmdErr) {
			fields["code"] = cmdErr.Code
			for k, v := range cmdErr.Details {
				fields[k] = v
			}
		}
		log.WithFields(fields).WithError(err).Fatal("Command failed")
	}
}

// run executes a single command against the configured database
func run(command string, conf *config.Config) error {
	switch command {
	case "migrate", "rollback", "seed", "setup":
	default:
		return models.NewCommandError(models.ErrUnknownCommand, fmt.Sprintf("unknown command %q\n%s", command, usage), nil)
	}

	db, err := database.InitDatabase(conf.Database())
	if err != nil {
		return models.NewCommandError(models.ErrDatabaseUnavailable, "could not connect to database", err)
	}
	defer database.Close(db)

	switch command {
	case "migrate":
		return migrate(db)
	case "rollback":
		return rollback(db)
	case "seed":
		return seedDatabase(db)
	default:
		if err := migrate(db); err != nil {
			return err
		}
		return seedDatabase(db)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found, using system environment variables")
	}
}

// setUpLogger applies the configured level and format and shares the logger
// with the database and migration packages. Seed traces go to standard output.
func setUpLogger(conf *config.Config) {
	log.SetOutput(os.Stdout)
	log.SetFormatter(conf.Formatter())
	log.SetLevel(conf.Level())
	database.SetLogger(log)
	migrations.SetLogger(log)
}

// loadConfig loads the application configuration from environment variables
func loadConfig() *config.Config {
	conf, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", models.ErrConfigInvalid, err)
		os.Exit(1)
	}
	return conf
}

func migrate(db *gorm.DB) error {
	if err := migrations.Up(db, migrations.All()...); err != nil {
		return models.NewCommandError(models.ErrMigrationFailed, "schema could not be applied", err)
	}
	log.Info("Schema migrated")
	return nil
}

func rollback(db *gorm.DB) error {
	if err := migrations.Down(db, migrations.All()...); err != nil {
		return models.NewCommandError(models.ErrRollbackFailed, "schema could not be reverted", err)
	}
	log.Info("Schema rolled back")
	return nil
}

// seedDatabase seeds the database with the sample users and rappers
func seedDatabase(db *gorm.DB) error {
	log.Info("Seeding database with initial data")
	seeder := seed.NewSeeder(services.NewUserService(db), services.NewRapperService(db), log)

	result, err := seeder.Run()
	if err != nil {
		code := models.ErrSeedFailed
		switch {
		case errors.Is(err, models.ErrInvalidRapper):
			code = models.ErrRapperInvalidData
		case errors.Is(err, services.ErrPasswordMismatch), errors.Is(err, services.ErrPasswordTooShort):
			code = models.ErrUserInvalidData
		}
		return models.NewCommandError(code, "seeding stopped", err, map[string]interface{}{
			"users_created":   result.UsersCreated,
			"rappers_created": result.RappersCreated,
		})
	}

	log.WithFields(logrus.Fields{
		"users_created":   result.UsersCreated,
		"users_found":     result.UsersFound,
		"rappers_created": result.RappersCreated,
	}).Info("Database seeded successfully")
	return nil
}
