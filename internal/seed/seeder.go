// Package seed loads the sample users and rappers into a migrated store.
package seed

import (
	"fmt"

	"github.com/franciscosanchezn/gin-rappers-api/internal/models"
	"github.com/franciscosanchezn/gin-rappers-api/internal/services"
	"github.com/sirupsen/logrus"
)

// Result summarizes a seed run
type Result struct {
	UsersCreated   int
	UsersFound     int
	RappersCreated int
}

// Seeder applies seed blocks. Users are found or created by email; rappers
// are always inserted, so every run appends a new copy of each rapper.
type Seeder struct {
	users   services.UserService
	rappers services.RapperService
	log     logrus.FieldLogger
	blocks  []Block
}

// NewSeeder creates a Seeder for the fixed Records. A nil logger falls back
// to the logrus standard logger.
func NewSeeder(users services.UserService, rappers services.RapperService, log logrus.FieldLogger) *Seeder {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Seeder{
		users:   users,
		rappers: rappers,
		log:     log,
		blocks:  Records(),
	}
}

// WithBlocks replaces the seed data
func (s *Seeder) WithBlocks(blocks []Block) *Seeder {
	s.blocks = blocks
	return s
}

// Validate checks every rapper record before anything is written
func (s *Seeder) Validate() error {
	for _, block := range s.blocks {
		for _, rapper := range block.Rappers {
			if err := rapper.Validate(); err != nil {
				return fmt.Errorf("seed block %s: %w", block.Email, err)
			}
		}
	}
	return nil
}

// Run resolves every user first and then creates the rappers block by block.
// There is no transaction: on failure the rows written so far stay committed
// and the partial Result is returned with the error.
func (s *Seeder) Run() (Result, error) {
	var result Result

	if err := s.Validate(); err != nil {
		return result, err
	}

	owners := make([]*models.User, len(s.blocks))
	for i, block := range s.blocks {
		user, created, err := s.users.FindOrCreateByEmail(block.Email, block.Password, block.PasswordConfirmation)
		if err != nil {
			return result, err
		}
		if created {
			result.UsersCreated++
		} else {
			result.UsersFound++
		}
		s.log.WithFields(logrus.Fields{
			"user_id": user.ID,
			"email":   user.Email,
			"created": created,
		}).Debug("Seed user resolved")
		owners[i] = user
	}

	for i, block := range s.blocks {
		for _, record := range block.Rappers {
			rapper := record
			if err := s.rappers.CreateRapperForUser(owners[i], &rapper); err != nil {
				return result, fmt.Errorf("create rapper %q for %s: %w", rapper.Name, block.Email, err)
			}
			result.RappersCreated++
			s.log.WithFields(rapper.LogFields()).Infof("creating: %s", rapper)
		}
	}

	return result, nil
}
