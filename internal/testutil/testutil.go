package testutil

import (
	"bytes"
	"testing"

	"github.com/franciscosanchezn/gin-rappers-api/internal/database"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB opens an empty in-memory SQLite database.
// The pool is pinned to a single connection: every new connection to
// ":memory:" would otherwise see its own empty database.
func NewTestDB(t testing.TB) *gorm.DB {
	t.Helper()

	cfg := database.GormConfig()
	cfg.Logger = logger.Default.LogMode(logger.Silent)

	db, err := gorm.Open(sqlite.Open(":memory:"), cfg)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get test database handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

// NewTestLogger returns a logger writing plain text into the returned buffer.
func NewTestLogger() (*logrus.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	log := logrus.New()
	log.SetOutput(buf)
	log.SetFormatter(&logrus.TextFormatter{DisableColors: true, DisableTimestamp: true})
	log.SetLevel(logrus.DebugLevel)
	return log, buf
}
