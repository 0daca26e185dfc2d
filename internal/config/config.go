package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v10"
	"github.com/franciscosanchezn/gin-rappers-api/internal/database"
	"github.com/sirupsen/logrus"
)

// Create a new instance of the logger
// Configure it to log at the desired level
// and format it as JSON for structured logging
var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(LevelForEnvironment(GetEnvWithDefault("APP_ENV", "development")))
}

// Config used for the application configuration, loading the input from environment variables
type Config struct {
	// Application configuration
	AppEnv string `env:"APP_ENV" envDefault:"development" json:"app_env"`

	// Logging configuration
	LogLevel  string `env:"LOG_LEVEL" json:"log_level"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text" json:"log_format"`

	// Database configuration
	DBDriver     string `env:"DB_DRIVER" envDefault:"sqlite" json:"db_driver"`
	DBPath       string `env:"DB_PATH" envDefault:"rappers.sqlite" json:"db_path"`
	DBHost       string `env:"DB_HOST" envDefault:"localhost" json:"db_host"`
	DBPort       string `env:"DB_PORT" envDefault:"5432" json:"db_port"`
	DBUser       string `env:"DB_USER" envDefault:"postgres" json:"db_user"`
	DBPassword   string `env:"DB_PASSWORD" json:"db_password"`
	DBName       string `env:"DB_NAME" envDefault:"rappers" json:"db_name"`
	DBSSLMode    string `env:"DB_SSLMODE" envDefault:"disable" json:"db_sslmode"`
	DBMaxRetries int    `env:"DB_MAX_RETRIES" envDefault:"5" json:"db_max_retries"`
}

// String returns a string representation of Config with sensitive data masked
func (c *Config) String() string {
	return fmt.Sprintf("Config{AppEnv: %s, LogLevel: %s, LogFormat: %s, DBDriver: %s, DBPath: %s, DBHost: %s, DBPort: %s, DBUser: %s, DBPassword: [REDACTED], DBName: %s, DBSSLMode: %s, DBMaxRetries: %d}",
		c.AppEnv, c.LogLevel, c.LogFormat, c.DBDriver, c.DBPath, c.DBHost, c.DBPort, c.DBUser, c.DBName, c.DBSSLMode, c.DBMaxRetries)
}

// Database returns the connection settings for the configured driver
func (c *Config) Database() database.DatabaseConfig {
	return database.DatabaseConfig{
		Driver:     c.DBDriver,
		Host:       c.DBHost,
		Port:       c.DBPort,
		User:       c.DBUser,
		Password:   c.DBPassword,
		Name:       c.DBName,
		SSLMode:    c.DBSSLMode,
		Path:       c.DBPath,
		MaxRetries: c.DBMaxRetries,
	}
}

// Level resolves the log level: LOG_LEVEL wins over the APP_ENV default
func (c *Config) Level() logrus.Level {
	if c.LogLevel != "" {
		if level, err := logrus.ParseLevel(c.LogLevel); err == nil {
			return level
		}
	}
	return LevelForEnvironment(c.AppEnv)
}

// Formatter returns the logrus formatter selected by LOG_FORMAT
func (c *Config) Formatter() logrus.Formatter {
	if c.LogFormat == "json" {
		return &logrus.JSONFormatter{}
	}
	return &logrus.TextFormatter{DisableColors: true, FullTimestamp: true}
}

// LoadConfig read the proper configuration from environment variables and returns a Config struct
// It validates the driver, log format and log level
// Returns an error if any environment variable is malformed or unsupported
func LoadConfig() (*Config, error) {
	log.Info("Loading configuration from environment variables")

	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	config.DBDriver = strings.ToLower(config.DBDriver)
	switch config.DBDriver {
	case "sqlite", "postgres", "postgresql":
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (supported: sqlite, postgres)", config.DBDriver)
	}

	switch config.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("unsupported LOG_FORMAT %q (supported: text, json)", config.LogFormat)
	}

	if config.LogLevel != "" {
		if _, err := logrus.ParseLevel(config.LogLevel); err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
		}
	}

	if config.DBMaxRetries < 1 {
		return nil, fmt.Errorf("DB_MAX_RETRIES must be at least 1, got %d", config.DBMaxRetries)
	}

	log.Infof("Configuration loaded: %s", config.String())
	return config, nil
}

// LevelForEnvironment maps APP_ENV to the default log level
func LevelForEnvironment(environment string) logrus.Level {
	switch environment {
	case "development":
		return logrus.DebugLevel
	case "production":
		return logrus.ErrorLevel
	default:
		// Default to info level for other environments
		return logrus.InfoLevel
	}
}

// Helper to get environment with default values
func GetEnvWithDefault(key, defaultValue string) string {
	log.Tracef("Getting environment variable: %s", key)
	value := os.Getenv(key)
	if value == "" {
		log.Debugf("Environment variable %s not set, using default value: %s", key, defaultValue)
		return defaultValue
	}
	return value
}
