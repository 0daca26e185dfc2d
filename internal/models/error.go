package models

import "fmt"

// CommandError represents a standardized failure reported by the CLI
type CommandError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Err     error                  `json:"-"`
}

// Error code constants
const (
	// General errors
	ErrConfigInvalid       = "CONFIG_INVALID"
	ErrDatabaseUnavailable = "DATABASE_UNAVAILABLE"
	ErrUnknownCommand      = "UNKNOWN_COMMAND"

	// Schema errors
	ErrMigrationFailed = "MIGRATION_FAILED"
	ErrRollbackFailed  = "ROLLBACK_FAILED"

	// Seed errors
	ErrSeedFailed        = "SEED_FAILED"
	ErrUserInvalidData   = "USER_INVALID_DATA"
	ErrRapperInvalidData = "RAPPER_INVALID_DATA"
)

// NewCommandError creates a new command error with the given code and cause
func NewCommandError(code, message string, err error, details ...map[string]interface{}) *CommandError {
	cmdErr := &CommandError{
		Code:    code,
		Message: message,
		Err:     err,
	}
	if len(details) > 0 {
		cmdErr.Details = details[0]
	}
	return cmdErr
}

func (e *CommandError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}
