package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "for this date"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrTeamNotFound                = &NotFoundError{Entity: "team"}
	ErrUserNotFound                = &NotFoundError{Entity: "user"}
	ErrEmployeeNotFound            = &NotFoundError{Entity: "employee"}
	ErrJobFunctionNotFound         = &NotFoundError{Entity: "job function"}
	ErrShiftNotFound               = &NotFoundError{Entity: "shift"}
	ErrAssignmentNotFound          = &NotFoundError{Entity: "schedule assignment"}
	ErrPTODayNotFound              = &NotFoundError{Entity: "PTO day"}
	ErrShiftSwapNotFound           = &NotFoundError{Entity: "shift swap"}
	ErrDailyTargetNotFound         = &NotFoundError{Entity: "daily target"}
	ErrBusinessRuleNotFound        = &NotFoundError{Entity: "business rule"}
	ErrPreferredAssignmentNotFound = &NotFoundError{Entity: "preferred assignment"}
	ErrTrainingRecordNotFound      = &NotFoundError{Entity: "training record"}
)

// Already Exists Errors
var (
	ErrTeamExists                = &AlreadyExistsError{Entity: "team", Context: "with this name"}
	ErrUserExists                = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	ErrJobFunctionExists         = &AlreadyExistsError{Entity: "job function", Context: "with this name"}
	ErrShiftExists               = &AlreadyExistsError{Entity: "shift", Context: "with this name"}
	ErrPTODayExists              = &AlreadyExistsError{Entity: "PTO day", Context: "for this employee and date"}
	ErrDailyTargetExists         = &AlreadyExistsError{Entity: "daily target", Context: "for this job function and date"}
	ErrPreferredAssignmentExists = &AlreadyExistsError{Entity: "preferred assignment", Context: "for this employee"}
)

// Business Logic Errors
var (
	ErrAssignmentInvalid       = errors.New("assignment failed validation")
	ErrInvalidTimeRange        = errors.New("invalid time range")
	ErrInvalidDateFormat       = errors.New("invalid date format, expected YYYY-MM-DD")
	ErrEmployeeInactive        = errors.New("employee is inactive")
	ErrJobFunctionInactive     = errors.New("job function is inactive")
	ErrTrainingVerifyFailed    = errors.New("training records could not be verified after update")
	ErrNothingToCopy           = errors.New("source date has no assignments to copy")
	ErrRetentionTooShort       = errors.New("retention period is below the allowed minimum")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
)

// Authentication Errors
var (
	ErrInvalidCredentials  = &AuthenticationError{Message: "invalid email or password"}
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token has expired")

	ErrUserEmailNotFound = &AuthenticationError{Message: "user email not found in context"}
	ErrUserHasNoTeam     = &AuthorizationError{Message: "user is not assigned to any team"}
	ErrTeamAccessDenied  = &AuthorizationError{Message: "user may not access this team's data"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
