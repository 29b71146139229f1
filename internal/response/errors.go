package response

import "fmt"

// Error codes shared between the service and handler layers
const (
	ErrCodeValidation    = "VALIDATION_ERROR"
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeUnauthorized  = "UNAUTHORIZED"
	ErrCodeForbidden     = "FORBIDDEN"
	ErrCodeAlreadyExists = "ALREADY_EXISTS"
	ErrCodeScopeLocked   = "SCOPE_LOCKED"
	ErrCodeInternal      = "INTERNAL_ERROR"
)

// AppError is the application error carried from the service layer up to the
// HTTP handlers, where the code is mapped to a status
type AppError struct {
	Code    string
	Message string
	Details string
}

func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewAppError creates a new AppError with the given code
func NewAppError(code, message, details string) *AppError {
	return &AppError{Code: code, Message: message, Details: details}
}

// NewValidationError creates an AppError with the validation code
func NewValidationError(message, details string) *AppError {
	return NewAppError(ErrCodeValidation, message, details)
}

// NewNotFoundError creates an AppError with the not-found code
func NewNotFoundError(message, details string) *AppError {
	return NewAppError(ErrCodeNotFound, message, details)
}

// NewForbiddenError creates an AppError with the forbidden code
func NewForbiddenError(message, details string) *AppError {
	return NewAppError(ErrCodeForbidden, message, details)
}

// NewScopeLockedError creates an AppError for a feature creation rejected by
// the project's open-feature limit
func NewScopeLockedError(message, details string) *AppError {
	return NewAppError(ErrCodeScopeLocked, message, details)
}
