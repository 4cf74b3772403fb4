package errors

import "fmt"

// Error codes
const (
	ErrCodeDuplicateKey = "DUPLICATE_KEY"
	ErrCodeAuth         = "AUTH_ERROR"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeValidation   = "VALIDATION_ERROR"
	ErrCodeBadRequest   = "BAD_REQUEST"
	ErrCodeInternal     = "INTERNAL_ERROR"
)

// AppError represents an application error with HTTP status code and error code
type AppError struct {
	Code    string // Error code (e.g., "DUPLICATE_KEY", "AUTH_ERROR")
	Message string // Human-readable error message, shown to the end user as-is
	Status  int    // HTTP status code
	Err     error  // Wrapped underlying error (optional)
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for error wrapping support
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewDuplicateKeyError creates a new DUPLICATE_KEY error. The message is
// user-facing and must be presentable as-is.
func NewDuplicateKeyError(message string) *AppError {
	return &AppError{
		Code:    ErrCodeDuplicateKey,
		Message: message,
		Status:  409,
	}
}

// NewAuthError creates a new AUTH_ERROR with a user-facing message.
func NewAuthError(message string) *AppError {
	return &AppError{
		Code:    ErrCodeAuth,
		Message: message,
		Status:  401,
	}
}

// NewNotFoundError creates a new NOT_FOUND error
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s not found: %v", resource, id),
		Status:  404,
	}
}

// NewValidationError creates a new VALIDATION_ERROR
func NewValidationError(field string, reason string) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: fmt.Sprintf("validation failed for %s: %s", field, reason),
		Status:  400,
	}
}

// NewBadRequestError creates a new BAD_REQUEST error
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    ErrCodeBadRequest,
		Message: message,
		Status:  400,
	}
}

// NewInternalError creates a new INTERNAL_ERROR
func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: "internal server error",
		Status:  500,
		Err:     err,
	}
}

// IsDuplicateKey reports whether err is a DUPLICATE_KEY AppError.
func IsDuplicateKey(err error) bool {
	appErr, ok := err.(*AppError)
	return ok && appErr.Code == ErrCodeDuplicateKey
}

// IsAuthError reports whether err is an AUTH_ERROR AppError.
func IsAuthError(err error) bool {
	appErr, ok := err.(*AppError)
	return ok && appErr.Code == ErrCodeAuth
}
