package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Validation errors
	ErrValidationFailed  = errors.New("validation failed")
	ErrInvalidIdentifier = errors.New("invalid identifier")
	ErrInvalidMentorType = errors.New("invalid mentor type")
	ErrBadRequest        = errors.New("bad request")
)

// Domain errors. Each wraps one of the generic sentinels above so the HTTP
// layer can map it without knowing the resource.
var (
	ErrUserNotFound              = NewCustomError(ErrResourceNotFound, "User not found")
	ErrMentorshipProgramNotFound = NewCustomError(ErrResourceNotFound, "Mentorship program not found")
	ErrEmailAlreadyExists        = NewCustomError(ErrResourceAlreadyExists, "Email already exists")
	ErrEnrollmentNumberExists    = NewCustomError(ErrResourceAlreadyExists, "Enrollment number already exists")
	ErrReferencedRecordMissing   = NewCustomError(ErrBadRequest, "Referenced record does not exist")
	ErrValueDoesNotFit           = NewCustomError(ErrBadRequest, "Value is out of range or too long for its field")
)

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// NewInvalidIdentifierError reports a path identifier that is not a 64-bit integer.
// message names the identifier, e.g. "Invalid program ID".
func NewInvalidIdentifierError(message, raw string) error {
	return &CustomError{
		Err:     ErrInvalidIdentifier,
		Message: message,
		Details: map[string]interface{}{"value": raw},
	}
}

// NewInvalidMentorTypeError reports a mentor kind outside the enumeration.
func NewInvalidMentorTypeError(raw string, allowed []string) error {
	return &CustomError{
		Err:     ErrInvalidMentorType,
		Message: "Invalid mentor type",
		Details: map[string]interface{}{
			"value":   raw,
			"allowed": allowed,
		},
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// FieldViolation describes one payload field that failed validation.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every violation found in a payload.
type ValidationError struct {
	Violations []FieldViolation
}

// NewValidationError returns a ValidationError for the given violations.
func NewValidationError(violations []FieldViolation) *ValidationError {
	return &ValidationError{Violations: violations}
}

// Error implements error interface
func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return ErrValidationFailed.Error()
	}
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Message)
	}
	return fmt.Sprintf("%s: %s", ErrValidationFailed, strings.Join(parts, "; "))
}

// Unwrap implements errors.Unwrap interface
func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// Fields returns the names of the violated fields in order.
func (e *ValidationError) Fields() []string {
	fields := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		fields = append(fields, v.Field)
	}
	return fields
}
