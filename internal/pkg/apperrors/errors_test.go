package apperrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorsIs(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		target    error
		wantMatch bool
	}{
		{
			name:      "user not found wraps resource not found",
			err:       ErrUserNotFound,
			target:    ErrResourceNotFound,
			wantMatch: true,
		},
		{
			name:      "wrapped program not found still matches",
			err:       fmt.Errorf("error retrieving program: %w", ErrMentorshipProgramNotFound),
			target:    ErrResourceNotFound,
			wantMatch: true,
		},
		{
			name:      "email exists wraps already exists",
			err:       ErrEmailAlreadyExists,
			target:    ErrResourceAlreadyExists,
			wantMatch: true,
		},
		{
			name:      "invalid identifier",
			err:       NewInvalidIdentifierError("Invalid program ID", "abc"),
			target:    ErrInvalidIdentifier,
			wantMatch: true,
		},
		{
			name:      "invalid identifier is not a validation failure",
			err:       NewInvalidIdentifierError("Invalid program ID", "abc"),
			target:    ErrValidationFailed,
			wantMatch: false,
		},
		{
			name:      "validation error wraps validation failed",
			err:       NewValidationError([]FieldViolation{{Field: "title", Message: "title is required"}}),
			target:    ErrValidationFailed,
			wantMatch: true,
		},
		{
			name:      "mentor type",
			err:       NewInvalidMentorTypeError("mentor", []string{"faculty", "alumni"}),
			target:    ErrInvalidMentorType,
			wantMatch: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(tt.err, tt.target); got != tt.wantMatch {
				t.Errorf("errors.Is(%v, %v) = %v, want %v", tt.err, tt.target, got, tt.wantMatch)
			}
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := NewValidationError([]FieldViolation{
		{Field: "email", Message: "email is required"},
		{Field: "mobile", Message: "mobile must be a numeric string"},
	})

	want := "validation failed: email is required; mobile must be a numeric string"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	fields := err.Fields()
	if len(fields) != 2 || fields[0] != "email" || fields[1] != "mobile" {
		t.Errorf("Fields() = %v, want [email mobile]", fields)
	}
}

func TestCustomErrorMessage(t *testing.T) {
	err := NewInvalidIdentifierError("Invalid mentor ID", "4x")
	if got := err.Error(); got != "Invalid mentor ID" {
		t.Errorf("Error() = %q, want %q", got, "Invalid mentor ID")
	}

	var custom *CustomError
	if !errors.As(err, &custom) {
		t.Fatal("errors.As() did not find *CustomError")
	}
	if custom.Details["value"] != "4x" {
		t.Errorf("Details[value] = %v, want 4x", custom.Details["value"])
	}
}
