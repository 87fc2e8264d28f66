// Package errors provides structured error handling for the boundary
// surfaces of the completion core: fixture loading and the CLI.
//
// Error codes follow the pattern ERR_XXX_DESCRIPTION where:
//   - 1XX: fixture errors (parse, resolution)
//   - 2XX: IO errors (file, disk)
//   - 4XX: query validation errors
//   - 5XX: internal errors
//
// Internal invariant violations inside the completion core itself are not
// represented here: those panic, loudly, because they indicate a bug in the
// upstream resolver or in the core, never a user mistake.
package errors

import "fmt"

// Category defines error categories for classification.
type Category string

const (
	// CategoryFixture indicates symbol-table fixture errors.
	CategoryFixture Category = "FIXTURE"
	// CategoryIO indicates file I/O errors.
	CategoryIO Category = "IO"
	// CategoryValidation indicates query validation errors.
	CategoryValidation Category = "VALIDATION"
	// CategoryInternal indicates unexpected internal errors.
	CategoryInternal Category = "INTERNAL"
)

// Error codes organized by category.
const (
	// Fixture errors (100-199)
	ErrCodeFixtureParse      = "ERR_101_FIXTURE_PARSE"
	ErrCodeFixtureUnresolved = "ERR_102_FIXTURE_UNRESOLVED"
	ErrCodeFixtureDuplicate  = "ERR_103_FIXTURE_DUPLICATE"

	// IO errors (200-299)
	ErrCodeFileNotFound = "ERR_201_FILE_NOT_FOUND"
	ErrCodeFileRead     = "ERR_202_FILE_READ"

	// Validation errors (400-499)
	ErrCodeInvalidQuery    = "ERR_401_INVALID_QUERY"
	ErrCodeUnknownReceiver = "ERR_402_UNKNOWN_RECEIVER"

	// Internal errors (500-599)
	ErrCodeInternal = "ERR_501_INTERNAL"
)

// QueryError is the structured error type for this project. It carries
// enough context for logging and for actionable CLI messages.
type QueryError struct {
	// Code is the unique error code (e.g., "ERR_101_FIXTURE_PARSE").
	Code string

	// Message is the human-readable error message.
	Message string

	// Category is the error category (Fixture, IO, etc.).
	Category Category

	// Cause is the underlying error that caused this error.
	Cause error

	// Suggestion is an actionable suggestion for the user.
	Suggestion string
}

// Error implements the error interface.
func (e *QueryError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for error chain support.
func (e *QueryError) Unwrap() error {
	return e.Cause
}

// Is matches errors by code so errors.Is works across wrapping.
func (e *QueryError) Is(target error) bool {
	if t, ok := target.(*QueryError); ok {
		return e.Code == t.Code
	}
	return false
}

// WithSuggestion adds an actionable suggestion for the user.
// Returns the error for method chaining.
func (e *QueryError) WithSuggestion(suggestion string) *QueryError {
	e.Suggestion = suggestion
	return e
}

// New creates a QueryError with the given code and message.
// The category is derived from the code.
func New(code, message string, cause error) *QueryError {
	return &QueryError{
		Code:     code,
		Message:  message,
		Category: categoryFromCode(code),
		Cause:    cause,
	}
}

// Newf creates a QueryError with a formatted message.
func Newf(code string, format string, args ...any) *QueryError {
	return New(code, fmt.Sprintf(format, args...), nil)
}

// Wrap creates a QueryError from an existing error.
// The error's message becomes the QueryError message.
func Wrap(code string, err error) *QueryError {
	if err == nil {
		return nil
	}
	return New(code, err.Error(), err)
}

// GetCode extracts the error code. Returns empty string for foreign errors.
func GetCode(err error) string {
	if qe, ok := err.(*QueryError); ok {
		return qe.Code
	}
	return ""
}

// categoryFromCode maps the numeric range of a code to its category.
func categoryFromCode(code string) Category {
	if len(code) < 5 {
		return CategoryInternal
	}
	switch code[4] {
	case '1':
		return CategoryFixture
	case '2':
		return CategoryIO
	case '4':
		return CategoryValidation
	default:
		return CategoryInternal
	}
}
