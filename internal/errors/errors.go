package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// ErrorCode represents a Sift error code.
type ErrorCode string

const (
	ErrInvalidRequest   ErrorCode = "INVALID_REQUEST"   // 400
	ErrValidationFailed ErrorCode = "VALIDATION_FAILED" // 400
	ErrUnparseableQuery ErrorCode = "UNPARSEABLE_QUERY" // 400
	ErrNotFound         ErrorCode = "NOT_FOUND"         // 404
	ErrDuplicateContent ErrorCode = "DUPLICATE_CONTENT" // 409
	ErrValueTooLarge    ErrorCode = "VALUE_TOO_LARGE"   // 413
	ErrInternal         ErrorCode = "INTERNAL"          // 500
)

// SiftError represents a structured error with code, status, and details.
type SiftError struct {
	Code    ErrorCode
	Status  int
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *SiftError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewInvalidRequest creates a 400 error for invalid request parameters.
func NewInvalidRequest(msg string) *SiftError {
	return &SiftError{
		Code:    ErrInvalidRequest,
		Status:  400,
		Message: msg,
	}
}

// NewValidationFailed creates a 400 error carrying every filter validation
// message that was collected. Callers surface all of them together.
func NewValidationFailed(problems []string) *SiftError {
	return &SiftError{
		Code:    ErrValidationFailed,
		Status:  400,
		Message: fmt.Sprintf("invalid filter parameters: %s", strings.Join(problems, "; ")),
		Details: map[string]any{"errors": problems},
	}
}

// NewUnparseableQuery creates a 400 error for a natural-language phrase that
// matched none of the recognized patterns.
func NewUnparseableQuery(phrase string) *SiftError {
	return &SiftError{
		Code:    ErrUnparseableQuery,
		Status:  400,
		Message: fmt.Sprintf("could not interpret query: %q", phrase),
		Details: map[string]any{"phrase": phrase},
	}
}

// NewNotFound creates a 404 error for content absent from the store.
func NewNotFound(digest string) *SiftError {
	return &SiftError{
		Code:    ErrNotFound,
		Status:  404,
		Message: fmt.Sprintf("string not found: %s", digest),
		Details: map[string]any{"id": digest},
	}
}

// NewDuplicateContent creates a 409 error for content whose digest already
// exists in the store.
func NewDuplicateContent(digest string) *SiftError {
	return &SiftError{
		Code:    ErrDuplicateContent,
		Status:  409,
		Message: fmt.Sprintf("string already analyzed: %s", digest),
		Details: map[string]any{"id": digest},
	}
}

// NewValueTooLarge creates a 413 error when the input exceeds the size limit.
func NewValueTooLarge(max, actual int) *SiftError {
	return &SiftError{
		Code:    ErrValueTooLarge,
		Status:  413,
		Message: fmt.Sprintf("value exceeds maximum size: %d chars (max %d)", actual, max),
		Details: map[string]any{"max_chars": max, "actual_chars": actual},
	}
}

// NewInternal creates a 500 error for unexpected internal errors.
// The message is generic; the original error is kept in Details for logging.
func NewInternal(err error) *SiftError {
	details := map[string]any{}
	if err != nil {
		details["internal_error"] = err.Error()
	}
	return &SiftError{
		Code:    ErrInternal,
		Status:  500,
		Message: "an internal error occurred",
		Details: details,
	}
}

// Is checks if an error is a SiftError with the given code, unwrapping as needed.
func Is(err error, code ErrorCode) bool {
	var sErr *SiftError
	if stderrors.As(err, &sErr) {
		return sErr.Code == code
	}
	return false
}
