package ossched

import "github.com/corrigan-b/ossched/internal/model"

// ErrorCode represents the fatal-error taxonomy from the fatal-error taxonomy. See
// internal/model for the full documentation.
type ErrorCode = model.ErrorCode

const (
	ErrCodeConfigNotFound    = model.ErrCodeConfigNotFound
	ErrCodeConfigMalformed   = model.ErrCodeConfigMalformed
	ErrCodeWorkloadNotFound  = model.ErrCodeWorkloadNotFound
	ErrCodeWorkloadMalformed = model.ErrCodeWorkloadMalformed
	ErrCodeLogOpenFailure    = model.ErrCodeLogOpenFailure
)

// Error is a structured error carrying the failing operation, a high-level
// code, a human-readable message, and (optionally) a wrapped cause.
type Error = model.Error

// NewError creates a structured error for op with the given code and
// message.
func NewError(op string, code ErrorCode, msg string) *Error {
	return model.NewError(op, code, msg)
}

// WrapError wraps inner with ossched context, preserving inner's code if it
// is already a structured *Error.
func WrapError(op string, code ErrorCode, inner error) *Error {
	return model.WrapError(op, code, inner)
}

// IsCode reports whether err is (or wraps) a structured Error with the
// given code.
func IsCode(err error, code ErrorCode) bool {
	return model.IsCode(err, code)
}
