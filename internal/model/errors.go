package model

import (
	"errors"
	"fmt"
)

// ErrorCode represents the fatal-error taxonomy: there are no error kinds
// defined for the run proper, since every operation is assumed valid
// because it was materialized from a parsed token set. Lives in this
// package (rather than the root package) so internal/config,
// internal/workload, and internal/sink can return it without creating an
// import cycle back through the root package, which itself depends on
// those packages to wire a run.
type ErrorCode string

const (
	ErrCodeConfigNotFound    ErrorCode = "config not found"
	ErrCodeConfigMalformed   ErrorCode = "config malformed"
	ErrCodeWorkloadNotFound  ErrorCode = "workload not found"
	ErrCodeWorkloadMalformed ErrorCode = "workload malformed"
	ErrCodeLogOpenFailure    ErrorCode = "log open failure"
)

// Error is a structured error carrying the failing operation, a high-level
// code, a human-readable message, and (optionally) a wrapped cause.
type Error struct {
	Op    string
	Code  ErrorCode
	Msg   string
	Inner error
}

func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = string(e.Code)
	}
	if e.Op != "" {
		return fmt.Sprintf("ossched: %s (op=%s)", msg, e.Op)
	}
	return fmt.Sprintf("ossched: %s", msg)
}

// Unwrap returns the wrapped error for errors.Is/errors.As support.
func (e *Error) Unwrap() error {
	return e.Inner
}

// Is supports errors.Is comparison against another *Error by Code.
func (e *Error) Is(target error) bool {
	te, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == te.Code
}

// NewError creates a structured error for op with the given code and
// message.
func NewError(op string, code ErrorCode, msg string) *Error {
	return &Error{Op: op, Code: code, Msg: msg}
}

// WrapError wraps inner with ossched context, preserving inner's code if it
// is already a structured *Error.
func WrapError(op string, code ErrorCode, inner error) *Error {
	if inner == nil {
		return nil
	}
	if ue, ok := inner.(*Error); ok {
		return &Error{Op: op, Code: ue.Code, Msg: ue.Msg, Inner: ue.Inner}
	}
	return &Error{Op: op, Code: code, Msg: inner.Error(), Inner: inner}
}

// IsCode reports whether err is (or wraps) a structured Error with the
// given code.
func IsCode(err error, code ErrorCode) bool {
	var se *Error
	if errors.As(err, &se) {
		return se.Code == code
	}
	return false
}
