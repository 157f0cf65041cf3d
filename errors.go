package guestbook

import (
	"errors"
	"fmt"

	"github.com/coregx/guestbook/model"
)

// Error represents a guestbook error with categorization.
// Repository implementations collapse their storage-specific failures into an
// Error whose Code names the failing sub-operation and whose Err keeps the cause.
type Error struct {
	// Code is a machine-readable error code
	Code string

	// Message is a human-readable error message
	Message string

	// Err is the underlying error (if any)
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Error codes for guestbook operations.
const (
	// ErrCodeValidation indicates caller input failed validation.
	ErrCodeValidation = "VALIDATION_ERROR"

	// ErrCodeConfiguration indicates invalid configuration.
	ErrCodeConfiguration = "CONFIGURATION_ERROR"

	// ErrCodeSerialize indicates a message could not be encoded for storage.
	ErrCodeSerialize = "SERIALIZE_ERROR"

	// ErrCodeAppend indicates a record could not be appended to the log file.
	ErrCodeAppend = "APPEND_ERROR"

	// ErrCodeRead indicates the log file could not be read.
	ErrCodeRead = "READ_ERROR"

	// ErrCodeDeserialize indicates a stored record could not be decoded.
	ErrCodeDeserialize = "DESERIALIZE_ERROR"

	// ErrCodeMapping indicates a stored record failed validation on read-back.
	ErrCodeMapping = "MAPPING_ERROR"

	// ErrCodeDatabase indicates a database operation failed.
	ErrCodeDatabase = "DATABASE_ERROR"
)

// NewError creates a new Error with the given code and message.
func NewError(code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// NewErrorWithCause creates a new Error wrapping an underlying error.
func NewErrorWithCause(code, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     cause,
	}
}

// NewMappingError wraps a read-back validation failure of a stored record.
func NewMappingError(err error) *Error {
	var verr *model.ValidationError
	if errors.As(err, &verr) {
		return NewErrorWithCause(ErrCodeMapping, "cannot map stored record: field "+verr.Field, err)
	}
	return NewErrorWithCause(ErrCodeMapping, "cannot map stored record", err)
}

// HasCode reports whether err is an Error with the given code.
func HasCode(err error, code string) bool {
	var gbErr *Error
	if errors.As(err, &gbErr) {
		return gbErr.Code == code
	}
	return false
}

// IsValidation reports whether err was caused by bad caller input.
func IsValidation(err error) bool {
	return HasCode(err, ErrCodeValidation)
}

// IsStorage reports whether err comes from a repository rather than from
// caller input. Callers should treat these as server-side failures.
func IsStorage(err error) bool {
	var gbErr *Error
	if !errors.As(err, &gbErr) {
		return false
	}
	switch gbErr.Code {
	case ErrCodeValidation, ErrCodeConfiguration:
		return false
	default:
		return true
	}
}
