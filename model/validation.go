package model

import (
	"errors"
	"fmt"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Kind classifies why a raw value was rejected.
type Kind string

// Validation failure kinds.
const (
	KindTooShort         Kind = "too_short"
	KindTooLong          Kind = "too_long"
	KindInvalidEmail     Kind = "invalid_email"
	KindInvalidPageToken Kind = "invalid_page_token"
	// KindInvalidEncoding rejects text that is not valid UTF-8. Such text
	// cannot be stored and read back byte for byte.
	KindInvalidEncoding Kind = "invalid_encoding"
)

var (
	errTooShort         = validation.NewError(string(KindTooShort), "too short")
	errTooLong          = validation.NewError(string(KindTooLong), "too long")
	errInvalidEmail     = validation.NewError(string(KindInvalidEmail), "invalid email")
	errInvalidPageToken = validation.NewError(string(KindInvalidPageToken), "invalid page token")
	errInvalidEncoding  = validation.NewError(string(KindInvalidEncoding), "not valid UTF-8")
)

// ValidationError reports a rejected value together with the field it was
// supplied for. It is the only error returned by the value constructors.
type ValidationError struct {
	Field string // Field name (e.g., "email", "page_token")
	Kind  Kind   // Failure classification
	Err   error  // Underlying rule error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

// Unwrap returns the underlying rule error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is a ValidationError of the given kind.
func IsKind(err error, kind Kind) bool {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Kind == kind
	}
	return false
}

// textRules bounds a value to 1..max bytes of valid UTF-8.
// ozzo's Length counts bytes for strings, RuneLength would count characters.
func textRules(max int) []validation.Rule {
	return []validation.Rule{
		validation.Required.ErrorObject(errTooShort),
		validation.By(validUTF8),
		validation.Length(0, max).ErrorObject(errTooLong),
	}
}

func validUTF8(value interface{}) error {
	s, _ := value.(string)
	if !utf8.ValidString(s) {
		return errInvalidEncoding
	}
	return nil
}

func validate(field, value string, rules ...validation.Rule) error {
	err := validation.Validate(value, rules...)
	if err == nil {
		return nil
	}

	verr := &ValidationError{Field: field, Err: err}
	var ruleErr validation.Error
	if errors.As(err, &ruleErr) {
		verr.Kind = Kind(ruleErr.Code())
	}
	return verr
}
