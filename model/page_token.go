package model

import (
	"regexp"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var pageTokenRules = []validation.Rule{
	validation.Required.ErrorObject(errInvalidPageToken),
	validation.Match(regexp.MustCompile(`^[0-9]+$`)).ErrorObject(errInvalidPageToken),
}

// PageToken is an opaque pagination cursor.
//
// Its value is a resume point private to the repository that issued it:
// a record offset for the log-file backend, the last seen row id for the
// relational backend. Tokens are not portable between backends.
type PageToken struct {
	value uint64
}

// NewPageToken wraps a backend resume point.
func NewPageToken(value uint64) PageToken {
	return PageToken{value: value}
}

// ParsePageToken decodes a token previously rendered with String.
// Anything other than a non-negative base-10 integer is rejected.
func ParsePageToken(raw string) (PageToken, error) {
	if err := validate("page_token", raw, pageTokenRules...); err != nil {
		return PageToken{}, err
	}

	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return PageToken{}, &ValidationError{Field: "page_token", Kind: KindInvalidPageToken, Err: errInvalidPageToken}
	}
	return PageToken{value: value}, nil
}

// Value returns the backend resume point.
func (t PageToken) Value() uint64 {
	return t.value
}

// String renders the token for a URL query parameter.
func (t PageToken) String() string {
	return strconv.FormatUint(t.value, 10)
}
