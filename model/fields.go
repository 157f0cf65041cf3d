package model

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Byte length ceilings for submitted text.
const (
	MaxNameLength     = 255
	MaxEmailLength    = 255
	MaxContentsLength = 1024
)

var (
	nameRules     = textRules(MaxNameLength)
	emailRules    = append(textRules(MaxEmailLength), validation.Match(regexp.MustCompile("@")).ErrorObject(errInvalidEmail))
	contentsRules = textRules(MaxContentsLength)
)

// Name is the sender's display name.
// The only way to obtain a non-zero Name is NewName.
type Name struct {
	value string
}

// NewName validates raw and wraps it without normalization.
func NewName(raw string) (Name, error) {
	if err := validate("name", raw, nameRules...); err != nil {
		return Name{}, err
	}
	return Name{value: raw}, nil
}

// String returns the name verbatim.
func (n Name) String() string {
	return n.value
}

// Email is the sender's contact address. Beyond the length bounds it only
// has to contain an '@'.
type Email struct {
	value string
}

// NewEmail validates raw and wraps it without normalization.
func NewEmail(raw string) (Email, error) {
	if err := validate("email", raw, emailRules...); err != nil {
		return Email{}, err
	}
	return Email{value: raw}, nil
}

// String returns the address verbatim.
func (e Email) String() string {
	return e.value
}

// Contents is the free-text body of a message.
type Contents struct {
	value string
}

// NewContents validates raw and wraps it without normalization.
func NewContents(raw string) (Contents, error) {
	if err := validate("contents", raw, contentsRules...); err != nil {
		return Contents{}, err
	}
	return Contents{value: raw}, nil
}

// String returns the contents verbatim.
func (c Contents) String() string {
	return c.value
}
