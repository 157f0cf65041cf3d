// Package model contains the validated domain values of the guestbook:
// the submitted message, its fields and the pagination cursor.
package model

import "time"

// Message is a validated guestbook entry.
// Messages are created once, at submission time, and never mutated.
// A message has no identity of its own beyond its position in a repository.
type Message struct {
	timestamp time.Time
	name      Name
	email     Email
	contents  Contents
}

// NewMessage assembles a message from already validated values.
func NewMessage(timestamp time.Time, name Name, email Email, contents Contents) Message {
	return Message{
		timestamp: timestamp,
		name:      name,
		email:     email,
		contents:  contents,
	}
}

// Timestamp returns the submission instant.
func (m Message) Timestamp() time.Time {
	return m.timestamp
}

// Name returns the sender's name.
func (m Message) Name() Name {
	return m.name
}

// Email returns the sender's address.
func (m Message) Email() Email {
	return m.email
}

// Contents returns the message body.
func (m Message) Contents() Contents {
	return m.contents
}

// Stored returns the plain text form a repository persists.
func (m Message) Stored() StoredMessage {
	return StoredMessage{
		Timestamp: m.timestamp,
		Name:      m.name.String(),
		Email:     m.email.String(),
		Contents:  m.contents.String(),
	}
}

// StoredMessage is a message as read back from storage, before validation.
// Repositories decode their records into a StoredMessage and convert it with
// Message, so stored text goes through the same checks as fresh input.
type StoredMessage struct {
	Timestamp time.Time
	Name      string
	Email     string
	Contents  string
}

// Message re-validates every text field. The returned error is a
// *ValidationError naming the first offending field.
func (s StoredMessage) Message() (Message, error) {
	name, err := NewName(s.Name)
	if err != nil {
		return Message{}, err
	}
	email, err := NewEmail(s.Email)
	if err != nil {
		return Message{}, err
	}
	contents, err := NewContents(s.Contents)
	if err != nil {
		return Message{}, err
	}
	return NewMessage(s.Timestamp, name, email, contents), nil
}
