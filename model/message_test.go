package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMessage(t *testing.T, ts time.Time, name, email, contents string) Message {
	t.Helper()

	msg, err := StoredMessage{Timestamp: ts, Name: name, Email: email, Contents: contents}.Message()
	require.NoError(t, err)
	return msg
}

func TestNewMessage(t *testing.T) {
	ts := time.Date(2024, 3, 1, 12, 0, 0, 5, time.UTC)
	name, err := NewName("Jane")
	require.NoError(t, err)
	email, err := NewEmail("jane@example.com")
	require.NoError(t, err)
	contents, err := NewContents("Hello there")
	require.NoError(t, err)

	msg := NewMessage(ts, name, email, contents)

	assert.Equal(t, ts, msg.Timestamp())
	assert.Equal(t, "Jane", msg.Name().String())
	assert.Equal(t, "jane@example.com", msg.Email().String())
	assert.Equal(t, "Hello there", msg.Contents().String())
}

func TestMessage_StoredRoundTrip(t *testing.T) {
	ts := time.Unix(0, 1700000000123456789).UTC()
	msg := mustMessage(t, ts, "Zoë", "zoe@example.org", "multi\nline ✓")

	stored := msg.Stored()
	assert.Equal(t, StoredMessage{
		Timestamp: ts,
		Name:      "Zoë",
		Email:     "zoe@example.org",
		Contents:  "multi\nline ✓",
	}, stored)

	back, err := stored.Message()
	require.NoError(t, err)
	assert.Equal(t, msg, back)
}

func TestStoredMessage_Message_RejectsCorruptFields(t *testing.T) {
	tests := []struct {
		name      string
		stored    StoredMessage
		wantField string
		wantKind  Kind
	}{
		{
			name:      "Empty name",
			stored:    StoredMessage{Name: "", Email: "a@b", Contents: "x"},
			wantField: "name",
			wantKind:  KindTooShort,
		},
		{
			name:      "Email without at sign",
			stored:    StoredMessage{Name: "A", Email: "ab", Contents: "x"},
			wantField: "email",
			wantKind:  KindInvalidEmail,
		},
		{
			name:      "Empty contents",
			stored:    StoredMessage{Name: "A", Email: "a@b", Contents: ""},
			wantField: "contents",
			wantKind:  KindTooShort,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.stored.Message()
			require.Error(t, err)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Field)
			assert.Equal(t, tt.wantKind, verr.Kind)
		})
	}
}
