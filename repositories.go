package guestbook

import (
	"context"

	"github.com/coregx/guestbook/model"
)

// Page size limits shared by every repository.
const (
	// DefaultPageSize is used by Guestbook.Browse when the caller gives no size.
	DefaultPageSize = 10

	// MaxPageSize caps a single List call. A request for 0 results also gets MaxPageSize.
	MaxPageSize = 100
)

// MessageRepository defines the persistence interface for guestbook messages.
//
// Implementations must be safe for concurrent use. They add no locking of
// their own; atomicity of a single Create is delegated to the storage medium.
type MessageRepository interface {
	// Create durably appends a message. Once Create returns nil the message
	// is visible to every later List call. A failed Create stores nothing.
	Create(ctx context.Context, m model.Message) error

	// List returns up to maxResults messages in insertion order, resuming
	// after the position encoded in pageToken (from the start when nil).
	// maxResults is clamped with ClampPageSize.
	//
	// The next token is non-nil exactly when the returned page is full.
	// This is a size heuristic: a full final page still yields a token whose
	// follow-up call returns no messages.
	//
	// Tokens are only meaningful to the repository that issued them.
	List(ctx context.Context, maxResults int, pageToken *model.PageToken) ([]model.Message, *model.PageToken, error)
}

// ClampPageSize maps a requested page size onto 1..MaxPageSize.
// Zero or negative requests get MaxPageSize.
func ClampPageSize(maxResults int) int {
	if maxResults <= 0 || maxResults > MaxPageSize {
		return MaxPageSize
	}
	return maxResults
}
