package guestbook

import (
	"context"
	"time"

	"github.com/coregx/guestbook/model"
)

// Guestbook accepts contact-form submissions and serves the paginated message log.
// It turns raw caller strings into validated messages and delegates storage to
// a MessageRepository.
type Guestbook struct {
	repo            MessageRepository
	logger          Logger
	now             func() time.Time
	defaultPageSize int
}

// New creates a Guestbook with the provided options.
//
// Required options:
//   - WithRepository: message repository
//   - WithLogger: logger instance
func New(opts ...Option) (*Guestbook, error) {
	g := &Guestbook{
		now:             time.Now,
		defaultPageSize: DefaultPageSize,
	}

	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, NewErrorWithCause(ErrCodeConfiguration, "failed to apply guestbook option", err)
		}
	}

	if g.repo == nil {
		return nil, NewError(ErrCodeConfiguration, "MessageRepository is required (use WithRepository)")
	}
	if g.logger == nil {
		return nil, NewError(ErrCodeConfiguration, "Logger is required (use WithLogger)")
	}

	return g, nil
}

// SubmitRequest carries the raw contact-form fields.
type SubmitRequest struct {
	Name     string
	Email    string
	Contents string
}

// Submit validates a contact-form submission, stamps it with the current time
// and stores it.
//
// Invalid input yields a VALIDATION_ERROR wrapping the *model.ValidationError
// of the first rejected field; nothing is stored in that case.
func (g *Guestbook) Submit(ctx context.Context, req SubmitRequest) (model.Message, error) {
	timestamp := g.now()

	name, err := model.NewName(req.Name)
	if err != nil {
		return model.Message{}, NewErrorWithCause(ErrCodeValidation, "invalid submission", err)
	}
	email, err := model.NewEmail(req.Email)
	if err != nil {
		return model.Message{}, NewErrorWithCause(ErrCodeValidation, "invalid submission", err)
	}
	contents, err := model.NewContents(req.Contents)
	if err != nil {
		return model.Message{}, NewErrorWithCause(ErrCodeValidation, "invalid submission", err)
	}

	msg := model.NewMessage(timestamp, name, email, contents)
	if err := g.repo.Create(ctx, msg); err != nil {
		g.logger.Errorf("failed to store message from %s: %v", email, err)
		return model.Message{}, err
	}

	g.logger.Debugf("stored message from %s (%d bytes)", email, len(contents.String()))
	return msg, nil
}

// BrowseRequest selects a page of the message log.
type BrowseRequest struct {
	MaxResults int    // 0 selects the default page size
	PageToken  string // Empty starts from the oldest message
}

// Page is one window of the message log.
type Page struct {
	Messages      []model.Message
	MaxResults    int    // Page size that was requested after defaulting
	NextPageToken string // Empty when HasNextPage is false
	HasNextPage   bool
}

// Browse returns one page of stored messages, oldest first.
// A malformed PageToken yields a VALIDATION_ERROR.
func (g *Guestbook) Browse(ctx context.Context, req BrowseRequest) (*Page, error) {
	maxResults := req.MaxResults
	if maxResults == 0 {
		maxResults = g.defaultPageSize
	}

	var token *model.PageToken
	if req.PageToken != "" {
		parsed, err := model.ParsePageToken(req.PageToken)
		if err != nil {
			return nil, NewErrorWithCause(ErrCodeValidation, "invalid page token", err)
		}
		token = &parsed
	}

	messages, next, err := g.repo.List(ctx, maxResults, token)
	if err != nil {
		g.logger.Errorf("failed to list messages (page_token=%q): %v", req.PageToken, err)
		return nil, err
	}

	page := &Page{
		Messages:   messages,
		MaxResults: maxResults,
	}
	if next != nil {
		page.HasNextPage = true
		page.NextPageToken = next.String()
	}
	return page, nil
}
