package guestbook

import (
	"fmt"
	"time"
)

// Option configures a Guestbook.
//
// Example:
//
//	gb, err := guestbook.New(
//	    guestbook.WithRepository(repo),
//	    guestbook.WithLogger(logger),
//	    guestbook.WithDefaultPageSize(20), // optional
//	)
type Option func(*Guestbook) error

// WithRepository sets the message repository. Required.
func WithRepository(repo MessageRepository) Option {
	return func(g *Guestbook) error {
		if repo == nil {
			return fmt.Errorf("repository cannot be nil")
		}
		g.repo = repo
		return nil
	}
}

// WithLogger sets the logger instance. Required.
//
// Use NoopLogger for silent operation.
func WithLogger(logger Logger) Option {
	return func(g *Guestbook) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		g.logger = logger
		return nil
	}
}

// WithClock overrides the source of submission timestamps.
// Optional, defaults to time.Now.
func WithClock(now func() time.Time) Option {
	return func(g *Guestbook) error {
		if now == nil {
			return fmt.Errorf("clock cannot be nil")
		}
		g.now = now
		return nil
	}
}

// WithDefaultPageSize sets the page size Browse uses when the request has none.
// Optional, defaults to DefaultPageSize. Must be within 1..MaxPageSize.
func WithDefaultPageSize(size int) Option {
	return func(g *Guestbook) error {
		if size <= 0 || size > MaxPageSize {
			return fmt.Errorf("default page size must be within 1..%d, got %d", MaxPageSize, size)
		}
		g.defaultPageSize = size
		return nil
	}
}
