// Package guestbook provides the message persistence core of a small contact
// form backend: validated messages, a repository contract and two
// interchangeable repository implementations.
//
// # Features
//
//   - Self-validating value types (model.Name, model.Email, model.Contents, model.PageToken)
//   - MessageRepository contract with Create and paginated List
//   - Log-file backend: append-only JSON lines over an afero.Fs (adapters/logfile)
//   - Relational backend: MySQL, PostgreSQL or SQLite via Relica (adapters/relica)
//   - Fail-closed reads: a stored record that no longer validates fails the page
//   - Guestbook service mapping raw form input onto the repository
//   - Options Pattern for service configuration
//
// # Quick Start
//
//	db, _ := sql.Open("sqlite3", "db/database.sqlite")
//	_ = relica.EnsureSchema(ctx, db, "sqlite3", "")
//
//	gb, err := guestbook.New(
//	    guestbook.WithRepository(relica.NewMessageRepository(db, "sqlite3")),
//	    guestbook.WithLogger(logger),
//	)
//
//	_, err = gb.Submit(ctx, guestbook.SubmitRequest{
//	    Name:     "Jane",
//	    Email:    "jane@example.com",
//	    Contents: "Hello!",
//	})
//
//	page, err := gb.Browse(ctx, guestbook.BrowseRequest{MaxResults: 10})
//	// page.NextPageToken feeds the next BrowseRequest
//
// # Pagination
//
// Both backends return messages in insertion order and produce the same pages
// for the same writes, but their tokens differ:
//
//	logfile  token = number of records already served (offset)
//	relica   token = id of the last row served (keyset)
//
// Tokens are opaque to callers and only valid for the repository that issued
// them. A page that comes back full always carries a next token, so a caller
// may receive one final empty page.
//
// # Errors
//
// Every failure is an *Error whose Code names the failing step:
//
//	VALIDATION_ERROR   bad caller input (wraps *model.ValidationError)
//	SERIALIZE_ERROR    message could not be encoded
//	APPEND_ERROR       log file could not be appended
//	READ_ERROR         log file could not be read
//	DESERIALIZE_ERROR  stored record could not be decoded
//	MAPPING_ERROR      stored record failed validation
//	DATABASE_ERROR     SQL statement failed
//
// Use IsValidation and IsStorage to pick a 4xx or 5xx style response.
package guestbook
