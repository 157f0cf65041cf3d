package logfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/coregx/guestbook"
	"github.com/coregx/guestbook/model"
	"github.com/spf13/afero"
)

// MessageRepository implements guestbook.MessageRepository over a JSON lines file.
//
// Every call opens its own file handle. Create issues exactly one write of
// one complete line on an O_APPEND handle and relies on the operating system
// to keep concurrent appends whole; no in-process lock is taken.
type MessageRepository struct {
	fs   afero.Fs
	path string
}

// NewMessageRepository creates a repository storing messages at path on fsys.
// The file is created on the first Create.
func NewMessageRepository(fsys afero.Fs, path string) *MessageRepository {
	return &MessageRepository{fs: fsys, path: path}
}

// record is the on-disk form of a message.
type record struct {
	Timestamp uint64 `json:"timestamp"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Contents  string `json:"contents"`
}

func newRecord(m model.Message) (record, error) {
	ns := m.Timestamp().UnixNano()
	if ns < 0 {
		return record{}, fmt.Errorf("timestamp %s predates the Unix epoch", m.Timestamp())
	}

	stored := m.Stored()
	return record{
		Timestamp: uint64(ns),
		Name:      stored.Name,
		Email:     stored.Email,
		Contents:  stored.Contents,
	}, nil
}

func (r record) message() (model.Message, error) {
	if r.Timestamp > math.MaxInt64 {
		return model.Message{}, fmt.Errorf("timestamp %d out of range", r.Timestamp)
	}

	return model.StoredMessage{
		Timestamp: time.Unix(0, int64(r.Timestamp)).UTC(),
		Name:      r.Name,
		Email:     r.Email,
		Contents:  r.Contents,
	}.Message()
}

// Create appends m as a single JSON line.
func (r *MessageRepository) Create(ctx context.Context, m model.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rec, err := newRecord(m)
	if err != nil {
		return guestbook.NewErrorWithCause(guestbook.ErrCodeSerialize, "cannot serialize message", err)
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(rec); err != nil {
		return guestbook.NewErrorWithCause(guestbook.ErrCodeSerialize, "cannot serialize message", err)
	}
	line := buf.Bytes()

	if err := r.fs.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return guestbook.NewErrorWithCause(guestbook.ErrCodeAppend, "cannot create log directory", err)
	}

	f, err := r.fs.OpenFile(r.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return guestbook.NewErrorWithCause(guestbook.ErrCodeAppend, "cannot open log file for append", err)
	}

	if _, err := f.Write(line); err != nil {
		_ = f.Close()
		return guestbook.NewErrorWithCause(guestbook.ErrCodeAppend, "cannot append to log file", err)
	}
	if err := f.Close(); err != nil {
		return guestbook.NewErrorWithCause(guestbook.ErrCodeAppend, "cannot append to log file", err)
	}
	return nil
}

// List reads the whole file, skips the number of records encoded in
// pageToken and returns the next maxResults messages.
//
// A record that cannot be decoded or fails validation fails the whole call;
// bad records are never skipped silently. A file that does not exist yet
// is an empty log.
func (r *MessageRepository) List(ctx context.Context, maxResults int, pageToken *model.PageToken) ([]model.Message, *model.PageToken, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	maxResults = guestbook.ClampPageSize(maxResults)

	var offset uint64
	if pageToken != nil {
		offset = pageToken.Value()
	}

	data, err := afero.ReadFile(r.fs, r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []model.Message{}, nil, nil
	}
	if err != nil {
		return nil, nil, guestbook.NewErrorWithCause(guestbook.ErrCodeRead, "cannot read log file", err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	messages := make([]model.Message, 0, maxResults)

	for index := uint64(0); len(messages) < maxResults; index++ {
		var rec record
		err := dec.Decode(&rec)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, guestbook.NewErrorWithCause(guestbook.ErrCodeDeserialize,
				fmt.Sprintf("cannot deserialize record %d", index), err)
		}
		if index < offset {
			continue
		}

		msg, err := rec.message()
		if err != nil {
			return nil, nil, guestbook.NewMappingError(err)
		}
		messages = append(messages, msg)
	}

	if len(messages) < maxResults {
		return messages, nil, nil
	}

	next := model.NewPageToken(offset + uint64(maxResults))
	return messages, &next, nil
}
