package relica

import (
	"context"
	"database/sql"
	"math"
	"time"

	"github.com/coregx/guestbook"
	"github.com/coregx/guestbook/model"
	"github.com/coregx/relica"
)

// MessageRepository implements guestbook.MessageRepository using Relica.
//
// The *sql.DB pool bounds concurrency and serializes per-connection use;
// the repository adds no locking. Row ids follow commit order.
type MessageRepository struct {
	db          *relica.DB
	tablePrefix string
}

// NewMessageRepository creates a new MessageRepository on the "message" table.
func NewMessageRepository(sqlDB *sql.DB, driverName string) *MessageRepository {
	return &MessageRepository{db: relica.WrapDB(sqlDB, driverName)}
}

// NewMessageRepositoryWithPrefix creates a new MessageRepository with custom table prefix.
func NewMessageRepositoryWithPrefix(sqlDB *sql.DB, driverName, prefix string) *MessageRepository {
	return &MessageRepository{db: relica.WrapDB(sqlDB, driverName), tablePrefix: prefix}
}

func (r *MessageRepository) tableName() string {
	return r.tablePrefix + "message"
}

// messageRow is the table form of a message.
type messageRow struct {
	ID        int64     `db:"id"`
	Timestamp time.Time `db:"timestamp"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Contents  string    `db:"contents"`
}

func newMessageRow(m model.Message) messageRow {
	stored := m.Stored()
	return messageRow{
		Timestamp: stored.Timestamp.UTC(),
		Name:      stored.Name,
		Email:     stored.Email,
		Contents:  stored.Contents,
	}
}

func (row messageRow) message() (model.Message, error) {
	return model.StoredMessage{
		Timestamp: row.Timestamp,
		Name:      row.Name,
		Email:     row.Email,
		Contents:  row.Contents,
	}.Message()
}

// Create inserts m as a single row. The id is assigned by the database.
func (r *MessageRepository) Create(ctx context.Context, m model.Message) error {
	row := newMessageRow(m)
	if err := r.db.WithContext(ctx).Model(&row).Table(r.tableName()).Insert(); err != nil {
		return guestbook.NewErrorWithCause(guestbook.ErrCodeDatabase, "failed to insert message", err)
	}
	return nil
}

// List returns up to maxResults rows with an id above the one in pageToken,
// ordered by id.
func (r *MessageRepository) List(ctx context.Context, maxResults int, pageToken *model.PageToken) ([]model.Message, *model.PageToken, error) {
	maxResults = guestbook.ClampPageSize(maxResults)

	var cursor int64
	if pageToken != nil {
		if pageToken.Value() > math.MaxInt64 {
			// No id can follow a cursor past the id range.
			return []model.Message{}, nil, nil
		}
		cursor = int64(pageToken.Value())
	}

	var rows []messageRow
	err := r.db.WithContext(ctx).Select("*").
		From(r.tableName()).
		Where("id > ?", cursor).
		OrderBy("id ASC").
		Limit(int64(maxResults)).
		All(&rows)
	if err != nil {
		return nil, nil, guestbook.NewErrorWithCause(guestbook.ErrCodeDatabase, "failed to list messages", err)
	}

	messages := make([]model.Message, 0, len(rows))
	for _, row := range rows {
		msg, err := row.message()
		if err != nil {
			return nil, nil, guestbook.NewMappingError(err)
		}
		messages = append(messages, msg)
	}

	if len(rows) < maxResults {
		return messages, nil, nil
	}

	next := model.NewPageToken(uint64(rows[len(rows)-1].ID))
	return messages, &next, nil
}
