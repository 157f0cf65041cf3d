package relica

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/coregx/guestbook"
	"github.com/coregx/guestbook/model"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "guestbook.sqlite"))
	require.NoError(t, err)
	// SQLite allows a single writer; one connection avoids "database is locked".
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, EnsureSchema(context.Background(), db, "sqlite3", ""))
	return db
}

func newMessage(t *testing.T, ts time.Time, name, email, contents string) model.Message {
	t.Helper()

	msg, err := model.StoredMessage{Timestamp: ts, Name: name, Email: email, Contents: contents}.Message()
	require.NoError(t, err)
	return msg
}

func seed(t *testing.T, repo *MessageRepository, names ...string) {
	t.Helper()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, name := range names {
		msg := newMessage(t, base.Add(time.Duration(i)*time.Second), name, strings.ToLower(name)+"@example.com", "hello from "+name)
		require.NoError(t, repo.Create(context.Background(), msg))
	}
}

func insertRaw(t *testing.T, db *sql.DB, id int64, name, email string) {
	t.Helper()

	_, err := db.Exec("INSERT INTO message (id, timestamp, name, email, contents) VALUES (?, ?, ?, ?, ?)",
		id, time.Now().UTC(), name, email, "raw row")
	require.NoError(t, err)
}

func names(messages []model.Message) []string {
	out := make([]string, 0, len(messages))
	for _, m := range messages {
		out = append(out, m.Name().String())
	}
	return out
}

func TestMessageRepository_RoundTrip(t *testing.T) {
	repo := NewMessageRepository(openTestDB(t), "sqlite3")

	ts := time.Date(2024, 5, 17, 9, 30, 15, 123456789, time.UTC)
	want := newMessage(t, ts, "Zoë \"Z\" O'Neil", "zoe+tag@example.org", "line one\nline two\t✓")
	require.NoError(t, repo.Create(context.Background(), want))

	got, next, err := repo.List(context.Background(), 10, nil)
	require.NoError(t, err)
	assert.Nil(t, next)
	require.Len(t, got, 1)

	assert.True(t, want.Timestamp().Equal(got[0].Timestamp()), "want %s, got %s", want.Timestamp(), got[0].Timestamp())
	assert.Equal(t, want.Name().String(), got[0].Name().String())
	assert.Equal(t, want.Email().String(), got[0].Email().String())
	assert.Equal(t, want.Contents().String(), got[0].Contents().String())
}

func TestMessageRepository_ListEmptyTable(t *testing.T) {
	repo := NewMessageRepository(openTestDB(t), "sqlite3")

	got, next, err := repo.List(context.Background(), 10, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Nil(t, next)
}

func TestMessageRepository_Pagination(t *testing.T) {
	repo := NewMessageRepository(openTestDB(t), "sqlite3")
	seed(t, repo, "A", "B", "C")
	ctx := context.Background()

	page, next, err := repo.List(ctx, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, names(page))
	require.NotNil(t, next)
	assert.Equal(t, "2", next.String(), "token is the id of the last row")

	page, next, err = repo.List(ctx, 2, next)
	require.NoError(t, err)
	assert.Equal(t, []string{"C"}, names(page))
	assert.Nil(t, next)
}

func TestMessageRepository_FullFinalPageStillYieldsToken(t *testing.T) {
	repo := NewMessageRepository(openTestDB(t), "sqlite3")
	seed(t, repo, "A", "B")
	ctx := context.Background()

	page, next, err := repo.List(ctx, 2, nil)
	require.NoError(t, err)
	assert.Len(t, page, 2)
	require.NotNil(t, next)

	page, next, err = repo.List(ctx, 2, next)
	require.NoError(t, err)
	assert.Empty(t, page)
	assert.Nil(t, next)
}

func TestMessageRepository_KeysetStability(t *testing.T) {
	db := openTestDB(t)
	repo := NewMessageRepository(db, "sqlite3")
	ctx := context.Background()

	insertRaw(t, db, 10, "A", "a@example.com")
	insertRaw(t, db, 20, "B", "b@example.com")
	insertRaw(t, db, 30, "C", "c@example.com")

	page, next, err := repo.List(ctx, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, names(page))
	require.NotNil(t, next)
	assert.Equal(t, "20", next.String())

	t.Run("Row committed before the cursor is not served", func(t *testing.T) {
		insertRaw(t, db, 15, "late", "late@example.com")

		page, _, err := repo.List(ctx, 2, next)
		require.NoError(t, err)
		assert.Equal(t, []string{"C"}, names(page), "B must not reappear and C must not be skipped")
	})

	t.Run("Row appended after the cursor is served", func(t *testing.T) {
		seed(t, repo, "D")

		page, _, err := repo.List(ctx, 2, next)
		require.NoError(t, err)
		assert.Equal(t, []string{"C", "D"}, names(page))
	})
}

func TestMessageRepository_TokenBeyondIDRange(t *testing.T) {
	repo := NewMessageRepository(openTestDB(t), "sqlite3")
	seed(t, repo, "A")

	token := model.NewPageToken(math.MaxUint64)
	page, next, err := repo.List(context.Background(), 10, &token)
	require.NoError(t, err)
	assert.Empty(t, page)
	assert.Nil(t, next)
}

func TestMessageRepository_ClampsPageSize(t *testing.T) {
	repo := NewMessageRepository(openTestDB(t), "sqlite3")
	for i := 0; i < guestbook.MaxPageSize+5; i++ {
		seed(t, repo, fmt.Sprintf("n%d", i))
	}

	for _, maxResults := range []int{0, 500} {
		page, next, err := repo.List(context.Background(), maxResults, nil)
		require.NoError(t, err)
		assert.Len(t, page, guestbook.MaxPageSize)
		require.NotNil(t, next)
		assert.Equal(t, "100", next.String())
	}
}

func TestMessageRepository_CorruptedRowFailsList(t *testing.T) {
	db := openTestDB(t)
	repo := NewMessageRepository(db, "sqlite3")
	seed(t, repo, "A")
	insertRaw(t, db, 2, "B", "no-at-sign")

	page, next, err := repo.List(context.Background(), 10, nil)
	require.Error(t, err)
	assert.Nil(t, page)
	assert.Nil(t, next)
	assert.True(t, guestbook.HasCode(err, guestbook.ErrCodeMapping), "got %v", err)
	assert.True(t, model.IsKind(err, model.KindInvalidEmail))
}

func TestMessageRepository_ClosedDB(t *testing.T) {
	db := openTestDB(t)
	repo := NewMessageRepository(db, "sqlite3")
	require.NoError(t, db.Close())

	err := repo.Create(context.Background(), newMessage(t, time.Now(), "A", "a@b", "c"))
	require.Error(t, err)
	assert.True(t, guestbook.HasCode(err, guestbook.ErrCodeDatabase), "got %v", err)

	_, _, err = repo.List(context.Background(), 10, nil)
	require.Error(t, err)
	assert.True(t, guestbook.HasCode(err, guestbook.ErrCodeDatabase), "got %v", err)
}

func TestMessageRepository_TablePrefix(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, EnsureSchema(context.Background(), db, "sqlite3", "gb_"))
	repo := NewMessageRepositoryWithPrefix(db, "sqlite3", "gb_")
	seed(t, repo, "A")

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM gb_message").Scan(&count))
	assert.Equal(t, 1, count)
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM message").Scan(&count))
	assert.Equal(t, 0, count)
}

func TestMessageRepository_ConcurrentCreates(t *testing.T) {
	repo := NewMessageRepository(openTestDB(t), "sqlite3")

	const writers = 20
	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			msg, err := model.StoredMessage{
				Timestamp: time.Now(),
				Name:      fmt.Sprintf("writer-%d", i),
				Email:     "w@example.com",
				Contents:  "hi",
			}.Message()
			if err != nil {
				errs <- err
				return
			}
			errs <- repo.Create(context.Background(), msg)
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	page, next, err := repo.List(context.Background(), guestbook.MaxPageSize, nil)
	require.NoError(t, err)
	assert.Nil(t, next)
	assert.Len(t, page, writers)
}
