// Package storage builds the configured MessageRepository for the guestbook binaries.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"

	"github.com/coregx/guestbook"
	"github.com/coregx/guestbook/adapters/logfile"
	"github.com/coregx/guestbook/adapters/relica"
	"github.com/coregx/guestbook/internal/config"
	"github.com/spf13/afero"

	// Database drivers selectable through STORAGE_BACKEND.
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// Repository is an opened message repository and the resources behind it.
type Repository struct {
	guestbook.MessageRepository

	db *sql.DB
}

// Close releases the connection pool, if any.
func (r *Repository) Close() error {
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}

// Open builds the repository selected by cfg.Storage.Backend.
//
// For relational backends it opens a bounded pool, checks connectivity and
// creates the message table if needed. For the logfile backend it uses the
// OS filesystem; the file itself is created on the first message.
func Open(ctx context.Context, cfg *config.Config, logger guestbook.Logger) (*Repository, error) {
	if !cfg.IsRelational() {
		logger.Infof("Using log file %s", cfg.Storage.LogFilePath)
		return &Repository{MessageRepository: logfile.NewMessageRepository(afero.NewOsFs(), cfg.Storage.LogFilePath)}, nil
	}

	driver := cfg.Storage.Backend
	if driver == config.BackendSQLite {
		// The sqlite3 driver does not create missing parent directories.
		if err := afero.NewOsFs().MkdirAll(filepath.Dir(cfg.Database.Database), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open(driver, cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := relica.EnsureSchema(ctx, db, driver, cfg.Database.Prefix); err != nil {
		_ = db.Close()
		return nil, err
	}
	logger.Infof("Using %s database (pool size %d)", driver, cfg.Database.MaxOpenConns)

	return &Repository{
		MessageRepository: relica.NewMessageRepositoryWithPrefix(db, driver, cfg.Database.Prefix),
		db:                db,
	}, nil
}
