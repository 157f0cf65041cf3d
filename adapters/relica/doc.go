// Package relica provides a relational MessageRepository built on the Relica
// query builder.
//
// Relica (github.com/coregx/relica) is a lightweight, type-safe database query builder
// for Go with zero production dependencies. The repository works with any
// *sql.DB opened with the mysql, postgres or sqlite3 driver.
//
// Messages live in a single table with an auto-incrementing id. Page tokens
// carry the id of the last row served (keyset pagination), so rows committed
// between two List calls never make already served rows reappear or vanish.
//
// Example usage:
//
//	import (
//	    "database/sql"
//	    "github.com/coregx/guestbook"
//	    "github.com/coregx/guestbook/adapters/relica"
//	    _ "github.com/mattn/go-sqlite3"
//	)
//
//	db, err := sql.Open("sqlite3", "db/database.sqlite")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	db.SetMaxOpenConns(5)
//
//	if err := relica.EnsureSchema(ctx, db, "sqlite3", ""); err != nil {
//	    log.Fatal(err)
//	}
//
//	gb, err := guestbook.New(
//	    guestbook.WithRepository(relica.NewMessageRepository(db, "sqlite3")),
//	    guestbook.WithLogger(logger),
//	)
package relica
