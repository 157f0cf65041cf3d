package relica

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"strings"

	"github.com/coregx/guestbook"
)

// SchemaFiles holds the CREATE TABLE statement for each supported driver,
// named <driver>.sql. Use them directly with an external migration tool or
// call EnsureSchema.
//
//go:embed schema/*.sql
var SchemaFiles embed.FS

// EnsureSchema creates the message table if it does not exist yet.
// driverName must be "mysql", "postgres" or "sqlite3"; prefix is prepended to
// the table name ("" gives "message").
func EnsureSchema(ctx context.Context, db *sql.DB, driverName, prefix string) error {
	ddl, err := SchemaFiles.ReadFile("schema/" + driverName + ".sql")
	if err != nil {
		return guestbook.NewErrorWithCause(guestbook.ErrCodeConfiguration,
			fmt.Sprintf("no schema for driver %q", driverName), err)
	}

	stmt := strings.ReplaceAll(string(ddl), "{{table}}", prefix+"message")
	if _, err := db.ExecContext(ctx, stmt); err != nil {
		return guestbook.NewErrorWithCause(guestbook.ErrCodeDatabase, "failed to create message table", err)
	}
	return nil
}
