// Package db persists consolidated vocabularies in SQLite: lemmas,
// the sources they were seen in, occurrence counts per source, and
// the surface forms that attested each lemma.
package db

import (
	"database/sql"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// InitDB applies the embedded schema to the connection, statement by
// statement. All statements are idempotent (IF NOT EXISTS), so InitDB
// is safe on an already-initialized database.
func InitDB(conn *sql.DB) error {
	for _, stmt := range strings.Split(migrationsSQL, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := conn.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
