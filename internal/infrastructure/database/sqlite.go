package database

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// ConnectSQLite opens a SQLite database with WAL mode, foreign key
// enforcement, and a busy timeout. Pool sizing is left to the caller:
// the write handle should be capped at one connection.
func ConnectSQLite(dbName string) (*sql.DB, error) {
	return sql.Open("sqlite", fmt.Sprintf("%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)", dbName))
}
