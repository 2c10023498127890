package database

import (
	"database/sql"
	_ "embed"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schema string

// InitDB opens the SQLite database at dataSourceName, verifies the
// connection and applies the schema. Pass ":memory:" for tests.
func InitDB(dataSourceName string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", dataSourceName)
	if err != nil {
		return nil, err
	}

	// Every pool connection to ":memory:" is a distinct database, so the
	// schema would only exist on the first one. Pin the pool to a single
	// connection in that case.
	if dataSourceName == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if err = db.Ping(); err != nil {
		return nil, err
	}

	if _, err = db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, err
	}

	if _, err = db.Exec(schema); err != nil {
		return nil, err
	}

	return db, nil
}
