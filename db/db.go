package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

// DefaultTimeout bounds the initial connectivity check.
const DefaultTimeout = 5 * time.Second

// Connect opens a Postgres pool and verifies it within timeout.
func Connect(dsn string, timeout time.Duration) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create database handle: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	return db, ping(db, timeout)
}

// OpenSQLite opens a local SQLite file. An empty primaryURL keeps the
// database local; otherwise the libsql driver talks to a remote Turso
// database and path is ignored.
func OpenSQLite(path, primaryURL, authToken string, timeout time.Duration) (*sql.DB, error) {
	var (
		db  *sql.DB
		err error
	)
	if primaryURL == "" {
		db, err = sql.Open("sqlite3", path)
		if err == nil {
			// SQLite allows a single writer; ":memory:" is also per connection.
			db.SetMaxOpenConns(1)
		}
	} else {
		db, err = sql.Open("libsql", primaryURL+"?authToken="+authToken)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create database handle: %w", err)
	}
	return db, ping(db, timeout)
}

func ping(db *sql.DB, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return fmt.Errorf("failed to ping database within %v: %w (close also failed: %v)", timeout, err, closeErr)
		}
		return fmt.Errorf("failed to ping database within %v: %w", timeout, err)
	}
	return nil
}
