package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Dosada05/tennis-cup/models"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
)

type SQLExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

type sqlDialect string

const (
	dialectPostgres sqlDialect = "postgres"
	dialectSQLite   sqlDialect = "sqlite"
)

// sqlTournamentRepository stores each tournament as one JSON document in
// the tournaments table, keyed by tournament key.
type sqlTournamentRepository struct {
	db      SQLExecutor
	dialect sqlDialect
}

// NewPostgresTournamentRepository stores tournaments in a JSONB column.
func NewPostgresTournamentRepository(db *sql.DB) TournamentRepository {
	return &sqlTournamentRepository{db: db, dialect: dialectPostgres}
}

// NewSQLiteTournamentRepository stores tournaments in a local SQLite (or
// Turso/libsql) key-value table.
func NewSQLiteTournamentRepository(db *sql.DB) TournamentRepository {
	return &sqlTournamentRepository{db: db, dialect: dialectSQLite}
}

// rebind turns ? placeholders into $n for Postgres.
func (r *sqlTournamentRepository) rebind(query string) string {
	if r.dialect != dialectPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, ch := range query {
		if ch == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(ch)
	}
	return b.String()
}

func (r *sqlTournamentRepository) Load(ctx context.Context, key string) (*models.Tournament, error) {
	query := r.rebind(`SELECT state, version FROM tournaments WHERE tournament_key = ?`)

	var (
		state   []byte
		version int64
	)
	err := r.db.QueryRowContext(ctx, query, key).Scan(&state, &version)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to load tournament %q: %w", key, err)
	}

	var t models.Tournament
	if err := json.Unmarshal(state, &t); err != nil {
		return nil, fmt.Errorf("failed to decode tournament %q: %w", key, err)
	}
	t.Key = key
	t.Version = version
	return &t, nil
}

func (r *sqlTournamentRepository) Save(ctx context.Context, t *models.Tournament) error {
	state, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("failed to encode tournament %q: %w", t.Key, err)
	}
	updatedAt := t.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}

	prev := previousVersion(t.Version)
	if prev == 0 {
		query := r.rebind(`INSERT INTO tournaments (tournament_key, state, version, updated_at) VALUES (?, ?, ?, ?)`)
		_, err = r.db.ExecContext(ctx, query, t.Key, r.stateArg(state), t.Version, updatedAt)
		if err != nil {
			if isUniqueViolation(err) {
				return ErrVersionConflict
			}
			return fmt.Errorf("failed to insert tournament %q: %w", t.Key, err)
		}
		return nil
	}

	query := r.rebind(`UPDATE tournaments SET state = ?, version = ?, updated_at = ? WHERE tournament_key = ? AND version = ?`)
	result, err := r.db.ExecContext(ctx, query, r.stateArg(state), t.Version, updatedAt, t.Key, prev)
	if err != nil {
		return fmt.Errorf("failed to update tournament %q: %w", t.Key, err)
	}
	return checkAffectedRows(result, ErrVersionConflict)
}

func (r *sqlTournamentRepository) Delete(ctx context.Context, key string) error {
	query := r.rebind(`DELETE FROM tournaments WHERE tournament_key = ?`)
	result, err := r.db.ExecContext(ctx, query, key)
	if err != nil {
		return fmt.Errorf("failed to delete tournament %q: %w", key, err)
	}
	return checkAffectedRows(result, ErrTournamentNotFound)
}

// stateArg passes JSON as text to SQLite and as bytes to Postgres JSONB.
func (r *sqlTournamentRepository) stateArg(state []byte) interface{} {
	if r.dialect == dialectSQLite {
		return string(state)
	}
	return state
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.Code == sqlite3.ErrConstraint
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
