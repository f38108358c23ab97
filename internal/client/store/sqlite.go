package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/signon/internal/client/migrations"
	"github.com/dmitrijs2005/signon/internal/client/repositories/records"
	"github.com/dmitrijs2005/signon/internal/filex"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// RunMigrations applies the embedded goose migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// Open opens (creating if needed) the SQLite database at dsn, migrates it and
// returns a store over it. dsn is a file path, ":memory:" or a "file:" URI.
func Open(ctx context.Context, dsn string, opts ...Option) (*KVStore, error) {
	if dsn != ":memory:" && !strings.HasPrefix(dsn, "file:") {
		abs, err := filex.EnsureParentDir(dsn)
		if err != nil {
			return nil, err
		}
		dsn = abs
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// One connection: SQLite serializes writers anyway and an in-memory
	// database exists per connection.
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	s, err := New(records.NewSQLiteRepository(db), opts...)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	s.db = db
	return s, nil
}

// Close releases the database handle, if any.
func (s *KVStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
