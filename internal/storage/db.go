package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/plantparent/internal/storage/kv"
	"github.com/dmitrijs2005/plantparent/internal/storage/migrations"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

type Repositories struct {
	KV kv.Repository
	DB *sql.DB
}

// Close releases the database handle, if any.
func (r *Repositories) Close() error {
	if r.DB == nil {
		return nil
	}
	return r.DB.Close()
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// Open opens (or creates) the SQLite database at dsn, migrates it and wires
// the repositories on top of it.
func Open(ctx context.Context, dsn string) (*Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// one writer; also keeps ":memory:" databases on a single connection
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %v", kv.ErrUnavailable, err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Repositories{
		KV: kv.NewSQLiteRepository(db),
		DB: db,
	}, nil
}

// OpenMemory returns repositories that live only in process memory.
func OpenMemory() *Repositories {
	return &Repositories{KV: kv.NewMemoryRepository()}
}
