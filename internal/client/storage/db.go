package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/gophledger/internal/client/migrations"
	"github.com/dmitrijs2005/gophledger/internal/client/repositories/kv"
	"github.com/dmitrijs2005/gophledger/internal/filex"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

const (
	DriverSQLite = "sqlite"
	DriverFile   = "file"
	DriverMemory = "memory"
)

var ErrUnknownDriver = errors.New("unknown storage driver")

// RunMigrations applies the embedded goose migrations. It is idempotent.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens the SQLite file at dsn and brings its schema up to date.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return db, nil
}

// preparePath rejects an empty path and creates its directory.
func preparePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("storage path is required")
	}
	if _, err := filex.EnsureParentDir(path); err != nil {
		return fmt.Errorf("prepare storage path: %w", err)
	}
	return nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open builds the kv.Repository for driver. path is the SQLite file or the
// JSON file, and is ignored by the memory driver.
func Open(ctx context.Context, driver, path string) (kv.Repository, io.Closer, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case DriverSQLite, "":
		if err := preparePath(path); err != nil {
			return nil, nil, err
		}
		db, err := InitDatabase(ctx, path)
		if err != nil {
			return nil, nil, err
		}
		return kv.NewSQLiteRepository(db), db, nil

	case DriverFile:
		if err := preparePath(path); err != nil {
			return nil, nil, err
		}
		return kv.NewFileRepository(path), nopCloser{}, nil

	case DriverMemory:
		return kv.NewMemoryRepository(), nopCloser{}, nil
	}

	return nil, nil, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
}
