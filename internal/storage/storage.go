// Package storage opens the relational database behind the blog and runs the
// embedded schema migrations against it. Repositories receive a ready
// *bun.DB and never deal with drivers or DSNs themselves.
package storage

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
)

// Config captures the connection settings for a storage backend.
type Config struct {
	Driver string
	DSN    string
}

// DefaultConfig returns an on-disk SQLite database in the working directory.
func DefaultConfig() Config {
	return Config{
		Driver: "sqlite3",
		DSN:    "file:blog.db?_foreign_keys=on",
	}
}

// Open connects to the configured database and wraps it with bun.
func Open(cfg Config) (*bun.DB, error) {
	var driver string
	switch strings.TrimSpace(cfg.Driver) {
	case "", "sqlite", "sqlite3":
		driver = "sqlite3"
	default:
		return nil, fmt.Errorf("storage: unsupported driver %q", cfg.Driver)
	}

	dsn := strings.TrimSpace(cfg.DSN)
	if dsn == "" {
		dsn = DefaultConfig().DSN
	}

	sqlDB, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("storage: open database: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("storage: ping database: %w", err)
	}

	return bun.NewDB(sqlDB, sqlitedialect.New()), nil
}

// OpenMemory returns an in-memory SQLite database shared across connections,
// used by tests and the demo server's ephemeral mode.
func OpenMemory() (*bun.DB, error) {
	return Open(Config{Driver: "sqlite3", DSN: "file::memory:?cache=shared"})
}
