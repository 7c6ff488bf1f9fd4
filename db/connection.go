// Package db provides the SQLite-backed bookshelf store: connection
// management, schema migrations and the book repository.
package db

import (
	"database/sql"
	"fmt"
	"time"

	// SQLite driver (pure Go, no CGO required)
	_ "modernc.org/sqlite"
)

// ConnectionConfig holds configuration for SQLite connections.
type ConnectionConfig struct {
	// Path is the database file path.
	Path string
	// BusyTimeoutMS is how long to wait for locks, in milliseconds.
	BusyTimeoutMS int
	// MaxOpenConns limits concurrent connections. SQLite behaves best with
	// a single writer, so the default is 1.
	MaxOpenConns int
	// MaxIdleConns limits idle connections in the pool.
	MaxIdleConns int
	// ConnMaxLifetime limits connection reuse (0 = no limit).
	ConnMaxLifetime time.Duration
}

// DefaultConnectionConfig returns settings tuned for a local single-user
// shelf: WAL mode, 5s busy timeout, single writer.
func DefaultConnectionConfig(path string) ConnectionConfig {
	return ConnectionConfig{
		Path:          path,
		BusyTimeoutMS: 5000,
		MaxOpenConns:  1,
		MaxIdleConns:  1,
	}
}

// NewSQLiteConnection opens a SQLite database with WAL mode and foreign
// keys enabled, applies the pool settings and verifies the connection with
// a ping.
//
// WAL (Write-Ahead Logging) gives concurrent readers with a single writer
// and crash recovery, which fits a shelf that is read constantly and
// written only on import.
func NewSQLiteConnection(cfg ConnectionConfig) (*sql.DB, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("database path is required")
	}

	conn, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %q: %w", cfg.Path, err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		fmt.Sprintf("PRAGMA busy_timeout = %d", cfg.BusyTimeoutMS),
		"PRAGMA foreign_keys = ON",
	}
	for _, pragma := range pragmas {
		if _, err := conn.Exec(pragma); err != nil {
			conn.Close()
			return nil, fmt.Errorf("failed to apply %q: %w", pragma, err)
		}
	}

	conn.SetMaxOpenConns(cfg.MaxOpenConns)
	conn.SetMaxIdleConns(cfg.MaxIdleConns)
	conn.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database %q: %w", cfg.Path, err)
	}
	return conn, nil
}
