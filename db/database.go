package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
)

// Database owns the shelf's SQLite connection lifecycle: directory
// creation, connection with WAL pragmas, and schema migration.
//
// Usage:
//
//	database, err := db.NewDatabase(db.DatabaseConfig{Path: "/data/shelf.db"})
//	if err != nil {
//	    logger.Fatal("open shelf", zap.Error(err))
//	}
//	defer database.Close()
//	repo := db.NewBookRepository(database.DB())
type Database struct {
	conn *sql.DB
	path string
}

// DatabaseConfig configures NewDatabase.
type DatabaseConfig struct {
	// Path is the database file path. Parent directories are created.
	Path string
	// MigrationsPath is the file:// URL of the migrations directory.
	// Default: "file://db/migrations".
	MigrationsPath string
	// Connection overrides the default connection settings.
	Connection *ConnectionConfig
}

// NewDatabase opens (creating if necessary) the shelf database and brings
// its schema up to date.
func NewDatabase(cfg DatabaseConfig) (*Database, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("database path is required")
	}
	if cfg.MigrationsPath == "" {
		cfg.MigrationsPath = "file://db/migrations"
	}

	if dir := filepath.Dir(cfg.Path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory %q: %w", dir, err)
		}
	}

	// Migrate first, on a dedicated connection golang-migrate can own.
	if err := RunMigrations(cfg.Path, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	connCfg := DefaultConnectionConfig(cfg.Path)
	if cfg.Connection != nil {
		connCfg = *cfg.Connection
		connCfg.Path = cfg.Path
	}

	conn, err := NewSQLiteConnection(connCfg)
	if err != nil {
		return nil, err
	}

	return &Database{conn: conn, path: cfg.Path}, nil
}

// DB exposes the underlying connection for repositories.
func (d *Database) DB() *sql.DB {
	return d.conn
}

// Path returns the database file path.
func (d *Database) Path() string {
	return d.path
}

// Close closes the underlying connection.
func (d *Database) Close() error {
	if d == nil || d.conn == nil {
		return nil
	}
	return d.conn.Close()
}
