package db

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	_ "github.com/golang-migrate/migrate/v4/source/file" // file:// source driver
)

// RunMigrations applies all pending up migrations from migrationsPath
// (file:// URL format, e.g. "file://db/migrations") to the database at
// dbPath. migrate.ErrNoChange is not an error; an already-current schema
// is the normal steady state.
//
// golang-migrate takes ownership of the connection it is given and closes
// it with the migrator, so migrations always run on their own connection
// opened here from the path.
func RunMigrations(dbPath, migrationsPath string) error {
	conn, err := NewSQLiteConnection(DefaultConnectionConfig(dbPath))
	if err != nil {
		return fmt.Errorf("failed to open database for migration: %w", err)
	}

	return migrateUp(conn, migrationsPath)
}

func migrateUp(conn *sql.DB, migrationsPath string) error {
	driver, err := sqlite.WithInstance(conn, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(migrationsPath, "main", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrator for %q: %w", migrationsPath, err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}
