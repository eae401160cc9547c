package migrations

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// RunMigrations executes all pending migrations found in dir
func RunMigrations(db *sql.DB, dir string, logger hclog.Logger) error {
	logger.Info("starting database migrations", "dir", dir)

	if err := createMigrationsTable(db); err != nil {
		return fmt.Errorf("failed to create migrations table: %v", err)
	}

	appliedMigrations, err := getAppliedMigrations(db)
	if err != nil {
		return fmt.Errorf("failed to get applied migrations: %v", err)
	}

	migrations, err := ReadMigrationFiles(dir, logger)
	if err != nil {
		return fmt.Errorf("failed to read migration files: %v", err)
	}

	for _, migration := range Pending(migrations, appliedMigrations) {
		logger.Info("applying migration", "version", migration.Version, "name", migration.Name)
		if err := applyMigration(db, migration); err != nil {
			return fmt.Errorf("failed to apply migration %03d_%s: %v", migration.Version, migration.Name, err)
		}
	}

	logger.Info("all migrations completed", "known", len(migrations), "previously_applied", len(appliedMigrations))
	return nil
}

// Pending filters out migrations whose version is already applied. The input
// order is preserved.
func Pending(migrations []Migration, applied map[int]bool) []Migration {
	var pending []Migration
	for _, m := range migrations {
		if applied[m.Version] {
			continue
		}
		pending = append(pending, m)
	}
	return pending
}

// createMigrationsTable creates the schema_migrations table
func createMigrationsTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			applied_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`

	_, err := db.Exec(query)
	return err
}

// getAppliedMigrations returns a map of applied migration versions
func getAppliedMigrations(db *sql.DB) (map[int]bool, error) {
	rows, err := db.Query(`SELECT version FROM schema_migrations ORDER BY version`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, err
		}
		applied[version] = true
	}

	return applied, rows.Err()
}

// ReadMigrationFiles reads NNN_name.sql files from dir, sorted by version
func ReadMigrationFiles(dir string, logger hclog.Logger) ([]Migration, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, fmt.Errorf("migrations directory %q not found", dir)
	}

	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var migrations []Migration
	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".sql") {
			continue
		}

		// e.g. "002_saved_palettes.sql"
		var version int
		var name string
		if _, err := fmt.Sscanf(file.Name(), "%d_%s", &version, &name); err != nil {
			logger.Warn("skipping file with invalid migration name", "file", file.Name())
			continue
		}
		name = strings.TrimSuffix(name, ".sql")

		content, err := os.ReadFile(filepath.Join(dir, file.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read migration file %s: %v", file.Name(), err)
		}

		migrations = append(migrations, Migration{
			Version: version,
			Name:    name,
			SQL:     string(content),
		})
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version < migrations[j].Version
	})

	for i := 1; i < len(migrations); i++ {
		if migrations[i].Version == migrations[i-1].Version {
			return nil, fmt.Errorf("duplicate migration version %03d", migrations[i].Version)
		}
	}

	return migrations, nil
}

// applyMigration executes a migration and records it in schema_migrations
func applyMigration(db *sql.DB, migration Migration) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(migration.SQL); err != nil {
		return err
	}

	recordQuery := `
		INSERT INTO schema_migrations (version, name, applied_at)
		VALUES ($1, $2, NOW())`

	if _, err := tx.Exec(recordQuery, migration.Version, migration.Name); err != nil {
		return err
	}

	return tx.Commit()
}
