package migrations

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/hashicorp/go-hclog"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestReadMigrationFilesSortsAndSkips(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"002_saved_palettes.sql": "CREATE TABLE saved_palettes ();",
		"001_users.sql":          "CREATE TABLE users ();",
		"README.md":              "not a migration",
		"notes.sql":              "no version prefix",
	})

	got, err := ReadMigrationFiles(dir, hclog.NewNullLogger())
	if err != nil {
		t.Fatalf("ReadMigrationFiles returned error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d migrations, want 2: %+v", len(got), got)
	}
	if got[0].Version != 1 || got[0].Name != "users" || got[1].Name != "saved_palettes" {
		t.Errorf("unexpected order or names: %+v", got)
	}
}

func TestReadMigrationFilesRejectsDuplicates(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"001_users.sql":  "SELECT 1;",
		"001_people.sql": "SELECT 1;",
	})
	if _, err := ReadMigrationFiles(dir, hclog.NewNullLogger()); err == nil {
		t.Error("expected duplicate version error")
	}
}

func TestReadMigrationFilesMissingDir(t *testing.T) {
	if _, err := ReadMigrationFiles(filepath.Join(t.TempDir(), "nope"), hclog.NewNullLogger()); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestShippedMigrationsParse(t *testing.T) {
	got, err := ReadMigrationFiles(".", hclog.NewNullLogger())
	if err != nil {
		t.Fatal(err)
	}
	for i, m := range got {
		if m.Version != i+1 {
			t.Errorf("migration %d has version %d, want contiguous versions", i, m.Version)
		}
	}
}

func TestPending(t *testing.T) {
	all := []Migration{{Version: 1}, {Version: 2}, {Version: 3}}
	got := Pending(all, map[int]bool{1: true, 3: true})
	if len(got) != 1 || got[0].Version != 2 {
		t.Errorf("Pending = %+v, want only version 2", got)
	}
}

func TestRunMigrationsAppliesPending(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"001_users.sql":          "CREATE TABLE users (id INT);",
		"002_saved_palettes.sql": "CREATE TABLE saved_palettes (id INT);",
	})

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS schema_migrations")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT version FROM schema_migrations")).
		WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow(1))
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE saved_palettes (id INT);")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO schema_migrations")).
		WithArgs(2, "saved_palettes").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := RunMigrations(db, dir, hclog.NewNullLogger()); err != nil {
		t.Fatalf("RunMigrations returned error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
