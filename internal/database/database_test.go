package database

import (
	"path/filepath"
	"testing"
)

func TestDBPath(t *testing.T) {
	expected := filepath.Join("data", "truewind.db")
	if got := DBPath(); got != expected {
		t.Errorf("DBPath() = %v, want %v", got, expected)
	}
}

func TestOpen_CreatesDirectory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "prefs.db")

	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer db.Close()

	var name string
	err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='preferences'").Scan(&name)
	if err != nil {
		t.Fatalf("preferences table missing: %v", err)
	}
}
