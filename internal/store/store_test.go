package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/roach88/textvault/internal/errors"
)

func TestOpen_CreatesNewDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer s.Close()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestOpen_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	for i := 0; i < 3; i++ {
		s, err := Open(path)
		if err != nil {
			t.Fatalf("Open() iteration %d failed: %v", i, err)
		}
		s.Close()
	}

	s, err := Open(path)
	if err != nil {
		t.Fatalf("final Open() failed: %v", err)
	}
	defer s.Close()

	var name string
	err = s.db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", Table).Scan(&name)
	if err != nil {
		t.Errorf("table %q not found after idempotent opens: %v", Table, err)
	}
}

func TestOpen_Pragmas(t *testing.T) {
	s := createTestStore(t)

	checks := []struct {
		name     string
		expected string
	}{
		{"journal_mode", "wal"},
		{"busy_timeout", "5000"},
		{"user_version", "1"},
	}
	for _, c := range checks {
		if err := s.verifyPragma(c.name, c.expected); err != nil {
			t.Error(err)
		}
	}
}

func TestOpen_MigrationIndexes(t *testing.T) {
	s := createTestStore(t)

	for _, idx := range []string{"idx_strings_length", "idx_strings_word_count"} {
		var name string
		err := s.db.QueryRow("SELECT name FROM sqlite_master WHERE type='index' AND name=?", idx).Scan(&name)
		if err != nil {
			t.Errorf("index %q not found: %v", idx, err)
		}
	}
}

func TestOpen_EmptyPath(t *testing.T) {
	_, err := Open("")
	if !errors.IsStoreFailure(err) {
		t.Fatalf("Open(\"\") error = %v, want store failure", err)
	}
}

func TestOpen_UnwritableDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "test.db")

	_, err := Open(path)
	if !errors.IsStoreFailure(err) {
		t.Fatalf("Open() error = %v, want store failure", err)
	}
}

func TestClose_NilDB(t *testing.T) {
	s := &Store{}
	if err := s.Close(); err != nil {
		t.Errorf("Close() on empty store = %v", err)
	}
}
