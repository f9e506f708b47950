package feed

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	appErrors "timeago/internal/errors"
)

func seedEntriesDB(t *testing.T, rows [][4]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "feed.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open seed db: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if _, err := db.Exec(`PRAGMA journal_mode=WAL`); err != nil {
		t.Fatalf("enable WAL: %v", err)
	}
	if _, err := db.Exec(`CREATE TABLE entries (
		id    TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		note  TEXT,
		at    TEXT NOT NULL
	)`); err != nil {
		t.Fatalf("create entries table: %v", err)
	}
	for _, row := range rows {
		var note any
		if row[2] != "" {
			note = row[2]
		}
		if _, err := db.Exec(`INSERT INTO entries (id, title, note, at) VALUES (?, ?, ?, ?)`,
			row[0], row[1], note, row[3]); err != nil {
			t.Fatalf("insert entry %s: %v", row[0], err)
		}
	}
	return path
}

func TestSQLiteStoreListsSeededEntries(t *testing.T) {
	path := seedEntriesDB(t, [][4]string{
		{"evt-b", "Second", "with a **note**", "2024-03-01T12:00:00Z"},
		{"evt-a", "First", "", "2024-01-15T08:30:00Z"},
		{"evt-c", "Third", "", "2024-06-20T23:59:00Z"},
	})

	store, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	entries, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	wantOrder := []string{"evt-a", "evt-b", "evt-c"}
	for i, want := range wantOrder {
		if entries[i].ID != want {
			t.Errorf("entry %d: expected ID %s, got %s", i, want, entries[i].ID)
		}
	}
	if entries[0].Note != "" {
		t.Errorf("expected NULL note to scan as empty, got %q", entries[0].Note)
	}
	if entries[1].Note != "with a **note**" {
		t.Errorf("unexpected note: %q", entries[1].Note)
	}

	wantAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	if !entries[1].At.Valid() || !entries[1].At.Time().Equal(wantAt) {
		t.Errorf("expected at %v, got %v (valid=%v)", wantAt, entries[1].At.Time(), entries[1].At.Valid())
	}
}

func TestSQLiteStoreRejectsBadTimestamp(t *testing.T) {
	path := seedEntriesDB(t, [][4]string{
		{"evt-ok", "Fine", "", "2024-01-01T00:00:00Z"},
		{"evt-bad", "Broken", "", "yesterday-ish"},
	})

	store, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	if _, err := store.List(context.Background()); !appErrors.IsCode(err, appErrors.CodeStoreFailed) {
		t.Fatalf("expected store_failed for bad timestamp, got %v", err)
	}
}

func TestSQLiteStoreMissingDatabase(t *testing.T) {
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "absent.db"))
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	if _, err := store.List(context.Background()); !appErrors.IsCode(err, appErrors.CodeStoreFailed) {
		t.Fatalf("expected store_failed for missing database, got %v", err)
	}
}

func TestNewSQLiteStoreRequiresPath(t *testing.T) {
	if _, err := NewSQLiteStore("  "); !appErrors.IsCode(err, appErrors.CodeInvalidInput) {
		t.Fatalf("expected invalid_input for empty path, got %v", err)
	}
}
