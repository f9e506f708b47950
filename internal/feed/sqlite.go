package feed

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"timeago/internal/distance"
	appErrors "timeago/internal/errors"

	_ "modernc.org/sqlite" // Pure Go SQLite driver, WAL-friendly
)

// SQLiteStore reads entries directly from a SQLite database in read-only WAL
// mode, so a writer process can keep appending while the timeline is open.
type SQLiteStore struct {
	dbPath string
	dsn    string
}

// NewSQLiteStore constructs a store over the database file at dbPath.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	trimmed := strings.TrimSpace(dbPath)
	if trimmed == "" {
		return nil, appErrors.New(appErrors.CodeInvalidInput, "database path is empty", nil)
	}
	return &SQLiteStore{
		dbPath: trimmed,
		dsn:    buildSQLiteDSN(trimmed),
	}, nil
}

// buildSQLiteDSN creates a read-only WAL DSN for the given path.
func buildSQLiteDSN(dbPath string) string {
	u := url.URL{
		Scheme: "file",
		Path:   filepath.ToSlash(dbPath),
	}
	q := url.Values{}
	q.Set("mode", "ro")
	q.Set("_journal_mode", "WAL")
	q.Set("_busy_timeout", "3000")
	q.Set("cache", "shared")
	u.RawQuery = q.Encode()
	return u.String()
}

func (s *SQLiteStore) openDB(ctx context.Context) (*sql.DB, error) {
	db, err := sql.Open("sqlite", s.dsn)
	if err != nil {
		return nil, appErrors.New(appErrors.CodeStoreFailed, "open entries database", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, appErrors.New(appErrors.CodeStoreFailed, "ping entries database", err)
	}
	return db, nil
}

// List returns every entry ordered oldest first.
func (s *SQLiteStore) List(ctx context.Context) ([]Entry, error) {
	db, err := s.openDB(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = db.Close()
	}()

	rows, err := db.QueryContext(ctx, `
		SELECT id, title, COALESCE(note, ''), at
		FROM entries
		ORDER BY at, id
	`)
	if err != nil {
		return nil, appErrors.New(appErrors.CodeStoreFailed, "query entries", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var entries []Entry
	for rows.Next() {
		var (
			e  Entry
			at string
		)
		if err := rows.Scan(&e.ID, &e.Title, &e.Note, &at); err != nil {
			return nil, appErrors.New(appErrors.CodeStoreFailed, "scan entry", err)
		}
		e.At = distance.NewInstant(at)
		if !e.At.Valid() {
			return nil, appErrors.New(appErrors.CodeStoreFailed,
				fmt.Sprintf("entry %s has an unreadable timestamp %q", e.ID, at), nil)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, appErrors.New(appErrors.CodeStoreFailed, "read entries", err)
	}
	return entries, nil
}

// Path returns the database file path (for testing).
func (s *SQLiteStore) Path() string {
	return s.dbPath
}
