// Package sqlitestore keeps page content in a SQLite database.
package sqlitestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/HeyGarrison/cakeelizabethdotcom/content"
	_ "modernc.org/sqlite"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS page_content (
	slug       TEXT PRIMARY KEY,
	body       BLOB NOT NULL,
	updated_at TEXT NOT NULL
);
`

// Store is a content.Store backed by SQLite.
type Store struct {
	db *sql.DB
}

var _ content.Store = (*Store)(nil)

// Open opens (creating if needed) the database at dbPath.
func Open(dbPath string) (*Store, error) {
	if strings.TrimSpace(dbPath) == "" {
		return nil, fmt.Errorf("sqlite content: db path cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("sqlite content: create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("sqlite content: open db: %w", err)
	}

	s := &Store{db: db}
	if err := s.init(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) init() error {
	if _, err := s.db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		return fmt.Errorf("sqlite content: set busy timeout: %w", err)
	}
	if _, err := s.db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("sqlite content: create schema: %w", err)
	}
	return nil
}

// Get implements content.Store.
func (s *Store) Get(ctx context.Context, slug string) (content.Document, error) {
	if err := content.ValidateSlug(slug); err != nil {
		return content.Document{}, err
	}

	var (
		body    []byte
		updated string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT body, updated_at FROM page_content WHERE slug = ?`, slug,
	).Scan(&body, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return content.Document{}, fmt.Errorf("%w: %s", content.ErrNotFound, slug)
	}
	if err != nil {
		return content.Document{}, fmt.Errorf("sqlite content: get %s: %w", slug, err)
	}

	modTime, err := time.Parse(time.RFC3339Nano, updated)
	if err != nil {
		return content.Document{}, fmt.Errorf("sqlite content: bad timestamp for %s: %w", slug, err)
	}
	return content.Document{Slug: slug, Raw: body, ModTime: modTime}, nil
}

// List implements content.Store.
func (s *Store) List(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT slug FROM page_content ORDER BY slug`)
	if err != nil {
		return nil, fmt.Errorf("sqlite content: list: %w", err)
	}
	defer rows.Close()

	var slugs []string
	for rows.Next() {
		var slug string
		if err := rows.Scan(&slug); err != nil {
			return nil, fmt.Errorf("sqlite content: scan slug: %w", err)
		}
		slugs = append(slugs, slug)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite content: list: %w", err)
	}
	return slugs, nil
}

// Put inserts or replaces one document. A zero ModTime is stored as now.
func (s *Store) Put(ctx context.Context, doc content.Document) error {
	return put(ctx, s.db, doc)
}

// Import copies every document of src into the database in one
// transaction and returns how many were written.
func (s *Store) Import(ctx context.Context, src content.Store) (int, error) {
	slugs, err := src.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("sqlite content: import: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("sqlite content: begin import: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, slug := range slugs {
		doc, err := src.Get(ctx, slug)
		if err != nil {
			return 0, fmt.Errorf("sqlite content: import %s: %w", slug, err)
		}
		if err := put(ctx, tx, doc); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("sqlite content: commit import: %w", err)
	}
	return len(slugs), nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func put(ctx context.Context, db execer, doc content.Document) error {
	if err := content.ValidateSlug(doc.Slug); err != nil {
		return err
	}
	mod := doc.ModTime
	if mod.IsZero() {
		mod = time.Now()
	}
	_, err := db.ExecContext(ctx, `
INSERT INTO page_content (slug, body, updated_at) VALUES (?, ?, ?)
ON CONFLICT(slug) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at`,
		doc.Slug, doc.Raw, mod.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("sqlite content: put %s: %w", doc.Slug, err)
	}
	return nil
}
