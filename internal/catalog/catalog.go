// Package catalog maintains a SQLite index of script sources under a
// directory tree: header metadata, word counts, and a content fingerprint
// per file.
package catalog

import (
	"context"
	"database/sql"
	"encoding/hex"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/zeebo/blake3"

	"github.com/mirelia/scriptmd/core/script"
	"github.com/mirelia/scriptmd/core/sqlite"
	"github.com/mirelia/scriptmd/core/tex"
	"github.com/mirelia/scriptmd/internal/fileutil"
	"github.com/mirelia/scriptmd/internal/logging"
)

const schema = `
CREATE TABLE IF NOT EXISTS scripts (
	id             TEXT PRIMARY KEY,
	path           TEXT NOT NULL UNIQUE,
	title          TEXT NOT NULL,
	author         TEXT NOT NULL,
	series         TEXT NOT NULL,
	part           INTEGER NOT NULL,
	tags           TEXT NOT NULL,
	summary        TEXT NOT NULL,
	spoken_words   INTEGER NOT NULL,
	unspoken_words INTEGER NOT NULL,
	source_blake3  TEXT NOT NULL,
	scanned_at     TIMESTAMP NOT NULL
);
`

// Entry is one catalogued script source.
type Entry struct {
	ID            string    `json:"id"`
	Path          string    `json:"path"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	Series        string    `json:"series"`
	Part          int       `json:"part"`
	Tags          string    `json:"tags"`
	Summary       string    `json:"summary"`
	SpokenWords   int       `json:"spoken_words"`
	UnspokenWords int       `json:"unspoken_words"`
	SourceBlake3  string    `json:"source_blake3"`
	ScannedAt     time.Time `json:"scanned_at"`
}

// Catalog is an open catalog database.
type Catalog struct {
	db *sql.DB
}

// Open opens (creating if needed) the catalog database at path.
func Open(path string) (*Catalog, error) {
	db, err := sqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init catalog schema: %w", err)
	}
	return &Catalog{db: db}, nil
}

// Close closes the underlying database.
func (c *Catalog) Close() error {
	return c.db.Close()
}

// Fingerprint returns the hex BLAKE3 digest of data.
func Fingerprint(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Upsert inserts the entry, or updates the existing row with the same path.
// The row ID of an existing path is preserved.
func (c *Catalog) Upsert(ctx context.Context, entry Entry) error {
	const query = `
INSERT INTO scripts (id, path, title, author, series, part, tags, summary,
	spoken_words, unspoken_words, source_blake3, scanned_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(path) DO UPDATE SET
	title = excluded.title,
	author = excluded.author,
	series = excluded.series,
	part = excluded.part,
	tags = excluded.tags,
	summary = excluded.summary,
	spoken_words = excluded.spoken_words,
	unspoken_words = excluded.unspoken_words,
	source_blake3 = excluded.source_blake3,
	scanned_at = excluded.scanned_at
`
	_, err := c.db.ExecContext(ctx, query,
		entry.ID, entry.Path, entry.Title, entry.Author, entry.Series, entry.Part,
		entry.Tags, entry.Summary, entry.SpokenWords, entry.UnspokenWords,
		entry.SourceBlake3, entry.ScannedAt)
	if err != nil {
		return fmt.Errorf("upsert %s: %w", entry.Path, err)
	}
	return nil
}

// List returns all entries ordered by title.
func (c *Catalog) List(ctx context.Context) ([]Entry, error) {
	const query = `
SELECT id, path, title, author, series, part, tags, summary,
	spoken_words, unspoken_words, source_blake3, scanned_at
FROM scripts ORDER BY title, path
`
	rows, err := c.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Path, &e.Title, &e.Author, &e.Series, &e.Part,
			&e.Tags, &e.Summary, &e.SpokenWords, &e.UnspokenWords,
			&e.SourceBlake3, &e.ScannedAt); err != nil {
			return nil, fmt.Errorf("scan catalog row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// isScriptSource reports whether path looks like a script source file.
func isScriptSource(path string) bool {
	return strings.HasSuffix(path, ".tex") || strings.HasSuffix(path, ".tex.xz")
}

// ScanDir walks dir for script sources, parses each one, and upserts its
// entry. Files that fail to parse are logged and skipped rather than
// aborting the scan. Returns the number of entries catalogued.
func (c *Catalog) ScanDir(ctx context.Context, dir string) (int, error) {
	count := 0

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isScriptSource(path) {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		source, err := fileutil.ReadTextFile(path)
		if err != nil {
			logging.Warn("skipping unreadable source", "path", path, "error", err)
			return nil
		}

		s, err := tex.ParseScript(source)
		if err != nil {
			logging.Warn("skipping unparseable source", "path", path, "error", err)
			return nil
		}

		if err := c.Upsert(ctx, newEntry(path, source, s)); err != nil {
			return err
		}

		count++
		return nil
	})
	if err != nil {
		return count, fmt.Errorf("scan %s: %w", dir, err)
	}

	logging.Info("catalog scan complete", "dir", dir, "entries", count)
	return count, nil
}

func newEntry(path, source string, s *script.Script) Entry {
	words := s.WordCount()
	return Entry{
		ID:            uuid.NewString(),
		Path:          path,
		Title:         s.Title,
		Author:        s.Author,
		Series:        s.Series.Title,
		Part:          s.Series.Part,
		Tags:          strings.Join(s.Tags, ","),
		Summary:       s.Summary,
		SpokenWords:   words.Spoken,
		UnspokenWords: words.Unspoken,
		SourceBlake3:  Fingerprint([]byte(source)),
		ScannedAt:     time.Now().UTC(),
	}
}
