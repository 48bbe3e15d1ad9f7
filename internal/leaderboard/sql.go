// internal/leaderboard/sql.go
//
// SQLite implementation of Store.
// Responsibilities:
//   - Opening the database with safe defaults (busy timeout, WAL).
//   - Applying embedded migrations (idempotent, recorded in _migrations).
//   - Inserting and listing leaderboard entries.
//
// The default DSN (see config) is a shared-cache in-memory database, so
// the leaderboard lives as long as the process, like the memory store.

package leaderboard

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/crossword/assets"
)

// completedLayout is fixed width so completed_at sorts correctly as text.
const completedLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SQLStore persists entries in SQLite.
type SQLStore struct {
	db  *sql.DB
	now func() time.Time
}

// OpenSQL opens (and creates if missing) the database and migrates it.
func OpenSQL(dsn string) (*SQLStore, error) {
	db, err := openDB(dsn)
	if err != nil {
		return nil, err
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLStore{db: db, now: time.Now}, nil
}

// isMemoryDSN reports whether dsn names an in-memory database.
func isMemoryDSN(dsn string) bool {
	return dsn == ":memory:" || strings.Contains(dsn, "mode=memory")
}

// openDB opens a SQLite database with busy timeout and WAL journaling.
// For file paths the parent directory is created first.
func openDB(dsn string) (*sql.DB, error) {
	if !isMemoryDSN(dsn) && !strings.HasPrefix(dsn, "file:") {
		if dir := filepath.Dir(dsn); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("mkdir %s: %w", dir, err)
			}
		}
	}

	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	db, err := sql.Open("sqlite3", dsn+sep+"_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	// Each pooled connection to an in-memory database would see its own
	// empty database.
	if isMemoryDSN(dsn) {
		db.SetMaxOpenConns(1)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("open %s: %w", dsn, err)
	}
	return db, nil
}

// migrate applies the embedded *.sql files in lexical order, skipping
// those already recorded in _migrations. Each file runs in its own
// transaction.
func migrate(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	root, err := assets.Migrations()
	if err != nil {
		return fmt.Errorf("migrations fs: %w", err)
	}
	var files []string
	if err := fs.WalkDir(root, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(strings.ToLower(d.Name()), ".sql") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return fmt.Errorf("walk migrations: %w", err)
	}
	sort.Strings(files)

	for _, f := range files {
		var done int
		err := db.QueryRow(`SELECT 1 FROM _migrations WHERE name=?`, f).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", f).Msg("already applied")
			continue
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("query _migrations: %w", err)
		}

		body, err := fs.ReadFile(root, f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(string(body)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", f, err)
		}
		if _, err := tx.Exec(`INSERT INTO _migrations(name) VALUES (?)`, f); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", f, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", f, err)
		}
		log.Info().Str("migration", f).Msg("applied")
	}
	return nil
}

// Submit inserts a validated entry.
func (s *SQLStore) Submit(ctx context.Context, sub Submission) (Entry, error) {
	e, err := newEntry(sub, s.now())
	if err != nil {
		return Entry{}, err
	}
	times, err := json.Marshal(e.LevelTimes)
	if err != nil {
		return Entry{}, fmt.Errorf("encode level times: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
        INSERT INTO leaderboard_entries (id, nickname, total_seconds, level_times, completed_at)
        VALUES (?, ?, ?, ?, ?)`,
		e.ID, e.Nickname, e.TotalSeconds, string(times), e.CompletedAt.UTC().Format(completedLayout),
	)
	if err != nil {
		return Entry{}, fmt.Errorf("insert entry: %w", err)
	}
	return e, nil
}

// List fetches the fastest runs.
func (s *SQLStore) List(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, nickname, total_seconds, level_times, completed_at
        FROM leaderboard_entries
        ORDER BY total_seconds ASC, completed_at ASC
        LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Entry, 0, limit)
	for rows.Next() {
		var (
			e              Entry
			times, created string
		)
		if err := rows.Scan(&e.ID, &e.Nickname, &e.TotalSeconds, &times, &created); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(times), &e.LevelTimes); err != nil {
			return nil, fmt.Errorf("decode level times: %w", err)
		}
		e.CompletedAt, _ = time.Parse(completedLayout, created)
		out = append(out, e)
	}
	return out, rows.Err()
}

// Close releases the database.
func (s *SQLStore) Close() error { return s.db.Close() }
