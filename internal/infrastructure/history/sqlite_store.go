package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/splo1t/rotcipher/internal/domain"
	"github.com/splo1t/rotcipher/internal/ports"
)

// SQLiteStore persists history in a SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	path string
	mu   sync.Mutex
}

// OpenSQLiteStore creates (or opens) the database at path.
func OpenSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions); err != nil {
		return nil, fmt.Errorf("create history dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	db.SetMaxOpenConns(1)
	store := &SQLiteStore{db: db, path: path}
	if err := store.init(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init history db: %w", err)
	}
	return store, nil
}

func (s *SQLiteStore) init(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS operations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp TEXT NOT NULL,
		operation TEXT NOT NULL,
		shift INTEGER NOT NULL,
		original TEXT NOT NULL,
		result TEXT NOT NULL
	);`)
	return err
}

// Append inserts a new record.
func (s *SQLiteStore) Append(ctx context.Context, entry domain.LogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.ExecContext(ctx, `INSERT INTO operations
		(timestamp, operation, shift, original, result)
		VALUES (?, ?, ?, ?, ?)`,
		entry.Timestamp.Format(time.RFC3339Nano),
		string(entry.Operation),
		entry.Shift,
		entry.Original,
		entry.Result,
	)
	if err != nil {
		return fmt.Errorf("insert history: %w", err)
	}
	return nil
}

// Recent returns the newest n readable records in insertion order.
func (s *SQLiteStore) Recent(ctx context.Context, n int) ([]domain.LogEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	query := `SELECT timestamp, operation, shift, original, result FROM operations ORDER BY id DESC`
	var args []interface{}
	if n > 0 {
		query += " LIMIT ?"
		args = append(args, n)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var entries []domain.LogEntry
	for rows.Next() {
		var (
			entry domain.LogEntry
			ts    string
			op    string
		)
		if err := rows.Scan(&ts, &op, &entry.Shift, &entry.Original, &entry.Result); err != nil {
			return nil, err
		}
		// Rows with an unreadable timestamp or operation are skipped, like
		// malformed blocks in the text log.
		t, err := time.Parse(time.RFC3339Nano, ts)
		if err != nil {
			continue
		}
		dir, err := domain.ParseDirection(op)
		if err != nil {
			continue
		}
		entry.Timestamp = t
		entry.Operation = dir
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, nil
}

// Path returns the sqlite database path.
func (s *SQLiteStore) Path() string {
	return s.path
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

var _ ports.HistoryRepository = (*SQLiteStore)(nil)
