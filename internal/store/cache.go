// Package store provides a SQLite-backed cache for parsed CSV rows.
// It only memoizes parsing: the analysis model is still recomputed
// from freshly loaded transactions on every run.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"spendwise/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Cache provides SQLite-backed transaction caching.
type Cache struct {
	db *sql.DB
}

// Open opens or creates the cache database at the given path.
func Open(dbPath string) (*Cache, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating cache dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening cache db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Cache{db: db}, nil
}

// Close closes the cache database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// FileInfo holds the tracked mtime and size for a file.
type FileInfo struct {
	MtimeNs   int64
	SizeBytes int64
}

// GetTrackedFiles returns a map of file_path -> FileInfo for all tracked files.
func (c *Cache) GetTrackedFiles() (map[string]FileInfo, error) {
	rows, err := c.db.Query("SELECT file_path, mtime_ns, size_bytes FROM file_tracker")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	result := make(map[string]FileInfo)
	for rows.Next() {
		var path string
		var fi FileInfo
		if err := rows.Scan(&path, &fi.MtimeNs, &fi.SizeBytes); err != nil {
			return nil, err
		}
		result[path] = fi
	}
	return result, rows.Err()
}

// SaveFile replaces the cached rows for one statement file and updates
// its tracking info, atomically.
func (c *Cache) SaveFile(filePath string, txs []model.Transaction, mtimeNs, sizeBytes int64) error {
	tx, err := c.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM transactions WHERE file_path = ?", filePath); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`INSERT INTO transactions
		(file_path, date, description, amount, kind, category)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer func() { _ = stmt.Close() }()

	for _, t := range txs {
		if _, err := stmt.Exec(filePath, t.Date, t.Description, t.Amount, string(t.Kind), t.Category); err != nil {
			return err
		}
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_, err = tx.Exec(`INSERT OR REPLACE INTO file_tracker (file_path, mtime_ns, size_bytes, parsed_at)
		VALUES (?, ?, ?, ?)`, filePath, mtimeNs, sizeBytes, now)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// LoadFiles reads the cached transactions for the given file paths.
func (c *Cache) LoadFiles(paths []string) ([]model.Transaction, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	wanted := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		wanted[p] = struct{}{}
	}

	rows, err := c.db.Query("SELECT file_path, date, description, amount, kind, category FROM transactions")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var txs []model.Transaction
	for rows.Next() {
		var path, kind string
		var t model.Transaction
		var desc, cat sql.NullString
		if err := rows.Scan(&path, &t.Date, &desc, &t.Amount, &kind, &cat); err != nil {
			return nil, err
		}
		if _, ok := wanted[path]; !ok {
			continue
		}
		t.Kind = model.Kind(kind)
		if desc.Valid {
			t.Description = desc.String
		}
		if cat.Valid {
			t.Category = cat.String
		}
		txs = append(txs, t)
	}
	return txs, rows.Err()
}

// DeleteFile removes a file's cached rows and tracking entry.
func (c *Cache) DeleteFile(filePath string) error {
	if _, err := c.db.Exec("DELETE FROM transactions WHERE file_path = ?", filePath); err != nil {
		return err
	}
	_, err := c.db.Exec("DELETE FROM file_tracker WHERE file_path = ?", filePath)
	return err
}

// TransactionCount returns the number of cached rows.
func (c *Cache) TransactionCount() (int, error) {
	var count int
	err := c.db.QueryRow("SELECT COUNT(*) FROM transactions").Scan(&count)
	return count, err
}
