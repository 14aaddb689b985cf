package sqlite

import (
	"context"
	"fmt"
	"time"
)

// maxRecentFiles bounds the recent_files table.
const maxRecentFiles = 50

// RecentFile is a file the editor opened or saved.
type RecentFile struct {
	Path     string
	Size     int64
	LastUsed time.Time
}

// RecentStore tracks recently used files.
type RecentStore struct {
	db *DB
}

// NewRecentStore creates a new recent file store.
func NewRecentStore(db *DB) *RecentStore {
	return &RecentStore{db: db}
}

// Touch records that path was used just now.
func (s *RecentStore) Touch(ctx context.Context, path string, size int64) error {
	return s.touchAt(ctx, path, size, time.Now())
}

func (s *RecentStore) touchAt(ctx context.Context, path string, size int64, at time.Time) error {
	_, err := s.db.conn.ExecContext(ctx, `
		INSERT INTO recent_files (path, size_bytes, last_used) VALUES (?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET size_bytes = excluded.size_bytes, last_used = excluded.last_used
	`, path, size, at)
	if err != nil {
		return fmt.Errorf("failed to record recent file: %w", err)
	}

	// Keep only the newest entries
	_, _ = s.db.conn.ExecContext(ctx, `
		DELETE FROM recent_files
		WHERE path NOT IN (
			SELECT path FROM recent_files
			ORDER BY last_used DESC
			LIMIT ?
		)
	`, maxRecentFiles)

	return nil
}

// Recent returns the most recently used files, newest first.
func (s *RecentStore) Recent(ctx context.Context, limit int) ([]RecentFile, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.conn.QueryContext(ctx, `
		SELECT path, size_bytes, last_used
		FROM recent_files
		ORDER BY last_used DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent files: %w", err)
	}
	defer rows.Close()

	var files []RecentFile
	for rows.Next() {
		var f RecentFile
		if err := rows.Scan(&f.Path, &f.Size, &f.LastUsed); err != nil {
			return nil, fmt.Errorf("failed to scan recent file: %w", err)
		}
		files = append(files, f)
	}

	return files, rows.Err()
}
