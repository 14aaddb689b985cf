package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// UserWord is a word the user added to the dictionary.
type UserWord struct {
	Word    string
	AddedAt time.Time
}

// WordStore persists user words. They are loaded into the dictionary once
// at startup.
type WordStore struct {
	db *DB
}

// NewWordStore creates a new word store.
func NewWordStore(db *DB) *WordStore {
	return &WordStore{db: db}
}

// Add stores a word. It returns false if the word was already present.
func (s *WordStore) Add(ctx context.Context, word string) (bool, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return false, fmt.Errorf("word cannot be empty")
	}

	result, err := s.db.conn.ExecContext(ctx, `
		INSERT OR IGNORE INTO user_words (word, added_at) VALUES (?, ?)
	`, word, time.Now())
	if err != nil {
		return false, fmt.Errorf("failed to add word: %w", err)
	}

	n, _ := result.RowsAffected()
	return n > 0, nil
}

// Remove deletes a word. It returns false if the word was not present.
func (s *WordStore) Remove(ctx context.Context, word string) (bool, error) {
	result, err := s.db.conn.ExecContext(ctx, `DELETE FROM user_words WHERE word = ?`, strings.TrimSpace(word))
	if err != nil {
		return false, fmt.Errorf("failed to remove word: %w", err)
	}

	n, _ := result.RowsAffected()
	return n > 0, nil
}

// List returns all user words ordered alphabetically.
func (s *WordStore) List(ctx context.Context) ([]UserWord, error) {
	rows, err := s.db.conn.QueryContext(ctx, `
		SELECT word, added_at FROM user_words ORDER BY word
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list words: %w", err)
	}
	defer rows.Close()

	var words []UserWord
	for rows.Next() {
		var w UserWord
		if err := rows.Scan(&w.Word, &w.AddedAt); err != nil {
			return nil, fmt.Errorf("failed to scan word: %w", err)
		}
		words = append(words, w)
	}

	return words, rows.Err()
}

// Words returns just the word strings, for loading into the dictionary.
func (s *WordStore) Words(ctx context.Context) ([]string, error) {
	list, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	words := make([]string, len(list))
	for i, w := range list {
		words[i] = w.Word
	}
	return words, nil
}
