package db

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrDuplicateKeyword is returned when a filter keyword already exists
var ErrDuplicateKeyword = errors.New("keyword already exists")

// GetFilterKeywords retrieves all filter keywords ordered alphabetically
func (db *DB) GetFilterKeywords(ctx context.Context) ([]FilterKeyword, error) {
	var keywords []FilterKeyword
	query := `SELECT * FROM filter_keywords ORDER BY keyword`
	err := db.conn.SelectContext(ctx, &keywords, query)
	if err != nil {
		return nil, fmt.Errorf("get filter keywords: %w", err)
	}
	return keywords, nil
}

// CreateFilterKeyword stores a keyword, lower-cased and trimmed. Matching
// during ingestion is case-insensitive, so the canonical stored form is
// lowercase.
func (db *DB) CreateFilterKeyword(ctx context.Context, keyword string) (*FilterKeyword, error) {
	normalized := strings.ToLower(strings.TrimSpace(keyword))
	if normalized == "" {
		return nil, fmt.Errorf("keyword is empty")
	}

	query := `INSERT INTO filter_keywords (keyword) VALUES (?)`
	result, err := db.conn.ExecContext(ctx, query, normalized)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE") {
			return nil, fmt.Errorf("keyword %q: %w", normalized, ErrDuplicateKeyword)
		}
		return nil, fmt.Errorf("insert filter keyword: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("get last insert id: %w", err)
	}

	return &FilterKeyword{ID: id, Keyword: normalized}, nil
}

// DeleteFilterKeyword removes a keyword by ID
func (db *DB) DeleteFilterKeyword(ctx context.Context, id int64) error {
	query := `DELETE FROM filter_keywords WHERE id = ?`
	result, err := db.conn.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete filter keyword: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("filter keyword %d: %w", id, ErrNotFound)
	}
	return nil
}
