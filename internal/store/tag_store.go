package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/packonce/packonce/internal/model"
)

// CreateTag inserts a new tag. Generates a UUID if ID is empty.
func (s *SQLiteStore) CreateTag(ctx context.Context, tag model.Tag) error {
	if strings.TrimSpace(tag.Name) == "" {
		return fmt.Errorf("tag name must not be empty")
	}
	if tag.ID == "" {
		tag.ID = uuid.New().String()
	}
	tag.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO tags (id, name, created_at) VALUES (?, ?, ?)",
		tag.ID, tag.Name, tag.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("creating tag: %w", err)
	}
	return nil
}

// GetTags retrieves all tags ordered by name.
func (s *SQLiteStore) GetTags(ctx context.Context) ([]model.Tag, error) {
	rows, err := s.db.QueryxContext(ctx, "SELECT * FROM tags ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("querying tags: %w", err)
	}
	defer rows.Close()

	var tags []model.Tag
	for rows.Next() {
		var t model.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning tag row: %w", err)
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}

// GetTagByName retrieves a tag by its exact name.
func (s *SQLiteStore) GetTagByName(ctx context.Context, name string) (*model.Tag, error) {
	var t model.Tag
	err := s.db.QueryRowxContext(ctx,
		"SELECT * FROM tags WHERE name = ?", name,
	).Scan(&t.ID, &t.Name, &t.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("tag %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting tag %q: %w", name, err)
	}
	return &t, nil
}

// DeleteTag removes a tag. Packs referencing it keep existing; their
// tag_id is nulled out by the schema.
func (s *SQLiteStore) DeleteTag(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM tags WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting tag %s: %w", id, err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("tag %s: %w", id, ErrNotFound)
	}
	return nil
}
