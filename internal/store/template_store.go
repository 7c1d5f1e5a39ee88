package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/packonce/packonce/internal/model"
)

// CreateTemplate inserts a template together with its items in a single
// transaction. Generates UUIDs for the template and any item missing one.
func (s *SQLiteStore) CreateTemplate(ctx context.Context, tmpl model.Template) error {
	if strings.TrimSpace(tmpl.Title) == "" {
		return fmt.Errorf("template title must not be empty")
	}
	if tmpl.ID == "" {
		tmpl.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	tmpl.CreatedAt = now
	tmpl.UpdatedAt = now

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO templates (id, title, summary, category, icon, accent, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		tmpl.ID, tmpl.Title, tmpl.Summary, tmpl.Category, tmpl.Icon, tmpl.Accent,
		tmpl.CreatedAt, tmpl.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("creating template: %w", err)
	}

	for i := range tmpl.Items {
		item := tmpl.Items[i]
		if item.ID == "" {
			item.ID = uuid.New().String()
		}
		item.TemplateID = tmpl.ID
		if item.SortOrder == 0 {
			item.SortOrder = i + 1
		}
		item.CreatedAt = now

		_, err = tx.ExecContext(ctx, `
			INSERT INTO template_items (
				id, template_id, name, quantity, category, note,
				pinned, last_minute, sort_order, created_at
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			item.ID, item.TemplateID, item.Name, item.Quantity, item.Category, item.Note,
			boolToInt(item.Pinned), boolToInt(item.LastMinute), item.SortOrder, item.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("creating template item %q: %w", item.Name, err)
		}
	}

	return tx.Commit()
}

// DeleteTemplate removes a template. CASCADE removes its items; packs
// created from it keep existing with template_id nulled out.
func (s *SQLiteStore) DeleteTemplate(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM templates WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting template %s: %w", id, err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("template %s: %w", id, ErrNotFound)
	}
	return nil
}

// GetTemplateByID retrieves a single template by ID, including its items.
func (s *SQLiteStore) GetTemplateByID(ctx context.Context, id string) (*model.Template, error) {
	return s.getTemplate(ctx, "SELECT * FROM templates WHERE id = ?", id)
}

// GetTemplateByTitle retrieves a single template by its title,
// including its items.
func (s *SQLiteStore) GetTemplateByTitle(ctx context.Context, title string) (*model.Template, error) {
	return s.getTemplate(ctx, "SELECT * FROM templates WHERE title = ?", title)
}

func (s *SQLiteStore) getTemplate(ctx context.Context, query string, arg interface{}) (*model.Template, error) {
	row := s.db.QueryRowxContext(ctx, query, arg)

	tmpl, err := scanTemplate(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("template %v: %w", arg, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting template %v: %w", arg, err)
	}

	items, err := s.GetTemplateItems(ctx, tmpl.ID)
	if err != nil {
		return nil, fmt.Errorf("loading items for template %s: %w", tmpl.ID, err)
	}
	tmpl.Items = items

	return &tmpl, nil
}

// GetTemplates retrieves all templates ordered by title, without items.
func (s *SQLiteStore) GetTemplates(ctx context.Context) ([]model.Template, error) {
	rows, err := s.db.QueryxContext(ctx, "SELECT * FROM templates ORDER BY title")
	if err != nil {
		return nil, fmt.Errorf("querying templates: %w", err)
	}
	defer rows.Close()

	var templates []model.Template
	for rows.Next() {
		tmpl, err := scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		templates = append(templates, tmpl)
	}
	return templates, rows.Err()
}

// UpdateTemplateItem overwrites quantity, category and note of a template
// item. This is the write side of propagate-to-template.
func (s *SQLiteStore) UpdateTemplateItem(ctx context.Context, item model.TemplateItem) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE template_items SET quantity = ?, category = ?, note = ?
		WHERE id = ?`,
		item.Quantity, item.Category, item.Note, item.ID,
	)
	if err != nil {
		return fmt.Errorf("updating template item %s: %w", item.ID, err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("template item %s: %w", item.ID, ErrNotFound)
	}

	_, err = s.db.ExecContext(ctx,
		"UPDATE templates SET updated_at = ? WHERE id = (SELECT template_id FROM template_items WHERE id = ?)",
		time.Now().UTC(), item.ID,
	)
	if err != nil {
		return fmt.Errorf("touching template for item %s: %w", item.ID, err)
	}
	return nil
}

// GetTemplateItems returns all items of a template, ordered by sort_order.
func (s *SQLiteStore) GetTemplateItems(ctx context.Context, templateID string) ([]model.TemplateItem, error) {
	rows, err := s.db.QueryxContext(ctx,
		"SELECT * FROM template_items WHERE template_id = ? ORDER BY sort_order",
		templateID)
	if err != nil {
		return nil, fmt.Errorf("querying template items: %w", err)
	}
	defer rows.Close()

	var items []model.TemplateItem
	for rows.Next() {
		item, err := scanTemplateItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// scanTemplate scans a template row.
func scanTemplate(row interface{ Scan(dest ...interface{}) error }) (model.Template, error) {
	var tmpl model.Template
	err := row.Scan(
		&tmpl.ID, &tmpl.Title, &tmpl.Summary, &tmpl.Category,
		&tmpl.Icon, &tmpl.Accent, &tmpl.CreatedAt, &tmpl.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Template{}, err
	}
	if err != nil {
		return model.Template{}, fmt.Errorf("scanning template row: %w", err)
	}
	return tmpl, nil
}

// scanTemplateItem scans a template_items row.
func scanTemplateItem(rows *sqlx.Rows) (model.TemplateItem, error) {
	var (
		item          model.TemplateItem
		pinnedInt     int
		lastMinuteInt int
	)

	err := rows.Scan(
		&item.ID, &item.TemplateID, &item.Name, &item.Quantity,
		&item.Category, &item.Note, &pinnedInt, &lastMinuteInt,
		&item.SortOrder, &item.CreatedAt,
	)
	if err != nil {
		return model.TemplateItem{}, fmt.Errorf("scanning template item row: %w", err)
	}

	item.Pinned = pinnedInt != 0
	item.LastMinute = lastMinuteInt != 0
	return item, nil
}
