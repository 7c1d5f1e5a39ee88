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

// CreatePack inserts a pack together with its items in a single transaction.
// If any insert fails the whole creation rolls back, so no partial pack is
// ever visible. Generates UUIDs for the pack and any item missing one.
func (s *SQLiteStore) CreatePack(ctx context.Context, pack model.Pack) error {
	if strings.TrimSpace(pack.Name) == "" {
		return fmt.Errorf("pack name must not be empty")
	}
	if pack.ID == "" {
		pack.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	pack.CreatedAt = now

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO packs (
			id, name, tag_id, subtitle, subtitle_icon, subtitle_accent,
			pinned, show_progress_ring, shows_progress_bar, shows_status_label,
			template_id, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		pack.ID, pack.Name, pack.TagID, pack.Subtitle, pack.SubtitleIcon, pack.SubtitleAccent,
		boolToInt(pack.Pinned), boolToInt(pack.ShowProgressRing),
		boolToInt(pack.ShowsProgressBar), boolToInt(pack.ShowsStatusLabel),
		pack.TemplateID, pack.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("creating pack: %w", err)
	}

	for i := range pack.Items {
		item := pack.Items[i]
		if item.ID == "" {
			item.ID = uuid.New().String()
		}
		item.PackID = pack.ID
		if item.SortOrder == 0 {
			item.SortOrder = i + 1
		}
		item.CreatedAt = now

		if err := insertPackItem(ctx, tx, item); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// DeletePack removes a pack by ID. CASCADE removes its items.
func (s *SQLiteStore) DeletePack(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM packs WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting pack %s: %w", id, err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("pack %s: %w", id, ErrNotFound)
	}
	return nil
}

// GetPackByID retrieves a single pack by ID, including its items and the
// joined tag name.
func (s *SQLiteStore) GetPackByID(ctx context.Context, id string) (*model.Pack, error) {
	return s.getPack(ctx, "WHERE packs.id = ?", id)
}

// GetPackByName retrieves a single pack by its exact name, including its
// items and the joined tag name.
func (s *SQLiteStore) GetPackByName(ctx context.Context, name string) (*model.Pack, error) {
	return s.getPack(ctx, "WHERE packs.name = ?", name)
}

func (s *SQLiteStore) getPack(ctx context.Context, where string, arg interface{}) (*model.Pack, error) {
	row := s.db.QueryRowxContext(ctx, `
		SELECT packs.*, COALESCE(tags.name, '') AS tag_name
		FROM packs LEFT JOIN tags ON packs.tag_id = tags.id `+where,
		arg,
	)

	pack, err := scanPack(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("pack %v: %w", arg, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting pack %v: %w", arg, err)
	}

	items, err := s.GetPackItems(ctx, pack.ID)
	if err != nil {
		return nil, fmt.Errorf("loading items for pack %s: %w", pack.ID, err)
	}
	pack.Items = items

	return &pack, nil
}

// GetPacks retrieves packs matching the filter, including items and tag
// names.
func (s *SQLiteStore) GetPacks(ctx context.Context, filter PackFilter) ([]model.Pack, error) {
	var conditions []string
	var args []interface{}

	if filter.Pinned != nil {
		conditions = append(conditions, "packs.pinned = ?")
		args = append(args, boolToInt(*filter.Pinned))
	}
	if filter.TagID != nil {
		conditions = append(conditions, "packs.tag_id = ?")
		args = append(args, *filter.TagID)
	}
	if filter.Query != nil && *filter.Query != "" {
		conditions = append(conditions, "packs.name LIKE ?")
		args = append(args, "%"+*filter.Query+"%")
	}

	query := `
		SELECT packs.*, COALESCE(tags.name, '') AS tag_name
		FROM packs LEFT JOIN tags ON packs.tag_id = tags.id`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	sortBy := "packs.created_at"
	if filter.SortBy != "" {
		allowed := map[string]string{
			"created_at": "packs.created_at",
			"name":       "packs.name",
		}
		if col, ok := allowed[filter.SortBy]; ok {
			sortBy = col
		}
	}
	direction := "ASC"
	if filter.SortDesc {
		direction = "DESC"
	}
	query += fmt.Sprintf(" ORDER BY %s %s", sortBy, direction)

	rows, err := s.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying packs: %w", err)
	}
	defer rows.Close()

	var packs []model.Pack
	for rows.Next() {
		pack, err := scanPack(rows)
		if err != nil {
			return nil, err
		}
		packs = append(packs, pack)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range packs {
		items, err := s.GetPackItems(ctx, packs[i].ID)
		if err != nil {
			return nil, fmt.Errorf("loading items for pack %s: %w", packs[i].ID, err)
		}
		packs[i].Items = items
	}

	return packs, nil
}

// AddPackItem inserts a new pack item and returns it as stored. Generates
// a UUID if ID is empty and defaults sort_order to max+1 within the pack.
func (s *SQLiteStore) AddPackItem(ctx context.Context, item model.PackItem) (*model.PackItem, error) {
	if strings.TrimSpace(item.Name) == "" {
		return nil, fmt.Errorf("pack item name must not be empty")
	}
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	item.CreatedAt = time.Now().UTC()

	if item.SortOrder == 0 {
		var maxOrder int
		err := s.db.GetContext(ctx, &maxOrder,
			"SELECT COALESCE(MAX(sort_order), 0) FROM pack_items WHERE pack_id = ?",
			item.PackID)
		if err != nil {
			return nil, fmt.Errorf("getting max pack item sort_order: %w", err)
		}
		item.SortOrder = maxOrder + 1
	}

	if err := insertPackItem(ctx, s.db, item); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdatePackItem overwrites quantity, category and note of a pack item.
func (s *SQLiteStore) UpdatePackItem(ctx context.Context, item model.PackItem) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE pack_items SET quantity = ?, category = ?, note = ?
		WHERE id = ?`,
		item.Quantity, item.Category, item.Note, item.ID,
	)
	if err != nil {
		return fmt.Errorf("updating pack item %s: %w", item.ID, err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("pack item %s: %w", item.ID, ErrNotFound)
	}
	return nil
}

// DeletePackItem removes a pack item by ID.
func (s *SQLiteStore) DeletePackItem(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM pack_items WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting pack item %s: %w", id, err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("pack item %s: %w", id, ErrNotFound)
	}
	return nil
}

// GetPackItems returns all items of a pack, ordered by sort_order.
func (s *SQLiteStore) GetPackItems(ctx context.Context, packID string) ([]model.PackItem, error) {
	rows, err := s.db.QueryxContext(ctx,
		"SELECT * FROM pack_items WHERE pack_id = ? ORDER BY sort_order",
		packID)
	if err != nil {
		return nil, fmt.Errorf("querying pack items: %w", err)
	}
	defer rows.Close()

	var items []model.PackItem
	for rows.Next() {
		item, err := scanPackItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// GetPackItemByID retrieves a single pack item by ID.
func (s *SQLiteStore) GetPackItemByID(ctx context.Context, id string) (*model.PackItem, error) {
	rows, err := s.db.QueryxContext(ctx, "SELECT * FROM pack_items WHERE id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("querying pack item %s: %w", id, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("querying pack item %s: %w", id, err)
		}
		return nil, fmt.Errorf("pack item %s: %w", id, ErrNotFound)
	}

	item, err := scanPackItem(rows)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// TogglePackItem flips the packed state of a pack item.
func (s *SQLiteStore) TogglePackItem(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE pack_items SET packed = CASE WHEN packed = 0 THEN 1 ELSE 0 END WHERE id = ?",
		id)
	if err != nil {
		return fmt.Errorf("toggling pack item %s: %w", id, err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("pack item %s: %w", id, ErrNotFound)
	}
	return nil
}

// UncheckAllPackItems sets packed=false on every item of a pack.
func (s *SQLiteStore) UncheckAllPackItems(ctx context.Context, packID string) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE pack_items SET packed = 0 WHERE pack_id = ?", packID)
	if err != nil {
		return fmt.Errorf("unchecking items for pack %s: %w", packID, err)
	}
	return nil
}

// execer is satisfied by both *sqlx.DB and *sqlx.Tx so item inserts can run
// inside or outside the pack-creation transaction.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

func insertPackItem(ctx context.Context, db execer, item model.PackItem) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO pack_items (
			id, pack_id, name, quantity, category, note,
			packed, pinned, last_minute, template_item_id, sort_order, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.PackID, item.Name, item.Quantity, item.Category, item.Note,
		boolToInt(item.Packed), boolToInt(item.Pinned), boolToInt(item.LastMinute),
		item.TemplateItemID, item.SortOrder, item.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting pack item %q: %w", item.Name, err)
	}
	return nil
}

// scanPack scans a packs row joined with the tag name.
func scanPack(row interface{ Scan(dest ...interface{}) error }) (model.Pack, error) {
	var (
		pack          model.Pack
		tagID         *string
		templateID    *string
		pinnedInt     int
		showRingInt   int
		showsBarInt   int
		showsLabelInt int
	)

	err := row.Scan(
		&pack.ID, &pack.Name, &tagID,
		&pack.Subtitle, &pack.SubtitleIcon, &pack.SubtitleAccent,
		&pinnedInt, &showRingInt, &showsBarInt, &showsLabelInt,
		&templateID, &pack.CreatedAt, &pack.TagName,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Pack{}, err
	}
	if err != nil {
		return model.Pack{}, fmt.Errorf("scanning pack row: %w", err)
	}

	pack.TagID = tagID
	pack.TemplateID = templateID
	pack.Pinned = pinnedInt != 0
	pack.ShowProgressRing = showRingInt != 0
	pack.ShowsProgressBar = showsBarInt != 0
	pack.ShowsStatusLabel = showsLabelInt != 0

	return pack, nil
}

// scanPackItem scans a pack_items row.
func scanPackItem(rows *sqlx.Rows) (model.PackItem, error) {
	var (
		item           model.PackItem
		packedInt      int
		pinnedInt      int
		lastMinuteInt  int
		templateItemID *string
	)

	err := rows.Scan(
		&item.ID, &item.PackID, &item.Name, &item.Quantity,
		&item.Category, &item.Note, &packedInt, &pinnedInt, &lastMinuteInt,
		&templateItemID, &item.SortOrder, &item.CreatedAt,
	)
	if err != nil {
		return model.PackItem{}, fmt.Errorf("scanning pack item row: %w", err)
	}

	item.Packed = packedInt != 0
	item.Pinned = pinnedInt != 0
	item.LastMinute = lastMinuteInt != 0
	item.TemplateItemID = templateItemID

	return item, nil
}
