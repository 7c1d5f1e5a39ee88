package store

import (
	"context"
	"errors"

	"github.com/packonce/packonce/internal/model"
)

// ErrNotFound is returned when an operation targets an entity that does not
// exist (or no longer exists). Callers that must be defensive against stale
// references check it with errors.Is.
var ErrNotFound = errors.New("not found")

// PackFilter controls filtering and sorting for pack queries.
type PackFilter struct {
	Pinned   *bool   // filter by pack pinned flag, nil for all
	TagID    *string // filter by tag, nil for all
	Query    *string // search pack name
	SortBy   string  // "created_at", "name"
	SortDesc bool
}

// Store defines the persistence interface for tags, templates, packs and
// their owned items.
type Store interface {
	// === Tags ===

	CreateTag(ctx context.Context, tag model.Tag) error
	GetTags(ctx context.Context) ([]model.Tag, error)
	GetTagByName(ctx context.Context, name string) (*model.Tag, error)
	DeleteTag(ctx context.Context, id string) error

	// === Templates ===

	CreateTemplate(ctx context.Context, tmpl model.Template) error
	DeleteTemplate(ctx context.Context, id string) error
	GetTemplateByID(ctx context.Context, id string) (*model.Template, error)
	GetTemplateByTitle(ctx context.Context, title string) (*model.Template, error)
	GetTemplates(ctx context.Context) ([]model.Template, error)
	UpdateTemplateItem(ctx context.Context, item model.TemplateItem) error
	GetTemplateItems(ctx context.Context, templateID string) ([]model.TemplateItem, error)

	// === Packs ===

	CreatePack(ctx context.Context, pack model.Pack) error
	DeletePack(ctx context.Context, id string) error
	GetPackByID(ctx context.Context, id string) (*model.Pack, error)
	GetPackByName(ctx context.Context, name string) (*model.Pack, error)
	GetPacks(ctx context.Context, filter PackFilter) ([]model.Pack, error)

	// === Pack items ===

	AddPackItem(ctx context.Context, item model.PackItem) (*model.PackItem, error)
	UpdatePackItem(ctx context.Context, item model.PackItem) error
	DeletePackItem(ctx context.Context, id string) error
	GetPackItems(ctx context.Context, packID string) ([]model.PackItem, error)
	GetPackItemByID(ctx context.Context, id string) (*model.PackItem, error)
	TogglePackItem(ctx context.Context, id string) error
	UncheckAllPackItems(ctx context.Context, packID string) error
}
