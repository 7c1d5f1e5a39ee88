// Package engine implements the pack operations: creating packs from
// templates, mutating pack items, propagating edits back to templates,
// and resetting packs. All operations are synchronous; on success the
// change is durable and immediately visible to reads.
package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/packonce/packonce/internal/model"
	"github.com/packonce/packonce/internal/store"
)

// Engine coordinates pack mutations against the store and notifies
// subscribed listeners after each successful change.
type Engine struct {
	store     store.Store
	listeners []Listener
}

// New creates an engine backed by the given store.
func New(s store.Store) *Engine {
	return &Engine{store: s}
}

// CreateOptions carries the display hints chosen at pack creation time.
// They are stored as-is and never recomputed.
type CreateOptions struct {
	TagID            *string
	Subtitle         string
	SubtitleIcon     string
	SubtitleAccent   string
	Pinned           bool
	ShowProgressRing bool
	ShowsProgressBar bool
	ShowsStatusLabel bool
}

// CreateFromTemplate creates a new pack whose items are a deep copy of the
// template's current items. Each copy starts unpacked and records a
// reference to its source template item so later edits can be propagated.
// The pack and its items are persisted atomically; on failure no partial
// pack remains visible.
func (e *Engine) CreateFromTemplate(ctx context.Context, name, templateID string, opts CreateOptions) (*model.Pack, error) {
	tmpl, err := e.store.GetTemplateByID(ctx, templateID)
	if err != nil {
		return nil, fmt.Errorf("loading template: %w", err)
	}

	pack := newPack(name, opts)
	pack.TemplateID = &tmpl.ID

	for i := range tmpl.Items {
		src := tmpl.Items[i]
		pack.Items = append(pack.Items, model.PackItem{
			Name:           src.Name,
			Quantity:       src.Quantity,
			Category:       src.Category,
			Note:           src.Note,
			Packed:         false,
			Pinned:         src.Pinned,
			LastMinute:     src.LastMinute,
			TemplateItemID: &src.ID,
		})
	}

	if err := e.store.CreatePack(ctx, pack); err != nil {
		return nil, err
	}

	created, err := e.store.GetPackByID(ctx, pack.ID)
	if err != nil {
		return nil, fmt.Errorf("reloading created pack: %w", err)
	}
	e.emit(Event{Type: EventPackCreated, PackID: created.ID})
	return created, nil
}

// CreateAdHoc creates a pack with no template and no items.
func (e *Engine) CreateAdHoc(ctx context.Context, name string, opts CreateOptions) (*model.Pack, error) {
	pack := newPack(name, opts)

	if err := e.store.CreatePack(ctx, pack); err != nil {
		return nil, err
	}

	created, err := e.store.GetPackByID(ctx, pack.ID)
	if err != nil {
		return nil, fmt.Errorf("reloading created pack: %w", err)
	}
	e.emit(Event{Type: EventPackCreated, PackID: created.ID})
	return created, nil
}

func newPack(name string, opts CreateOptions) model.Pack {
	return model.Pack{
		ID:               uuid.New().String(),
		Name:             strings.TrimSpace(name),
		TagID:            opts.TagID,
		Subtitle:         opts.Subtitle,
		SubtitleIcon:     opts.SubtitleIcon,
		SubtitleAccent:   opts.SubtitleAccent,
		Pinned:           opts.Pinned,
		ShowProgressRing: opts.ShowProgressRing,
		ShowsProgressBar: opts.ShowsProgressBar,
		ShowsStatusLabel: opts.ShowsStatusLabel,
	}
}

// AddItem appends a new item to a pack with quantity 1 and the catch-all
// category. Empty or whitespace-only names are rejected silently: the
// returned item is nil and the error is nil.
func (e *Engine) AddItem(ctx context.Context, packID, name string) (*model.PackItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}

	item := model.PackItem{
		PackID:   packID,
		Name:     name,
		Quantity: 1,
		Category: model.CategoryExtras,
	}
	added, err := e.store.AddPackItem(ctx, item)
	if err != nil {
		return nil, err
	}

	e.emit(Event{Type: EventItemAdded, PackID: packID, ItemID: added.ID})
	return added, nil
}

// EditRequest carries the new values for an item edit. ApplyToTemplate
// additionally writes quantity/category/note into the source template item
// when the edited item carries one; without a source reference the
// template write is skipped, not an error.
type EditRequest struct {
	Quantity        int
	Category        string
	Note            string
	ApplyToTemplate bool
}

// EditItem overwrites quantity, category and note of a pack item.
// Quantity is clamped to a minimum of 1. A missing item is a no-op.
func (e *Engine) EditItem(ctx context.Context, itemID string, req EditRequest) error {
	if req.Quantity < 1 {
		req.Quantity = 1
	}

	item, err := e.store.GetPackItemByID(ctx, itemID)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	item.Quantity = req.Quantity
	item.Category = req.Category
	item.Note = req.Note
	if err := e.store.UpdatePackItem(ctx, *item); err != nil {
		return err
	}

	if req.ApplyToTemplate && item.TemplateItemID != nil {
		err := e.store.UpdateTemplateItem(ctx, model.TemplateItem{
			ID:       *item.TemplateItemID,
			Quantity: req.Quantity,
			Category: req.Category,
			Note:     req.Note,
		})
		// The template item may have gone away with its template;
		// propagation is best-effort.
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("propagating edit to template: %w", err)
		}
	}

	e.emit(Event{Type: EventItemEdited, PackID: item.PackID, ItemID: item.ID})
	return nil
}

// ToggleItem flips the packed flag of a single item. Toggling twice
// restores the original state. A missing item is a no-op.
func (e *Engine) ToggleItem(ctx context.Context, itemID string) error {
	item, err := e.store.GetPackItemByID(ctx, itemID)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := e.store.TogglePackItem(ctx, itemID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return err
	}
	e.emit(Event{Type: EventItemToggled, PackID: item.PackID, ItemID: itemID})
	return nil
}

// DeleteItem removes a pack item permanently. A missing item is a no-op.
func (e *Engine) DeleteItem(ctx context.Context, itemID string) error {
	item, err := e.store.GetPackItemByID(ctx, itemID)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := e.store.DeletePackItem(ctx, itemID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return err
	}
	e.emit(Event{Type: EventItemDeleted, PackID: item.PackID, ItemID: itemID})
	return nil
}

// DeletePack removes a pack and, via cascade, all its items.
func (e *Engine) DeletePack(ctx context.Context, packID string) error {
	if err := e.store.DeletePack(ctx, packID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return err
	}
	e.emit(Event{Type: EventPackDeleted, PackID: packID})
	return nil
}

// ResetPack unchecks every item of a pack when uncheckAll is set,
// otherwise it leaves the pack untouched.
func (e *Engine) ResetPack(ctx context.Context, packID string, uncheckAll bool) error {
	if !uncheckAll {
		return nil
	}
	if err := e.store.UncheckAllPackItems(ctx, packID); err != nil {
		return err
	}
	e.emit(Event{Type: EventPackReset, PackID: packID})
	return nil
}
