package store

import (
	"context"
	"errors"
	"testing"

	"github.com/packonce/packonce/internal/model"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("creating test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func createTestPack(t *testing.T, s *SQLiteStore, name string, items ...model.PackItem) *model.Pack {
	t.Helper()
	ctx := context.Background()

	pack := model.Pack{Name: name, Items: items}
	if err := s.CreatePack(ctx, pack); err != nil {
		t.Fatalf("creating test pack: %v", err)
	}
	created, err := s.GetPackByName(ctx, name)
	if err != nil {
		t.Fatalf("loading test pack: %v", err)
	}
	return created
}

func TestCreatePackWithItems(t *testing.T) {
	s := newTestStore(t)

	pack := createTestPack(t, s, "Tokyo Trip",
		model.PackItem{Name: "Passport", Quantity: 1, Category: model.CategoryEssentials},
		model.PackItem{Name: "Socks", Quantity: 7, Category: model.CategoryClothes},
	)

	if len(pack.Items) != 2 {
		t.Fatalf("got %d items, want 2", len(pack.Items))
	}
	if pack.Items[0].Name != "Passport" || pack.Items[1].Name != "Socks" {
		t.Errorf("items out of insertion order: %v", pack.Items)
	}
}

func TestCreatePackRollsBackOnItemFailure(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// Two items with the same ID violate the primary key; the whole
	// creation must roll back, leaving no partial pack.
	pack := model.Pack{
		Name: "Broken",
		Items: []model.PackItem{
			{ID: "dup", Name: "One", Quantity: 1},
			{ID: "dup", Name: "Two", Quantity: 1},
		},
	}
	if err := s.CreatePack(ctx, pack); err == nil {
		t.Fatal("expected creation to fail")
	}

	if _, err := s.GetPackByName(ctx, "Broken"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after rollback, got %v", err)
	}
}

func TestDeletePackCascadesToItems(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	pack := createTestPack(t, s, "Hike",
		model.PackItem{Name: "Boots", Quantity: 1},
	)
	itemID := pack.Items[0].ID

	if err := s.DeletePack(ctx, pack.ID); err != nil {
		t.Fatalf("DeletePack() error = %v", err)
	}

	if _, err := s.GetPackItemByID(ctx, itemID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected cascade-deleted item, got %v", err)
	}
}

func TestDeleteTagKeepsPacks(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.CreateTag(ctx, model.Tag{Name: "OUTDOOR"}); err != nil {
		t.Fatalf("CreateTag() error = %v", err)
	}
	tag, err := s.GetTagByName(ctx, "OUTDOOR")
	if err != nil {
		t.Fatalf("GetTagByName() error = %v", err)
	}

	pack := model.Pack{Name: "Hike", TagID: &tag.ID}
	if err := s.CreatePack(ctx, pack); err != nil {
		t.Fatalf("CreatePack() error = %v", err)
	}

	if err := s.DeleteTag(ctx, tag.ID); err != nil {
		t.Fatalf("DeleteTag() error = %v", err)
	}

	reloaded, err := s.GetPackByName(ctx, "Hike")
	if err != nil {
		t.Fatalf("pack should survive tag deletion: %v", err)
	}
	if reloaded.TagID != nil {
		t.Errorf("expected nil TagID after tag deletion, got %v", *reloaded.TagID)
	}
	if got := reloaded.TagDisplayName(); got != model.DefaultTagName {
		t.Errorf("TagDisplayName() = %q, want %q", got, model.DefaultTagName)
	}
}

func TestDeleteTemplateCascadesToItemsAndUnlinksPackItems(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	tmpl := model.Template{
		Title: "Trip",
		Items: []model.TemplateItem{{Name: "Passport", Quantity: 1}},
	}
	if err := s.CreateTemplate(ctx, tmpl); err != nil {
		t.Fatalf("CreateTemplate() error = %v", err)
	}
	created, err := s.GetTemplateByTitle(ctx, "Trip")
	if err != nil {
		t.Fatalf("GetTemplateByTitle() error = %v", err)
	}

	pack := createTestPack(t, s, "Tokyo Trip",
		model.PackItem{Name: "Passport", Quantity: 1, TemplateItemID: &created.Items[0].ID},
	)

	if err := s.DeleteTemplate(ctx, created.ID); err != nil {
		t.Fatalf("DeleteTemplate() error = %v", err)
	}

	items, err := s.GetTemplateItems(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetTemplateItems() error = %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected cascade-deleted template items, got %d", len(items))
	}

	reloaded, err := s.GetPackByID(ctx, pack.ID)
	if err != nil {
		t.Fatalf("pack should survive template deletion: %v", err)
	}
	if reloaded.Items[0].TemplateItemID != nil {
		t.Errorf("expected nil TemplateItemID after template deletion")
	}
}

func TestTogglePackItem(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	pack := createTestPack(t, s, "Gym",
		model.PackItem{Name: "Water bottle", Quantity: 1},
	)
	itemID := pack.Items[0].ID

	if err := s.TogglePackItem(ctx, itemID); err != nil {
		t.Fatalf("TogglePackItem() error = %v", err)
	}
	item, err := s.GetPackItemByID(ctx, itemID)
	if err != nil {
		t.Fatalf("GetPackItemByID() error = %v", err)
	}
	if !item.Packed {
		t.Error("expected item packed after toggle")
	}

	if err := s.TogglePackItem(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for missing item, got %v", err)
	}
}

func TestAddPackItemAppendsInOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	pack := createTestPack(t, s, "Scratch")
	for _, name := range []string{"First", "Second", "Third"} {
		added, err := s.AddPackItem(ctx, model.PackItem{PackID: pack.ID, Name: name, Quantity: 1})
		if err != nil {
			t.Fatalf("AddPackItem(%s) error = %v", name, err)
		}
		if added.ID == "" {
			t.Fatalf("AddPackItem(%s) returned item without ID", name)
		}
		stored, err := s.GetPackItemByID(ctx, added.ID)
		if err != nil {
			t.Fatalf("GetPackItemByID(%s) error = %v", added.ID, err)
		}
		if stored.Name != name || stored.SortOrder != added.SortOrder {
			t.Errorf("returned item diverges from stored row: %+v vs %+v", added, stored)
		}
	}

	items, err := s.GetPackItems(ctx, pack.ID)
	if err != nil {
		t.Fatalf("GetPackItems() error = %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("got %d items, want 3", len(items))
	}
	for i, want := range []string{"First", "Second", "Third"} {
		if items[i].Name != want {
			t.Errorf("items[%d].Name = %q, want %q", i, items[i].Name, want)
		}
	}
}

func TestGetPacksFilter(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	createTestPack(t, s, "Tokyo Trip")
	pinned := model.Pack{Name: "Weekend Hike", Pinned: true}
	if err := s.CreatePack(ctx, pinned); err != nil {
		t.Fatalf("CreatePack() error = %v", err)
	}

	yes := true
	packs, err := s.GetPacks(ctx, PackFilter{Pinned: &yes})
	if err != nil {
		t.Fatalf("GetPacks() error = %v", err)
	}
	if len(packs) != 1 || packs[0].Name != "Weekend Hike" {
		t.Errorf("pinned filter returned %v", packs)
	}

	q := "Tokyo"
	packs, err = s.GetPacks(ctx, PackFilter{Query: &q})
	if err != nil {
		t.Fatalf("GetPacks() error = %v", err)
	}
	if len(packs) != 1 || packs[0].Name != "Tokyo Trip" {
		t.Errorf("query filter returned %v", packs)
	}
}
