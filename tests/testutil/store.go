// Package testutil provides shared helpers for package tests.
package testutil

import (
	"context"
	"testing"

	"github.com/packonce/packonce/internal/model"
	"github.com/packonce/packonce/internal/store"
)

// NewTestStore creates an in-memory SQLiteStore with all migrations applied.
// It automatically closes the store when the test completes.
func NewTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()

	s, err := store.NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("creating test store: %v", err)
	}

	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("closing test store: %v", err)
		}
	})

	return s
}

// TripTemplate inserts a small travel template and returns it with items
// loaded.
func TripTemplate(t *testing.T, s *store.SQLiteStore) *model.Template {
	t.Helper()
	ctx := context.Background()

	tmpl := model.Template{
		Title:    "Trip",
		Summary:  "Core travel checklist.",
		Category: "Travel",
		Icon:     "airplane",
		Accent:   "blue",
		Items: []model.TemplateItem{
			{Name: "Passport", Quantity: 1, Category: model.CategoryEssentials, Note: "In top drawer", Pinned: true},
			{Name: "T-Shirts", Quantity: 5, Category: model.CategoryClothes},
			{Name: "Socks", Quantity: 7, Category: model.CategoryClothes},
		},
	}
	if err := s.CreateTemplate(ctx, tmpl); err != nil {
		t.Fatalf("creating test template: %v", err)
	}

	created, err := s.GetTemplateByTitle(ctx, "Trip")
	if err != nil {
		t.Fatalf("loading test template: %v", err)
	}
	return created
}
