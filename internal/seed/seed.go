// Package seed populates an empty database with the starter tags,
// templates and packs so a fresh install has something to show.
package seed

import (
	"context"
	"fmt"

	"github.com/packonce/packonce/internal/engine"
	"github.com/packonce/packonce/internal/model"
	"github.com/packonce/packonce/internal/store"
)

// SeedIfNeeded seeds tags, templates and packs, each only when none of
// that kind exist yet, so reruns are harmless.
func SeedIfNeeded(ctx context.Context, s store.Store, eng *engine.Engine) error {
	tags, err := s.GetTags(ctx)
	if err != nil {
		return fmt.Errorf("checking tags: %w", err)
	}
	if len(tags) == 0 {
		if err := seedTags(ctx, s); err != nil {
			return err
		}
	}

	templates, err := s.GetTemplates(ctx)
	if err != nil {
		return fmt.Errorf("checking templates: %w", err)
	}
	if len(templates) == 0 {
		if err := seedTemplates(ctx, s); err != nil {
			return err
		}
	}

	packs, err := s.GetPacks(ctx, store.PackFilter{})
	if err != nil {
		return fmt.Errorf("checking packs: %w", err)
	}
	if len(packs) == 0 {
		if err := seedPacks(ctx, s, eng); err != nil {
			return err
		}
	}

	return nil
}

func seedTags(ctx context.Context, s store.Store) error {
	for _, name := range []string{"TRAVEL", "FITNESS", "FAMILY", "OUTDOOR"} {
		if err := s.CreateTag(ctx, model.Tag{Name: name}); err != nil {
			return fmt.Errorf("seeding tag %s: %w", name, err)
		}
	}
	return nil
}

func seedTemplates(ctx context.Context, s store.Store) error {
	templates := []model.Template{
		{
			Title:    "Gym",
			Summary:  "Daily essentials for a quick training session.",
			Category: "Fitness",
			Icon:     "dumbbell",
			Accent:   "orange",
			Items: []model.TemplateItem{
				{Name: "Training shoes", Quantity: 1, Category: "Gear"},
				{Name: "Water bottle", Quantity: 1, Category: "Gear"},
				{Name: "Workout clothes", Quantity: 1, Category: model.CategoryClothes},
			},
		},
		{
			Title:    "Trip",
			Summary:  "Core travel checklist with essentials and layers.",
			Category: "Travel",
			Icon:     "airplane",
			Accent:   "blue",
			Items: []model.TemplateItem{
				{Name: "Passport", Quantity: 1, Category: model.CategoryEssentials, Note: "In top drawer", Pinned: true},
				{Name: "Charger & Adapter", Quantity: 1, Category: model.CategoryEssentials, Pinned: true},
				{Name: "T-Shirts", Quantity: 5, Category: model.CategoryClothes},
				{Name: "Socks", Quantity: 7, Category: model.CategoryClothes},
			},
		},
		{
			Title:    "Work",
			Summary:  "Office-ready carry kit for busy days.",
			Category: "Work",
			Icon:     "briefcase",
			Accent:   "purple",
			Items: []model.TemplateItem{
				{Name: "Laptop", Quantity: 1, Category: model.CategoryTech, Pinned: true},
				{Name: "Notebook", Quantity: 1, Category: model.CategoryEssentials},
				{Name: "ID badge", Quantity: 1, Category: model.CategoryEssentials, Pinned: true},
			},
		},
		{
			Title:    "Beach",
			Summary:  "Sunny-day staples and quick sun protection.",
			Category: "Leisure",
			Icon:     "sun",
			Accent:   "teal",
			Items: []model.TemplateItem{
				{Name: "Swimsuit", Quantity: 1, Category: model.CategoryClothes},
				{Name: "Sunscreen", Quantity: 1, Category: model.CategoryToiletries},
				{Name: "Towel", Quantity: 1, Category: "Gear"},
			},
		},
	}

	for _, tmpl := range templates {
		if err := s.CreateTemplate(ctx, tmpl); err != nil {
			return fmt.Errorf("seeding template %s: %w", tmpl.Title, err)
		}
	}
	return nil
}

type seedPack struct {
	name     string
	tag      string
	template string
	opts     engine.CreateOptions
	extras   bool
}

func seedPacks(ctx context.Context, s store.Store, eng *engine.Engine) error {
	packs := []seedPack{
		{
			name: "Tokyo Trip", tag: "TRAVEL", template: "Trip", extras: true,
			opts: engine.CreateOptions{
				Subtitle: "2 days left", SubtitleIcon: "calendar", SubtitleAccent: "muted",
				ShowProgressRing: true,
			},
		},
		{
			name: "Weekly Gym", tag: "FITNESS", template: "Gym",
			opts: engine.CreateOptions{
				Subtitle: "Today, 6:00 PM", SubtitleIcon: "clock", SubtitleAccent: "warning",
				ShowsProgressBar: true,
			},
		},
		{
			name: "Baby Bag", tag: "FAMILY", template: "Trip", extras: true,
			opts: engine.CreateOptions{
				Subtitle: "Always Active", SubtitleIcon: "repeat", SubtitleAccent: "muted",
				ShowsProgressBar: true,
			},
		},
		{
			name: "Weekend Hike", tag: "OUTDOOR", template: "Trip",
			opts: engine.CreateOptions{
				Subtitle: "Next Sunday", SubtitleIcon: "calendar", SubtitleAccent: "muted",
				Pinned: true, ShowsStatusLabel: true,
			},
		},
	}

	for _, sp := range packs {
		tag, err := s.GetTagByName(ctx, sp.tag)
		if err != nil {
			return fmt.Errorf("looking up tag %s: %w", sp.tag, err)
		}
		tmpl, err := s.GetTemplateByTitle(ctx, sp.template)
		if err != nil {
			return fmt.Errorf("looking up template %s: %w", sp.template, err)
		}

		opts := sp.opts
		opts.TagID = &tag.ID

		pack, err := eng.CreateFromTemplate(ctx, sp.name, tmpl.ID, opts)
		if err != nil {
			return fmt.Errorf("seeding pack %s: %w", sp.name, err)
		}

		if sp.extras {
			if err := appendTripExtras(ctx, s, pack.ID); err != nil {
				return fmt.Errorf("seeding extras for %s: %w", sp.name, err)
			}
		}
	}
	return nil
}

// appendTripExtras adds the ad-hoc items (no template reference) that the
// trip-based starter packs ship with.
func appendTripExtras(ctx context.Context, s store.Store, packID string) error {
	extras := []model.PackItem{
		{Name: "Toothbrush", Quantity: 1, Category: model.CategoryToiletries, Note: "Still wet, pack last", LastMinute: true},
		{Name: "Swimwear", Quantity: 2, Category: model.CategoryClothes},
		{Name: "Sunscreen", Quantity: 1, Category: model.CategoryToiletries, Packed: true},
		{Name: "Razor", Quantity: 1, Category: model.CategoryToiletries, Packed: true},
		{Name: "Skincare kit", Quantity: 1, Category: model.CategoryToiletries},
		{Name: "Camera", Quantity: 2, Category: model.CategoryTech, Note: "Charge battery", Packed: true},
		{Name: "Earbuds", Quantity: 2, Category: model.CategoryTech},
		{Name: "Power bank", Quantity: 2, Category: model.CategoryTech},
		{Name: "E-reader", Quantity: 2, Category: model.CategoryTech, Packed: true},
		{Name: "Travel journal", Quantity: 2, Category: model.CategoryExtras, Packed: true},
		{Name: "Reusable bag", Quantity: 3, Category: model.CategoryExtras, Packed: true},
		{Name: "Snacks", Quantity: 4, Category: model.CategoryExtras, Note: "Flight friendly"},
		{Name: "Compact umbrella", Quantity: 2, Category: model.CategoryExtras, Packed: true},
		{Name: "Guidebook", Quantity: 3, Category: model.CategoryExtras},
	}

	for _, item := range extras {
		item.PackID = packID
		if _, err := s.AddPackItem(ctx, item); err != nil {
			return err
		}
	}
	return nil
}
