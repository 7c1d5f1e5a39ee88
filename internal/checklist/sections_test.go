package checklist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/packonce/packonce/internal/model"
)

func item(name, category string, packed, pinned, lastMinute bool) model.PackItem {
	return model.PackItem{
		Name:       name,
		Quantity:   1,
		Category:   category,
		Packed:     packed,
		Pinned:     pinned,
		LastMinute: lastMinute,
	}
}

func sectionTitles(sections []Section) []string {
	titles := make([]string, 0, len(sections))
	for _, sec := range sections {
		titles = append(titles, sec.Title)
	}
	return titles
}

func itemNames(sec Section) []string {
	names := make([]string, 0, len(sec.Items))
	for _, it := range sec.Items {
		names = append(names, it.Name)
	}
	return names
}

func TestBuildSectionOrder(t *testing.T) {
	items := []model.PackItem{
		item("Guidebook", model.CategoryExtras, false, false, false),
		item("Laptop", model.CategoryTech, false, true, false),
		item("Toothbrush", model.CategoryToiletries, false, false, true),
		item("Passport", model.CategoryEssentials, false, true, false),
		item("Socks", model.CategoryClothes, false, false, false),
		item("Towel", "Gear", false, false, false),
	}

	sections := Build(items, Options{})

	assert.Equal(t, []string{
		"Essentials (Pinned)",
		"Tech (Pinned)",
		"Last-Minute",
		"Clothes",
		"Extras",
		"Gear",
	}, sectionTitles(sections))

	assert.True(t, sections[0].IsPinned)
	assert.True(t, sections[1].IsPinned)
	assert.True(t, sections[2].IsLastMinute)
	assert.False(t, sections[3].IsPinned)
}

func TestLastMinuteWinsOverPinned(t *testing.T) {
	items := []model.PackItem{
		item("Toothbrush", model.CategoryToiletries, false, true, true),
	}

	sections := Build(items, Options{})

	require.Len(t, sections, 1)
	assert.Equal(t, LastMinuteTitle, sections[0].Title)
	assert.True(t, sections[0].IsLastMinute)
	assert.False(t, sections[0].IsPinned)
}

func TestUnknownCategoriesSortAlphabeticallyAfterKnown(t *testing.T) {
	items := []model.PackItem{
		item("Leash", "Pet", false, false, false),
		item("Towel", "Gear", false, false, false),
		item("Snacks", model.CategoryExtras, false, false, false),
	}

	sections := Build(items, Options{})

	assert.Equal(t, []string{"Extras", "Gear", "Pet"}, sectionTitles(sections))
}

func TestCombinePinned(t *testing.T) {
	items := []model.PackItem{
		item("Laptop", model.CategoryTech, false, true, false),
		item("Passport", model.CategoryEssentials, false, true, false),
	}

	sections := Build(items, Options{CombinePinned: true})

	require.Len(t, sections, 1)
	assert.Equal(t, CombinedPinnedTitle, sections[0].Title)
	assert.True(t, sections[0].IsPinned)
	assert.Len(t, sections[0].Items, 2)
}

func TestFilterCorrectness(t *testing.T) {
	items := []model.PackItem{
		item("A", model.CategoryExtras, false, false, false),
		item("B", model.CategoryExtras, true, false, false),
		item("C", model.CategoryExtras, false, false, false),
	}

	packed := Build(items, Options{Filter: FilterPacked})
	require.Len(t, packed, 1)
	assert.Equal(t, []string{"B"}, itemNames(packed[0]))

	toPack := Build(items, Options{Filter: FilterToPack})
	require.Len(t, toPack, 1)
	assert.Equal(t, []string{"A", "C"}, itemNames(toPack[0]))

	all := Build(items, Options{Filter: FilterAll})
	require.Len(t, all, 1)
	assert.Equal(t, []string{"A", "B", "C"}, itemNames(all[0]))
}

func TestMoveCheckedToBottom(t *testing.T) {
	items := []model.PackItem{
		item("Razor", model.CategoryToiletries, true, false, false),
		item("Sunscreen", model.CategoryToiletries, false, false, false),
		item("Comb", model.CategoryToiletries, true, false, false),
		item("Floss", model.CategoryToiletries, false, false, false),
	}

	sections := Build(items, Options{MoveCheckedToBottom: true})
	require.Len(t, sections, 1)

	// Unpacked first, then packed; ties by name ascending.
	assert.Equal(t, []string{"Floss", "Sunscreen", "Comb", "Razor"}, itemNames(sections[0]))
}

func TestInsertionOrderPreservedWhenResortOff(t *testing.T) {
	items := []model.PackItem{
		item("Razor", model.CategoryToiletries, true, false, false),
		item("Sunscreen", model.CategoryToiletries, false, false, false),
		item("Comb", model.CategoryToiletries, true, false, false),
	}

	sections := Build(items, Options{MoveCheckedToBottom: false})
	require.Len(t, sections, 1)
	assert.Equal(t, []string{"Razor", "Sunscreen", "Comb"}, itemNames(sections[0]))
}

func TestCollapsePackedHidesItemsWithHint(t *testing.T) {
	items := []model.PackItem{
		item("Razor", model.CategoryToiletries, true, false, false),
		item("Sunscreen", model.CategoryToiletries, false, false, false),
	}

	sections := Build(items, Options{Filter: FilterAll, CollapsePacked: true})
	require.Len(t, sections, 1)
	assert.Equal(t, []string{"Sunscreen"}, itemNames(sections[0]))
	assert.Equal(t, 1, sections[0].HiddenPacked)
}

func TestCollapsePackedIgnoredOutsideAllFilter(t *testing.T) {
	items := []model.PackItem{
		item("Razor", model.CategoryToiletries, true, false, false),
	}

	sections := Build(items, Options{Filter: FilterPacked, CollapsePacked: true})
	require.Len(t, sections, 1)
	assert.Equal(t, []string{"Razor"}, itemNames(sections[0]))
	assert.Equal(t, 0, sections[0].HiddenPacked)
}

func TestEmptySectionsOmitted(t *testing.T) {
	items := []model.PackItem{
		item("Razor", model.CategoryToiletries, true, false, false),
	}

	sections := Build(items, Options{Filter: FilterToPack})
	assert.Empty(t, sections)

	assert.Empty(t, Build(nil, Options{}))
}

func TestBuildIsDeterministic(t *testing.T) {
	items := []model.PackItem{
		item("Guidebook", model.CategoryExtras, true, false, false),
		item("Laptop", model.CategoryTech, false, true, false),
		item("Toothbrush", model.CategoryToiletries, false, false, true),
		item("Towel", "Gear", false, false, false),
		item("Leash", "Pet", true, false, false),
	}
	opts := Options{Filter: FilterAll, MoveCheckedToBottom: true}

	first := Build(items, opts)
	second := Build(items, opts)

	assert.Equal(t, first, second)
}
