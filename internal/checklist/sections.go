// Package checklist derives display sections from a pack's items.
// Everything here is pure: the same items and options always produce the
// same sections, and nothing is mutated or persisted.
package checklist

import (
	"sort"

	"github.com/packonce/packonce/internal/model"
)

// Filter selects which items are visible within a section.
type Filter int

const (
	FilterAll Filter = iota
	FilterToPack
	FilterPacked
)

// LastMinuteTitle is the title of the single last-minute section.
const LastMinuteTitle = "Last-Minute"

// CombinedPinnedTitle is the title of the combined pinned section when
// Options.CombinePinned is set.
const CombinedPinnedTitle = "Pinned"

// Options controls filtering and ordering of the derived sections.
type Options struct {
	// Filter retains all, only unpacked, or only packed items.
	Filter Filter

	// MoveCheckedToBottom orders packed items last within a section,
	// ties broken by case-sensitive name ascending. When false, the
	// pack's insertion order is preserved.
	MoveCheckedToBottom bool

	// CollapsePacked hides packed items under the All filter and
	// reports their count via Section.HiddenPacked instead.
	CollapsePacked bool

	// CombinePinned merges all pinned items into one "Pinned" section
	// instead of one "{Category} (Pinned)" section per category.
	CombinePinned bool
}

// Section is one rendered group of a pack's checklist.
type Section struct {
	Title        string
	IsPinned     bool
	IsLastMinute bool
	Items        []model.PackItem

	// HiddenPacked is the number of packed items hidden from this
	// section by the collapse-packed preference.
	HiddenPacked int
}

// categoryRank is the preferred ordering of the conventional categories.
// Categories outside this set sort alphabetically after the known ones.
var categoryRank = map[string]int{
	model.CategoryEssentials: 0,
	model.CategoryClothes:    1,
	model.CategoryToiletries: 2,
	model.CategoryTech:       3,
	model.CategoryExtras:     4,
}

// Build partitions a pack's items into pinned, last-minute and regular
// buckets and produces the final ordered section list:
//
//  1. pinned-category sections in preferred category order, titled
//     "{Category} (Pinned)" (or one combined "Pinned" section),
//  2. a single "Last-Minute" section if any item is flagged last-minute
//     (last-minute wins over pinned for bucketing),
//  3. regular category sections in preferred category order.
//
// Sections left with no visible items after filtering are omitted.
func Build(items []model.PackItem, opts Options) []Section {
	var pinned, lastMinute, regular []model.PackItem
	for _, item := range items {
		switch {
		case item.LastMinute:
			lastMinute = append(lastMinute, item)
		case item.Pinned:
			pinned = append(pinned, item)
		default:
			regular = append(regular, item)
		}
	}

	var sections []Section

	if opts.CombinePinned {
		sections = appendSection(sections, Section{
			Title:    CombinedPinnedTitle,
			IsPinned: true,
			Items:    pinned,
		}, opts)
	} else {
		for _, group := range groupByCategory(pinned) {
			sections = appendSection(sections, Section{
				Title:    group.category + " (Pinned)",
				IsPinned: true,
				Items:    group.items,
			}, opts)
		}
	}

	sections = appendSection(sections, Section{
		Title:        LastMinuteTitle,
		IsLastMinute: true,
		Items:        lastMinute,
	}, opts)

	for _, group := range groupByCategory(regular) {
		sections = appendSection(sections, Section{
			Title: group.category,
			Items: group.items,
		}, opts)
	}

	return sections
}

// appendSection applies filtering and ordering to a candidate section and
// appends it unless it ends up with nothing to show.
func appendSection(sections []Section, sec Section, opts Options) []Section {
	sec.Items, sec.HiddenPacked = applyFilter(sec.Items, opts)
	if opts.MoveCheckedToBottom {
		sortCheckedToBottom(sec.Items)
	}
	if len(sec.Items) == 0 && sec.HiddenPacked == 0 {
		return sections
	}
	return append(sections, sec)
}

func applyFilter(items []model.PackItem, opts Options) (visible []model.PackItem, hiddenPacked int) {
	for _, item := range items {
		switch opts.Filter {
		case FilterToPack:
			if !item.Packed {
				visible = append(visible, item)
			}
		case FilterPacked:
			if item.Packed {
				visible = append(visible, item)
			}
		default:
			if opts.CollapsePacked && item.Packed {
				hiddenPacked++
				continue
			}
			visible = append(visible, item)
		}
	}
	return visible, hiddenPacked
}

// sortCheckedToBottom orders unpacked items first; within the same packed
// state ties break by case-sensitive name ascending.
func sortCheckedToBottom(items []model.PackItem) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Packed != items[j].Packed {
			return !items[i].Packed
		}
		return items[i].Name < items[j].Name
	})
}

type categoryGroup struct {
	category string
	items    []model.PackItem
}

// groupByCategory splits items into per-category groups ordered by the
// preferred category order, with unknown categories alphabetical after
// the known ones.
func groupByCategory(items []model.PackItem) []categoryGroup {
	byCategory := make(map[string][]model.PackItem)
	var order []string
	for _, item := range items {
		if _, seen := byCategory[item.Category]; !seen {
			order = append(order, item.Category)
		}
		byCategory[item.Category] = append(byCategory[item.Category], item)
	}

	sort.SliceStable(order, func(i, j int) bool {
		ri, iKnown := categoryRank[order[i]]
		rj, jKnown := categoryRank[order[j]]
		switch {
		case iKnown && jKnown:
			return ri < rj
		case iKnown:
			return true
		case jKnown:
			return false
		default:
			return order[i] < order[j]
		}
	})

	groups := make([]categoryGroup, 0, len(order))
	for _, category := range order {
		groups = append(groups, categoryGroup{category: category, items: byCategory[category]})
	}
	return groups
}
