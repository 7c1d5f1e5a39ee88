package model

import "time"

// Item categories used throughout the app. Categories are free text; these
// are the conventional set that gets preferred ordering in section views.
const (
	CategoryEssentials = "Essentials"
	CategoryClothes    = "Clothes"
	CategoryToiletries = "Toiletries"
	CategoryTech       = "Tech"
	CategoryExtras     = "Extras"
)

// Pack is a concrete checklist instance for a specific trip or activity.
type Pack struct {
	// ID is the internal unique identifier for this pack.
	ID string `json:"id" db:"id"`

	// Name is the user-facing pack title.
	Name string `json:"name" db:"name"`

	// TagID optionally references a shared Tag. The relation is weak:
	// display falls back to DefaultTagName when unset.
	TagID *string `json:"tag_id,omitempty" db:"tag_id"`

	// Subtitle, SubtitleIcon and SubtitleAccent are presentation hints
	// set at creation time, never recomputed.
	Subtitle       string `json:"subtitle" db:"subtitle"`
	SubtitleIcon   string `json:"subtitle_icon" db:"subtitle_icon"`
	SubtitleAccent string `json:"subtitle_accent" db:"subtitle_accent"`

	// Pinned marks the pack itself as pinned in list views.
	Pinned bool `json:"pinned" db:"pinned"`

	// Display-mode flags chosen once at creation.
	ShowProgressRing bool `json:"show_progress_ring" db:"show_progress_ring"`
	ShowsProgressBar bool `json:"shows_progress_bar" db:"shows_progress_bar"`
	ShowsStatusLabel bool `json:"shows_status_label" db:"shows_status_label"`

	// TemplateID references the template this pack was created from,
	// nil for ad-hoc packs.
	TemplateID *string `json:"template_id,omitempty" db:"template_id"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`

	// Items is populated by queries that load pack items.
	// Their lifecycle is bound to the pack (CASCADE delete).
	Items []PackItem `json:"items,omitempty" db:"-"`

	// TagName is populated by queries that join with tags.
	TagName string `json:"tag_name,omitempty" db:"-"`
}

// PackItem is a single line of a pack.
type PackItem struct {
	ID       string `json:"id" db:"id"`
	PackID   string `json:"pack_id" db:"pack_id"`
	Name     string `json:"name" db:"name"`
	Quantity int    `json:"quantity" db:"quantity"`
	Category string `json:"category" db:"category"`
	Note     string `json:"note" db:"note"`

	Packed     bool `json:"packed" db:"packed"`
	Pinned     bool `json:"pinned" db:"pinned"`
	LastMinute bool `json:"last_minute" db:"last_minute"`

	// TemplateItemID references the template item this one was copied
	// from, enabling propagate-to-template edits. Nil for items added
	// ad hoc after pack creation.
	TemplateItemID *string `json:"template_item_id,omitempty" db:"template_item_id"`

	SortOrder int       `json:"sort_order" db:"sort_order"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// TotalQuantity sums the quantities of all items in the pack.
// Negative quantities are clamped to 0 so a bad caller cannot push the
// progress ratio outside [0, 1].
func (p *Pack) TotalQuantity() int {
	total := 0
	for i := range p.Items {
		total += clampQuantity(p.Items[i].Quantity)
	}
	return total
}

// PackedQuantity sums the quantities of items flagged as packed.
func (p *Pack) PackedQuantity() int {
	total := 0
	for i := range p.Items {
		if p.Items[i].Packed {
			total += clampQuantity(p.Items[i].Quantity)
		}
	}
	return total
}

// Progress returns the packed/total quantity ratio in [0, 1].
// An empty pack has progress 0.
func (p *Pack) Progress() float64 {
	total := p.TotalQuantity()
	if total == 0 {
		return 0
	}
	return float64(p.PackedQuantity()) / float64(total)
}

// LastMinuteAdds counts items flagged last-minute that are not yet packed.
// The second return is false when the count is 0 so callers can suppress
// an empty badge.
func (p *Pack) LastMinuteAdds() (int, bool) {
	count := 0
	for i := range p.Items {
		if p.Items[i].LastMinute && !p.Items[i].Packed {
			count++
		}
	}
	return count, count > 0
}

// TagDisplayName returns the joined tag name, or DefaultTagName when the
// pack has no tag.
func (p *Pack) TagDisplayName() string {
	if p.TagName != "" {
		return p.TagName
	}
	return DefaultTagName
}

func clampQuantity(q int) int {
	if q < 0 {
		return 0
	}
	return q
}
