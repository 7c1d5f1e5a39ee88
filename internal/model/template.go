package model

import "time"

// Template is a reusable checklist blueprint from which packs are created.
type Template struct {
	ID        string    `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Summary   string    `json:"summary" db:"summary"`
	Category  string    `json:"category" db:"category"`
	Icon      string    `json:"icon" db:"icon"`
	Accent    string    `json:"accent" db:"accent"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`

	// Items is populated by queries that load template items.
	// Their lifecycle is bound to the template (CASCADE delete).
	Items []TemplateItem `json:"items,omitempty" db:"-"`
}

// TemplateItem is a single line of a template. Edits made to a pack item can
// be propagated back here, affecting future packs created from the template.
type TemplateItem struct {
	ID         string    `json:"id" db:"id"`
	TemplateID string    `json:"template_id" db:"template_id"`
	Name       string    `json:"name" db:"name"`
	Quantity   int       `json:"quantity" db:"quantity"`
	Category   string    `json:"category" db:"category"`
	Note       string    `json:"note" db:"note"`
	Pinned     bool      `json:"pinned" db:"pinned"`
	LastMinute bool      `json:"last_minute" db:"last_minute"`
	SortOrder  int       `json:"sort_order" db:"sort_order"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
