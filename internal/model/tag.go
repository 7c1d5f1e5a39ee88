package model

import "time"

// DefaultTagName is the display fallback for packs without a tag.
const DefaultTagName = "TRAVEL"

// Tag is a shared label for categorizing packs (e.g. "TRAVEL", "FITNESS").
// Tags have an independent lifetime: deleting a pack never deletes its tag.
type Tag struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
