package store

// migration holds a single schema migration with its target version and SQL.
type migration struct {
	version int
	sql     string
}

// migrations is the ordered list of schema migrations.
// Each migration's version must be sequential starting from 1.
//
// Ownership rules are expressed as foreign keys: template_items and
// pack_items are cascade-deleted with their parent, while the pack→tag,
// pack→template and pack_item→template_item references are weak and
// nulled out when the target goes away.
var migrations = []migration{
	{
		version: 1,
		sql: `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS tags (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL UNIQUE,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS templates (
	id         TEXT PRIMARY KEY,
	title      TEXT NOT NULL,
	summary    TEXT NOT NULL DEFAULT '',
	category   TEXT NOT NULL DEFAULT '',
	icon       TEXT NOT NULL DEFAULT '',
	accent     TEXT NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS template_items (
	id          TEXT PRIMARY KEY,
	template_id TEXT NOT NULL REFERENCES templates(id) ON DELETE CASCADE,
	name        TEXT NOT NULL,
	quantity    INTEGER NOT NULL DEFAULT 1,
	category    TEXT NOT NULL DEFAULT 'Extras',
	note        TEXT NOT NULL DEFAULT '',
	pinned      INTEGER NOT NULL DEFAULT 0 CHECK(pinned IN (0, 1)),
	last_minute INTEGER NOT NULL DEFAULT 0 CHECK(last_minute IN (0, 1)),
	sort_order  INTEGER NOT NULL DEFAULT 0,
	created_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS packs (
	id                 TEXT PRIMARY KEY,
	name               TEXT NOT NULL,
	tag_id             TEXT REFERENCES tags(id) ON DELETE SET NULL,
	subtitle           TEXT NOT NULL DEFAULT '',
	subtitle_icon      TEXT NOT NULL DEFAULT '',
	subtitle_accent    TEXT NOT NULL DEFAULT '',
	pinned             INTEGER NOT NULL DEFAULT 0 CHECK(pinned IN (0, 1)),
	show_progress_ring INTEGER NOT NULL DEFAULT 0 CHECK(show_progress_ring IN (0, 1)),
	shows_progress_bar INTEGER NOT NULL DEFAULT 0 CHECK(shows_progress_bar IN (0, 1)),
	shows_status_label INTEGER NOT NULL DEFAULT 0 CHECK(shows_status_label IN (0, 1)),
	template_id        TEXT REFERENCES templates(id) ON DELETE SET NULL,
	created_at         DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS pack_items (
	id               TEXT PRIMARY KEY,
	pack_id          TEXT NOT NULL REFERENCES packs(id) ON DELETE CASCADE,
	name             TEXT NOT NULL,
	quantity         INTEGER NOT NULL DEFAULT 1,
	category         TEXT NOT NULL DEFAULT 'Extras',
	note             TEXT NOT NULL DEFAULT '',
	packed           INTEGER NOT NULL DEFAULT 0 CHECK(packed IN (0, 1)),
	pinned           INTEGER NOT NULL DEFAULT 0 CHECK(pinned IN (0, 1)),
	last_minute      INTEGER NOT NULL DEFAULT 0 CHECK(last_minute IN (0, 1)),
	template_item_id TEXT REFERENCES template_items(id) ON DELETE SET NULL,
	sort_order       INTEGER NOT NULL DEFAULT 0,
	created_at       DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_template_items_template_id ON template_items(template_id);
CREATE INDEX IF NOT EXISTS idx_packs_tag_id ON packs(tag_id);
CREATE INDEX IF NOT EXISTS idx_packs_template_id ON packs(template_id);
CREATE INDEX IF NOT EXISTS idx_packs_created_at ON packs(created_at);
CREATE INDEX IF NOT EXISTS idx_pack_items_pack_id ON pack_items(pack_id);
CREATE INDEX IF NOT EXISTS idx_pack_items_packed ON pack_items(packed);

INSERT INTO schema_version (version) VALUES (1);
`,
	},
	{
		version: 2,
		sql: `
CREATE INDEX IF NOT EXISTS idx_pack_items_template_item_id
	ON pack_items(template_item_id);

INSERT INTO schema_version (version) VALUES (2);
`,
	},
}
