package db

import (
	"database/sql"
	"fmt"
)

// migrations holds one entry per schema version. The applied version is
// kept in PRAGMA user_version, so each entry runs exactly once.
var migrations = [][]string{
	{
		`CREATE TABLE IF NOT EXISTS garden (
			id           INTEGER PRIMARY KEY CHECK (id = 1),
			name         TEXT NOT NULL,
			grid_width   INTEGER NOT NULL CHECK (grid_width BETWEEN 3 AND 50),
			grid_height  INTEGER NOT NULL CHECK (grid_height BETWEEN 3 AND 50),
			current_week INTEGER NOT NULL CHECK (current_week BETWEEN 1 AND 52),
			updated_at   TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS plants (
			name                TEXT PRIMARY KEY,
			seq                 INTEGER NOT NULL,
			image               TEXT NOT NULL DEFAULT '',
			planting_months     TEXT NOT NULL DEFAULT 'null',
			harvest_months      TEXT NOT NULL DEFAULT 'null',
			water_need          INTEGER NOT NULL DEFAULT 0,
			sun_need            INTEGER NOT NULL DEFAULT 0,
			incompatible_plants TEXT NOT NULL DEFAULT 'null',
			companion_plants    TEXT NOT NULL DEFAULT 'null',
			growth_duration     INTEGER NOT NULL DEFAULT 0,
			spacing_cm          INTEGER NOT NULL DEFAULT 0,
			plant_family        TEXT NOT NULL DEFAULT '',
			season              TEXT NOT NULL DEFAULT '',
			succession_interval INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS beds (
			id     TEXT PRIMARY KEY,
			seq    INTEGER NOT NULL,
			name   TEXT NOT NULL,
			x      INTEGER NOT NULL,
			y      INTEGER NOT NULL,
			width  INTEGER NOT NULL CHECK (width >= 1),
			height INTEGER NOT NULL CHECK (height >= 1)
		)`,
		`CREATE TABLE IF NOT EXISTS slots (
			id     TEXT PRIMARY KEY,
			bed_id TEXT NOT NULL REFERENCES beds(id) ON DELETE CASCADE,
			seq    INTEGER NOT NULL,
			number TEXT NOT NULL,
			x      INTEGER NOT NULL,
			y      INTEGER NOT NULL,
			width  INTEGER NOT NULL CHECK (width >= 1),
			height INTEGER NOT NULL CHECK (height >= 1)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_slots_bed ON slots(bed_id, seq)`,
		`CREATE TABLE IF NOT EXISTS plantings (
			slot_id    TEXT NOT NULL REFERENCES slots(id) ON DELETE CASCADE,
			seq        INTEGER NOT NULL,
			plant      TEXT NOT NULL,
			start_week INTEGER NOT NULL CHECK (start_week BETWEEN 1 AND 52),
			end_week   INTEGER NOT NULL CHECK (end_week BETWEEN start_week AND 52),
			PRIMARY KEY (slot_id, seq)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_plantings_plant ON plantings(plant)`,
	},
}

// SchemaVersion is the version a fully migrated database reports.
func SchemaVersion() int { return len(migrations) }

// Migrate brings the schema up to date, one transaction per version.
func Migrate(db *sql.DB) error {
	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("reading schema version: %w", err)
	}
	if version > len(migrations) {
		return fmt.Errorf("database schema version %d is newer than supported version %d", version, len(migrations))
	}

	for v := version; v < len(migrations); v++ {
		if err := applyMigration(db, v+1, migrations[v]); err != nil {
			return fmt.Errorf("migration %d: %w", v+1, err)
		}
	}
	return nil
}

func applyMigration(db *sql.DB, version int, stmts []string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	for _, stmt := range stmts {
		if _, err := tx.Exec(stmt); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	// PRAGMA does not accept bound parameters.
	if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", version)); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
