// Copyright (c) 2026 Survey Lens.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS. The DDL sticks to types
// both sqlite and postgres accept; timestamps are stored as RFC 3339 text.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Persisted view-models. Each row is one computed (survey, question,
-- settings) view, immutable once written.
CREATE TABLE IF NOT EXISTS view_snapshot (
    id TEXT PRIMARY KEY,
    survey_id TEXT NOT NULL,
    question_seq INTEGER NOT NULL,
    kind TEXT NOT NULL,
    computed_at TEXT NOT NULL,
    settings TEXT NOT NULL,
    payload TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_view_snapshot_survey ON view_snapshot(survey_id);
CREATE INDEX IF NOT EXISTS idx_view_snapshot_survey_question ON view_snapshot(survey_id, question_seq);
`
