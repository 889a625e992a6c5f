// Copyright (c) 2026 Survey Lens.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

The schema includes:

  - view_snapshot: immutable computed view-models keyed by snapshot ID

# Portability

The DDL works unchanged on sqlite and postgres: TEXT/INTEGER columns only,
timestamps stored as RFC 3339 text, no database-specific defaults.

# Indexes

Performance indexes on:

  - view_snapshot.survey_id
  - view_snapshot.(survey_id, question_seq)
*/
package db
