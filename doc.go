// Copyright (c) 2026 Survey Lens.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Survey Lens analytics server.

Survey Lens normalizes heterogeneous survey analytics payloads (choice
distributions, numeric summaries, NPS segments, rankings, matrix grids) into
chart-ready view-models, and aligns two respondent cohorts side by side with
well-defined delta semantics.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... go run main.go

Or with flags:

	go run main.go -p 4117 -t sqlite -d "file:surveylens.db"

# Configuration

Settings:

  - DATABASE_URL (-d): connection string (defaults to a local sqlite file)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - PORT (-p): server port (default: 4117)
  - CORS_ORIGIN: allowed browser origin (default: reflect the request origin)

# Architecture

The server is a thin HTTP shell over a pure normalization engine:

  - engine: classifier, series builder, statistics summarizer, grid
    normalizer, comparison aligner (pure functions, no I/O)
  - models: payload contracts, settings, and view-model types
  - handlers: HTTP request handlers (views, comparisons, snapshots)
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - db: snapshot schema creation
  - cliparse: configuration parsing

The server never fetches analytics itself; callers POST already-deserialized
payloads and receive view-models back. See package documentation for each
component.
*/
package main
