// Copyright (c) 2026 Survey Lens.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Survey Lens API.

# Handler Types

  - AnalyticsHandler: payload normalization and cohort comparison
  - SnapshotHandler: persisted view-models

Handlers are created via constructor functions:

	analyticsHandler := handlers.NewAnalyticsHandler(cfg)
	snapshotHandler := handlers.NewSnapshotHandler(db, cfg)

Only the snapshot handler touches the database; normalization is a pure
engine call per request.

# Normalization Flow

	POST /analytics/view    → BuildView (classify + series/stats or grid)
	POST /analytics/compare → Compare (two-cohort alignment)

Payloads arrive already deserialized in the request body; this service
never fetches analytics from the survey backend itself.

# Failure Semantics

Missing or empty analytics produce an explicit no-data view (HTTP 200 with
no_data set) rather than an empty chart. Comparison refusals answer 422
with one of exactly two messages:

	"Comparison not available for this question type"
	"No comparable data available for these groups or question"

# Snapshots

	POST /snapshots      → CreateSnapshot (compute + persist, returns ID)
	GET  /snapshots/{id} → GetSnapshot

Snapshots are immutable; recomputing with new settings creates a new row.
*/
package handlers
