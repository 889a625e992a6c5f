// Copyright (c) 2026 Survey Lens.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Survey Lens API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

Normalization (stateless, payload in request body):

	POST /analytics/view    - Normalize one payload into a view-model
	POST /analytics/compare - Align two cohorts for the same question

Snapshots:

	POST /snapshots      - Compute and persist a view-model
	GET  /snapshots/{id} - Retrieve a stored snapshot

# Handler Initialization

The router creates handler instances with dependency injection:

	analyticsHandler := handlers.NewAnalyticsHandler(cfg)
	snapshotHandler := handlers.NewSnapshotHandler(db, cfg)

Only the snapshot handler receives the database connection.
*/
package router
