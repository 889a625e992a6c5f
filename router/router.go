// Copyright (c) 2026 Survey Lens.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/surveylens/surveylens/cliparse"
	"github.com/surveylens/surveylens/handlers"
	"github.com/surveylens/surveylens/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	analyticsHandler := handlers.NewAnalyticsHandler(cfg)
	snapshotHandler := handlers.NewSnapshotHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Normalization (stateless; payloads arrive in the request body)
	mux.HandleFunc("POST /analytics/view", middleware.WithLogging(analyticsHandler.BuildView))
	mux.HandleFunc("POST /analytics/compare", middleware.WithLogging(analyticsHandler.Compare))

	// Persisted view snapshots
	mux.HandleFunc("POST /snapshots", middleware.WithLogging(snapshotHandler.CreateSnapshot))
	mux.HandleFunc("GET /snapshots/{id}", middleware.WithLogging(snapshotHandler.GetSnapshot))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("survey-lens API v1"))
	})

	return mux
}
