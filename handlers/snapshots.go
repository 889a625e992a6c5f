// Copyright (c) 2026 Survey Lens.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/surveylens/surveylens/cliparse"
	"github.com/surveylens/surveylens/engine"
	"github.com/surveylens/surveylens/middleware"
	"github.com/surveylens/surveylens/models"
)

type SnapshotHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewSnapshotHandler(db *sql.DB, cfg cliparse.Config) *SnapshotHandler {
	return &SnapshotHandler{db: db, cfg: cfg}
}

// CreateSnapshot handles POST /snapshots
// Computes a view-model and persists it immutably. The engine itself stays
// stateless; persistence happens only here.
func (h *SnapshotHandler) CreateSnapshot(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSnapshotRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if req.SurveyID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "survey_id is required")
		return
	}

	payload := models.Payload{
		Question:  req.Question,
		Analytics: req.Analytics,
		GridData:  req.GridData,
	}
	settings := models.EffectiveSettings(req.Settings)

	view, err := buildView(payload, settings)
	if err != nil {
		if errors.Is(err, engine.ErrUnsupportedKind) {
			middleware.ErrorResponse(w, http.StatusUnprocessableEntity, "Unsupported analytics type")
			return
		}
		slog.Error("failed to build view for snapshot", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to build view")
		return
	}

	viewJSON, err := json.Marshal(view)
	if err != nil {
		slog.Error("failed to encode view", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to encode view")
		return
	}
	settingsJSON, err := json.Marshal(settings)
	if err != nil {
		slog.Error("failed to encode settings", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to encode settings")
		return
	}

	id := uuid.NewString()
	computedAt := time.Now().UTC().Format(time.RFC3339Nano)
	_, err = h.db.Exec(`
		INSERT INTO view_snapshot (id, survey_id, question_seq, kind, computed_at, settings, payload)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, id, req.SurveyID, req.Question.SequenceNumber, string(view.Kind), computedAt, string(settingsJSON), string(viewJSON))
	if err != nil {
		slog.Error("failed to insert snapshot", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.CreateSnapshotResponse{
		SnapshotID: id,
	})
}

// GetSnapshot handles GET /snapshots/{id}
func (h *SnapshotHandler) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	var snapshot models.Snapshot
	var kind, computedAt string
	var viewJSON []byte
	err := h.db.QueryRow(`
		SELECT id, survey_id, question_seq, kind, computed_at, payload
		FROM view_snapshot
		WHERE id = $1
	`, id).Scan(
		&snapshot.ID, &snapshot.SurveyID, &snapshot.QuestionSeq,
		&kind, &computedAt, &viewJSON,
	)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Snapshot not found")
		return
	}
	if err != nil {
		slog.Error("failed to query snapshot", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	snapshot.Kind = models.Kind(kind)
	if ts, err := time.Parse(time.RFC3339Nano, computedAt); err == nil {
		snapshot.ComputedAt = ts
	}
	if err := json.Unmarshal(viewJSON, &snapshot.View); err != nil {
		slog.Error("failed to parse snapshot payload", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to parse snapshot")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, snapshot)
}
