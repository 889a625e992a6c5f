// Copyright (c) 2026 Survey Lens.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/surveylens/surveylens/engine"
	"github.com/surveylens/surveylens/middleware"
	"github.com/surveylens/surveylens/models"
)

// Compare handles POST /analytics/compare
// Aligns two cohorts' analytics for the same question. Refusals use the two
// documented user-facing messages; the engine never substitutes zeros for a
// true error condition.
func (h *AnalyticsHandler) Compare(w http.ResponseWriter, r *http.Request) {
	var req models.CompareRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	pa := req.CohortA.AsPayload(req.Question)
	pb := req.CohortB.AsPayload(req.Question)

	cmp, err := engine.Compare(&pa, &pb, models.EffectiveSettings(req.Settings))
	switch {
	case errors.Is(err, engine.ErrKindMismatch) || errors.Is(err, engine.ErrUnsupportedKind):
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, engine.MsgComparisonUnavailable)
	case errors.Is(err, engine.ErrNoData) || errors.Is(err, engine.ErrEmptySeries) ||
		errors.Is(err, engine.ErrMalformedField):
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, engine.MsgNoComparableData)
	case err != nil:
		slog.Error("failed to compare cohorts", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to compare cohorts")
	default:
		middleware.JSONResponse(w, http.StatusOK, cmp)
	}
}
