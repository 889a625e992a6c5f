// Copyright (c) 2026 Survey Lens.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/surveylens/surveylens/cliparse"
	"github.com/surveylens/surveylens/engine"
	"github.com/surveylens/surveylens/middleware"
	"github.com/surveylens/surveylens/models"
)

type AnalyticsHandler struct {
	cfg cliparse.Config
}

func NewAnalyticsHandler(cfg cliparse.Config) *AnalyticsHandler {
	return &AnalyticsHandler{cfg: cfg}
}

// BuildView handles POST /analytics/view
// Normalizes one payload into its view-model: series plus stat rows for
// chartable kinds, a grid model for matrix kinds.
func (h *AnalyticsHandler) BuildView(w http.ResponseWriter, r *http.Request) {
	var req models.ViewRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	view, err := buildView(req.AsPayload(), models.EffectiveSettings(req.Settings))
	if err != nil {
		if errors.Is(err, engine.ErrUnsupportedKind) {
			middleware.ErrorResponse(w, http.StatusUnprocessableEntity, "Unsupported analytics type")
			return
		}
		slog.Error("failed to build view", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to build view")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, view)
}

// buildView runs the full normalization pipeline for one payload. Expected
// no-data outcomes become an explicit NoData view, not an error; only
// unsupported payloads surface one.
func buildView(p models.Payload, st models.Settings) (*models.ViewResponse, error) {
	kind := engine.Classify(&p)

	switch {
	case kind == models.KindNoData:
		return &models.ViewResponse{Kind: kind, NoData: true}, nil

	case kind == models.KindUnknown:
		return nil, engine.ErrUnsupportedKind

	case kind.IsGrid():
		grid, err := engine.NormalizeGrid(&p)
		if errors.Is(err, engine.ErrNoData) {
			return &models.ViewResponse{Kind: models.KindNoData, NoData: true}, nil
		}
		if err != nil {
			return nil, err
		}
		return &models.ViewResponse{Kind: kind, ChartType: st.ChartType, Grid: grid}, nil

	default:
		series, err := engine.BuildSeries(kind, &p, st)
		if errors.Is(err, engine.ErrEmptySeries) || errors.Is(err, engine.ErrNoData) ||
			errors.Is(err, engine.ErrMalformedField) {
			return &models.ViewResponse{Kind: kind, NoData: true}, nil
		}
		if err != nil {
			return nil, err
		}
		return &models.ViewResponse{
			Kind:      kind,
			ChartType: st.ChartType,
			Series:    series,
			Stats:     engine.SummarizeStats(kind, &p, st),
		}, nil
	}
}
