// Copyright (c) 2026 Survey Lens.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// View-model types consumed by the rendering layer. Every view-model is
// produced fresh from its inputs; nothing here is ever patched in place.

// ChartSeries is an ordered set of (label, value, color) triples.
// Invariant: len(Labels) == len(Values) == len(Colors). A nil entry in
// Values means "not computable" and renders as "-", never as 0.
type ChartSeries struct {
	Labels []string   `json:"labels"`
	Values []*float64 `json:"values"`
	Colors []string   `json:"colors"`
}

// StatRow is one scalar statistic. Precision -1 means "render the raw
// value"; 0 and above are fixed decimal places. Display is the
// pre-formatted rendering of Value.
type StatRow struct {
	Metric    string   `json:"metric"`
	Value     *float64 `json:"value"`
	Precision int      `json:"precision"`
	Display   string   `json:"display,omitempty"`
}

// GridModel is the normalized form of any matrix-question payload. Array
// fields are always present (possibly empty), never nil, so downstream
// indexing needs no null checks.
type GridModel struct {
	Kind Kind `json:"kind"`

	// Inferred flags that the kind came from the structural fallback, not an
	// explicit discriminator. Radio and checkbox grids are structurally
	// identical, so an inferred radio grid may really be a checkbox grid.
	Inferred bool `json:"inferred,omitempty"`

	Rows           []string    `json:"rows"`
	Columns        []string    `json:"columns"`
	Values         [][]float64 `json:"values"`
	CellAverages   [][]float64 `json:"cell_averages"`
	CountValues    [][]float64 `json:"count_values"`
	RowTotals      []float64   `json:"row_totals"`
	ColumnTotals   []float64   `json:"column_totals"`
	RowAverages    []float64   `json:"row_averages"`
	ColumnAverages []float64   `json:"column_averages"`
	TotalResponses int         `json:"total_responses"`
}

// ComparisonResult is a label-aligned two-cohort comparison.
// Invariant: Deltas[i] = ValuesA[i] - ValuesB[i] iff both are non-nil,
// otherwise nil.
type ComparisonResult struct {
	Labels  []string   `json:"labels"`
	ValuesA []*float64 `json:"values_a"`
	ValuesB []*float64 `json:"values_b"`
	Deltas  []*float64 `json:"deltas"`
}

// GridComparison aligns two grid models section by section. Totals compare
// additively (absent = 0 observed); averages compare as "not computable"
// when absent.
type GridComparison struct {
	Kind           Kind              `json:"kind"`
	Rows           []string          `json:"rows"`
	Columns        []string          `json:"columns"`
	RowTotals      *ComparisonResult `json:"row_totals,omitempty"`
	ColumnTotals   *ComparisonResult `json:"column_totals,omitempty"`
	RowAverages    *ComparisonResult `json:"row_averages,omitempty"`
	ColumnAverages *ComparisonResult `json:"column_averages,omitempty"`
}

// Comparison is the aligner's output: exactly one of Series or Grid is set
// depending on Kind.
type Comparison struct {
	Kind   Kind              `json:"kind"`
	Series *ComparisonResult `json:"series,omitempty"`
	Grid   *GridComparison   `json:"grid,omitempty"`
}

// Request types

type ViewRequest struct {
	Question  QuestionMeta `json:"question"`
	Analytics *Analytics   `json:"analytics,omitempty"`
	GridData  *GridData    `json:"grid_data,omitempty"`
	Settings  *Settings    `json:"settings,omitempty"`
}

// AsPayload assembles the engine payload from the request body.
func (r ViewRequest) AsPayload() Payload {
	return Payload{
		Question:  r.Question,
		Analytics: r.Analytics,
		GridData:  r.GridData,
	}
}

// Cohort is one side of a comparison request. The question metadata is
// shared at the request level.
type Cohort struct {
	Analytics *Analytics `json:"analytics,omitempty"`
	GridData  *GridData  `json:"grid_data,omitempty"`
}

// AsPayload combines a cohort body with the shared question metadata.
func (c Cohort) AsPayload(q QuestionMeta) Payload {
	return Payload{
		Question:  q,
		Analytics: c.Analytics,
		GridData:  c.GridData,
	}
}

type CompareRequest struct {
	Question QuestionMeta `json:"question"`
	CohortA  Cohort       `json:"cohort_a"`
	CohortB  Cohort       `json:"cohort_b"`
	Settings *Settings    `json:"settings,omitempty"`
}

type CreateSnapshotRequest struct {
	SurveyID  string       `json:"survey_id"`
	Question  QuestionMeta `json:"question"`
	Analytics *Analytics   `json:"analytics,omitempty"`
	GridData  *GridData    `json:"grid_data,omitempty"`
	Settings  *Settings    `json:"settings,omitempty"`
}

// Response types

// ViewResponse is the normalized view-model for one payload. Chartable
// kinds carry Series and Stats; grid kinds carry Grid. NoData marks an
// explicit "no data" state so callers never render an empty chart by
// accident.
type ViewResponse struct {
	Kind      Kind         `json:"kind"`
	ChartType string       `json:"chart_type,omitempty"`
	Series    *ChartSeries `json:"series,omitempty"`
	Stats     []StatRow    `json:"stats,omitempty"`
	Grid      *GridModel   `json:"grid,omitempty"`
	NoData    bool         `json:"no_data,omitempty"`
}

type CreateSnapshotResponse struct {
	SnapshotID string `json:"snapshot_id"`
}

// Snapshot is a persisted view-model with provenance.
type Snapshot struct {
	ID          string       `json:"id"`
	SurveyID    string       `json:"survey_id"`
	QuestionSeq int          `json:"question_seq"`
	Kind        Kind         `json:"kind"`
	ComputedAt  time.Time    `json:"computed_at"`
	View        ViewResponse `json:"view"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
