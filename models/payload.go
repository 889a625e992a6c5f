package models

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Analytics payload discriminators as emitted by the survey backend.
const (
	TypeSingleSelect = "single_select_distribution"
	TypeMultiSelect  = "multi_select_distribution"
	TypeNumericStats = "numeric_stats"
	TypeSliderStats  = "slider_stats"
	TypeStarRating   = "star-rating"
	TypeRankingStats = "ranking_stats"
	TypeGridData     = "grid_data"
)

// Question type strings relevant to classification.
const (
	QuestionTypeNPS          = "nps"
	QuestionTypeStarGrid     = "star-rating-grid"
	QuestionTypeRadioGrid    = "radio-grid"
	QuestionTypeCheckboxGrid = "checkbox-grid"
)

// Kind is the canonical classification of a question's analytics payload shape.
// Every downstream component switches over this closed set instead of
// re-comparing discriminator strings.
type Kind string

const (
	KindSingleSelect Kind = "single_select"
	KindMultiSelect  Kind = "multi_select"
	KindNumeric      Kind = "numeric"
	KindNPS          Kind = "nps"
	KindSlider       Kind = "slider"
	KindStarRating   Kind = "star_rating"
	KindRanking      Kind = "ranking"
	KindStarGrid     Kind = "star_grid"
	KindRadioGrid    Kind = "radio_grid"
	KindCheckboxGrid Kind = "checkbox_grid"
	KindUnknown      Kind = "unknown"

	// KindNoData means there was nothing to classify (no analytics object at
	// all), as opposed to KindUnknown (classified but unsupported).
	KindNoData Kind = "no_data"
)

// IsGrid reports whether the kind is a matrix-style question.
func (k Kind) IsGrid() bool {
	return k == KindStarGrid || k == KindRadioGrid || k == KindCheckboxGrid
}

// QuestionMeta describes the question a payload belongs to. QuestionType is
// the secondary discriminator needed where the payload type alone is
// ambiguous (numeric_stats covers both plain numeric input and NPS).
type QuestionMeta struct {
	QuestionText   string `json:"question_text"`
	QuestionType   string `json:"question_type"`
	SequenceNumber int    `json:"sequence_number"`
	TotalResponses int    `json:"total_responses"`
}

// Payload is the raw analytics record for one (survey, question,
// cohort-filter) combination. The engine never mutates it.
type Payload struct {
	Question  QuestionMeta `json:"question"`
	Analytics *Analytics   `json:"analytics,omitempty"`

	// Some backends emit grid data at the payload level instead of nesting
	// it under analytics.
	GridData *GridData `json:"grid_data,omitempty"`
}

// Analytics carries the type discriminator plus the union of all
// type-specific fields. Which fields are populated depends on Type.
type Analytics struct {
	Type string `json:"type"`

	OptionsDistribution []OptionBucket `json:"options_distribution,omitempty"`
	OptionDistribution  []OptionBucket `json:"option_distribution,omitempty"`

	Mean   *float64 `json:"mean,omitempty"`
	Median *float64 `json:"median,omitempty"`
	Min    *float64 `json:"min,omitempty"`
	Max    *float64 `json:"max,omitempty"`
	StdDev *float64 `json:"std_dev,omitempty"`

	Distribution []ValueBucket `json:"distribution,omitempty"`

	NPSScore    *float64     `json:"nps_score,omitempty"`
	NPSSegments *NPSSegments `json:"nps_segments,omitempty"`

	AverageRanks           []RankEntry `json:"average_ranks,omitempty"`
	RankDistributionMatrix [][]float64 `json:"rank_distribution_matrix,omitempty"`
	ItemsInQuestion        []string    `json:"items_in_question,omitempty"`

	GridData *GridData `json:"grid_data,omitempty"`

	TotalResponses           int  `json:"total_responses,omitempty"`
	TotalResponsesConsidered *int `json:"total_responses_considered,omitempty"`
}

// IsEmpty reports whether no shape-specific field is populated.
func (a *Analytics) IsEmpty() bool {
	if a == nil {
		return true
	}
	return len(a.OptionsDistribution) == 0 &&
		len(a.OptionDistribution) == 0 &&
		len(a.Distribution) == 0 &&
		a.Mean == nil && a.Median == nil && a.Min == nil && a.Max == nil &&
		a.StdDev == nil && a.NPSScore == nil && a.NPSSegments == nil &&
		len(a.AverageRanks) == 0 && a.GridData == nil
}

// OptionBucket is one entry of a choice distribution. Single-select payloads
// fill Percentage, multi-select payloads fill PercentageOfResponses.
type OptionBucket struct {
	Option                string   `json:"option,omitempty"`
	HiddenLabel           string   `json:"hidden_label,omitempty"`
	Count                 float64  `json:"count"`
	Percentage            *float64 `json:"percentage,omitempty"`
	PercentageOfResponses *float64 `json:"percentage_of_responses,omitempty"`
}

// Label resolves the display label: option, then hidden_label, then "Unknown".
func (b OptionBucket) Label() string {
	if b.Option != "" {
		return b.Option
	}
	if b.HiddenLabel != "" {
		return b.HiddenLabel
	}
	return "Unknown"
}

// ValueBucket is one entry of a numeric distribution. Value may arrive as a
// number or as a not-applicable token string.
type ValueBucket struct {
	Value      FlexValue `json:"value"`
	Count      float64   `json:"count"`
	Percentage *float64  `json:"percentage,omitempty"`
}

// FlexValue holds a distribution bucket value that may be numeric or a raw
// string token.
type FlexValue struct {
	Raw   string
	Num   float64
	IsNum bool
}

func (v *FlexValue) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		v.Num = n
		v.IsNum = true
		v.Raw = strconv.FormatFloat(n, 'f', -1, 64)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("distribution value must be a number or string: %w", err)
	}
	v.Raw = s
	if n, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil && !math.IsNaN(n) {
		v.Num = n
		v.IsNum = true
	}
	return nil
}

func (v FlexValue) MarshalJSON() ([]byte, error) {
	if v.IsNum {
		return json.Marshal(v.Num)
	}
	return json.Marshal(v.Raw)
}

// Label returns the display form of the value.
func (v FlexValue) Label() string {
	if v.Raw != "" {
		return v.Raw
	}
	if v.IsNum {
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	}
	return ""
}

// naTokens are distinguished "not applicable" values, compared
// case-insensitively. They are excluded from numeric aggregation and the
// default sort but retained in the raw distribution for tabular display.
var naTokens = map[string]bool{
	"na":             true,
	"n/a":            true,
	"not applicable": true,
}

// IsNA reports whether the value is a not-applicable sentinel token.
func (v FlexValue) IsNA() bool {
	if v.IsNum {
		return false
	}
	return naTokens[strings.ToLower(strings.TrimSpace(v.Raw))]
}

// NPSSegments holds respondent counts per NPS segment.
type NPSSegments struct {
	Promoters  float64 `json:"promoters"`
	Passives   float64 `json:"passives"`
	Detractors float64 `json:"detractors"`
}

// RankEntry is one item of a ranking question's average-rank list. A lower
// average rank is better.
type RankEntry struct {
	Item        string   `json:"item"`
	AverageRank *float64 `json:"average_rank,omitempty"`
	Count       float64  `json:"count"`
}

// GridLabel is a row or column label that may arrive as a plain string or as
// a {"text": ...} object.
type GridLabel string

func (l *GridLabel) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*l = GridLabel(s)
		return nil
	}

	var obj struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("grid label must be a string or {text} object: %w", err)
	}
	*l = GridLabel(obj.Text)
	return nil
}

// GridData is the raw matrix-question payload. Radio and checkbox grids fill
// Values with counts; star grids fill CellAverages (and CountValues with the
// per-cell response counts behind each average).
type GridData struct {
	QuestionType   string      `json:"question_type,omitempty"`
	Rows           []GridLabel `json:"rows,omitempty"`
	Columns        []GridLabel `json:"columns,omitempty"`
	Values         [][]float64 `json:"values,omitempty"`
	CellAverages   [][]float64 `json:"cell_averages,omitempty"`
	CountValues    [][]float64 `json:"count_values,omitempty"`
	RowTotals      []float64   `json:"row_totals,omitempty"`
	ColumnTotals   []float64   `json:"column_totals,omitempty"`
	RowAverages    []float64   `json:"row_averages,omitempty"`
	ColumnAverages []float64   `json:"column_averages,omitempty"`
	TotalResponses int         `json:"total_responses,omitempty"`
}
