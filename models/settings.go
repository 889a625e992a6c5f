// Copyright (c) 2026 Survey Lens.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "encoding/json"

// SortOrder selects how a series is ordered by its magnitude field (count
// for distributions, average rank for rankings).
type SortOrder string

const (
	SortDefault SortOrder = "default"
	SortDesc    SortOrder = "desc"
	SortAsc     SortOrder = "asc"
)

// Settings is the immutable display configuration passed by value into every
// engine function. All flags have fully-enumerated defaults; see
// DefaultSettings.
type Settings struct {
	// ChartType is a drawing hint for the rendering layer, passed through
	// untouched.
	ChartType string `json:"chartType,omitempty"`

	// ShowPercentages selects percentage values over raw counts in series.
	ShowPercentages bool `json:"showPercentages"`

	SortOrder SortOrder `json:"sortOrder"`

	// Stat-row inclusion filters. ShowStatsTable gates the whole table.
	ShowStatsTable   bool `json:"showStatsTable"`
	ShowMean         bool `json:"showMean"`
	ShowMedian       bool `json:"showMedian"`
	ShowMin          bool `json:"showMin"`
	ShowMax          bool `json:"showMax"`
	ShowStdDev       bool `json:"showStdDev"`
	ShowResponseDist bool `json:"showResponseDist"`
	ShowNA           bool `json:"showNA"`

	// CustomColors overrides the default palette by original-order index.
	CustomColors []string `json:"customColors,omitempty"`
}

// DefaultSettings returns the effective settings when the caller provides
// none: counts rather than percentages, source order, every row shown.
func DefaultSettings() Settings {
	return Settings{
		SortOrder:        SortDefault,
		ShowStatsTable:   true,
		ShowMean:         true,
		ShowMedian:       true,
		ShowMin:          true,
		ShowMax:          true,
		ShowStdDev:       true,
		ShowResponseDist: true,
		ShowNA:           true,
	}
}

// UnmarshalJSON decodes a possibly-partial settings object on top of the
// defaults, so omitted keys keep their documented default rather than the
// zero value.
func (s *Settings) UnmarshalJSON(data []byte) error {
	type plain Settings
	v := plain(DefaultSettings())
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v.SortOrder == "" {
		v.SortOrder = SortDefault
	}
	*s = Settings(v)
	return nil
}

// EffectiveSettings resolves an optional settings pointer to a value.
func EffectiveSettings(s *Settings) Settings {
	if s == nil {
		return DefaultSettings()
	}
	out := *s
	if out.SortOrder == "" {
		out.SortOrder = SortDefault
	}
	return out
}
