// Copyright (c) 2026 Survey Lens.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"encoding/json"
	"testing"
)

func TestDefaultSettings(t *testing.T) {
	st := DefaultSettings()

	if st.ShowPercentages {
		t.Error("default should be counts, not percentages")
	}
	if st.SortOrder != SortDefault {
		t.Errorf("default sort order should be %q, got %q", SortDefault, st.SortOrder)
	}
	for name, flag := range map[string]bool{
		"ShowStatsTable":   st.ShowStatsTable,
		"ShowMean":         st.ShowMean,
		"ShowMedian":       st.ShowMedian,
		"ShowMin":          st.ShowMin,
		"ShowMax":          st.ShowMax,
		"ShowStdDev":       st.ShowStdDev,
		"ShowResponseDist": st.ShowResponseDist,
		"ShowNA":           st.ShowNA,
	} {
		if !flag {
			t.Errorf("%s should default to true", name)
		}
	}
}

func TestSettings_PartialUnmarshalKeepsDefaults(t *testing.T) {
	var st Settings
	if err := json.Unmarshal([]byte(`{"showMean": false, "sortOrder": "desc"}`), &st); err != nil {
		t.Fatal(err)
	}

	if st.ShowMean {
		t.Error("showMean was explicitly false")
	}
	if st.SortOrder != SortDesc {
		t.Errorf("sortOrder = %q, want desc", st.SortOrder)
	}
	// Omitted keys keep their documented defaults
	if !st.ShowMedian {
		t.Error("omitted showMedian should stay true")
	}
	if !st.ShowStatsTable {
		t.Error("omitted showStatsTable should stay true")
	}
	if st.ShowPercentages {
		t.Error("omitted showPercentages should stay false")
	}
}

func TestSettings_UnmarshalEmptySortOrder(t *testing.T) {
	var st Settings
	if err := json.Unmarshal([]byte(`{"sortOrder": ""}`), &st); err != nil {
		t.Fatal(err)
	}
	if st.SortOrder != SortDefault {
		t.Errorf("empty sortOrder should fall back to default, got %q", st.SortOrder)
	}
}

func TestEffectiveSettings(t *testing.T) {
	st := EffectiveSettings(nil)
	if !st.ShowStatsTable || st.SortOrder != SortDefault {
		t.Error("nil settings should resolve to defaults")
	}

	custom := Settings{ShowPercentages: true}
	resolved := EffectiveSettings(&custom)
	if !resolved.ShowPercentages {
		t.Error("explicit settings should pass through")
	}
	if resolved.SortOrder != SortDefault {
		t.Error("zero sort order should resolve to default")
	}
}
