// Copyright (c) 2026 Survey Lens.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import (
	"errors"

	"github.com/surveylens/surveylens/models"
)

// Compare aligns two cohorts' analytics for the same question. Both payloads
// must classify to the same kind; a mismatch is rejected outright, never
// silently compared. Missing or empty analytics on either side refuses the
// comparison so callers show an explicit "unavailable" state instead of a
// zero-filled chart.
func Compare(a, b *models.Payload, st models.Settings) (*models.Comparison, error) {
	ka := Classify(a)
	kb := Classify(b)

	if ka == models.KindNoData || kb == models.KindNoData {
		return nil, ErrNoData
	}
	if ka != kb {
		return nil, ErrKindMismatch
	}
	if ka == models.KindUnknown {
		return nil, ErrUnsupportedKind
	}

	if ka.IsGrid() {
		grid, err := compareGrids(a, b)
		if err != nil {
			return nil, err
		}
		return &models.Comparison{Kind: ka, Grid: grid}, nil
	}

	if a.Analytics.IsEmpty() || b.Analytics.IsEmpty() {
		return nil, ErrNoData
	}

	sa, errA := BuildSeries(ka, a, st)
	sb, errB := BuildSeries(kb, b, st)
	if errors.Is(errA, ErrEmptySeries) && errors.Is(errB, ErrEmptySeries) {
		return nil, ErrEmptySeries
	}
	// One empty cohort still compares; its labels simply come up absent.
	if errors.Is(errA, ErrEmptySeries) {
		sa, errA = emptySeries(0), nil
	}
	if errors.Is(errB, ErrEmptySeries) {
		sb, errB = emptySeries(0), nil
	}
	if errA != nil {
		return nil, errA
	}
	if errB != nil {
		return nil, errB
	}

	result := alignSeries(sa, sb, additiveKind(ka))
	return &models.Comparison{Kind: ka, Series: result}, nil
}

// additiveKind separates the two missing-value policies. For additive kinds
// (choice distributions, counts) an absent label means zero observed; for
// averaging kinds (ranking) an absent label is not computable and must stay
// null, since zero would be a valid average.
func additiveKind(k models.Kind) bool {
	return k != models.KindRanking
}

// alignSeries builds the label-aligned comparison: all of A's labels in
// their original order, then any label present only in B, in B's order.
func alignSeries(a, b *models.ChartSeries, additive bool) *models.ComparisonResult {
	labels := unionLabels(a.Labels, b.Labels)

	mapA := valueMap(a)
	mapB := valueMap(b)

	res := &models.ComparisonResult{
		Labels:  labels,
		ValuesA: make([]*float64, len(labels)),
		ValuesB: make([]*float64, len(labels)),
		Deltas:  make([]*float64, len(labels)),
	}
	for i, label := range labels {
		res.ValuesA[i] = lookup(mapA, label, additive)
		res.ValuesB[i] = lookup(mapB, label, additive)
		res.Deltas[i] = delta(res.ValuesA[i], res.ValuesB[i])
	}
	return res
}

func unionLabels(a, b []string) []string {
	labels := make([]string, 0, len(a)+len(b))
	seen := make(map[string]bool, len(a)+len(b))
	for _, l := range a {
		if !seen[l] {
			seen[l] = true
			labels = append(labels, l)
		}
	}
	for _, l := range b {
		if !seen[l] {
			seen[l] = true
			labels = append(labels, l)
		}
	}
	return labels
}

func valueMap(s *models.ChartSeries) map[string]*float64 {
	m := make(map[string]*float64, len(s.Labels))
	for i, label := range s.Labels {
		if i < len(s.Values) {
			if _, ok := m[label]; !ok {
				m[label] = s.Values[i]
			}
		}
	}
	return m
}

// lookup resolves a cohort's value for a label under the kind's
// missing-value policy.
func lookup(m map[string]*float64, label string, additive bool) *float64 {
	if v, ok := m[label]; ok {
		return v
	}
	if additive {
		zero := 0.0
		return &zero
	}
	return nil
}

// delta computes valuesA - valuesB only when both sides are real numbers.
// There is no NaN-to-zero coercion anywhere on this path.
func delta(a, b *float64) *float64 {
	if a == nil || b == nil {
		return nil
	}
	d := *a - *b
	return &d
}

// compareGrids aligns two normalized grids section by section. Totals are
// additive; averages are not computable when absent.
func compareGrids(a, b *models.Payload) (*models.GridComparison, error) {
	ga, err := NormalizeGrid(a)
	if err != nil {
		return nil, err
	}
	gb, err := NormalizeGrid(b)
	if err != nil {
		return nil, err
	}

	cmp := &models.GridComparison{
		Kind:    ga.Kind,
		Rows:    unionLabels(ga.Rows, gb.Rows),
		Columns: unionLabels(ga.Columns, gb.Columns),
	}

	cmp.RowTotals = alignSection(ga.Rows, ga.RowTotals, gb.Rows, gb.RowTotals, true)
	cmp.ColumnTotals = alignSection(ga.Columns, ga.ColumnTotals, gb.Columns, gb.ColumnTotals, true)
	cmp.RowAverages = alignSection(ga.Rows, ga.RowAverages, gb.Rows, gb.RowAverages, false)
	cmp.ColumnAverages = alignSection(ga.Columns, ga.ColumnAverages, gb.Columns, gb.ColumnAverages, false)

	if cmp.RowTotals == nil && cmp.ColumnTotals == nil &&
		cmp.RowAverages == nil && cmp.ColumnAverages == nil {
		return nil, ErrEmptySeries
	}
	return cmp, nil
}

// alignSection pairs grid labels with their aggregate values and aligns the
// two sides. A section missing from both grids yields nil.
func alignSection(labelsA []string, valuesA []float64, labelsB []string, valuesB []float64, additive bool) *models.ComparisonResult {
	sa := pairSeries(labelsA, valuesA)
	sb := pairSeries(labelsB, valuesB)
	if len(sa.Labels) == 0 && len(sb.Labels) == 0 {
		return nil
	}
	return alignSeries(sa, sb, additive)
}

// pairSeries zips grid labels with aggregate values, stopping at the
// shorter side so a truncated aggregate array never misaligns.
func pairSeries(labels []string, values []float64) *models.ChartSeries {
	n := len(labels)
	if len(values) < n {
		n = len(values)
	}
	s := emptySeries(n)
	for i := 0; i < n; i++ {
		s.Labels = append(s.Labels, labels[i])
		s.Values = append(s.Values, number(values[i]))
	}
	return s
}
