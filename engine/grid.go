// Copyright (c) 2026 Survey Lens.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import "github.com/surveylens/surveylens/models"

// NormalizeGrid turns any grid-shaped payload into one consistent model.
// The grid data may sit at the payload level or under analytics; rows and
// columns may be plain strings or {text} objects. Every array field of the
// result is present, possibly empty, never nil.
func NormalizeGrid(p *models.Payload) (*models.GridModel, error) {
	gd := gridSource(p)
	if gd == nil {
		return nil, ErrNoData
	}

	kind, inferred := gridKind(gd)
	if kind == models.KindUnknown {
		return nil, ErrUnsupportedKind
	}

	g := &models.GridModel{
		Kind:           kind,
		Inferred:       inferred,
		Rows:           labelStrings(gd.Rows),
		Columns:        labelStrings(gd.Columns),
		Values:         matrixOrEmpty(gd.Values),
		CellAverages:   matrixOrEmpty(gd.CellAverages),
		CountValues:    matrixOrEmpty(gd.CountValues),
		RowTotals:      sliceOrEmpty(gd.RowTotals),
		ColumnTotals:   sliceOrEmpty(gd.ColumnTotals),
		RowAverages:    sliceOrEmpty(gd.RowAverages),
		ColumnAverages: sliceOrEmpty(gd.ColumnAverages),
		TotalResponses: gd.TotalResponses,
	}

	// Derive aggregates the payload omitted, where the cell data allows it.
	if len(g.RowTotals) == 0 && len(g.Values) > 0 {
		g.RowTotals = rowSums(g.Values)
	}
	if len(g.ColumnTotals) == 0 && len(g.Values) > 0 {
		g.ColumnTotals = columnSums(g.Values)
	}
	if len(g.RowAverages) == 0 && len(g.CellAverages) > 0 {
		g.RowAverages = rowMeans(g.CellAverages)
	}
	if len(g.ColumnAverages) == 0 && len(g.CellAverages) > 0 {
		g.ColumnAverages = columnMeans(g.CellAverages)
	}

	return g, nil
}

// gridSource finds the grid data on a payload, wherever it lives.
func gridSource(p *models.Payload) *models.GridData {
	if p == nil {
		return nil
	}
	if p.Analytics != nil && p.Analytics.GridData != nil {
		return p.Analytics.GridData
	}
	return p.GridData
}

func labelStrings(labels []models.GridLabel) []string {
	out := make([]string, len(labels))
	for i, l := range labels {
		out[i] = string(l)
	}
	return out
}

func sliceOrEmpty(v []float64) []float64 {
	if v == nil {
		return []float64{}
	}
	return v
}

func matrixOrEmpty(m [][]float64) [][]float64 {
	if m == nil {
		return [][]float64{}
	}
	out := make([][]float64, len(m))
	for i, row := range m {
		if row == nil {
			out[i] = []float64{}
		} else {
			out[i] = row
		}
	}
	return out
}

func rowSums(m [][]float64) []float64 {
	sums := make([]float64, len(m))
	for i, row := range m {
		for _, v := range row {
			sums[i] += v
		}
	}
	return sums
}

func columnSums(m [][]float64) []float64 {
	sums := make([]float64, columnCount(m))
	for _, row := range m {
		for j, v := range row {
			sums[j] += v
		}
	}
	return sums
}

func rowMeans(m [][]float64) []float64 {
	means := make([]float64, len(m))
	for i, row := range m {
		means[i] = round2(mean(row))
	}
	return means
}

func columnMeans(m [][]float64) []float64 {
	cols := columnCount(m)
	means := make([]float64, cols)
	for j := 0; j < cols; j++ {
		var col []float64
		for _, row := range m {
			if j < len(row) {
				col = append(col, row[j])
			}
		}
		means[j] = round2(mean(col))
	}
	return means
}

// columnCount tolerates ragged matrices by taking the widest row.
func columnCount(m [][]float64) int {
	n := 0
	for _, row := range m {
		if len(row) > n {
			n = len(row)
		}
	}
	return n
}

// mean calculates the arithmetic mean
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0.0
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
