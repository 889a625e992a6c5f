// Copyright (c) 2026 Survey Lens.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import (
	"fmt"
	"math"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/surveylens/surveylens/models"
)

// nativePrecision renders a stat at its raw value instead of forcing
// decimal places. Min and Max use it.
const nativePrecision = -1

// SummarizeStats derives the ordered statistic rows for a payload. Rows
// whose value is missing are dropped; a value of exactly 0 is kept. The
// showStatsTable flag gates the entire table.
func SummarizeStats(kind models.Kind, p *models.Payload, st models.Settings) []models.StatRow {
	if p == nil || p.Analytics == nil || !st.ShowStatsTable {
		return nil
	}
	a := p.Analytics

	rows := make([]models.StatRow, 0, 10)
	if st.ShowMean {
		rows = appendStat(rows, "Mean", sanitize(a.Mean), 2)
	}
	if st.ShowMedian {
		rows = appendStat(rows, "Median", sanitize(a.Median), 2)
	}
	if st.ShowMin {
		rows = appendStat(rows, "Min", sanitize(a.Min), nativePrecision)
	}
	if st.ShowMax {
		rows = appendStat(rows, "Max", sanitize(a.Max), nativePrecision)
	}
	if st.ShowStdDev {
		rows = appendStat(rows, "Std. Deviation", sanitize(a.StdDev), 2)
	}

	if kind == models.KindNPS {
		rows = append(rows, npsStatRows(a)...)
	}

	if n, ok := responsesConsidered(a); ok {
		rows = append(rows, countRow("Total Responses Considered", n))
	}

	return rows
}

// npsStatRows emits the four fixed NPS rows. Segment percentages are
// computed over promoters+passives+detractors, not over total responses.
// The score row keeps the raw value at one decimal so comparison deltas
// stay exact; the whole-number rounding lives in Display only.
func npsStatRows(a *models.Analytics) []models.StatRow {
	seg := a.NPSSegments
	if seg == nil {
		return nil
	}

	base := seg.Promoters + seg.Passives + seg.Detractors
	rows := make([]models.StatRow, 0, 4)
	rows = append(rows, segmentRow("Promoters", seg.Promoters, base))
	rows = append(rows, segmentRow("Passives", seg.Passives, base))
	rows = append(rows, segmentRow("Detractors", seg.Detractors, base))

	var score float64
	if a.NPSScore != nil && !math.IsNaN(*a.NPSScore) {
		score = *a.NPSScore
	} else if base > 0 {
		score = (seg.Promoters - seg.Detractors) / base * 100
	}
	score = round1(score)
	rows = append(rows, models.StatRow{
		Metric:    "NPS Score",
		Value:     &score,
		Precision: 1,
		Display:   strconv.Itoa(int(math.Round(score))),
	})
	return rows
}

func segmentRow(metric string, count, base float64) models.StatRow {
	display := humanize.Comma(int64(count))
	if base > 0 {
		display = fmt.Sprintf("%s (%.1f%%)", display, count/base*100)
	}
	v := count
	return models.StatRow{
		Metric:    metric,
		Value:     &v,
		Precision: 0,
		Display:   display,
	}
}

// responsesConsidered prefers the payload's explicit count over a
// recomputed sum of the distribution. NA buckets stay out of the recomputed
// sum since they never entered the numeric aggregation.
func responsesConsidered(a *models.Analytics) (int, bool) {
	if a.TotalResponsesConsidered != nil {
		return *a.TotalResponsesConsidered, true
	}
	if len(a.Distribution) == 0 {
		return 0, false
	}
	sum := 0.0
	for _, b := range a.Distribution {
		if b.Value.IsNA() {
			continue
		}
		sum += b.Count
	}
	return int(sum), true
}

func countRow(metric string, n int) models.StatRow {
	v := float64(n)
	return models.StatRow{
		Metric:    metric,
		Value:     &v,
		Precision: 0,
		Display:   humanize.Comma(int64(n)),
	}
}

// appendStat adds a row unless its value is missing. Zero is a real value
// and stays.
func appendStat(rows []models.StatRow, metric string, value *float64, precision int) []models.StatRow {
	if value == nil {
		return rows
	}
	return append(rows, models.StatRow{
		Metric:    metric,
		Value:     value,
		Precision: precision,
		Display:   formatStat(*value, precision),
	})
}

func formatStat(v float64, precision int) string {
	return strconv.FormatFloat(v, 'f', precision, 64)
}
