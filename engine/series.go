// Copyright (c) 2026 Survey Lens.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import (
	"math"
	"sort"

	"github.com/surveylens/surveylens/models"
)

// missingRankSentinel sorts items without an average rank behind every real
// rank.
const missingRankSentinel = 999

// BuildSeries extracts an ordered (label, value, color) series from a
// payload for the given kind. It returns ErrEmptySeries when the source
// array is present but empty, so callers can render an explicit "no data"
// state instead of an empty chart.
func BuildSeries(kind models.Kind, p *models.Payload, st models.Settings) (*models.ChartSeries, error) {
	if p == nil || p.Analytics == nil {
		return nil, ErrNoData
	}
	a := p.Analytics

	switch kind {
	case models.KindSingleSelect:
		return optionSeries(a.OptionsDistribution, false, st)
	case models.KindMultiSelect:
		return optionSeries(a.OptionDistribution, true, st)
	case models.KindNumeric, models.KindSlider, models.KindStarRating:
		return distributionSeries(a.Distribution, st)
	case models.KindNPS:
		return npsSeries(a, p.Question)
	case models.KindRanking:
		return rankingSeries(a.AverageRanks, st)
	case models.KindNoData:
		return nil, ErrNoData
	}

	return nil, ErrUnsupportedKind
}

// optionSeries builds the series for single- and multi-select
// distributions. Multi-select percentages live in percentage_of_responses.
func optionSeries(buckets []models.OptionBucket, multi bool, st models.Settings) (*models.ChartSeries, error) {
	if len(buckets) == 0 {
		return nil, ErrEmptySeries
	}

	labels := make([]string, len(buckets))
	for i, b := range buckets {
		labels[i] = b.Label()
	}
	colors := colorMap(labels, st.CustomColors)

	order := sourceOrder(len(buckets))
	switch st.SortOrder {
	case models.SortDesc:
		sort.SliceStable(order, func(i, j int) bool {
			return buckets[order[i]].Count > buckets[order[j]].Count
		})
	case models.SortAsc:
		sort.SliceStable(order, func(i, j int) bool {
			return buckets[order[i]].Count < buckets[order[j]].Count
		})
	}

	s := emptySeries(len(buckets))
	for _, idx := range order {
		b := buckets[idx]
		var v *float64
		if st.ShowPercentages {
			if multi {
				v = sanitize(b.PercentageOfResponses)
			} else {
				v = sanitize(b.Percentage)
			}
		} else {
			v = number(b.Count)
		}
		appendPoint(s, labels[idx], v, colors[labels[idx]])
	}
	return s, nil
}

// distributionSeries builds the series for numeric, slider, and star-rating
// distributions. NA sentinel buckets never join the numeric ordering; they
// trail the series when showNA is set and drop out otherwise.
func distributionSeries(buckets []models.ValueBucket, st models.Settings) (*models.ChartSeries, error) {
	if len(buckets) == 0 {
		return nil, ErrEmptySeries
	}

	labels := make([]string, len(buckets))
	for i, b := range buckets {
		labels[i] = b.Value.Label()
	}
	colors := colorMap(labels, st.CustomColors)

	var numeric, na []int
	for i, b := range buckets {
		if b.Value.IsNA() {
			na = append(na, i)
		} else {
			numeric = append(numeric, i)
		}
	}

	switch st.SortOrder {
	case models.SortDefault:
		sort.SliceStable(numeric, func(i, j int) bool {
			return buckets[numeric[i]].Value.Num < buckets[numeric[j]].Value.Num
		})
	case models.SortDesc:
		sort.SliceStable(numeric, func(i, j int) bool {
			return buckets[numeric[i]].Count > buckets[numeric[j]].Count
		})
	case models.SortAsc:
		sort.SliceStable(numeric, func(i, j int) bool {
			return buckets[numeric[i]].Count < buckets[numeric[j]].Count
		})
	}

	order := numeric
	if st.ShowNA {
		order = append(order, na...)
	}

	s := emptySeries(len(order))
	for _, idx := range order {
		b := buckets[idx]
		var v *float64
		if st.ShowPercentages {
			v = sanitize(b.Percentage)
		} else {
			v = number(b.Count)
		}
		appendPoint(s, labels[idx], v, colors[labels[idx]])
	}
	return s, nil
}

// npsSeries derives the three segment percentages over total responses plus
// the NPS score as a fourth value. The percentage/count toggle does not
// apply to the score.
func npsSeries(a *models.Analytics, meta models.QuestionMeta) (*models.ChartSeries, error) {
	seg := a.NPSSegments
	if seg == nil {
		return nil, ErrEmptySeries
	}

	total := float64(meta.TotalResponses)
	if total <= 0 {
		total = float64(a.TotalResponses)
	}
	if total <= 0 {
		total = seg.Promoters + seg.Passives + seg.Detractors
	}
	if total <= 0 {
		return nil, ErrMalformedField
	}

	promoters := round1(seg.Promoters / total * 100)
	passives := round1(seg.Passives / total * 100)
	detractors := round1(seg.Detractors / total * 100)

	score := promoters - detractors
	if a.NPSScore != nil && !math.IsNaN(*a.NPSScore) {
		score = *a.NPSScore
	}
	score = round1(score)

	return &models.ChartSeries{
		Labels: []string{"Promoters", "Passives", "Detractors", "NPS Score"},
		Values: []*float64{&promoters, &passives, &detractors, &score},
		Colors: append([]string(nil), npsPalette...),
	}, nil
}

// rankingSeries builds the average-rank series. Lower is better, so the
// default order is ascending; items with no rank carry a nil value and sort
// behind everything via the 999 sentinel.
func rankingSeries(entries []models.RankEntry, st models.Settings) (*models.ChartSeries, error) {
	if len(entries) == 0 {
		return nil, ErrEmptySeries
	}

	labels := make([]string, len(entries))
	for i, e := range entries {
		labels[i] = e.Item
	}
	colors := colorMap(labels, st.CustomColors)

	rankOf := func(i int) float64 {
		r := sanitize(entries[i].AverageRank)
		if r == nil {
			return missingRankSentinel
		}
		return *r
	}

	order := sourceOrder(len(entries))
	switch st.SortOrder {
	case models.SortDefault, models.SortAsc:
		sort.SliceStable(order, func(i, j int) bool {
			return rankOf(order[i]) < rankOf(order[j])
		})
	case models.SortDesc:
		sort.SliceStable(order, func(i, j int) bool {
			return rankOf(order[i]) > rankOf(order[j])
		})
	}

	s := emptySeries(len(entries))
	for _, idx := range order {
		appendPoint(s, labels[idx], sanitize(entries[idx].AverageRank), colors[labels[idx]])
	}
	return s, nil
}

// sourceOrder returns the identity permutation over n source entries.
func sourceOrder(n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	return order
}

func emptySeries(capacity int) *models.ChartSeries {
	return &models.ChartSeries{
		Labels: make([]string, 0, capacity),
		Values: make([]*float64, 0, capacity),
		Colors: make([]string, 0, capacity),
	}
}

func appendPoint(s *models.ChartSeries, label string, value *float64, color string) {
	s.Labels = append(s.Labels, label)
	s.Values = append(s.Values, value)
	s.Colors = append(s.Colors, color)
}

// number boxes a plain float, mapping NaN and infinities to nil.
func number(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// sanitize passes a nullable numeric field through, mapping NaN and
// infinities to nil rather than letting them leak into view-models.
func sanitize(v *float64) *float64 {
	if v == nil {
		return nil
	}
	return number(*v)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
