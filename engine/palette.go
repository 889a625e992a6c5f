// Copyright (c) 2026 Survey Lens.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

// Default color palette for chart series, cycled past ten entries.
var defaultPalette = []string{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#06B6D4", "#EC4899", "#84CC16", "#F97316", "#6366F1",
}

// Fixed segment colors for NPS series: promoters, passives, detractors,
// score.
var npsPalette = []string{"#10B981", "#F59E0B", "#EF4444", "#4F46E5"}

// colorAt resolves the color for a pre-sort index: custom colors override
// the default palette by original-order position.
func colorAt(i int, custom []string) string {
	if i < len(custom) && custom[i] != "" {
		return custom[i]
	}
	return defaultPalette[i%len(defaultPalette)]
}

// colorMap assigns colors by the original, pre-sort order of the source
// array, keyed by label text. Emitting sorted series looks colors up here,
// so an option keeps its color across default, desc, and asc ordering.
func colorMap(labels []string, custom []string) map[string]string {
	m := make(map[string]string, len(labels))
	for i, label := range labels {
		if _, ok := m[label]; ok {
			continue
		}
		m[label] = colorAt(i, custom)
	}
	return m
}
