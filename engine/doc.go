// Copyright (c) 2026 Survey Lens.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package engine normalizes heterogeneous survey analytics payloads into
chart-ready view-models.

Every function here is a pure function of its inputs: no I/O, no retained
state, no input mutation. Concurrent invocations are safe without locks.
The data flow is

	payload + question metadata
	    → Classify → Kind
	    → BuildSeries | SummarizeStats | NormalizeGrid
	    → Compare (when two cohorts exist)

# Classification

Classify resolves the payload's string discriminators exactly once into the
closed models.Kind enum; everything downstream switches over that enum. A
payload with no analytics object classifies as KindNoData, which is distinct
from KindUnknown (present but unsupported).

# Series

BuildSeries extracts ordered (label, value, color) triples:

	series, err := engine.BuildSeries(kind, payload, settings)

Colors are assigned by the original, pre-sort order of the source array and
looked up by label, so an option keeps its color whatever the sort order.
"N/A"-style sentinel buckets stay out of numeric ordering but can trail the
series for tabular display.

# Statistics

SummarizeStats emits filtered StatRow lists (mean, median, min, max,
standard deviation, NPS segments, total responses considered). Missing
values drop their row; zero does not.

# Grids

NormalizeGrid flattens both grid payload placements and both label shapes
into one GridModel with no absent array fields, deriving totals and
averages the payload omitted. When the grid variant has to be inferred
structurally, the model says so via Inferred.

# Comparison

Compare aligns two cohorts of the same kind. Labels are the first-seen
union (A's order, then B-only labels in B's order). Additive kinds treat an
absent label as zero observed; averaging kinds treat it as not computable
(nil). Deltas exist only where both sides are real numbers.

Expected failure modes (ErrNoData, ErrKindMismatch, ErrUnsupportedKind,
ErrEmptySeries, ErrMalformedField) are sentinel errors for errors.Is; the
engine never panics on malformed payloads.
*/
package engine
