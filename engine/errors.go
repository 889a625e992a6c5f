// Copyright (c) 2026 Survey Lens.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import "errors"

// Expected no-result outcomes. Malformed or partial analytics payloads are a
// normal operating condition, so these are sentinel values compared with
// errors.Is, never panics.
var (
	// ErrNoData: the analytics object is missing or empty on one or both
	// cohorts.
	ErrNoData = errors.New("no analytics data")

	// ErrKindMismatch: the two cohorts classify to different kinds.
	ErrKindMismatch = errors.New("cohorts classify to different analytics kinds")

	// ErrUnsupportedKind: the payload classified as Unknown.
	ErrUnsupportedKind = errors.New("unsupported analytics kind")

	// ErrEmptySeries: source arrays are present but zero-length, on both
	// sides for comparisons.
	ErrEmptySeries = errors.New("empty series")

	// ErrMalformedField: a field expected to be numeric is not computable.
	ErrMalformedField = errors.New("malformed analytics field")
)

// The only two user-visible failure messages surfaced upward.
const (
	MsgComparisonUnavailable = "Comparison not available for this question type"
	MsgNoComparableData      = "No comparable data available for these groups or question"
)
