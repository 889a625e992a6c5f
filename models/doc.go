// Copyright (c) 2026 Survey Lens.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines payload contracts, settings, and view-model types.

# Payload Contracts

Types for the raw analytics payloads the engine consumes:

  - Payload: question metadata plus the loosely-typed analytics record
  - Analytics: type discriminator and the union of type-specific fields
  - OptionBucket: choice distribution entry (option, count, percentage)
  - ValueBucket: numeric distribution entry; FlexValue accepts numbers or
    "N/A"-style token strings
  - NPSSegments: promoters/passives/detractors counts
  - RankEntry: ranking item with average rank
  - GridData: matrix payload; GridLabel accepts strings or {text} objects

# View-Models

Render-ready output consumed by the presentation layer:

  - ChartSeries: aligned labels/values/colors
  - StatRow: one scalar statistic with precision and display string
  - GridModel: normalized matrix with no absent array fields
  - ComparisonResult, GridComparison, Comparison: two-cohort alignment

# Settings

Settings is an immutable value type with fully-enumerated defaults
(DefaultSettings). Partial JSON settings decode on top of the defaults, so
an omitted flag keeps its documented default instead of becoming false.

# Kinds

Kind is the closed classification enum:

	KindSingleSelect, KindMultiSelect, KindNumeric, KindNPS, KindSlider,
	KindStarRating, KindRanking, KindStarGrid, KindRadioGrid,
	KindCheckboxGrid, KindUnknown, KindNoData

KindNoData ("nothing to classify") is distinct from KindUnknown
("classified but unsupported").
*/
package models
