// Copyright (c) 2026 Survey Lens.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import "github.com/surveylens/surveylens/models"

// Classify maps a raw payload's discriminators to one canonical Kind. Pure
// function; the decision table is checked in order, first match wins.
//
// A payload with no analytics object at all classifies as KindNoData so
// callers can tell "nothing to classify" apart from "classified but
// unsupported" (KindUnknown).
func Classify(p *models.Payload) models.Kind {
	if p == nil {
		return models.KindNoData
	}

	a := p.Analytics
	if a == nil {
		// Grid data sometimes rides at the payload level without an
		// analytics object.
		if p.GridData != nil {
			kind, _ := gridKind(p.GridData)
			return kind
		}
		return models.KindNoData
	}

	switch a.Type {
	case models.TypeSingleSelect:
		return models.KindSingleSelect
	case models.TypeMultiSelect:
		return models.KindMultiSelect
	case models.TypeNumericStats:
		// numeric_stats covers both plain numeric input and NPS; the
		// question type disambiguates.
		if p.Question.QuestionType == models.QuestionTypeNPS {
			return models.KindNPS
		}
		return models.KindNumeric
	case models.TypeSliderStats:
		return models.KindSlider
	case models.TypeStarRating:
		return models.KindStarRating
	case models.TypeRankingStats:
		return models.KindRanking
	case models.TypeGridData:
		gd := a.GridData
		if gd == nil {
			gd = p.GridData
		}
		kind, _ := gridKind(gd)
		return kind
	}

	return models.KindUnknown
}

// gridKind resolves a grid payload's variant. The second return value
// reports that the kind was inferred structurally rather than read from the
// question_type discriminator.
func gridKind(gd *models.GridData) (models.Kind, bool) {
	if gd == nil {
		return models.KindUnknown, false
	}

	switch gd.QuestionType {
	case models.QuestionTypeStarGrid:
		return models.KindStarGrid, false
	case models.QuestionTypeRadioGrid:
		return models.KindRadioGrid, false
	case models.QuestionTypeCheckboxGrid:
		return models.KindCheckboxGrid, false
	}

	// Structural fallback for unlabeled grid payloads: averages mean a star
	// grid; a count matrix with totals means radio-style rendering. Radio
	// and checkbox grids are structurally identical, so an inferred radio
	// grid is a documented guess, not a fact.
	if len(gd.CellAverages) > 0 || len(gd.RowAverages) > 0 || len(gd.ColumnAverages) > 0 {
		return models.KindStarGrid, true
	}
	if len(gd.Values) > 0 || len(gd.RowTotals) > 0 || len(gd.ColumnTotals) > 0 {
		return models.KindRadioGrid, true
	}

	return models.KindUnknown, false
}
