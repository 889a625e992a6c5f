// Copyright (c) 2026 Survey Lens.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import (
	"testing"

	"github.com/surveylens/surveylens/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		payload *models.Payload
		want    models.Kind
	}{
		{
			name:    "nil payload",
			payload: nil,
			want:    models.KindNoData,
		},
		{
			name:    "no analytics object",
			payload: &models.Payload{Question: models.QuestionMeta{QuestionType: "radio"}},
			want:    models.KindNoData,
		},
		{
			name: "single select",
			payload: &models.Payload{
				Analytics: &models.Analytics{Type: models.TypeSingleSelect},
			},
			want: models.KindSingleSelect,
		},
		{
			name: "multi select",
			payload: &models.Payload{
				Analytics: &models.Analytics{Type: models.TypeMultiSelect},
			},
			want: models.KindMultiSelect,
		},
		{
			name: "numeric stats with nps question type",
			payload: &models.Payload{
				Question:  models.QuestionMeta{QuestionType: models.QuestionTypeNPS},
				Analytics: &models.Analytics{Type: models.TypeNumericStats},
			},
			want: models.KindNPS,
		},
		{
			name: "numeric stats with plain question type",
			payload: &models.Payload{
				Question:  models.QuestionMeta{QuestionType: "number-input"},
				Analytics: &models.Analytics{Type: models.TypeNumericStats},
			},
			want: models.KindNumeric,
		},
		{
			name: "slider",
			payload: &models.Payload{
				Analytics: &models.Analytics{Type: models.TypeSliderStats},
			},
			want: models.KindSlider,
		},
		{
			name: "star rating",
			payload: &models.Payload{
				Analytics: &models.Analytics{Type: models.TypeStarRating},
			},
			want: models.KindStarRating,
		},
		{
			name: "ranking",
			payload: &models.Payload{
				Analytics: &models.Analytics{Type: models.TypeRankingStats},
			},
			want: models.KindRanking,
		},
		{
			name: "star grid by discriminator",
			payload: &models.Payload{
				Analytics: &models.Analytics{
					Type:     models.TypeGridData,
					GridData: &models.GridData{QuestionType: models.QuestionTypeStarGrid},
				},
			},
			want: models.KindStarGrid,
		},
		{
			name: "radio grid by discriminator",
			payload: &models.Payload{
				Analytics: &models.Analytics{
					Type:     models.TypeGridData,
					GridData: &models.GridData{QuestionType: models.QuestionTypeRadioGrid},
				},
			},
			want: models.KindRadioGrid,
		},
		{
			name: "checkbox grid by discriminator",
			payload: &models.Payload{
				Analytics: &models.Analytics{
					Type:     models.TypeGridData,
					GridData: &models.GridData{QuestionType: models.QuestionTypeCheckboxGrid},
				},
			},
			want: models.KindCheckboxGrid,
		},
		{
			name: "grid data at payload level without analytics",
			payload: &models.Payload{
				GridData: &models.GridData{QuestionType: models.QuestionTypeRadioGrid},
			},
			want: models.KindRadioGrid,
		},
		{
			name: "grid structural fallback to star grid",
			payload: &models.Payload{
				Analytics: &models.Analytics{
					Type: models.TypeGridData,
					GridData: &models.GridData{
						CellAverages: [][]float64{{4.2, 3.1}},
					},
				},
			},
			want: models.KindStarGrid,
		},
		{
			name: "grid structural fallback to radio grid",
			payload: &models.Payload{
				Analytics: &models.Analytics{
					Type: models.TypeGridData,
					GridData: &models.GridData{
						Values:    [][]float64{{1, 2}},
						RowTotals: []float64{3},
					},
				},
			},
			want: models.KindRadioGrid,
		},
		{
			name: "grid with nothing recognizable",
			payload: &models.Payload{
				Analytics: &models.Analytics{
					Type:     models.TypeGridData,
					GridData: &models.GridData{},
				},
			},
			want: models.KindUnknown,
		},
		{
			name: "unrecognized type",
			payload: &models.Payload{
				Analytics: &models.Analytics{Type: "word_cloud"},
			},
			want: models.KindUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.payload); got != tt.want {
				t.Errorf("Classify() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGridKind_InferredFlag(t *testing.T) {
	explicit := &models.GridData{QuestionType: models.QuestionTypeRadioGrid}
	if _, inferred := gridKind(explicit); inferred {
		t.Error("explicit discriminator should not be flagged as inferred")
	}

	structural := &models.GridData{
		Values:       [][]float64{{1, 2}},
		ColumnTotals: []float64{1, 2},
	}
	kind, inferred := gridKind(structural)
	if kind != models.KindRadioGrid {
		t.Errorf("expected radio grid fallback, got %q", kind)
	}
	if !inferred {
		t.Error("structural fallback must be flagged as inferred")
	}
}
