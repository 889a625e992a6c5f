package handlers

import (
	"net/http"
	"testing"

	"github.com/surveylens/surveylens/models"
	"github.com/surveylens/surveylens/testutil"
)

func TestCompare_AlignedSeries(t *testing.T) {
	h := NewAnalyticsHandler(testutil.TestConfig())

	req := models.CompareRequest{
		Question: models.QuestionMeta{QuestionType: "radio"},
		CohortA: models.Cohort{
			Analytics: &models.Analytics{
				Type: models.TypeSingleSelect,
				OptionsDistribution: []models.OptionBucket{
					{Option: "Yes", Count: 3, Percentage: fp(75)},
					{Option: "No", Count: 1, Percentage: fp(25)},
				},
			},
		},
		CohortB: models.Cohort{
			Analytics: &models.Analytics{
				Type: models.TypeSingleSelect,
				OptionsDistribution: []models.OptionBucket{
					{Option: "No", Count: 2, Percentage: fp(50)},
					{Option: "Maybe", Count: 2, Percentage: fp(50)},
				},
			},
		},
		Settings: &models.Settings{ShowPercentages: true},
	}

	rec := testutil.DoJSON(t, h.Compare, "POST", "/analytics/compare", req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var cmp models.Comparison
	testutil.DecodeJSON(t, rec, &cmp)

	if cmp.Kind != models.KindSingleSelect {
		t.Errorf("kind = %s", cmp.Kind)
	}
	if cmp.Series == nil {
		t.Fatal("expected an aligned series")
	}

	wantLabels := []string{"Yes", "No", "Maybe"}
	wantA := []float64{75, 25, 0}
	wantB := []float64{0, 50, 50}
	wantD := []float64{75, -25, -50}
	for i := range wantLabels {
		if cmp.Series.Labels[i] != wantLabels[i] {
			t.Errorf("labels[%d] = %q, want %q", i, cmp.Series.Labels[i], wantLabels[i])
		}
		if *cmp.Series.ValuesA[i] != wantA[i] || *cmp.Series.ValuesB[i] != wantB[i] {
			t.Errorf("values[%d] = %v/%v, want %v/%v",
				i, *cmp.Series.ValuesA[i], *cmp.Series.ValuesB[i], wantA[i], wantB[i])
		}
		if *cmp.Series.Deltas[i] != wantD[i] {
			t.Errorf("deltas[%d] = %v, want %v", i, *cmp.Series.Deltas[i], wantD[i])
		}
	}
}

func TestCompare_KindMismatchMessage(t *testing.T) {
	h := NewAnalyticsHandler(testutil.TestConfig())

	req := models.CompareRequest{
		Question: models.QuestionMeta{QuestionType: "radio"},
		CohortA: models.Cohort{
			Analytics: &models.Analytics{
				Type: models.TypeSingleSelect,
				OptionsDistribution: []models.OptionBucket{
					{Option: "Yes", Count: 1},
				},
			},
		},
		CohortB: models.Cohort{
			Analytics: &models.Analytics{
				Type: models.TypeRankingStats,
				AverageRanks: []models.RankEntry{
					{Item: "Alpha", AverageRank: fp(1.0), Count: 2},
				},
			},
		},
	}

	rec := testutil.DoJSON(t, h.Compare, "POST", "/analytics/compare", req)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}

	var body models.ErrorResponse
	testutil.DecodeJSON(t, rec, &body)
	if body.Message != "Comparison not available for this question type" {
		t.Errorf("message = %q", body.Message)
	}
}

func TestCompare_NoDataMessage(t *testing.T) {
	h := NewAnalyticsHandler(testutil.TestConfig())

	req := models.CompareRequest{
		Question: models.QuestionMeta{QuestionType: "radio"},
		CohortA: models.Cohort{
			Analytics: &models.Analytics{
				Type: models.TypeSingleSelect,
				OptionsDistribution: []models.OptionBucket{
					{Option: "Yes", Count: 1},
				},
			},
		},
		// CohortB has no analytics at all
	}

	rec := testutil.DoJSON(t, h.Compare, "POST", "/analytics/compare", req)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}

	var body models.ErrorResponse
	testutil.DecodeJSON(t, rec, &body)
	if body.Message != "No comparable data available for these groups or question" {
		t.Errorf("message = %q", body.Message)
	}
}

func TestCompare_InvalidBody(t *testing.T) {
	h := NewAnalyticsHandler(testutil.TestConfig())

	rec := testutil.DoJSON(t, h.Compare, "POST", "/analytics/compare", []int{1, 2})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
