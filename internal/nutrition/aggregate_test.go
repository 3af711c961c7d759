package nutrition_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/smartdiet-sl/smartdiet/backend/internal/models"
	"github.com/smartdiet-sl/smartdiet/backend/internal/nutrition"
)

var redRice = models.Nutrition{Calories: 110, Protein: 2.3, Carbs: 23, Fat: 0.8, Fiber: 1.8, Iron: 0.5, Calcium: 10, GlycemicIndex: 55}

func TestScaleProportional(t *testing.T) {
	t.Parallel()

	cases := []struct {
		reference, requested float64
	}{
		{100, 100},
		{100, 250},
		{150, 75},
		{30, 1},
	}
	for _, tc := range cases {
		got := nutrition.Scale(redRice, tc.reference, tc.requested)
		want := redRice.Calories * tc.requested / tc.reference
		assert.InDelta(t, want, got.Calories, 1e-9)
	}
}

func TestScaleZeroReferenceFallsBack(t *testing.T) {
	t.Parallel()

	got := nutrition.Scale(redRice, 0, 200)
	assert.InDelta(t, 220, got.Calories, 1e-9)
}

func TestAggregateEmpty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, nutrition.Totals{}, nutrition.Aggregate(nil))
	assert.Equal(t, nutrition.Totals{}, nutrition.Aggregate([]nutrition.Portion{}))
}

func TestAggregateLinearity(t *testing.T) {
	t.Parallel()

	twice := nutrition.Aggregate([]nutrition.Portion{
		{Nutrition: redRice, ReferenceAmount: 100, RequestedAmount: 80},
		{Nutrition: redRice, ReferenceAmount: 100, RequestedAmount: 145},
	})
	once := nutrition.Aggregate([]nutrition.Portion{
		{Nutrition: redRice, ReferenceAmount: 100, RequestedAmount: 225},
	})

	tol := 1e-9
	assert.InDelta(t, once.Calories, twice.Calories, tol)
	assert.InDelta(t, once.Protein, twice.Protein, tol)
	assert.InDelta(t, once.Carbs, twice.Carbs, tol)
	assert.InDelta(t, once.Fat, twice.Fat, tol)
	assert.InDelta(t, once.Fiber, twice.Fiber, tol)
	assert.InDelta(t, once.Iron, twice.Iron, tol)
	assert.InDelta(t, once.Calcium, twice.Calcium, tol)
}

func TestAggregateMissingFieldsContributeZero(t *testing.T) {
	t.Parallel()

	got := nutrition.Aggregate([]nutrition.Portion{
		{Nutrition: models.Nutrition{Calories: 50}, ReferenceAmount: 100, RequestedAmount: 200},
	})
	assert.Equal(t, 100.0, got.Calories)
	assert.Zero(t, got.Protein)
	assert.Zero(t, got.Fiber)
}

func TestRounded(t *testing.T) {
	t.Parallel()

	got := nutrition.Totals{Calories: 123.5, Protein: 2.345, Carbs: 10.06, Fat: 0.04}.Rounded()
	assert.Equal(t, 124.0, got.Calories)
	assert.Equal(t, 2.3, got.Protein)
	assert.Equal(t, 10.1, got.Carbs)
	assert.Equal(t, 0.0, got.Fat)
	assert.False(t, math.IsNaN(got.Fiber))
}
