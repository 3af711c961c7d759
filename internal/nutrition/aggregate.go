// Package nutrition holds the pure nutrition arithmetic: scaling nutrient
// records to a requested quantity, summing them, BMI classification and the
// greedy goal-based plate generator.
package nutrition

import (
	"math"

	"github.com/smartdiet-sl/smartdiet/backend/internal/models"
)

// FallbackReferenceAmount replaces a zero or missing reference serving.
const FallbackReferenceAmount = 100

// Portion is a nutrient record together with the serving it is expressed per
// and the quantity actually eaten, both in the same unit.
type Portion struct {
	Nutrition       models.Nutrition
	ReferenceAmount float64
	RequestedAmount float64
}

// Totals is the additive part of a nutrient record. Glycemic index is not
// additive and is left out.
type Totals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Iron     float64 `json:"iron"`
	Calcium  float64 `json:"calcium"`
}

// Scale returns n scaled from reference to requested.
func Scale(n models.Nutrition, reference, requested float64) Totals {
	if reference <= 0 || math.IsNaN(reference) {
		reference = FallbackReferenceAmount
	}
	factor := requested / reference
	return Totals{
		Calories: n.Calories * factor,
		Protein:  n.Protein * factor,
		Carbs:    n.Carbs * factor,
		Fat:      n.Fat * factor,
		Fiber:    n.Fiber * factor,
		Iron:     n.Iron * factor,
		Calcium:  n.Calcium * factor,
	}
}

// Aggregate sums every portion scaled to its requested amount. An empty
// input yields zero totals.
func Aggregate(portions []Portion) Totals {
	var total Totals
	for _, p := range portions {
		total = total.Add(Scale(p.Nutrition, p.ReferenceAmount, p.RequestedAmount))
	}
	return total
}

// Add returns the field-wise sum of t and o.
func (t Totals) Add(o Totals) Totals {
	return Totals{
		Calories: t.Calories + o.Calories,
		Protein:  t.Protein + o.Protein,
		Carbs:    t.Carbs + o.Carbs,
		Fat:      t.Fat + o.Fat,
		Fiber:    t.Fiber + o.Fiber,
		Iron:     t.Iron + o.Iron,
		Calcium:  t.Calcium + o.Calcium,
	}
}

// Rounded rounds calories to a whole number and everything else to one decimal.
func (t Totals) Rounded() Totals {
	return Totals{
		Calories: math.Round(t.Calories),
		Protein:  Round1(t.Protein),
		Carbs:    Round1(t.Carbs),
		Fat:      Round1(t.Fat),
		Fiber:    Round1(t.Fiber),
		Iron:     Round1(t.Iron),
		Calcium:  Round1(t.Calcium),
	}
}

// Macros narrows t to the macro snapshot stored on plates and meal logs.
func (t Totals) Macros() models.Macros {
	return models.Macros{
		Calories: t.Calories,
		Protein:  t.Protein,
		Carbs:    t.Carbs,
		Fat:      t.Fat,
		Fiber:    t.Fiber,
	}
}

// RoundMacros applies the display rounding to a macro snapshot.
func RoundMacros(m models.Macros) models.Macros {
	return models.Macros{
		Calories: math.Round(m.Calories),
		Protein:  Round1(m.Protein),
		Carbs:    Round1(m.Carbs),
		Fat:      Round1(m.Fat),
		Fiber:    Round1(m.Fiber),
	}
}

// Round1 rounds v to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
