package models

import "math"

// Nutrition is a nutrient record expressed per reference serving.
type Nutrition struct {
	Calories      float64 `json:"calories"`
	Protein       float64 `json:"protein"`
	Carbs         float64 `json:"carbs"`
	Fat           float64 `json:"fat"`
	Fiber         float64 `json:"fiber"`
	Iron          float64 `json:"iron"`
	Calcium       float64 `json:"calcium"`
	GlycemicIndex float64 `json:"glycemicIndex"`
}

// Validate checks that no nutrient is negative.
func (n Nutrition) Validate(field string) error {
	values := []struct {
		name  string
		value float64
	}{
		{"calories", n.Calories},
		{"protein", n.Protein},
		{"carbs", n.Carbs},
		{"fat", n.Fat},
		{"fiber", n.Fiber},
		{"iron", n.Iron},
		{"calcium", n.Calcium},
		{"glycemicIndex", n.GlycemicIndex},
	}
	for _, v := range values {
		if v.value < 0 || math.IsNaN(v.value) {
			return invalid(field+"."+v.name, "must be a non-negative number")
		}
	}
	return nil
}

// Macros is the macro-nutrient subset used for plate, meal and order snapshots.
type Macros struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
}

// Add returns the field-wise sum of m and o.
func (m Macros) Add(o Macros) Macros {
	return Macros{
		Calories: m.Calories + o.Calories,
		Protein:  m.Protein + o.Protein,
		Carbs:    m.Carbs + o.Carbs,
		Fat:      m.Fat + o.Fat,
		Fiber:    m.Fiber + o.Fiber,
	}
}

// ServingSize is the reference quantity a Nutrition record is expressed per.
type ServingSize struct {
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// Default reference serving.
const (
	DefaultServingAmount = 100
	DefaultServingUnit   = "g"
)

// DefaultServing returns the 100 g reference serving.
func DefaultServing() ServingSize {
	return ServingSize{Amount: DefaultServingAmount, Unit: DefaultServingUnit}
}

// Validate checks that the serving amount is positive.
func (s ServingSize) Validate(field string) error {
	if s.Amount <= 0 || math.IsNaN(s.Amount) {
		return invalid(field+".amount", "must be greater than zero")
	}
	return nil
}
