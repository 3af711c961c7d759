package nutrition

import "math"

// BMI categories.
const (
	BMIUnderweight = "Underweight"
	BMINormal      = "Normal"
	BMIOverweight  = "Overweight"
	BMIObese       = "Obese"
)

// BMI returns weight / height² with height given in centimetres, rounded to
// one decimal place.
func BMI(weightKg, heightCm float64) float64 {
	if heightCm <= 0 {
		return 0
	}
	m := heightCm / 100
	return Round1(weightKg / (m * m))
}

// ClassifyBMI maps a BMI value to its category.
func ClassifyBMI(bmi float64) string {
	switch {
	case math.IsNaN(bmi):
		return BMINormal
	case bmi < 18.5:
		return BMIUnderweight
	case bmi < 25:
		return BMINormal
	case bmi < 30:
		return BMIOverweight
	default:
		return BMIObese
	}
}
