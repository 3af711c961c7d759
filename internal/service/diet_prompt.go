package service

import (
	"fmt"
	"math"
	"strings"

	"github.com/smartdiet-sl/smartdiet/backend/internal/models"
	"github.com/smartdiet-sl/smartdiet/backend/internal/nutrition"
)

const notSpecified = "Not specified"

// DefaultActivityLevel is assumed when the profile leaves it empty.
const DefaultActivityLevel = "moderate"

// ValidateHealthProfile checks that weight, height and age are present and positive.
func ValidateHealthProfile(p models.HealthProfile) error {
	if p.Weight <= 0 || math.IsNaN(p.Weight) {
		return NewValidationError("weight", "weight is required and must be positive")
	}
	if p.Height <= 0 || math.IsNaN(p.Height) {
		return NewValidationError("height", "height is required and must be positive")
	}
	if p.Age <= 0 {
		return NewValidationError("age", "age is required and must be positive")
	}
	return nil
}

// BuildDietPrompt renders the 7-day diet plan instruction for p. It does
// not call any model.
func BuildDietPrompt(p models.HealthProfile) (string, error) {
	if err := ValidateHealthProfile(p); err != nil {
		return "", err
	}

	bmi := nutrition.BMI(p.Weight, p.Height)
	category := nutrition.ClassifyBMI(bmi)
	bodyType := orNotSpecified(p.BodyType)
	activity := strings.TrimSpace(p.ActivityLevel)
	if activity == "" {
		activity = DefaultActivityLevel
	}

	var conditions []string
	if bp := strings.TrimSpace(p.BloodPressure); bp != "" {
		conditions = append(conditions, fmt.Sprintf("   - For Blood Pressure (%s): Include foods that help manage BP (low sodium, potassium-rich foods like gotukola, murunga, kankun, etc.)", bp))
	}
	if sugar := strings.TrimSpace(p.Sugar); sugar != "" {
		conditions = append(conditions, fmt.Sprintf("   - For Blood Sugar (%s): Include low glycemic index foods, avoid high sugar, use whole grains like kurakkan, brown rice, avoid refined sugars", sugar))
	}

	var b strings.Builder
	b.WriteString("You are an expert Sri Lankan nutritionist and dietitian with specialized knowledge in managing medical conditions through diet.\n\n")

	b.WriteString("USER PROFILE:\n")
	fmt.Fprintf(&b, "- Age: %d years\n", p.Age)
	fmt.Fprintf(&b, "- Weight: %s kg\n", formatNumber(p.Weight))
	fmt.Fprintf(&b, "- Height: %s cm\n", formatNumber(p.Height))
	fmt.Fprintf(&b, "- BMI: %.1f (%s)\n", bmi, category)
	fmt.Fprintf(&b, "- Body Type: %s\n", bodyType)
	fmt.Fprintf(&b, "- Activity Level: %s\n\n", activity)

	b.WriteString("MEDICAL CONDITIONS:\n")
	fmt.Fprintf(&b, "- Blood Pressure: %s\n", orNotSpecified(p.BloodPressure))
	fmt.Fprintf(&b, "- Blood Sugar Level / Diabetes: %s\n\n", orNotSpecified(p.Sugar))

	b.WriteString("CRITICAL REQUIREMENTS:\n")
	b.WriteString("1. Generate a personalized 7-day diet plan using ONLY common, affordable Sri Lankan foods and ingredients.\n")
	b.WriteString("2. The plan MUST be medically appropriate for their conditions.\n")
	for _, line := range conditions {
		b.WriteString(line)
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "3. Consider their BMI (%.1f - %s) and body type (%s).\n", bmi, category, bodyType)
	b.WriteString("4. Use traditional Sri Lankan meals: rice, curry, sambol, mallum, etc.\n")
	b.WriteString("5. Include portion sizes appropriate for their needs.\n")
	b.WriteString("6. Provide specific meal recommendations with Sri Lankan dish names.\n\n")

	b.WriteString("IMPORTANT MEDICAL CONSIDERATIONS:\n")
	b.WriteString("- If blood pressure is high: Low sodium, include potassium-rich vegetables (gotukola, murunga, kankun)\n")
	b.WriteString("- If blood sugar is high or diabetes: Low glycemic index foods, avoid refined sugars, use natural sweeteners sparingly, include whole grains\n")
	b.WriteString("- Always prioritize whole, unprocessed Sri Lankan foods\n")
	b.WriteString("- Include water intake recommendations (2-3 liters per day)\n")
	b.WriteString("- Add simple lifestyle tips (walking, portion control, meal timing)\n\n")

	b.WriteString("FORMAT:\n")
	b.WriteString("For each of the 7 days, provide:\n")
	b.WriteString("- Day X (e.g., Day 1, Day 2, etc.)\n")
	b.WriteString("- Breakfast: [Meal name and description with portion size]\n")
	b.WriteString("- Mid-morning Snack: [Healthy snack option]\n")
	b.WriteString("- Lunch: [Meal name and description with portion size]\n")
	b.WriteString("- Afternoon Snack: [Healthy snack option]\n")
	b.WriteString("- Dinner: [Meal name and description with portion size]\n")
	b.WriteString("- Water Intake: [Recommended amount]\n")
	b.WriteString("- Notes: [Any specific considerations for that day]\n\n")

	b.WriteString("At the end, include:\n")
	b.WriteString("- General Lifestyle Tips\n")
	b.WriteString("- Important Reminders (consult healthcare professional if needed)\n\n")
	b.WriteString("Format output as clear, readable text with day headings and organized sections. Use Sri Lankan food names and measurements.\n")

	return b.String(), nil
}

func orNotSpecified(v string) string {
	if strings.TrimSpace(v) == "" {
		return notSpecified
	}
	return strings.TrimSpace(v)
}

func formatNumber(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%g", v)
}
