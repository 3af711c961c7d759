package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DietPlanCategories lists the accepted curated diet plan categories.
var DietPlanCategories = []string{GoalWeightLoss, GoalWeightGain, GoalDiabetes, GoalGeneralHealth, "heart-health"}

// PlanMeal describes one meal slot of a curated plan.
type PlanMeal struct {
	MealType    string `json:"mealType"`
	Description string `json:"description"`
}

// DietPlan is a curated diet plan published by an administrator.
type DietPlan struct {
	Base
	Name          LocalizedText                 `gorm:"embedded;embeddedPrefix:name_" json:"name"`
	Description   LocalizedText                 `gorm:"embedded;embeddedPrefix:description_" json:"description"`
	Category      string                        `gorm:"size:20;not null;index" json:"category"`
	DurationDays  int                           `json:"durationDays"`
	DailyCalories int                           `json:"dailyCalories"`
	Meals         datatypes.JSONSlice[PlanMeal] `json:"meals"`
	Image         string                        `gorm:"size:512" json:"image"`
	IsActive      bool                          `gorm:"index" json:"isActive"`
}

// NewDietPlan returns an active, empty plan.
func NewDietPlan() *DietPlan {
	return &DietPlan{IsActive: true}
}

func (p *DietPlan) LocalizedName() LocalizedText        { return p.Name }
func (p *DietPlan) LocalizedDescription() LocalizedText { return p.Description }

// Validate checks the category and the numeric fields.
func (p *DietPlan) Validate() error {
	if strings.TrimSpace(p.Name.EN) == "" {
		return invalid("name.en", "is required")
	}
	if !oneOf(p.Category, DietPlanCategories...) {
		return invalid("category", "must be one of %s", strings.Join(DietPlanCategories, ", "))
	}
	if p.DurationDays < 0 {
		return invalid("durationDays", "must not be negative")
	}
	if p.DailyCalories < 0 {
		return invalid("dailyCalories", "must not be negative")
	}
	return nil
}

// HealthProfile is the input a personal diet plan is generated from.
type HealthProfile struct {
	Weight        float64 `json:"weight"`
	Height        float64 `json:"height"`
	Age           int     `json:"age"`
	BloodPressure string  `json:"bloodPressure,omitempty"`
	Sugar         string  `json:"sugar,omitempty"`
	BodyType      string  `json:"bodyType,omitempty"`
	ActivityLevel string  `json:"activityLevel,omitempty"`
}

// TokenUsage records what a completion cost.
type TokenUsage struct {
	PromptTokens     int `json:"promptTokens"`
	CompletionTokens int `json:"completionTokens"`
	TotalTokens      int `json:"totalTokens"`
}

// PlanMetadata describes how a plan was generated.
type PlanMetadata struct {
	Model string     `json:"model"`
	Usage TokenUsage `gorm:"embedded;embeddedPrefix:usage_" json:"usage"`
}

// PersonalDietPlan is an LLM-generated plan owned by a user. Records are
// immutable once created.
type PersonalDietPlan struct {
	Base
	UserID   uuid.UUID     `gorm:"type:varchar(36);not null;index" json:"userId"`
	Input    HealthProfile `gorm:"embedded;embeddedPrefix:input_" json:"input"`
	PlanText string        `gorm:"type:text;not null" json:"planText"`
	Metadata PlanMetadata  `gorm:"embedded;embeddedPrefix:metadata_" json:"metadata"`
}
