package models

import (
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Plate goals.
const (
	GoalWeightLoss    = "weight-loss"
	GoalWeightGain    = "weight-gain"
	GoalDiabetes      = "diabetes"
	GoalGeneralHealth = "general-health"
)

// Goals lists every accepted plate goal.
var Goals = []string{GoalWeightLoss, GoalWeightGain, GoalDiabetes, GoalGeneralHealth}

// IsValidGoal reports whether goal is a known plate goal.
func IsValidGoal(goal string) bool {
	return oneOf(goal, Goals...)
}

// PlateItem is a food placed on a plate with its portion and a nutrition
// snapshot computed for that portion.
type PlateItem struct {
	FoodID    string `json:"foodId"`
	Name      string `json:"name"`
	Portion   string `json:"portion"`
	Nutrition Macros `json:"nutrition"`
}

// Substitution suggests a healthier local swap.
type Substitution struct {
	Original   string `json:"original"`
	Substitute string `json:"substitute"`
	Reason     string `json:"reason"`
}

// SriLankanPlate is a generated or curated set of foods for a goal.
type SriLankanPlate struct {
	Base
	Name               LocalizedText                     `gorm:"embedded;embeddedPrefix:name_" json:"name"`
	Description        LocalizedText                     `gorm:"embedded;embeddedPrefix:description_" json:"description"`
	Goal               string                            `gorm:"size:20;not null;index" json:"goal"`
	Items              datatypes.JSONSlice[PlateItem]    `json:"items"`
	TotalNutrition     Macros                            `gorm:"embedded;embeddedPrefix:total_" json:"totalNutrition"`
	Substitutions      datatypes.JSONSlice[Substitution] `json:"substitutions"`
	IsBusyLifeFriendly bool                              `gorm:"index" json:"isBusyLifeFriendly"`
	PrepTime           int                               `json:"prepTime"`
	Image              string                            `gorm:"size:512" json:"image"`
}

func (p *SriLankanPlate) LocalizedName() LocalizedText        { return p.Name }
func (p *SriLankanPlate) LocalizedDescription() LocalizedText { return p.Description }

// RecalculateTotals sets TotalNutrition to the sum of the item snapshots.
func (p *SriLankanPlate) RecalculateTotals() {
	var total Macros
	for _, item := range p.Items {
		total = total.Add(item.Nutrition)
	}
	p.TotalNutrition = total
}

// Validate checks the goal and the prep time.
func (p *SriLankanPlate) Validate() error {
	if strings.TrimSpace(p.Name.EN) == "" {
		return invalid("name.en", "is required")
	}
	if !IsValidGoal(p.Goal) {
		return invalid("goal", "must be one of %s", strings.Join(Goals, ", "))
	}
	if p.PrepTime < 0 {
		return invalid("prepTime", "must not be negative")
	}
	return nil
}

// BeforeSave keeps the totals consistent with the items on every write.
func (p *SriLankanPlate) BeforeSave(tx *gorm.DB) error {
	p.RecalculateTotals()
	return nil
}

// PlateFilters narrows a plate listing.
type PlateFilters struct {
	Goal     string
	BusyLife *bool
}
