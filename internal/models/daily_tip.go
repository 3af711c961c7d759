package models

import (
	"strings"
	"time"

	"gorm.io/datatypes"
)

// TipCategories lists the accepted daily tip categories.
var TipCategories = []string{
	GoalWeightLoss, GoalDiabetes, GoalGeneralHealth,
	"portion-control", "cooking-tip", "substitution", "hydration",
}

// DailyTip is a short localized nutrition tip.
type DailyTip struct {
	Base
	Tip               LocalizedText               `gorm:"embedded;embeddedPrefix:tip_" json:"tip"`
	Category          string                      `gorm:"size:20;not null;index" json:"category"`
	CulturalRelevance string                      `gorm:"type:text" json:"culturalRelevance"`
	RelatedFoods      datatypes.JSONSlice[string] `json:"relatedFoods"`
	Difficulty        string                      `gorm:"size:10" json:"difficulty"`
	Date              time.Time                   `gorm:"index" json:"date"`
	IsActive          bool                        `gorm:"index" json:"isActive"`
}

// NewDailyTip returns an active tip dated now.
func NewDailyTip() *DailyTip {
	return &DailyTip{Difficulty: "easy", Date: time.Now(), IsActive: true}
}

func (t *DailyTip) LocalizedName() LocalizedText        { return t.Tip }
func (t *DailyTip) LocalizedDescription() LocalizedText { return LocalizedText{} }

// Validate checks the text and enums.
func (t *DailyTip) Validate() error {
	if strings.TrimSpace(t.Tip.EN) == "" {
		return invalid("tip.en", "is required")
	}
	if !oneOf(t.Category, TipCategories...) {
		return invalid("category", "must be one of %s", strings.Join(TipCategories, ", "))
	}
	if !oneOf(t.Difficulty, "easy", "medium", "hard") {
		return invalid("difficulty", "must be one of easy, medium, hard")
	}
	return nil
}
