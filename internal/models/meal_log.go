package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Meal types.
var MealTypes = []string{"breakfast", "lunch", "dinner", "snack"}

// IsValidMealType reports whether mealType is a known meal slot.
func IsValidMealType(mealType string) bool {
	return oneOf(mealType, MealTypes...)
}

// RecognizedItem is a food suggested by image recognition on the client.
type RecognizedItem struct {
	Name             string  `json:"name"`
	Confidence       float64 `json:"confidence"`
	EstimatedPortion string  `json:"estimatedPortion"`
}

// ManualItem is a food the user entered by hand.
type ManualItem struct {
	FoodID   string  `json:"foodId,omitempty"`
	Name     string  `json:"name"`
	Portion  string  `json:"portion"`
	Calories float64 `json:"calories"`
}

// MealLog is an append-only record of one meal eaten by a user.
type MealLog struct {
	Base
	UserID          uuid.UUID                           `gorm:"type:varchar(36);not null;index" json:"userId"`
	MealType        string                              `gorm:"size:10;not null;index" json:"mealType"`
	Image           string                              `gorm:"size:512" json:"image,omitempty"`
	RecognizedItems datatypes.JSONSlice[RecognizedItem] `json:"recognizedItems"`
	ManualItems     datatypes.JSONSlice[ManualItem]     `json:"manualItems"`
	TotalNutrition  Macros                              `gorm:"embedded;embeddedPrefix:total_" json:"totalNutrition"`
	Notes           string                              `gorm:"type:text" json:"notes,omitempty"`
	Date            time.Time                           `gorm:"index" json:"date"`
}

// Validate checks the meal type and recognition confidences.
func (m *MealLog) Validate() error {
	if !IsValidMealType(m.MealType) {
		return invalid("mealType", "must be one of breakfast, lunch, dinner, snack")
	}
	for _, item := range m.RecognizedItems {
		if item.Confidence < 0 || item.Confidence > 1 {
			return invalid("recognizedItems.confidence", "must be between 0 and 1")
		}
	}
	for _, item := range m.ManualItems {
		if item.Calories < 0 {
			return invalid("manualItems.calories", "must not be negative")
		}
	}
	return nil
}

// MealLogFilters narrows a user's meal log listing.
type MealLogFilters struct {
	MealType string
	From     *time.Time
	To       *time.Time
}
