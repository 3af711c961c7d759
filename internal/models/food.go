package models

import (
	"strings"

	"gorm.io/datatypes"
)

// Food types.
const (
	FoodTypeIngredient = "ingredient"
	FoodTypeDish       = "dish"
	FoodTypeBeverage   = "beverage"
)

// FoodCategories lists the accepted traditional food categories.
var FoodCategories = []string{"rice", "grains", "vegetables", "fruits", "proteins", "spices", "beverages", "other"}

// TraditionalFood is a Sri Lankan ingredient, dish or beverage with
// nutrition expressed per reference serving.
type TraditionalFood struct {
	Base
	Name               LocalizedText               `gorm:"embedded;embeddedPrefix:name_" json:"name"`
	Description        LocalizedText               `gorm:"embedded;embeddedPrefix:description_" json:"description"`
	Type               string                      `gorm:"size:20;not null;index" json:"type"`
	Category           string                      `gorm:"size:20;not null;index" json:"category"`
	Nutrition          Nutrition                   `gorm:"embedded;embeddedPrefix:nutrition_" json:"nutrition"`
	ServingSize        ServingSize                 `gorm:"embedded;embeddedPrefix:serving_" json:"servingSize"`
	TraditionalUses    datatypes.JSONSlice[string] `json:"traditionalUses"`
	HealthBenefits     datatypes.JSONSlice[string] `json:"healthBenefits"`
	PreparationMethods datatypes.JSONSlice[string] `json:"preparationMethods"`
	Image              string                      `gorm:"size:512" json:"image"`
	IsCommon           bool                        `gorm:"index" json:"isCommon"`
	IsAffordable       bool                        `json:"isAffordable"`
}

// NewTraditionalFood returns a food populated with the catalog defaults.
func NewTraditionalFood() *TraditionalFood {
	return &TraditionalFood{
		ServingSize:  DefaultServing(),
		IsCommon:     true,
		IsAffordable: true,
	}
}

func (f *TraditionalFood) LocalizedName() LocalizedText        { return f.Name }
func (f *TraditionalFood) LocalizedDescription() LocalizedText { return f.Description }

// CommonAndAffordable reports whether the food is preferred for plate generation.
func (f *TraditionalFood) CommonAndAffordable() bool {
	return f.IsCommon && f.IsAffordable
}

// Validate checks enums, nutrient ranges and the reference serving.
func (f *TraditionalFood) Validate() error {
	if strings.TrimSpace(f.Name.EN) == "" {
		return invalid("name.en", "is required")
	}
	if !oneOf(f.Type, FoodTypeIngredient, FoodTypeDish, FoodTypeBeverage) {
		return invalid("type", "must be one of ingredient, dish, beverage")
	}
	if !oneOf(f.Category, FoodCategories...) {
		return invalid("category", "must be one of %s", strings.Join(FoodCategories, ", "))
	}
	if err := f.Nutrition.Validate("nutrition"); err != nil {
		return err
	}
	return f.ServingSize.Validate("servingSize")
}

// FoodFilters narrows a traditional food listing.
type FoodFilters struct {
	Category string
	Type     string
}
