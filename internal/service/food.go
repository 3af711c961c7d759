package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/smartdiet-sl/smartdiet/backend/internal/models"
	"github.com/smartdiet-sl/smartdiet/backend/internal/nutrition"
)

// FoodService manages the traditional food catalog.
type FoodService struct {
	*CRUDService[models.TraditionalFood, *models.TraditionalFood]
}

func NewFoodService(db *gorm.DB) *FoodService {
	return &FoodService{
		CRUDService: NewCRUDService[models.TraditionalFood](db, "traditional food", models.NewTraditionalFood),
	}
}

// ListFoods returns foods matching filters, common foods first, then by name.
func (s *FoodService) ListFoods(ctx context.Context, filters models.FoodFilters) ([]models.TraditionalFood, error) {
	return s.List(ctx, func(q *gorm.DB) *gorm.DB {
		if filters.Category != "" {
			q = q.Where("category = ?", filters.Category)
		}
		if filters.Type != "" {
			q = q.Where("type = ?", filters.Type)
		}
		return q.Order("is_common DESC").Order("name_en ASC")
	})
}

// CandidatesForGoal loads the foods that pass the goal's numeric filter.
func (s *FoodService) CandidatesForGoal(ctx context.Context, goal string) ([]models.TraditionalFood, error) {
	foods, err := s.List(ctx, func(q *gorm.DB) *gorm.DB {
		switch goal {
		case models.GoalDiabetes:
			q = q.Where("nutrition_glycemic_index < ?", nutrition.DiabetesMaxGlycemicIndex)
		case models.GoalWeightLoss:
			q = q.Where("nutrition_calories < ?", nutrition.WeightLossMaxCalories)
		}
		return q.Order("name_en ASC")
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load plate candidates: %w", err)
	}
	return foods, nil
}
