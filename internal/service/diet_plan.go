package service

import (
	"context"

	"gorm.io/gorm"

	"github.com/smartdiet-sl/smartdiet/backend/internal/models"
)

// DietPlanService manages curated diet plans.
type DietPlanService struct {
	*CRUDService[models.DietPlan, *models.DietPlan]
}

func NewDietPlanService(db *gorm.DB) *DietPlanService {
	return &DietPlanService{
		CRUDService: NewCRUDService[models.DietPlan](db, "diet plan", models.NewDietPlan),
	}
}

// ListActive returns active plans, optionally in one category, newest first.
func (s *DietPlanService) ListActive(ctx context.Context, category string) ([]models.DietPlan, error) {
	return s.List(ctx, func(q *gorm.DB) *gorm.DB {
		q = q.Where("is_active = ?", true)
		if category != "" {
			q = q.Where("category = ?", category)
		}
		return q.Order("created_at DESC")
	})
}
