package service

import (
	"context"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/smartdiet-sl/smartdiet/backend/internal/models"
	"github.com/smartdiet-sl/smartdiet/backend/internal/nutrition"
)

// PlateConfig tunes plate generation and selection.
type PlateConfig struct {
	DefaultCalories float64
	Options         nutrition.PlateOptions
}

// PlateService serves goal-based Sri Lankan plates, generating and storing
// one the first time a goal is requested.
type PlateService struct {
	*CRUDService[models.SriLankanPlate, *models.SriLankanPlate]
	foods  *FoodService
	picker nutrition.Picker
	cfg    PlateConfig
}

func NewPlateService(db *gorm.DB, foods *FoodService, picker nutrition.Picker, cfg PlateConfig) *PlateService {
	if picker == nil {
		picker = nutrition.NewUniformPicker(nil)
	}
	if cfg.DefaultCalories <= 0 {
		cfg.DefaultCalories = 2000
	}
	return &PlateService{
		CRUDService: NewCRUDService[models.SriLankanPlate](db, "plate", nil),
		foods:       foods,
		picker:      picker,
		cfg:         cfg,
	}
}

// MaxPlateCalories bounds the calorie target of a generated plate.
const MaxPlateCalories = 10000

// ValidatePlateCalories accepts zero (use the default) or a finite target
// up to MaxPlateCalories.
func ValidatePlateCalories(calories float64) error {
	if math.IsNaN(calories) || math.IsInf(calories, 0) || calories < 0 || calories > MaxPlateCalories {
		return NewValidationError("calories", fmt.Sprintf("must be a number between 1 and %d", MaxPlateCalories))
	}
	return nil
}

// DefaultCalories is the target used when a request names none.
func (s *PlateService) DefaultCalories() float64 {
	return s.cfg.DefaultCalories
}

// ListPlates returns plates matching filters, newest first.
func (s *PlateService) ListPlates(ctx context.Context, filters models.PlateFilters) ([]models.SriLankanPlate, error) {
	return s.List(ctx, func(q *gorm.DB) *gorm.DB {
		if filters.Goal != "" {
			q = q.Where("goal = ?", filters.Goal)
		}
		if filters.BusyLife != nil {
			q = q.Where("is_busy_life_friendly = ?", *filters.BusyLife)
		}
		return q.Order("created_at DESC")
	})
}

// Generate returns a stored plate for goal. When none exists one is
// generated for calories and persisted first. Concurrent first requests may
// each persist a plate; selection picks among all of them.
func (s *PlateService) Generate(ctx context.Context, goal string, calories float64) (*models.SriLankanPlate, error) {
	if !models.IsValidGoal(goal) {
		return nil, NewValidationError("goal", "must be one of weight-loss, weight-gain, diabetes, general-health")
	}
	if err := ValidatePlateCalories(calories); err != nil {
		return nil, err
	}
	if calories == 0 {
		calories = s.cfg.DefaultCalories
	}

	plates, err := s.ListPlates(ctx, models.PlateFilters{Goal: goal})
	if err != nil {
		return nil, err
	}

	if len(plates) == 0 {
		foods, err := s.foods.CandidatesForGoal(ctx, goal)
		if err != nil {
			return nil, err
		}
		plate := nutrition.GeneratePlate(goal, calories, foods, s.cfg.Options)
		if len(plate.Items) == 0 {
			// Nothing to store until the catalog has foods for this goal.
			return plate, nil
		}
		if err := s.Insert(ctx, plate); err != nil {
			return nil, fmt.Errorf("failed to save generated plate: %w", err)
		}
		logrus.WithFields(logrus.Fields{
			"goal":     goal,
			"items":    len(plate.Items),
			"calories": plate.TotalNutrition.Calories,
		}).Info("generated plate")
		return plate, nil
	}

	return &plates[s.picker.Pick(len(plates))], nil
}
