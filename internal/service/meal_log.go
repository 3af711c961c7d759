package service

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/smartdiet-sl/smartdiet/backend/internal/models"
	"github.com/smartdiet-sl/smartdiet/backend/internal/nutrition"
)

// DefaultStatsDays is the stats window when none is requested.
const DefaultStatsDays = 7

// MaxStatsDays bounds the stats window.
const MaxStatsDays = 90

// MealLogInput is a meal as submitted by the client.
type MealLogInput struct {
	MealType        string
	RecognizedItems []models.RecognizedItem
	ManualItems     []models.ManualItem
	Notes           string
	Date            *time.Time
	Image           string
}

// DailyMealTotals is one day of meal stats.
type DailyMealTotals struct {
	Date   string        `json:"date"`
	Meals  int           `json:"meals"`
	Totals models.Macros `json:"totals"`
}

// MealStats summarizes a user's meal logs over a window of days.
type MealStats struct {
	Days    int               `json:"days"`
	Meals   int               `json:"meals"`
	Daily   []DailyMealTotals `json:"daily"`
	Average models.Macros     `json:"average"`
}

// MealLogService records meals and reports intake.
type MealLogService struct {
	*CRUDService[models.MealLog, *models.MealLog]
	foods *FoodService
	now   func() time.Time
}

func NewMealLogService(db *gorm.DB, foods *FoodService) *MealLogService {
	return &MealLogService{
		CRUDService: NewCRUDService[models.MealLog](db, "meal log", nil),
		foods:       foods,
		now:         time.Now,
	}
}

// LogMeal stores a meal for userID with totals computed from the food catalog.
func (s *MealLogService) LogMeal(ctx context.Context, userID uuid.UUID, in MealLogInput) (*models.MealLog, error) {
	log := &models.MealLog{
		UserID:          userID,
		MealType:        strings.ToLower(strings.TrimSpace(in.MealType)),
		Image:           in.Image,
		RecognizedItems: in.RecognizedItems,
		ManualItems:     in.ManualItems,
		Notes:           strings.TrimSpace(in.Notes),
		Date:            s.now(),
	}
	if in.Date != nil {
		log.Date = *in.Date
	}
	if err := log.Validate(); err != nil {
		return nil, err
	}

	totals, err := s.mealTotals(ctx, log)
	if err != nil {
		return nil, err
	}
	log.TotalNutrition = nutrition.RoundMacros(totals)

	if err := s.Insert(ctx, log); err != nil {
		return nil, err
	}
	return log, nil
}

func (s *MealLogService) mealTotals(ctx context.Context, log *models.MealLog) (models.Macros, error) {
	var total models.Macros
	for _, item := range log.ManualItems {
		macros, ok, err := s.manualItemMacros(ctx, item)
		if err != nil {
			return models.Macros{}, err
		}
		if !ok {
			macros = models.Macros{Calories: item.Calories}
		}
		total = total.Add(macros)
	}
	for _, item := range log.RecognizedItems {
		food, err := s.foodByName(ctx, item.Name)
		if err != nil {
			return models.Macros{}, err
		}
		if food == nil {
			continue
		}
		amount, ok := gramsOf(food, item.EstimatedPortion)
		if !ok {
			amount = food.ServingSize.Amount
		}
		total = total.Add(nutrition.Scale(food.Nutrition, food.ServingSize.Amount, amount).Macros())
	}
	return total, nil
}

func (s *MealLogService) manualItemMacros(ctx context.Context, item models.ManualItem) (models.Macros, bool, error) {
	if item.FoodID == "" {
		return models.Macros{}, false, nil
	}
	id, err := uuid.Parse(item.FoodID)
	if err != nil {
		return models.Macros{}, false, nil
	}
	food, err := s.foods.Get(ctx, id)
	if IsNotFound(err) {
		return models.Macros{}, false, nil
	}
	if err != nil {
		return models.Macros{}, false, err
	}
	grams, ok := gramsOf(food, item.Portion)
	if !ok {
		return models.Macros{}, false, nil
	}
	return nutrition.Scale(food.Nutrition, food.ServingSize.Amount, grams).Macros(), true, nil
}

// gramsOf parses portion as grams when food's reference serving is measured
// in grams. Foods served by the cup or millilitre cannot be scaled by weight.
func gramsOf(food *models.TraditionalFood, portion string) (float64, bool) {
	unit := strings.ToLower(strings.TrimSpace(food.ServingSize.Unit))
	if unit != "" && unit != models.DefaultServingUnit {
		return 0, false
	}
	return ParsePortionGrams(portion)
}

func (s *MealLogService) foodByName(ctx context.Context, name string) (*models.TraditionalFood, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}
	foods, err := s.foods.List(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("LOWER(name_en) = ?", strings.ToLower(name)).Limit(1)
	})
	if err != nil || len(foods) == 0 {
		return nil, err
	}
	return &foods[0], nil
}

// ListMealLogs returns userID's logs matching filters, newest first.
func (s *MealLogService) ListMealLogs(ctx context.Context, userID uuid.UUID, filters models.MealLogFilters) ([]models.MealLog, error) {
	return s.List(ctx, func(q *gorm.DB) *gorm.DB {
		q = q.Where("user_id = ?", userID)
		if filters.MealType != "" {
			q = q.Where("meal_type = ?", filters.MealType)
		}
		if filters.From != nil {
			q = q.Where("date >= ?", *filters.From)
		}
		if filters.To != nil {
			q = q.Where("date <= ?", *filters.To)
		}
		return q.Order("date DESC")
	})
}

// Stats returns per-day totals for the last days days, today included, and
// the average over the whole window.
func (s *MealLogService) Stats(ctx context.Context, userID uuid.UUID, days int) (*MealStats, error) {
	if days <= 0 {
		days = DefaultStatsDays
	}
	if days > MaxStatsDays {
		days = MaxStatsDays
	}

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	from := today.AddDate(0, 0, -(days - 1))

	logs, err := s.ListMealLogs(ctx, userID, models.MealLogFilters{From: &from})
	if err != nil {
		return nil, err
	}

	stats := &MealStats{Days: days, Daily: make([]DailyMealTotals, days)}
	index := make(map[string]int, days)
	for i := range stats.Daily {
		key := from.AddDate(0, 0, i).Format("2006-01-02")
		stats.Daily[i].Date = key
		index[key] = i
	}

	var sum models.Macros
	for _, log := range logs {
		i, ok := index[log.Date.In(now.Location()).Format("2006-01-02")]
		if !ok {
			continue
		}
		stats.Daily[i].Meals++
		stats.Daily[i].Totals = stats.Daily[i].Totals.Add(log.TotalNutrition)
		stats.Meals++
		sum = sum.Add(log.TotalNutrition)
	}
	for i := range stats.Daily {
		stats.Daily[i].Totals = nutrition.RoundMacros(stats.Daily[i].Totals)
	}

	n := float64(days)
	stats.Average = nutrition.RoundMacros(models.Macros{
		Calories: sum.Calories / n,
		Protein:  sum.Protein / n,
		Carbs:    sum.Carbs / n,
		Fat:      sum.Fat / n,
		Fiber:    sum.Fiber / n,
	})
	return stats, nil
}

var portionPattern = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*(g|gram|grams|kg)?$`)

// ParsePortionGrams reads a portion such as "150g", "150 grams" or "0.2kg"
// as grams. A bare number is taken as grams.
func ParsePortionGrams(portion string) (float64, bool) {
	m := portionPattern.FindStringSubmatch(strings.ToLower(strings.TrimSpace(portion)))
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	if m[2] == "kg" {
		v *= 1000
	}
	return v, true
}
