package database

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/smartdiet-sl/smartdiet/backend/internal/models"
)

// SeedResult counts the rows inserted by Seed.
type SeedResult struct {
	Foods     int
	Tips      int
	DietPlans int
	Products  int
}

// Seed inserts the starter catalog into empty tables. Tables that already
// hold rows are left alone, so Seed is safe to run repeatedly.
func Seed(ctx context.Context, db *gorm.DB) (*SeedResult, error) {
	db = db.WithContext(ctx)
	res := &SeedResult{}

	var err error
	if res.Foods, err = seedTable(db, &models.TraditionalFood{}, seedFoods()); err != nil {
		return nil, err
	}
	if res.Tips, err = seedTable(db, &models.DailyTip{}, seedTips(time.Now())); err != nil {
		return nil, err
	}
	if res.DietPlans, err = seedTable(db, &models.DietPlan{}, seedDietPlans()); err != nil {
		return nil, err
	}
	if res.Products, err = seedTable(db, &models.Product{}, seedProducts()); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"foods":      res.Foods,
		"tips":       res.Tips,
		"diet_plans": res.DietPlans,
		"products":   res.Products,
	}).Info("Seeded catalog")
	return res, nil
}

func seedTable[T any](db *gorm.DB, model *T, rows []T) (int, error) {
	var count int64
	if err := db.Model(model).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count %T: %w", model, err)
	}
	if count > 0 || len(rows) == 0 {
		return 0, nil
	}
	if err := db.Create(&rows).Error; err != nil {
		return 0, fmt.Errorf("failed to seed %T: %w", model, err)
	}
	return len(rows), nil
}

func food(en, si, ta, foodType, category string, n models.Nutrition, common, affordable bool, benefits ...string) models.TraditionalFood {
	f := models.NewTraditionalFood()
	f.Name = models.LocalizedText{EN: en, SI: si, TA: ta}
	f.Type = foodType
	f.Category = category
	f.Nutrition = n
	f.IsCommon = common
	f.IsAffordable = affordable
	f.HealthBenefits = benefits
	return *f
}

// Nutrition values are per 100 g.
func seedFoods() []models.TraditionalFood {
	return []models.TraditionalFood{
		food("Red Rice", "රතු බත්", "சிவப்பு அரிசி", models.FoodTypeIngredient, "rice",
			models.Nutrition{Calories: 111, Protein: 2.6, Carbs: 23, Fat: 0.9, Fiber: 1.8, Iron: 0.5, Calcium: 10, GlycemicIndex: 55}, true, true,
			"High in fiber", "Slow energy release"),
		food("White Rice", "සුදු බත්", "வெள்ளை அரிசி", models.FoodTypeIngredient, "rice",
			models.Nutrition{Calories: 130, Protein: 2.7, Carbs: 28, Fat: 0.3, Fiber: 0.4, Iron: 0.2, Calcium: 10, GlycemicIndex: 73}, true, true),
		food("Gotukola Sambol", "ගොටුකොළ සම්බෝල", "வல்லாரை சம்பல்", models.FoodTypeDish, "vegetables",
			models.Nutrition{Calories: 45, Protein: 2, Carbs: 6, Fat: 1.5, Fiber: 3, Iron: 5.6, Calcium: 171, GlycemicIndex: 15}, true, true,
			"Rich in iron", "Traditionally used for memory"),
		food("Parippu (Dhal Curry)", "පරිප්පු", "பருப்பு", models.FoodTypeDish, "proteins",
			models.Nutrition{Calories: 116, Protein: 9, Carbs: 20, Fat: 0.4, Fiber: 8, Iron: 3.3, Calcium: 19, GlycemicIndex: 32}, true, true,
			"Plant protein", "High in folate"),
		food("Mukunuwenna Mallum", "මුකුණුවැන්න මැල්ලුම", "பொன்னாங்கண்ணி", models.FoodTypeDish, "vegetables",
			models.Nutrition{Calories: 60, Protein: 4.7, Carbs: 7, Fat: 2.5, Fiber: 2.8, Iron: 1.6, Calcium: 510, GlycemicIndex: 15}, true, true),
		food("Kurakkan Roti", "කුරක්කන් රොටි", "குரக்கன் ரொட்டி", models.FoodTypeDish, "grains",
			models.Nutrition{Calories: 328, Protein: 7.3, Carbs: 72, Fat: 1.3, Fiber: 3.6, Iron: 3.9, Calcium: 344, GlycemicIndex: 54}, true, true,
			"Rich in calcium"),
		food("Fish Ambul Thiyal", "මාළු ඇඹුල් තියල්", "மீன் அம்புல் தியல்", models.FoodTypeDish, "proteins",
			models.Nutrition{Calories: 150, Protein: 24, Carbs: 2, Fat: 5, Fiber: 0.5, Iron: 1.2, Calcium: 30, GlycemicIndex: 0}, true, false,
			"Lean protein", "Omega-3 fats"),
		food("Jackfruit Curry (Polos)", "පොලොස් කරිය", "பலாக்காய் கறி", models.FoodTypeDish, "vegetables",
			models.Nutrition{Calories: 95, Protein: 1.7, Carbs: 23, Fat: 0.6, Fiber: 1.5, Iron: 0.2, Calcium: 24, GlycemicIndex: 50}, true, true),
		food("Kiribath", "කිරිබත්", "பாற்சோறு", models.FoodTypeDish, "rice",
			models.Nutrition{Calories: 180, Protein: 3, Carbs: 30, Fat: 6, Fiber: 0.5, Iron: 0.3, Calcium: 15, GlycemicIndex: 70}, true, true),
		food("Coconut Sambol", "පොල් සම්බෝල", "தேங்காய் சம்பல்", models.FoodTypeDish, "other",
			models.Nutrition{Calories: 354, Protein: 3.3, Carbs: 15, Fat: 33, Fiber: 9, Iron: 2.4, Calcium: 14, GlycemicIndex: 45}, true, true),
		food("Chickpeas (Kadala)", "කඩල", "கடலை", models.FoodTypeIngredient, "proteins",
			models.Nutrition{Calories: 164, Protein: 8.9, Carbs: 27, Fat: 2.6, Fiber: 7.6, Iron: 2.9, Calcium: 49, GlycemicIndex: 28}, true, true),
		food("King Coconut Water", "තැඹිලි", "செவ்விளநீர்", models.FoodTypeBeverage, "beverages",
			models.Nutrition{Calories: 19, Protein: 0.7, Carbs: 3.7, Fat: 0.2, Fiber: 1.1, Iron: 0.3, Calcium: 24, GlycemicIndex: 3}, true, true,
			"Natural electrolytes"),
		food("Papaya", "පැපොල්", "பப்பாளி", models.FoodTypeIngredient, "fruits",
			models.Nutrition{Calories: 43, Protein: 0.5, Carbs: 11, Fat: 0.3, Fiber: 1.7, Iron: 0.3, Calcium: 20, GlycemicIndex: 60}, true, true),
		food("Egg Hoppers", "බිත්තර ආප්ප", "முட்டை அப்பம்", models.FoodTypeDish, "grains",
			models.Nutrition{Calories: 210, Protein: 8, Carbs: 25, Fat: 9, Fiber: 0.6, Iron: 1.1, Calcium: 40, GlycemicIndex: 65}, true, true),
	}
}

func seedTips(now time.Time) []models.DailyTip {
	tip := func(en, si, category string, related ...string) models.DailyTip {
		t := models.NewDailyTip()
		t.Tip = models.LocalizedText{EN: en, SI: si}
		t.Category = category
		t.RelatedFoods = related
		t.Date = now.AddDate(0, 0, -1)
		return *t
	}
	return []models.DailyTip{
		tip("Swap half of your white rice for red rice to slow the rise in blood sugar.",
			"සුදු බත් වෙනුවට රතු බත් භාවිතා කරන්න.", models.GoalDiabetes, "Red Rice"),
		tip("Fill half your plate with mallum and curries before adding rice.",
			"", "portion-control", "Gotukola Sambol", "Mukunuwenna Mallum"),
		tip("Use thin coconut milk instead of thick milk to cut saturated fat in curries.",
			"", "cooking-tip"),
		tip("Drink king coconut water instead of sugary soft drinks on hot days.",
			"", "hydration", "King Coconut Water"),
		tip("Add parippu or kadala to every main meal for plant protein.",
			"", models.GoalGeneralHealth, "Parippu (Dhal Curry)", "Chickpeas (Kadala)"),
	}
}

func seedDietPlans() []models.DietPlan {
	plan := func(en, category string, days, calories int, meals ...models.PlanMeal) models.DietPlan {
		p := models.NewDietPlan()
		p.Name = models.LocalizedText{EN: en}
		p.Category = category
		p.DurationDays = days
		p.DailyCalories = calories
		p.Meals = meals
		return *p
	}
	return []models.DietPlan{
		plan("Sri Lankan Weight Loss Week", models.GoalWeightLoss, 7, 1500,
			models.PlanMeal{MealType: "breakfast", Description: "Kurakkan roti with gotukola sambol"},
			models.PlanMeal{MealType: "lunch", Description: "Half cup red rice, parippu, two mallum"},
			models.PlanMeal{MealType: "dinner", Description: "Fish ambul thiyal with salad"}),
		plan("Diabetes Friendly Rice and Curry", models.GoalDiabetes, 14, 1800,
			models.PlanMeal{MealType: "breakfast", Description: "Boiled kadala with grated coconut"},
			models.PlanMeal{MealType: "lunch", Description: "Red rice, mukunuwenna mallum, dhal"},
			models.PlanMeal{MealType: "dinner", Description: "String hoppers with vegetable curry"}),
	}
}

func seedProducts() []models.Product {
	product := func(name, brand, category string, price float64, stock int, n models.Nutrition) models.Product {
		p := models.NewProduct()
		p.Name = name
		p.Brand = brand
		p.Category = category
		p.Price = price
		p.CountInStock = stock
		p.Nutrition = n
		return *p
	}
	return []models.Product{
		product("Organic Red Rice 1kg", "Govi Aruna", "grains", 450, 50,
			models.Nutrition{Calories: 356, Protein: 7.5, Carbs: 76, Fat: 2.2, Fiber: 3.4}),
		product("Kurakkan Flour 500g", "Govi Aruna", "grains", 380, 40,
			models.Nutrition{Calories: 328, Protein: 7.3, Carbs: 72, Fat: 1.3, Fiber: 3.6, Calcium: 344}),
		product("Ceylon Green Tea 100g", "Hill Country", "beverages", 650, 30,
			models.Nutrition{Calories: 1}),
	}
}
