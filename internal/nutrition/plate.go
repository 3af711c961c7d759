package nutrition

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/smartdiet-sl/smartdiet/backend/internal/models"
)

// Goal thresholds applied to per-reference nutrition.
const (
	DiabetesMaxGlycemicIndex = 55
	WeightLossMaxCalories    = 200
)

// PlateOptions tunes the greedy plate generator.
type PlateOptions struct {
	// TargetRatio stops the loop once total calories reach this share of the target.
	TargetRatio float64
	// CandidateLimit caps how many foods are considered.
	CandidateLimit int
	// PrepTime is stamped on generated plates, in minutes.
	PrepTime int
}

// DefaultPlateOptions returns the 90 % / 20 candidate / 30 minute defaults.
func DefaultPlateOptions() PlateOptions {
	return PlateOptions{TargetRatio: 0.9, CandidateLimit: 20, PrepTime: 30}
}

func (o PlateOptions) normalized() PlateOptions {
	def := DefaultPlateOptions()
	if o.TargetRatio <= 0 || o.TargetRatio > 1 {
		o.TargetRatio = def.TargetRatio
	}
	if o.CandidateLimit <= 0 {
		o.CandidateLimit = def.CandidateLimit
	}
	if o.PrepTime <= 0 {
		o.PrepTime = def.PrepTime
	}
	return o
}

// MatchesGoal reports whether food passes the numeric filter for goal.
// Goals without a filter accept every food.
func MatchesGoal(goal string, food *models.TraditionalFood) bool {
	switch goal {
	case models.GoalDiabetes:
		return food.Nutrition.GlycemicIndex < DiabetesMaxGlycemicIndex
	case models.GoalWeightLoss:
		return food.Nutrition.Calories < WeightLossMaxCalories
	default:
		return true
	}
}

// RankCandidates filters foods for goal and orders them deterministically:
// common-and-affordable foods first, then by English name, then by id.
// At most limit foods are returned.
func RankCandidates(goal string, foods []models.TraditionalFood, limit int) []models.TraditionalFood {
	out := make([]models.TraditionalFood, 0, len(foods))
	for i := range foods {
		if MatchesGoal(goal, &foods[i]) {
			out = append(out, foods[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		pi, pj := out[i].CommonAndAffordable(), out[j].CommonAndAffordable()
		if pi != pj {
			return pi
		}
		if out[i].Name.EN != out[j].Name.EN {
			return out[i].Name.EN < out[j].Name.EN
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// GeneratePlate assembles a plate for goal from foods. Candidates are taken
// in ranked order; each one receives the portion that would cover the
// remaining calories, until the total reaches TargetRatio of the target or the
// candidates run out. No candidates yields an empty plate with zero totals.
func GeneratePlate(goal string, targetCalories float64, foods []models.TraditionalFood, opts PlateOptions) *models.SriLankanPlate {
	opts = opts.normalized()
	if !isFinite(targetCalories) || targetCalories < 0 {
		targetCalories = 0
	}
	candidates := RankCandidates(goal, foods, opts.CandidateLimit)
	threshold := targetCalories * opts.TargetRatio

	items := make([]models.PlateItem, 0, len(candidates))
	var current float64
	for i := range candidates {
		if current >= threshold {
			break
		}
		food := &candidates[i]

		reference := food.ServingSize.Amount
		if reference <= 0 {
			reference = FallbackReferenceAmount
		}
		perReference := food.Nutrition.Calories
		if perReference <= 0 {
			perReference = FallbackReferenceAmount
		}

		amount := math.Round((targetCalories - current) / perReference * reference)
		if !isFinite(amount) || amount <= 0 {
			continue
		}

		snapshot := RoundMacros(Scale(food.Nutrition, reference, amount).Macros())
		if !isFinite(snapshot.Calories) {
			continue
		}
		items = append(items, models.PlateItem{
			FoodID:    food.ID.String(),
			Name:      food.Name.EN,
			Portion:   formatPortion(amount, food.ServingSize.Unit),
			Nutrition: snapshot,
		})
		current += snapshot.Calories
	}

	plate := &models.SriLankanPlate{
		Name:               models.LocalizedText{EN: PlateName(goal)},
		Description:        models.LocalizedText{EN: fmt.Sprintf("A %s plate of common Sri Lankan foods for about %.0f kcal.", goal, targetCalories)},
		Goal:               goal,
		Items:              items,
		Substitutions:      Substitutions(goal),
		IsBusyLifeFriendly: goal == models.GoalWeightLoss,
		PrepTime:           opts.PrepTime,
	}
	plate.RecalculateTotals()
	return plate
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// PlateName returns the generated plate title, e.g. "Diabetes Friendly Plate".
func PlateName(goal string) string {
	if goal == "" {
		return "Friendly Plate"
	}
	return strings.ToUpper(goal[:1]) + goal[1:] + " Friendly Plate"
}

func formatPortion(amount float64, unit string) string {
	if unit == "" {
		unit = models.DefaultServingUnit
	}
	return fmt.Sprintf("%.0f%s", amount, unit)
}

var goalSubstitutions = map[string][]models.Substitution{
	models.GoalDiabetes: {
		{Original: "White rice", Substitute: "Red rice or kurakkan", Reason: "Lower glycemic index"},
		{Original: "Sugared tea", Substitute: "Plain tea or kothamalli", Reason: "Avoids added sugar"},
	},
	models.GoalWeightLoss: {
		{Original: "Coconut milk curry", Substitute: "Tempered or boiled curry", Reason: "Less saturated fat"},
		{Original: "Large rice portion", Substitute: "Half portion of red rice with extra mallum", Reason: "Fewer calories, more fibre"},
	},
	models.GoalWeightGain: {
		{Original: "Plain rice and one curry", Substitute: "Rice with parippu, egg and a fish curry", Reason: "More protein and energy"},
	},
	models.GoalGeneralHealth: {
		{Original: "Maalu paan", Substitute: "Boiled egg with brown bread", Reason: "Less oil, more fibre"},
	},
}

// Substitutions returns the suggested local swaps for goal.
func Substitutions(goal string) []models.Substitution {
	subs := goalSubstitutions[goal]
	out := make([]models.Substitution, len(subs))
	copy(out, subs)
	return out
}
