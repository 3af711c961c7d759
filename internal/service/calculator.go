package service

import (
	"context"
	"fmt"

	"github.com/smartdiet-sl/smartdiet/backend/internal/models"
	"github.com/smartdiet-sl/smartdiet/backend/internal/nutrition"
	"github.com/smartdiet-sl/smartdiet/backend/internal/types"
)

// Calculation sources.
const (
	SourceFood    = "food"
	SourceProduct = "product"
)

// productReferenceGrams is the serving product nutrition is expressed per.
const productReferenceGrams = 100

// CalculatedItem is one line of a nutrition calculation.
type CalculatedItem struct {
	Source   string           `json:"source"`
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Quantity float64          `json:"quantity"`
	Unit     string           `json:"unit"`
	Totals   nutrition.Totals `json:"nutrition"`
}

// Calculation is the result of POST /nutrition/calculate.
type Calculation struct {
	Items []CalculatedItem `json:"items"`
	Total nutrition.Totals `json:"total"`
}

// CalculatorService sums nutrition across catalog foods and products.
type CalculatorService struct {
	foods    *FoodService
	products *ProductService
}

func NewCalculatorService(foods *FoodService, products *ProductService) *CalculatorService {
	return &CalculatorService{foods: foods, products: products}
}

// Calculate resolves every item against the catalog and aggregates them.
// Unknown ids are a validation error on the offending item.
func (s *CalculatorService) Calculate(ctx context.Context, req types.CalculateRequest) (*Calculation, error) {
	out := &Calculation{Items: make([]CalculatedItem, 0, len(req.Items))}
	portions := make([]nutrition.Portion, 0, len(req.Items))

	for i, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, NewValidationError(fmt.Sprintf("items[%d].quantity", i), "must be positive")
		}
		line, portion, err := s.resolve(ctx, item)
		if IsNotFound(err) {
			return nil, NewValidationError(fmt.Sprintf("items[%d].id", i), "unknown "+line.Source+" "+item.ID)
		}
		if err != nil {
			return nil, err
		}
		line.Totals = nutrition.Aggregate([]nutrition.Portion{portion}).Rounded()
		out.Items = append(out.Items, line)
		portions = append(portions, portion)
	}

	out.Total = nutrition.Aggregate(portions).Rounded()
	return out, nil
}

func (s *CalculatorService) resolve(ctx context.Context, item types.CalculateItem) (CalculatedItem, nutrition.Portion, error) {
	line := CalculatedItem{Source: item.Source, ID: item.ID, Quantity: item.Quantity}
	if line.Source == "" {
		line.Source = SourceFood
	}
	id, err := ParseID(item.ID)
	if err != nil {
		return line, nutrition.Portion{}, err
	}

	switch line.Source {
	case SourceProduct:
		product, err := s.products.Get(ctx, id)
		if err != nil {
			return line, nutrition.Portion{}, err
		}
		line.Name = product.Name
		line.Unit = models.DefaultServingUnit
		return line, nutrition.Portion{
			Nutrition:       product.Nutrition,
			ReferenceAmount: productReferenceGrams,
			RequestedAmount: item.Quantity,
		}, nil
	case SourceFood:
		food, err := s.foods.Get(ctx, id)
		if err != nil {
			return line, nutrition.Portion{}, err
		}
		line.Name = food.Name.EN
		line.Unit = food.ServingSize.Unit
		return line, nutrition.Portion{
			Nutrition:       food.Nutrition,
			ReferenceAmount: food.ServingSize.Amount,
			RequestedAmount: item.Quantity,
		}, nil
	default:
		return line, nutrition.Portion{}, NewValidationError("source", "must be food or product")
	}
}
