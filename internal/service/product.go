package service

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/smartdiet-sl/smartdiet/backend/internal/models"
)

// ProductService manages the shop catalog.
type ProductService struct {
	*CRUDService[models.Product, *models.Product]
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{
		CRUDService: NewCRUDService[models.Product](db, "product", models.NewProduct),
	}
}

// ListProducts returns active products by category and a case-insensitive
// name or description search.
func (s *ProductService) ListProducts(ctx context.Context, filters models.ProductFilters) ([]models.Product, error) {
	return s.List(ctx, func(q *gorm.DB) *gorm.DB {
		q = q.Where("is_active = ?", true)
		if filters.Category != "" {
			q = q.Where("category = ?", filters.Category)
		}
		if term := strings.TrimSpace(filters.Search); term != "" {
			like := "%" + strings.ToLower(term) + "%"
			q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
		}
		return q.Order("created_at DESC")
	})
}
