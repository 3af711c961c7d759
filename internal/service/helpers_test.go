package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/smartdiet-sl/smartdiet/backend/internal/models"
)

func createFood(t *testing.T, db *gorm.DB, name string, n models.Nutrition) *models.TraditionalFood {
	t.Helper()
	f := models.NewTraditionalFood()
	f.Name = models.LocalizedText{EN: name}
	f.Type = models.FoodTypeDish
	f.Category = "other"
	f.Nutrition = n
	require.NoError(t, db.WithContext(context.Background()).Create(f).Error)
	return f
}

func createProduct(t *testing.T, db *gorm.DB, name string, price float64, stock int) *models.Product {
	t.Helper()
	p := models.NewProduct()
	p.Name = name
	p.Category = "grains"
	p.Price = price
	p.CountInStock = stock
	p.Nutrition = models.Nutrition{Calories: 350, Protein: 7}
	require.NoError(t, db.WithContext(context.Background()).Create(p).Error)
	return p
}

func createUser(t *testing.T, db *gorm.DB, email, role string) *models.User {
	t.Helper()
	u := &models.User{Name: "Test User", Email: email, PasswordHash: "x", Role: role}
	require.NoError(t, db.WithContext(context.Background()).Create(u).Error)
	return u
}
