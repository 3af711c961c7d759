package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartdiet-sl/smartdiet/backend/internal/models"
	"github.com/smartdiet-sl/smartdiet/backend/internal/service"
)

// FoodHandler serves the traditional food catalog.
type FoodHandler struct {
	foods *service.FoodService
	admin crudEndpoints[models.TraditionalFood, *models.TraditionalFood]
}

func NewFoodHandler(foods *service.FoodService, storage service.ImageStorage) *FoodHandler {
	return &FoodHandler{
		foods: foods,
		admin: crudEndpoints[models.TraditionalFood, *models.TraditionalFood]{
			crud:     foods.CRUDService,
			storage:  storage,
			folder:   "foods",
			name:     "Traditional food",
			setImage: func(f *models.TraditionalFood, url string) { f.Image = url },
		},
	}
}

func (h *FoodHandler) RegisterRoutes(router *gin.RouterGroup, g Guards) {
	foods := router.Group("/traditional-foods")
	{
		foods.GET("", h.ListFoods)
		foods.GET("/:id", h.GetFood)

		admin := foods.Group("", g.Auth, g.Admin)
		admin.POST("", h.admin.Create)
		admin.PUT("/:id", h.admin.Update)
		admin.DELETE("/:id", h.admin.Delete)
	}
}

// ListFoods handles GET /traditional-foods?category&type&language.
func (h *FoodHandler) ListFoods(c *gin.Context) {
	foods, err := h.foods.ListFoods(c.Request.Context(), models.FoodFilters{
		Category: c.Query("category"),
		Type:     c.Query("type"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, localizeList(foods, language(c)))
}

func (h *FoodHandler) GetFood(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	food, err := h.foods.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, localize(food, language(c)))
}
