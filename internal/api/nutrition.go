package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartdiet-sl/smartdiet/backend/internal/service"
	"github.com/smartdiet-sl/smartdiet/backend/internal/types"
)

// NutritionHandler exposes the nutrition calculator.
type NutritionHandler struct {
	calculator service.ICalculatorService
}

func NewNutritionHandler(calculator service.ICalculatorService) *NutritionHandler {
	return &NutritionHandler{calculator: calculator}
}

func (h *NutritionHandler) RegisterRoutes(router *gin.RouterGroup, _ Guards) {
	router.POST("/nutrition/calculate", h.Calculate)
}

// Calculate handles POST /nutrition/calculate {items: [{source, id, quantity}]}.
func (h *NutritionHandler) Calculate(c *gin.Context) {
	var req types.CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.calculator.Calculate(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
