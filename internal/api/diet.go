package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartdiet-sl/smartdiet/backend/internal/service"
	"github.com/smartdiet-sl/smartdiet/backend/internal/types"
)

// DietHandler generates and lists personal diet plans.
type DietHandler struct {
	diet service.IDietService
}

func NewDietHandler(diet service.IDietService) *DietHandler {
	return &DietHandler{diet: diet}
}

func (h *DietHandler) RegisterRoutes(router *gin.RouterGroup, g Guards) {
	diet := router.Group("/diet", g.Auth)
	{
		diet.POST("/plan", g.DietPlanLimit, h.GeneratePlan)
		diet.GET("/my-plans", h.ListMyPlans)
		diet.GET("/my-plans/:id", h.GetMyPlan)
	}
}

// GeneratePlan handles POST /diet/plan.
func (h *DietHandler) GeneratePlan(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req types.DietPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	plan, err := h.diet.GeneratePlan(c.Request.Context(), userID, req.Profile())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (h *DietHandler) ListMyPlans(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	plans, err := h.diet.ListPlans(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plans)
}

func (h *DietHandler) GetMyPlan(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	planID, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	plan, err := h.diet.GetPlan(c.Request.Context(), userID, planID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}
