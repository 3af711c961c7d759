package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartdiet-sl/smartdiet/backend/internal/models"
	"github.com/smartdiet-sl/smartdiet/backend/internal/service"
)

// DietPlanHandler serves the curated diet plan catalog.
type DietPlanHandler struct {
	plans *service.DietPlanService
	admin crudEndpoints[models.DietPlan, *models.DietPlan]
}

func NewDietPlanHandler(plans *service.DietPlanService, storage service.ImageStorage) *DietPlanHandler {
	return &DietPlanHandler{
		plans: plans,
		admin: crudEndpoints[models.DietPlan, *models.DietPlan]{
			crud:     plans.CRUDService,
			storage:  storage,
			folder:   "diet-plans",
			name:     "Diet plan",
			setImage: func(p *models.DietPlan, url string) { p.Image = url },
		},
	}
}

func (h *DietPlanHandler) RegisterRoutes(router *gin.RouterGroup, g Guards) {
	plans := router.Group("/diet-plans")
	{
		plans.GET("", h.ListDietPlans)
		plans.GET("/:id", h.GetDietPlan)

		admin := plans.Group("", g.Auth, g.Admin)
		admin.POST("", h.admin.Create)
		admin.PUT("/:id", h.admin.Update)
		admin.DELETE("/:id", h.admin.Delete)
	}
}

// ListDietPlans handles GET /diet-plans?category&language. Only active
// plans are listed.
func (h *DietPlanHandler) ListDietPlans(c *gin.Context) {
	plans, err := h.plans.ListActive(c.Request.Context(), c.Query("category"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, localizeList(plans, language(c)))
}

func (h *DietPlanHandler) GetDietPlan(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	plan, err := h.plans.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, localize(plan, language(c)))
}
