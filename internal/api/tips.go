package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartdiet-sl/smartdiet/backend/internal/service"
)

// TipHandler serves daily nutrition tips.
type TipHandler struct {
	tips *service.TipService
}

func NewTipHandler(tips *service.TipService) *TipHandler {
	return &TipHandler{tips: tips}
}

func (h *TipHandler) RegisterRoutes(router *gin.RouterGroup, g Guards) {
	tips := router.Group("/daily-tips")
	{
		tips.GET("", h.ListTips)
		tips.GET("/today", h.TodayTip)
		tips.POST("", g.Auth, g.Admin, h.CreateTip)
	}
}

// ListTips handles GET /daily-tips?category&language.
func (h *TipHandler) ListTips(c *gin.Context) {
	tips, err := h.tips.ListTips(c.Request.Context(), c.Query("category"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, localizeList(tips, language(c)))
}

// TodayTip handles GET /daily-tips/today?category&language.
func (h *TipHandler) TodayTip(c *gin.Context) {
	tip, err := h.tips.Today(c.Request.Context(), c.Query("category"))
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "No tips available"})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, localize(tip, language(c)))
}

func (h *TipHandler) CreateTip(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		respondError(c, err)
		return
	}
	tip, err := h.tips.Create(c.Request.Context(), body, nil)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tip)
}
