package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/smartdiet-sl/smartdiet/backend/internal/models"
	"github.com/smartdiet-sl/smartdiet/backend/internal/service"
)

// PlateHandler serves goal-based Sri Lankan plates.
type PlateHandler struct {
	plates  service.IPlateService
	storage service.ImageStorage
}

func NewPlateHandler(plates service.IPlateService, storage service.ImageStorage) *PlateHandler {
	return &PlateHandler{plates: plates, storage: storage}
}

func (h *PlateHandler) RegisterRoutes(router *gin.RouterGroup, g Guards) {
	plates := router.Group("/sri-lankan-plates")
	{
		plates.GET("", h.ListPlates)
		plates.GET("/generate", h.GeneratePlate)
		plates.POST("", g.Auth, g.Admin, h.CreatePlate)
	}
}

// ListPlates handles GET /sri-lankan-plates?goal&busyLife&language.
func (h *PlateHandler) ListPlates(c *gin.Context) {
	filters := models.PlateFilters{Goal: c.Query("goal")}
	if raw := c.Query("busyLife"); raw != "" {
		busy, err := strconv.ParseBool(raw)
		if err != nil {
			respondError(c, service.NewValidationError("busyLife", "must be true or false"))
			return
		}
		filters.BusyLife = &busy
	}

	plates, err := h.plates.ListPlates(c.Request.Context(), filters)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, localizeList(plates, language(c)))
}

// GeneratePlate handles GET /sri-lankan-plates/generate?goal&calories&language.
func (h *PlateHandler) GeneratePlate(c *gin.Context) {
	goal := c.Query("goal")
	if goal == "" {
		respondError(c, service.NewValidationError("goal", "is required"))
		return
	}

	calories := h.plates.DefaultCalories()
	if raw := c.Query("calories"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v <= 0 {
			respondError(c, service.NewValidationError("calories", "must be a positive number"))
			return
		}
		if err := service.ValidatePlateCalories(v); err != nil {
			respondError(c, err)
			return
		}
		calories = v
	}

	plate, err := h.plates.Generate(c.Request.Context(), goal, calories)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, localize(plate, language(c)))
}

// CreatePlate stores a curated plate. Totals are recomputed from the items.
func (h *PlateHandler) CreatePlate(c *gin.Context) {
	payload, file, err := readPayload(c, "image")
	if err != nil {
		respondError(c, err)
		return
	}
	url, err := uploadIfPresent(c.Request.Context(), h.storage, "plates", "image", file)
	if err != nil {
		respondError(c, err)
		return
	}

	plate, err := h.plates.Create(c.Request.Context(), payload, func(p *models.SriLankanPlate) {
		if url != "" {
			p.Image = url
		}
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, plate)
}
