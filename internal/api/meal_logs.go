package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/smartdiet-sl/smartdiet/backend/internal/models"
	"github.com/smartdiet-sl/smartdiet/backend/internal/service"
)

// MealLogHandler records and reports the caller's meals.
type MealLogHandler struct {
	meals   *service.MealLogService
	storage service.ImageStorage
}

func NewMealLogHandler(meals *service.MealLogService, storage service.ImageStorage) *MealLogHandler {
	return &MealLogHandler{meals: meals, storage: storage}
}

func (h *MealLogHandler) RegisterRoutes(router *gin.RouterGroup, g Guards) {
	logs := router.Group("/meal-logs", g.Auth)
	{
		logs.POST("", h.LogMeal)
		logs.GET("", h.ListMealLogs)
		logs.GET("/stats", h.Stats)
	}
}

// LogMeal handles POST /meal-logs. recognizedItems and manualItems arrive
// as JSON-encoded form fields next to an optional image.
func (h *MealLogHandler) LogMeal(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	in := service.MealLogInput{
		MealType: c.PostForm("mealType"),
		Notes:    c.PostForm("notes"),
	}
	if err := decodeFormJSON(c, "recognizedItems", &in.RecognizedItems); err != nil {
		respondError(c, err)
		return
	}
	if err := decodeFormJSON(c, "manualItems", &in.ManualItems); err != nil {
		respondError(c, err)
		return
	}
	if raw := c.PostForm("date"); raw != "" {
		date, err := parseDate(raw)
		if err != nil {
			respondError(c, service.NewValidationError("date", "must be RFC3339 or YYYY-MM-DD"))
			return
		}
		in.Date = &date
	}
	if !models.IsValidMealType(strings.ToLower(strings.TrimSpace(in.MealType))) {
		respondError(c, service.NewValidationError("mealType", "must be one of breakfast, lunch, dinner, snack"))
		return
	}

	if isMultipart(c) {
		file, err := formImage(c, "image")
		if err != nil {
			respondError(c, err)
			return
		}
		url, err := uploadIfPresent(c.Request.Context(), h.storage, "meal-logs", "image", file)
		if err != nil {
			respondError(c, err)
			return
		}
		in.Image = url
	}

	log, err := h.meals.LogMeal(c.Request.Context(), userID, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, log)
}

// ListMealLogs handles GET /meal-logs?mealType&from&to.
func (h *MealLogHandler) ListMealLogs(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	filters := models.MealLogFilters{MealType: c.Query("mealType")}
	for field, dst := range map[string]**time.Time{"from": &filters.From, "to": &filters.To} {
		raw := c.Query(field)
		if raw == "" {
			continue
		}
		t, err := parseDate(raw)
		if err != nil {
			respondError(c, service.NewValidationError(field, "must be RFC3339 or YYYY-MM-DD"))
			return
		}
		*dst = &t
	}

	logs, err := h.meals.ListMealLogs(c.Request.Context(), userID, filters)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

// Stats handles GET /meal-logs/stats?days=7.
func (h *MealLogHandler) Stats(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	days := service.DefaultStatsDays
	if raw := c.Query("days"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			respondError(c, service.NewValidationError("days", "must be a positive integer"))
			return
		}
		days = v
	}

	stats, err := h.meals.Stats(c.Request.Context(), userID, days)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func decodeFormJSON(c *gin.Context, field string, dst interface{}) error {
	raw := strings.TrimSpace(c.PostForm(field))
	if raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return service.NewValidationError(field, "must be a JSON array")
	}
	return nil
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}
