package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/smartdiet-sl/smartdiet/backend/internal/database"
	"github.com/smartdiet-sl/smartdiet/backend/internal/middleware"
	"github.com/smartdiet-sl/smartdiet/backend/internal/service"
)

// Version is reported by the health endpoint.
const Version = "v1.0.0"

// Services holds everything the handlers depend on.
type Services struct {
	DB         *gorm.DB
	Auth       service.IAuthService
	Users      *service.UserService
	Foods      *service.FoodService
	DietPlans  *service.DietPlanService
	Plates     service.IPlateService
	Diet       service.IDietService
	Chatbot    service.IChatbotService
	MealLogs   *service.MealLogService
	Tips       *service.TipService
	Products   *service.ProductService
	Orders     *service.OrderService
	Calculator service.ICalculatorService
	Storage    service.ImageStorage
}

// Guards are the middlewares handlers attach to their routes. Admin must
// be chained after Auth.
type Guards struct {
	Auth          gin.HandlerFunc
	OptionalAuth  gin.HandlerFunc
	Admin         gin.HandlerFunc
	DietPlanLimit gin.HandlerFunc
	ChatLimit     gin.HandlerFunc
}

// NewGuards builds the auth middlewares and the rate limiters. Limits are
// kept in Redis when redisClient is set and in process memory otherwise.
func NewGuards(auth service.IAuthService, redisClient *redis.Client) Guards {
	return Guards{
		Auth:          middleware.AuthMiddleware(auth),
		OptionalAuth:  middleware.OptionalAuth(auth),
		Admin:         middleware.RequireAdmin(auth),
		DietPlanLimit: middleware.NewDietPlanRateLimiter(redisClient).RateLimitMiddleware(),
		ChatLimit:     middleware.NewChatRateLimiter(redisClient).RateLimitMiddleware(),
	}
}

// HealthHandler reports whether the API and its database are up.
type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// HealthCheck returns the health status of the API
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	if err := database.HealthCheck(c.Request.Context(), h.db); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "down",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"message":  "Smart Diet SL API is running",
		"version":  Version,
		"database": "up",
	})
}

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.Engine, svc Services, guards Guards) {
	health := NewHealthHandler(svc.DB)
	router.GET("/health", health.HealthCheck)

	api := router.Group("/api")
	api.GET("/health", health.HealthCheck)

	NewAuthHandler(svc.Auth, svc.Storage).RegisterRoutes(api, guards)
	NewFoodHandler(svc.Foods, svc.Storage).RegisterRoutes(api, guards)
	NewDietPlanHandler(svc.DietPlans, svc.Storage).RegisterRoutes(api, guards)
	NewPlateHandler(svc.Plates, svc.Storage).RegisterRoutes(api, guards)
	NewDietHandler(svc.Diet).RegisterRoutes(api, guards)
	NewChatbotHandler(svc.Chatbot, svc.Auth).RegisterRoutes(api, guards)
	NewMealLogHandler(svc.MealLogs, svc.Storage).RegisterRoutes(api, guards)
	NewTipHandler(svc.Tips).RegisterRoutes(api, guards)
	NewProductHandler(svc.Products, svc.Storage).RegisterRoutes(api, guards)
	NewOrderHandler(svc.Orders, svc.Auth).RegisterRoutes(api, guards)
	NewUserHandler(svc.Users).RegisterRoutes(api, guards)
	NewNutritionHandler(svc.Calculator).RegisterRoutes(api, guards)
	NewUploadHandler(svc.Storage).RegisterRoutes(api, guards)
}
