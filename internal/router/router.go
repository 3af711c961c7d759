package router

import (
	"github.com/gin-gonic/gin"

	"github.com/smartdiet-sl/smartdiet/backend/config"
	"github.com/smartdiet-sl/smartdiet/backend/internal/api"
	"github.com/smartdiet-sl/smartdiet/backend/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(cfg *config.Config, svc api.Services, guards api.Guards) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS(cfg.ClientURLs))

	// Multipart bodies above this are spooled to disk.
	router.MaxMultipartMemory = api.MaxImageSize

	router.NoRoute(middleware.NotFound())
	api.RegisterRoutes(router, svc, guards)

	return router
}
