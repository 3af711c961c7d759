package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/smartdiet-sl/smartdiet/backend/config"
	"github.com/smartdiet-sl/smartdiet/backend/internal/api"
	"github.com/smartdiet-sl/smartdiet/backend/internal/nutrition"
	"github.com/smartdiet-sl/smartdiet/backend/internal/router"
	"github.com/smartdiet-sl/smartdiet/backend/internal/service"
)

// Server represents the HTTP server
type Server struct {
	cfg    *config.Config
	router *gin.Engine
	http   *http.Server
}

// New wires every service over db and the optional Redis client and
// builds the router. Redis, S3 and the language model providers are all
// optional: without them the server falls back to in-process state or
// answers the affected endpoints with an explanatory error.
func New(ctx context.Context, cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	storage, err := newImageStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}

	svc := NewServices(cfg, db, redisClient, storage)
	r := router.SetupRouter(cfg, svc, api.NewGuards(svc.Auth, redisClient))

	return &Server{
		cfg:    cfg,
		router: r,
		http: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

// NewServices builds the service layer.
func NewServices(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, storage service.ImageStorage) api.Services {
	auth := service.NewAuthService(db, cfg.JWTSecret, cfg.JWTExpire)
	foods := service.NewFoodService(db)
	products := service.NewProductService(db)

	var store service.ConversationStore
	if redisClient != nil {
		store = service.NewRedisConversationStore(redisClient)
	} else {
		logrus.Warn("Redis not configured, chat history is kept in memory")
		store = service.NewMemoryConversationStore()
	}

	chatOpts := service.DefaultChatbotOptions()
	chatOpts.HistoryTTL = cfg.ChatHistoryTTL

	plates := service.NewPlateService(db, foods, nutrition.NewUniformPicker(nil), service.PlateConfig{
		DefaultCalories: cfg.PlateDefaultCalories,
		Options: nutrition.PlateOptions{
			TargetRatio:    cfg.PlateTargetRatio,
			CandidateLimit: cfg.PlateCandidateLimit,
		},
	})

	return api.Services{
		DB:         db,
		Auth:       auth,
		Users:      service.NewUserService(db),
		Foods:      foods,
		DietPlans:  service.NewDietPlanService(db),
		Plates:     plates,
		Diet:       service.NewDietService(db, newProvider("openai", cfg.OpenAIAPIKey, cfg.OpenAIAPIURL, cfg.OpenAIModel)),
		Chatbot:    service.NewChatbotService(newProvider("groq", cfg.GroqAPIKey, cfg.GroqAPIURL, cfg.GroqModel), store, chatOpts),
		MealLogs:   service.NewMealLogService(db, foods),
		Tips:       service.NewTipService(db),
		Products:   products,
		Orders:     service.NewOrderService(db),
		Calculator: service.NewCalculatorService(foods, products),
		Storage:    storage,
	}
}

func newProvider(name, key, url, model string) service.ChatCompletionProvider {
	return service.NewChatCompletionProvider(service.LLMConfig{
		Provider: name,
		APIKey:   key,
		APIURL:   url,
		Model:    model,
	})
}

func newImageStorage(ctx context.Context, cfg *config.Config) (service.ImageStorage, error) {
	if !cfg.StorageEnabled() {
		logrus.Warn("S3_BUCKET_NAME not set, image uploads are disabled")
		return service.DisabledImageStorage{}, nil
	}
	s3cfg, err := config.NewS3Config(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return service.NewS3ImageStorage(s3cfg.Client, s3cfg.BucketName, s3cfg.PublicBaseURL), nil
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves HTTP until Shutdown is called.
func (s *Server) Start() error {
	logrus.WithFields(logrus.Fields{
		"addr":        s.http.Addr,
		"environment": s.cfg.Environment,
	}).Info("Starting server")

	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
