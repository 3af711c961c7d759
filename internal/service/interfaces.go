package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/smartdiet-sl/smartdiet/backend/internal/models"
	"github.com/smartdiet-sl/smartdiet/backend/internal/types"
)

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(ctx context.Context, req types.RegisterRequest) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, req types.UpdateProfileRequest) (*models.User, error)
}

// IDietService defines the interface for personal diet plan generation
type IDietService interface {
	Available() bool
	GeneratePlan(ctx context.Context, userID uuid.UUID, profile models.HealthProfile) (*GeneratedPlan, error)
	ListPlans(ctx context.Context, userID uuid.UUID) ([]models.PersonalDietPlan, error)
	GetPlan(ctx context.Context, userID, planID uuid.UUID) (*models.PersonalDietPlan, error)
}

// IChatbotService defines the interface for the nutrition chatbot
type IChatbotService interface {
	Available() bool
	NewConversation(ctx context.Context) (*ChatReply, error)
	Chat(ctx context.Context, conversationID, message string) (*ChatReply, error)
	Clear(ctx context.Context, conversationID string) error
}

// IPlateService defines the interface for goal-based plates
type IPlateService interface {
	DefaultCalories() float64
	ListPlates(ctx context.Context, filters models.PlateFilters) ([]models.SriLankanPlate, error)
	Generate(ctx context.Context, goal string, calories float64) (*models.SriLankanPlate, error)
	Create(ctx context.Context, payload []byte, mutate func(*models.SriLankanPlate)) (*models.SriLankanPlate, error)
}

// ICalculatorService defines the interface for the nutrition calculator
type ICalculatorService interface {
	Calculate(ctx context.Context, req types.CalculateRequest) (*Calculation, error)
}

// Compile-time checks.
var (
	_ IAuthService       = (*AuthService)(nil)
	_ IDietService       = (*DietService)(nil)
	_ IChatbotService    = (*ChatbotService)(nil)
	_ IPlateService      = (*PlateService)(nil)
	_ ICalculatorService = (*CalculatorService)(nil)
)
