package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/smartdiet-sl/smartdiet/backend/internal/models"
)

// GeneratedPlan is returned after a personal plan is created.
type GeneratedPlan struct {
	PlanID   uuid.UUID `json:"planId"`
	PlanText string    `json:"planText"`
}

// DietService generates personal diet plans with a language model and keeps
// them per user.
type DietService struct {
	db          *gorm.DB
	provider    ChatCompletionProvider
	temperature float64
	maxTokens   int
}

func NewDietService(db *gorm.DB, provider ChatCompletionProvider) *DietService {
	return &DietService{
		db:          db,
		provider:    provider,
		temperature: 0.7,
		maxTokens:   3000,
	}
}

// Available reports whether a diet plan provider is configured.
func (s *DietService) Available() bool {
	return IsAvailable(s.provider)
}

// GeneratePlan validates profile, asks the model for a plan and stores it
// verbatim for userID.
func (s *DietService) GeneratePlan(ctx context.Context, userID uuid.UUID, profile models.HealthProfile) (*GeneratedPlan, error) {
	prompt, err := BuildDietPrompt(profile)
	if err != nil {
		return nil, err
	}
	if !s.Available() {
		return nil, fmt.Errorf("diet plan: %w", ErrLLMUnavailable)
	}

	log := logrus.WithField("user_id", userID)
	log.Info("generating diet plan")

	completion, err := s.provider.Complete(ctx, CompletionRequest{
		Messages: []Message{
			{Role: RoleSystem, Content: DietPlanSystemPrompt},
			{Role: RoleUser, Content: prompt},
		},
		Temperature: s.temperature,
		MaxTokens:   s.maxTokens,
	})
	if err != nil {
		log.WithError(err).Error("diet plan completion failed")
		return nil, err
	}

	plan := &models.PersonalDietPlan{
		UserID:   userID,
		Input:    profile,
		PlanText: completion.Content,
		Metadata: models.PlanMetadata{
			Model: completion.Model,
			Usage: models.TokenUsage{
				PromptTokens:     completion.Usage.PromptTokens,
				CompletionTokens: completion.Usage.CompletionTokens,
				TotalTokens:      completion.Usage.TotalTokens,
			},
		},
	}
	if err := s.db.WithContext(ctx).Create(plan).Error; err != nil {
		return nil, fmt.Errorf("failed to save diet plan: %w", err)
	}

	log.WithField("plan_id", plan.ID).Info("diet plan created")
	return &GeneratedPlan{PlanID: plan.ID, PlanText: plan.PlanText}, nil
}

// ListPlans returns the plans owned by userID, newest first.
func (s *DietService) ListPlans(ctx context.Context, userID uuid.UUID) ([]models.PersonalDietPlan, error) {
	var plans []models.PersonalDietPlan
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&plans).Error; err != nil {
		return nil, fmt.Errorf("failed to list diet plans: %w", err)
	}
	return plans, nil
}

// GetPlan returns one plan if it belongs to userID.
func (s *DietService) GetPlan(ctx context.Context, userID, planID uuid.UUID) (*models.PersonalDietPlan, error) {
	var plan models.PersonalDietPlan
	err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", planID, userID).First(&plan).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get diet plan: %w", err)
	}
	return &plan, nil
}
