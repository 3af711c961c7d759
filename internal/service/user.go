package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/smartdiet-sl/smartdiet/backend/internal/models"
)

// UserService is the admin view over user accounts.
type UserService struct {
	*CRUDService[models.User, *models.User]
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{
		CRUDService: NewCRUDService[models.User](db, "user", nil),
	}
}

// ListUsers returns every user, newest first.
func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.List(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Order("created_at DESC")
	})
}

// ChangeRole sets the role of target. An actor can never change their own
// role, so the last admin cannot demote themselves.
func (s *UserService) ChangeRole(ctx context.Context, actorID, targetID uuid.UUID, role string) (*models.User, error) {
	if actorID == targetID {
		return nil, NewValidationError("role", "you cannot change your own role")
	}
	if !models.IsValidRole(role) {
		return nil, NewValidationError("role", "must be user or admin")
	}
	user, err := s.Get(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if err := s.DB(ctx).Model(user).Update("role", role).Error; err != nil {
		return nil, fmt.Errorf("failed to change role: %w", err)
	}
	user.Role = role
	return user, nil
}

// DeleteUser removes target. Admins cannot delete their own account here.
func (s *UserService) DeleteUser(ctx context.Context, actorID, targetID uuid.UUID) error {
	if actorID == targetID {
		return NewValidationError("id", "you cannot delete your own account")
	}
	return s.Delete(ctx, targetID)
}
