package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/smartdiet-sl/smartdiet/backend/internal/models"
)

// TipService serves daily nutrition tips.
type TipService struct {
	*CRUDService[models.DailyTip, *models.DailyTip]
	now func() time.Time
}

func NewTipService(db *gorm.DB) *TipService {
	return &TipService{
		CRUDService: NewCRUDService[models.DailyTip](db, "daily tip", models.NewDailyTip),
		now:         time.Now,
	}
}

// ListTips returns active tips, optionally in one category, newest first.
func (s *TipService) ListTips(ctx context.Context, category string) ([]models.DailyTip, error) {
	return s.List(ctx, func(q *gorm.DB) *gorm.DB {
		q = q.Where("is_active = ?", true)
		if category != "" {
			q = q.Where("category = ?", category)
		}
		return q.Order("date DESC")
	})
}

// Today picks the tip of the day: among active tips dated up to now, the
// one at day-of-year modulo their count. No tips gives ErrNotFound.
func (s *TipService) Today(ctx context.Context, category string) (*models.DailyTip, error) {
	now := s.now()
	tips, err := s.List(ctx, func(q *gorm.DB) *gorm.DB {
		q = q.Where("is_active = ? AND date <= ?", true, now)
		if category != "" {
			q = q.Where("category = ?", category)
		}
		return q.Order("date DESC").Order("id ASC")
	})
	if err != nil {
		return nil, err
	}
	if len(tips) == 0 {
		return nil, fmt.Errorf("no tips available: %w", ErrNotFound)
	}
	return &tips[now.YearDay()%len(tips)], nil
}
