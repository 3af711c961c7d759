package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartdiet-sl/smartdiet/backend/internal/models"
	"github.com/smartdiet-sl/smartdiet/backend/internal/service"
	"github.com/smartdiet-sl/smartdiet/backend/internal/testhelpers"
)

func TestTipToday(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	tips := service.NewTipService(db)
	ctx := context.Background()

	_, err := tips.Today(ctx, "")
	assert.ErrorIs(t, err, service.ErrNotFound)

	now := time.Now()
	var dated []*models.DailyTip
	for i, text := range []string{"Drink water", "Eat gotukola", "Choose red rice"} {
		tip := models.NewDailyTip()
		tip.Tip = models.LocalizedText{EN: text}
		tip.Category = "hydration"
		tip.Date = now.AddDate(0, 0, -(i + 1))
		require.NoError(t, db.Create(tip).Error)
		dated = append(dated, tip)
	}

	future := models.NewDailyTip()
	future.Tip = models.LocalizedText{EN: "Not yet"}
	future.Category = "hydration"
	future.Date = now.AddDate(0, 0, 3)
	require.NoError(t, db.Create(future).Error)

	inactive := models.NewDailyTip()
	inactive.Tip = models.LocalizedText{EN: "Retired"}
	inactive.Category = "hydration"
	inactive.Date = now.AddDate(0, 0, -10)
	require.NoError(t, db.Create(inactive).Error)
	require.NoError(t, db.Model(inactive).Update("is_active", false).Error)

	today, err := tips.Today(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, dated[time.Now().YearDay()%len(dated)].ID, today.ID)

	_, err = tips.Today(ctx, "cooking-tip")
	assert.ErrorIs(t, err, service.ErrNotFound)

	listed, err := tips.ListTips(ctx, "hydration")
	require.NoError(t, err)
	assert.Len(t, listed, 4)
}
