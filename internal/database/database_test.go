package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/smartdiet-sl/smartdiet/backend/internal/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := OpenSQLite("file::memory:", &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, RunMigrations(db))
	return db
}

func TestRunMigrationsCreatesTables(t *testing.T) {
	db := openTestDB(t)
	for _, model := range Models() {
		assert.True(t, db.Migrator().HasTable(model), "%T", model)
	}
	require.NoError(t, HealthCheck(context.Background(), db))
}

func TestSeedIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	first, err := Seed(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, len(seedFoods()), first.Foods)
	assert.Equal(t, len(seedProducts()), first.Products)
	assert.NotZero(t, first.Tips)

	second, err := Seed(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, SeedResult{}, *second)

	var foods []models.TraditionalFood
	require.NoError(t, db.Find(&foods).Error)
	assert.Len(t, foods, len(seedFoods()))
	for _, f := range foods {
		require.NoError(t, f.Validate(), f.Name.EN)
	}
}

func TestSeedKeepsFalseFlags(t *testing.T) {
	db := openTestDB(t)
	_, err := Seed(context.Background(), db)
	require.NoError(t, err)

	var fish models.TraditionalFood
	require.NoError(t, db.Where("name_en = ?", "Fish Ambul Thiyal").First(&fish).Error)
	assert.True(t, fish.IsCommon)
	assert.False(t, fish.IsAffordable)
}
