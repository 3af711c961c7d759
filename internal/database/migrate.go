package database

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/smartdiet-sl/smartdiet/backend/internal/models"
)

// Models lists every persisted entity in migration order.
func Models() []interface{} {
	return []interface{}{
		&models.User{},
		&models.TraditionalFood{},
		&models.SriLankanPlate{},
		&models.DietPlan{},
		&models.PersonalDietPlan{},
		&models.DailyTip{},
		&models.MealLog{},
		&models.Product{},
		&models.Order{},
	}
}

// RunMigrations creates or updates the schema for every model.
func RunMigrations(db *gorm.DB) error {
	for _, model := range Models() {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}
	logrus.WithField("dialect", db.Dialector.Name()).Info("Database schema is up to date")
	return nil
}
