package migrations

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"eventify.link/configs/configslog"
	"eventify.link/models"
)

func MigrateFeedbacksTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating feedbacks table...")
	err := db.AutoMigrate(&models.Feedback{})
	if err != nil {
		configslog.Log.Error("Failed to migrate feedbacks table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Feedbacks table migrated successfully")
	return nil
}
