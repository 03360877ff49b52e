package migrations

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"eventify.link/configs/configslog"
	"eventify.link/models"
)

func MigrateEventsTables(db *gorm.DB) error {
	configslog.SLog.Info("Migrating events & event_media tables...")
	err := db.AutoMigrate(&models.Event{}, &models.EventMedia{})
	if err != nil {
		configslog.Log.Error("Failed to migrate events & event_media tables", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Events & event_media tables migrated successfully")
	return nil
}
