package migrations

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"eventify.link/configs/configslog"
	"eventify.link/models"
)

func MigrateTokensTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating tokens table...")
	err := db.AutoMigrate(&models.Token{})
	if err != nil {
		configslog.Log.Error("Failed to migrate tokens table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Tokens table migrated successfully")
	return nil
}
