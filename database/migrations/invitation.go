package migrations

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"eventify.link/configs/configslog"
	"eventify.link/models"
)

func MigrateInvitationsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating invitations table...")
	err := db.AutoMigrate(&models.Invitation{})
	if err != nil {
		configslog.Log.Error("Failed to migrate invitations table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Invitations table migrated successfully")
	return nil
}
