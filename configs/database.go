package configs

import (
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"eventify.link/configs/configslog"
)

var db *gorm.DB

// ConnectDB PostgreSQL bağlantısını kurar ve global örneği ayarlar.
func ConnectDB(dsn string) (*gorm.DB, error) {
	gormLogLevel := logger.Warn

	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(gormLogLevel),
	})
	if err != nil {
		configslog.Log.Error("Veritabanı bağlantısı kurulamadı", zap.Error(err))
		return nil, err
	}
	db = conn
	configslog.SLog.Info("Veritabanı bağlantısı kuruldu")
	return conn, nil
}

// GetDB kurulmuş veritabanı bağlantısını döndürür.
func GetDB() *gorm.DB {
	return db
}
