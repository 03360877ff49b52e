package main

import (
	"flag"

	"go.uber.org/zap"

	"eventify.link/configs"
	"eventify.link/configs/configslog"
	"eventify.link/database"
)

func main() {
	configslog.InitLogger()
	defer configslog.Sync()

	migrateFlag := flag.Bool("migrate", false, "Veritabanı migrasyonlarını çalıştır")
	flag.Parse()

	cfg := configs.LoadConfig()
	db, err := configs.ConnectDB(cfg.DatabaseDSN)
	if err != nil {
		configslog.Log.Fatal("Veritabanı bağlantısı kurulamadı", zap.Error(err))
	}

	configslog.SLog.Info("Veritabanı başlatma işlemi çalıştırılıyor...")
	database.Initialize(db, *migrateFlag)
	configslog.SLog.Info("Veritabanı başlatma işlemi tamamlandı.")
}
