package database

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"eventify.link/configs/configslog"
	"eventify.link/database/migrations"
)

func Initialize(db *gorm.DB, migrate bool) {
	if !migrate {
		configslog.SLog.Info("Migrate bayrağı belirtilmedi, işlem yapılmayacak.")
		return
	}

	tx := db.Begin()
	if tx.Error != nil {
		configslog.Log.Fatal("Veritabanı transaction başlatılamadı", zap.Error(tx.Error))
		return
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			configslog.Log.Fatal("Veritabanı başlatma işlemi başarısız oldu (panic)", zap.Any("panic_info", r))
		}
	}()

	configslog.SLog.Info("Veritabanı başlatma işlemi başlıyor...")

	if err := RunMigrationsInOrder(tx); err != nil {
		configslog.Log.Error("Migrasyon başarısız oldu", zap.Error(err))
		rbErr := tx.Rollback().Error
		if rbErr != nil && rbErr != gorm.ErrInvalidTransaction {
			configslog.Log.Error("Rollback sırasında ek hata oluştu", zap.Error(rbErr))
		}
		return
	}

	configslog.SLog.Info("İşlem commit ediliyor...")
	if err := tx.Commit().Error; err != nil {
		configslog.Log.Error("Commit başarısız oldu", zap.Error(err))
		return
	}

	configslog.SLog.Info("Veritabanı başlatma işlemi başarıyla tamamlandı")
}

func RunMigrationsInOrder(db *gorm.DB) error {
	configslog.SLog.Info("Migrasyonlar sırayla çalıştırılıyor...")

	configslog.SLog.Info(" -> User migrasyonları çalıştırılıyor...")
	if err := migrations.MigrateUsersTable(db); err != nil {
		configslog.Log.Error("Users tablosu migrasyonu başarısız oldu", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> User migrasyonları tamamlandı.")

	configslog.SLog.Info(" -> Token migrasyonları çalıştırılıyor...")
	if err := migrations.MigrateTokensTable(db); err != nil {
		configslog.Log.Error("Tokens tablosu migrasyonu başarısız oldu", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> Token migrasyonları tamamlandı.")

	configslog.SLog.Info(" -> Event migrasyonları çalıştırılıyor...")
	if err := migrations.MigrateEventsTables(db); err != nil {
		configslog.Log.Error("Events tabloları migrasyonu başarısız oldu", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> Event migrasyonları tamamlandı.")

	configslog.SLog.Info(" -> Invitation migrasyonları çalıştırılıyor...")
	if err := migrations.MigrateInvitationsTable(db); err != nil {
		configslog.Log.Error("Invitations tablosu migrasyonu başarısız oldu", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> Invitation migrasyonları tamamlandı.")

	configslog.SLog.Info(" -> Notification migrasyonları çalıştırılıyor...")
	if err := migrations.MigrateNotificationsTable(db); err != nil {
		configslog.Log.Error("Notifications tablosu migrasyonu başarısız oldu", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> Notification migrasyonları tamamlandı.")

	configslog.SLog.Info(" -> Feedback migrasyonları çalıştırılıyor...")
	if err := migrations.MigrateFeedbacksTable(db); err != nil {
		configslog.Log.Error("Feedbacks tablosu migrasyonu başarısız oldu", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> Feedback migrasyonları tamamlandı.")

	configslog.SLog.Info("Tüm migrasyonlar başarıyla çalıştırıldı.")
	return nil
}
