package repositories

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"eventify.link/configs/configslog"
	"eventify.link/models"
)

// INotificationRepository bildirim veritabanı işlemleri için arayüz.
type INotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	FindByID(ctx context.Context, id uint, userID uint) (*models.Notification, error)
	FindByUserID(ctx context.Context, userID uint) ([]models.Notification, error)
	Update(ctx context.Context, notification *models.Notification) error
}

// NotificationRepository INotificationRepository arayüzünü uygular.
type NotificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository yeni bir NotificationRepository örneği oluşturur.
func NewNotificationRepository(db *gorm.DB) INotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	if notification == nil || notification.UserID == 0 {
		return errors.New("alıcısız bildirim oluşturulamaz")
	}
	return r.db.WithContext(ctx).Create(notification).Error
}

func (r *NotificationRepository) FindByID(ctx context.Context, id uint, userID uint) (*models.Notification, error) {
	if id == 0 || userID == 0 {
		return nil, ErrNotFound
	}
	var notification models.Notification
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&notification).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("NotificationRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &notification, nil
}

func (r *NotificationRepository) FindByUserID(ctx context.Context, userID uint) ([]models.Notification, error) {
	if userID == 0 {
		return nil, errors.New("geçersiz kullanıcı ID")
	}
	var notifications []models.Notification
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id desc").Find(&notifications).Error
	if err != nil {
		configslog.Log.Error("NotificationRepository.FindByUserID: DB error", zap.Uint("userID", userID), zap.Error(err))
		return nil, err
	}
	return notifications, nil
}

func (r *NotificationRepository) Update(ctx context.Context, notification *models.Notification) error {
	if notification == nil || notification.ID == 0 {
		return errors.New("güncellenecek bildirim geçerli değil")
	}
	return r.db.WithContext(ctx).Save(notification).Error
}

var _ INotificationRepository = (*NotificationRepository)(nil)
