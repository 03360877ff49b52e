package services

import (
	"context"
	"errors"

	"eventify.link/models"
	"eventify.link/pkg/apperrors"
	"eventify.link/repositories"
)

// NotificationServiceError özel servis hataları
var (
	ErrNotificationNotFound = apperrors.NotFound("bildirim bulunamadı")
)

// INotificationService bildirim işlemleri için arayüz.
type INotificationService interface {
	CreateNotification(ctx context.Context, userID uint, message string) (*models.Notification, error)
	GetNotifications(ctx context.Context, userID uint) ([]models.Notification, error)
	GetNotificationByID(ctx context.Context, id uint, userID uint) (*models.Notification, error)
	MarkRead(ctx context.Context, id uint, userID uint, read bool) (*models.Notification, error)
}

// NotificationService INotificationService arayüzünü uygular.
// Bildirim akışı eklemeli çalışır: kayıtlar davet yaşam döngüsünün yan
// etkisi olarak oluşturulur, sonradan yalnızca okundu bilgisi değişir.
type NotificationService struct {
	repo repositories.INotificationRepository
}

// NewNotificationService yeni bir NotificationService örneği oluşturur.
func NewNotificationService(repo repositories.INotificationRepository) INotificationService {
	return &NotificationService{repo: repo}
}

func (s *NotificationService) CreateNotification(ctx context.Context, userID uint, message string) (*models.Notification, error) {
	notification := &models.Notification{UserID: userID, Message: message}
	if err := s.repo.Create(ctx, notification); err != nil {
		return nil, apperrors.Internal(err)
	}
	return notification, nil
}

func (s *NotificationService) GetNotifications(ctx context.Context, userID uint) ([]models.Notification, error) {
	notifications, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return notifications, nil
}

func (s *NotificationService) GetNotificationByID(ctx context.Context, id uint, userID uint) (*models.Notification, error) {
	notification, err := s.repo.FindByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, apperrors.Internal(err)
	}
	return notification, nil
}

// MarkRead bildirimi okundu/okunmadı olarak işaretler. Yalnızca alıcı
// kendi bildirimini güncelleyebilir; sahiplik kontrolü kayıt aramasıyla
// birleşiktir.
func (s *NotificationService) MarkRead(ctx context.Context, id uint, userID uint, read bool) (*models.Notification, error) {
	notification, err := s.GetNotificationByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	notification.Read = read
	if err := s.repo.Update(ctx, notification); err != nil {
		return nil, apperrors.Internal(err)
	}
	return notification, nil
}

var _ INotificationService = (*NotificationService)(nil)
