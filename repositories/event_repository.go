package repositories

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"eventify.link/configs/configslog"
	"eventify.link/models"
	"eventify.link/pkg/queryparams"
)

// eventColumns dış filtre alanlarını veritabanı sütunlarına eşler.
var eventColumns = map[string]string{
	"title":     "events.title",
	"startDate": "events.start_date",
}

// IEventRepository etkinlik veritabanı işlemleri için arayüz.
type IEventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	FindByID(ctx context.Context, id uint) (*models.Event, error)
	// FindByIDForUser etkinliği yalnızca organizatörü veya davetlisi olan
	// kullanıcı için bulur; başkaları için ErrNotFound döner.
	FindByIDForUser(ctx context.Context, id uint, userID uint) (*models.Event, error)
	FindByCalendarID(ctx context.Context, calendarID string) (*models.Event, error)
	FindAllForUser(ctx context.Context, userID uint, params queryparams.ListParams) ([]models.Event, error)
	Update(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id uint) error
}

// EventRepository IEventRepository arayüzünü uygular.
type EventRepository struct {
	db *gorm.DB
}

// NewEventRepository yeni bir EventRepository örneği oluşturur.
func NewEventRepository(db *gorm.DB) IEventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	if event == nil || event.UserID == 0 {
		return errors.New("organizatörsüz etkinlik oluşturulamaz")
	}
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *EventRepository) FindByID(ctx context.Context, id uint) (*models.Event, error) {
	if id == 0 {
		return nil, ErrNotFound
	}
	var event models.Event
	err := r.db.WithContext(ctx).Preload("Media").First(&event, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("EventRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &event, nil
}

func (r *EventRepository) FindByIDForUser(ctx context.Context, id uint, userID uint) (*models.Event, error) {
	if id == 0 || userID == 0 {
		return nil, ErrNotFound
	}
	var event models.Event
	err := r.db.WithContext(ctx).Preload("Media").
		Where("events.id = ?", id).
		Where("events.user_id = ? OR EXISTS (SELECT 1 FROM invitations WHERE invitations.event_id = events.id AND invitations.user_id = ?)", userID, userID).
		First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("EventRepository.FindByIDForUser: DB error", zap.Uint("id", id), zap.Uint("userID", userID), zap.Error(err))
		return nil, err
	}
	return &event, nil
}

func (r *EventRepository) FindByCalendarID(ctx context.Context, calendarID string) (*models.Event, error) {
	if calendarID == "" {
		return nil, ErrNotFound
	}
	var event models.Event
	err := r.db.WithContext(ctx).Where("calendar_id = ?", calendarID).First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("EventRepository.FindByCalendarID: DB error", zap.String("calendarID", calendarID), zap.Error(err))
		return nil, err
	}
	return &event, nil
}

func (r *EventRepository) FindAllForUser(ctx context.Context, userID uint, params queryparams.ListParams) ([]models.Event, error) {
	if userID == 0 {
		return nil, errors.New("geçersiz kullanıcı ID")
	}
	var events []models.Event
	query := r.db.WithContext(ctx).Model(&models.Event{}).
		Where("events.user_id = ? OR EXISTS (SELECT 1 FROM invitations WHERE invitations.event_id = events.id AND invitations.user_id = ?)", userID, userID)
	query = params.Apply(query, eventColumns)
	err := query.Preload("Media").Find(&events).Error
	if err != nil {
		configslog.Log.Error("EventRepository.FindAllForUser: DB error", zap.Uint("userID", userID), zap.Error(err))
		return nil, err
	}
	return events, nil
}

func (r *EventRepository) Update(ctx context.Context, event *models.Event) error {
	if event == nil || event.ID == 0 {
		return errors.New("güncellenecek etkinlik geçerli değil")
	}
	return r.db.WithContext(ctx).Save(event).Error
}

func (r *EventRepository) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return ErrNotFound
	}
	result := r.db.WithContext(ctx).Delete(&models.Event{}, id)
	if result.Error != nil {
		configslog.Log.Error("EventRepository.Delete: DB error", zap.Uint("id", id), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ IEventRepository = (*EventRepository)(nil)
