package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"eventify.link/models"
)

// IEventMediaRepository etkinlik medyası için arayüz.
type IEventMediaRepository interface {
	Upsert(ctx context.Context, media *models.EventMedia) error
	FindByEventID(ctx context.Context, eventID uint) (*models.EventMedia, error)
}

// EventMediaRepository IEventMediaRepository arayüzünü uygular.
type EventMediaRepository struct {
	db *gorm.DB
}

// NewEventMediaRepository yeni bir EventMediaRepository örneği oluşturur.
func NewEventMediaRepository(db *gorm.DB) IEventMediaRepository {
	return &EventMediaRepository{db: db}
}

// Upsert etkinliğin medya kaydını oluşturur veya tamamen günceller.
// event_id başına tek satır vardır.
func (r *EventMediaRepository) Upsert(ctx context.Context, media *models.EventMedia) error {
	if media == nil || media.EventID == 0 {
		return errors.New("geçersiz medya verisi")
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "event_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"images", "videos", "documents", "updated_at"}),
	}).Create(media).Error
}

func (r *EventMediaRepository) FindByEventID(ctx context.Context, eventID uint) (*models.EventMedia, error) {
	if eventID == 0 {
		return nil, ErrNotFound
	}
	var media models.EventMedia
	err := r.db.WithContext(ctx).Where("event_id = ?", eventID).First(&media).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &media, nil
}

var _ IEventMediaRepository = (*EventMediaRepository)(nil)
