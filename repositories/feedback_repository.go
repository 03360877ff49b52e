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

// feedbackColumns dış filtre alanlarını veritabanı sütunlarına eşler.
var feedbackColumns = map[string]string{
	"eventId": "feedbacks.event_id",
	"userId":  "feedbacks.user_id",
}

// IFeedbackRepository geri bildirim veritabanı işlemleri için arayüz.
type IFeedbackRepository interface {
	Create(ctx context.Context, feedback *models.Feedback) error
	FindByID(ctx context.Context, id uint) (*models.Feedback, error)
	FindAll(ctx context.Context, params queryparams.ListParams) ([]models.Feedback, error)
	Delete(ctx context.Context, id uint) error
}

// FeedbackRepository IFeedbackRepository arayüzünü uygular.
type FeedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository yeni bir FeedbackRepository örneği oluşturur.
func NewFeedbackRepository(db *gorm.DB) IFeedbackRepository {
	return &FeedbackRepository{db: db}
}

func (r *FeedbackRepository) Create(ctx context.Context, feedback *models.Feedback) error {
	if feedback == nil || feedback.EventID == 0 || feedback.UserID == 0 {
		return errors.New("geçersiz geri bildirim verisi")
	}
	return r.db.WithContext(ctx).Create(feedback).Error
}

func (r *FeedbackRepository) FindByID(ctx context.Context, id uint) (*models.Feedback, error) {
	if id == 0 {
		return nil, ErrNotFound
	}
	var feedback models.Feedback
	err := r.db.WithContext(ctx).First(&feedback, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("FeedbackRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &feedback, nil
}

func (r *FeedbackRepository) FindAll(ctx context.Context, params queryparams.ListParams) ([]models.Feedback, error) {
	var feedbacks []models.Feedback
	query := params.Apply(r.db.WithContext(ctx).Model(&models.Feedback{}), feedbackColumns)
	err := query.Find(&feedbacks).Error
	if err != nil {
		configslog.Log.Error("FeedbackRepository.FindAll: DB error", zap.Error(err))
		return nil, err
	}
	return feedbacks, nil
}

func (r *FeedbackRepository) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return ErrNotFound
	}
	result := r.db.WithContext(ctx).Delete(&models.Feedback{}, id)
	if result.Error != nil {
		configslog.Log.Error("FeedbackRepository.Delete: DB error", zap.Uint("id", id), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ IFeedbackRepository = (*FeedbackRepository)(nil)
