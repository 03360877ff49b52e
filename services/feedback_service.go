package services

import (
	"context"
	"errors"

	"eventify.link/models"
	"eventify.link/pkg/apperrors"
	"eventify.link/pkg/queryparams"
	"eventify.link/repositories"
)

// FeedbackService özel servis hataları
var (
	ErrFeedbackNotFound        = apperrors.NotFound("geri bildirim bulunamadı")
	ErrFeedbackCommentRequired = apperrors.BadRequest("yorum alanı zorunludur")
)

// feedbackFilterFields listeleme uçlarında kabul edilen filtre alanları.
var feedbackFilterFields = []string{"eventId", "userId"}

// IFeedbackService geri bildirim işlemleri için arayüz.
type IFeedbackService interface {
	CreateFeedback(ctx context.Context, eventID uint, comment string, userID uint) (*models.Feedback, error)
	GetFeedbacks(ctx context.Context, params queryparams.ListParams) ([]models.Feedback, error)
	GetFeedbackByID(ctx context.Context, id uint) (*models.Feedback, error)
	DeleteFeedback(ctx context.Context, id uint, userID uint) error
}

// FeedbackService IFeedbackService arayüzünü uygular.
type FeedbackService struct {
	repo         repositories.IFeedbackRepository
	eventService IEventService
}

// NewFeedbackService yeni bir FeedbackService örneği oluşturur.
func NewFeedbackService(repo repositories.IFeedbackRepository, eventService IEventService) IFeedbackService {
	return &FeedbackService{repo: repo, eventService: eventService}
}

func (s *FeedbackService) CreateFeedback(ctx context.Context, eventID uint, comment string, userID uint) (*models.Feedback, error) {
	if comment == "" {
		return nil, ErrFeedbackCommentRequired
	}
	if _, err := s.eventService.GetEventByID(ctx, eventID, userID); err != nil {
		return nil, err
	}
	feedback := &models.Feedback{EventID: eventID, UserID: userID, Comment: comment}
	if err := s.repo.Create(ctx, feedback); err != nil {
		return nil, apperrors.Internal(err)
	}
	return feedback, nil
}

func (s *FeedbackService) GetFeedbacks(ctx context.Context, params queryparams.ListParams) ([]models.Feedback, error) {
	if !params.IsFieldAllowed(feedbackFilterFields) {
		return nil, apperrors.BadRequest("geçersiz filtre parametresi")
	}
	feedbacks, err := s.repo.FindAll(ctx, params)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return feedbacks, nil
}

func (s *FeedbackService) GetFeedbackByID(ctx context.Context, id uint) (*models.Feedback, error) {
	feedback, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrFeedbackNotFound
		}
		return nil, apperrors.Internal(err)
	}
	return feedback, nil
}

// DeleteFeedback geri bildirimi siler; yalnızca yazarı silebilir.
func (s *FeedbackService) DeleteFeedback(ctx context.Context, id uint, userID uint) error {
	feedback, err := s.GetFeedbackByID(ctx, id)
	if err != nil {
		return err
	}
	if feedback.UserID != userID {
		return apperrors.Forbidden("bu işlem için yetkiniz yok")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apperrors.Internal(err)
	}
	return nil
}

var _ IFeedbackService = (*FeedbackService)(nil)
