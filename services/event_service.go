package services

import (
	"context"
	"errors"
	"time"

	calendar "google.golang.org/api/calendar/v3"

	"eventify.link/models"
	"eventify.link/pkg/apperrors"
	"eventify.link/pkg/queryparams"
	"eventify.link/repositories"
)

// EventService özel servis hataları
var (
	ErrEventNotFound      = apperrors.NotFound("etkinlik bulunamadı")
	ErrEventTitleRequired = apperrors.BadRequest("etkinlik başlığı zorunludur")
	ErrEventDatesInvalid  = apperrors.BadRequest("başlangıç zamanı bitiş zamanından önce olmalıdır")
)

// eventFilterFields listeleme uçlarında kabul edilen filtre alanları.
var eventFilterFields = []string{"title", "startDate"}

// EventMediaPatch etkinliğe eklenen medya bağlantılarını taşır.
type EventMediaPatch struct {
	Images    []string `json:"images"`
	Videos    []string `json:"videos"`
	Documents []string `json:"documents"`
}

// EventPatch etkinlik güncellemesinde değişebilecek alanları taşır.
// nil alanlar dokunulmadan bırakılır; ilişkiler asla ezilmez.
type EventPatch struct {
	Title       *string             `json:"title"`
	Description *string             `json:"description"`
	Location    *string             `json:"location"`
	StartDate   *time.Time          `json:"startDate"`
	EndDate     *time.Time          `json:"endDate"`
	Status      *models.EventStatus `json:"status"`
	Media       *EventMediaPatch    `json:"media"`
}

// IEventService etkinlik işlemleri için arayüz.
type IEventService interface {
	CreateEvent(ctx context.Context, event *models.Event, userID uint) (*models.Event, error)
	UpdateEvent(ctx context.Context, eventID uint, patch EventPatch) (*models.Event, error)
	GetEvents(ctx context.Context, params queryparams.ListParams, userID uint) ([]models.Event, error)
	GetEventByID(ctx context.Context, eventID uint, userID uint) (*models.Event, error)
	GetEventByCalendarID(ctx context.Context, calendarID string) (*models.Event, error)
	DeleteEvent(ctx context.Context, eventID uint) error
}

// EventService IEventService arayüzünü uygular. Takvim senkronizasyonu
// organizatör adına CalendarService'e devredilir ve her zaman en-iyi-çaba
// esasıyla çalışır: yerel yazma başarılıysa işlem başarılıdır.
type EventService struct {
	repo            repositories.IEventRepository
	mediaRepo       repositories.IEventMediaRepository
	calendarService ICalendarService
}

// NewEventService yeni bir EventService örneği oluşturur.
func NewEventService(repo repositories.IEventRepository, mediaRepo repositories.IEventMediaRepository, calendarService ICalendarService) IEventService {
	return &EventService{repo: repo, mediaRepo: mediaRepo, calendarService: calendarService}
}

// CreateEvent etkinliği kaydeder, organizatörün takviminde oluşturur ve
// harici kimliği geri yazar. Takvim oluşturma başarısız olursa CalendarID
// boş kalır; sonraki senkronizasyon yeniden dener.
func (s *EventService) CreateEvent(ctx context.Context, event *models.Event, userID uint) (*models.Event, error) {
	if event == nil || event.Title == "" {
		return nil, ErrEventTitleRequired
	}
	if event.StartDate != nil && event.EndDate != nil && !event.StartDate.Before(*event.EndDate) {
		return nil, ErrEventDatesInvalid
	}
	event.UserID = userID
	if event.Status == "" {
		event.Status = models.EventStatusConfirmed
	}
	if err := s.repo.Create(ctx, event); err != nil {
		return nil, apperrors.Internal(err)
	}

	if calendarID := s.calendarService.CreateEvent(ctx, userID, event, nil); calendarID != "" {
		event.CalendarID = calendarID
		if err := s.repo.Update(ctx, event); err != nil {
			return nil, apperrors.Internal(err)
		}
	}
	return event, nil
}

// UpdateEvent patch'i yüklü kaydın üzerine alan alan işler, medyayı
// günceller ve değişikliği takvime iter.
func (s *EventService) UpdateEvent(ctx context.Context, eventID uint, patch EventPatch) (*models.Event, error) {
	event, err := s.repo.FindByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, apperrors.Internal(err)
	}

	if patch.Title != nil {
		event.Title = *patch.Title
	}
	if patch.Description != nil {
		event.Description = *patch.Description
	}
	if patch.Location != nil {
		event.Location = *patch.Location
	}
	if patch.StartDate != nil {
		event.StartDate = patch.StartDate
	}
	if patch.EndDate != nil {
		event.EndDate = patch.EndDate
	}
	if patch.Status != nil {
		event.Status = *patch.Status
	}
	if event.StartDate != nil && event.EndDate != nil && !event.StartDate.Before(*event.EndDate) {
		return nil, ErrEventDatesInvalid
	}
	if err := s.repo.Update(ctx, event); err != nil {
		return nil, apperrors.Internal(err)
	}

	if patch.Media != nil {
		media := &models.EventMedia{
			EventID:   event.ID,
			Images:    patch.Media.Images,
			Videos:    patch.Media.Videos,
			Documents: patch.Media.Documents,
		}
		if err := s.mediaRepo.Upsert(ctx, media); err != nil {
			return nil, apperrors.Internal(err)
		}
		event.Media = media
	}

	// En-iyi-çaba: takvimdeki karşılığı güncelle.
	s.pushToCalendar(ctx, event)

	return event, nil
}

// pushToCalendar yerel etkinliğin alanlarını harici kayda yazar.
// Katılımcı listesine dokunmaz; o liste davet servisi tarafından yönetilir.
func (s *EventService) pushToCalendar(ctx context.Context, event *models.Event) {
	if event.CalendarID == "" {
		return
	}
	data := s.calendarService.GetEvent(ctx, event.UserID, event.CalendarID)
	if data == nil {
		return
	}
	data.Summary = event.Title
	data.Description = event.Description
	data.Location = event.Location
	data.Status = models.CalendarStatusByEventStatus(event.Status)
	if event.StartDate != nil {
		data.Start = &calendar.EventDateTime{DateTime: event.StartDate.Format(time.RFC3339), TimeZone: "UTC"}
	}
	if event.EndDate != nil {
		data.End = &calendar.EventDateTime{DateTime: event.EndDate.Format(time.RFC3339), TimeZone: "UTC"}
	}
	s.calendarService.UpdateEvent(ctx, event.UserID, event.CalendarID, data)
}

func (s *EventService) GetEvents(ctx context.Context, params queryparams.ListParams, userID uint) ([]models.Event, error) {
	if !params.IsFieldAllowed(eventFilterFields) {
		return nil, apperrors.BadRequest("geçersiz filtre parametresi")
	}
	events, err := s.repo.FindAllForUser(ctx, userID, params)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return events, nil
}

// GetEventByID etkinliği yalnızca organizatörü veya davetlisi olan
// kullanıcıya verir; diğerleri için NotFound.
func (s *EventService) GetEventByID(ctx context.Context, eventID uint, userID uint) (*models.Event, error) {
	event, err := s.repo.FindByIDForUser(ctx, eventID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, apperrors.Internal(err)
	}
	return event, nil
}

func (s *EventService) GetEventByCalendarID(ctx context.Context, calendarID string) (*models.Event, error) {
	event, err := s.repo.FindByCalendarID(ctx, calendarID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, apperrors.Internal(err)
	}
	return event, nil
}

// DeleteEvent önce takvimdeki karşılığı (en-iyi-çaba) sonra yerel kaydı siler.
func (s *EventService) DeleteEvent(ctx context.Context, eventID uint) error {
	event, err := s.repo.FindByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrEventNotFound
		}
		return apperrors.Internal(err)
	}
	if event.CalendarID != "" {
		s.calendarService.DeleteEvent(ctx, event.UserID, event.CalendarID)
	}
	if err := s.repo.Delete(ctx, eventID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrEventNotFound
		}
		return apperrors.Internal(err)
	}
	return nil
}

var _ IEventService = (*EventService)(nil)
