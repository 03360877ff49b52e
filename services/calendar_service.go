package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"eventify.link/configs/configslog"
	"eventify.link/models"
)

// Takvim senkronizasyonu yerel duruma göre her zaman ikincildir: bu
// servisteki hiçbir çağrı ham taşıma hatasını yukarı taşımaz. Başarısız
// çağrılar loglanır ve boş sonuç döner; 401 alan çağrılar kimlik bilgisi
// yenilendikten sonra toplam 3 denemeye kadar tekrarlanır.

const (
	primaryCalendarID   = "primary"
	calendarMaxAttempts = 3
)

// ICalendarService harici takvim sağlayıcısını saran arayüz.
type ICalendarService interface {
	CreateEvent(ctx context.Context, userID uint, event *models.Event, attendeeEmails []string) string
	GetEvent(ctx context.Context, userID uint, calendarEventID string) *calendar.Event
	UpdateEvent(ctx context.Context, userID uint, calendarEventID string, data *calendar.Event)
	DeleteEvent(ctx context.Context, userID uint, calendarEventID string)
	RefreshToken(ctx context.Context, userID uint)
}

// CalendarService Google Calendar API'si üzerinde ICalendarService uygular.
type CalendarService struct {
	oauthConfig    *oauth2.Config
	tokenService   ITokenService
	webhookBaseURL string
}

// NewCalendarService yeni bir CalendarService örneği oluşturur.
func NewCalendarService(oauthConfig *oauth2.Config, tokenService ITokenService, webhookBaseURL string) ICalendarService {
	return &CalendarService{
		oauthConfig:    oauthConfig,
		tokenService:   tokenService,
		webhookBaseURL: webhookBaseURL,
	}
}

// service kullanıcının erişim token'ı ile yetkilendirilmiş bir Calendar
// istemcisi kurar.
func (s *CalendarService) service(ctx context.Context, userID uint) (*calendar.Service, error) {
	token, err := s.tokenService.GetToken(ctx, userID)
	if err != nil {
		return nil, err
	}
	client := s.oauthConfig.Client(ctx, &oauth2.Token{AccessToken: token.AccessToken})
	return calendar.NewService(ctx, option.WithHTTPClient(client))
}

// withAuthRetry verilen çağrıyı çalıştırır; 401 aldığında kimlik bilgisini
// yeniler ve tekrar dener. Deneme üst sınırı aşılırsa son hata döner.
func (s *CalendarService) withAuthRetry(ctx context.Context, userID uint, op string, call func(svc *calendar.Service) error) error {
	backoff := retry.WithMaxRetries(calendarMaxAttempts-1, retry.NewConstant(100*time.Millisecond))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		svc, err := s.service(ctx, userID)
		if err != nil {
			return err
		}
		err = call(svc)
		if err == nil {
			return nil
		}
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) && apiErr.Code == 401 {
			configslog.Log.Warn("Takvim çağrısı 401 aldı, kimlik bilgisi yenilenip tekrar denenecek",
				zap.String("op", op), zap.Uint("userID", userID))
			s.RefreshToken(ctx, userID)
			return retry.RetryableError(err)
		}
		return err
	})
}

// RefreshToken kullanıcının refresh token'ı ile yeni bir erişim token'ı
// alır ve kaydı değiştirir.
func (s *CalendarService) RefreshToken(ctx context.Context, userID uint) {
	existing, err := s.tokenService.GetToken(ctx, userID)
	if err != nil {
		configslog.Log.Error("RefreshToken: kayıtlı kimlik bilgisi okunamadı", zap.Uint("userID", userID), zap.Error(err))
		return
	}
	source := s.oauthConfig.TokenSource(ctx, &oauth2.Token{RefreshToken: existing.RefreshToken})
	fresh, err := source.Token()
	if err != nil {
		configslog.Log.Error("RefreshToken: token yenilenemedi", zap.Uint("userID", userID), zap.Error(err))
		return
	}
	refreshToken := fresh.RefreshToken
	if refreshToken == "" {
		// Google yenileme cevabında refresh token dönmeyebilir.
		refreshToken = existing.RefreshToken
	}
	if _, err := s.tokenService.CreateToken(ctx, userID, fresh.AccessToken, refreshToken); err != nil {
		configslog.Log.Error("RefreshToken: yeni kimlik bilgisi kaydedilemedi", zap.Uint("userID", userID), zap.Error(err))
	}
}

// CreateEvent yerel etkinliği birincil takvimde oluşturur, webhook kanalına
// abone olur ve harici etkinlik kimliğini döndürür. Başarısızlıkta boş
// string döner.
func (s *CalendarService) CreateEvent(ctx context.Context, userID uint, event *models.Event, attendeeEmails []string) string {
	attendees := make([]*calendar.EventAttendee, 0, len(attendeeEmails))
	for _, email := range attendeeEmails {
		attendees = append(attendees, &calendar.EventAttendee{
			Email:          email,
			ResponseStatus: "needsAction",
		})
	}

	body := &calendar.Event{
		Summary:     event.Title,
		Description: event.Description,
		Location:    event.Location,
		Attendees:   attendees,
		Reminders: &calendar.EventReminders{
			UseDefault: false,
			Overrides: []*calendar.EventReminder{
				{Method: "email", Minutes: 10},
				{Method: "popup", Minutes: 10},
			},
			ForceSendFields: []string{"UseDefault"},
		},
	}
	if event.StartDate != nil {
		body.Start = &calendar.EventDateTime{DateTime: event.StartDate.Format(time.RFC3339), TimeZone: "UTC"}
	}
	if event.EndDate != nil {
		body.End = &calendar.EventDateTime{DateTime: event.EndDate.Format(time.RFC3339), TimeZone: "UTC"}
	}

	var created *calendar.Event
	err := s.withAuthRetry(ctx, userID, "CreateEvent", func(svc *calendar.Service) error {
		res, err := svc.Events.Insert(primaryCalendarID, body).Context(ctx).Do()
		if err != nil {
			return err
		}
		created = res
		return nil
	})
	if err != nil {
		configslog.Log.Error("CreateEvent: takvim etkinliği oluşturulamadı", zap.Uint("userID", userID), zap.Error(err))
		return ""
	}

	s.subscribeToWebhook(ctx, userID, created.Id)
	return created.Id
}

// subscribeToWebhook takvim değişiklik bildirimleri için kanal kaydı yapar.
func (s *CalendarService) subscribeToWebhook(ctx context.Context, userID uint, calendarEventID string) {
	channel := &calendar.Channel{
		Id:      uuid.NewString(),
		Type:    "web_hook",
		Address: fmt.Sprintf("%s/auth/webhook/calendar/?eventId=%s", s.webhookBaseURL, calendarEventID),
	}
	err := s.withAuthRetry(ctx, userID, "Watch", func(svc *calendar.Service) error {
		_, err := svc.Events.Watch(primaryCalendarID, channel).Context(ctx).Do()
		return err
	})
	if err != nil {
		configslog.Log.Error("Webhook aboneliği kurulamadı", zap.String("calendarEventID", calendarEventID), zap.Error(err))
	}
}

// GetEvent harici etkinlik verisini getirir; başarısızlıkta nil döner.
func (s *CalendarService) GetEvent(ctx context.Context, userID uint, calendarEventID string) *calendar.Event {
	if calendarEventID == "" {
		return nil
	}
	var data *calendar.Event
	err := s.withAuthRetry(ctx, userID, "GetEvent", func(svc *calendar.Service) error {
		res, err := svc.Events.Get(primaryCalendarID, calendarEventID).Context(ctx).Do()
		if err != nil {
			return err
		}
		data = res
		return nil
	})
	if err != nil {
		configslog.Log.Error("GetEvent: takvim etkinliği okunamadı", zap.String("calendarEventID", calendarEventID), zap.Error(err))
		return nil
	}
	return data
}

// UpdateEvent harici etkinliği verilen gövdeyle günceller.
func (s *CalendarService) UpdateEvent(ctx context.Context, userID uint, calendarEventID string, data *calendar.Event) {
	if calendarEventID == "" || data == nil {
		return
	}
	err := s.withAuthRetry(ctx, userID, "UpdateEvent", func(svc *calendar.Service) error {
		_, err := svc.Events.Update(primaryCalendarID, calendarEventID, data).Context(ctx).Do()
		return err
	})
	if err != nil {
		configslog.Log.Error("UpdateEvent: takvim etkinliği güncellenemedi", zap.String("calendarEventID", calendarEventID), zap.Error(err))
	}
}

// DeleteEvent harici etkinliği siler.
func (s *CalendarService) DeleteEvent(ctx context.Context, userID uint, calendarEventID string) {
	if calendarEventID == "" {
		return
	}
	err := s.withAuthRetry(ctx, userID, "DeleteEvent", func(svc *calendar.Service) error {
		return svc.Events.Delete(primaryCalendarID, calendarEventID).Context(ctx).Do()
	})
	if err != nil {
		configslog.Log.Error("DeleteEvent: takvim etkinliği silinemedi", zap.String("calendarEventID", calendarEventID), zap.Error(err))
	}
}

var _ ICalendarService = (*CalendarService)(nil)
