package services

import (
	"context"

	"go.uber.org/zap"

	"eventify.link/configs/configslog"
	"eventify.link/models"
)

// IWebhookService takvim sağlayıcısından gelen değişiklik bildirimlerini
// işler.
type IWebhookService interface {
	HandleCalendarWebhookEvent(ctx context.Context, calendarEventID string)
}

// WebhookService harici takvimdeki değişiklikleri yerel kayıtlara çeker.
//
// Bu yol kullanıcı kaynaklı cevaplama yolundan ayrıdır: durum yazma ve
// bildirim mantığını paylaşır ama takvime GERİ yazmaz. Sağlayıcı açısından
// teslimat at-ve-unut olduğundan işleyici hiçbir hatayı dışarı taşımaz;
// her şey loglanıp yutulur.
type WebhookService struct {
	eventService      IEventService
	userService       IUserService
	invitationService IInvitationService
	calendarService   ICalendarService
}

// NewWebhookService yeni bir WebhookService örneği oluşturur.
func NewWebhookService(
	eventService IEventService,
	userService IUserService,
	invitationService IInvitationService,
	calendarService ICalendarService,
) IWebhookService {
	return &WebhookService{
		eventService:      eventService,
		userService:       userService,
		invitationService: invitationService,
		calendarService:   calendarService,
	}
}

// HandleCalendarWebhookEvent harici etkinlik kimliğiyle yerel etkinliği
// bulur, güncel takvim verisini çeker ve durum farklarını yerel tarafa
// uygular. Yerel etkinlik yoksa sessizce döner; etkinlik yerelde silinmiş
// olabilir.
func (s *WebhookService) HandleCalendarWebhookEvent(ctx context.Context, calendarEventID string) {
	event, err := s.eventService.GetEventByCalendarID(ctx, calendarEventID)
	if err != nil {
		configslog.SLog.Infow("Webhook: harici kimliğe karşılık yerel etkinlik yok",
			"calendarEventID", calendarEventID)
		return
	}

	data := s.calendarService.GetEvent(ctx, event.UserID, calendarEventID)
	if data == nil {
		return
	}

	// Etkinlik durumu farkı.
	if mapped := models.EventStatusByCalendarStatus(data.Status); mapped != event.Status {
		patch := EventPatch{Status: &mapped}
		if _, err := s.eventService.UpdateEvent(ctx, event.ID, patch); err != nil {
			configslog.Log.Error("Webhook: etkinlik durumu güncellenemedi",
				zap.Uint("eventID", event.ID), zap.Error(err))
		}
	}

	// Katılımcı cevapları.
	for _, attendee := range data.Attendees {
		if attendee == nil || attendee.Email == "" {
			continue
		}
		user, err := s.userService.FindByEmail(ctx, attendee.Email)
		if err != nil {
			// Sistemde kaydı olmayan katılımcılar atlanır.
			continue
		}
		invitation, err := s.invitationService.GetInvitationByEventAndUser(ctx, event.ID, user.ID)
		if err != nil {
			continue
		}
		mapped := models.InvitationStatusByAttendeeResponse(attendee.ResponseStatus)
		if mapped == invitation.Status {
			continue
		}
		// Cevaplama yoluyla aynı adımlar, takvime geri yazmadan.
		if _, err := s.invitationService.ApplyExternalResponse(ctx, invitation.ID, mapped, user.ID); err != nil {
			configslog.Log.Error("Webhook: davet durumu güncellenemedi",
				zap.Uint("invitationID", invitation.ID), zap.Error(err))
		}
	}
}
