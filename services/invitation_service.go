package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	calendar "google.golang.org/api/calendar/v3"

	"eventify.link/configs/configslog"
	"eventify.link/models"
	"eventify.link/pkg/apperrors"
	"eventify.link/pkg/queryparams"
	"eventify.link/repositories"
)

// InvitationService özel servis hataları
var (
	ErrInvitationNotFound  = apperrors.NotFound("davet bulunamadı")
	ErrInvitationDuplicate = apperrors.Conflict("bu kullanıcı için zaten bir davet var")
	ErrCheckinNotAllowed   = apperrors.BadRequest("yalnızca kabul edilmiş veya belirsiz davetler giriş yapabilir")
	ErrAlreadyCheckedIn    = apperrors.BadRequest("zaten giriş yapılmış")
)

// invitationFilterFields listeleme uçlarında kabul edilen filtre alanları.
var invitationFilterFields = []string{"eventId", "userId"}

// InvitationInput davet oluşturma ve davetli kümesi güncelleme isteklerinin
// ortak gövdesi.
type InvitationInput struct {
	EventID      uint                `json:"eventId"`
	UserIDs      []uint              `json:"userIds"`
	RSVP         models.RSVPQuestion `json:"rsvp"`
	RSVPResponse models.RSVPResponse `json:"rsvpResponse"`
}

// IInvitationService davet işlemleri için arayüz.
type IInvitationService interface {
	CreateInvitations(ctx context.Context, input InvitationInput, userID uint) ([]models.Invitation, error)
	UpdateInvitationSet(ctx context.Context, input InvitationInput, userID uint) ([]models.Invitation, error)
	GetInvitations(ctx context.Context, params queryparams.ListParams, userID uint) ([]models.Invitation, error)
	GetInvitationByID(ctx context.Context, id uint, userID uint) (*models.Invitation, error)
	GetInvitationByEventAndUser(ctx context.Context, eventID uint, userID uint) (*models.Invitation, error)
	RespondToInvitation(ctx context.Context, id uint, status models.InvitationStatus, userID uint) (*models.Invitation, error)
	// ApplyExternalResponse webhook yolundan gelen durum değişikliğini
	// RespondToInvitation ile aynı yerel adımlardan geçirir ama takvime
	// geri yazmaz; aksi halde iki taraf birbirini sonsuza dek tetikler.
	ApplyExternalResponse(ctx context.Context, id uint, status models.InvitationStatus, userID uint) (*models.Invitation, error)
	CheckIn(ctx context.Context, id uint, userID uint) (*models.Invitation, error)
	Remind(ctx context.Context, id uint) error
	DeleteInvitation(ctx context.Context, id uint) error
	CheckUserCheckin(ctx context.Context, userID uint, eventID uint) (bool, error)
}

// InvitationService IInvitationService arayüzünü uygular.
//
// Her mutasyon iki fazlıdır: birinci faz (yetkili veri, Entity Store) hata
// verirse çağrı hatayla biter; ikinci faz (bildirim, e-posta, takvim
// senkronizasyonu) bağımsız yan etkilerden oluşur, hataları loglanır ve
// asla birinci fazın sonucunu geri aldırmaz. Yerel davet kayıtları gerçeğin
// kaynağıdır; takvim tarafı nihai tutarlıdır.
type InvitationService struct {
	repo                repositories.IInvitationRepository
	userService         IUserService
	eventService        IEventService
	notificationService INotificationService
	mailService         IMailService
	calendarService     ICalendarService
}

// NewInvitationService yeni bir InvitationService örneği oluşturur (DI ile).
func NewInvitationService(
	repo repositories.IInvitationRepository,
	userService IUserService,
	eventService IEventService,
	notificationService INotificationService,
	mailService IMailService,
	calendarService ICalendarService,
) IInvitationService {
	return &InvitationService{
		repo:                repo,
		userService:         userService,
		eventService:        eventService,
		notificationService: notificationService,
		mailService:         mailService,
		calendarService:     calendarService,
	}
}

// --- Davet oluşturma ---

// CreateInvitations verilen kullanıcıları etkinliğe davet eder.
// Girdi kümesi tekilleştirilir; var olmayan kullanıcı NotFound, mevcut
// davet Conflict ile çağrının tamamını düşürür. Yan etkiler (bildirim,
// e-posta, takvim katılımcısı) en-iyi-çaba esasıyla çalışır.
func (s *InvitationService) CreateInvitations(ctx context.Context, input InvitationInput, userID uint) ([]models.Invitation, error) {
	event, err := s.eventService.GetEventByID(ctx, input.EventID, userID)
	if err != nil {
		return nil, err
	}

	inviteeIDs := dedupe(input.UserIDs)

	// 1. faz: doğrula ve tek seferde kaydet.
	invitations := make([]*models.Invitation, 0, len(inviteeIDs))
	emails := make([]string, 0, len(inviteeIDs))
	for _, inviteeID := range inviteeIDs {
		invitee, err := s.userService.GetUserByID(ctx, inviteeID)
		if err != nil {
			return nil, err
		}
		if _, err := s.repo.FindByEventAndUser(ctx, input.EventID, inviteeID); err == nil {
			return nil, ErrInvitationDuplicate
		} else if !errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.Internal(err)
		}
		invitations = append(invitations, &models.Invitation{
			EventID:      input.EventID,
			UserID:       inviteeID,
			Status:       models.InvitationStatusPending,
			RSVP:         input.RSVP,
			RSVPResponse: input.RSVPResponse,
		})
		emails = append(emails, invitee.Email)
	}
	if err := s.repo.CreateBatch(ctx, invitations); err != nil {
		return nil, apperrors.Internal(err)
	}

	// 2. faz: bildirim + e-posta + takvim katılımcıları.
	for i, invitation := range invitations {
		s.notify(ctx, invitation.UserID, fmt.Sprintf("%s etkinliğine davet edildiniz", event.Title))
		s.sendInvitationMail(event, emails[i], invitation)
	}
	s.appendAttendees(ctx, event, emails)

	result := make([]models.Invitation, len(invitations))
	for i, inv := range invitations {
		result[i] = *inv
	}
	return result, nil
}

// --- Davetli kümesi güncelleme (çekirdek fark algoritması) ---

// UpdateInvitationSet etkinliğin davetli kümesini istenen kümeye getirir.
//
//  1. Mevcut davetlerden currentInviteeIds türetilir.
//  2. toAdd = istenen − mevcut; toRemove = mevcut − istenen.
//  3. toAdd için: kullanıcı doğrulanır, PENDING davet oluşturulur,
//     "davet edildiniz" bildirimi çıkar.
//  4. toRemove için: davet silinir, "çıkarıldınız" bildirimi çıkar.
//  5. Kalan TÜM davetlerin rsvp/rsvpResponse alanları yeni soru/seçeneklerle
//     ezilir: davetli listesini değiştirmek soruyu herkese yeniden sorar.
//  6. En-iyi-çaba: takvim katılımcı listesi aynı farkla güncellenir.
//
// 1-5 numaralı adımlar yerel tutarlılıktır; hataları çağrıyı düşürür.
// 6. adımın hatası loglanır, yerel sonucu asla geri aldırmaz.
func (s *InvitationService) UpdateInvitationSet(ctx context.Context, input InvitationInput, userID uint) ([]models.Invitation, error) {
	event, err := s.eventService.GetEventByID(ctx, input.EventID, userID)
	if err != nil {
		return nil, err
	}

	current, err := s.repo.FindByEventID(ctx, input.EventID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	currentByUser := make(map[uint]*models.Invitation, len(current))
	for i := range current {
		currentByUser[current[i].UserID] = &current[i]
	}

	desired := dedupe(input.UserIDs)
	desiredSet := make(map[uint]struct{}, len(desired))
	for _, id := range desired {
		desiredSet[id] = struct{}{}
	}

	var toAdd []uint
	for _, id := range desired {
		if _, ok := currentByUser[id]; !ok {
			toAdd = append(toAdd, id)
		}
	}
	var toRemove []*models.Invitation
	for i := range current {
		if _, ok := desiredSet[current[i].UserID]; !ok {
			toRemove = append(toRemove, &current[i])
		}
	}

	// Eklenecekler: önce hepsi doğrulanır ki kısmi yazma olmasın.
	addedEmails := make([]string, 0, len(toAdd))
	addedUsers := make([]*models.User, 0, len(toAdd))
	for _, inviteeID := range toAdd {
		invitee, err := s.userService.GetUserByID(ctx, inviteeID)
		if err != nil {
			return nil, err
		}
		addedUsers = append(addedUsers, invitee)
		addedEmails = append(addedEmails, invitee.Email)
	}
	newInvitations := make([]*models.Invitation, 0, len(toAdd))
	for _, inviteeID := range toAdd {
		newInvitations = append(newInvitations, &models.Invitation{
			EventID:      input.EventID,
			UserID:       inviteeID,
			Status:       models.InvitationStatusPending,
			RSVP:         input.RSVP,
			RSVPResponse: input.RSVPResponse,
		})
	}
	if err := s.repo.CreateBatch(ctx, newInvitations); err != nil {
		return nil, apperrors.Internal(err)
	}

	// Çıkarılacaklar.
	removedEmails := make([]string, 0, len(toRemove))
	for _, invitation := range toRemove {
		invitee, err := s.userService.GetUserByID(ctx, invitation.UserID)
		if err == nil {
			removedEmails = append(removedEmails, invitee.Email)
		}
		if err := s.repo.Delete(ctx, invitation.ID); err != nil {
			return nil, apperrors.Internal(err)
		}
	}

	// Kalan tüm davetlerde rsvp yükünü yeni soruyla ez.
	remaining, err := s.repo.FindByEventID(ctx, input.EventID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	for i := range remaining {
		remaining[i].RSVP = input.RSVP
		remaining[i].RSVPResponse = input.RSVPResponse
		if err := s.repo.Update(ctx, &remaining[i]); err != nil {
			return nil, apperrors.Internal(err)
		}
	}

	// 2. faz: bildirimler ve takvim katılımcı farkı.
	for _, invitee := range addedUsers {
		s.notify(ctx, invitee.ID, fmt.Sprintf("%s etkinliğine davet edildiniz", event.Title))
	}
	for _, invitation := range toRemove {
		s.notify(ctx, invitation.UserID, fmt.Sprintf("%s etkinliğinin davetli listesinden çıkarıldınız", event.Title))
	}
	for i := range newInvitations {
		s.sendInvitationMail(event, addedEmails[i], newInvitations[i])
	}
	s.reconcileAttendees(ctx, event, addedEmails, removedEmails)

	return remaining, nil
}

// --- Okuma uçları ---

func (s *InvitationService) GetInvitations(ctx context.Context, params queryparams.ListParams, userID uint) ([]models.Invitation, error) {
	if !params.IsFieldAllowed(invitationFilterFields) {
		return nil, apperrors.BadRequest("geçersiz filtre parametresi")
	}
	invitations, err := s.repo.FindAllVisibleTo(ctx, userID, params)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return invitations, nil
}

func (s *InvitationService) GetInvitationByID(ctx context.Context, id uint, userID uint) (*models.Invitation, error) {
	invitation, err := s.repo.FindByIDVisibleTo(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvitationNotFound
		}
		return nil, apperrors.Internal(err)
	}
	return invitation, nil
}

// GetInvitationByEventAndUser tek bir davetliye ait daveti etkinlik ve
// kullanıcı kimliğiyle bulur; webhook eşleştirmesi bu yolu kullanır.
func (s *InvitationService) GetInvitationByEventAndUser(ctx context.Context, eventID uint, userID uint) (*models.Invitation, error) {
	invitation, err := s.repo.FindByEventAndUser(ctx, eventID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvitationNotFound
		}
		return nil, apperrors.Internal(err)
	}
	return invitation, nil
}

// --- Cevaplama ---

// RespondToInvitation davetlinin LCV cevabını işler. Sahiplik eşitlikle
// denetlenir: davet başkasına aitse NotFound döner. Cevap takvimdeki
// katılımcı durumuna da yansıtılır.
func (s *InvitationService) RespondToInvitation(ctx context.Context, id uint, status models.InvitationStatus, userID uint) (*models.Invitation, error) {
	return s.setStatus(ctx, id, status, userID, true)
}

func (s *InvitationService) ApplyExternalResponse(ctx context.Context, id uint, status models.InvitationStatus, userID uint) (*models.Invitation, error) {
	return s.setStatus(ctx, id, status, userID, false)
}

// setStatus cevaplama yolunun ortak gövdesi. pushToCalendar=false webhook
// yolunda kullanılır; tetikleyici başına tek yönlü senkronizasyon kuralı
// güncelleme fırtınalarını yapıca engeller.
func (s *InvitationService) setStatus(ctx context.Context, id uint, status models.InvitationStatus, userID uint, pushToCalendar bool) (*models.Invitation, error) {
	invitation, err := s.repo.FindByIDForOwner(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvitationNotFound
		}
		return nil, apperrors.Internal(err)
	}

	invitation.Status = status
	if err := s.repo.Update(ctx, invitation); err != nil {
		return nil, apperrors.Internal(err)
	}

	// 2. faz.
	s.notify(ctx, invitation.Event.UserID,
		fmt.Sprintf("%s %s, %s etkinliği için cevabını güncelledi: %s",
			invitation.User.FirstName, invitation.User.LastName, invitation.Event.Title, status))
	if pushToCalendar {
		s.pushAttendeeStatus(ctx, &invitation.Event, invitation.User.Email, status)
	}
	return invitation, nil
}

// --- Giriş (check-in) ---

// CheckIn davetliyi etkinliğe girişli olarak işaretler. Yalnızca ACCEPTED
// veya TENTATIVE durumundaki davetler giriş yapabilir ve giriş tek
// seferliktir; ikinci deneme BadRequest ile reddedilir.
func (s *InvitationService) CheckIn(ctx context.Context, id uint, userID uint) (*models.Invitation, error) {
	invitation, err := s.repo.FindByIDForOwner(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvitationNotFound
		}
		return nil, apperrors.Internal(err)
	}

	if invitation.Status != models.InvitationStatusAccepted && invitation.Status != models.InvitationStatusTentative {
		return nil, ErrCheckinNotAllowed
	}
	if invitation.CheckedIn {
		return nil, ErrAlreadyCheckedIn
	}

	now := time.Now().UTC()
	invitation.CheckedIn = true
	invitation.CheckinTime = &now
	if err := s.repo.Update(ctx, invitation); err != nil {
		return nil, apperrors.Internal(err)
	}

	s.notify(ctx, invitation.UserID, fmt.Sprintf("%s etkinliğine giriş yaptınız, iyi eğlenceler", invitation.Event.Title))
	return invitation, nil
}

// --- Hatırlatma ---

// Remind davet e-postasını yeniden gönderir ve hatırlatma bildirimi çıkarır.
// Davet durumu değişmez.
func (s *InvitationService) Remind(ctx context.Context, id uint) error {
	invitation, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrInvitationNotFound
		}
		return apperrors.Internal(err)
	}

	s.sendInvitationMail(&invitation.Event, invitation.User.Email, invitation)
	s.notify(ctx, invitation.UserID, fmt.Sprintf("Hatırlatma: %s etkinliğine davetlisiniz", invitation.Event.Title))
	return nil
}

func (s *InvitationService) DeleteInvitation(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrInvitationNotFound
		}
		return apperrors.Internal(err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apperrors.Internal(err)
	}
	return nil
}

// CheckUserCheckin kullanıcının etkinliğe giriş yapıp yapmadığını döndürür.
func (s *InvitationService) CheckUserCheckin(ctx context.Context, userID uint, eventID uint) (bool, error) {
	if _, err := s.eventService.GetEventByID(ctx, eventID, userID); err != nil {
		return false, err
	}
	invitation, err := s.repo.FindByEventAndUser(ctx, eventID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return false, nil
		}
		return false, apperrors.Internal(err)
	}
	return invitation.CheckedIn, nil
}

// --- 2. faz yardımcıları ---

// notify bildirimi kaydeder; hata loglanır, yutulur.
func (s *InvitationService) notify(ctx context.Context, userID uint, message string) {
	if _, err := s.notificationService.CreateNotification(ctx, userID, message); err != nil {
		configslog.Log.Error("Bildirim oluşturulamadı", zap.Uint("userID", userID), zap.Error(err))
	}
}

// sendInvitationMail davet e-postasını gönderir; hata loglanır, yutulur.
func (s *InvitationService) sendInvitationMail(event *models.Event, email string, invitation *models.Invitation) {
	var buttons strings.Builder
	for key, value := range invitation.RSVPResponse.Options {
		fmt.Fprintf(&buttons, `<button onclick="handleRSVP('%s')">%s - %t</button><br>`, key, key, value)
	}
	startDate := ""
	if event.StartDate != nil {
		startDate = event.StartDate.Format(time.RFC1123)
	}
	subject := fmt.Sprintf("Davet: %s", event.Title)
	body := fmt.Sprintf(`<p>Merhaba,</p>
<p>%s etkinliğine davetlisiniz! Başlangıç: %s</p>
<p>%s</p>
%s`, event.Title, startDate, invitation.RSVP.Title, buttons.String())

	if err := s.mailService.SendMail(email, subject, body); err != nil {
		configslog.Log.Error("Davet e-postası gönderilemedi", zap.String("email", email), zap.Error(err))
	}
}

// appendAttendees yeni davetlilerin e-postalarını takvim etkinliğinin
// katılımcı listesine needsAction durumuyla ekler. Listede zaten olan
// e-posta yinelenmez.
func (s *InvitationService) appendAttendees(ctx context.Context, event *models.Event, emails []string) {
	s.reconcileAttendees(ctx, event, emails, nil)
}

// reconcileAttendees takvim katılımcı listesini yerel farka göre günceller:
// eklenenler needsAction ile sona eklenir, çıkarılanlar listeden düşer.
func (s *InvitationService) reconcileAttendees(ctx context.Context, event *models.Event, addEmails []string, removeEmails []string) {
	if event.CalendarID == "" || (len(addEmails) == 0 && len(removeEmails) == 0) {
		return
	}
	data := s.calendarService.GetEvent(ctx, event.UserID, event.CalendarID)
	if data == nil {
		configslog.Log.Warn("Katılımcı senkronizasyonu atlandı: takvim etkinliği okunamadı",
			zap.Uint("eventID", event.ID), zap.String("calendarID", event.CalendarID))
		return
	}

	removeSet := make(map[string]struct{}, len(removeEmails))
	for _, email := range removeEmails {
		removeSet[email] = struct{}{}
	}
	existing := make(map[string]struct{}, len(data.Attendees))
	attendees := make([]*calendar.EventAttendee, 0, len(data.Attendees)+len(addEmails))
	for _, attendee := range data.Attendees {
		existing[attendee.Email] = struct{}{}
		if _, removed := removeSet[attendee.Email]; removed {
			continue
		}
		attendees = append(attendees, attendee)
	}
	for _, email := range addEmails {
		if _, ok := existing[email]; ok {
			continue
		}
		attendees = append(attendees, &calendar.EventAttendee{
			Email:          email,
			ResponseStatus: "needsAction",
		})
	}

	data.Attendees = attendees
	s.calendarService.UpdateEvent(ctx, event.UserID, event.CalendarID, data)
}

// pushAttendeeStatus davetlinin cevabını takvimdeki katılımcı kaydına yazar.
func (s *InvitationService) pushAttendeeStatus(ctx context.Context, event *models.Event, email string, status models.InvitationStatus) {
	if event.CalendarID == "" {
		return
	}
	data := s.calendarService.GetEvent(ctx, event.UserID, event.CalendarID)
	if data == nil {
		configslog.Log.Warn("Cevap senkronizasyonu atlandı: takvim etkinliği okunamadı",
			zap.Uint("eventID", event.ID), zap.String("calendarID", event.CalendarID))
		return
	}
	found := false
	for _, attendee := range data.Attendees {
		if attendee.Email == email {
			attendee.ResponseStatus = models.AttendeeResponseByInvitationStatus(status)
			found = true
		}
	}
	if !found {
		return
	}
	s.calendarService.UpdateEvent(ctx, event.UserID, event.CalendarID, data)
}

// dedupe giriş kümesindeki yinelenen kimlikleri sırayı koruyarak eler.
func dedupe(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	result := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}

var _ IInvitationService = (*InvitationService)(nil)
