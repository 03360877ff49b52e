package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	calendar "google.golang.org/api/calendar/v3"

	"eventify.link/models"
	"eventify.link/pkg/queryparams"
	"eventify.link/repositories"
)

// --- Sahte bağımlılıklar ---

type fakeInvitationRepo struct {
	nextID uint
	items  map[uint]*models.Invitation
	users  map[uint]*models.User
	events map[uint]*models.Event
}

func newFakeInvitationRepo(users map[uint]*models.User, events map[uint]*models.Event) *fakeInvitationRepo {
	return &fakeInvitationRepo{
		nextID: 1,
		items:  make(map[uint]*models.Invitation),
		users:  users,
		events: events,
	}
}

// hydrate ilişkili Event ve User alanlarını doldurarak kopya döndürür.
func (r *fakeInvitationRepo) hydrate(inv *models.Invitation) *models.Invitation {
	out := *inv
	if event, ok := r.events[inv.EventID]; ok {
		out.Event = *event
	}
	if user, ok := r.users[inv.UserID]; ok {
		out.User = *user
	}
	return &out
}

func (r *fakeInvitationRepo) CreateBatch(_ context.Context, invitations []*models.Invitation) error {
	for _, inv := range invitations {
		for _, existing := range r.items {
			if existing.EventID == inv.EventID && existing.UserID == inv.UserID {
				return fmt.Errorf("duplicate key (event=%d, user=%d)", inv.EventID, inv.UserID)
			}
		}
		inv.ID = r.nextID
		r.nextID++
		stored := *inv
		r.items[inv.ID] = &stored
	}
	return nil
}

func (r *fakeInvitationRepo) FindByID(_ context.Context, id uint) (*models.Invitation, error) {
	inv, ok := r.items[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return r.hydrate(inv), nil
}

func (r *fakeInvitationRepo) FindByIDForOwner(_ context.Context, id uint, userID uint) (*models.Invitation, error) {
	inv, ok := r.items[id]
	if !ok || inv.UserID != userID {
		return nil, repositories.ErrNotFound
	}
	return r.hydrate(inv), nil
}

func (r *fakeInvitationRepo) FindByIDVisibleTo(_ context.Context, id uint, userID uint) (*models.Invitation, error) {
	inv, ok := r.items[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	event, hasEvent := r.events[inv.EventID]
	if inv.UserID != userID && (!hasEvent || event.UserID != userID) {
		return nil, repositories.ErrNotFound
	}
	return r.hydrate(inv), nil
}

func (r *fakeInvitationRepo) FindByEventID(_ context.Context, eventID uint) ([]models.Invitation, error) {
	var result []models.Invitation
	for id := uint(1); id < r.nextID; id++ {
		if inv, ok := r.items[id]; ok && inv.EventID == eventID {
			result = append(result, *r.hydrate(inv))
		}
	}
	return result, nil
}

func (r *fakeInvitationRepo) FindByEventAndUser(_ context.Context, eventID uint, userID uint) (*models.Invitation, error) {
	for _, inv := range r.items {
		if inv.EventID == eventID && inv.UserID == userID {
			return r.hydrate(inv), nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeInvitationRepo) FindAllVisibleTo(_ context.Context, userID uint, _ queryparams.ListParams) ([]models.Invitation, error) {
	var result []models.Invitation
	for id := uint(1); id < r.nextID; id++ {
		inv, ok := r.items[id]
		if !ok {
			continue
		}
		event, hasEvent := r.events[inv.EventID]
		if inv.UserID == userID || (hasEvent && event.UserID == userID) {
			result = append(result, *r.hydrate(inv))
		}
	}
	return result, nil
}

func (r *fakeInvitationRepo) Update(_ context.Context, invitation *models.Invitation) error {
	if _, ok := r.items[invitation.ID]; !ok {
		return repositories.ErrNotFound
	}
	stored := *invitation
	r.items[invitation.ID] = &stored
	return nil
}

func (r *fakeInvitationRepo) Delete(_ context.Context, id uint) error {
	delete(r.items, id)
	return nil
}

type fakeUserService struct {
	users map[uint]*models.User
}

func (s *fakeUserService) CreateUser(_ context.Context, user *models.User) (*models.User, error) {
	return user, nil
}

func (s *fakeUserService) GetUserByID(_ context.Context, id uint) (*models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *fakeUserService) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range s.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, ErrUserNotFound
}

func (s *fakeUserService) GetUsers(_ context.Context) ([]models.User, error) {
	return nil, nil
}

func (s *fakeUserService) UpdateUser(_ context.Context, _ uint, _ UserPatch) (*models.User, error) {
	return nil, ErrUserNotFound
}

type fakeEventService struct {
	events map[uint]*models.Event
}

func (s *fakeEventService) CreateEvent(_ context.Context, event *models.Event, _ uint) (*models.Event, error) {
	return event, nil
}

func (s *fakeEventService) UpdateEvent(_ context.Context, eventID uint, patch EventPatch) (*models.Event, error) {
	event, ok := s.events[eventID]
	if !ok {
		return nil, ErrEventNotFound
	}
	if patch.Status != nil {
		event.Status = *patch.Status
	}
	return event, nil
}

func (s *fakeEventService) GetEvents(_ context.Context, _ queryparams.ListParams, _ uint) ([]models.Event, error) {
	return nil, nil
}

func (s *fakeEventService) GetEventByID(_ context.Context, eventID uint, _ uint) (*models.Event, error) {
	event, ok := s.events[eventID]
	if !ok {
		return nil, ErrEventNotFound
	}
	return event, nil
}

func (s *fakeEventService) GetEventByCalendarID(_ context.Context, calendarID string) (*models.Event, error) {
	for _, event := range s.events {
		if event.CalendarID == calendarID {
			return event, nil
		}
	}
	return nil, ErrEventNotFound
}

func (s *fakeEventService) DeleteEvent(_ context.Context, _ uint) error {
	return nil
}

type sentNotification struct {
	UserID  uint
	Message string
}

type fakeNotificationService struct {
	sent []sentNotification
}

func (s *fakeNotificationService) CreateNotification(_ context.Context, userID uint, message string) (*models.Notification, error) {
	s.sent = append(s.sent, sentNotification{UserID: userID, Message: message})
	return &models.Notification{UserID: userID, Message: message}, nil
}

func (s *fakeNotificationService) GetNotifications(_ context.Context, _ uint) ([]models.Notification, error) {
	return nil, nil
}

func (s *fakeNotificationService) GetNotificationByID(_ context.Context, _ uint, _ uint) (*models.Notification, error) {
	return nil, ErrNotificationNotFound
}

func (s *fakeNotificationService) MarkRead(_ context.Context, _ uint, _ uint, _ bool) (*models.Notification, error) {
	return nil, ErrNotificationNotFound
}

func (s *fakeNotificationService) messagesFor(userID uint) []string {
	var out []string
	for _, n := range s.sent {
		if n.UserID == userID {
			out = append(out, n.Message)
		}
	}
	return out
}

type fakeMailService struct {
	recipients []string
}

func (s *fakeMailService) SendMail(to string, _ string, _ string) error {
	s.recipients = append(s.recipients, to)
	return nil
}

type fakeCalendarService struct {
	remote      map[string]*calendar.Event
	updateCalls int
}

func (s *fakeCalendarService) CreateEvent(_ context.Context, _ uint, _ *models.Event, _ []string) string {
	return ""
}

func (s *fakeCalendarService) GetEvent(_ context.Context, _ uint, calendarEventID string) *calendar.Event {
	return s.remote[calendarEventID]
}

func (s *fakeCalendarService) UpdateEvent(_ context.Context, _ uint, calendarEventID string, data *calendar.Event) {
	s.updateCalls++
	s.remote[calendarEventID] = data
}

func (s *fakeCalendarService) DeleteEvent(_ context.Context, _ uint, calendarEventID string) {
	delete(s.remote, calendarEventID)
}

func (s *fakeCalendarService) RefreshToken(_ context.Context, _ uint) {}

func (s *fakeCalendarService) attendeeEmails(calendarEventID string) []string {
	data, ok := s.remote[calendarEventID]
	if !ok {
		return nil
	}
	emails := make([]string, 0, len(data.Attendees))
	for _, attendee := range data.Attendees {
		emails = append(emails, attendee.Email)
	}
	return emails
}

// --- Test düzeneği ---

type invitationFixture struct {
	service       IInvitationService
	repo          *fakeInvitationRepo
	notifications *fakeNotificationService
	mailer        *fakeMailService
	gateway       *fakeCalendarService
}

const (
	organizerID = uint(1)
	inviteeA    = uint(2)
	inviteeB    = uint(3)
	inviteeC    = uint(4)

	eventID    = uint(10)
	calendarID = "cal-10"
)

func newInvitationFixture() *invitationFixture {
	users := map[uint]*models.User{
		organizerID: {BaseModel: models.BaseModel{ID: organizerID}, FirstName: "Deniz", LastName: "Organizatör", Email: "deniz@example.com"},
		inviteeA:    {BaseModel: models.BaseModel{ID: inviteeA}, FirstName: "Ali", LastName: "Aydın", Email: "ali@example.com"},
		inviteeB:    {BaseModel: models.BaseModel{ID: inviteeB}, FirstName: "Bora", LastName: "Bilgin", Email: "bora@example.com"},
		inviteeC:    {BaseModel: models.BaseModel{ID: inviteeC}, FirstName: "Ceren", LastName: "Can", Email: "ceren@example.com"},
	}
	events := map[uint]*models.Event{
		eventID: {
			BaseModel:  models.BaseModel{ID: eventID},
			Title:      "Ürün Lansmanı",
			Status:     models.EventStatusConfirmed,
			UserID:     organizerID,
			CalendarID: calendarID,
		},
	}

	repo := newFakeInvitationRepo(users, events)
	notifications := &fakeNotificationService{}
	mailer := &fakeMailService{}
	gateway := &fakeCalendarService{remote: map[string]*calendar.Event{
		calendarID: {Id: calendarID, Summary: "Ürün Lansmanı", Status: "confirmed"},
	}}

	service := NewInvitationService(
		repo,
		&fakeUserService{users: users},
		&fakeEventService{events: events},
		notifications,
		mailer,
		gateway,
	)
	return &invitationFixture{
		service:       service,
		repo:          repo,
		notifications: notifications,
		mailer:        mailer,
		gateway:       gateway,
	}
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}

// --- Oluşturma ---

func TestCreateInvitations(t *testing.T) {
	fx := newInvitationFixture()
	ctx := context.Background()

	input := InvitationInput{
		EventID: eventID,
		UserIDs: []uint{inviteeA, inviteeB, inviteeA}, // yinelenen kimlik elenir
		RSVP:    models.RSVPQuestion{Title: "Yemekte ne tercih edersiniz?"},
		RSVPResponse: models.RSVPResponse{
			Options: map[string]bool{"et": false, "vejetaryen": false},
		},
	}
	created, err := fx.service.CreateInvitations(ctx, input, organizerID)
	if err != nil {
		t.Fatalf("CreateInvitations hata döndü: %v", err)
	}
	if len(created) != 2 {
		t.Fatalf("2 davet bekleniyordu, %d oluştu", len(created))
	}
	for _, inv := range created {
		if inv.Status != models.InvitationStatusPending {
			t.Errorf("yeni davet PENDING olmalı, %s bulundu", inv.Status)
		}
		if inv.RSVP.Title != input.RSVP.Title {
			t.Errorf("rsvp sorusu kopyalanmalı, %q bulundu", inv.RSVP.Title)
		}
	}

	if got := len(fx.notifications.messagesFor(inviteeA)); got != 1 {
		t.Errorf("davetliye 1 bildirim bekleniyordu, %d bulundu", got)
	}
	if !containsString(fx.mailer.recipients, "ali@example.com") || !containsString(fx.mailer.recipients, "bora@example.com") {
		t.Errorf("davet e-postaları eksik: %v", fx.mailer.recipients)
	}

	attendees := fx.gateway.attendeeEmails(calendarID)
	if !containsString(attendees, "ali@example.com") || !containsString(attendees, "bora@example.com") {
		t.Errorf("takvim katılımcıları eksik: %v", attendees)
	}
	for _, attendee := range fx.gateway.remote[calendarID].Attendees {
		if attendee.ResponseStatus != "needsAction" {
			t.Errorf("yeni katılımcı needsAction olmalı, %s bulundu", attendee.ResponseStatus)
		}
	}
}

func TestCreateInvitationsDuplicate(t *testing.T) {
	fx := newInvitationFixture()
	ctx := context.Background()

	if _, err := fx.service.CreateInvitations(ctx, InvitationInput{EventID: eventID, UserIDs: []uint{inviteeA}}, organizerID); err != nil {
		t.Fatalf("ilk davet oluşturulamadı: %v", err)
	}
	_, err := fx.service.CreateInvitations(ctx, InvitationInput{EventID: eventID, UserIDs: []uint{inviteeA}}, organizerID)
	if !errors.Is(err, ErrInvitationDuplicate) {
		t.Fatalf("Conflict bekleniyordu, %v bulundu", err)
	}
}

func TestCreateInvitationsUnknownUserAborts(t *testing.T) {
	fx := newInvitationFixture()
	ctx := context.Background()

	_, err := fx.service.CreateInvitations(ctx, InvitationInput{EventID: eventID, UserIDs: []uint{inviteeA, 999}}, organizerID)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("NotFound bekleniyordu, %v bulundu", err)
	}
	// Hiçbir davet yazılmamış olmalı: doğrulama yazmadan önce biter.
	if len(fx.repo.items) != 0 {
		t.Errorf("kısmi yazma yapılmamalıydı, %d kayıt bulundu", len(fx.repo.items))
	}
	if len(fx.notifications.sent) != 0 {
		t.Errorf("bildirim gönderilmemeliydi, %d bulundu", len(fx.notifications.sent))
	}
}

// --- Davetli kümesi güncelleme ---

func TestUpdateInvitationSetDiff(t *testing.T) {
	fx := newInvitationFixture()
	ctx := context.Background()

	// Başlangıç kümesi: {A, B}
	if _, err := fx.service.CreateInvitations(ctx, InvitationInput{
		EventID: eventID,
		UserIDs: []uint{inviteeA, inviteeB},
		RSVP:    models.RSVPQuestion{Title: "Eski soru"},
	}, organizerID); err != nil {
		t.Fatalf("başlangıç davetleri oluşturulamadı: %v", err)
	}

	// İstenen küme: {B, C}; soru da değişiyor.
	remaining, err := fx.service.UpdateInvitationSet(ctx, InvitationInput{
		EventID: eventID,
		UserIDs: []uint{inviteeB, inviteeC},
		RSVP:    models.RSVPQuestion{Title: "Yeni soru"},
		RSVPResponse: models.RSVPResponse{
			Options: map[string]bool{"evet": false, "hayır": false},
		},
	}, organizerID)
	if err != nil {
		t.Fatalf("UpdateInvitationSet hata döndü: %v", err)
	}

	if len(remaining) != 2 {
		t.Fatalf("2 davet kalmalıydı, %d bulundu", len(remaining))
	}
	for _, inv := range remaining {
		if inv.UserID == inviteeA {
			t.Errorf("çıkarılan davetli hâlâ listede")
		}
		if inv.RSVP.Title != "Yeni soru" {
			t.Errorf("rsvp sorusu tüm kalanlarda ezilmeliydi, %q bulundu", inv.RSVP.Title)
		}
	}
	if _, err := fx.repo.FindByEventAndUser(ctx, eventID, inviteeA); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("A'nın daveti silinmeliydi")
	}
	if _, err := fx.repo.FindByEventAndUser(ctx, eventID, inviteeC); err != nil {
		t.Errorf("C'nin daveti oluşmalıydı: %v", err)
	}

	if got := fx.notifications.messagesFor(inviteeC); len(got) != 1 {
		t.Errorf("C'ye davet bildirimi bekleniyordu, %v bulundu", got)
	}
	removedMsgs := fx.notifications.messagesFor(inviteeA)
	foundRemoval := false
	for _, msg := range removedMsgs {
		if msg == "Ürün Lansmanı etkinliğinin davetli listesinden çıkarıldınız" {
			foundRemoval = true
		}
	}
	if !foundRemoval {
		t.Errorf("A'ya çıkarılma bildirimi bekleniyordu, %v bulundu", removedMsgs)
	}

	attendees := fx.gateway.attendeeEmails(calendarID)
	if containsString(attendees, "ali@example.com") {
		t.Errorf("çıkarılan davetli takvimden düşmeliydi: %v", attendees)
	}
	if !containsString(attendees, "ceren@example.com") {
		t.Errorf("eklenen davetli takvime yazılmalıydı: %v", attendees)
	}
	if !containsString(attendees, "bora@example.com") {
		t.Errorf("dokunulmayan davetli takvimde kalmalıydı: %v", attendees)
	}
}

func TestUpdateInvitationSetUnknownUserAborts(t *testing.T) {
	fx := newInvitationFixture()
	ctx := context.Background()

	if _, err := fx.service.CreateInvitations(ctx, InvitationInput{EventID: eventID, UserIDs: []uint{inviteeA}}, organizerID); err != nil {
		t.Fatalf("başlangıç daveti oluşturulamadı: %v", err)
	}
	_, err := fx.service.UpdateInvitationSet(ctx, InvitationInput{EventID: eventID, UserIDs: []uint{inviteeA, 999}}, organizerID)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("NotFound bekleniyordu, %v bulundu", err)
	}
	// Mevcut küme dokunulmadan kalmalı.
	if _, err := fx.repo.FindByEventAndUser(ctx, eventID, inviteeA); err != nil {
		t.Errorf("mevcut davet korunmalıydı: %v", err)
	}
}

// --- Cevaplama ---

func TestRespondToInvitationOwnership(t *testing.T) {
	fx := newInvitationFixture()
	ctx := context.Background()

	created, err := fx.service.CreateInvitations(ctx, InvitationInput{EventID: eventID, UserIDs: []uint{inviteeA}}, organizerID)
	if err != nil {
		t.Fatalf("davet oluşturulamadı: %v", err)
	}
	// Başka bir kullanıcı cevaplayamaz; sahiplik ihlali varlık yokmuş gibi döner.
	_, err = fx.service.RespondToInvitation(ctx, created[0].ID, models.InvitationStatusAccepted, inviteeB)
	if !errors.Is(err, ErrInvitationNotFound) {
		t.Fatalf("NotFound bekleniyordu, %v bulundu", err)
	}
}

func TestRespondPushesAttendeeStatus(t *testing.T) {
	fx := newInvitationFixture()
	ctx := context.Background()

	created, err := fx.service.CreateInvitations(ctx, InvitationInput{EventID: eventID, UserIDs: []uint{inviteeA}}, organizerID)
	if err != nil {
		t.Fatalf("davet oluşturulamadı: %v", err)
	}

	updated, err := fx.service.RespondToInvitation(ctx, created[0].ID, models.InvitationStatusAccepted, inviteeA)
	if err != nil {
		t.Fatalf("RespondToInvitation hata döndü: %v", err)
	}
	if updated.Status != models.InvitationStatusAccepted {
		t.Errorf("durum ACCEPTED olmalı, %s bulundu", updated.Status)
	}

	// Organizatöre bildirim gitti mi?
	orgMsgs := fx.notifications.messagesFor(organizerID)
	if len(orgMsgs) == 0 {
		t.Errorf("organizatöre cevap bildirimi bekleniyordu")
	}

	// Takvimdeki katılımcı kaydı güncellenmiş olmalı.
	for _, attendee := range fx.gateway.remote[calendarID].Attendees {
		if attendee.Email == "ali@example.com" && attendee.ResponseStatus != "accepted" {
			t.Errorf("katılımcı durumu accepted olmalı, %s bulundu", attendee.ResponseStatus)
		}
	}
}

func TestApplyExternalResponseDoesNotPushBack(t *testing.T) {
	fx := newInvitationFixture()
	ctx := context.Background()

	created, err := fx.service.CreateInvitations(ctx, InvitationInput{EventID: eventID, UserIDs: []uint{inviteeA}}, organizerID)
	if err != nil {
		t.Fatalf("davet oluşturulamadı: %v", err)
	}
	callsBefore := fx.gateway.updateCalls

	updated, err := fx.service.ApplyExternalResponse(ctx, created[0].ID, models.InvitationStatusRejected, inviteeA)
	if err != nil {
		t.Fatalf("ApplyExternalResponse hata döndü: %v", err)
	}
	if updated.Status != models.InvitationStatusRejected {
		t.Errorf("durum REJECTED olmalı, %s bulundu", updated.Status)
	}
	// Webhook yolunda takvime geri yazılmaz; yoksa iki taraf döngüye girer.
	if fx.gateway.updateCalls != callsBefore {
		t.Errorf("dış cevap takvime geri itilmemeliydi")
	}
	// Yerel bildirim yine de çıkar.
	if len(fx.notifications.messagesFor(organizerID)) == 0 {
		t.Errorf("organizatöre cevap bildirimi bekleniyordu")
	}
}

// --- Giriş ---

func TestCheckInRequiresAcceptedOrTentative(t *testing.T) {
	fx := newInvitationFixture()
	ctx := context.Background()

	created, err := fx.service.CreateInvitations(ctx, InvitationInput{EventID: eventID, UserIDs: []uint{inviteeA}}, organizerID)
	if err != nil {
		t.Fatalf("davet oluşturulamadı: %v", err)
	}

	// PENDING davet giriş yapamaz.
	if _, err := fx.service.CheckIn(ctx, created[0].ID, inviteeA); err != ErrCheckinNotAllowed {
		t.Fatalf("ErrCheckinNotAllowed bekleniyordu, %v bulundu", err)
	}

	if _, err := fx.service.RespondToInvitation(ctx, created[0].ID, models.InvitationStatusAccepted, inviteeA); err != nil {
		t.Fatalf("cevap verilemedi: %v", err)
	}

	checked, err := fx.service.CheckIn(ctx, created[0].ID, inviteeA)
	if err != nil {
		t.Fatalf("CheckIn hata döndü: %v", err)
	}
	if !checked.CheckedIn || checked.CheckinTime == nil {
		t.Errorf("giriş işaretlenmeli ve zamanı yazılmalı")
	}

	// İkinci giriş reddedilir.
	if _, err := fx.service.CheckIn(ctx, created[0].ID, inviteeA); err != ErrAlreadyCheckedIn {
		t.Fatalf("ErrAlreadyCheckedIn bekleniyordu, %v bulundu", err)
	}
}

func TestCheckUserCheckin(t *testing.T) {
	fx := newInvitationFixture()
	ctx := context.Background()

	created, err := fx.service.CreateInvitations(ctx, InvitationInput{EventID: eventID, UserIDs: []uint{inviteeA}}, organizerID)
	if err != nil {
		t.Fatalf("davet oluşturulamadı: %v", err)
	}

	checkedIn, err := fx.service.CheckUserCheckin(ctx, inviteeA, eventID)
	if err != nil {
		t.Fatalf("CheckUserCheckin hata döndü: %v", err)
	}
	if checkedIn {
		t.Errorf("henüz giriş yapılmamış olmalı")
	}

	if _, err := fx.service.RespondToInvitation(ctx, created[0].ID, models.InvitationStatusTentative, inviteeA); err != nil {
		t.Fatalf("cevap verilemedi: %v", err)
	}
	if _, err := fx.service.CheckIn(ctx, created[0].ID, inviteeA); err != nil {
		t.Fatalf("CheckIn hata döndü: %v", err)
	}

	checkedIn, err = fx.service.CheckUserCheckin(ctx, inviteeA, eventID)
	if err != nil {
		t.Fatalf("CheckUserCheckin hata döndü: %v", err)
	}
	if !checkedIn {
		t.Errorf("giriş yapılmış görünmeli")
	}
}

// --- Hatırlatma ve silme ---

func TestRemindResendsMail(t *testing.T) {
	fx := newInvitationFixture()
	ctx := context.Background()

	created, err := fx.service.CreateInvitations(ctx, InvitationInput{EventID: eventID, UserIDs: []uint{inviteeA}}, organizerID)
	if err != nil {
		t.Fatalf("davet oluşturulamadı: %v", err)
	}
	mailsBefore := len(fx.mailer.recipients)

	if err := fx.service.Remind(ctx, created[0].ID); err != nil {
		t.Fatalf("Remind hata döndü: %v", err)
	}
	if len(fx.mailer.recipients) != mailsBefore+1 {
		t.Errorf("hatırlatma e-postası gönderilmeliydi")
	}
	msgs := fx.notifications.messagesFor(inviteeA)
	if len(msgs) < 2 {
		t.Errorf("hatırlatma bildirimi bekleniyordu, %v bulundu", msgs)
	}
}

func TestDeleteInvitationNotFound(t *testing.T) {
	fx := newInvitationFixture()
	if err := fx.service.DeleteInvitation(context.Background(), 999); !errors.Is(err, ErrInvitationNotFound) {
		t.Fatalf("NotFound bekleniyordu, %v bulundu", err)
	}
}
