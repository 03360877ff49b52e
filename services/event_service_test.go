package services

import (
	"context"
	"errors"
	"testing"
	"time"

	calendar "google.golang.org/api/calendar/v3"

	"eventify.link/models"
	"eventify.link/pkg/queryparams"
	"eventify.link/repositories"
)

type fakeEventRepo struct {
	nextID uint
	items  map[uint]*models.Event
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{nextID: 1, items: make(map[uint]*models.Event)}
}

func (r *fakeEventRepo) Create(_ context.Context, event *models.Event) error {
	event.ID = r.nextID
	r.nextID++
	stored := *event
	r.items[event.ID] = &stored
	return nil
}

func (r *fakeEventRepo) FindByID(_ context.Context, id uint) (*models.Event, error) {
	event, ok := r.items[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	out := *event
	return &out, nil
}

func (r *fakeEventRepo) FindByIDForUser(_ context.Context, id uint, userID uint) (*models.Event, error) {
	event, ok := r.items[id]
	if !ok || event.UserID != userID {
		return nil, repositories.ErrNotFound
	}
	out := *event
	return &out, nil
}

func (r *fakeEventRepo) FindByCalendarID(_ context.Context, calendarID string) (*models.Event, error) {
	for _, event := range r.items {
		if event.CalendarID == calendarID {
			out := *event
			return &out, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeEventRepo) FindAllForUser(_ context.Context, userID uint, _ queryparams.ListParams) ([]models.Event, error) {
	var result []models.Event
	for id := uint(1); id < r.nextID; id++ {
		if event, ok := r.items[id]; ok && event.UserID == userID {
			result = append(result, *event)
		}
	}
	return result, nil
}

func (r *fakeEventRepo) Update(_ context.Context, event *models.Event) error {
	if _, ok := r.items[event.ID]; !ok {
		return repositories.ErrNotFound
	}
	stored := *event
	r.items[event.ID] = &stored
	return nil
}

func (r *fakeEventRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.items[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

type fakeEventMediaRepo struct {
	byEvent map[uint]*models.EventMedia
}

func newFakeEventMediaRepo() *fakeEventMediaRepo {
	return &fakeEventMediaRepo{byEvent: make(map[uint]*models.EventMedia)}
}

func (r *fakeEventMediaRepo) Upsert(_ context.Context, media *models.EventMedia) error {
	stored := *media
	r.byEvent[media.EventID] = &stored
	return nil
}

func (r *fakeEventMediaRepo) FindByEventID(_ context.Context, eventID uint) (*models.EventMedia, error) {
	media, ok := r.byEvent[eventID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return media, nil
}

// creatingCalendarService oluşturma çağrısında sabit bir harici kimlik döndürür.
type creatingCalendarService struct {
	fakeCalendarService
	createdID string
}

func (s *creatingCalendarService) CreateEvent(_ context.Context, _ uint, _ *models.Event, _ []string) string {
	return s.createdID
}

func newEventServiceFixture(createdID string) (IEventService, *fakeEventRepo, *fakeEventMediaRepo, *creatingCalendarService) {
	repo := newFakeEventRepo()
	mediaRepo := newFakeEventMediaRepo()
	gateway := &creatingCalendarService{
		fakeCalendarService: fakeCalendarService{remote: make(map[string]*calendar.Event)},
		createdID:           createdID,
	}
	if createdID != "" {
		gateway.remote[createdID] = &calendar.Event{Id: createdID, Status: "confirmed"}
	}
	return NewEventService(repo, mediaRepo, gateway), repo, mediaRepo, gateway
}

func TestCreateEventStoresCalendarID(t *testing.T) {
	service, repo, _, _ := newEventServiceFixture("cal-yeni")
	ctx := context.Background()

	created, err := service.CreateEvent(ctx, &models.Event{Title: "Atölye"}, 1)
	if err != nil {
		t.Fatalf("CreateEvent hata döndü: %v", err)
	}
	if created.CalendarID != "cal-yeni" {
		t.Errorf("harici kimlik geri yazılmalı, %q bulundu", created.CalendarID)
	}
	if created.Status != models.EventStatusConfirmed {
		t.Errorf("varsayılan durum CONFIRMED olmalı, %s bulundu", created.Status)
	}
	stored, err := repo.FindByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("kayıt geri okunamadı: %v", err)
	}
	if stored.CalendarID != "cal-yeni" {
		t.Errorf("harici kimlik kalıcı olmalı, %q bulundu", stored.CalendarID)
	}
}

func TestCreateEventSurvivesCalendarFailure(t *testing.T) {
	// Boş createdID takvim oluşturmanın başarısız olduğu durumu temsil eder.
	service, repo, _, _ := newEventServiceFixture("")
	ctx := context.Background()

	created, err := service.CreateEvent(ctx, &models.Event{Title: "Atölye"}, 1)
	if err != nil {
		t.Fatalf("takvim hatası yerel kaydı düşürmemeli: %v", err)
	}
	if created.CalendarID != "" {
		t.Errorf("CalendarID boş kalmalı, %q bulundu", created.CalendarID)
	}
	if _, err := repo.FindByID(ctx, created.ID); err != nil {
		t.Errorf("yerel kayıt var olmalı: %v", err)
	}
}

func TestCreateEventValidation(t *testing.T) {
	service, _, _, _ := newEventServiceFixture("cal-yeni")
	ctx := context.Background()

	if _, err := service.CreateEvent(ctx, &models.Event{}, 1); !errors.Is(err, ErrEventTitleRequired) {
		t.Errorf("boş başlık reddedilmeli, %v bulundu", err)
	}

	start := time.Date(2026, 9, 2, 18, 0, 0, 0, time.UTC)
	end := start.Add(-time.Hour)
	_, err := service.CreateEvent(ctx, &models.Event{Title: "Atölye", StartDate: &start, EndDate: &end}, 1)
	if !errors.Is(err, ErrEventDatesInvalid) {
		t.Errorf("ters tarih aralığı reddedilmeli, %v bulundu", err)
	}
}

func TestUpdateEventPatchSemantics(t *testing.T) {
	service, _, mediaRepo, gateway := newEventServiceFixture("cal-yeni")
	ctx := context.Background()

	created, err := service.CreateEvent(ctx, &models.Event{
		Title:       "Atölye",
		Description: "Go atölyesi",
		Location:    "İstanbul",
	}, 1)
	if err != nil {
		t.Fatalf("CreateEvent hata döndü: %v", err)
	}

	newTitle := "Go Atölyesi 2026"
	cancelled := models.EventStatusCancelled
	updated, err := service.UpdateEvent(ctx, created.ID, EventPatch{
		Title:  &newTitle,
		Status: &cancelled,
		Media:  &EventMediaPatch{Images: []string{"https://cdn.example.com/afis.png"}},
	})
	if err != nil {
		t.Fatalf("UpdateEvent hata döndü: %v", err)
	}

	if updated.Title != newTitle {
		t.Errorf("başlık güncellenmeli, %q bulundu", updated.Title)
	}
	// nil alanlar dokunulmadan kalır.
	if updated.Description != "Go atölyesi" || updated.Location != "İstanbul" {
		t.Errorf("patch dışı alanlar korunmalı: %q %q", updated.Description, updated.Location)
	}

	media, err := mediaRepo.FindByEventID(ctx, created.ID)
	if err != nil {
		t.Fatalf("medya okunamadı: %v", err)
	}
	if len(media.Images) != 1 {
		t.Errorf("medya kaydedilmeli: %+v", media)
	}

	// Takvim karşılığı güncellenmiş olmalı; iptal durumu çevrilerek yazılır.
	remote := gateway.remote["cal-yeni"]
	if remote.Summary != newTitle {
		t.Errorf("takvim başlığı güncellenmeli, %q bulundu", remote.Summary)
	}
	if remote.Status != "cancelled" {
		t.Errorf("takvim durumu cancelled olmalı, %q bulundu", remote.Status)
	}
}

func TestGetEventByIDScoping(t *testing.T) {
	service, _, _, _ := newEventServiceFixture("cal-yeni")
	ctx := context.Background()

	created, err := service.CreateEvent(ctx, &models.Event{Title: "Atölye"}, 1)
	if err != nil {
		t.Fatalf("CreateEvent hata döndü: %v", err)
	}
	if _, err := service.GetEventByID(ctx, created.ID, 1); err != nil {
		t.Errorf("organizatör etkinliğini görmeli: %v", err)
	}
	if _, err := service.GetEventByID(ctx, created.ID, 2); !errors.Is(err, ErrEventNotFound) {
		t.Errorf("ilgisiz kullanıcı NotFound almalı, %v bulundu", err)
	}
}

func TestDeleteEventRemovesCalendarCopy(t *testing.T) {
	service, repo, _, gateway := newEventServiceFixture("cal-yeni")
	ctx := context.Background()

	created, err := service.CreateEvent(ctx, &models.Event{Title: "Atölye"}, 1)
	if err != nil {
		t.Fatalf("CreateEvent hata döndü: %v", err)
	}
	if err := service.DeleteEvent(ctx, created.ID); err != nil {
		t.Fatalf("DeleteEvent hata döndü: %v", err)
	}
	if _, err := repo.FindByID(ctx, created.ID); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("yerel kayıt silinmeli")
	}
	if _, ok := gateway.remote["cal-yeni"]; ok {
		t.Errorf("takvim kaydı silinmeli")
	}
}
