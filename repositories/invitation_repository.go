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

// invitationColumns dış filtre alanlarını veritabanı sütunlarına eşler.
var invitationColumns = map[string]string{
	"eventId": "invitations.event_id",
	"userId":  "invitations.user_id",
}

// IInvitationRepository davet veritabanı işlemleri için arayüz.
type IInvitationRepository interface {
	CreateBatch(ctx context.Context, invitations []*models.Invitation) error
	FindByID(ctx context.Context, id uint) (*models.Invitation, error)
	// FindByIDForOwner daveti yalnızca davetlinin kendisi için bulur.
	// Sahiplik eşleşmezse ErrNotFound döner.
	FindByIDForOwner(ctx context.Context, id uint, userID uint) (*models.Invitation, error)
	// FindByIDVisibleTo daveti davetliye veya etkinliğin organizatörüne
	// görünür kılar.
	FindByIDVisibleTo(ctx context.Context, id uint, userID uint) (*models.Invitation, error)
	FindByEventID(ctx context.Context, eventID uint) ([]models.Invitation, error)
	FindByEventAndUser(ctx context.Context, eventID uint, userID uint) (*models.Invitation, error)
	FindAllVisibleTo(ctx context.Context, userID uint, params queryparams.ListParams) ([]models.Invitation, error)
	Update(ctx context.Context, invitation *models.Invitation) error
	Delete(ctx context.Context, id uint) error
}

// InvitationRepository IInvitationRepository arayüzünü uygular.
type InvitationRepository struct {
	db *gorm.DB
}

// NewInvitationRepository yeni bir InvitationRepository örneği oluşturur.
func NewInvitationRepository(db *gorm.DB) IInvitationRepository {
	return &InvitationRepository{db: db}
}

// CreateBatch davetleri tek seferde kaydeder. Benzersizlik ihlali
// (aynı etkinlik + aynı davetli) veritabanı hatası olarak döner.
func (r *InvitationRepository) CreateBatch(ctx context.Context, invitations []*models.Invitation) error {
	if len(invitations) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(invitations).Error
}

func (r *InvitationRepository) FindByID(ctx context.Context, id uint) (*models.Invitation, error) {
	if id == 0 {
		return nil, ErrNotFound
	}
	var invitation models.Invitation
	err := r.db.WithContext(ctx).Preload("Event").Preload("User").First(&invitation, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("InvitationRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &invitation, nil
}

func (r *InvitationRepository) FindByIDForOwner(ctx context.Context, id uint, userID uint) (*models.Invitation, error) {
	if id == 0 || userID == 0 {
		return nil, ErrNotFound
	}
	var invitation models.Invitation
	err := r.db.WithContext(ctx).Preload("Event").Preload("User").
		Where("id = ? AND user_id = ?", id, userID).
		First(&invitation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("InvitationRepository.FindByIDForOwner: DB error", zap.Uint("id", id), zap.Uint("userID", userID), zap.Error(err))
		return nil, err
	}
	return &invitation, nil
}

func (r *InvitationRepository) FindByIDVisibleTo(ctx context.Context, id uint, userID uint) (*models.Invitation, error) {
	if id == 0 || userID == 0 {
		return nil, ErrNotFound
	}
	var invitation models.Invitation
	err := r.db.WithContext(ctx).Preload("Event").Preload("User").
		Where("invitations.id = ?", id).
		Where("invitations.user_id = ? OR EXISTS (SELECT 1 FROM events WHERE events.id = invitations.event_id AND events.user_id = ?)", userID, userID).
		First(&invitation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("InvitationRepository.FindByIDVisibleTo: DB error", zap.Uint("id", id), zap.Uint("userID", userID), zap.Error(err))
		return nil, err
	}
	return &invitation, nil
}

func (r *InvitationRepository) FindByEventID(ctx context.Context, eventID uint) ([]models.Invitation, error) {
	if eventID == 0 {
		return nil, errors.New("geçersiz Event ID")
	}
	var invitations []models.Invitation
	err := r.db.WithContext(ctx).Preload("User").
		Where("event_id = ?", eventID).
		Order("id asc").
		Find(&invitations).Error
	if err != nil {
		configslog.Log.Error("InvitationRepository.FindByEventID: DB error", zap.Uint("eventID", eventID), zap.Error(err))
		return nil, err
	}
	return invitations, nil
}

func (r *InvitationRepository) FindByEventAndUser(ctx context.Context, eventID uint, userID uint) (*models.Invitation, error) {
	if eventID == 0 || userID == 0 {
		return nil, ErrNotFound
	}
	var invitation models.Invitation
	err := r.db.WithContext(ctx).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		First(&invitation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("InvitationRepository.FindByEventAndUser: DB error", zap.Uint("eventID", eventID), zap.Uint("userID", userID), zap.Error(err))
		return nil, err
	}
	return &invitation, nil
}

func (r *InvitationRepository) FindAllVisibleTo(ctx context.Context, userID uint, params queryparams.ListParams) ([]models.Invitation, error) {
	if userID == 0 {
		return nil, errors.New("geçersiz kullanıcı ID")
	}
	var invitations []models.Invitation
	query := r.db.WithContext(ctx).Model(&models.Invitation{}).
		Where("invitations.user_id = ? OR EXISTS (SELECT 1 FROM events WHERE events.id = invitations.event_id AND events.user_id = ?)", userID, userID)
	query = params.Apply(query, invitationColumns)
	err := query.Find(&invitations).Error
	if err != nil {
		configslog.Log.Error("InvitationRepository.FindAllVisibleTo: DB error", zap.Uint("userID", userID), zap.Error(err))
		return nil, err
	}
	return invitations, nil
}

func (r *InvitationRepository) Update(ctx context.Context, invitation *models.Invitation) error {
	if invitation == nil || invitation.ID == 0 {
		return errors.New("güncellenecek davet geçerli değil")
	}
	return r.db.WithContext(ctx).Save(invitation).Error
}

func (r *InvitationRepository) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return ErrNotFound
	}
	result := r.db.WithContext(ctx).Delete(&models.Invitation{}, id)
	if result.Error != nil {
		configslog.Log.Error("InvitationRepository.Delete: DB error", zap.Uint("id", id), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ IInvitationRepository = (*InvitationRepository)(nil)
