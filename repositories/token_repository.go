package repositories

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"eventify.link/configs/configslog"
	"eventify.link/models"
)

// ITokenRepository OAuth kimlik bilgisi veritabanı işlemleri için arayüz.
type ITokenRepository interface {
	Create(ctx context.Context, token *models.Token) error
	FindByUserID(ctx context.Context, userID uint) (*models.Token, error)
	DeleteByUserID(ctx context.Context, userID uint) error
}

// TokenRepository ITokenRepository arayüzünü uygular.
type TokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository yeni bir TokenRepository örneği oluşturur.
func NewTokenRepository(db *gorm.DB) ITokenRepository {
	return &TokenRepository{db: db}
}

func (r *TokenRepository) Create(ctx context.Context, token *models.Token) error {
	if token == nil || token.UserID == 0 {
		return errors.New("sahipsiz token oluşturulamaz")
	}
	return r.db.WithContext(ctx).Create(token).Error
}

func (r *TokenRepository) FindByUserID(ctx context.Context, userID uint) (*models.Token, error) {
	if userID == 0 {
		return nil, ErrNotFound
	}
	var token models.Token
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("TokenRepository.FindByUserID: DB error", zap.Uint("userID", userID), zap.Error(err))
		return nil, err
	}
	return &token, nil
}

// DeleteByUserID kullanıcının mevcut kimlik bilgisini siler. Kayıt yoksa
// hata değildir; yeni token oluşturma akışı her durumda önce bunu çağırır.
func (r *TokenRepository) DeleteByUserID(ctx context.Context, userID uint) error {
	if userID == 0 {
		return errors.New("geçersiz kullanıcı ID")
	}
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.Token{}).Error
}

var _ ITokenRepository = (*TokenRepository)(nil)
