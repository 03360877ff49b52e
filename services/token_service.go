package services

import (
	"context"
	"errors"

	"eventify.link/models"
	"eventify.link/pkg/apperrors"
	"eventify.link/repositories"
)

// ITokenService OAuth kimlik bilgisi işlemleri için arayüz.
type ITokenService interface {
	CreateToken(ctx context.Context, userID uint, accessToken string, refreshToken string) (*models.Token, error)
	GetToken(ctx context.Context, userID uint) (*models.Token, error)
	DeleteToken(ctx context.Context, userID uint) error
}

// TokenService ITokenService arayüzünü uygular.
type TokenService struct {
	repo repositories.ITokenRepository
}

// NewTokenService yeni bir TokenService örneği oluşturur.
func NewTokenService(repo repositories.ITokenRepository) ITokenService {
	return &TokenService{repo: repo}
}

// CreateToken kullanıcının kimlik bilgisini kaydeder. Kullanıcı başına tek
// canlı kayıt olduğundan önce eskisi silinir.
func (s *TokenService) CreateToken(ctx context.Context, userID uint, accessToken string, refreshToken string) (*models.Token, error) {
	if err := s.repo.DeleteByUserID(ctx, userID); err != nil {
		return nil, apperrors.Internal(err)
	}
	token := &models.Token{UserID: userID, AccessToken: accessToken, RefreshToken: refreshToken}
	if err := s.repo.Create(ctx, token); err != nil {
		return nil, apperrors.Internal(err)
	}
	return token, nil
}

func (s *TokenService) GetToken(ctx context.Context, userID uint) (*models.Token, error) {
	token, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("kimlik bilgisi bulunamadı")
		}
		return nil, apperrors.Internal(err)
	}
	return token, nil
}

func (s *TokenService) DeleteToken(ctx context.Context, userID uint) error {
	if err := s.repo.DeleteByUserID(ctx, userID); err != nil {
		return apperrors.Internal(err)
	}
	return nil
}

var _ ITokenService = (*TokenService)(nil)
