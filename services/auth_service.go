package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"

	"eventify.link/models"
	"eventify.link/pkg/apperrors"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// googleUserInfo Google'ın userinfo ucundan dönen alanlar.
type googleUserInfo struct {
	Email      string `json:"email"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Picture    string `json:"picture"`
}

// IAuthService Google OAuth girişi ve JWT üretimi/doğrulaması için arayüz.
type IAuthService interface {
	// LoginURL kullanıcının yönlendirileceği Google onay ekranı adresini üretir.
	LoginURL(state string) string
	// HandleCallback yetkilendirme kodunu token'a çevirir, kullanıcıyı
	// bulur/oluşturur, takvim kimlik bilgisini saklar ve oturum JWT'si döndürür.
	HandleCallback(ctx context.Context, code string) (*models.User, string, error)
	VerifyToken(tokenString string) (uint, error)
}

// AuthService IAuthService arayüzünü uygular.
type AuthService struct {
	oauthConfig  *oauth2.Config
	userService  IUserService
	tokenService ITokenService
	jwtSecret    []byte
	jwtExpiry    time.Duration
}

// NewAuthService yeni bir AuthService örneği oluşturur.
func NewAuthService(oauthConfig *oauth2.Config, userService IUserService, tokenService ITokenService, jwtSecret string, jwtExpiry time.Duration) IAuthService {
	return &AuthService{
		oauthConfig:  oauthConfig,
		userService:  userService,
		tokenService: tokenService,
		jwtSecret:    []byte(jwtSecret),
		jwtExpiry:    jwtExpiry,
	}
}

func (s *AuthService) LoginURL(state string) string {
	// Refresh token alabilmek için offline erişim istenir.
	return s.oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
}

func (s *AuthService) HandleCallback(ctx context.Context, code string) (*models.User, string, error) {
	token, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, "", apperrors.Unauthorized("yetkilendirme kodu doğrulanamadı")
	}

	info, err := s.fetchUserInfo(ctx, token)
	if err != nil {
		return nil, "", apperrors.Internal(err)
	}

	user, err := s.userService.FindByEmail(ctx, info.Email)
	if err != nil {
		if !errors.Is(err, ErrUserNotFound) {
			return nil, "", err
		}
		user, err = s.userService.CreateUser(ctx, &models.User{
			FirstName: info.GivenName,
			LastName:  info.FamilyName,
			Email:     info.Email,
			ImageURL:  info.Picture,
		})
		if err != nil {
			return nil, "", err
		}
	}

	// Takvim erişimi için kimlik bilgisini sakla (eskisi silinir).
	if _, err := s.tokenService.CreateToken(ctx, user.ID, token.AccessToken, token.RefreshToken); err != nil {
		return nil, "", err
	}

	jwtToken, err := s.issueJWT(user)
	if err != nil {
		return nil, "", apperrors.Internal(err)
	}
	return user, jwtToken, nil
}

func (s *AuthService) fetchUserInfo(ctx context.Context, token *oauth2.Token) (*googleUserInfo, error) {
	client := s.oauthConfig.Client(ctx, token)
	resp, err := client.Get(googleUserInfoURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (s *AuthService) issueJWT(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     time.Now().Add(s.jwtExpiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// VerifyToken JWT'yi doğrular ve içindeki kullanıcı kimliğini döndürür.
func (s *AuthService) VerifyToken(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("beklenmeyen imza yöntemi")
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return 0, apperrors.Unauthorized("geçersiz veya süresi dolmuş token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, apperrors.Unauthorized("geçersiz token içeriği")
	}
	userID, ok := claims["user_id"].(float64)
	if !ok || userID <= 0 {
		return 0, apperrors.Unauthorized("geçersiz token içeriği")
	}
	return uint(userID), nil
}

var _ IAuthService = (*AuthService)(nil)
