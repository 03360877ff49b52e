package services

import (
	"context"
	"errors"

	"eventify.link/models"
	"eventify.link/pkg/apperrors"
	"eventify.link/repositories"
)

// UserService özel servis hataları
var (
	ErrUserNotFound = apperrors.NotFound("kullanıcı bulunamadı")
)

// UserPatch kullanıcı güncellemesinde değişebilecek alanları taşır.
// nil alanlar dokunulmadan bırakılır.
type UserPatch struct {
	FirstName *string
	LastName  *string
	MobileNo  *string
	ImageURL  *string
}

// IUserService kullanıcı işlemleri için arayüz.
type IUserService interface {
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	GetUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, id uint, patch UserPatch) (*models.User, error)
}

// UserService IUserService arayüzünü uygular.
type UserService struct {
	repo repositories.IUserRepository
}

// NewUserService yeni bir UserService örneği oluşturur.
func NewUserService(repo repositories.IUserRepository) IUserService {
	return &UserService{repo: repo}
}

func (s *UserService) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	if user == nil || user.Email == "" {
		return nil, apperrors.BadRequest("e-posta adresi zorunludur")
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, apperrors.Internal(err)
	}
	return user, nil
}

func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, apperrors.Internal(err)
	}
	return user, nil
}

func (s *UserService) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, apperrors.Internal(err)
	}
	return user, nil
}

func (s *UserService) GetUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return users, nil
}

// UpdateUser yüklü kaydın üzerine patch'i alan alan işler; ilişkiler ve
// kontrolsüz alanlar hiçbir zaman ezilmez.
func (s *UserService) UpdateUser(ctx context.Context, id uint, patch UserPatch) (*models.User, error) {
	user, err := s.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.FirstName != nil {
		user.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		user.LastName = *patch.LastName
	}
	if patch.MobileNo != nil {
		user.MobileNo = *patch.MobileNo
	}
	if patch.ImageURL != nil {
		user.ImageURL = *patch.ImageURL
	}
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, apperrors.Internal(err)
	}
	return user, nil
}

var _ IUserService = (*UserService)(nil)
