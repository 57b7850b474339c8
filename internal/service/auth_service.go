package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/pavelkurin/contracts-backend/internal/models"
	"github.com/pavelkurin/contracts-backend/internal/repository"
)

// ErrInvalidCredentials возвращается при неверной паре email/пароль.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthRepository описывает зависимости AuthService от слоя хранилища.
type AuthRepository interface {
	GetByEmail(ctx context.Context, email string) (*models.Profile, error)
}

// AuthService реализует вход по email и паролю — конкретный поставщик
// резолва профиля для middleware.
type AuthService struct {
	profiles AuthRepository
	tokens   *TokenManager
}

// LoginResult возвращает итог авторизации.
type LoginResult struct {
	Profile     *models.Profile
	AccessToken string
	ExpiresIn   time.Duration
}

// NewAuthService создаёт сервис аутентификации.
func NewAuthService(profiles AuthRepository, tokens *TokenManager) *AuthService {
	return &AuthService{
		profiles: profiles,
		tokens:   tokens,
	}
}

// Login проверяет учётные данные и выпускает access токен.
// Несуществующий email и неверный пароль неразличимы для вызывающего.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	profile, err := s.profiles.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("auth service: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(profile)
	if err != nil {
		return nil, fmt.Errorf("auth service: %w", err)
	}

	return &LoginResult{
		Profile:     profile,
		AccessToken: token,
		ExpiresIn:   s.tokens.AccessTTL(),
	}, nil
}
