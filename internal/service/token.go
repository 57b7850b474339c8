package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/pavelkurin/contracts-backend/internal/models"
)

// TokenManager отвечает за выпуск и проверку JWT access токенов.
// Токен несёт только идентификатор профиля: тип и баланс всегда
// читаются заново при резолве профиля.
type TokenManager struct {
	secret    []byte
	accessTTL time.Duration
}

// NewTokenManager создаёт менеджер токенов.
func NewTokenManager(secret string, accessTTL time.Duration) *TokenManager {
	return &TokenManager{
		secret:    []byte(secret),
		accessTTL: accessTTL,
	}
}

// Generate выпускает access токен для профиля.
func (m *TokenManager) Generate(profile *models.Profile) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   profile.ID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("token manager: не удалось подписать токен: %w", err)
	}
	return signed, nil
}

// AccessTTL возвращает срок жизни access токена.
func (m *TokenManager) AccessTTL() time.Duration {
	return m.accessTTL
}

// ParseAccess проверяет токен и извлекает идентификатор профиля.
func (m *TokenManager) ParseAccess(raw string) (uuid.UUID, error) {
	parsed, err := jwt.ParseWithClaims(raw, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("token manager: неожиданный метод подписи %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || !parsed.Valid {
		return uuid.Nil, jwt.ErrTokenInvalidClaims
	}

	profileID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, jwt.ErrTokenInvalidClaims
	}
	return profileID, nil
}
