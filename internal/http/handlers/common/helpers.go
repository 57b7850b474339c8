package common

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pavelkurin/contracts-backend/internal/http/middleware"
	"github.com/pavelkurin/contracts-backend/internal/models"
)

// ErrProfileNotFound возвращается, когда профиль не найден в контексте запроса.
var ErrProfileNotFound = errors.New("профиль не найден в контексте")

// CurrentProfile извлекает профиль актёра, положенный middleware'ом ProfileResolution.
func CurrentProfile(c *gin.Context) (*models.Profile, error) {
	raw, exists := c.Get(middleware.ContextProfileKey)
	if !exists {
		return nil, ErrProfileNotFound
	}

	profile, ok := raw.(*models.Profile)
	if !ok {
		return nil, ErrProfileNotFound
	}

	return profile, nil
}

// ParseUUIDParam парсит UUID из параметра маршрута.
func ParseUUIDParam(c *gin.Context, paramName string) (uuid.UUID, error) {
	param := c.Param(paramName)
	if param == "" {
		return uuid.Nil, fmt.Errorf("параметр %s отсутствует", paramName)
	}

	parsed, err := uuid.Parse(param)
	if err != nil {
		return uuid.Nil, fmt.Errorf("параметр %s должен быть валидным UUID", paramName)
	}

	return parsed, nil
}

// ParseIntQuery безопасно читает целочисленный query параметр с дефолтом.
func ParseIntQuery(c *gin.Context, key string, fallback int) int {
	if v := c.Query(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return fallback
}

// RespondMessage отправляет конверт {"message": ...} с заданным статусом.
// Единый формат и для ошибок, и для статусных ответов.
func RespondMessage(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}

// RespondUnauthorized отправляет 401.
func RespondUnauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "требуется авторизация"
	}
	RespondMessage(c, http.StatusUnauthorized, message)
}
