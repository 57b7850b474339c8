package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pavelkurin/contracts-backend/internal/models"
	"github.com/pavelkurin/contracts-backend/internal/service"
)

// Context ключи для gin.Context.
const (
	ContextProfileKey = "profile"
)

// ProfileResolver загружает профиль по идентификатору из токена.
type ProfileResolver interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error)
}

// ProfileResolution проверяет JWT access токен и кладёт актуальный профиль
// актёра в контекст запроса. Тип и баланс берутся из хранилища, не из токена.
func ProfileResolution(tokens *service.TokenManager, profiles ProfileResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "требуется авторизация"})
			return
		}

		raw := strings.TrimPrefix(auth, "Bearer ")
		profileID, err := tokens.ParseAccess(raw)
		if err != nil || profileID == uuid.Nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "токен невалиден"})
			return
		}

		profile, err := profiles.GetByID(c.Request.Context(), profileID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "профиль не найден"})
			return
		}

		c.Set(ContextProfileKey, profile)
		c.Next()
	}
}
