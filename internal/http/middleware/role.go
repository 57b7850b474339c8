package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pavelkurin/contracts-backend/internal/models"
)

// RequireProfileType пропускает только актёров с типом из допустимого набора.
// Ставится после ProfileResolution.
func RequireProfileType(types ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(types))
	for _, t := range types {
		allowed[t] = struct{}{}
	}

	return func(c *gin.Context) {
		raw, exists := c.Get(ContextProfileKey)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "требуется авторизация"})
			return
		}

		profile, ok := raw.(*models.Profile)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "требуется авторизация"})
			return
		}

		if _, ok := allowed[profile.Type]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "недостаточно прав"})
			return
		}

		c.Next()
	}
}
