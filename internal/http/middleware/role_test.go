package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/pavelkurin/contracts-backend/internal/models"
)

func newRoleRouter(profile *models.Profile, allowed ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if profile != nil {
		r.Use(func(c *gin.Context) {
			c.Set(ContextProfileKey, profile)
		})
	}
	r.Use(RequireProfileType(allowed...))
	r.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestRequireProfileType_NoProfile(t *testing.T) {
	r := newRoleRouter(nil, models.ProfileTypeClient)

	req, _ := http.NewRequest("GET", "/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireProfileType_Forbidden(t *testing.T) {
	contractor := &models.Profile{ID: uuid.New(), Type: models.ProfileTypeContractor}
	r := newRoleRouter(contractor, models.ProfileTypeClient)

	req, _ := http.NewRequest("GET", "/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireProfileType_Allowed(t *testing.T) {
	client := &models.Profile{ID: uuid.New(), Type: models.ProfileTypeClient}
	r := newRoleRouter(client, models.ProfileTypeClient, models.ProfileTypeContractor)

	req, _ := http.NewRequest("GET", "/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
