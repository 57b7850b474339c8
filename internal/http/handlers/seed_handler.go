package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pavelkurin/contracts-backend/internal/http/handlers/common"
	"github.com/pavelkurin/contracts-backend/internal/service"
)

// SeedHandler наполняет базу демонстрационными данными. Доступен только
// в development окружении.
type SeedHandler struct {
	seed *service.SeedService
}

func NewSeedHandler(seed *service.SeedService) *SeedHandler {
	return &SeedHandler{seed: seed}
}

// Seed обрабатывает POST /api/seed.
func (h *SeedHandler) Seed(c *gin.Context) {
	if err := h.seed.SeedData(c.Request.Context()); err != nil {
		common.RespondMessage(c, http.StatusInternalServerError, err.Error())
		return
	}
	common.RespondMessage(c, http.StatusOK, "база заполнена демонстрационными данными")
}
