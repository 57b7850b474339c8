package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pavelkurin/contracts-backend/internal/http/handlers/common"
	"github.com/pavelkurin/contracts-backend/internal/repository"
	"github.com/pavelkurin/contracts-backend/internal/service"
	"github.com/pavelkurin/contracts-backend/internal/validation"
)

// AdminHandler отвечает за отчёты по периоду дат.
// Два endpoint'а по-разному отображают одинаковые ошибки дат на статусы —
// это зафиксированный контракт API, не унифицировать.
type AdminHandler struct {
	reports *service.ReportService
}

func NewAdminHandler(reports *service.ReportService) *AdminHandler {
	return &AdminHandler{reports: reports}
}

// parseReportRange парсит обе даты периода; ошибка первой из них побеждает.
func parseReportRange(startRaw, endRaw string) (time.Time, time.Time, error) {
	start, err := validation.ParseReportDate(startRaw)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := validation.ParseReportDate(endRaw)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

// BestProfession GET /admin/best-profession?start&end
// Отсутствующие параметры и несуществующая календарная дата — 404,
// нарушенный формат MM-DD-YYYY — 400.
func (h *AdminHandler) BestProfession(c *gin.Context) {
	startRaw, endRaw := c.Query("start"), c.Query("end")
	if startRaw == "" || endRaw == "" {
		common.RespondMessage(c, http.StatusNotFound, "Start and end dates required")
		return
	}

	start, end, err := parseReportRange(startRaw, endRaw)
	if err != nil {
		if errors.Is(err, validation.ErrDateFormat) {
			common.RespondMessage(c, http.StatusBadRequest, "Invalid date format, expected MM-DD-YYYY")
			return
		}
		common.RespondMessage(c, http.StatusNotFound, "No data found")
		return
	}

	profession, err := h.reports.BestProfession(c.Request.Context(), start, end)
	if err != nil {
		if errors.Is(err, repository.ErrNoReportData) {
			common.RespondMessage(c, http.StatusNotFound, "No data found")
			return
		}
		common.RespondMessage(c, http.StatusBadRequest, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"profession": profession})
}

// BestClients GET /admin/best-clients?start&end&limit
// Любая проблема с датами — 400; limit по умолчанию 2.
func (h *AdminHandler) BestClients(c *gin.Context) {
	startRaw, endRaw := c.Query("start"), c.Query("end")
	if startRaw == "" || endRaw == "" {
		common.RespondMessage(c, http.StatusBadRequest, "Start / end dates required")
		return
	}

	start, end, err := parseReportRange(startRaw, endRaw)
	if err != nil {
		common.RespondMessage(c, http.StatusBadRequest, "Invalid date format, expected MM-DD-YYYY")
		return
	}

	limit := common.ParseIntQuery(c, "limit", service.DefaultBestClientsLimit)

	clients, err := h.reports.BestClients(c.Request.Context(), start, end, limit)
	if err != nil {
		common.RespondMessage(c, http.StatusBadRequest, err.Error())
		return
	}

	c.JSON(http.StatusOK, clients)
}
