package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pavelkurin/contracts-backend/internal/http/handlers/common"
	"github.com/pavelkurin/contracts-backend/internal/repository"
	"github.com/pavelkurin/contracts-backend/internal/service"
)

// JobHandler отвечает за чтение и оплату работ.
type JobHandler struct {
	jobs     *service.JobService
	payments *service.PaymentService
}

func NewJobHandler(jobs *service.JobService, payments *service.PaymentService) *JobHandler {
	return &JobHandler{
		jobs:     jobs,
		payments: payments,
	}
}

// ListUnpaid GET /jobs/unpaid
// Неоплаченные работы по активным контрактам актёра.
func (h *JobHandler) ListUnpaid(c *gin.Context) {
	profile, err := common.CurrentProfile(c)
	if err != nil {
		common.RespondUnauthorized(c, err.Error())
		return
	}

	jobs, err := h.jobs.ListUnpaid(c.Request.Context(), profile)
	if err != nil {
		common.RespondMessage(c, http.StatusBadRequest, err.Error())
		return
	}

	c.JSON(http.StatusOK, jobs)
}

// Pay POST /jobs/:job_id/pay
// Полная оплата работы клиентом. Предусловия проверяются в хранилище
// в порядке: работа найдена и принадлежит клиенту, ещё не оплачена,
// баланса хватает.
func (h *JobHandler) Pay(c *gin.Context) {
	profile, err := common.CurrentProfile(c)
	if err != nil {
		common.RespondUnauthorized(c, err.Error())
		return
	}

	jobID, err := common.ParseUUIDParam(c, "job_id")
	if err != nil {
		common.RespondMessage(c, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.payments.PayJob(c.Request.Context(), jobID, profile.ID); err != nil {
		switch {
		case errors.Is(err, repository.ErrJobNotFound):
			common.RespondMessage(c, http.StatusBadRequest, "No Job found")
		case errors.Is(err, repository.ErrJobAlreadyPaid):
			common.RespondMessage(c, http.StatusBadRequest, "Job already paid")
		case errors.Is(err, repository.ErrInsufficientFunds):
			common.RespondMessage(c, http.StatusBadRequest, "Insufficient funds")
		default:
			common.RespondMessage(c, http.StatusBadRequest, err.Error())
		}
		return
	}

	common.RespondMessage(c, http.StatusOK, "Paid successfully")
}
