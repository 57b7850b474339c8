package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pavelkurin/contracts-backend/internal/http/handlers/common"
	"github.com/pavelkurin/contracts-backend/internal/service"
)

// BalanceHandler отвечает за движение средств на балансах.
type BalanceHandler struct {
	payments *service.PaymentService
}

func NewBalanceHandler(payments *service.PaymentService) *BalanceHandler {
	return &BalanceHandler{payments: payments}
}

// Deposit POST /balances/deposit/:userId
// Жадный проход по депозитам в пользу исполнителя userId. Ответ несёт
// количество рассмотренных работ, уплаченную сумму и число проведённых
// депозитов; при прерывании прохода частичный итог попадает в тело 400.
func (h *BalanceHandler) Deposit(c *gin.Context) {
	profile, err := common.CurrentProfile(c)
	if err != nil {
		common.RespondUnauthorized(c, err.Error())
		return
	}

	contractorID, err := common.ParseUUIDParam(c, "userId")
	if err != nil {
		common.RespondMessage(c, http.StatusBadRequest, err.Error())
		return
	}

	summary, err := h.payments.DepositToContractor(c.Request.Context(), profile.ID, contractorID)
	if err != nil {
		if errors.Is(err, service.ErrNoJobsToDeposit) {
			common.RespondMessage(c, http.StatusBadRequest, "No Jobs to pay")
			return
		}
		if summary != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"message":       err.Error(),
				"jobs":          summary.JobsConsidered,
				"paid":          summary.TotalPaid,
				"totalJobsPaid": summary.JobsPaid,
			})
			return
		}
		common.RespondMessage(c, http.StatusBadRequest, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Deposit processed",
		"jobs":          summary.JobsConsidered,
		"paid":          summary.TotalPaid,
		"totalJobsPaid": summary.JobsPaid,
	})
}
