package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pavelkurin/contracts-backend/internal/http/handlers/common"
	"github.com/pavelkurin/contracts-backend/internal/repository"
	"github.com/pavelkurin/contracts-backend/internal/service"
)

// ContractHandler отвечает за чтение контрактов актёра.
type ContractHandler struct {
	contracts *service.ContractService
}

func NewContractHandler(contracts *service.ContractService) *ContractHandler {
	return &ContractHandler{contracts: contracts}
}

// GetContract GET /contracts/:id
// Контракт отдаётся только его стороне; чужой и отсутствующий контракт
// дают одинаковый ответ 400 "No contract found".
func (h *ContractHandler) GetContract(c *gin.Context) {
	profile, err := common.CurrentProfile(c)
	if err != nil {
		common.RespondUnauthorized(c, err.Error())
		return
	}

	contractID, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondMessage(c, http.StatusBadRequest, err.Error())
		return
	}

	contract, err := h.contracts.GetOwned(c.Request.Context(), contractID, profile)
	if err != nil {
		if errors.Is(err, repository.ErrContractNotFound) {
			common.RespondMessage(c, http.StatusBadRequest, "No contract found")
			return
		}
		common.RespondMessage(c, http.StatusBadRequest, err.Error())
		return
	}

	c.JSON(http.StatusOK, contract)
}

// ListContracts GET /contracts
// Все незавершённые контракты актёра, без пагинации.
func (h *ContractHandler) ListContracts(c *gin.Context) {
	profile, err := common.CurrentProfile(c)
	if err != nil {
		common.RespondUnauthorized(c, err.Error())
		return
	}

	contracts, err := h.contracts.ListActive(c.Request.Context(), profile)
	if err != nil {
		common.RespondMessage(c, http.StatusBadRequest, err.Error())
		return
	}

	c.JSON(http.StatusOK, contracts)
}
