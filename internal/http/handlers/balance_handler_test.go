package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/pavelkurin/contracts-backend/internal/models"
	"github.com/pavelkurin/contracts-backend/internal/repository"
	"github.com/pavelkurin/contracts-backend/internal/service"
)

func newBalanceRouter(paymentRepo *paymentRepoMock, profile *models.Profile) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewBalanceHandler(service.NewPaymentService(paymentRepo, service.DefaultDepositRate))
	r := gin.New()
	if profile != nil {
		r.Use(withProfile(profile))
	}
	r.POST("/balances/deposit/:userId", handler.Deposit)
	return r
}

func TestBalanceHandler_Deposit_NoJobs(t *testing.T) {
	client := &models.Profile{ID: uuid.New(), Type: models.ProfileTypeClient}
	contractorID := uuid.New()

	paymentRepo := new(paymentRepoMock)
	paymentRepo.On("ListDepositableJobs", mock.Anything, client.ID, contractorID).Return([]models.Job{}, nil)
	r := newBalanceRouter(paymentRepo, client)

	req, _ := http.NewRequest("POST", "/balances/deposit/"+contractorID.String(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"No Jobs to pay"}`, w.Body.String())
}

func TestBalanceHandler_Deposit_GreedyPass(t *testing.T) {
	client := &models.Profile{ID: uuid.New(), Type: models.ProfileTypeClient}
	contractorID := uuid.New()
	jobs := []models.Job{
		{ID: uuid.New(), Price: 100},
		{ID: uuid.New(), Price: 100},
		{ID: uuid.New(), Price: 100},
	}

	paymentRepo := new(paymentRepoMock)
	paymentRepo.On("ListDepositableJobs", mock.Anything, client.ID, contractorID).Return(jobs, nil)
	paymentRepo.On("TransferDeposit", mock.Anything, jobs[0].ID, client.ID, contractorID, 25.0).Return(nil)
	paymentRepo.On("TransferDeposit", mock.Anything, jobs[1].ID, client.ID, contractorID, 25.0).Return(repository.ErrInsufficientFunds)
	paymentRepo.On("TransferDeposit", mock.Anything, jobs[2].ID, client.ID, contractorID, 25.0).Return(repository.ErrInsufficientFunds)
	r := newBalanceRouter(paymentRepo, client)

	req, _ := http.NewRequest("POST", "/balances/deposit/"+contractorID.String(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Deposit processed","jobs":3,"paid":25,"totalJobsPaid":1}`, w.Body.String())
	paymentRepo.AssertExpectations(t)
}

func TestBalanceHandler_Deposit_PartialOnStorageError(t *testing.T) {
	client := &models.Profile{ID: uuid.New(), Type: models.ProfileTypeClient}
	contractorID := uuid.New()
	jobs := []models.Job{
		{ID: uuid.New(), Price: 100},
		{ID: uuid.New(), Price: 100},
	}

	paymentRepo := new(paymentRepoMock)
	paymentRepo.On("ListDepositableJobs", mock.Anything, client.ID, contractorID).Return(jobs, nil)
	paymentRepo.On("TransferDeposit", mock.Anything, jobs[0].ID, client.ID, contractorID, 25.0).Return(nil)
	paymentRepo.On("TransferDeposit", mock.Anything, jobs[1].ID, client.ID, contractorID, 25.0).Return(errors.New("база недоступна"))
	r := newBalanceRouter(paymentRepo, client)

	req, _ := http.NewRequest("POST", "/balances/deposit/"+contractorID.String(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// Частичный итог возвращается в теле ошибки.
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"jobs":2`)
	assert.Contains(t, w.Body.String(), `"paid":25`)
	assert.Contains(t, w.Body.String(), `"totalJobsPaid":1`)
}

func TestBalanceHandler_Deposit_Unauthorized(t *testing.T) {
	r := newBalanceRouter(new(paymentRepoMock), nil)

	req, _ := http.NewRequest("POST", "/balances/deposit/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
