package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/pavelkurin/contracts-backend/internal/models"
	"github.com/pavelkurin/contracts-backend/internal/repository"
	"github.com/pavelkurin/contracts-backend/internal/service"
)

type reportRepoMock struct {
	mock.Mock
}

func (m *reportRepoMock) BestProfession(ctx context.Context, from, to time.Time) (string, error) {
	args := m.Called(ctx, from, to)
	return args.String(0), args.Error(1)
}

func (m *reportRepoMock) BestClients(ctx context.Context, from, to time.Time, limit int) ([]models.BestClient, error) {
	args := m.Called(ctx, from, to, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BestClient), args.Error(1)
}

func newAdminRouter(repo *reportRepoMock) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewAdminHandler(service.NewReportService(repo))
	r := gin.New()
	r.GET("/admin/best-profession", handler.BestProfession)
	r.GET("/admin/best-clients", handler.BestClients)
	return r
}

func TestAdminHandler_BestProfession_MissingDates(t *testing.T) {
	r := newAdminRouter(new(reportRepoMock))

	req, _ := http.NewRequest("GET", "/admin/best-profession?start=08-01-2020", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Start and end dates required"}`, w.Body.String())
}

func TestAdminHandler_BestProfession_MalformedDate(t *testing.T) {
	r := newAdminRouter(new(reportRepoMock))

	req, _ := http.NewRequest("GET", "/admin/best-profession?start=2020-08-01&end=08-15-2020", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"Invalid date format, expected MM-DD-YYYY"}`, w.Body.String())
}

func TestAdminHandler_BestProfession_ImpossibleDate(t *testing.T) {
	r := newAdminRouter(new(reportRepoMock))

	// Форма соблюдена, но даты 29 февраля 2021 не существует.
	req, _ := http.NewRequest("GET", "/admin/best-profession?start=02-29-2021&end=08-15-2021", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"No data found"}`, w.Body.String())
}

func TestAdminHandler_BestProfession_NoData(t *testing.T) {
	repo := new(reportRepoMock)
	repo.On("BestProfession", mock.Anything, mock.Anything, mock.Anything).Return("", repository.ErrNoReportData)
	r := newAdminRouter(repo)

	req, _ := http.NewRequest("GET", "/admin/best-profession?start=08-01-2020&end=08-15-2020", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"No data found"}`, w.Body.String())
}

func TestAdminHandler_BestProfession_Success(t *testing.T) {
	repo := new(reportRepoMock)
	start := time.Date(2020, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2020, 8, 15, 0, 0, 0, 0, time.UTC)
	repo.On("BestProfession", mock.Anything, start, end.AddDate(0, 0, 1)).Return("programmer", nil)
	r := newAdminRouter(repo)

	req, _ := http.NewRequest("GET", "/admin/best-profession?start=08-01-2020&end=08-15-2020", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"profession":"programmer"}`, w.Body.String())
	repo.AssertExpectations(t)
}

func TestAdminHandler_BestClients_MissingDates(t *testing.T) {
	r := newAdminRouter(new(reportRepoMock))

	req, _ := http.NewRequest("GET", "/admin/best-clients", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"Start / end dates required"}`, w.Body.String())
}

func TestAdminHandler_BestClients_AnyDateError_IsBadRequest(t *testing.T) {
	r := newAdminRouter(new(reportRepoMock))

	// В отличие от best-profession, несуществующая дата здесь тоже 400.
	for _, q := range []string{
		"start=2020-08-01&end=08-15-2020",
		"start=02-29-2021&end=08-15-2021",
	} {
		req, _ := http.NewRequest("GET", "/admin/best-clients?"+q, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "query=%s", q)
	}
}

func TestAdminHandler_BestClients_DefaultLimit(t *testing.T) {
	repo := new(reportRepoMock)
	repo.On("BestClients", mock.Anything, mock.Anything, mock.Anything, service.DefaultBestClientsLimit).
		Return([]models.BestClient{}, nil)
	r := newAdminRouter(repo)

	req, _ := http.NewRequest("GET", "/admin/best-clients?start=08-01-2020&end=08-15-2020", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	repo.AssertExpectations(t)
}

func TestAdminHandler_BestClients_ExplicitLimit(t *testing.T) {
	repo := new(reportRepoMock)
	clients := []models.BestClient{{FullName: "Harry Potter", Paid: 400}}
	repo.On("BestClients", mock.Anything, mock.Anything, mock.Anything, 1).Return(clients, nil)
	r := newAdminRouter(repo)

	req, _ := http.NewRequest("GET", "/admin/best-clients?start=08-01-2020&end=08-15-2020&limit=1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"fullName":"Harry Potter"`)
	repo.AssertExpectations(t)
}
