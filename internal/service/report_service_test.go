package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/google/uuid"

	"github.com/pavelkurin/contracts-backend/internal/models"
	"github.com/pavelkurin/contracts-backend/internal/repository"
)

type mockReportRepo struct {
	mock.Mock
}

func (m *mockReportRepo) BestProfession(ctx context.Context, from, to time.Time) (string, error) {
	args := m.Called(ctx, from, to)
	return args.String(0), args.Error(1)
}

func (m *mockReportRepo) BestClients(ctx context.Context, from, to time.Time, limit int) ([]models.BestClient, error) {
	args := m.Called(ctx, from, to, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BestClient), args.Error(1)
}

func TestReportService_BestProfession_EndDateInclusive(t *testing.T) {
	repo := new(mockReportRepo)
	svc := NewReportService(repo)
	ctx := context.Background()

	start := time.Date(2020, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2020, 8, 15, 0, 0, 0, 0, time.UTC)

	// Верхняя граница в хранилище — начало следующего дня, чтобы захватить
	// оплаты с временем суток в последний день периода.
	repo.On("BestProfession", ctx, start, end.AddDate(0, 0, 1)).Return("programmer", nil)

	profession, err := svc.BestProfession(ctx, start, end)
	assert.NoError(t, err)
	assert.Equal(t, "programmer", profession)
	repo.AssertExpectations(t)
}

func TestReportService_BestProfession_NoData(t *testing.T) {
	repo := new(mockReportRepo)
	svc := NewReportService(repo)
	ctx := context.Background()

	start := time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2019, 1, 2, 0, 0, 0, 0, time.UTC)
	repo.On("BestProfession", ctx, start, end.AddDate(0, 0, 1)).Return("", repository.ErrNoReportData)

	_, err := svc.BestProfession(ctx, start, end)
	assert.ErrorIs(t, err, repository.ErrNoReportData)
}

func TestReportService_BestClients_DefaultLimit(t *testing.T) {
	repo := new(mockReportRepo)
	svc := NewReportService(repo)
	ctx := context.Background()

	start := time.Date(2020, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2020, 8, 15, 0, 0, 0, 0, time.UTC)

	expected := []models.BestClient{
		{ID: uuid.New(), FullName: "Harry Potter", Paid: 400},
		{ID: uuid.New(), FullName: "Mr Robot", Paid: 200},
	}
	repo.On("BestClients", ctx, start, end.AddDate(0, 0, 1), DefaultBestClientsLimit).Return(expected, nil)

	clients, err := svc.BestClients(ctx, start, end, 0)
	assert.NoError(t, err)
	assert.Len(t, clients, 2)
	repo.AssertExpectations(t)
}

func TestReportService_BestClients_ExplicitLimit(t *testing.T) {
	repo := new(mockReportRepo)
	svc := NewReportService(repo)
	ctx := context.Background()

	start := time.Date(2020, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2020, 8, 15, 0, 0, 0, 0, time.UTC)

	repo.On("BestClients", ctx, start, end.AddDate(0, 0, 1), 5).Return([]models.BestClient{}, nil)

	clients, err := svc.BestClients(ctx, start, end, 5)
	assert.NoError(t, err)
	assert.Empty(t, clients)
}
