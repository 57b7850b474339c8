package service

import (
	"context"
	"time"

	"github.com/pavelkurin/contracts-backend/internal/models"
)

// DefaultBestClientsLimit — число клиентов в отчёте по умолчанию.
const DefaultBestClientsLimit = 2

// ReportRepository описывает зависимости ReportService от слоя хранилища.
type ReportRepository interface {
	BestProfession(ctx context.Context, from, to time.Time) (string, error)
	BestClients(ctx context.Context, from, to time.Time, limit int) ([]models.BestClient, error)
}

// ReportService готовит админские отчёты за период дат.
type ReportService struct {
	repo ReportRepository
}

func NewReportService(repo ReportRepository) *ReportService {
	return &ReportService{repo: repo}
}

// BestProfession возвращает самую доходную профессию за период [start, end].
// Конец периода включается целиком: payment_date несёт время суток,
// поэтому верхняя граница — начало следующего дня.
func (s *ReportService) BestProfession(ctx context.Context, start, end time.Time) (string, error) {
	return s.repo.BestProfession(ctx, start, end.AddDate(0, 0, 1))
}

// BestClients возвращает до limit самых платящих клиентов за период [start, end].
func (s *ReportService) BestClients(ctx context.Context, start, end time.Time, limit int) ([]models.BestClient, error) {
	if limit <= 0 {
		limit = DefaultBestClientsLimit
	}
	return s.repo.BestClients(ctx, start, end.AddDate(0, 0, 1), limit)
}
