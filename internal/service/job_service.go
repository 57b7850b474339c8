package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/pavelkurin/contracts-backend/internal/models"
)

// JobRepository описывает зависимости JobService от слоя хранилища.
type JobRepository interface {
	ListUnpaidOwned(ctx context.Context, actorID uuid.UUID, actorType string) ([]models.Job, error)
}

// JobService отдаёт работы в границах видимости актёра.
type JobService struct {
	repo JobRepository
}

func NewJobService(repo JobRepository) *JobService {
	return &JobService{repo: repo}
}

// ListUnpaid возвращает неоплаченные работы по активным контрактам актёра.
func (s *JobService) ListUnpaid(ctx context.Context, actor *models.Profile) ([]models.Job, error) {
	return s.repo.ListUnpaidOwned(ctx, actor.ID, actor.Type)
}
