package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/pavelkurin/contracts-backend/internal/models"
)

// ContractRepository описывает зависимости ContractService от слоя хранилища.
type ContractRepository interface {
	GetOwned(ctx context.Context, contractID, actorID uuid.UUID, actorType string) (*models.Contract, error)
	ListActiveOwned(ctx context.Context, actorID uuid.UUID, actorType string) ([]models.Contract, error)
}

// ContractService отдаёт контракты в границах видимости актёра.
type ContractService struct {
	repo ContractRepository
}

func NewContractService(repo ContractRepository) *ContractService {
	return &ContractService{repo: repo}
}

// GetOwned возвращает контракт, стороной которого является актёр.
func (s *ContractService) GetOwned(ctx context.Context, contractID uuid.UUID, actor *models.Profile) (*models.Contract, error) {
	return s.repo.GetOwned(ctx, contractID, actor.ID, actor.Type)
}

// ListActive возвращает незавершённые контракты актёра.
func (s *ContractService) ListActive(ctx context.Context, actor *models.Profile) ([]models.Contract, error) {
	return s.repo.ListActiveOwned(ctx, actor.ID, actor.Type)
}
