package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/pavelkurin/contracts-backend/internal/models"
)

var ErrContractNotFound = errors.New("contract not found")

type ContractRepository struct {
	db *sqlx.DB
}

func NewContractRepository(db *sqlx.DB) *ContractRepository {
	return &ContractRepository{db: db}
}

// GetOwned возвращает контракт только если актёр является его стороной.
// Отсутствующий и чужой контракт неразличимы для вызывающего.
func (r *ContractRepository) GetOwned(ctx context.Context, contractID, actorID uuid.UUID, actorType string) (*models.Contract, error) {
	var contract models.Contract
	query := fmt.Sprintf(`
		SELECT id, client_id, contractor_id, terms, status, created_at, updated_at
		FROM contracts WHERE id = $1 AND %s = $2
	`, ownerColumn(actorType))
	if err := r.db.GetContext(ctx, &contract, query, contractID, actorID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrContractNotFound
		}
		return nil, fmt.Errorf("contract repository: get owned: %w", err)
	}
	return &contract, nil
}

// ListActiveOwned возвращает все незавершённые контракты актёра.
func (r *ContractRepository) ListActiveOwned(ctx context.Context, actorID uuid.UUID, actorType string) ([]models.Contract, error) {
	contracts := []models.Contract{}
	query := fmt.Sprintf(`
		SELECT id, client_id, contractor_id, terms, status, created_at, updated_at
		FROM contracts WHERE %s = $1 AND status <> $2
		ORDER BY created_at
	`, ownerColumn(actorType))
	if err := r.db.SelectContext(ctx, &contracts, query, actorID, models.ContractStatusTerminated); err != nil {
		return nil, fmt.Errorf("contract repository: list active: %w", err)
	}
	return contracts, nil
}

// Create сохраняет новый контракт. Используется сидированием.
func (r *ContractRepository) Create(ctx context.Context, contract *models.Contract) error {
	err := r.db.GetContext(ctx, contract, `
		INSERT INTO contracts (client_id, contractor_id, terms, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, client_id, contractor_id, terms, status, created_at, updated_at
	`, contract.ClientID, contract.ContractorID, contract.Terms, contract.Status)
	if err != nil {
		return fmt.Errorf("contract repository: create: %w", err)
	}
	return nil
}
