package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/pavelkurin/contracts-backend/internal/models"
)

type JobRepository struct {
	db *sqlx.DB
}

func NewJobRepository(db *sqlx.DB) *JobRepository {
	return &JobRepository{db: db}
}

// ListUnpaidOwned возвращает неоплаченные работы по активным контрактам актёра.
// Работа видна только через join к контракту, стороной которого актёр является.
func (r *JobRepository) ListUnpaidOwned(ctx context.Context, actorID uuid.UUID, actorType string) ([]models.Job, error) {
	jobs := []models.Job{}
	query := fmt.Sprintf(`
		SELECT j.id, j.contract_id, j.description, j.price, j.paid, j.payment_date, j.deposit_paid, j.created_at, j.updated_at
		FROM jobs j
		JOIN contracts c ON c.id = j.contract_id
		WHERE j.paid = FALSE AND c.status = $1 AND c.%s = $2
		ORDER BY j.created_at
	`, ownerColumn(actorType))
	if err := r.db.SelectContext(ctx, &jobs, query, models.ContractStatusInProgress, actorID); err != nil {
		return nil, fmt.Errorf("job repository: list unpaid: %w", err)
	}
	return jobs, nil
}

// Create сохраняет новую работу. Используется сидированием.
func (r *JobRepository) Create(ctx context.Context, job *models.Job) error {
	err := r.db.GetContext(ctx, job, `
		INSERT INTO jobs (contract_id, description, price, paid, payment_date, deposit_paid)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, contract_id, description, price, paid, payment_date, deposit_paid, created_at, updated_at
	`, job.ContractID, job.Description, job.Price, job.Paid, job.PaymentDate, job.DepositPaid)
	if err != nil {
		return fmt.Errorf("job repository: create: %w", err)
	}
	return nil
}
