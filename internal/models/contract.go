package models

import (
	"time"

	"github.com/google/uuid"
)

// Статусы контракта
const (
	ContractStatusNew        = "new"
	ContractStatusInProgress = "in_progress"
	ContractStatusTerminated = "terminated"
)

// Contract связывает одного клиента с одним исполнителем.
// Оплаты и депозиты допустимы только по контрактам in_progress;
// terminated контракты не попадают в списки активных.
type Contract struct {
	ID           uuid.UUID `db:"id" json:"id"`
	ClientID     uuid.UUID `db:"client_id" json:"client_id"`
	ContractorID uuid.UUID `db:"contractor_id" json:"contractor_id"`
	Terms        string    `db:"terms" json:"terms"`
	Status       string    `db:"status" json:"status"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}
