package models

import (
	"time"

	"github.com/google/uuid"
)

// Job — единица оплачиваемой работы внутри контракта.
// Флаги paid и deposit_paid независимы и переключаются только в одну сторону.
type Job struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	ContractID  uuid.UUID  `db:"contract_id" json:"contract_id"`
	Description string     `db:"description" json:"description"`
	Price       float64    `db:"price" json:"price"`
	Paid        bool       `db:"paid" json:"paid"`
	PaymentDate *time.Time `db:"payment_date" json:"payment_date,omitempty"`
	DepositPaid bool       `db:"deposit_paid" json:"deposit_paid"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}
