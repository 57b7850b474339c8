package models

import "github.com/google/uuid"

// BestClient — строка отчёта по самым платящим клиентам.
type BestClient struct {
	ID       uuid.UUID `db:"id" json:"id"`
	FullName string    `db:"full_name" json:"fullName"`
	Paid     float64   `db:"paid" json:"paid"`
}

// DepositSummary — итог жадного прохода по депозитам за один запрос.
type DepositSummary struct {
	JobsConsidered int     `json:"jobs"`
	TotalPaid      float64 `json:"paid"`
	JobsPaid       int     `json:"totalJobsPaid"`
}
