package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/pavelkurin/contracts-backend/internal/models"
)

var ErrNoReportData = errors.New("no report data")

// ReportRepository выполняет агрегирующие запросы для админских отчётов.
// Группировка и сортировка отданы планировщику Postgres.
type ReportRepository struct {
	db *sqlx.DB
}

func NewReportRepository(db *sqlx.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// BestProfession возвращает профессию исполнителя, чьи оплаченные работы
// за период [from, to) дали наибольшую сумму.
func (r *ReportRepository) BestProfession(ctx context.Context, from, to time.Time) (string, error) {
	var profession string
	err := r.db.GetContext(ctx, &profession, `
		SELECT p.profession
		FROM jobs j
		JOIN contracts c ON c.id = j.contract_id
		JOIN profiles p ON p.id = c.contractor_id
		WHERE j.paid = TRUE AND j.payment_date >= $1 AND j.payment_date < $2
		GROUP BY p.profession
		ORDER BY SUM(j.price) DESC
		LIMIT 1
	`, from, to)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNoReportData
		}
		return "", fmt.Errorf("report repository: best profession: %w", err)
	}
	return profession, nil
}

// BestClients возвращает до limit клиентов, упорядоченных по сумме оплат
// за период [from, to).
func (r *ReportRepository) BestClients(ctx context.Context, from, to time.Time, limit int) ([]models.BestClient, error) {
	clients := []models.BestClient{}
	err := r.db.SelectContext(ctx, &clients, `
		SELECT p.id, p.first_name || ' ' || p.last_name AS full_name, SUM(j.price) AS paid
		FROM jobs j
		JOIN contracts c ON c.id = j.contract_id
		JOIN profiles p ON p.id = c.client_id
		WHERE j.paid = TRUE AND j.payment_date >= $1 AND j.payment_date < $2
		GROUP BY p.id, p.first_name, p.last_name
		ORDER BY paid DESC
		LIMIT $3
	`, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("report repository: best clients: %w", err)
	}
	return clients, nil
}
