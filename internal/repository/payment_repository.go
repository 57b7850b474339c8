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

var (
	ErrJobNotFound        = errors.New("job not found")
	ErrJobAlreadyPaid     = errors.New("job already paid")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrDepositUnavailable = errors.New("deposit unavailable for job")
)

// PaymentRepository выполняет перемещение денег между балансами.
// Каждый перевод — одна транзакция: блокировка строки работы FOR UPDATE,
// условное списание (balance >= сумма проверяется самим UPDATE) и зачисление.
// Чтение-изменение-запись баланса в коде приложения не допускается.
type PaymentRepository struct {
	db *sqlx.DB
}

func NewPaymentRepository(db *sqlx.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// payableJob — строка работы вместе с исполнителем её контракта.
type payableJob struct {
	models.Job
	ContractorID uuid.UUID `db:"contractor_id"`
}

// PayJob полностью оплачивает работу с баланса клиента на баланс исполнителя.
// Все три мутации (списание, зачисление, отметка paid) фиксируются одной
// транзакцией: сбой на любом шаге не оставляет частичного состояния.
func (r *PaymentRepository) PayJob(ctx context.Context, jobID, clientID uuid.UUID) (*models.Job, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("payment repository: begin pay: %w", err)
	}
	defer tx.Rollback()

	// Принадлежность проверяется самим запросом: работа ищется только
	// среди активных контрактов, где клиент — вызывающий.
	var row payableJob
	err = tx.GetContext(ctx, &row, `
		SELECT j.id, j.contract_id, j.description, j.price, j.paid, j.payment_date,
		       j.deposit_paid, j.created_at, j.updated_at, c.contractor_id
		FROM jobs j
		JOIN contracts c ON c.id = j.contract_id
		WHERE j.id = $1 AND c.client_id = $2 AND c.status = $3
		FOR UPDATE OF j
	`, jobID, clientID, models.ContractStatusInProgress)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("payment repository: lock job: %w", err)
	}

	// paid переключается только в одну сторону.
	if row.Paid {
		return nil, ErrJobAlreadyPaid
	}

	if err := debit(ctx, tx, clientID, row.Price); err != nil {
		return nil, err
	}
	if err := credit(ctx, tx, row.ContractorID, row.Price); err != nil {
		return nil, err
	}

	job := row.Job
	err = tx.GetContext(ctx, &job, `
		UPDATE jobs SET paid = TRUE, payment_date = NOW(), updated_at = NOW()
		WHERE id = $1
		RETURNING id, contract_id, description, price, paid, payment_date, deposit_paid, created_at, updated_at
	`, jobID)
	if err != nil {
		return nil, fmt.Errorf("payment repository: mark paid: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("payment repository: commit pay: %w", err)
	}
	return &job, nil
}

// ListDepositableJobs возвращает работы клиента у данного исполнителя,
// по которым ещё не было ни полной оплаты, ни депозита. Учитываются все
// незавершённые контракты между сторонами.
func (r *PaymentRepository) ListDepositableJobs(ctx context.Context, clientID, contractorID uuid.UUID) ([]models.Job, error) {
	jobs := []models.Job{}
	err := r.db.SelectContext(ctx, &jobs, `
		SELECT j.id, j.contract_id, j.description, j.price, j.paid, j.payment_date, j.deposit_paid, j.created_at, j.updated_at
		FROM jobs j
		JOIN contracts c ON c.id = j.contract_id
		WHERE c.client_id = $1 AND c.contractor_id = $2 AND c.status <> $3
		  AND j.paid = FALSE AND j.deposit_paid = FALSE
		ORDER BY j.created_at
	`, clientID, contractorID, models.ContractStatusTerminated)
	if err != nil {
		return nil, fmt.Errorf("payment repository: list depositable: %w", err)
	}
	return jobs, nil
}

// TransferDeposit атомарно проводит депозит по одной работе: списание с клиента,
// зачисление исполнителю, установка deposit_paid. Нехватка средств оставляет
// работу нетронутой и возвращает ErrInsufficientFunds.
func (r *PaymentRepository) TransferDeposit(ctx context.Context, jobID, clientID, contractorID uuid.UUID, amount float64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("payment repository: begin deposit: %w", err)
	}
	defer tx.Rollback()

	var row struct {
		Paid        bool `db:"paid"`
		DepositPaid bool `db:"deposit_paid"`
	}
	err = tx.GetContext(ctx, &row, `
		SELECT j.paid, j.deposit_paid
		FROM jobs j
		JOIN contracts c ON c.id = j.contract_id
		WHERE j.id = $1 AND c.client_id = $2 AND c.contractor_id = $3 AND c.status <> $4
		FOR UPDATE OF j
	`, jobID, clientID, contractorID, models.ContractStatusTerminated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrJobNotFound
		}
		return fmt.Errorf("payment repository: lock job for deposit: %w", err)
	}

	// Конкурирующий запрос мог успеть оплатить работу или депозит после
	// выборки кандидатов; такая работа просто пропускается.
	if row.Paid || row.DepositPaid {
		return ErrDepositUnavailable
	}

	if err := debit(ctx, tx, clientID, amount); err != nil {
		return err
	}
	if err := credit(ctx, tx, contractorID, amount); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE jobs SET deposit_paid = TRUE, updated_at = NOW() WHERE id = $1
	`, jobID); err != nil {
		return fmt.Errorf("payment repository: mark deposit paid: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("payment repository: commit deposit: %w", err)
	}
	return nil
}

// debit условно списывает сумму: UPDATE проходит только при достаточном балансе,
// иначе затронутых строк нет и возвращается ErrInsufficientFunds.
func debit(ctx context.Context, tx *sqlx.Tx, profileID uuid.UUID, amount float64) error {
	res, err := tx.ExecContext(ctx, `
		UPDATE profiles SET balance = balance - $2, updated_at = NOW()
		WHERE id = $1 AND balance >= $2
	`, profileID, amount)
	if err != nil {
		return fmt.Errorf("payment repository: debit: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("payment repository: debit rows affected: %w", err)
	}
	if affected == 0 {
		return ErrInsufficientFunds
	}
	return nil
}

// credit зачисляет сумму на баланс профиля.
func credit(ctx context.Context, tx *sqlx.Tx, profileID uuid.UUID, amount float64) error {
	if _, err := tx.ExecContext(ctx, `
		UPDATE profiles SET balance = balance + $2, updated_at = NOW()
		WHERE id = $1
	`, profileID, amount); err != nil {
		return fmt.Errorf("payment repository: credit: %w", err)
	}
	return nil
}
