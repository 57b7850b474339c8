package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/pavelkurin/contracts-backend/internal/logger"
	"github.com/pavelkurin/contracts-backend/internal/models"
	"github.com/pavelkurin/contracts-backend/internal/repository"
)

// ErrNoJobsToDeposit возвращается, когда у пары клиент/исполнитель нет
// ни одной работы без оплаты и без депозита.
var ErrNoJobsToDeposit = errors.New("no jobs to deposit")

// DefaultDepositRate — доля цены работы, уходящая в депозит.
const DefaultDepositRate = 0.25

// PaymentRepository описывает зависимости PaymentService от слоя хранилища.
// Каждый метод-перевод атомарен на стороне хранилища.
type PaymentRepository interface {
	PayJob(ctx context.Context, jobID, clientID uuid.UUID) (*models.Job, error)
	ListDepositableJobs(ctx context.Context, clientID, contractorID uuid.UUID) ([]models.Job, error)
	TransferDeposit(ctx context.Context, jobID, clientID, contractorID uuid.UUID, amount float64) error
}

// PaymentService содержит бизнес-правила оплат и депозитов.
type PaymentService struct {
	repo        PaymentRepository
	depositRate float64
}

// NewPaymentService создаёт сервис платежей. Невалидная доля депозита
// заменяется на DefaultDepositRate.
func NewPaymentService(repo PaymentRepository, depositRate float64) *PaymentService {
	if depositRate <= 0 || depositRate > 1 {
		depositRate = DefaultDepositRate
	}
	return &PaymentService{
		repo:        repo,
		depositRate: depositRate,
	}
}

// PayJob оплачивает работу целиком с баланса клиента.
// Ошибки хранилища уже типизированы (не найдена, уже оплачена, нет средств)
// и пробрасываются как есть.
func (s *PaymentService) PayJob(ctx context.Context, jobID, clientID uuid.UUID) (*models.Job, error) {
	return s.repo.PayJob(ctx, jobID, clientID)
}

// DepositToContractor делает жадный проход по работам клиента у исполнителя:
// по каждой переводится депозит depositRate × цена. Перевод, не влезающий в
// текущий остаток баланса, молча пропускается — баланс убывает внутри запроса,
// поэтому поздние работы видят уменьшенный остаток. Любая другая ошибка
// прерывает проход: уже проведённые переводы остаются, частичный итог
// возвращается вместе с ошибкой.
func (s *PaymentService) DepositToContractor(ctx context.Context, clientID, contractorID uuid.UUID) (*models.DepositSummary, error) {
	jobs, err := s.repo.ListDepositableJobs(ctx, clientID, contractorID)
	if err != nil {
		return nil, fmt.Errorf("payment service: %w", err)
	}
	if len(jobs) == 0 {
		return nil, ErrNoJobsToDeposit
	}

	summary := &models.DepositSummary{JobsConsidered: len(jobs)}
	for _, job := range jobs {
		amount := s.depositRate * job.Price

		err := s.repo.TransferDeposit(ctx, job.ID, clientID, contractorID, amount)
		switch {
		case errors.Is(err, repository.ErrInsufficientFunds),
			errors.Is(err, repository.ErrDepositUnavailable):
			continue
		case err != nil:
			if logger.Log != nil {
				logger.Log.WithFields(logrus.Fields{
					"job_id":        job.ID,
					"client_id":     clientID,
					"contractor_id": contractorID,
					"error":         err.Error(),
				}).Warn("payment service: проход по депозитам прерван")
			}
			return summary, fmt.Errorf("payment service: депозит прерван: %w", err)
		}

		summary.TotalPaid += amount
		summary.JobsPaid++
	}

	return summary, nil
}
