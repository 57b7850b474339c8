package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/pavelkurin/contracts-backend/internal/models"
	"github.com/pavelkurin/contracts-backend/internal/repository"
)

// SeedService наполняет базу демонстрационными данными для разработки.
type SeedService struct {
	profiles  *repository.ProfileRepository
	contracts *repository.ContractRepository
	jobs      *repository.JobRepository
}

// NewSeedService создаёт сервис сидирования.
func NewSeedService(profiles *repository.ProfileRepository, contracts *repository.ContractRepository, jobs *repository.JobRepository) *SeedService {
	return &SeedService{
		profiles:  profiles,
		contracts: contracts,
		jobs:      jobs,
	}
}

type seedProfile struct {
	Type       string
	FirstName  string
	LastName   string
	Profession string
	Balance    float64
	Email      string
}

// SeedData очищает базу и создаёт фиксированный набор профилей,
// контрактов и работ. Пароль у всех профилей — "password123".
func (s *SeedService) SeedData(ctx context.Context) error {
	if err := s.profiles.DeleteAll(ctx); err != nil {
		return fmt.Errorf("seed service: reset: %w", err)
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed service: hash password: %w", err)
	}

	fixtures := []seedProfile{
		{models.ProfileTypeClient, "Harry", "Potter", "wizard", 1150, "harry@example.com"},
		{models.ProfileTypeClient, "Mr", "Robot", "hacker", 231.11, "robot@example.com"},
		{models.ProfileTypeClient, "John", "Snow", "knows nothing", 451.3, "snow@example.com"},
		{models.ProfileTypeContractor, "John", "Lenon", "musician", 64, "lenon@example.com"},
		{models.ProfileTypeContractor, "Linus", "Torvalds", "programmer", 1214, "linus@example.com"},
		{models.ProfileTypeContractor, "Alan", "Turing", "programmer", 22.3, "turing@example.com"},
		{models.ProfileTypeAdmin, "Ada", "Lovelace", "admin", 0, "ada@example.com"},
	}

	byEmail := make(map[string]*models.Profile, len(fixtures))
	for _, f := range fixtures {
		profile := &models.Profile{
			Type:         f.Type,
			FirstName:    f.FirstName,
			LastName:     f.LastName,
			Profession:   f.Profession,
			Balance:      f.Balance,
			Email:        f.Email,
			PasswordHash: string(passHash),
		}
		if err := s.profiles.Create(ctx, profile); err != nil {
			return fmt.Errorf("seed service: profile %s: %w", f.Email, err)
		}
		byEmail[f.Email] = profile
	}

	contracts := []struct {
		Client     string
		Contractor string
		Status     string
	}{
		{"harry@example.com", "lenon@example.com", models.ContractStatusTerminated},
		{"harry@example.com", "linus@example.com", models.ContractStatusInProgress},
		{"robot@example.com", "linus@example.com", models.ContractStatusInProgress},
		{"snow@example.com", "turing@example.com", models.ContractStatusInProgress},
		{"robot@example.com", "turing@example.com", models.ContractStatusNew},
	}

	created := make([]*models.Contract, 0, len(contracts))
	for i, c := range contracts {
		contract := &models.Contract{
			ClientID:     byEmail[c.Client].ID,
			ContractorID: byEmail[c.Contractor].ID,
			Terms:        fmt.Sprintf("bla bla bla %d", i+1),
			Status:       c.Status,
		}
		if err := s.contracts.Create(ctx, contract); err != nil {
			return fmt.Errorf("seed service: contract %d: %w", i+1, err)
		}
		created = append(created, contract)
	}

	paidAt := time.Date(2020, 8, 15, 19, 11, 26, 0, time.UTC)
	jobs := []struct {
		Contract    int
		Description string
		Price       float64
		Paid        bool
		PaymentDate *time.Time
		DepositPaid bool
	}{
		{0, "work", 200, true, &paidAt, false},
		{1, "work", 201, false, nil, false},
		{1, "work", 202, false, nil, true},
		{2, "work", 2020, true, &paidAt, false},
		{2, "work", 200, false, nil, false},
		{3, "work", 102, false, nil, false},
		{3, "work", 121, true, &paidAt, false},
		{4, "work", 21, false, nil, false},
	}

	for i, j := range jobs {
		job := &models.Job{
			ContractID:  created[j.Contract].ID,
			Description: j.Description,
			Price:       j.Price,
			Paid:        j.Paid,
			PaymentDate: j.PaymentDate,
			DepositPaid: j.DepositPaid,
		}
		if err := s.jobs.Create(ctx, job); err != nil {
			return fmt.Errorf("seed service: job %d: %w", i+1, err)
		}
	}

	return nil
}
