package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/pavelkurin/contracts-backend/internal/models"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// GetByID возвращает профиль по идентификатору.
func (r *ProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.GetContext(ctx, &profile, `
		SELECT id, type, first_name, last_name, profession, balance, email, password_hash, created_at, updated_at
		FROM profiles WHERE id = $1
	`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("profile repository: get by id: %w", err)
	}
	return &profile, nil
}

// GetByEmail возвращает профиль по email (без учёта регистра).
func (r *ProfileRepository) GetByEmail(ctx context.Context, email string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.GetContext(ctx, &profile, `
		SELECT id, type, first_name, last_name, profession, balance, email, password_hash, created_at, updated_at
		FROM profiles WHERE email = $1
	`, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("profile repository: get by email: %w", err)
	}
	return &profile, nil
}

// Create сохраняет новый профиль. Используется сидированием.
func (r *ProfileRepository) Create(ctx context.Context, profile *models.Profile) error {
	err := r.db.GetContext(ctx, profile, `
		INSERT INTO profiles (type, first_name, last_name, profession, balance, email, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, type, first_name, last_name, profession, balance, email, password_hash, created_at, updated_at
	`, profile.Type, profile.FirstName, profile.LastName, profile.Profession,
		profile.Balance, strings.ToLower(profile.Email), profile.PasswordHash)
	if err != nil {
		return fmt.Errorf("profile repository: create: %w", err)
	}
	return nil
}

// DeleteAll удаляет все профили вместе с контрактами и работами. Используется сидированием.
func (r *ProfileRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `TRUNCATE profiles CASCADE`); err != nil {
		return fmt.Errorf("profile repository: delete all: %w", err)
	}
	return nil
}
