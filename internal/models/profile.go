package models

import (
	"time"

	"github.com/google/uuid"
)

// Типы профилей
const (
	ProfileTypeClient     = "client"
	ProfileTypeContractor = "contractor"
	ProfileTypeAdmin      = "admin"
)

// Profile описывает участника площадки: клиента, исполнителя или администратора.
// Баланс хранится на профиле и меняется только гарантированными UPDATE'ами в хранилище.
type Profile struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Type         string    `db:"type" json:"type"`
	FirstName    string    `db:"first_name" json:"first_name"`
	LastName     string    `db:"last_name" json:"last_name"`
	Profession   string    `db:"profession" json:"profession"`
	Balance      float64   `db:"balance" json:"balance"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// FullName возвращает имя и фамилию через пробел.
func (p *Profile) FullName() string {
	return p.FirstName + " " + p.LastName
}
