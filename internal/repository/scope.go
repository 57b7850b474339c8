package repository

import "github.com/pavelkurin/contracts-backend/internal/models"

// ownerColumn возвращает колонку контракта, по которой актёр владеет записью.
// Один и тот же предикат принадлежности используется всеми запросами по
// контрактам и работам: клиент видит контракты по client_id, исполнитель —
// по contractor_id.
func ownerColumn(profileType string) string {
	if profileType == models.ProfileTypeContractor {
		return "contractor_id"
	}
	return "client_id"
}
