package repositories

import (
	"orderdesk/internal/models"
)

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	// Init ensures the backing table exists. Idempotent, called on every start.
	Init() error
	Create(order *models.Order) error
	Find(filter models.OrderFilter) ([]models.Order, error)
	// UpdateStatusAndNote overwrites status and followup_note for the given
	// id and returns the number of rows touched. An unknown id is not an
	// error; it simply affects zero rows.
	UpdateStatusAndNote(id uint, status, note string) (int64, error)
	// No Delete: orders are never removed once registered.
}
