package repositories

import (
	"fmt"

	"orderdesk/internal/models"

	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// Init creates the orders table if it does not exist yet.
func (r *GORMOrderRepository) Init() error {
	if err := r.db.AutoMigrate(&models.Order{}); err != nil {
		return fmt.Errorf("failed to migrate orders table: %w", err)
	}
	return nil
}

// Create inserts a new order. The database assigns the ID.
func (r *GORMOrderRepository) Create(order *models.Order) error {
	if err := r.db.Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// Find returns all orders matching the filter, ordered by id ascending.
// Filters are combined with AND; empty filter fields are skipped.
func (r *GORMOrderRepository) Find(filter models.OrderFilter) ([]models.Order, error) {
	tx := r.db.Order("id ASC")
	if filter.Owner != "" {
		tx = tx.Where("owner = ?", filter.Owner)
	}
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	if filter.Keyword != "" {
		pattern := "%" + filter.Keyword + "%"
		tx = tx.Where("customer_name LIKE ? OR reference_number LIKE ?", pattern, pattern)
	}

	var orders []models.Order
	if err := tx.Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	return orders, nil
}

// UpdateStatusAndNote overwrites the status and follow-up note of one order.
// Zero rows affected means the id does not exist, which callers treat as a
// silent success rather than an error.
func (r *GORMOrderRepository) UpdateStatusAndNote(id uint, status, note string) (int64, error) {
	res := r.db.Model(&models.Order{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":        status,
		"followup_note": note,
	})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to update order %d: %w", id, res.Error)
	}
	return res.RowsAffected, nil
}
