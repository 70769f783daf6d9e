package repositories

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"orderdesk/internal/models"
)

// MockOrderRepository is an in-memory implementation of OrderRepository.
type MockOrderRepository struct {
	orders map[uint]models.Order
	nextID uint
	mu     sync.RWMutex
}

// NewMockOrderRepository creates a new instance of MockOrderRepository.
func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{
		orders: make(map[uint]models.Order),
		nextID: 1,
	}
}

// Init is a no-op; the in-memory store needs no schema.
func (r *MockOrderRepository) Init() error {
	return nil
}

// Create adds a new order, assigning the next sequential ID.
func (r *MockOrderRepository) Create(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order == nil {
		return fmt.Errorf("order cannot be nil")
	}
	order.ID = r.nextID
	r.nextID++
	r.orders[order.ID] = *order
	return nil
}

// Find returns all orders matching the filter, ordered by id ascending.
func (r *MockOrderRepository) Find(filter models.OrderFilter) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]models.Order, 0, len(r.orders))
	for _, order := range r.orders {
		if filter.Owner != "" && order.Owner != filter.Owner {
			continue
		}
		if filter.Status != "" && order.Status != filter.Status {
			continue
		}
		if filter.Keyword != "" &&
			!strings.Contains(order.CustomerName, filter.Keyword) &&
			!strings.Contains(order.ReferenceNumber, filter.Keyword) {
			continue
		}
		matched = append(matched, order)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	return matched, nil
}

// UpdateStatusAndNote overwrites status and follow-up note for an order.
// Unknown ids affect zero rows and do not error.
func (r *MockOrderRepository) UpdateStatusAndNote(id uint, status, note string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return 0, nil
	}
	order.Status = status
	order.FollowupNote = note
	r.orders[id] = order
	return 1, nil
}
