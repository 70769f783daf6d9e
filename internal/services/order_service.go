package services

import (
	"encoding/json"
	"fmt"
	"log"

	"orderdesk/internal/models"
	"orderdesk/internal/repositories"
	"orderdesk/pkg/rabbitmq"
)

// OrderService handles business logic related to orders.
type OrderService struct {
	repo     repositories.OrderRepository
	mqClient *rabbitmq.Client
}

// NewOrderService creates a new OrderService. mqClient may be nil, in which
// case event publishing is skipped.
func NewOrderService(repo repositories.OrderRepository, mqClient *rabbitmq.Client) *OrderService {
	return &OrderService{
		repo:     repo,
		mqClient: mqClient,
	}
}

// CreateOrder registers a new order. The caller's status and follow-up note
// are ignored: every order starts queued with an empty note. The two
// local-currency totals are computed here, once, from the USD amounts and the
// exchange rate at entry time.
func (s *OrderService) CreateOrder(req models.CreateOrderRequest) (*models.Order, error) {
	if !models.ValidOwner(req.Owner) {
		return nil, fmt.Errorf("unknown owner: %s", req.Owner)
	}
	if !models.ValidProduct(req.ProductName) {
		return nil, fmt.Errorf("unknown product: %s", req.ProductName)
	}
	if !models.ValidCarrier(req.Carrier) {
		return nil, fmt.Errorf("unknown carrier: %s", req.Carrier)
	}
	if req.Quantity < 0 {
		return nil, fmt.Errorf("quantity cannot be negative: %d", req.Quantity)
	}

	newOrder := &models.Order{
		Date:              req.Date,
		ReferenceNumber:   req.ReferenceNumber,
		Owner:             req.Owner,
		CustomerName:      req.CustomerName,
		Country:           req.Country,
		ProductName:       req.ProductName,
		Quantity:          req.Quantity,
		ExchangeRate:      req.ExchangeRate,
		ProductTotalUSD:   req.ProductTotalUSD,
		ProductTotalLocal: req.ProductTotalUSD.Mul(req.ExchangeRate).Round(2),
		Weight:            req.Weight,
		FreightUSD:        req.FreightUSD,
		FreightLocal:      req.FreightUSD.Mul(req.ExchangeRate).Round(2),
		Carrier:           req.Carrier,
		CarrierFee:        req.CarrierFee,
		Remarks:           req.Remarks,
		Status:            models.StatusQueued,
		FollowupNote:      "",
	}

	if err := s.repo.Create(newOrder); err != nil {
		return nil, fmt.Errorf("failed to create order in repository: %w", err)
	}

	s.publishEvent("order.created", map[string]interface{}{
		"order_id": newOrder.ID,
		"owner":    newOrder.Owner,
		"customer": newOrder.CustomerName,
		"status":   newOrder.Status,
	})

	return newOrder, nil
}

// ListOrders returns all orders matching the filter. Filter values are used
// as-is; an unknown owner or status simply matches nothing.
func (s *OrderService) ListOrders(filter models.OrderFilter) ([]models.Order, error) {
	return s.repo.Find(filter)
}

// UpdateStatusAndNote overwrites the status and follow-up note of one order.
// Updating an id that does not exist is a silent success: nothing is written
// and no error is returned.
func (s *OrderService) UpdateStatusAndNote(id uint, status, note string) error {
	if !models.ValidStatus(status) {
		return fmt.Errorf("invalid order status: %s", status)
	}

	rows, err := s.repo.UpdateStatusAndNote(id, status, note)
	if err != nil {
		return fmt.Errorf("failed to update order status for order %d: %w", id, err)
	}

	if rows > 0 {
		s.publishEvent("order.status_updated", map[string]interface{}{
			"order_id": id,
			"status":   status,
		})
	}

	return nil
}

// publishEvent sends an order event to RabbitMQ. Publishing is best-effort:
// a nil client or a publish failure is logged and never fails the request.
func (s *OrderService) publishEvent(routingKey string, payload map[string]interface{}) {
	if s.mqClient == nil {
		log.Println("RabbitMQ client is not initialized. Skipping message publication.")
		return
	}

	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal %s event to JSON: %v", routingKey, err)
		return
	}
	if err := s.mqClient.Publish(routingKey, body); err != nil {
		log.Printf("Warning: Failed to publish %s event: %v", routingKey, err)
	}
}
