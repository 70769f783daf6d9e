package services_test

import (
	"fmt"
	"testing"

	"orderdesk/internal/models"
	"orderdesk/internal/repositories"
	"orderdesk/internal/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOrderRepo is a testify mock of repositories.OrderRepository, used for
// error-path tests. Behavior tests use the in-memory MockOrderRepository.
type MockOrderRepo struct {
	mock.Mock
}

func (m *MockOrderRepo) Init() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockOrderRepo) Create(order *models.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *MockOrderRepo) Find(filter models.OrderFilter) ([]models.Order, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepo) UpdateStatusAndNote(id uint, status, note string) (int64, error) {
	args := m.Called(id, status, note)
	return args.Get(0).(int64), args.Error(1)
}

func validRequest() models.CreateOrderRequest {
	return models.CreateOrderRequest{
		Date:            "2026-08-01",
		ReferenceNumber: "REF-100",
		Owner:           "Tina",
		CustomerName:    "Acme GmbH",
		Country:         "Germany",
		ProductName:     "Acrylic Charm",
		Quantity:        500,
		ExchangeRate:    decimal.NewFromFloat(7.1),
		ProductTotalUSD: decimal.NewFromFloat(100.00),
		Weight:          decimal.NewFromFloat(4.2),
		FreightUSD:      decimal.NewFromFloat(10.00),
		Carrier:         "Yiwu Haoyuan",
		CarrierFee:      decimal.NewFromFloat(30),
		Remarks:         "",
	}
}

func TestOrderService_CreateOrder_DefaultsAndSnapshots(t *testing.T) {
	repo := repositories.NewMockOrderRepository()
	service := services.NewOrderService(repo, nil)

	req := validRequest()
	// Caller-supplied status and note must be ignored.
	req.Status = models.StatusCompleted
	req.FollowupNote = "should not survive"

	order, err := service.CreateOrder(req)
	require.NoError(t, err)

	assert.Equal(t, models.StatusQueued, order.Status)
	assert.Equal(t, "", order.FollowupNote)
	assert.True(t, decimal.NewFromFloat(710.00).Equal(order.ProductTotalLocal),
		"product_total_local = %s", order.ProductTotalLocal)
	assert.True(t, decimal.NewFromFloat(71.00).Equal(order.FreightLocal),
		"freight_local = %s", order.FreightLocal)
	assert.NotZero(t, order.ID)
}

func TestOrderService_CreateOrder_RoundsLocalTotalsToTwoPlaces(t *testing.T) {
	repo := repositories.NewMockOrderRepository()
	service := services.NewOrderService(repo, nil)

	req := validRequest()
	req.ExchangeRate = decimal.NewFromFloat(7.123)
	req.ProductTotalUSD = decimal.NewFromFloat(99.99)
	req.FreightUSD = decimal.NewFromFloat(12.34)

	order, err := service.CreateOrder(req)
	require.NoError(t, err)

	// 99.99 * 7.123 = 712.228... -> 712.23, 12.34 * 7.123 = 87.897... -> 87.90
	assert.True(t, decimal.NewFromFloat(712.23).Equal(order.ProductTotalLocal),
		"product_total_local = %s", order.ProductTotalLocal)
	assert.True(t, decimal.NewFromFloat(87.90).Equal(order.FreightLocal),
		"freight_local = %s", order.FreightLocal)
}

func TestOrderService_CreateOrder_RejectsUnknownCatalogValues(t *testing.T) {
	repo := repositories.NewMockOrderRepository()
	service := services.NewOrderService(repo, nil)

	req := validRequest()
	req.Owner = "Mallory"
	_, err := service.CreateOrder(req)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown owner")

	req = validRequest()
	req.ProductName = "Unlisted Widget"
	_, err = service.CreateOrder(req)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown product")

	req = validRequest()
	req.Carrier = "Unknown Logistics"
	_, err = service.CreateOrder(req)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown carrier")

	// Nothing got stored.
	orders, findErr := repo.Find(models.OrderFilter{})
	require.NoError(t, findErr)
	assert.Empty(t, orders)
}

func TestOrderService_CreateOrder_RepositoryFailureIsFatal(t *testing.T) {
	mockRepo := new(MockOrderRepo)
	service := services.NewOrderService(mockRepo, nil)

	mockRepo.On("Create", mock.AnythingOfType("*models.Order")).Return(fmt.Errorf("disk I/O error")).Once()

	_, err := service.CreateOrder(validRequest())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "disk I/O error")
	mockRepo.AssertExpectations(t)
}

func TestOrderService_ListOrders_PassesFilterThrough(t *testing.T) {
	mockRepo := new(MockOrderRepo)
	service := services.NewOrderService(mockRepo, nil)

	filter := models.OrderFilter{Owner: "Sarah", Status: models.StatusShipped, Keyword: "REF"}
	expected := []models.Order{{ID: 4, Owner: "Sarah", Status: models.StatusShipped}}

	mockRepo.On("Find", filter).Return(expected, nil).Once()

	orders, err := service.ListOrders(filter)
	assert.NoError(t, err)
	assert.Equal(t, expected, orders)
	mockRepo.AssertExpectations(t)
}

func TestOrderService_UpdateStatusAndNote(t *testing.T) {
	repo := repositories.NewMockOrderRepository()
	service := services.NewOrderService(repo, nil)

	created, err := service.CreateOrder(validRequest())
	require.NoError(t, err)

	err = service.UpdateStatusAndNote(created.ID, models.StatusInProduction, "plates approved")
	require.NoError(t, err)

	orders, err := repo.Find(models.OrderFilter{})
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, models.StatusInProduction, orders[0].Status)
	assert.Equal(t, "plates approved", orders[0].FollowupNote)
	assert.Equal(t, created.CustomerName, orders[0].CustomerName)
}

func TestOrderService_UpdateStatusAndNote_InvalidStatus(t *testing.T) {
	mockRepo := new(MockOrderRepo)
	service := services.NewOrderService(mockRepo, nil)

	err := service.UpdateStatusAndNote(1, "teleported", "")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid order status")
	// The repository must never be reached with a bad status.
	mockRepo.AssertNotCalled(t, "UpdateStatusAndNote", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderService_UpdateStatusAndNote_UnknownIDSucceedsSilently(t *testing.T) {
	repo := repositories.NewMockOrderRepository()
	service := services.NewOrderService(repo, nil)

	err := service.UpdateStatusAndNote(424242, models.StatusCompleted, "nobody home")
	assert.NoError(t, err)

	orders, findErr := repo.Find(models.OrderFilter{})
	require.NoError(t, findErr)
	assert.Empty(t, orders, "a missing id must not create a row")
}
