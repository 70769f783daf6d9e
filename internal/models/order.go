package models

import "github.com/shopspring/decimal"

// Order statuses. Any status may move to any other; there is no enforced
// forward-only sequence.
const (
	StatusQueued       = "queued"
	StatusInProduction = "in_production"
	StatusShipped      = "shipped"
	StatusCompleted    = "completed"
)

// Owners is the fixed list of staff members an order can be assigned to.
var Owners = []string{"Tina", "Archie", "Sarah"}

// Products is the fixed product catalog.
var Products = []string{
	"Acrylic Charm",
	"CD Charm",
	"Fridge Magnet",
	"Badge",
	"Ornament",
	"Phone Stand",
	"Carabiner",
}

// Carriers is the fixed list of logistics providers.
var Carriers = []string{"Yiwu Haoyuan", "Hangzhou Zhouchi"}

// Statuses lists all valid order statuses.
var Statuses = []string{StatusQueued, StatusInProduction, StatusShipped, StatusCompleted}

// Order represents a single customer shipment record.
// ProductTotalLocal and FreightLocal are snapshots taken at entry time
// (USD amount x exchange rate); they are never recomputed afterwards.
type Order struct {
	ID                uint            `json:"id" gorm:"primaryKey;autoIncrement"`
	Date              string          `json:"date"`
	ReferenceNumber   string          `json:"reference_number"`
	Owner             string          `json:"owner" gorm:"type:varchar(50);index"`
	CustomerName      string          `json:"customer_name"`
	Country           string          `json:"country"`
	ProductName       string          `json:"product_name"`
	Quantity          int             `json:"quantity"`
	ExchangeRate      decimal.Decimal `json:"exchange_rate" gorm:"type:decimal(12,4)"`
	ProductTotalUSD   decimal.Decimal `json:"product_total_usd" gorm:"type:decimal(12,2)"`
	ProductTotalLocal decimal.Decimal `json:"product_total_local" gorm:"type:decimal(12,2)"`
	Weight            decimal.Decimal `json:"weight" gorm:"type:decimal(12,2)"`
	FreightUSD        decimal.Decimal `json:"freight_usd" gorm:"type:decimal(12,2)"`
	FreightLocal      decimal.Decimal `json:"freight_local" gorm:"type:decimal(12,2)"`
	Carrier           string          `json:"carrier"`
	CarrierFee        decimal.Decimal `json:"carrier_fee" gorm:"type:decimal(12,2)"`
	Remarks           string          `json:"remarks"`
	Status            string          `json:"status" gorm:"type:varchar(20);index"`
	FollowupNote      string          `json:"followup_note"`
}

// CreateOrderRequest is the payload for registering a new order.
// Status and FollowupNote are accepted but ignored: every order starts
// queued with an empty note regardless of what the caller sends.
type CreateOrderRequest struct {
	Date            string          `json:"date" validate:"required"`
	ReferenceNumber string          `json:"reference_number"`
	Owner           string          `json:"owner" validate:"required,oneof=Tina Archie Sarah"`
	CustomerName    string          `json:"customer_name" validate:"required"`
	Country         string          `json:"country"`
	ProductName     string          `json:"product_name" validate:"required"`
	Quantity        int             `json:"quantity" validate:"gte=0"`
	ExchangeRate    decimal.Decimal `json:"exchange_rate"`
	ProductTotalUSD decimal.Decimal `json:"product_total_usd"`
	Weight          decimal.Decimal `json:"weight"`
	FreightUSD      decimal.Decimal `json:"freight_usd"`
	Carrier         string          `json:"carrier" validate:"required"`
	CarrierFee      decimal.Decimal `json:"carrier_fee"`
	Remarks         string          `json:"remarks"`
	Status          string          `json:"status"`
	FollowupNote    string          `json:"followup_note"`
}

// OrderFilter holds the optional listing filters. Empty fields are not
// applied; an empty filter matches every order.
type OrderFilter struct {
	Owner   string
	Status  string
	Keyword string // substring match on customer name or reference number
}

// ValidOwner reports whether name is one of the known staff members.
func ValidOwner(name string) bool {
	return contains(Owners, name)
}

// ValidProduct reports whether name is in the product catalog.
func ValidProduct(name string) bool {
	return contains(Products, name)
}

// ValidCarrier reports whether name is a known logistics provider.
func ValidCarrier(name string) bool {
	return contains(Carriers, name)
}

// ValidStatus reports whether status is one of the four order statuses.
func ValidStatus(status string) bool {
	return contains(Statuses, status)
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
