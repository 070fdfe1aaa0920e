package entities

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// OrderStatus represents the lifecycle state of an order
type OrderStatus string

const (
	OrderStatusPending OrderStatus = "pending"
	OrderStatusPaid    OrderStatus = "paid"
	OrderStatusFailed  OrderStatus = "failed"
)

// StatusFilterAll disables status filtering on order listings
const StatusFilterAll = "all"

// Valid reports whether the status is a known lifecycle state
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusFailed:
		return true
	}
	return false
}

// Order represents a single customer purchase. PaymentMethod and Commission
// are frozen at creation from the owning merchant's configuration; later
// merchant changes never alter them.
type Order struct {
	ID                 string       `json:"id"`
	MerchantID         string       `json:"merchant_id"`
	CustomerName       string       `json:"customer_name"`
	Product            string       `json:"product"`
	Total              float64      `json:"total"`
	Status             OrderStatus  `json:"status"`
	PaymentMethod      PayoutMethod `json:"payment_method"`
	Commission         float64      `json:"commission"`
	CreatedAt          time.Time    `json:"created_at"`
	PaymentProcessedAt null.Time    `json:"payment_processed_at,omitempty"`
}

// OrderCreateInput represents the body of an order creation
type OrderCreateInput struct {
	CustomerName string  `json:"customer_name" binding:"required"`
	Product      string  `json:"product" binding:"required"`
	Total        float64 `json:"total" binding:"gte=0"`
}

// OrderUpdateInput represents a manual order correction. Absent fields are
// left untouched.
type OrderUpdateInput struct {
	CustomerName null.String  `json:"customer_name"`
	Product      null.String  `json:"product"`
	Total        null.Float64 `json:"total"`
	Status       null.String  `json:"status"`
}
