// Package model defines domain types for cartscope transactions and metrics.
package model

import "time"

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

// Order statuses as they appear in cleaned transaction data.
const (
	StatusCreated     OrderStatus = "created"
	StatusApproved    OrderStatus = "approved"
	StatusInvoiced    OrderStatus = "invoiced"
	StatusProcessing  OrderStatus = "processing"
	StatusShipped     OrderStatus = "shipped"
	StatusDelivered   OrderStatus = "delivered"
	StatusCanceled    OrderStatus = "canceled"
	StatusUnavailable OrderStatus = "unavailable"
)

// TransactionRecord is one order line item from the cleaned transaction
// table. (OrderID, OrderItemID) is unique; every record belongs to exactly
// one order and one product. Nullable fields are pointers: a nil
// DeliveryDate means the order was never delivered, a nil ReviewScore
// means no review was submitted.
type TransactionRecord struct {
	OrderID     string
	OrderItemID int

	OrderDate         time.Time
	DeliveryDate      *time.Time
	EstimatedDelivery *time.Time

	CustomerID    string
	CustomerState string

	ProductID       string
	ProductCategory string

	Price        float64
	FreightValue float64

	ReviewScore *int
	Status      OrderStatus
}

// DeliveryDays returns the whole days between order placement and delivery.
// Second return is false for undelivered records.
func (t *TransactionRecord) DeliveryDays() (int, bool) {
	if t.DeliveryDate == nil {
		return 0, false
	}
	return int(t.DeliveryDate.Sub(t.OrderDate).Hours() / 24), true
}
