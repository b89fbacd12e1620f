package source

import (
	"fmt"

	"cartscope/internal/model"
)

// Required columns of a cleaned transaction CSV, in no particular order.
// The header may carry extra columns; they are ignored.
const (
	colOrderID           = "order_id"
	colOrderItemID       = "order_item_id"
	colOrderDate         = "order_date"
	colDeliveryDate      = "delivery_date"
	colEstimatedDelivery = "estimated_delivery_date"
	colCustomerID        = "customer_id"
	colCustomerState     = "customer_state"
	colProductID         = "product_id"
	colProductCategory   = "product_category"
	colPrice             = "price"
	colFreightValue      = "freight_value"
	colReviewScore       = "review_score"
	colOrderStatus       = "order_status"
)

var requiredColumns = []string{
	colOrderID, colOrderItemID, colOrderDate, colDeliveryDate,
	colEstimatedDelivery, colCustomerID, colCustomerState,
	colProductID, colProductCategory, colPrice, colFreightValue,
	colReviewScore, colOrderStatus,
}

// SchemaError reports a transaction table that does not conform to the
// expected schema: a missing required column or a value of an
// incompatible type. It is raised on first access and must be fixed
// upstream; cartscope does not repair malformed data.
type SchemaError struct {
	Source string // file path or DSN table
	Column string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: column %q: %s", e.Source, e.Column, e.Reason)
}

// DiscoveredFile is a transaction CSV found during directory scanning.
type DiscoveredFile struct {
	Path    string
	Dataset string // file name without extension
}

// ParseResult holds the output of parsing a single transaction CSV.
type ParseResult struct {
	Records []model.TransactionRecord
	Err     error
}
