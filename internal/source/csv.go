// Package source loads cleaned e-commerce transaction tables from CSV
// files or a MySQL database into TransactionRecord slices.
package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"cartscope/internal/model"
)

// Timestamp layouts accepted in date columns, tried in order.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02",
}

// ParseFile reads one transaction CSV. The header is checked once for
// the required columns; after that every row is trusted to conform, and
// a value that cannot be parsed into its column type surfaces as a
// SchemaError rather than being silently dropped.
func ParseFile(df DiscoveredFile) ParseResult {
	f, err := os.Open(df.Path)
	if err != nil {
		return ParseResult{Err: err}
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.ReuseRecord = true
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err == io.EOF {
		return ParseResult{} // empty file, empty table
	}
	if err != nil {
		return ParseResult{Err: fmt.Errorf("reading header: %w", err)}
	}

	cols, err := indexColumns(df.Path, header)
	if err != nil {
		return ParseResult{Err: err}
	}

	var records []model.TransactionRecord
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return ParseResult{Err: fmt.Errorf("reading %s: %w", df.Path, err)}
		}

		rec, err := parseRow(df.Path, cols, row)
		if err != nil {
			return ParseResult{Err: err}
		}
		records = append(records, rec)
	}

	return ParseResult{Records: records}
}

// indexColumns maps required column names to their positions, failing
// with a SchemaError on the first missing column.
func indexColumns(path string, header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, &SchemaError{Source: path, Column: col, Reason: "missing required column"}
		}
	}
	return idx, nil
}

func parseRow(path string, cols map[string]int, row []string) (model.TransactionRecord, error) {
	get := func(col string) string {
		i := cols[col]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var rec model.TransactionRecord
	rec.OrderID = get(colOrderID)
	rec.CustomerID = get(colCustomerID)
	rec.CustomerState = get(colCustomerState)
	rec.ProductID = get(colProductID)
	rec.ProductCategory = get(colProductCategory)
	rec.Status = model.OrderStatus(strings.ToLower(get(colOrderStatus)))

	itemID, err := strconv.Atoi(get(colOrderItemID))
	if err != nil {
		return rec, &SchemaError{Source: path, Column: colOrderItemID, Reason: "not an integer: " + get(colOrderItemID)}
	}
	rec.OrderItemID = itemID

	// order_date is required and non-null; an empty cell is a schema
	// violation, not a null.
	orderDate, err := parseDate(get(colOrderDate))
	if err != nil {
		return rec, &SchemaError{Source: path, Column: colOrderDate, Reason: "not a timestamp: " + get(colOrderDate)}
	}
	rec.OrderDate = orderDate

	if rec.DeliveryDate, err = parseNullableDate(get(colDeliveryDate)); err != nil {
		return rec, &SchemaError{Source: path, Column: colDeliveryDate, Reason: "not a timestamp: " + get(colDeliveryDate)}
	}
	if rec.EstimatedDelivery, err = parseNullableDate(get(colEstimatedDelivery)); err != nil {
		return rec, &SchemaError{Source: path, Column: colEstimatedDelivery, Reason: "not a timestamp: " + get(colEstimatedDelivery)}
	}

	if rec.Price, err = strconv.ParseFloat(get(colPrice), 64); err != nil {
		return rec, &SchemaError{Source: path, Column: colPrice, Reason: "not numeric: " + get(colPrice)}
	}
	if rec.FreightValue, err = strconv.ParseFloat(get(colFreightValue), 64); err != nil {
		return rec, &SchemaError{Source: path, Column: colFreightValue, Reason: "not numeric: " + get(colFreightValue)}
	}

	if s := get(colReviewScore); s != "" {
		score, err := strconv.Atoi(s)
		if err != nil || score < 1 || score > 5 {
			return rec, &SchemaError{Source: path, Column: colReviewScore, Reason: "not a 1-5 score: " + s}
		}
		rec.ReviewScore = &score
	}

	return rec, nil
}

func parseDate(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// parseNullableDate treats the empty string as null.
func parseNullableDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := parseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
