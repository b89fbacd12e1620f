// Package store provides a SQLite-backed cache for parsed transaction files.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"cartscope/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

const timeLayout = "2006-01-02T15:04:05Z"

// Cache provides SQLite-backed transaction caching.
type Cache struct {
	db *sql.DB
}

// Open opens or creates the cache database at the given path.
func Open(dbPath string) (*Cache, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating cache dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening cache db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Cache{db: db}, nil
}

// Close closes the cache database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// FileInfo holds the tracked mtime and size for a file.
type FileInfo struct {
	MtimeNs   int64
	SizeBytes int64
}

// GetTrackedFiles returns a map of file_path -> FileInfo for all tracked files.
func (c *Cache) GetTrackedFiles() (map[string]FileInfo, error) {
	rows, err := c.db.Query("SELECT file_path, mtime_ns, size_bytes FROM file_tracker")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	result := make(map[string]FileInfo)
	for rows.Next() {
		var path string
		var fi FileInfo
		if err := rows.Scan(&path, &fi.MtimeNs, &fi.SizeBytes); err != nil {
			return nil, err
		}
		result[path] = fi
	}
	return result, rows.Err()
}

// SaveFile replaces the cached rows for one source file and updates its
// tracking entry, in a single transaction so a crash never leaves a file
// half-cached.
func (c *Cache) SaveFile(path string, mtimeNs, sizeBytes int64, records []model.TransactionRecord) error {
	tx, err := c.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM transactions WHERE file_path = ?", path); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO transactions
		(file_path, order_id, order_item_id, order_date, delivery_date, estimated_delivery,
		 customer_id, customer_state, product_id, product_category,
		 price, freight_value, review_score, order_status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer func() { _ = stmt.Close() }()

	for _, r := range records {
		var delivery, estimated any
		if r.DeliveryDate != nil {
			delivery = r.DeliveryDate.UTC().Format(timeLayout)
		}
		if r.EstimatedDelivery != nil {
			estimated = r.EstimatedDelivery.UTC().Format(timeLayout)
		}
		var score any
		if r.ReviewScore != nil {
			score = *r.ReviewScore
		}

		_, err := stmt.Exec(
			path, r.OrderID, r.OrderItemID, r.OrderDate.UTC().Format(timeLayout),
			delivery, estimated,
			r.CustomerID, r.CustomerState, r.ProductID, r.ProductCategory,
			r.Price, r.FreightValue, score, string(r.Status),
		)
		if err != nil {
			return err
		}
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_, err = tx.Exec(`INSERT OR REPLACE INTO file_tracker (file_path, mtime_ns, size_bytes, parsed_at)
		VALUES (?, ?, ?, ?)`, path, mtimeNs, sizeBytes, now)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// LoadTransactions reads all cached transactions grouped by source file.
func (c *Cache) LoadTransactions() (map[string][]model.TransactionRecord, error) {
	rows, err := c.db.Query(`SELECT
		file_path, order_id, order_item_id, order_date, delivery_date, estimated_delivery,
		customer_id, customer_state, product_id, product_category,
		price, freight_value, review_score, order_status
		FROM transactions`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	result := make(map[string][]model.TransactionRecord)
	for rows.Next() {
		var (
			path      string
			rec       model.TransactionRecord
			orderDate string
			delivery  sql.NullString
			estimated sql.NullString
			score     sql.NullInt64
			status    string
		)
		err := rows.Scan(
			&path, &rec.OrderID, &rec.OrderItemID, &orderDate, &delivery, &estimated,
			&rec.CustomerID, &rec.CustomerState, &rec.ProductID, &rec.ProductCategory,
			&rec.Price, &rec.FreightValue, &score, &status,
		)
		if err != nil {
			return nil, err
		}

		rec.OrderDate, err = time.Parse(timeLayout, orderDate)
		if err != nil {
			return nil, fmt.Errorf("corrupt cache row for order %s: %w", rec.OrderID, err)
		}
		if delivery.Valid {
			t, err := time.Parse(timeLayout, delivery.String)
			if err != nil {
				return nil, fmt.Errorf("corrupt cache row for order %s: %w", rec.OrderID, err)
			}
			rec.DeliveryDate = &t
		}
		if estimated.Valid {
			t, err := time.Parse(timeLayout, estimated.String)
			if err != nil {
				return nil, fmt.Errorf("corrupt cache row for order %s: %w", rec.OrderID, err)
			}
			rec.EstimatedDelivery = &t
		}
		if score.Valid {
			s := int(score.Int64)
			rec.ReviewScore = &s
		}
		rec.Status = model.OrderStatus(status)

		result[path] = append(result[path], rec)
	}
	return result, rows.Err()
}

// DeleteFile removes a file's cached rows and tracking entry.
func (c *Cache) DeleteFile(path string) error {
	if _, err := c.db.Exec("DELETE FROM transactions WHERE file_path = ?", path); err != nil {
		return err
	}
	_, err := c.db.Exec("DELETE FROM file_tracker WHERE file_path = ?", path)
	return err
}

// TransactionCount returns the number of cached transaction rows.
func (c *Cache) TransactionCount() (int, error) {
	var count int
	err := c.db.QueryRow("SELECT COUNT(*) FROM transactions").Scan(&count)
	return count, err
}
