package source

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"
	"time"

	"cartscope/internal/model"

	_ "github.com/go-sql-driver/mysql" // register mysql driver
)

const mysqlTable = "transactions"

// OpenDSN opens a MySQL/MariaDB connection. Accepts either the driver's
// native DSN or a mysql://user:pw@host:port/db URL.
func OpenDSN(dsn string) (*sql.DB, error) {
	native, err := toMySQLDSN(dsn)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open("mysql", native)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	db.SetConnMaxLifetime(30 * time.Minute)
	return db, nil
}

func toMySQLDSN(dsn string) (string, error) {
	if !strings.HasPrefix(dsn, "mysql://") && !strings.HasPrefix(dsn, "mariadb://") {
		return dsn, nil
	}
	u, err := url.Parse(dsn)
	if err != nil {
		return "", fmt.Errorf("parse dsn: %w", err)
	}
	user := ""
	pass := ""
	if u.User != nil {
		user = u.User.Username()
		pass, _ = u.User.Password()
	}
	db := strings.TrimPrefix(u.Path, "/")
	if user == "" || u.Host == "" || db == "" {
		return "", fmt.Errorf("incomplete dsn: need user, host, and database")
	}
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&loc=UTC", user, pass, u.Host, db), nil
}

// LoadMySQL reads the full transactions table. The column set is the
// same contract as the CSV source; an unknown-column error from the
// server is reported as a SchemaError so both sources fail the same way.
func LoadMySQL(ctx context.Context, db *sql.DB) ([]model.TransactionRecord, error) {
	query := fmt.Sprintf(`SELECT
		order_id, order_item_id, order_date, delivery_date, estimated_delivery_date,
		customer_id, customer_state, product_id, product_category,
		price, freight_value, review_score, order_status
		FROM %s`, mysqlTable)

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, &SchemaError{Source: mysqlTable, Column: "*", Reason: err.Error()}
	}
	defer func() { _ = rows.Close() }()

	var records []model.TransactionRecord
	for rows.Next() {
		var (
			rec       model.TransactionRecord
			delivered sql.NullTime
			estimated sql.NullTime
			score     sql.NullInt64
			status    string
		)
		err := rows.Scan(
			&rec.OrderID, &rec.OrderItemID, &rec.OrderDate, &delivered, &estimated,
			&rec.CustomerID, &rec.CustomerState, &rec.ProductID, &rec.ProductCategory,
			&rec.Price, &rec.FreightValue, &score, &status,
		)
		if err != nil {
			return nil, &SchemaError{Source: mysqlTable, Column: "*", Reason: err.Error()}
		}

		rec.OrderDate = rec.OrderDate.UTC()
		if delivered.Valid {
			t := delivered.Time.UTC()
			rec.DeliveryDate = &t
		}
		if estimated.Valid {
			t := estimated.Time.UTC()
			rec.EstimatedDelivery = &t
		}
		if score.Valid {
			s := int(score.Int64)
			rec.ReviewScore = &s
		}
		rec.Status = model.OrderStatus(strings.ToLower(status))

		records = append(records, rec)
	}
	return records, rows.Err()
}
