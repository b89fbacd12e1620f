package pipeline

import (
	"context"
	"fmt"
	"time"

	"cartscope/internal/source"
)

const dbLoadTimeout = 2 * time.Minute

// LoadFromDB reads the full transaction set from a MySQL database
// instead of CSV files. The result shape matches the file loader so
// commands don't care which source fed them.
func LoadFromDB(dsn string) (*LoadResult, error) {
	db, err := source.OpenDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	defer func() { _ = db.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), dbLoadTimeout)
	defer cancel()

	records, err := source.LoadMySQL(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("loading transactions: %w", err)
	}

	return &LoadResult{Transactions: records}, nil
}
