package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS transactions (
    file_path              TEXT NOT NULL,
    order_id               TEXT NOT NULL,
    order_item_id          INTEGER NOT NULL,
    order_date             TEXT NOT NULL,
    delivery_date          TEXT,
    estimated_delivery     TEXT,
    customer_id            TEXT NOT NULL,
    customer_state         TEXT NOT NULL,
    product_id             TEXT NOT NULL,
    product_category       TEXT NOT NULL,
    price                  REAL NOT NULL,
    freight_value          REAL NOT NULL,
    review_score           INTEGER,
    order_status           TEXT NOT NULL,
    PRIMARY KEY (order_id, order_item_id)
);

CREATE TABLE IF NOT EXISTS file_tracker (
    file_path              TEXT PRIMARY KEY,
    mtime_ns               INTEGER NOT NULL,
    size_bytes             INTEGER NOT NULL,
    parsed_at              TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_transactions_file ON transactions(file_path);
CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions(order_date);
`
