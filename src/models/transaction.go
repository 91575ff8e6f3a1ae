package models

import (
	"time"
)

// Transaction is one append-only ledger entry against a holding. Entries are
// never updated or deleted once created.
type Transaction struct {
	ID           string          `db:"id"`
	HoldingID    string          `db:"holding_id"`
	Type         TransactionType `db:"transaction_type"`
	Quantity     float64         `db:"quantity"`
	PricePerUnit float64         `db:"price_per_unit"`
	Amount       float64         `db:"amount"`
	Date         time.Time       `db:"transaction_date"`
	Notes        string          `db:"notes"`
	CreatedAt    time.Time       `db:"created_at"`
}
