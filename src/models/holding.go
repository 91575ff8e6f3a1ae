package models

import (
	"time"
)

type Holding struct {
	ID                  string        `db:"id"`
	UserID              string        `db:"user_id"`
	PortfolioID         *string       `db:"portfolio_id"`
	Name                string        `db:"name"`
	Category            Category      `db:"category"`
	InitialAmount       float64       `db:"initial_amount"`
	CurrentValue        float64       `db:"current_value"`
	Quantity            float64       `db:"quantity"`
	AveragePricePerUnit float64       `db:"average_price_per_unit"`
	PurchaseDate        time.Time     `db:"purchase_date"`
	Status              HoldingStatus `db:"status"`
	Notes               string        `db:"notes"`
	CreatedAt           time.Time     `db:"created_at"`
	UpdatedAt           time.Time     `db:"updated_at"`
	Deleted             bool          `db:"deleted"`
	DeletedAt           *time.Time    `db:"deleted_at"`
}
