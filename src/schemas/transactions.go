package schemas

import (
	"time"

	"tracker/src/models"
)

type CreateTransactionRequest struct {
	Type            string  `json:"type"`
	Quantity        float64 `json:"quantity"`
	PricePerUnit    float64 `json:"pricePerUnit"`
	TransactionDate string  `json:"transactionDate"`
	Notes           string  `json:"notes,omitempty"`
}

type TransactionResponse struct {
	ID              string    `json:"id"`
	HoldingID       string    `json:"holdingId"`
	Type            string    `json:"type"`
	Quantity        float64   `json:"quantity"`
	PricePerUnit    float64   `json:"pricePerUnit"`
	Amount          float64   `json:"amount"`
	TransactionDate time.Time `json:"transactionDate"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

func NewTransactionResponse(t *models.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:              t.ID,
		HoldingID:       t.HoldingID,
		Type:            t.Type.String(),
		Quantity:        t.Quantity,
		PricePerUnit:    t.PricePerUnit,
		Amount:          t.Amount,
		TransactionDate: t.Date,
		Notes:           t.Notes,
		CreatedAt:       t.CreatedAt,
	}
}
