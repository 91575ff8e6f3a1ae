package schemas

import (
	"time"

	"tracker/src/models"
)

type CreateHoldingRequest struct {
	PortfolioID   *string `json:"portfolioId,omitempty"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	InitialAmount float64 `json:"initialAmount"`
	Quantity      float64 `json:"quantity,omitempty"`
	PurchaseDate  string  `json:"purchaseDate"`
	Notes         string  `json:"notes,omitempty"`
}

type UpdateHoldingRequest struct {
	Name     *string `json:"name,omitempty"`
	Category *string `json:"category,omitempty"`
	Status   *string `json:"status,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

type HoldingResponse struct {
	ID                  string    `json:"id"`
	PortfolioID         *string   `json:"portfolioId,omitempty"`
	Name                string    `json:"name"`
	Category            string    `json:"category"`
	Status              string    `json:"status"`
	InitialAmount       float64   `json:"initialAmount"`
	CurrentValue        float64   `json:"currentValue"`
	Quantity            float64   `json:"quantity"`
	AveragePricePerUnit float64   `json:"averagePricePerUnit"`
	PurchaseDate        time.Time `json:"purchaseDate"`
	Notes               string    `json:"notes,omitempty"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

func NewHoldingResponse(h *models.Holding) *HoldingResponse {
	return &HoldingResponse{
		ID:                  h.ID,
		PortfolioID:         h.PortfolioID,
		Name:                h.Name,
		Category:            h.Category.String(),
		Status:              h.Status.String(),
		InitialAmount:       h.InitialAmount,
		CurrentValue:        h.CurrentValue,
		Quantity:            h.Quantity,
		AveragePricePerUnit: h.AveragePricePerUnit,
		PurchaseDate:        h.PurchaseDate,
		Notes:               h.Notes,
		CreatedAt:           h.CreatedAt,
		UpdatedAt:           h.UpdatedAt,
	}
}
