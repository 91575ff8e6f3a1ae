package services

import (
	"context"
	"fmt"
	"time"

	"tracker/src/models"
	"tracker/src/repositories"
	"tracker/src/schemas"
	"tracker/src/utils"

	"github.com/google/uuid"
)

// HoldingService owns the mutation path: creating holdings, appending ledger
// entries and keeping the cached current value consistent with the ledger.
type HoldingService struct {
	holdings     repositories.HoldingRepository
	transactions repositories.TransactionRepository
	activity     repositories.ActivityLogRepository
	valuation    *ValuationService
}

func NewHoldingService(holdings repositories.HoldingRepository, transactions repositories.TransactionRepository, activity repositories.ActivityLogRepository, valuation *ValuationService) *HoldingService {
	return &HoldingService{
		holdings:     holdings,
		transactions: transactions,
		activity:     activity,
		valuation:    valuation,
	}
}

func (s *HoldingService) CreateHolding(ctx context.Context, userID string, req *schemas.CreateHoldingRequest, now time.Time) (*models.Holding, error) {
	category, err := models.ParseCategory(req.Category)
	if err != nil {
		return nil, utils.UnprocessableEntity(err.Error())
	}

	purchaseDate, err := time.Parse(utils.ShortDashDateLayout, req.PurchaseDate)
	if err != nil {
		return nil, utils.UnprocessableEntity("invalid purchaseDate, expected YYYY-MM-DD")
	}
	if utils.TruncateToDay(purchaseDate).After(utils.TruncateToDay(now)) {
		return nil, utils.UnprocessableEntity("purchaseDate cannot be in the future")
	}
	if req.InitialAmount < 0 {
		return nil, utils.UnprocessableEntity("initialAmount cannot be negative")
	}
	if req.Name == "" {
		return nil, utils.UnprocessableEntity("name is required")
	}

	averagePrice := 0.0
	if req.Quantity > 0 {
		averagePrice = req.InitialAmount / req.Quantity
	}

	h := &models.Holding{
		ID:                  uuid.NewString(),
		UserID:              userID,
		PortfolioID:         req.PortfolioID,
		Name:                req.Name,
		Category:            category,
		InitialAmount:       req.InitialAmount,
		CurrentValue:        req.InitialAmount,
		Quantity:            req.Quantity,
		AveragePricePerUnit: averagePrice,
		PurchaseDate:        purchaseDate,
		Status:              models.StatusActive,
		Notes:               req.Notes,
	}

	if err := s.holdings.Create(ctx, h, nil); err != nil {
		return nil, err
	}

	s.logActivity(ctx, userID, "create", "holding", h.ID, fmt.Sprintf("created holding %q", h.Name))
	return h, nil
}

func (s *HoldingService) UpdateHolding(ctx context.Context, userID, id string, req *schemas.UpdateHoldingRequest) (*models.Holding, error) {
	h, err := s.ownedHolding(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		h.Name = *req.Name
	}
	if req.Category != nil {
		category, err := models.ParseCategory(*req.Category)
		if err != nil {
			return nil, utils.UnprocessableEntity(err.Error())
		}
		h.Category = category
	}
	if req.Status != nil {
		status, err := models.ParseHoldingStatus(*req.Status)
		if err != nil {
			return nil, utils.UnprocessableEntity(err.Error())
		}
		h.Status = status
	}
	if req.Notes != nil {
		h.Notes = *req.Notes
	}

	if err := s.holdings.Update(ctx, h, nil); err != nil {
		return nil, err
	}

	s.logActivity(ctx, userID, "update", "holding", h.ID, fmt.Sprintf("updated holding %q", h.Name))
	return h, nil
}

func (s *HoldingService) DeleteHolding(ctx context.Context, userID, id string) error {
	h, err := s.ownedHolding(ctx, userID, id)
	if err != nil {
		return err
	}

	// Soft delete only: the ledger must remain replayable.
	if err := s.holdings.SoftDelete(ctx, h.ID); err != nil {
		return err
	}

	s.logActivity(ctx, userID, "delete", "holding", h.ID, fmt.Sprintf("deleted holding %q", h.Name))
	return nil
}

// CreateTransaction validates and appends one ledger entry. The sell guard
// and the replacement cached value are both evaluated against the ledger
// snapshot the repository reads under its row lock, so concurrent appends to
// the same holding serialize and the cached value is always a deterministic
// function of the committed ledger.
func (s *HoldingService) CreateTransaction(ctx context.Context, userID, holdingID string, req *schemas.CreateTransactionRequest, now time.Time) (*models.Transaction, error) {
	if _, err := s.ownedHolding(ctx, userID, holdingID); err != nil {
		return nil, err
	}

	txType, err := models.ParseTransactionType(req.Type)
	if err != nil {
		return nil, utils.UnprocessableEntity(err.Error())
	}

	date, err := time.Parse(utils.ShortDashDateLayout, req.TransactionDate)
	if err != nil {
		return nil, utils.UnprocessableEntity("invalid transactionDate, expected YYYY-MM-DD")
	}
	if utils.TruncateToDay(date).After(utils.TruncateToDay(now)) {
		return nil, utils.UnprocessableEntity("transactionDate cannot be in the future")
	}
	if req.Quantity <= 0 || req.PricePerUnit <= 0 {
		return nil, utils.UnprocessableEntity("quantity and pricePerUnit must be positive")
	}

	amount := req.Quantity * req.PricePerUnit

	t := models.Transaction{
		ID:           uuid.NewString(),
		HoldingID:    holdingID,
		Type:         txType,
		Quantity:     req.Quantity,
		PricePerUnit: req.PricePerUnit,
		Amount:       amount,
		Date:         date,
		Notes:        req.Notes,
	}

	h, err := s.holdings.AppendTransaction(ctx, holdingID, &t, func(h *models.Holding, ledger []models.Transaction) error {
		if txType == models.TransactionSell && amount > h.CurrentValue {
			return utils.BadRequest("sell amount exceeds current holding value")
		}

		// Current value is derived from the full ledger including the new
		// entry, not incremented ad hoc.
		h.CurrentValue = s.valuation.ValueAt(*h, append(ledger, t), now).Value

		switch txType {
		case models.TransactionBuy:
			newQuantity := h.Quantity + req.Quantity
			if newQuantity > 0 {
				h.AveragePricePerUnit = (h.Quantity*h.AveragePricePerUnit + amount) / newQuantity
			}
			h.Quantity = newQuantity
		case models.TransactionSell:
			h.Quantity -= req.Quantity
			if h.Quantity < 0 {
				h.Quantity = 0
			}
		case models.TransactionUpdate:
			h.Quantity = req.Quantity
			h.AveragePricePerUnit = req.PricePerUnit
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logActivity(ctx, userID, "create", "transaction", t.ID,
		fmt.Sprintf("%s of %.2f on holding %q", t.Type, amount, h.Name))
	return &t, nil
}

func (s *HoldingService) GetHoldings(ctx context.Context, userID string) ([]models.Holding, error) {
	return s.holdings.GetByUserID(ctx, userID)
}

func (s *HoldingService) GetTransactions(ctx context.Context, userID, holdingID string) ([]models.Transaction, error) {
	if _, err := s.ownedHolding(ctx, userID, holdingID); err != nil {
		return nil, err
	}
	return s.transactions.GetByHoldingID(ctx, holdingID)
}

func (s *HoldingService) ownedHolding(ctx context.Context, userID, id string) (*models.Holding, error) {
	h, err := s.holdings.GetByID(ctx, id)
	if err != nil {
		return nil, utils.NotFound("holding not found")
	}
	if h.UserID != userID {
		return nil, utils.Forbidden("holding does not belong to the requesting user")
	}
	return h, nil
}

// logActivity records the mutation without ever failing it.
func (s *HoldingService) logActivity(ctx context.Context, userID, action, entityType, entityID, detail string) {
	entry := &models.ActivityLog{
		ID:         uuid.NewString(),
		UserID:     userID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Detail:     detail,
	}
	if err := s.activity.Create(ctx, entry); err != nil {
		utils.LoggerFromContext(ctx).WithField("entity", entityID).Warn("failed to record activity: ", err)
	}
}
