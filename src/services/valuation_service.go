package services

import (
	"sort"
	"time"

	"tracker/src/models"
	"tracker/src/utils"
)

// Valuation is the point-in-time result of replaying a holding's ledger.
type Valuation struct {
	Value     float64
	Principal float64
}

// ValuationService reconstructs holding and portfolio values at arbitrary
// dates by replaying the transaction ledger. All methods are pure functions of
// their inputs.
type ValuationService struct{}

func NewValuationService() *ValuationService {
	return &ValuationService{}
}

// ValueAt replays the holding's transactions up to and including date.
//
// A holding purchased after date contributes nothing. Otherwise replay starts
// from the initial amount and applies qualifying entries in (date, id) order:
// Buy adds, Sell subtracts, Update resets the running value to an absolute
// amount. A holding with no qualifying entries is worth its initial amount.
func (s *ValuationService) ValueAt(h models.Holding, transactions []models.Transaction, date time.Time) Valuation {
	day := utils.TruncateToDay(date)
	if utils.TruncateToDay(h.PurchaseDate).After(day) {
		return Valuation{}
	}

	qualifying := make([]models.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if !utils.TruncateToDay(t.Date).After(day) {
			qualifying = append(qualifying, t)
		}
	}
	sort.Slice(qualifying, func(i, j int) bool {
		di, dj := utils.TruncateToDay(qualifying[i].Date), utils.TruncateToDay(qualifying[j].Date)
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		return qualifying[i].ID < qualifying[j].ID
	})

	value := h.InitialAmount
	for _, t := range qualifying {
		switch t.Type {
		case models.TransactionBuy:
			value += t.Amount
		case models.TransactionSell:
			// Historical replay subtracts without clamping; the mutation
			// path already rejects sells that exceed the live value.
			value -= t.Amount
		case models.TransactionUpdate:
			value = t.Amount
		}
	}

	return Valuation{Value: value, Principal: h.InitialAmount}
}

// PortfolioValueAt sums ValueAt over all holdings. Holdings not yet purchased
// at date contribute zero to both value and invested principal.
func (s *ValuationService) PortfolioValueAt(holdings []models.Holding, txsByHolding map[string][]models.Transaction, date time.Time) Valuation {
	var total Valuation
	for _, h := range holdings {
		v := s.ValueAt(h, txsByHolding[h.ID], date)
		total.Value += v.Value
		total.Principal += v.Principal
	}
	return total
}
