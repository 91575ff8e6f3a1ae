package services

import (
	"math"
	"sort"
	"time"

	"tracker/src/models"
	"tracker/src/schemas"
	"tracker/src/utils"
)

// PerformanceService computes gain/loss and annualized-return metrics per
// holding and produces ordered top-N / worst-N views.
type PerformanceService struct{}

func NewPerformanceService() *PerformanceService {
	return &PerformanceService{}
}

// HoldingMetrics computes the performance numbers for a single holding as of
// the given timestamp. Degenerate inputs (zero principal, zero days held)
// yield zero percentages rather than errors.
func (s *PerformanceService) HoldingMetrics(h models.Holding, asOf time.Time) schemas.RankedHolding {
	gainLoss := h.CurrentValue - h.InitialAmount

	gainLossPercentage := 0.0
	if h.InitialAmount > 0 {
		gainLossPercentage = gainLoss / h.InitialAmount * 100
	}

	daysHeld := utils.DaysBetween(h.PurchaseDate, asOf)

	annualizedReturn := 0.0
	if h.InitialAmount > 0 && daysHeld > 0 {
		annualizedReturn = (math.Pow(h.CurrentValue/h.InitialAmount, 365/float64(daysHeld)) - 1) * 100
	}

	return schemas.RankedHolding{
		HoldingID:          h.ID,
		Name:               h.Name,
		Category:           h.Category.String(),
		InitialAmount:      h.InitialAmount,
		CurrentValue:       h.CurrentValue,
		GainLoss:           gainLoss,
		GainLossPercentage: gainLossPercentage,
		DaysHeld:           daysHeld,
		AnnualizedReturn:   annualizedReturn,
	}
}

// Rank orders holdings along the given dimension and direction and assigns
// 1-based ranks. Percentage ranking excludes zero-principal holdings since no
// meaningful return can be computed for them; value-based rankings keep them.
func (s *PerformanceService) Rank(holdings []models.Holding, dimension schemas.RankDimension, direction schemas.RankDirection, topN int, asOf time.Time) []schemas.RankedHolding {
	ranked := make([]schemas.RankedHolding, 0, len(holdings))
	for _, h := range holdings {
		if dimension == schemas.RankByPercentage && h.InitialAmount <= 0 {
			continue
		}
		ranked = append(ranked, s.HoldingMetrics(h, asOf))
	}

	key := func(r schemas.RankedHolding) float64 {
		switch dimension {
		case schemas.RankByAbsoluteGain:
			return r.GainLoss
		case schemas.RankByCurrentValue:
			return r.CurrentValue
		default:
			return r.GainLossPercentage
		}
	}

	sort.Slice(ranked, func(i, j int) bool {
		ki, kj := key(ranked[i]), key(ranked[j])
		if ki != kj {
			if direction == schemas.RankWorst {
				return ki < kj
			}
			return ki > kj
		}
		return ranked[i].HoldingID < ranked[j].HoldingID
	})

	if topN > 0 && len(ranked) > topN {
		ranked = ranked[:topN]
	}
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}

// CategoryPerformance groups holdings by category and summarizes the gain/loss
// percentages within each group. Categories with no holdings are omitted.
func (s *PerformanceService) CategoryPerformance(holdings []models.Holding, asOf time.Time) []schemas.CategoryPerformance {
	byCategory := make(map[models.Category][]schemas.RankedHolding)
	for _, h := range holdings {
		byCategory[h.Category] = append(byCategory[h.Category], s.HoldingMetrics(h, asOf))
	}

	var summaries []schemas.CategoryPerformance
	for _, category := range models.AllCategories() {
		metrics, ok := byCategory[category]
		if !ok {
			continue
		}

		total := 0.0
		best := metrics[0].GainLossPercentage
		worst := metrics[0].GainLossPercentage
		for _, m := range metrics {
			total += m.GainLossPercentage
			if m.GainLossPercentage > best {
				best = m.GainLossPercentage
			}
			if m.GainLossPercentage < worst {
				worst = m.GainLossPercentage
			}
		}

		summaries = append(summaries, schemas.CategoryPerformance{
			Category:          category.String(),
			Count:             len(metrics),
			AveragePercentage: total / float64(len(metrics)),
			BestPercentage:    best,
			WorstPercentage:   worst,
		})
	}
	return summaries
}
