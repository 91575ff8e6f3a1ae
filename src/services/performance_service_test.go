package services_test

import (
	"testing"
	"time"

	"tracker/src/models"
	"tracker/src/schemas"
	"tracker/src/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rankAsOf = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

func rankFixture() []models.Holding {
	purchase := rankAsOf.AddDate(0, 0, -365)
	return []models.Holding{
		{ID: "h1", Name: "Alpha", Category: models.CategoryStocks, InitialAmount: 100, CurrentValue: 200, PurchaseDate: purchase},
		{ID: "h2", Name: "Beta", Category: models.CategoryStocks, InitialAmount: 100, CurrentValue: 150, PurchaseDate: purchase},
		{ID: "h3", Name: "Gifted", Category: models.CategoryBonds, InitialAmount: 0, CurrentValue: 500, PurchaseDate: purchase},
	}
}

func TestHoldingMetrics(t *testing.T) {
	performance := services.NewPerformanceService()
	purchase := rankAsOf.AddDate(0, 0, -365)
	h := models.Holding{ID: "h1", Name: "Alpha", Category: models.CategoryStocks, InitialAmount: 100, CurrentValue: 150, PurchaseDate: purchase}

	m := performance.HoldingMetrics(h, rankAsOf)
	assert.Equal(t, 50.0, m.GainLoss)
	assert.InDelta(t, 50.0, m.GainLossPercentage, 1e-9)
	assert.Equal(t, 365, m.DaysHeld)
	// Exactly one year held: annualized equals the simple return.
	assert.InDelta(t, 50.0, m.AnnualizedReturn, 1e-9)
}

func TestHoldingMetrics_ZeroPrincipal(t *testing.T) {
	performance := services.NewPerformanceService()
	h := models.Holding{ID: "h1", InitialAmount: 0, CurrentValue: 500, PurchaseDate: rankAsOf.AddDate(0, 0, -100)}

	m := performance.HoldingMetrics(h, rankAsOf)
	assert.Equal(t, 500.0, m.GainLoss)
	assert.Equal(t, 0.0, m.GainLossPercentage)
	assert.Equal(t, 0.0, m.AnnualizedReturn)
}

func TestHoldingMetrics_SameDayPurchase(t *testing.T) {
	performance := services.NewPerformanceService()
	h := models.Holding{ID: "h1", InitialAmount: 100, CurrentValue: 120, PurchaseDate: rankAsOf}

	m := performance.HoldingMetrics(h, rankAsOf)
	assert.Equal(t, 0, m.DaysHeld)
	assert.Equal(t, 0.0, m.AnnualizedReturn)
}

func TestRank_PercentageExcludesZeroPrincipal(t *testing.T) {
	performance := services.NewPerformanceService()

	ranked := performance.Rank(rankFixture(), schemas.RankByPercentage, schemas.RankTop, 10, rankAsOf)
	require.Len(t, ranked, 2)
	assert.Equal(t, "h1", ranked[0].HoldingID)
	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, "h2", ranked[1].HoldingID)
	assert.Equal(t, 2, ranked[1].Rank)
}

func TestRank_CurrentValueKeepsZeroPrincipal(t *testing.T) {
	performance := services.NewPerformanceService()

	ranked := performance.Rank(rankFixture(), schemas.RankByCurrentValue, schemas.RankTop, 10, rankAsOf)
	require.Len(t, ranked, 3)
	assert.Equal(t, "h3", ranked[0].HoldingID)
	assert.Equal(t, "h1", ranked[1].HoldingID)
	assert.Equal(t, "h2", ranked[2].HoldingID)
}

func TestRank_WorstDirection(t *testing.T) {
	performance := services.NewPerformanceService()

	ranked := performance.Rank(rankFixture(), schemas.RankByPercentage, schemas.RankWorst, 10, rankAsOf)
	require.Len(t, ranked, 2)
	assert.Equal(t, "h2", ranked[0].HoldingID)
	assert.Equal(t, "h1", ranked[1].HoldingID)
}

func TestRank_TruncatesToTopN(t *testing.T) {
	performance := services.NewPerformanceService()

	ranked := performance.Rank(rankFixture(), schemas.RankByPercentage, schemas.RankTop, 1, rankAsOf)
	require.Len(t, ranked, 1)
	assert.Equal(t, "h1", ranked[0].HoldingID)
}

func TestRank_TiesBreakByHoldingID(t *testing.T) {
	performance := services.NewPerformanceService()
	purchase := rankAsOf.AddDate(0, 0, -100)
	holdings := []models.Holding{
		{ID: "b", InitialAmount: 100, CurrentValue: 150, PurchaseDate: purchase},
		{ID: "a", InitialAmount: 100, CurrentValue: 150, PurchaseDate: purchase},
	}

	ranked := performance.Rank(holdings, schemas.RankByPercentage, schemas.RankTop, 10, rankAsOf)
	require.Len(t, ranked, 2)
	assert.Equal(t, "a", ranked[0].HoldingID)
	assert.Equal(t, "b", ranked[1].HoldingID)
}

func TestCategoryPerformance(t *testing.T) {
	performance := services.NewPerformanceService()

	summaries := performance.CategoryPerformance(rankFixture(), rankAsOf)
	require.Len(t, summaries, 2)

	stocks := summaries[0]
	assert.Equal(t, "Stocks", stocks.Category)
	assert.Equal(t, 2, stocks.Count)
	assert.InDelta(t, 75.0, stocks.AveragePercentage, 1e-9)
	assert.InDelta(t, 100.0, stocks.BestPercentage, 1e-9)
	assert.InDelta(t, 50.0, stocks.WorstPercentage, 1e-9)

	bonds := summaries[1]
	assert.Equal(t, "Bonds", bonds.Category)
	assert.Equal(t, 1, bonds.Count)
}

func TestCategoryPerformance_Empty(t *testing.T) {
	performance := services.NewPerformanceService()
	assert.Empty(t, performance.CategoryPerformance(nil, rankAsOf))
}
