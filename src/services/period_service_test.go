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

func newPeriodService() *services.PeriodService {
	return services.NewPeriodService(services.NewValuationService())
}

func TestPeriodSeries_MonthLabelsAndOrder(t *testing.T) {
	periods := newPeriodService()
	asOf := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)
	holdings := []models.Holding{
		{ID: "h1", InitialAmount: 1000, PurchaseDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
	}

	series := periods.PeriodSeries(holdings, nil, schemas.GranularityMonth, 3, asOf)
	require.Len(t, series, 3)
	assert.Equal(t, "Jan 2024", series[0].Label)
	assert.Equal(t, "Feb 2024", series[1].Label)
	assert.Equal(t, "Mar 2024", series[2].Label)
}

func TestPeriodSeries_GrowthFromEmptyStart(t *testing.T) {
	periods := newPeriodService()
	asOf := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)
	holdings := []models.Holding{
		{ID: "h1", InitialAmount: 1000, PurchaseDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
	}

	series := periods.PeriodSeries(holdings, nil, schemas.GranularityMonth, 3, asOf)
	require.Len(t, series, 3)

	// The purchase month starts from nothing, so growth is absolute and the
	// percentage stays zero.
	jan := series[0]
	assert.Equal(t, 0.0, jan.StartValue)
	assert.Equal(t, 1000.0, jan.EndValue)
	assert.Equal(t, 1000.0, jan.Growth)
	assert.Equal(t, 0.0, jan.GrowthPercentage)

	feb := series[1]
	assert.Equal(t, 1000.0, feb.StartValue)
	assert.Equal(t, 1000.0, feb.EndValue)
	assert.Equal(t, 0.0, feb.Growth)
}

func TestPeriodSeries_TransactionStats(t *testing.T) {
	periods := newPeriodService()
	asOf := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)
	holdings := []models.Holding{
		{ID: "h1", InitialAmount: 1000, PurchaseDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
	}
	txs := map[string][]models.Transaction{
		"h1": {{ID: "t1", HoldingID: "h1", Type: models.TransactionBuy, Amount: 600, Date: time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)}},
	}

	series := periods.PeriodSeries(holdings, txs, schemas.GranularityMonth, 3, asOf)
	require.Len(t, series, 3)

	feb := series[1]
	assert.Equal(t, 1, feb.TransactionCount)
	assert.Equal(t, 600.0, feb.TransactionTotal)
	assert.Equal(t, 1600.0, feb.EndValue)
	assert.Equal(t, 600.0, feb.Growth)
	assert.InDelta(t, 60.0, feb.GrowthPercentage, 1e-9)

	assert.Equal(t, 0, series[0].TransactionCount)
	assert.Equal(t, 0, series[2].TransactionCount)
}

func TestPeriodReport_BestWorstAverage(t *testing.T) {
	periods := newPeriodService()
	asOf := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)
	holdings := []models.Holding{
		{ID: "h1", InitialAmount: 1000, PurchaseDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
	}
	txs := map[string][]models.Transaction{
		"h1": {
			{ID: "t1", HoldingID: "h1", Type: models.TransactionBuy, Amount: 600, Date: time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)},
			{ID: "t2", HoldingID: "h1", Type: models.TransactionSell, Amount: 200, Date: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
		},
	}

	report := periods.PeriodReport(holdings, txs, schemas.GranularityMonth, 3, asOf)
	require.NotNil(t, report.BestPeriod)
	require.NotNil(t, report.WorstPeriod)

	assert.Equal(t, "Feb 2024", report.BestPeriod.Label)
	assert.Equal(t, "Mar 2024", report.WorstPeriod.Label)
	assert.InDelta(t, (1000.0+600.0-200.0)/3, report.AverageGrowth, 1e-9)
}

func TestPeriodReport_EmptyPortfolio(t *testing.T) {
	periods := newPeriodService()
	asOf := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)

	report := periods.PeriodReport(nil, nil, schemas.GranularityMonth, 3, asOf)
	require.Len(t, report.Periods, 3)
	for _, p := range report.Periods {
		assert.Equal(t, 0.0, p.EndValue)
		assert.Equal(t, 0.0, p.GrowthPercentage)
	}
	assert.Equal(t, 0.0, report.AverageGrowth)
}

func TestPeriodSeries_MonthCountBounds(t *testing.T) {
	periods := newPeriodService()
	asOf := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)

	assert.Len(t, periods.PeriodSeries(nil, nil, schemas.GranularityMonth, 0, asOf), services.MinMonthPeriods)
	assert.Len(t, periods.PeriodSeries(nil, nil, schemas.GranularityMonth, 100, asOf), services.MaxMonthPeriods)
}

func TestPeriodSeries_YearCountDefaultsToEarliestPurchase(t *testing.T) {
	periods := newPeriodService()
	asOf := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	holdings := []models.Holding{
		{ID: "h1", InitialAmount: 1000, PurchaseDate: time.Date(2021, 3, 10, 0, 0, 0, 0, time.UTC)},
		{ID: "h2", InitialAmount: 500, PurchaseDate: time.Date(2023, 8, 1, 0, 0, 0, 0, time.UTC)},
	}

	series := periods.PeriodSeries(holdings, nil, schemas.GranularityYear, 0, asOf)
	require.Len(t, series, 4)
	assert.Equal(t, "2021", series[0].Label)
	assert.Equal(t, "2024", series[3].Label)
}
