package services_test

import (
	"testing"

	"tracker/src/models"
	"tracker/src/schemas"
	"tracker/src/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func distributionFixture() []models.Holding {
	return []models.Holding{
		{ID: "h1", Category: models.CategoryStocks, Status: models.StatusActive, CurrentValue: 6000},
		{ID: "h2", Category: models.CategoryStocks, Status: models.StatusSold, CurrentValue: 2000},
		{ID: "h3", Category: models.CategoryBonds, Status: models.StatusActive, CurrentValue: 2000},
	}
}

func TestDistribution_ByCategory(t *testing.T) {
	distribution := services.NewDistributionService()

	buckets := distribution.Distribution(distributionFixture(), schemas.GroupByCategory)
	require.Len(t, buckets, 2)

	assert.Equal(t, "Stocks", buckets[0].Label)
	assert.Equal(t, 2, buckets[0].Count)
	assert.Equal(t, 8000.0, buckets[0].TotalValue)
	assert.InDelta(t, 80.0, buckets[0].Percentage, 1e-9)
	assert.Equal(t, "#2563EB", buckets[0].Color)

	assert.Equal(t, "Bonds", buckets[1].Label)
	assert.InDelta(t, 20.0, buckets[1].Percentage, 1e-9)

	sum := 0.0
	for _, b := range buckets {
		sum += b.Percentage
	}
	assert.InDelta(t, 100.0, sum, 1e-9)
}

func TestDistribution_ByStatus(t *testing.T) {
	distribution := services.NewDistributionService()

	buckets := distribution.Distribution(distributionFixture(), schemas.GroupByStatus)
	require.Len(t, buckets, 2)
	assert.Equal(t, "Active", buckets[0].Label)
	assert.Equal(t, 8000.0, buckets[0].TotalValue)
	assert.Equal(t, "Sold", buckets[1].Label)
}

func TestDistribution_SkipsDeleted(t *testing.T) {
	distribution := services.NewDistributionService()
	holdings := append(distributionFixture(), models.Holding{
		ID: "h4", Category: models.CategoryCrypto, Status: models.StatusActive, CurrentValue: 100000, Deleted: true,
	})

	buckets := distribution.Distribution(holdings, schemas.GroupByCategory)
	require.Len(t, buckets, 2)
	for _, b := range buckets {
		assert.NotEqual(t, "Crypto", b.Label)
	}
}

func TestDistribution_ZeroTotal(t *testing.T) {
	distribution := services.NewDistributionService()
	holdings := []models.Holding{
		{ID: "h1", Category: models.CategoryStocks, Status: models.StatusActive, CurrentValue: 0},
	}

	buckets := distribution.Distribution(holdings, schemas.GroupByCategory)
	require.Len(t, buckets, 1)
	assert.Equal(t, 0.0, buckets[0].Percentage)
}

func TestDistribution_TiesOrderedByLabel(t *testing.T) {
	distribution := services.NewDistributionService()
	holdings := []models.Holding{
		{ID: "h1", Category: models.CategoryCrypto, Status: models.StatusActive, CurrentValue: 500},
		{ID: "h2", Category: models.CategoryBonds, Status: models.StatusActive, CurrentValue: 500},
	}

	buckets := distribution.Distribution(holdings, schemas.GroupByCategory)
	require.Len(t, buckets, 2)
	assert.Equal(t, "Bonds", buckets[0].Label)
	assert.Equal(t, "Crypto", buckets[1].Label)
}

func TestActiveOnly(t *testing.T) {
	distribution := services.NewDistributionService()
	holdings := append(distributionFixture(), models.Holding{
		ID: "h4", Category: models.CategoryStocks, Status: models.StatusActive, CurrentValue: 100, Deleted: true,
	})

	active := distribution.ActiveOnly(holdings)
	require.Len(t, active, 2)
	for _, h := range active {
		assert.Equal(t, models.StatusActive, h.Status)
		assert.False(t, h.Deleted)
	}
}

func TestSizeDistribution(t *testing.T) {
	distribution := services.NewDistributionService()
	holdings := []models.Holding{
		{ID: "h1", CurrentValue: 0},
		{ID: "h2", CurrentValue: 999.99},
		{ID: "h3", CurrentValue: 1000},
		{ID: "h4", CurrentValue: 7500},
		{ID: "h5", CurrentValue: 50000},
		{ID: "h6", CurrentValue: 250000},
		{ID: "h7", CurrentValue: 42000, Deleted: true},
	}

	buckets := distribution.SizeDistribution(holdings)
	require.Len(t, buckets, 5)

	assert.Equal(t, "< $1,000", buckets[0].Label)
	assert.Equal(t, 2, buckets[0].Count)

	assert.Equal(t, "$1,000 - $5,000", buckets[1].Label)
	assert.Equal(t, 1, buckets[1].Count)

	assert.Equal(t, "$5,000 - $10,000", buckets[2].Label)
	assert.Equal(t, 1, buckets[2].Count)

	assert.Equal(t, "$10,000 - $50,000", buckets[3].Label)
	assert.Equal(t, 0, buckets[3].Count)

	assert.Equal(t, "$50,000+", buckets[4].Label)
	assert.Equal(t, 2, buckets[4].Count)
	assert.Equal(t, 300000.0, buckets[4].TotalValue)
}

func TestSizeDistribution_Empty(t *testing.T) {
	distribution := services.NewDistributionService()

	buckets := distribution.SizeDistribution(nil)
	require.Len(t, buckets, 5)
	for _, b := range buckets {
		assert.Equal(t, 0, b.Count)
		assert.Equal(t, 0.0, b.TotalValue)
	}
}
