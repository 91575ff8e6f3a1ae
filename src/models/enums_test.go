package models_test

import (
	"encoding/json"
	"testing"

	"tracker/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	c, err := models.ParseCategory("RealEstate")
	require.NoError(t, err)
	assert.Equal(t, models.CategoryRealEstate, c)

	_, err = models.ParseCategory("Tulips")
	assert.Error(t, err)
}

func TestCategoryJSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(models.CategoryCrypto)
	require.NoError(t, err)
	assert.Equal(t, `"Crypto"`, string(data))

	var c models.Category
	require.NoError(t, json.Unmarshal(data, &c))
	assert.Equal(t, models.CategoryCrypto, c)

	assert.Error(t, json.Unmarshal([]byte(`"Beanie Babies"`), &c))
}

func TestParseTransactionType(t *testing.T) {
	tt, err := models.ParseTransactionType("Sell")
	require.NoError(t, err)
	assert.Equal(t, models.TransactionSell, tt)

	_, err = models.ParseTransactionType("sell")
	assert.Error(t, err)
}

func TestParseHoldingStatus(t *testing.T) {
	st, err := models.ParseHoldingStatus("OnHold")
	require.NoError(t, err)
	assert.Equal(t, models.StatusOnHold, st)

	_, err = models.ParseHoldingStatus("Paused")
	assert.Error(t, err)
}

func TestAllCategoriesOrder(t *testing.T) {
	categories := models.AllCategories()
	require.Len(t, categories, 6)
	assert.Equal(t, models.CategoryStocks, categories[0])
	assert.Equal(t, models.CategoryOther, categories[5])
}
