package repositories

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice/internal/models"
)

func newTestProduct(stock int) *models.Product {
	return &models.Product{
		SKU:          "SKU-" + strings.ToUpper(uuid.NewString()[:8]),
		Name:         "Widget",
		UnitPrice:    decimal.RequireFromString("19.99"),
		UnitsInStock: stock,
	}
}

func TestProductRepository_CreateAndGetBySKU(t *testing.T) {
	repo := NewProductRepository(testPool)

	product := newTestProduct(10)
	require.NoError(t, repo.Create(product))
	assert.False(t, product.CreatedAt.IsZero())

	found, err := repo.GetBySKU(product.SKU)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, product.ID, found.ID)
	assert.True(t, found.UnitPrice.Equal(decimal.RequireFromString("19.99")))
	assert.Equal(t, 10, found.UnitsInStock)
}

func TestProductRepository_GetBySKU_NotFound(t *testing.T) {
	repo := NewProductRepository(testPool)

	found, err := repo.GetBySKU("NO-SUCH-SKU")

	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestProductRepository_AdjustStock(t *testing.T) {
	repo := NewProductRepository(testPool)

	product := newTestProduct(5)
	require.NoError(t, repo.Create(product))

	require.NoError(t, repo.AdjustStock(product.ID, 7))
	require.NoError(t, repo.AdjustStock(product.ID, -2))

	found, err := repo.GetByID(product.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, 10, found.UnitsInStock)
}

func TestProductRepository_AdjustStock_BelowZeroRejected(t *testing.T) {
	repo := NewProductRepository(testPool)

	product := newTestProduct(3)
	require.NoError(t, repo.Create(product))

	// The CHECK constraint on units_in_stock rejects the update
	err := repo.AdjustStock(product.ID, -5)
	require.Error(t, err)

	found, getErr := repo.GetByID(product.ID)
	require.NoError(t, getErr)
	require.NotNil(t, found)
	assert.Equal(t, 3, found.UnitsInStock)
}

func TestProductRepository_Discontinue(t *testing.T) {
	repo := NewProductRepository(testPool)

	product := newTestProduct(1)
	require.NoError(t, repo.Create(product))
	require.NoError(t, repo.Discontinue(product.ID))

	found, err := repo.GetByID(product.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.True(t, found.Discontinued)
}

func TestProductRepository_BulkImport(t *testing.T) {
	repo := NewProductRepository(testPool)

	batch := []models.Product{
		*newTestProduct(1),
		*newTestProduct(2),
		*newTestProduct(3),
	}

	count, err := repo.BulkImport(batch)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	for i := range batch {
		found, err := repo.GetBySKU(batch[i].SKU)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, i+1, found.UnitsInStock)
	}
}

func TestProductRepository_BulkImport_DuplicateSKURetainsNothing(t *testing.T) {
	repo := NewProductRepository(testPool)

	first := newTestProduct(1)
	second := newTestProduct(2)
	second.SKU = first.SKU

	_, err := repo.BulkImport([]models.Product{*first, *second})
	require.Error(t, err)

	found, getErr := repo.GetBySKU(first.SKU)
	require.NoError(t, getErr)
	assert.Nil(t, found)
}
