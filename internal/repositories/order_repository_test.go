package repositories

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice/internal/models"
)

type orderFixture struct {
	customer *models.Customer
	employee *models.Employee
	products []*models.Product
}

func setupOrderFixture(t *testing.T, stocks ...int) orderFixture {
	t.Helper()

	customerRepo := NewCustomerRepository(testPool)
	employeeRepo := NewEmployeeRepository(testPool)
	productRepo := NewProductRepository(testPool)

	customer := newTestCustomer()
	require.NoError(t, customerRepo.Create(customer))

	employee := newTestEmployee("sales")
	require.NoError(t, employeeRepo.Create(employee))

	products := make([]*models.Product, 0, len(stocks))
	for _, stock := range stocks {
		product := newTestProduct(stock)
		require.NoError(t, productRepo.Create(product))
		products = append(products, product)
	}

	return orderFixture{customer: customer, employee: employee, products: products}
}

func TestOrderRepository_PlaceOrder(t *testing.T) {
	fx := setupOrderFixture(t, 10, 5)
	repo := NewOrderRepository(testPool)
	productRepo := NewProductRepository(testPool)

	order := &models.Order{
		CustomerID: fx.customer.ID,
		PlacedBy:   fx.employee.ID,
	}
	lines := []OrderLine{
		{ProductID: fx.products[0].ID, Quantity: 3},
		{ProductID: fx.products[1].ID, Quantity: 2},
	}

	require.NoError(t, repo.PlaceOrder(order, lines))

	// 5 units at 19.99 each
	assert.True(t, order.Total.Equal(decimal.RequireFromString("99.95")), "got total %s", order.Total)
	assert.Len(t, order.Items, 2)

	found, err := repo.GetByID(order.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, models.OrderStatusPending, found.Status)
	assert.True(t, found.Total.Equal(order.Total))
	assert.Len(t, found.Items, 2)

	first, err := productRepo.GetByID(fx.products[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 7, first.UnitsInStock)

	second, err := productRepo.GetByID(fx.products[1].ID)
	require.NoError(t, err)
	assert.Equal(t, 3, second.UnitsInStock)
}

func TestOrderRepository_PlaceOrder_InsufficientStockRollsBack(t *testing.T) {
	fx := setupOrderFixture(t, 10, 1)
	repo := NewOrderRepository(testPool)
	productRepo := NewProductRepository(testPool)

	order := &models.Order{
		CustomerID: fx.customer.ID,
		PlacedBy:   fx.employee.ID,
	}
	lines := []OrderLine{
		{ProductID: fx.products[0].ID, Quantity: 3},
		{ProductID: fx.products[1].ID, Quantity: 2}, // only 1 in stock
	}

	err := repo.PlaceOrder(order, lines)
	require.ErrorIs(t, err, ErrInsufficientStock)

	// Nothing persisted: no order row, first product's stock untouched
	found, getErr := repo.GetByID(order.ID)
	require.NoError(t, getErr)
	assert.Nil(t, found)

	first, getErr := productRepo.GetByID(fx.products[0].ID)
	require.NoError(t, getErr)
	assert.Equal(t, 10, first.UnitsInStock)
}

func TestOrderRepository_PlaceOrder_DiscontinuedProductRejected(t *testing.T) {
	fx := setupOrderFixture(t, 10)
	repo := NewOrderRepository(testPool)
	productRepo := NewProductRepository(testPool)

	require.NoError(t, productRepo.Discontinue(fx.products[0].ID))

	order := &models.Order{
		CustomerID: fx.customer.ID,
		PlacedBy:   fx.employee.ID,
	}
	err := repo.PlaceOrder(order, []OrderLine{{ProductID: fx.products[0].ID, Quantity: 1}})

	require.ErrorIs(t, err, ErrInsufficientStock)
}

func TestOrderRepository_PlaceOrderProc(t *testing.T) {
	fx := setupOrderFixture(t, 8, 4)
	repo := NewOrderRepository(testPool)
	productRepo := NewProductRepository(testPool)

	lines := []OrderLine{
		{ProductID: fx.products[0].ID, Quantity: 2},
		{ProductID: fx.products[1].ID, Quantity: 1},
	}

	orderID, err := repo.PlaceOrderProc(fx.customer.ID, fx.employee.ID, lines)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, orderID)

	order, err := repo.GetByID(orderID)
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Len(t, order.Items, 2)
	// 3 units at 19.99 each
	assert.True(t, order.Total.Equal(decimal.RequireFromString("59.97")), "got total %s", order.Total)

	first, err := productRepo.GetByID(fx.products[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 6, first.UnitsInStock)
}

func TestOrderRepository_PlaceOrderProc_InsufficientStockRollsBack(t *testing.T) {
	fx := setupOrderFixture(t, 8, 1)
	repo := NewOrderRepository(testPool)
	productRepo := NewProductRepository(testPool)

	lines := []OrderLine{
		{ProductID: fx.products[0].ID, Quantity: 2},
		{ProductID: fx.products[1].ID, Quantity: 5}, // only 1 in stock
	}

	_, err := repo.PlaceOrderProc(fx.customer.ID, fx.employee.ID, lines)
	require.Error(t, err)

	// The function raised; its order insert and first decrement rolled back
	first, getErr := productRepo.GetByID(fx.products[0].ID)
	require.NoError(t, getErr)
	assert.Equal(t, 8, first.UnitsInStock)

	orders, getErr := repo.ListByCustomer(fx.customer.ID)
	require.NoError(t, getErr)
	assert.Empty(t, orders)
}

func TestOrderRepository_UpdateStatusAndRevenue(t *testing.T) {
	fx := setupOrderFixture(t, 10)
	repo := NewOrderRepository(testPool)

	before, err := repo.TotalRevenue()
	require.NoError(t, err)

	order := &models.Order{
		CustomerID: fx.customer.ID,
		PlacedBy:   fx.employee.ID,
	}
	require.NoError(t, repo.PlaceOrder(order, []OrderLine{{ProductID: fx.products[0].ID, Quantity: 2}}))

	require.NoError(t, repo.UpdateStatus(order.ID, models.OrderStatusShipped))
	require.NoError(t, repo.UpdateStatus(order.ID, models.OrderStatusCompleted))

	after, err := repo.TotalRevenue()
	require.NoError(t, err)
	assert.True(t, after.Sub(before).Equal(order.Total), "revenue delta %s, want %s", after.Sub(before), order.Total)
}

func TestOrderRepository_UpdateStatus_NotFound(t *testing.T) {
	repo := NewOrderRepository(testPool)

	err := repo.UpdateStatus(uuid.New(), models.OrderStatusShipped)
	assert.Error(t, err)
}

func TestOrderRepository_ListByCustomer(t *testing.T) {
	fx := setupOrderFixture(t, 20)
	repo := NewOrderRepository(testPool)

	for i := 0; i < 3; i++ {
		order := &models.Order{
			CustomerID: fx.customer.ID,
			PlacedBy:   fx.employee.ID,
		}
		require.NoError(t, repo.PlaceOrder(order, []OrderLine{{ProductID: fx.products[0].ID, Quantity: 1}}))
	}

	orders, err := repo.ListByCustomer(fx.customer.ID)
	require.NoError(t, err)
	assert.Len(t, orders, 3)
}
