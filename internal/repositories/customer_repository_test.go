package repositories

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice/internal/models"
)

func newTestCustomer() *models.Customer {
	city := "Berlin"
	return &models.Customer{
		Name:  "Acme GmbH",
		Email: uuid.NewString() + "@example.com",
		City:  &city,
	}
}

func TestCustomerRepository_CreateAndGetByID(t *testing.T) {
	repo := NewCustomerRepository(testPool)

	customer := newTestCustomer()
	err := repo.Create(customer)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, customer.ID)
	assert.False(t, customer.CreatedAt.IsZero())

	found, err := repo.GetByID(customer.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, customer.Email, found.Email)
	assert.Equal(t, "Acme GmbH", found.Name)
	require.NotNil(t, found.City)
	assert.Equal(t, "Berlin", *found.City)
}

func TestCustomerRepository_GetByID_NotFound(t *testing.T) {
	repo := NewCustomerRepository(testPool)

	found, err := repo.GetByID(uuid.New())

	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestCustomerRepository_GetByEmail(t *testing.T) {
	repo := NewCustomerRepository(testPool)

	customer := newTestCustomer()
	require.NoError(t, repo.Create(customer))

	found, err := repo.GetByEmail(customer.Email)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, customer.ID, found.ID)

	missing, err := repo.GetByEmail("nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCustomerRepository_ListFiltersByCity(t *testing.T) {
	repo := NewCustomerRepository(testPool)

	city := "Testville-" + uuid.NewString()[:8]
	customer := newTestCustomer()
	customer.City = &city
	require.NoError(t, repo.Create(customer))

	other := newTestCustomer()
	require.NoError(t, repo.Create(other))

	customers, err := repo.List(city)
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, customer.ID, customers[0].ID)

	all, err := repo.List("")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(all), 2)
}

func TestCustomerRepository_Update(t *testing.T) {
	repo := NewCustomerRepository(testPool)

	customer := newTestCustomer()
	require.NoError(t, repo.Create(customer))

	customer.Name = "Renamed Inc"
	require.NoError(t, repo.Update(customer))

	found, err := repo.GetByID(customer.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Renamed Inc", found.Name)
}

func TestCustomerRepository_Update_NotFound(t *testing.T) {
	repo := NewCustomerRepository(testPool)

	customer := newTestCustomer()
	customer.Prepare()

	err := repo.Update(customer)
	assert.Error(t, err)
}

func TestCustomerRepository_Delete(t *testing.T) {
	repo := NewCustomerRepository(testPool)

	customer := newTestCustomer()
	require.NoError(t, repo.Create(customer))
	require.NoError(t, repo.Delete(customer.ID))

	found, err := repo.GetByID(customer.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	assert.Error(t, repo.Delete(customer.ID))
}

func TestCustomerRepository_Count(t *testing.T) {
	repo := NewCustomerRepository(testPool)

	before, err := repo.Count()
	require.NoError(t, err)

	require.NoError(t, repo.Create(newTestCustomer()))

	after, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, before+1, after)
}
