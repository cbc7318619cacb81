package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestValidStatusTransition(t *testing.T) {
	allowed := [][2]string{
		{OrderStatusPending, OrderStatusShipped},
		{OrderStatusPending, OrderStatusCancelled},
		{OrderStatusShipped, OrderStatusCompleted},
	}
	for _, tr := range allowed {
		assert.True(t, ValidStatusTransition(tr[0], tr[1]), "%s -> %s", tr[0], tr[1])
	}

	forbidden := [][2]string{
		{OrderStatusPending, OrderStatusCompleted},
		{OrderStatusShipped, OrderStatusCancelled},
		{OrderStatusShipped, OrderStatusPending},
		{OrderStatusCompleted, OrderStatusShipped},
		{OrderStatusCancelled, OrderStatusPending},
		{"bogus", OrderStatusShipped},
	}
	for _, tr := range forbidden {
		assert.False(t, ValidStatusTransition(tr[0], tr[1]), "%s -> %s", tr[0], tr[1])
	}
}

func TestOrderPrepare(t *testing.T) {
	var order Order
	order.Prepare()

	assert.NotEqual(t, uuid.Nil, order.ID)
	assert.Equal(t, OrderStatusPending, order.Status)
	assert.False(t, order.PlacedAt.IsZero())
}

func TestCustomerPrepare(t *testing.T) {
	customer := Customer{
		Name:  "  Acme <script> ",
		Email: " Sales@Example.COM ",
	}
	customer.Prepare()

	assert.NotEqual(t, uuid.Nil, customer.ID)
	assert.Equal(t, "sales@example.com", customer.Email)
	assert.NotContains(t, customer.Name, "<")
}

func TestProductPrepare(t *testing.T) {
	product := Product{SKU: " sku-42 ", Name: " Widget "}
	product.Prepare()

	assert.Equal(t, "SKU-42", product.SKU)
	assert.Equal(t, "Widget", product.Name)
}
