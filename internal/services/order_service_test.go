package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"backoffice/internal/repositories"
)

func TestValidateOrderLines(t *testing.T) {
	productA := uuid.New()
	productB := uuid.New()

	cases := []struct {
		name    string
		lines   []repositories.OrderLine
		wantErr bool
	}{
		{
			name:    "empty",
			lines:   nil,
			wantErr: true,
		},
		{
			name: "single valid line",
			lines: []repositories.OrderLine{
				{ProductID: productA, Quantity: 1},
			},
		},
		{
			name: "multiple valid lines",
			lines: []repositories.OrderLine{
				{ProductID: productA, Quantity: 2},
				{ProductID: productB, Quantity: 5},
			},
		},
		{
			name: "missing product id",
			lines: []repositories.OrderLine{
				{Quantity: 1},
			},
			wantErr: true,
		},
		{
			name: "zero quantity",
			lines: []repositories.OrderLine{
				{ProductID: productA, Quantity: 0},
			},
			wantErr: true,
		},
		{
			name: "negative quantity",
			lines: []repositories.OrderLine{
				{ProductID: productA, Quantity: -3},
			},
			wantErr: true,
		},
		{
			name: "duplicate product",
			lines: []repositories.OrderLine{
				{ProductID: productA, Quantity: 1},
				{ProductID: productA, Quantity: 2},
			},
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateOrderLines(tc.lines)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOrderService_PlaceOrder_RejectsBadIDs(t *testing.T) {
	svc := NewOrderService(nil, nil, nil, nil)

	_, err := svc.PlaceOrder(t.Context(), PlaceOrderRequest{
		CustomerID: "not-a-uuid",
		PlacedBy:   uuid.NewString(),
	})
	assert.Error(t, err)

	_, err = svc.PlaceOrder(t.Context(), PlaceOrderRequest{
		CustomerID: uuid.NewString(),
		PlacedBy:   "not-a-uuid",
	})
	assert.Error(t, err)
}
