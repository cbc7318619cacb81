package services

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"backoffice/internal/messaging"
	"backoffice/internal/models"
	"backoffice/internal/repositories"
)

type OrderService struct {
	orderRepo    *repositories.OrderRepository
	customerRepo *repositories.CustomerRepository
	employeeRepo *repositories.EmployeeRepository
	producer     *messaging.OrderEventProducer
}

func NewOrderService(
	orderRepo *repositories.OrderRepository,
	customerRepo *repositories.CustomerRepository,
	employeeRepo *repositories.EmployeeRepository,
	producer *messaging.OrderEventProducer,
) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		employeeRepo: employeeRepo,
		producer:     producer,
	}
}

type PlaceOrderRequest struct {
	CustomerID string                   `json:"customer_id" binding:"required"`
	PlacedBy   string                   `json:"placed_by" binding:"required"`
	Lines      []repositories.OrderLine `json:"lines" binding:"required"`
	// When true the order goes through the place_order stored function
	// instead of the client-side transaction.
	UseProcedure bool `json:"use_procedure"`
}

func ValidateOrderLines(lines []repositories.OrderLine) error {
	if len(lines) == 0 {
		return fmt.Errorf("order must contain at least one line")
	}

	seen := make(map[uuid.UUID]bool, len(lines))
	for i, line := range lines {
		if line.ProductID == uuid.Nil {
			return fmt.Errorf("line %d: product_id is required", i)
		}
		if line.Quantity <= 0 {
			return fmt.Errorf("line %d: quantity must be positive", i)
		}
		if seen[line.ProductID] {
			return fmt.Errorf("line %d: duplicate product %s", i, line.ProductID)
		}
		seen[line.ProductID] = true
	}

	return nil
}

func (s *OrderService) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*models.Order, error) {
	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("invalid customer_id: %w", err)
	}
	employeeID, err := uuid.Parse(req.PlacedBy)
	if err != nil {
		return nil, fmt.Errorf("invalid placed_by: %w", err)
	}

	if err := ValidateOrderLines(req.Lines); err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.GetByID(customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("customer not found")
	}

	employee, err := s.employeeRepo.GetByID(employeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil || !employee.Active {
		return nil, fmt.Errorf("employee not found or inactive")
	}

	var order *models.Order
	if req.UseProcedure {
		orderID, err := s.orderRepo.PlaceOrderProc(customerID, employeeID, req.Lines)
		if err != nil {
			return nil, fmt.Errorf("stored procedure order failed: %w", err)
		}
		order, err = s.orderRepo.GetByID(orderID)
		if err != nil {
			return nil, err
		}
	} else {
		order = &models.Order{
			CustomerID: customerID,
			PlacedBy:   employeeID,
		}
		if err := s.orderRepo.PlaceOrder(order, req.Lines); err != nil {
			return nil, err
		}
	}

	event := messaging.OrderPlacedEvent{
		OrderID:    order.ID.String(),
		CustomerID: order.CustomerID.String(),
		Total:      order.Total,
		LineCount:  len(order.Items),
		PlacedAt:   order.PlacedAt,
	}
	if err := s.producer.PublishOrderPlaced(ctx, event); err != nil {
		// The order is committed; a broker outage must not undo it
		log.Printf("failed to publish order event for %s: %v", order.ID, err)
	}

	return order, nil
}

func (s *OrderService) GetOrder(id uuid.UUID) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

func (s *OrderService) ListOrdersByCustomer(customerID uuid.UUID) ([]models.Order, error) {
	return s.orderRepo.ListByCustomer(customerID)
}

func (s *OrderService) UpdateOrderStatus(id uuid.UUID, status string) error {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return err
	}
	if order == nil {
		return fmt.Errorf("order not found")
	}

	if !models.ValidStatusTransition(order.Status, status) {
		return fmt.Errorf("cannot move order from %q to %q", order.Status, status)
	}

	return s.orderRepo.UpdateStatus(id, status)
}
