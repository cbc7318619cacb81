package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"backoffice/internal/responses"
	"backoffice/internal/services"
	"backoffice/internal/utils"
)

type OrderHandler struct {
	orderService *services.OrderService
}

func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// PlaceOrder handles POST /api/v1/orders
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var req services.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	order, err := h.orderService.PlaceOrder(c.Request.Context(), req)
	if err != nil {
		responses.Fail(c, http.StatusUnprocessableEntity, err, "Failed to place order")
		return
	}

	responses.Success(c, http.StatusCreated, order, "Order placed successfully")
}

// GetOrder handles GET /api/v1/orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid order ID")
		return
	}

	order, err := h.orderService.GetOrder(id)
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to retrieve order")
		return
	}
	if order == nil {
		responses.NotFound(c, "Order not found")
		return
	}

	responses.Success(c, http.StatusOK, order, "Order retrieved successfully")
}

// ListOrdersByCustomer handles GET /api/v1/customers/:id/orders
func (h *OrderHandler) ListOrdersByCustomer(c *gin.Context) {
	customerID, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid customer ID")
		return
	}

	orders, err := h.orderService.ListOrdersByCustomer(customerID)
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to retrieve orders")
		return
	}

	responses.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:id/status
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid order ID")
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	if err := h.orderService.UpdateOrderStatus(id, req.Status); err != nil {
		responses.Fail(c, http.StatusUnprocessableEntity, err, "Failed to update order status")
		return
	}

	responses.Success(c, http.StatusOK, nil, "Order status updated successfully")
}
