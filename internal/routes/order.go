package routes

import (
	"github.com/gin-gonic/gin"

	"backoffice/internal/handlers"
)

type OrderRoutes struct {
	handler *handlers.OrderHandler
}

func NewOrderRoutes(handler *handlers.OrderHandler) *OrderRoutes {
	return &OrderRoutes{handler: handler}
}

func (r *OrderRoutes) RegisterRoutes(router *gin.RouterGroup) {
	orders := router.Group("/orders")
	{
		orders.POST("", r.handler.PlaceOrder)
		orders.GET("/:id", r.handler.GetOrder)
		orders.PATCH("/:id/status", r.handler.UpdateOrderStatus)
	}
}
