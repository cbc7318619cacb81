package routes

import (
	"github.com/gin-gonic/gin"

	"backoffice/internal/handlers"
)

type CustomerRoutes struct {
	handler        *handlers.CustomerHandler
	orderHandler   *handlers.OrderHandler
	projectHandler *handlers.ProjectHandler
}

func NewCustomerRoutes(handler *handlers.CustomerHandler, orderHandler *handlers.OrderHandler, projectHandler *handlers.ProjectHandler) *CustomerRoutes {
	return &CustomerRoutes{
		handler:        handler,
		orderHandler:   orderHandler,
		projectHandler: projectHandler,
	}
}

func (r *CustomerRoutes) RegisterRoutes(router *gin.RouterGroup) {
	customers := router.Group("/customers")
	{
		customers.POST("", r.handler.CreateCustomer)
		customers.GET("", r.handler.ListCustomers)
		customers.GET("/count", r.handler.CountCustomers)
		customers.GET("/:id", r.handler.GetCustomer)
		customers.PUT("/:id", r.handler.UpdateCustomer)
		customers.DELETE("/:id", r.handler.DeleteCustomer)
		customers.GET("/:id/orders", r.orderHandler.ListOrdersByCustomer)
		customers.GET("/:id/projects", r.projectHandler.ListProjectsByCustomer)
	}
}
