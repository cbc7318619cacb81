package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"backoffice/internal/handlers"
	"backoffice/internal/middlewares"
)

func RegisterRoutes(
	router *gin.Engine,
	apiKey string,
	customerHandler *handlers.CustomerHandler,
	employeeHandler *handlers.EmployeeHandler,
	productHandler *handlers.ProductHandler,
	orderHandler *handlers.OrderHandler,
	projectHandler *handlers.ProjectHandler,
) {
	api := router.Group("/api/v1")
	api.Use(middlewares.RequireAPIKey(apiKey))

	customerRoutes := NewCustomerRoutes(customerHandler, orderHandler, projectHandler)
	customerRoutes.RegisterRoutes(api)

	employeeRoutes := NewEmployeeRoutes(employeeHandler)
	employeeRoutes.RegisterRoutes(api)

	productRoutes := NewProductRoutes(productHandler)
	productRoutes.RegisterRoutes(api)

	orderRoutes := NewOrderRoutes(orderHandler)
	orderRoutes.RegisterRoutes(api)

	projectRoutes := NewProjectRoutes(projectHandler)
	projectRoutes.RegisterRoutes(api)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
}
