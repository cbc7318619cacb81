package routes

import (
	"github.com/gin-gonic/gin"

	"backoffice/internal/handlers"
)

type EmployeeRoutes struct {
	handler *handlers.EmployeeHandler
}

func NewEmployeeRoutes(handler *handlers.EmployeeHandler) *EmployeeRoutes {
	return &EmployeeRoutes{handler: handler}
}

func (r *EmployeeRoutes) RegisterRoutes(router *gin.RouterGroup) {
	employees := router.Group("/employees")
	{
		employees.POST("", r.handler.HireEmployee)
		employees.POST("/bulk", r.handler.BulkHire)
		employees.GET("", r.handler.ListEmployees)
		employees.GET("/:id", r.handler.GetEmployee)
		employees.DELETE("/:id", r.handler.DeactivateEmployee)
	}
}
