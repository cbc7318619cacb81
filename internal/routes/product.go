package routes

import (
	"github.com/gin-gonic/gin"

	"backoffice/internal/handlers"
)

type ProductRoutes struct {
	handler *handlers.ProductHandler
}

func NewProductRoutes(handler *handlers.ProductHandler) *ProductRoutes {
	return &ProductRoutes{handler: handler}
}

func (r *ProductRoutes) RegisterRoutes(router *gin.RouterGroup) {
	products := router.Group("/products")
	{
		products.POST("", r.handler.CreateProduct)
		products.POST("/bulk", r.handler.BulkImport)
		products.GET("", r.handler.ListProducts)
		products.GET("/sku/:sku", r.handler.GetProductBySKU)
		products.PATCH("/:id/stock", r.handler.AdjustStock)
		products.DELETE("/:id", r.handler.DiscontinueProduct)
	}
}
