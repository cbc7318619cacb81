package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"backoffice/internal/responses"
	"backoffice/internal/services"
	"backoffice/internal/utils"
)

type ProductHandler struct {
	catalogService *services.CatalogService
}

func NewProductHandler(catalogService *services.CatalogService) *ProductHandler {
	return &ProductHandler{
		catalogService: catalogService,
	}
}

// CreateProduct handles POST /api/v1/products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req services.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	product, err := h.catalogService.CreateProduct(req)
	if err != nil {
		responses.Fail(c, http.StatusUnprocessableEntity, err, "Failed to create product")
		return
	}

	responses.Success(c, http.StatusCreated, product, "Product created successfully")
}

// BulkImport handles POST /api/v1/products/bulk
func (h *ProductHandler) BulkImport(c *gin.Context) {
	var req services.BulkImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	count, err := h.catalogService.BulkImportProducts(req)
	if err != nil {
		responses.Fail(c, http.StatusUnprocessableEntity, err, "Bulk import failed")
		return
	}

	responses.Success(c, http.StatusCreated, gin.H{"imported": count}, "Products imported successfully")
}

// GetProductBySKU handles GET /api/v1/products/:sku
func (h *ProductHandler) GetProductBySKU(c *gin.Context) {
	product, err := h.catalogService.GetProductBySKU(c.Request.Context(), c.Param("sku"))
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to retrieve product")
		return
	}
	if product == nil {
		responses.NotFound(c, "Product not found")
		return
	}

	responses.Success(c, http.StatusOK, product, "Product retrieved successfully")
}

// ListProducts handles GET /api/v1/products?include_discontinued=
func (h *ProductHandler) ListProducts(c *gin.Context) {
	includeDiscontinued, _ := strconv.ParseBool(c.Query("include_discontinued"))

	products, err := h.catalogService.ListProducts(includeDiscontinued)
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to retrieve products")
		return
	}

	responses.Success(c, http.StatusOK, products, "Products retrieved successfully")
}

type adjustStockRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// AdjustStock handles PATCH /api/v1/products/:id/stock
func (h *ProductHandler) AdjustStock(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid product ID")
		return
	}

	var req adjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	product, err := h.catalogService.AdjustStock(c.Request.Context(), id, req.Delta)
	if err != nil {
		responses.Fail(c, http.StatusUnprocessableEntity, err, "Failed to adjust stock")
		return
	}

	responses.Success(c, http.StatusOK, product, "Stock adjusted successfully")
}

// DiscontinueProduct handles DELETE /api/v1/products/:id
func (h *ProductHandler) DiscontinueProduct(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid product ID")
		return
	}

	if err := h.catalogService.DiscontinueProduct(c.Request.Context(), id); err != nil {
		responses.Fail(c, http.StatusNotFound, err, "Failed to discontinue product")
		return
	}

	responses.Success(c, http.StatusOK, nil, "Product discontinued successfully")
}
