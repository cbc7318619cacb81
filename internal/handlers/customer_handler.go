package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"backoffice/internal/responses"
	"backoffice/internal/services"
	"backoffice/internal/utils"
)

type CustomerHandler struct {
	directoryService *services.DirectoryService
}

func NewCustomerHandler(directoryService *services.DirectoryService) *CustomerHandler {
	return &CustomerHandler{
		directoryService: directoryService,
	}
}

// CreateCustomer handles POST /api/v1/customers
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req services.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	customer, err := h.directoryService.CreateCustomer(req)
	if err != nil {
		responses.Fail(c, http.StatusUnprocessableEntity, err, "Failed to create customer")
		return
	}

	responses.Success(c, http.StatusCreated, customer, "Customer created successfully")
}

// GetCustomer handles GET /api/v1/customers/:id
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid customer ID")
		return
	}

	customer, err := h.directoryService.GetCustomer(id)
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to retrieve customer")
		return
	}
	if customer == nil {
		responses.NotFound(c, "Customer not found")
		return
	}

	responses.Success(c, http.StatusOK, customer, "Customer retrieved successfully")
}

// ListCustomers handles GET /api/v1/customers?city=
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	customers, err := h.directoryService.ListCustomers(c.Query("city"))
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to retrieve customers")
		return
	}

	responses.Success(c, http.StatusOK, customers, "Customers retrieved successfully")
}

// UpdateCustomer handles PUT /api/v1/customers/:id
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid customer ID")
		return
	}

	customer, err := h.directoryService.GetCustomer(id)
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to retrieve customer")
		return
	}
	if customer == nil {
		responses.NotFound(c, "Customer not found")
		return
	}

	var req services.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	customer.Name = req.Name
	customer.Email = req.Email
	customer.Phone = req.Phone
	customer.City = req.City

	if err := h.directoryService.UpdateCustomer(customer); err != nil {
		responses.Fail(c, http.StatusUnprocessableEntity, err, "Failed to update customer")
		return
	}

	responses.Success(c, http.StatusOK, customer, "Customer updated successfully")
}

// DeleteCustomer handles DELETE /api/v1/customers/:id
func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid customer ID")
		return
	}

	if err := h.directoryService.DeleteCustomer(id); err != nil {
		responses.Fail(c, http.StatusNotFound, err, "Failed to delete customer")
		return
	}

	responses.Success(c, http.StatusOK, nil, "Customer deleted successfully")
}

// CountCustomers handles GET /api/v1/customers/count
func (h *CustomerHandler) CountCustomers(c *gin.Context) {
	count, err := h.directoryService.CountCustomers()
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to count customers")
		return
	}

	responses.Success(c, http.StatusOK, gin.H{"count": count}, "Customer count retrieved successfully")
}
