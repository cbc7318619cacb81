package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"backoffice/internal/responses"
	"backoffice/internal/services"
	"backoffice/internal/utils"
)

type EmployeeHandler struct {
	directoryService *services.DirectoryService
}

func NewEmployeeHandler(directoryService *services.DirectoryService) *EmployeeHandler {
	return &EmployeeHandler{
		directoryService: directoryService,
	}
}

// HireEmployee handles POST /api/v1/employees
func (h *EmployeeHandler) HireEmployee(c *gin.Context) {
	var req services.HireEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	employee, err := h.directoryService.HireEmployee(req)
	if err != nil {
		responses.Fail(c, http.StatusUnprocessableEntity, err, "Failed to hire employee")
		return
	}

	responses.Success(c, http.StatusCreated, employee, "Employee hired successfully")
}

// BulkHire handles POST /api/v1/employees/bulk
func (h *EmployeeHandler) BulkHire(c *gin.Context) {
	var req services.BulkHireRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	count, err := h.directoryService.BulkHire(req)
	if err != nil {
		responses.Fail(c, http.StatusUnprocessableEntity, err, "Bulk hire failed")
		return
	}

	responses.Success(c, http.StatusCreated, gin.H{"hired": count}, "Employees hired successfully")
}

// GetEmployee handles GET /api/v1/employees/:id
func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid employee ID")
		return
	}

	employee, err := h.directoryService.GetEmployee(id)
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to retrieve employee")
		return
	}
	if employee == nil {
		responses.NotFound(c, "Employee not found")
		return
	}

	responses.Success(c, http.StatusOK, employee, "Employee retrieved successfully")
}

// ListEmployees handles GET /api/v1/employees?department=
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	employees, err := h.directoryService.ListEmployees(c.Query("department"))
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to retrieve employees")
		return
	}

	responses.Success(c, http.StatusOK, employees, "Employees retrieved successfully")
}

// DeactivateEmployee handles DELETE /api/v1/employees/:id
func (h *EmployeeHandler) DeactivateEmployee(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid employee ID")
		return
	}

	if err := h.directoryService.DeactivateEmployee(id); err != nil {
		responses.Fail(c, http.StatusNotFound, err, "Failed to deactivate employee")
		return
	}

	responses.Success(c, http.StatusOK, nil, "Employee deactivated successfully")
}
