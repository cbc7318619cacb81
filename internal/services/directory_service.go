package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"backoffice/internal/models"
	"backoffice/internal/repositories"
	"backoffice/internal/utils"
)

// DirectoryService owns customers and employees.
type DirectoryService struct {
	customerRepo *repositories.CustomerRepository
	employeeRepo *repositories.EmployeeRepository
}

func NewDirectoryService(customerRepo *repositories.CustomerRepository, employeeRepo *repositories.EmployeeRepository) *DirectoryService {
	return &DirectoryService{
		customerRepo: customerRepo,
		employeeRepo: employeeRepo,
	}
}

type CreateCustomerRequest struct {
	Name  string  `json:"name" binding:"required"`
	Email string  `json:"email" binding:"required"`
	Phone *string `json:"phone,omitempty"`
	City  *string `json:"city,omitempty"`
}

func (s *DirectoryService) CreateCustomer(req CreateCustomerRequest) (*models.Customer, error) {
	if !utils.ValidEmail(req.Email) {
		return nil, fmt.Errorf("invalid email address: %s", req.Email)
	}

	existing, err := s.customerRepo.GetByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("customer with email %s already exists", req.Email)
	}

	customer := &models.Customer{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		City:  req.City,
	}

	if err := s.customerRepo.Create(customer); err != nil {
		return nil, fmt.Errorf("failed to save customer: %w", err)
	}

	return customer, nil
}

func (s *DirectoryService) GetCustomer(id uuid.UUID) (*models.Customer, error) {
	return s.customerRepo.GetByID(id)
}

func (s *DirectoryService) ListCustomers(city string) ([]models.Customer, error) {
	return s.customerRepo.List(city)
}

func (s *DirectoryService) UpdateCustomer(customer *models.Customer) error {
	if !utils.ValidEmail(customer.Email) {
		return fmt.Errorf("invalid email address: %s", customer.Email)
	}
	return s.customerRepo.Update(customer)
}

func (s *DirectoryService) DeleteCustomer(id uuid.UUID) error {
	return s.customerRepo.Delete(id)
}

func (s *DirectoryService) CountCustomers() (int64, error) {
	return s.customerRepo.Count()
}

type HireEmployeeRequest struct {
	FirstName  string `json:"first_name" binding:"required"`
	LastName   string `json:"last_name" binding:"required"`
	Email      string `json:"email" binding:"required"`
	Department string `json:"department" binding:"required"`
	Salary     string `json:"salary" binding:"required"`
	HireDate   string `json:"hire_date,omitempty"` // YYYY-MM-DD, defaults to today
}

func (s *DirectoryService) buildEmployee(req HireEmployeeRequest) (*models.Employee, error) {
	if !utils.ValidEmail(req.Email) {
		return nil, fmt.Errorf("invalid email address: %s", req.Email)
	}

	salary, err := decimal.NewFromString(req.Salary)
	if err != nil {
		return nil, fmt.Errorf("invalid salary %q: %w", req.Salary, err)
	}
	if salary.IsNegative() {
		return nil, fmt.Errorf("salary cannot be negative")
	}

	employee := &models.Employee{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Department: req.Department,
		Salary:     salary,
		Active:     true,
	}

	if req.HireDate != "" {
		hireDate, err := time.Parse("2006-01-02", req.HireDate)
		if err != nil {
			return nil, fmt.Errorf("invalid hire_date %q: %w", req.HireDate, err)
		}
		employee.HireDate = hireDate
	}

	return employee, nil
}

func (s *DirectoryService) HireEmployee(req HireEmployeeRequest) (*models.Employee, error) {
	employee, err := s.buildEmployee(req)
	if err != nil {
		return nil, err
	}

	if err := s.employeeRepo.Create(employee); err != nil {
		return nil, fmt.Errorf("failed to save employee: %w", err)
	}

	return employee, nil
}

type BulkHireRequest struct {
	Employees []HireEmployeeRequest `json:"employees" binding:"required"`
}

// BulkHire validates the whole batch up front and loads it in one COPY.
func (s *DirectoryService) BulkHire(req BulkHireRequest) (int64, error) {
	if len(req.Employees) == 0 {
		return 0, fmt.Errorf("hire batch cannot be empty")
	}

	employees := make([]models.Employee, 0, len(req.Employees))
	for i, item := range req.Employees {
		employee, err := s.buildEmployee(item)
		if err != nil {
			return 0, fmt.Errorf("batch item %d: %w", i, err)
		}
		employees = append(employees, *employee)
	}

	count, err := s.employeeRepo.BulkHire(employees)
	if err != nil {
		return 0, fmt.Errorf("bulk hire failed: %w", err)
	}

	return count, nil
}

func (s *DirectoryService) GetEmployee(id uuid.UUID) (*models.Employee, error) {
	return s.employeeRepo.GetByID(id)
}

func (s *DirectoryService) ListEmployees(department string) ([]models.Employee, error) {
	return s.employeeRepo.ListByDepartment(department)
}

func (s *DirectoryService) DeactivateEmployee(id uuid.UUID) error {
	return s.employeeRepo.Deactivate(id)
}
