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

var projectStatuses = []string{"active", "on_hold", "completed", "cancelled"}

type ProjectService struct {
	projectRepo  *repositories.ProjectRepository
	customerRepo *repositories.CustomerRepository
	employeeRepo *repositories.EmployeeRepository
}

func NewProjectService(
	projectRepo *repositories.ProjectRepository,
	customerRepo *repositories.CustomerRepository,
	employeeRepo *repositories.EmployeeRepository,
) *ProjectService {
	return &ProjectService{
		projectRepo:  projectRepo,
		customerRepo: customerRepo,
		employeeRepo: employeeRepo,
	}
}

type CreateProjectRequest struct {
	Name       string `json:"name" binding:"required"`
	CustomerID string `json:"customer_id" binding:"required"`
	Budget     string `json:"budget" binding:"required"`
	StartDate  string `json:"start_date,omitempty"` // YYYY-MM-DD
}

func (s *ProjectService) CreateProject(req CreateProjectRequest) (*models.Project, error) {
	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("invalid customer_id: %w", err)
	}

	customer, err := s.customerRepo.GetByID(customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("customer not found")
	}

	budget, err := decimal.NewFromString(req.Budget)
	if err != nil {
		return nil, fmt.Errorf("invalid budget %q: %w", req.Budget, err)
	}
	if budget.IsNegative() {
		return nil, fmt.Errorf("budget cannot be negative")
	}

	project := &models.Project{
		Name:       req.Name,
		CustomerID: customerID,
		Budget:     budget,
		Status:     "active",
		StartDate:  time.Now(),
	}

	if req.StartDate != "" {
		startDate, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			return nil, fmt.Errorf("invalid start_date %q: %w", req.StartDate, err)
		}
		project.StartDate = startDate
	}

	if err := s.projectRepo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to save project: %w", err)
	}

	return project, nil
}

func (s *ProjectService) GetProject(id uuid.UUID) (*models.Project, error) {
	return s.projectRepo.GetByID(id)
}

func (s *ProjectService) ListProjectsByCustomer(customerID uuid.UUID) ([]models.Project, error) {
	return s.projectRepo.ListByCustomer(customerID)
}

func (s *ProjectService) UpdateProjectStatus(id uuid.UUID, status string) (*models.Project, error) {
	if !utils.Contains(projectStatuses, status) {
		return nil, fmt.Errorf("invalid project status %q", status)
	}

	project, err := s.projectRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, fmt.Errorf("project not found")
	}

	project.Status = status
	if status == "completed" || status == "cancelled" {
		now := time.Now()
		project.EndDate = &now
	}

	if err := s.projectRepo.Update(project); err != nil {
		return nil, err
	}

	return project, nil
}

func (s *ProjectService) DeleteProject(id uuid.UUID) error {
	return s.projectRepo.Delete(id)
}

type AssignEmployeeRequest struct {
	EmployeeID string `json:"employee_id" binding:"required"`
	Role       string `json:"role" binding:"required"`
}

func (s *ProjectService) AssignEmployee(projectID uuid.UUID, req AssignEmployeeRequest) error {
	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return fmt.Errorf("invalid employee_id: %w", err)
	}

	project, err := s.projectRepo.GetByID(projectID)
	if err != nil {
		return err
	}
	if project == nil {
		return fmt.Errorf("project not found")
	}

	employee, err := s.employeeRepo.GetByID(employeeID)
	if err != nil {
		return err
	}
	if employee == nil || !employee.Active {
		return fmt.Errorf("employee not found or inactive")
	}

	return s.projectRepo.Assign(projectID, employeeID, req.Role)
}

func (s *ProjectService) ProjectAssignments(projectID uuid.UUID) ([]models.ProjectAssignment, error) {
	return s.projectRepo.Assignments(projectID)
}
