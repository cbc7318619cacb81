package repositories

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"backoffice/internal/models"
)

// ProjectRepository persists projects through a GORM session. Everything
// else in this package speaks raw SQL; projects exercise the ORM path.
type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(project *models.Project) error {
	if project.Status == "" {
		project.Status = "active"
	}
	return r.db.Create(project).Error
}

func (r *ProjectRepository) GetByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepository) ListByCustomer(customerID uuid.UUID) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&projects).Error
	return projects, err
}

func (r *ProjectRepository) Update(project *models.Project) error {
	result := r.db.Model(&models.Project{}).
		Where("id = ?", project.ID).
		Updates(map[string]interface{}{
			"name":       project.Name,
			"budget":     project.Budget,
			"status":     project.Status,
			"start_date": project.StartDate,
			"end_date":   project.EndDate,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("project not found")
	}
	return nil
}

func (r *ProjectRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Project{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("project not found")
	}
	return nil
}

// Assign adds an employee to a project. Re-assigning updates the role
// instead of failing on the composite key.
func (r *ProjectRepository) Assign(projectID, employeeID uuid.UUID, role string) error {
	assignment := models.ProjectAssignment{
		ProjectID:  projectID,
		EmployeeID: employeeID,
		Role:       role,
	}

	var existing models.ProjectAssignment
	err := r.db.
		Where("project_id = ? AND employee_id = ?", projectID, employeeID).
		First(&existing).Error
	if err == nil {
		return r.db.Model(&existing).
			Where("project_id = ? AND employee_id = ?", projectID, employeeID).
			Update("role", role).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return r.db.Create(&assignment).Error
}

func (r *ProjectRepository) Assignments(projectID uuid.UUID) ([]models.ProjectAssignment, error) {
	var assignments []models.ProjectAssignment
	err := r.db.
		Where("project_id = ?", projectID).
		Order("assigned_at").
		Find(&assignments).Error
	return assignments, err
}
