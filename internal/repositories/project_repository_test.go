package repositories

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice/internal/models"
)

func createProjectFixture(t *testing.T) (*ProjectRepository, *models.Project, orderFixture) {
	t.Helper()

	fx := setupOrderFixture(t)
	repo := NewProjectRepository(testORM)

	project := &models.Project{
		Name:       "Website relaunch",
		CustomerID: fx.customer.ID,
		Budget:     decimal.RequireFromString("15000.00"),
	}
	require.NoError(t, repo.Create(project))

	return repo, project, fx
}

func TestProjectRepository_CreateAndGetByID(t *testing.T) {
	repo, project, _ := createProjectFixture(t)

	assert.NotEqual(t, uuid.Nil, project.ID)
	assert.Equal(t, "active", project.Status)

	found, err := repo.GetByID(project.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Website relaunch", found.Name)
	assert.True(t, found.Budget.Equal(decimal.RequireFromString("15000.00")))
}

func TestProjectRepository_GetByID_NotFound(t *testing.T) {
	repo := NewProjectRepository(testORM)

	found, err := repo.GetByID(uuid.New())

	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestProjectRepository_ListByCustomer(t *testing.T) {
	repo, project, fx := createProjectFixture(t)

	second := &models.Project{
		Name:       "Mobile app",
		CustomerID: fx.customer.ID,
		Budget:     decimal.RequireFromString("8000.00"),
		Status:     "active",
	}
	require.NoError(t, repo.Create(second))

	projects, err := repo.ListByCustomer(fx.customer.ID)
	require.NoError(t, err)
	require.Len(t, projects, 2)

	ids := []uuid.UUID{projects[0].ID, projects[1].ID}
	assert.Contains(t, ids, project.ID)
	assert.Contains(t, ids, second.ID)
}

func TestProjectRepository_Update(t *testing.T) {
	repo, project, _ := createProjectFixture(t)

	project.Status = "on_hold"
	project.Budget = decimal.RequireFromString("20000.00")
	require.NoError(t, repo.Update(project))

	found, err := repo.GetByID(project.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "on_hold", found.Status)
	assert.True(t, found.Budget.Equal(decimal.RequireFromString("20000.00")))
}

func TestProjectRepository_Delete(t *testing.T) {
	repo, project, _ := createProjectFixture(t)

	require.NoError(t, repo.Delete(project.ID))

	found, err := repo.GetByID(project.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	assert.Error(t, repo.Delete(project.ID))
}

func TestProjectRepository_AssignAndList(t *testing.T) {
	repo, project, fx := createProjectFixture(t)

	require.NoError(t, repo.Assign(project.ID, fx.employee.ID, "lead"))

	assignments, err := repo.Assignments(project.ID)
	require.NoError(t, err)
	require.Len(t, assignments, 1)
	assert.Equal(t, "lead", assignments[0].Role)

	// Re-assigning the same employee updates the role in place
	require.NoError(t, repo.Assign(project.ID, fx.employee.ID, "reviewer"))

	assignments, err = repo.Assignments(project.ID)
	require.NoError(t, err)
	require.Len(t, assignments, 1)
	assert.Equal(t, "reviewer", assignments[0].Role)
}
