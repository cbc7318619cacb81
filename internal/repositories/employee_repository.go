package repositories

import (
	"backoffice/internal/models"
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EmployeeRepository struct {
	pool *pgxpool.Pool
}

func NewEmployeeRepository(pool *pgxpool.Pool) *EmployeeRepository {
	return &EmployeeRepository{pool: pool}
}

func (r *EmployeeRepository) Create(employee *models.Employee) error {
	ctx := context.Background()

	employee.Prepare()

	query := `
		INSERT INTO employees (id, first_name, last_name, email, department, salary, hire_date, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE)
	`

	_, err := r.pool.Exec(ctx, query,
		employee.ID,
		employee.FirstName,
		employee.LastName,
		employee.Email,
		employee.Department,
		employee.Salary,
		employee.HireDate,
	)

	return err
}

func (r *EmployeeRepository) GetByID(id uuid.UUID) (*models.Employee, error) {
	ctx := context.Background()

	query := `
		SELECT id, first_name, last_name, email, department, salary, hire_date, active
		FROM employees WHERE id = $1
	`

	var employee models.Employee
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&employee.ID,
		&employee.FirstName,
		&employee.LastName,
		&employee.Email,
		&employee.Department,
		&employee.Salary,
		&employee.HireDate,
		&employee.Active,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &employee, nil
}

// ListByDepartment returns active employees. An empty department matches
// everyone.
func (r *EmployeeRepository) ListByDepartment(department string) ([]models.Employee, error) {
	ctx := context.Background()

	query := `
		SELECT id, first_name, last_name, email, department, salary, hire_date, active
		FROM employees
		WHERE active = TRUE AND ($1 = '' OR department = $1)
		ORDER BY last_name, first_name
	`

	rows, err := r.pool.Query(ctx, query, department)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []models.Employee
	for rows.Next() {
		var employee models.Employee
		err := rows.Scan(
			&employee.ID,
			&employee.FirstName,
			&employee.LastName,
			&employee.Email,
			&employee.Department,
			&employee.Salary,
			&employee.HireDate,
			&employee.Active,
		)
		if err != nil {
			return nil, err
		}
		employees = append(employees, employee)
	}

	return employees, rows.Err()
}

func (r *EmployeeRepository) Deactivate(id uuid.UUID) error {
	ctx := context.Background()

	query := `UPDATE employees SET active = FALSE WHERE id = $1`
	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return errors.New("employee not found")
	}

	return nil
}

// BulkHire inserts a batch of employees in a single COPY operation.
// The copy is all-or-nothing: a failure on any row retains none of them.
func (r *EmployeeRepository) BulkHire(employees []models.Employee) (int64, error) {
	ctx := context.Background()

	rows := make([][]interface{}, 0, len(employees))
	for i := range employees {
		employees[i].Prepare()
		rows = append(rows, []interface{}{
			employees[i].ID,
			employees[i].FirstName,
			employees[i].LastName,
			employees[i].Email,
			employees[i].Department,
			employees[i].Salary,
			employees[i].HireDate,
			true,
		})
	}

	return r.pool.CopyFrom(
		ctx,
		pgx.Identifier{"employees"},
		[]string{"id", "first_name", "last_name", "email", "department", "salary", "hire_date", "active"},
		pgx.CopyFromRows(rows),
	)
}
