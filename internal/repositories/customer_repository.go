package repositories

import (
	"backoffice/internal/models"
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CustomerRepository struct {
	pool *pgxpool.Pool
}

func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{pool: pool}
}

func (r *CustomerRepository) Create(customer *models.Customer) error {
	ctx := context.Background()

	customer.Prepare()

	query := `
		INSERT INTO customers (id, name, email, phone, city)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`

	return r.pool.QueryRow(ctx, query,
		customer.ID,
		customer.Name,
		customer.Email,
		customer.Phone,
		customer.City,
	).Scan(&customer.CreatedAt)
}

func (r *CustomerRepository) GetByID(id uuid.UUID) (*models.Customer, error) {
	ctx := context.Background()

	query := `
		SELECT id, name, email, phone, city, created_at
		FROM customers WHERE id = $1
	`

	var customer models.Customer
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&customer.ID,
		&customer.Name,
		&customer.Email,
		&customer.Phone,
		&customer.City,
		&customer.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &customer, nil
}

func (r *CustomerRepository) GetByEmail(email string) (*models.Customer, error) {
	ctx := context.Background()

	query := `
		SELECT id, name, email, phone, city, created_at
		FROM customers WHERE email = $1
	`

	var customer models.Customer
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&customer.ID,
		&customer.Name,
		&customer.Email,
		&customer.Phone,
		&customer.City,
		&customer.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &customer, nil
}

// List returns customers ordered by creation time. An empty city matches
// everyone.
func (r *CustomerRepository) List(city string) ([]models.Customer, error) {
	ctx := context.Background()

	query := `
		SELECT id, name, email, phone, city, created_at
		FROM customers
		WHERE $1 = '' OR city = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, city)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []models.Customer
	for rows.Next() {
		var customer models.Customer
		err := rows.Scan(
			&customer.ID,
			&customer.Name,
			&customer.Email,
			&customer.Phone,
			&customer.City,
			&customer.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		customers = append(customers, customer)
	}

	return customers, rows.Err()
}

func (r *CustomerRepository) Update(customer *models.Customer) error {
	ctx := context.Background()

	customer.Prepare()

	query := `
		UPDATE customers SET
			name = $2, email = $3, phone = $4, city = $5
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query,
		customer.ID,
		customer.Name,
		customer.Email,
		customer.Phone,
		customer.City,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return errors.New("customer not found")
	}

	return nil
}

func (r *CustomerRepository) Delete(id uuid.UUID) error {
	ctx := context.Background()

	query := `DELETE FROM customers WHERE id = $1`
	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return errors.New("customer not found")
	}

	return nil
}

// Count returns the number of customers as a single scalar.
func (r *CustomerRepository) Count() (int64, error) {
	ctx := context.Background()

	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM customers`).Scan(&count)
	return count, err
}
