package repositories

import (
	"backoffice/internal/models"
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

func (r *ProductRepository) Create(product *models.Product) error {
	ctx := context.Background()

	product.Prepare()

	query := `
		INSERT INTO products (id, sku, name, description, unit_price, units_in_stock, discontinued)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE)
		RETURNING created_at
	`

	return r.pool.QueryRow(ctx, query,
		product.ID,
		product.SKU,
		product.Name,
		product.Description,
		product.UnitPrice,
		product.UnitsInStock,
	).Scan(&product.CreatedAt)
}

func (r *ProductRepository) GetByID(id uuid.UUID) (*models.Product, error) {
	ctx := context.Background()

	query := `
		SELECT id, sku, name, description, unit_price, units_in_stock, discontinued, created_at
		FROM products WHERE id = $1
	`

	var product models.Product
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&product.ID,
		&product.SKU,
		&product.Name,
		&product.Description,
		&product.UnitPrice,
		&product.UnitsInStock,
		&product.Discontinued,
		&product.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &product, nil
}

func (r *ProductRepository) GetBySKU(sku string) (*models.Product, error) {
	ctx := context.Background()

	query := `
		SELECT id, sku, name, description, unit_price, units_in_stock, discontinued, created_at
		FROM products WHERE sku = $1
	`

	var product models.Product
	err := r.pool.QueryRow(ctx, query, sku).Scan(
		&product.ID,
		&product.SKU,
		&product.Name,
		&product.Description,
		&product.UnitPrice,
		&product.UnitsInStock,
		&product.Discontinued,
		&product.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &product, nil
}

func (r *ProductRepository) List(includeDiscontinued bool) ([]models.Product, error) {
	ctx := context.Background()

	query := `
		SELECT id, sku, name, description, unit_price, units_in_stock, discontinued, created_at
		FROM products
		WHERE $1 OR discontinued = FALSE
		ORDER BY sku
	`

	rows, err := r.pool.Query(ctx, query, includeDiscontinued)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var product models.Product
		err := rows.Scan(
			&product.ID,
			&product.SKU,
			&product.Name,
			&product.Description,
			&product.UnitPrice,
			&product.UnitsInStock,
			&product.Discontinued,
			&product.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	return products, rows.Err()
}

// AdjustStock changes units_in_stock by delta (negative to remove).
// The CHECK constraint on the column rejects adjustments below zero.
func (r *ProductRepository) AdjustStock(id uuid.UUID, delta int) error {
	ctx := context.Background()

	query := `UPDATE products SET units_in_stock = units_in_stock + $2 WHERE id = $1`
	result, err := r.pool.Exec(ctx, query, id, delta)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return errors.New("product not found")
	}

	return nil
}

func (r *ProductRepository) Discontinue(id uuid.UUID) error {
	ctx := context.Background()

	query := `UPDATE products SET discontinued = TRUE WHERE id = $1`
	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return errors.New("product not found")
	}

	return nil
}

// BulkImport loads a product catalog in a single COPY operation.
func (r *ProductRepository) BulkImport(products []models.Product) (int64, error) {
	ctx := context.Background()

	rows := make([][]interface{}, 0, len(products))
	for i := range products {
		products[i].Prepare()
		rows = append(rows, []interface{}{
			products[i].ID,
			products[i].SKU,
			products[i].Name,
			products[i].Description,
			products[i].UnitPrice,
			products[i].UnitsInStock,
			products[i].Discontinued,
		})
	}

	return r.pool.CopyFrom(
		ctx,
		pgx.Identifier{"products"},
		[]string{"id", "sku", "name", "description", "unit_price", "units_in_stock", "discontinued"},
		pgx.CopyFromRows(rows),
	)
}
