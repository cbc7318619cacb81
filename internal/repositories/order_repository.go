package repositories

import (
	"backoffice/internal/models"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

var ErrInsufficientStock = errors.New("product unavailable or insufficient stock")

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// OrderLine is one requested line of a new order. The unit price is read
// from the products table inside the transaction, never from the caller.
type OrderLine struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

// PlaceOrder inserts the order, its items and the stock decrements in one
// transaction. Any failure rolls the whole sequence back.
func (r *OrderRepository) PlaceOrder(order *models.Order, lines []OrderLine) error {
	ctx := context.Background()

	order.Prepare()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	// No-op after a successful commit
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO orders (id, customer_id, placed_by, status, placed_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err = tx.Exec(ctx, query,
		order.ID,
		order.CustomerID,
		order.PlacedBy,
		order.Status,
		order.PlacedAt,
	)
	if err != nil {
		return err
	}

	total := decimal.Zero
	order.Items = order.Items[:0]

	for _, line := range lines {
		// Guarded decrement: misses when the product is unknown,
		// discontinued or short on stock
		var price decimal.Decimal
		err := tx.QueryRow(ctx, `
			UPDATE products
			SET units_in_stock = units_in_stock - $2
			WHERE id = $1 AND discontinued = FALSE AND units_in_stock >= $2
			RETURNING unit_price
		`, line.ProductID, line.Quantity).Scan(&price)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return fmt.Errorf("%w: %s", ErrInsufficientStock, line.ProductID)
			}
			return err
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO order_items (order_id, product_id, quantity, unit_price)
			VALUES ($1, $2, $3, $4)
		`, order.ID, line.ProductID, line.Quantity, price)
		if err != nil {
			return err
		}

		total = total.Add(price.Mul(decimal.NewFromInt(int64(line.Quantity))))
		order.Items = append(order.Items, models.OrderItem{
			OrderID:   order.ID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: price,
		})
	}

	if _, err := tx.Exec(ctx, `UPDATE orders SET total = $2 WHERE id = $1`, order.ID, total); err != nil {
		return err
	}
	order.Total = total

	return tx.Commit(ctx)
}

// PlaceOrderProc places an order through the place_order stored function,
// passing the lines as parallel array parameters. Atomicity is enforced
// server-side: the function raises and rolls back on any bad line.
func (r *OrderRepository) PlaceOrderProc(customerID, employeeID uuid.UUID, lines []OrderLine) (uuid.UUID, error) {
	ctx := context.Background()

	productIDs := make([]uuid.UUID, 0, len(lines))
	quantities := make([]int32, 0, len(lines))
	for _, line := range lines {
		productIDs = append(productIDs, line.ProductID)
		quantities = append(quantities, int32(line.Quantity))
	}

	var orderID uuid.UUID
	err := r.pool.QueryRow(ctx,
		`SELECT place_order($1, $2, $3, $4)`,
		customerID, employeeID, productIDs, quantities,
	).Scan(&orderID)
	if err != nil {
		return uuid.Nil, err
	}

	return orderID, nil
}

func (r *OrderRepository) GetByID(id uuid.UUID) (*models.Order, error) {
	ctx := context.Background()

	query := `
		SELECT id, customer_id, placed_by, status, total, placed_at
		FROM orders WHERE id = $1
	`

	var order models.Order
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&order.ID,
		&order.CustomerID,
		&order.PlacedBy,
		&order.Status,
		&order.Total,
		&order.PlacedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	items, err := r.itemsByOrderID(ctx, id)
	if err != nil {
		return nil, err
	}
	order.Items = items

	return &order, nil
}

func (r *OrderRepository) itemsByOrderID(ctx context.Context, orderID uuid.UUID) ([]models.OrderItem, error) {
	query := `
		SELECT order_id, product_id, quantity, unit_price
		FROM order_items WHERE order_id = $1
	`

	rows, err := r.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.OrderItem
	for rows.Next() {
		var item models.OrderItem
		err := rows.Scan(
			&item.OrderID,
			&item.ProductID,
			&item.Quantity,
			&item.UnitPrice,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (r *OrderRepository) ListByCustomer(customerID uuid.UUID) ([]models.Order, error) {
	ctx := context.Background()

	query := `
		SELECT id, customer_id, placed_by, status, total, placed_at
		FROM orders WHERE customer_id = $1
		ORDER BY placed_at DESC
	`

	rows, err := r.pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var order models.Order
		err := rows.Scan(
			&order.ID,
			&order.CustomerID,
			&order.PlacedBy,
			&order.Status,
			&order.Total,
			&order.PlacedAt,
		)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	return orders, rows.Err()
}

func (r *OrderRepository) UpdateStatus(id uuid.UUID, status string) error {
	ctx := context.Background()

	query := `UPDATE orders SET status = $2 WHERE id = $1`
	result, err := r.pool.Exec(ctx, query, id, status)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return errors.New("order not found")
	}

	return nil
}

// TotalRevenue sums completed order totals as a single scalar. Returns
// zero on an empty table.
func (r *OrderRepository) TotalRevenue() (decimal.Decimal, error) {
	ctx := context.Background()

	var total decimal.Decimal
	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(total), 0) FROM orders WHERE status = $1
	`, models.OrderStatusCompleted).Scan(&total)
	return total, err
}
