package database

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

func RunMigrations(pool *pgxpool.Pool) error {
	ctx := context.Background()

	migrations := []string{
		createCustomersTable,
		createEmployeesTable,
		createProductsTable,
		createOrdersTable,
		createOrderItemsTable,
		createProjectsTable,
		createProjectAssignmentsTable,
		createPlaceOrderFunction,
		createOrderTotalsView,
	}

	for i, migration := range migrations {
		log.Printf("Running migration %d/%d", i+1, len(migrations))
		if _, err := pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	log.Println("All migrations completed successfully")
	return nil
}

const createCustomersTable = `
CREATE TABLE IF NOT EXISTS customers (
  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  name TEXT NOT NULL,
  email TEXT NOT NULL UNIQUE,
  phone TEXT,
  city TEXT,
  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_customers_email ON customers(email);
CREATE INDEX IF NOT EXISTS idx_customers_city ON customers(city);
`

const createEmployeesTable = `
CREATE TABLE IF NOT EXISTS employees (
  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  first_name TEXT NOT NULL,
  last_name TEXT NOT NULL,
  email TEXT NOT NULL UNIQUE,
  department TEXT NOT NULL,
  salary NUMERIC(12,2) NOT NULL DEFAULT 0,
  hire_date DATE NOT NULL DEFAULT CURRENT_DATE,
  active BOOLEAN NOT NULL DEFAULT TRUE
);

CREATE INDEX IF NOT EXISTS idx_employees_department ON employees(department);
CREATE INDEX IF NOT EXISTS idx_employees_email ON employees(email);
`

const createProductsTable = `
CREATE TABLE IF NOT EXISTS products (
  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  sku TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL,
  description TEXT,
  unit_price NUMERIC(12,2) NOT NULL CHECK (unit_price >= 0),
  units_in_stock INT NOT NULL DEFAULT 0 CHECK (units_in_stock >= 0),
  discontinued BOOLEAN NOT NULL DEFAULT FALSE,
  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_products_sku ON products(sku);
CREATE INDEX IF NOT EXISTS idx_products_discontinued ON products(discontinued);
`

const createOrdersTable = `
CREATE TABLE IF NOT EXISTS orders (
  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  customer_id UUID NOT NULL REFERENCES customers(id) ON DELETE RESTRICT,
  placed_by UUID NOT NULL REFERENCES employees(id) ON DELETE RESTRICT,
  status TEXT NOT NULL DEFAULT 'pending',
  total NUMERIC(14,2) NOT NULL DEFAULT 0,
  placed_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_orders_customer_id ON orders(customer_id);
CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status);
CREATE INDEX IF NOT EXISTS idx_orders_placed_at ON orders(placed_at);
`

const createOrderItemsTable = `
CREATE TABLE IF NOT EXISTS order_items (
  order_id UUID NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
  product_id UUID NOT NULL REFERENCES products(id) ON DELETE RESTRICT,
  quantity INT NOT NULL CHECK (quantity > 0),
  unit_price NUMERIC(12,2) NOT NULL,
  PRIMARY KEY (order_id, product_id)
);

CREATE INDEX IF NOT EXISTS idx_order_items_product_id ON order_items(product_id);
`

const createProjectsTable = `
CREATE TABLE IF NOT EXISTS projects (
  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  name TEXT NOT NULL,
  customer_id UUID NOT NULL REFERENCES customers(id) ON DELETE CASCADE,
  budget NUMERIC(14,2) NOT NULL DEFAULT 0,
  status TEXT NOT NULL DEFAULT 'active',
  start_date DATE,
  end_date DATE,
  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_projects_customer_id ON projects(customer_id);
CREATE INDEX IF NOT EXISTS idx_projects_status ON projects(status);
`

const createProjectAssignmentsTable = `
CREATE TABLE IF NOT EXISTS project_assignments (
  project_id UUID NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
  employee_id UUID NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
  role TEXT NOT NULL,
  assigned_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
  PRIMARY KEY (project_id, employee_id)
);

CREATE INDEX IF NOT EXISTS idx_project_assignments_employee_id ON project_assignments(employee_id);
`

const createPlaceOrderFunction = `
-- Server-side order placement. Takes the order lines as parallel arrays,
-- inserts the order and its items, decrements stock and computes the total
-- in one atomic call. Raises on unknown products or insufficient stock so
-- the whole call rolls back.
CREATE OR REPLACE FUNCTION place_order(
  p_customer_id UUID,
  p_employee_id UUID,
  p_product_ids UUID[],
  p_quantities INT[]
)
RETURNS UUID AS $$
DECLARE
  v_order_id UUID;
  v_total NUMERIC(14,2) := 0;
  v_price NUMERIC(12,2);
  i INT;
BEGIN
  IF array_length(p_product_ids, 1) IS NULL THEN
    RAISE EXCEPTION 'order must contain at least one line';
  END IF;
  IF array_length(p_product_ids, 1) <> array_length(p_quantities, 1) THEN
    RAISE EXCEPTION 'product and quantity arrays must have the same length';
  END IF;

  INSERT INTO orders (customer_id, placed_by, status)
  VALUES (p_customer_id, p_employee_id, 'pending')
  RETURNING id INTO v_order_id;

  FOR i IN 1 .. array_length(p_product_ids, 1) LOOP
    UPDATE products
    SET units_in_stock = units_in_stock - p_quantities[i]
    WHERE id = p_product_ids[i]
      AND discontinued = FALSE
      AND units_in_stock >= p_quantities[i]
    RETURNING unit_price INTO v_price;

    IF NOT FOUND THEN
      RAISE EXCEPTION 'product % unavailable or insufficient stock', p_product_ids[i];
    END IF;

    INSERT INTO order_items (order_id, product_id, quantity, unit_price)
    VALUES (v_order_id, p_product_ids[i], p_quantities[i], v_price);

    v_total := v_total + v_price * p_quantities[i];
  END LOOP;

  UPDATE orders SET total = v_total WHERE id = v_order_id;

  RETURN v_order_id;
END;
$$ LANGUAGE plpgsql;
`

const createOrderTotalsView = `
CREATE OR REPLACE VIEW order_totals AS
SELECT
  o.id AS order_id,
  o.customer_id,
  o.status,
  o.placed_at,
  COALESCE(SUM(i.quantity * i.unit_price), 0) AS computed_total,
  COUNT(i.product_id) AS line_count
FROM orders o
LEFT JOIN order_items i ON i.order_id = o.id
GROUP BY o.id, o.customer_id, o.status, o.placed_at;
`
