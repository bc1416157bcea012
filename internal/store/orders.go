package store

import (
	"context"

	"grocery-inventory-api/internal/models"
)

// GetOrders retrieves orders with their supplier and location names joined
// in, narrowed by the filter.
func (s *Store) GetOrders(ctx context.Context, f Filter) ([]models.OrderRow, error) {
	query := `
		SELECT o.order_id, sup.name AS supplier_name, l.location_name,
		       o.status, o.created_at
		FROM orders o
		LEFT JOIN suppliers sup ON sup.supplier_id = o.supplier_id
		LEFT JOIN locations l ON l.location_id = o.location_id`

	where, args := f.clause("o")
	query += where + " ORDER BY o.order_id"

	orders := []models.OrderRow{}
	err := s.db.SelectContext(ctx, &orders, query, args...)
	return orders, err
}

// CreateOrder inserts an order and re-reads its identity and the
// server-assigned creation timestamp.
func (s *Store) CreateOrder(ctx context.Context, order *models.Order) error {
	query := `
		INSERT INTO orders (supplier_id, location_id, status)
		VALUES ($1, $2, $3)
		RETURNING order_id, created_at`

	return s.db.GetContext(ctx, order, query,
		order.SupplierID, order.LocationID, order.Status)
}
