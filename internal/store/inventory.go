package store

import (
	"context"

	"grocery-inventory-api/internal/models"
)

// GetInventory retrieves inventory rows with their location and product
// names joined in, narrowed by the filter.
func (s *Store) GetInventory(ctx context.Context, f Filter) ([]models.InventoryProjection, error) {
	query := `
		SELECT i.inventory_id, i.location_id, l.location_name,
		       i.product_id, p.name AS product_name,
		       i.quantity, i.last_updated
		FROM inventory i
		LEFT JOIN locations l ON l.location_id = i.location_id
		LEFT JOIN products p ON p.product_id = i.product_id`

	where, args := f.clause("i")
	query += where + " ORDER BY i.inventory_id"

	items := []models.InventoryProjection{}
	err := s.db.SelectContext(ctx, &items, query, args...)
	return items, err
}

// GetSales retrieves sales rows with their location and product names
// joined in, narrowed by the filter.
func (s *Store) GetSales(ctx context.Context, f Filter) ([]models.SaleRow, error) {
	query := `
		SELECT s.sale_id, s.location_id, l.location_name,
		       s.product_id, p.name AS product_name,
		       s.quantity, s.total_price, s.timestamp
		FROM sales s
		LEFT JOIN locations l ON l.location_id = s.location_id
		LEFT JOIN products p ON p.product_id = s.product_id`

	where, args := f.clause("s")
	query += where + " ORDER BY s.sale_id"

	sales := []models.SaleRow{}
	err := s.db.SelectContext(ctx, &sales, query, args...)
	return sales, err
}

// CreateSale inserts a sale and re-reads its identity and stored total.
// No timestamp is assigned; the column stays NULL. The location and
// product references are not validated here.
func (s *Store) CreateSale(ctx context.Context, sale *models.Sale) error {
	query := `
		INSERT INTO sales (location_id, product_id, quantity, total_price)
		VALUES ($1, $2, $3, $4)
		RETURNING sale_id, total_price`

	return s.db.GetContext(ctx, sale, query,
		sale.LocationID, sale.ProductID, sale.Quantity, sale.TotalPrice)
}
