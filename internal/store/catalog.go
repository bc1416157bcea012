package store

import (
	"context"
	"database/sql"
	"errors"

	"grocery-inventory-api/internal/models"
)

// GetRegions retrieves all regions
func (s *Store) GetRegions(ctx context.Context) ([]models.Region, error) {
	regions := []models.Region{}
	err := s.db.SelectContext(ctx, &regions,
		"SELECT region_id, name FROM regions ORDER BY region_id")
	return regions, err
}

// CreateRegion inserts a region and fills in its generated identity
func (s *Store) CreateRegion(ctx context.Context, region *models.Region) error {
	return s.db.GetContext(ctx, &region.RegionID,
		"INSERT INTO regions (name) VALUES ($1) RETURNING region_id", region.Name)
}

// GetLocations retrieves all locations
func (s *Store) GetLocations(ctx context.Context) ([]models.Location, error) {
	locations := []models.Location{}
	err := s.db.SelectContext(ctx, &locations,
		"SELECT location_id, location_name, region_id FROM locations ORDER BY location_id")
	return locations, err
}

// GetLocationByID retrieves a location, or nil if it does not exist
func (s *Store) GetLocationByID(ctx context.Context, id int64) (*models.Location, error) {
	var location models.Location
	err := s.db.GetContext(ctx, &location,
		"SELECT location_id, location_name, region_id FROM locations WHERE location_id = $1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &location, nil
}

// CreateLocation inserts a location and fills in its generated identity.
// The region reference is not validated here.
func (s *Store) CreateLocation(ctx context.Context, location *models.Location) error {
	return s.db.GetContext(ctx, &location.LocationID,
		"INSERT INTO locations (location_name, region_id) VALUES ($1, $2) RETURNING location_id",
		location.LocationName, location.RegionID)
}

// GetSuppliers retrieves all suppliers
func (s *Store) GetSuppliers(ctx context.Context) ([]models.Supplier, error) {
	suppliers := []models.Supplier{}
	err := s.db.SelectContext(ctx, &suppliers,
		"SELECT supplier_id, name, contact_info FROM suppliers ORDER BY supplier_id")
	return suppliers, err
}

// GetSupplierByID retrieves a supplier, or nil if it does not exist
func (s *Store) GetSupplierByID(ctx context.Context, id int64) (*models.Supplier, error) {
	var supplier models.Supplier
	err := s.db.GetContext(ctx, &supplier,
		"SELECT supplier_id, name, contact_info FROM suppliers WHERE supplier_id = $1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &supplier, nil
}

// GetProducts retrieves all products
func (s *Store) GetProducts(ctx context.Context) ([]models.Product, error) {
	products := []models.Product{}
	err := s.db.SelectContext(ctx, &products,
		`SELECT product_id, name, category_id, supplier_id, price, shelf_life_days, reorder_point
		 FROM products ORDER BY product_id`)
	return products, err
}

// CreateProduct inserts a product and re-reads its identity and the stored
// price, which NUMERIC(10,2) may have rounded.
func (s *Store) CreateProduct(ctx context.Context, product *models.Product) error {
	query := `
		INSERT INTO products (name, category_id, supplier_id, price, shelf_life_days, reorder_point)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING product_id, price`

	return s.db.GetContext(ctx, product, query,
		product.Name, product.CategoryID, product.SupplierID,
		product.Price, product.ShelfLifeDays, product.ReorderPoint)
}
