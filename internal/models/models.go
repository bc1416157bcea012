package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Region is a geographic grouping of store locations
type Region struct {
	RegionID int64  `db:"region_id" json:"region_id"`
	Name     string `db:"name" json:"name"`
}

// Location is a single store/site belonging to a region
type Location struct {
	LocationID   int64  `db:"location_id" json:"location_id"`
	LocationName string `db:"location_name" json:"location_name"`
	RegionID     *int64 `db:"region_id" json:"region_id"`
}

// Supplier provides products and receives purchase orders
type Supplier struct {
	SupplierID  int64   `db:"supplier_id" json:"supplier_id"`
	Name        string  `db:"name" json:"name"`
	ContactInfo *string `db:"contact_info" json:"contact_info"`
}

// Product is a catalog item. Price is NUMERIC(10,2) and nullable; the
// category and supplier references are not enforced by the schema.
type Product struct {
	ProductID     int64               `db:"product_id"`
	Name          *string             `db:"name"`
	CategoryID    *int64              `db:"category_id"`
	SupplierID    *int64              `db:"supplier_id"`
	Price         decimal.NullDecimal `db:"price"`
	ShelfLifeDays *int                `db:"shelf_life_days"`
	ReorderPoint  *int                `db:"reorder_point"`
}

// ProductProjection is the flat response shape for products. Price is
// rendered as a nullable float.
type ProductProjection struct {
	ProductID     int64    `json:"product_id"`
	Name          *string  `json:"name"`
	CategoryID    *int64   `json:"category_id"`
	SupplierID    *int64   `json:"supplier_id"`
	Price         *float64 `json:"price"`
	ShelfLifeDays *int     `json:"shelf_life_days"`
	ReorderPoint  *int     `json:"reorder_point"`
}

// Projection flattens a product row for JSON responses.
func (p *Product) Projection() ProductProjection {
	var price *float64
	if p.Price.Valid {
		f := p.Price.Decimal.InexactFloat64()
		price = &f
	}
	return ProductProjection{
		ProductID:     p.ProductID,
		Name:          p.Name,
		CategoryID:    p.CategoryID,
		SupplierID:    p.SupplierID,
		Price:         price,
		ShelfLifeDays: p.ShelfLifeDays,
		ReorderPoint:  p.ReorderPoint,
	}
}

// InventoryProjection is an inventory row with its related location and
// product names denormalized in. Missing relations render as null.
type InventoryProjection struct {
	InventoryID  int64      `db:"inventory_id" json:"inventory_id"`
	LocationID   *int64     `db:"location_id" json:"location_id"`
	LocationName *string    `db:"location_name" json:"location_name"`
	ProductID    *int64     `db:"product_id" json:"product_id"`
	ProductName  *string    `db:"product_name" json:"product_name"`
	Quantity     int        `db:"quantity" json:"quantity"`
	LastUpdated  *time.Time `db:"last_updated" json:"last_updated"`
}

// Sale is a completed transaction of a product at a location
type Sale struct {
	SaleID     int64           `db:"sale_id"`
	LocationID int64           `db:"location_id"`
	ProductID  int64           `db:"product_id"`
	Quantity   int             `db:"quantity"`
	TotalPrice decimal.Decimal `db:"total_price"`
	Timestamp  *time.Time      `db:"timestamp"`
}

// SaleRow is a sale joined with its location and product names
type SaleRow struct {
	SaleID       int64           `db:"sale_id"`
	LocationID   *int64          `db:"location_id"`
	LocationName *string         `db:"location_name"`
	ProductID    *int64          `db:"product_id"`
	ProductName  *string         `db:"product_name"`
	Quantity     int             `db:"quantity"`
	TotalPrice   decimal.Decimal `db:"total_price"`
	Timestamp    *time.Time      `db:"timestamp"`
}

// SaleProjection is the flat response shape for sales listings
type SaleProjection struct {
	SaleID       int64      `json:"sale_id"`
	LocationID   *int64     `json:"location_id"`
	LocationName *string    `json:"location_name"`
	ProductID    *int64     `json:"product_id"`
	ProductName  *string    `json:"product_name"`
	Quantity     int        `json:"quantity"`
	TotalPrice   float64    `json:"total_price"`
	Timestamp    *time.Time `json:"timestamp"`
}

// Projection flattens a joined sale row for JSON responses.
func (r *SaleRow) Projection() SaleProjection {
	return SaleProjection{
		SaleID:       r.SaleID,
		LocationID:   r.LocationID,
		LocationName: r.LocationName,
		ProductID:    r.ProductID,
		ProductName:  r.ProductName,
		Quantity:     r.Quantity,
		TotalPrice:   r.TotalPrice.InexactFloat64(),
		Timestamp:    r.Timestamp,
	}
}

// Order is a purchase order placed with a supplier for a location
type Order struct {
	OrderID    int64     `db:"order_id"`
	SupplierID int64     `db:"supplier_id"`
	LocationID int64     `db:"location_id"`
	Status     string    `db:"status"`
	CreatedAt  time.Time `db:"created_at"`
}

// UnknownName is rendered when an order's supplier or location is missing.
const UnknownName = "Unknown"

// Observed order status labels. Status is free text; these are the values
// the seeder writes.
const (
	OrderStatusPending   = "Pending"
	OrderStatusShipped   = "Shipped"
	OrderStatusDelivered = "Delivered"
)

// OrderRow is an order joined with its supplier and location names
type OrderRow struct {
	OrderID      int64     `db:"order_id"`
	SupplierName *string   `db:"supplier_name"`
	LocationName *string   `db:"location_name"`
	Status       string    `db:"status"`
	CreatedAt    time.Time `db:"created_at"`
}

// OrderProjection is the flat response shape for orders. Missing supplier
// or location names render as "Unknown".
type OrderProjection struct {
	OrderID      int64     `json:"order_id"`
	SupplierName string    `json:"supplier_name"`
	LocationName string    `json:"location_name"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// Projection flattens a joined order row for JSON responses.
func (r *OrderRow) Projection() OrderProjection {
	supplierName := UnknownName
	if r.SupplierName != nil {
		supplierName = *r.SupplierName
	}
	locationName := UnknownName
	if r.LocationName != nil {
		locationName = *r.LocationName
	}
	return OrderProjection{
		OrderID:      r.OrderID,
		SupplierName: supplierName,
		LocationName: locationName,
		Status:       r.Status,
		CreatedAt:    r.CreatedAt,
	}
}
