package service

import (
	"context"
	"fmt"

	"grocery-inventory-api/internal/models"
	"grocery-inventory-api/internal/store"
	"grocery-inventory-api/internal/util"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// InventoryService handles inventory and sales listings and sale creation
type InventoryService struct {
	store  *store.Store
	logger *zap.Logger
}

// NewInventoryService creates a new inventory service
func NewInventoryService(store *store.Store) *InventoryService {
	return &InventoryService{
		store:  store,
		logger: util.GetLogger(),
	}
}

// CreateSaleRequest carries the fields for a new sale
type CreateSaleRequest struct {
	LocationID int64
	ProductID  int64
	Quantity   int
	TotalPrice decimal.Decimal
}

// SaleResponse is the shape returned after creating a sale. No related
// names are denormalized in; the row is returned as stored.
type SaleResponse struct {
	SaleID     int64   `json:"sale_id"`
	LocationID int64   `json:"location_id"`
	ProductID  int64   `json:"product_id"`
	Quantity   int     `json:"quantity"`
	TotalPrice float64 `json:"total_price"`
	Timestamp  *string `json:"timestamp"`
}

// ListInventory returns inventory projections narrowed by the filter.
// Rows whose location or product is missing keep null name fields.
func (s *InventoryService) ListInventory(ctx context.Context, f store.Filter) ([]models.InventoryProjection, error) {
	ctx, span := util.StartSpan(ctx, "InventoryService.ListInventory")
	defer span.End()

	items, err := s.store.GetInventory(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	util.ListRowsReturnedTotal.WithLabelValues("inventory").Add(float64(len(items)))
	return items, nil
}

// ListSales returns sale projections narrowed by the filter
func (s *InventoryService) ListSales(ctx context.Context, f store.Filter) ([]models.SaleProjection, error) {
	ctx, span := util.StartSpan(ctx, "InventoryService.ListSales")
	defer span.End()

	rows, err := s.store.GetSales(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}

	sales := make([]models.SaleProjection, 0, len(rows))
	for i := range rows {
		sales = append(sales, rows[i].Projection())
	}
	util.ListRowsReturnedTotal.WithLabelValues("sales").Add(float64(len(sales)))
	return sales, nil
}

// CreateSale persists a new sale. The location and product references are
// not validated; a schema-level rejection surfaces as a constraint
// violation. No timestamp is assigned.
func (s *InventoryService) CreateSale(ctx context.Context, req *CreateSaleRequest) (*SaleResponse, error) {
	ctx, span := util.StartSpan(ctx, "InventoryService.CreateSale")
	defer span.End()

	sale := &models.Sale{
		LocationID: req.LocationID,
		ProductID:  req.ProductID,
		Quantity:   req.Quantity,
		TotalPrice: roundPrice(req.TotalPrice),
	}

	if err := s.store.CreateSale(ctx, sale); err != nil {
		util.EntityCreateFailuresTotal.WithLabelValues("sales", "db_error").Inc()
		return nil, err
	}

	util.EntitiesCreatedTotal.WithLabelValues("sales").Inc()
	s.logger.Info("Sale created",
		zap.Int64("sale_id", sale.SaleID),
		zap.Int64("location_id", sale.LocationID),
		zap.Int64("product_id", sale.ProductID))

	return &SaleResponse{
		SaleID:     sale.SaleID,
		LocationID: sale.LocationID,
		ProductID:  sale.ProductID,
		Quantity:   sale.Quantity,
		TotalPrice: sale.TotalPrice.InexactFloat64(),
		Timestamp:  nil,
	}, nil
}
