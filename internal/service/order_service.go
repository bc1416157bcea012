package service

import (
	"context"
	"errors"
	"fmt"

	"grocery-inventory-api/internal/models"
	"grocery-inventory-api/internal/store"
	"grocery-inventory-api/internal/util"

	"go.uber.org/zap"
)

// Returned when an order references a supplier or location that does not
// exist. The messages are part of the API contract.
var (
	ErrInvalidSupplier = errors.New("Invalid supplier ID")
	ErrInvalidLocation = errors.New("Invalid location ID")
)

// OrderService handles purchase orders
type OrderService struct {
	store  *store.Store
	logger *zap.Logger
}

// NewOrderService creates a new order service
func NewOrderService(store *store.Store) *OrderService {
	return &OrderService{
		store:  store,
		logger: util.GetLogger(),
	}
}

// CreateOrderRequest represents a request to create an order. The id
// fields are deliberately not bound as required: a zero id passes binding
// and is rejected by the existence check, so the caller sees "Invalid
// supplier ID" rather than a body error.
type CreateOrderRequest struct {
	SupplierID int64  `json:"supplier_id"`
	LocationID int64  `json:"location_id"`
	Status     string `json:"status" binding:"required"`
}

// ListOrders returns order projections narrowed by the filter. Orders
// whose supplier or location is missing render "Unknown" names.
func (s *OrderService) ListOrders(ctx context.Context, f store.Filter) ([]models.OrderProjection, error) {
	ctx, span := util.StartSpan(ctx, "OrderService.ListOrders")
	defer span.End()

	rows, err := s.store.GetOrders(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	orders := make([]models.OrderProjection, 0, len(rows))
	for i := range rows {
		orders = append(orders, rows[i].Projection())
	}
	util.ListRowsReturnedTotal.WithLabelValues("orders").Add(float64(len(orders)))
	return orders, nil
}

// CreateOrder validates the supplier and location references, persists the
// order, and returns its projection with the server-assigned timestamp.
// Supplier is checked before location.
func (s *OrderService) CreateOrder(ctx context.Context, req *CreateOrderRequest) (*models.OrderProjection, error) {
	ctx, span := util.StartSpan(ctx, "OrderService.CreateOrder")
	defer span.End()

	supplier, err := s.store.GetSupplierByID(ctx, req.SupplierID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up supplier: %w", err)
	}
	if supplier == nil {
		util.OrderValidationFailuresTotal.WithLabelValues("supplier_id").Inc()
		return nil, ErrInvalidSupplier
	}

	location, err := s.store.GetLocationByID(ctx, req.LocationID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up location: %w", err)
	}
	if location == nil {
		util.OrderValidationFailuresTotal.WithLabelValues("location_id").Inc()
		return nil, ErrInvalidLocation
	}

	order := &models.Order{
		SupplierID: req.SupplierID,
		LocationID: req.LocationID,
		Status:     req.Status,
	}

	if err := s.store.CreateOrder(ctx, order); err != nil {
		util.EntityCreateFailuresTotal.WithLabelValues("orders", "db_error").Inc()
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	util.EntitiesCreatedTotal.WithLabelValues("orders").Inc()
	s.logger.Info("Order created",
		zap.Int64("order_id", order.OrderID),
		zap.Int64("supplier_id", order.SupplierID),
		zap.Int64("location_id", order.LocationID),
		zap.String("status", order.Status))

	return &models.OrderProjection{
		OrderID:      order.OrderID,
		SupplierName: supplier.Name,
		LocationName: location.LocationName,
		Status:       order.Status,
		CreatedAt:    order.CreatedAt,
	}, nil
}
