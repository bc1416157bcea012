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

// CatalogService handles regions, locations, suppliers and products
type CatalogService struct {
	store  *store.Store
	logger *zap.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(store *store.Store) *CatalogService {
	return &CatalogService{
		store:  store,
		logger: util.GetLogger(),
	}
}

// CreateProductRequest carries the fields for a new product
type CreateProductRequest struct {
	Name          string
	CategoryID    int64
	SupplierID    int64
	Price         decimal.Decimal
	ShelfLifeDays int
	ReorderPoint  int
}

// ListRegions returns all regions
func (s *CatalogService) ListRegions(ctx context.Context) ([]models.Region, error) {
	ctx, span := util.StartSpan(ctx, "CatalogService.ListRegions")
	defer span.End()

	regions, err := s.store.GetRegions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list regions: %w", err)
	}
	util.ListRowsReturnedTotal.WithLabelValues("regions").Add(float64(len(regions)))
	return regions, nil
}

// CreateRegion persists a new region and returns it with its identity
func (s *CatalogService) CreateRegion(ctx context.Context, name string) (*models.Region, error) {
	ctx, span := util.StartSpan(ctx, "CatalogService.CreateRegion")
	defer span.End()

	region := &models.Region{Name: name}
	if err := s.store.CreateRegion(ctx, region); err != nil {
		util.EntityCreateFailuresTotal.WithLabelValues("regions", "db_error").Inc()
		return nil, err
	}

	util.EntitiesCreatedTotal.WithLabelValues("regions").Inc()
	s.logger.Info("Region created", zap.Int64("region_id", region.RegionID))
	return region, nil
}

// ListLocations returns all locations
func (s *CatalogService) ListLocations(ctx context.Context) ([]models.Location, error) {
	ctx, span := util.StartSpan(ctx, "CatalogService.ListLocations")
	defer span.End()

	locations, err := s.store.GetLocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	util.ListRowsReturnedTotal.WithLabelValues("locations").Add(float64(len(locations)))
	return locations, nil
}

// CreateLocation persists a new location. The region reference is not
// validated; a schema-level rejection surfaces as a constraint violation.
func (s *CatalogService) CreateLocation(ctx context.Context, name string, regionID int64) (*models.Location, error) {
	ctx, span := util.StartSpan(ctx, "CatalogService.CreateLocation")
	defer span.End()

	location := &models.Location{LocationName: name, RegionID: &regionID}
	if err := s.store.CreateLocation(ctx, location); err != nil {
		util.EntityCreateFailuresTotal.WithLabelValues("locations", "db_error").Inc()
		return nil, err
	}

	util.EntitiesCreatedTotal.WithLabelValues("locations").Inc()
	s.logger.Info("Location created",
		zap.Int64("location_id", location.LocationID),
		zap.Int64("region_id", regionID))
	return location, nil
}

// ListSuppliers returns all suppliers
func (s *CatalogService) ListSuppliers(ctx context.Context) ([]models.Supplier, error) {
	ctx, span := util.StartSpan(ctx, "CatalogService.ListSuppliers")
	defer span.End()

	suppliers, err := s.store.GetSuppliers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}
	util.ListRowsReturnedTotal.WithLabelValues("suppliers").Add(float64(len(suppliers)))
	return suppliers, nil
}

// ListProducts returns all products as flat projections
func (s *CatalogService) ListProducts(ctx context.Context) ([]models.ProductProjection, error) {
	ctx, span := util.StartSpan(ctx, "CatalogService.ListProducts")
	defer span.End()

	products, err := s.store.GetProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	projections := make([]models.ProductProjection, 0, len(products))
	for i := range products {
		projections = append(projections, products[i].Projection())
	}
	util.ListRowsReturnedTotal.WithLabelValues("products").Add(float64(len(projections)))
	return projections, nil
}

// CreateProduct persists a new product. The price is rounded to two
// fractional digits, matching NUMERIC(10,2) storage.
func (s *CatalogService) CreateProduct(ctx context.Context, req *CreateProductRequest) (*models.ProductProjection, error) {
	ctx, span := util.StartSpan(ctx, "CatalogService.CreateProduct")
	defer span.End()

	product := &models.Product{
		Name:          &req.Name,
		CategoryID:    &req.CategoryID,
		SupplierID:    &req.SupplierID,
		Price:         decimal.NullDecimal{Decimal: roundPrice(req.Price), Valid: true},
		ShelfLifeDays: &req.ShelfLifeDays,
		ReorderPoint:  &req.ReorderPoint,
	}

	if err := s.store.CreateProduct(ctx, product); err != nil {
		util.EntityCreateFailuresTotal.WithLabelValues("products", "db_error").Inc()
		return nil, err
	}

	util.EntitiesCreatedTotal.WithLabelValues("products").Inc()
	s.logger.Info("Product created",
		zap.Int64("product_id", product.ProductID),
		zap.String("name", req.Name))

	projection := product.Projection()
	return &projection, nil
}

// roundPrice normalizes a money amount to two fractional digits, rounding
// half away from zero like PostgreSQL NUMERIC(10,2).
func roundPrice(p decimal.Decimal) decimal.Decimal {
	return p.Round(2)
}
