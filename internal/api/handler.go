package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"grocery-inventory-api/internal/service"
	"grocery-inventory-api/internal/store"
	"grocery-inventory-api/internal/util"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
)

// Handler contains HTTP handlers
type Handler struct {
	catalog   *service.CatalogService
	inventory *service.InventoryService
	orders    *service.OrderService
}

// NewHandler creates a new HTTP handler
func NewHandler(
	catalog *service.CatalogService,
	inventory *service.InventoryService,
	orders *service.OrderService,
) *Handler {
	return &Handler{
		catalog:   catalog,
		inventory: inventory,
		orders:    orders,
	}
}

// SetupRoutes sets up HTTP routes
func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(requestIDMiddleware())
	router.Use(prometheusMiddleware())
	router.Use(gin.Logger())
	router.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowMethods:     []string{"GET", "HEAD", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
	}))

	router.GET("/", h.home)
	router.GET("/health", h.healthCheck)
	router.GET("/ready", h.readinessCheck)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.GET("/regions", h.listRegions)
		api.HEAD("/regions", h.listRegions)
		api.POST("/regions", h.createRegion)

		api.GET("/locations", h.listLocations)
		api.HEAD("/locations", h.listLocations)
		api.POST("/locations", h.createLocation)

		api.GET("/products", h.listProducts)
		api.POST("/products", h.createProduct)

		api.GET("/inventory", h.listInventory)
		api.HEAD("/inventory", h.listInventory)

		api.GET("/sales", h.listSales)
		api.HEAD("/sales", h.listSales)
		api.POST("/sales", h.createSale)

		api.GET("/orders", h.listOrders)
		api.HEAD("/orders", h.listOrders)
		api.POST("/orders", h.createOrder)

		api.GET("/suppliers", h.listSuppliers)
		api.HEAD("/suppliers", h.listSuppliers)
	}
}

// home is the liveness message
func (h *Handler) home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Grocery Inventory API is running!",
	})
}

// healthCheck handles health check requests
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   time.Now().Unix(),
	})
}

// readinessCheck handles readiness check requests
func (h *Handler) readinessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"time":   time.Now().Unix(),
	})
}

// listRegions handles GET /api/regions
func (h *Handler) listRegions(c *gin.Context) {
	regions, err := h.catalog.ListRegions(c.Request.Context())
	if err != nil {
		h.storageError(c, "Failed to list regions", err)
		return
	}
	c.JSON(http.StatusOK, regions)
}

// createRegion handles POST /api/regions
func (h *Handler) createRegion(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	region, err := h.catalog.CreateRegion(c.Request.Context(), name)
	if err != nil {
		h.storageError(c, "Failed to create region", err)
		return
	}
	c.JSON(http.StatusOK, region)
}

// listLocations handles GET /api/locations
func (h *Handler) listLocations(c *gin.Context) {
	locations, err := h.catalog.ListLocations(c.Request.Context())
	if err != nil {
		h.storageError(c, "Failed to list locations", err)
		return
	}
	c.JSON(http.StatusOK, locations)
}

// createLocation handles POST /api/locations
func (h *Handler) createLocation(c *gin.Context) {
	name := c.Query("location_name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "location_name is required"})
		return
	}
	regionID, err := requiredIDQuery(c, "region_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	location, err := h.catalog.CreateLocation(c.Request.Context(), name, regionID)
	if err != nil {
		h.storageError(c, "Failed to create location", err)
		return
	}
	c.JSON(http.StatusOK, location)
}

// listProducts handles GET /api/products
func (h *Handler) listProducts(c *gin.Context) {
	products, err := h.catalog.ListProducts(c.Request.Context())
	if err != nil {
		h.storageError(c, "Failed to list products", err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// createProduct handles POST /api/products
func (h *Handler) createProduct(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	categoryID, err := requiredIDQuery(c, "category_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	supplierID, err := requiredIDQuery(c, "supplier_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	price, err := requiredDecimalQuery(c, "price")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	shelfLifeDays, err := requiredIntQuery(c, "shelf_life_days")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	reorderPoint, err := requiredIntQuery(c, "reorder_point")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.catalog.CreateProduct(c.Request.Context(), &service.CreateProductRequest{
		Name:          name,
		CategoryID:    categoryID,
		SupplierID:    supplierID,
		Price:         price,
		ShelfLifeDays: shelfLifeDays,
		ReorderPoint:  reorderPoint,
	})
	if err != nil {
		h.storageError(c, "Failed to create product", err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// listInventory handles GET /api/inventory
func (h *Handler) listInventory(c *gin.Context) {
	f, err := listFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items, err := h.inventory.ListInventory(c.Request.Context(), f)
	if err != nil {
		h.storageError(c, "Failed to list inventory", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// listSales handles GET /api/sales
func (h *Handler) listSales(c *gin.Context) {
	f, err := listFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sales, err := h.inventory.ListSales(c.Request.Context(), f)
	if err != nil {
		h.storageError(c, "Failed to list sales", err)
		return
	}
	c.JSON(http.StatusOK, sales)
}

// createSale handles POST /api/sales
func (h *Handler) createSale(c *gin.Context) {
	locationID, err := requiredIDQuery(c, "location_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	productID, err := requiredIDQuery(c, "product_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	quantity, err := requiredIntQuery(c, "quantity")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	totalPrice, err := requiredDecimalQuery(c, "total_price")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sale, err := h.inventory.CreateSale(c.Request.Context(), &service.CreateSaleRequest{
		LocationID: locationID,
		ProductID:  productID,
		Quantity:   quantity,
		TotalPrice: totalPrice,
	})
	if err != nil {
		h.storageError(c, "Failed to create sale", err)
		return
	}
	c.JSON(http.StatusOK, sale)
}

// listOrders handles GET /api/orders
func (h *Handler) listOrders(c *gin.Context) {
	f, err := listFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	orders, err := h.orders.ListOrders(c.Request.Context(), f)
	if err != nil {
		h.storageError(c, "Failed to list orders", err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// createOrder handles POST /api/orders
func (h *Handler) createOrder(c *gin.Context) {
	var req service.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	order, err := h.orders.CreateOrder(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidSupplier) || errors.Is(err, service.ErrInvalidLocation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.storageError(c, "Failed to create order", err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// listSuppliers handles GET /api/suppliers
func (h *Handler) listSuppliers(c *gin.Context) {
	suppliers, err := h.catalog.ListSuppliers(c.Request.Context())
	if err != nil {
		h.storageError(c, "Failed to list suppliers", err)
		return
	}
	c.JSON(http.StatusOK, suppliers)
}

// storageError maps storage failures to responses: constraint violations
// are the caller's fault, anything else is a server error.
func (h *Handler) storageError(c *gin.Context, message string, err error) {
	status := http.StatusInternalServerError
	if store.IsConstraintViolation(err) {
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{
		"error":   message,
		"details": err.Error(),
	})
}

// listFilter reads the optional region_id/location_id query parameters.
// Zero values count as absent; the store applies location-over-region
// precedence.
func listFilter(c *gin.Context) (store.Filter, error) {
	var f store.Filter
	var err error

	if f.LocationID, err = optionalIDQuery(c, "location_id"); err != nil {
		return f, err
	}
	if f.RegionID, err = optionalIDQuery(c, "region_id"); err != nil {
		return f, err
	}
	return f, nil
}

func optionalIDQuery(c *gin.Context, name string) (int64, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.New("invalid " + name)
	}
	return id, nil
}

func requiredIDQuery(c *gin.Context, name string) (int64, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, errors.New(name + " is required")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.New("invalid " + name)
	}
	return id, nil
}

func requiredIntQuery(c *gin.Context, name string) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, errors.New(name + " is required")
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New("invalid " + name)
	}
	return n, nil
}

func requiredDecimalQuery(c *gin.Context, name string) (decimal.Decimal, error) {
	raw := c.Query(name)
	if raw == "" {
		return decimal.Decimal{}, errors.New(name + " is required")
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, errors.New("invalid " + name)
	}
	return d, nil
}

// requestIDMiddleware tags every response with an X-Request-ID, minting
// one when the caller did not send it.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

// prometheusMiddleware collects HTTP metrics
func prometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		util.HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Observe(duration)

		util.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Inc()
	}
}
