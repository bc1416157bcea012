package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"grocery-inventory-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRouter builds the full route table. Handlers that hit the
// database are not exercised here; these tests cover the layer above it.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewHandler(nil, nil, nil).SetupRoutes(router)
	return router
}

func perform(router *gin.Engine, method, target string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHome(t *testing.T) {
	w := perform(newTestRouter(), http.MethodGet, "/", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Grocery Inventory API is running!")
}

func TestRequestIDAssigned(t *testing.T) {
	w := perform(newTestRouter(), http.MethodGet, "/", nil)

	id := w.Header().Get("X-Request-ID")
	require.NotEmpty(t, id)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
}

func TestRequestIDPreserved(t *testing.T) {
	w := perform(newTestRouter(), http.MethodGet, "/", map[string]string{
		"X-Request-ID": "caller-supplied",
	})

	assert.Equal(t, "caller-supplied", w.Header().Get("X-Request-ID"))
}

func TestCORSPreflightAllowsAnyOrigin(t *testing.T) {
	w := perform(newTestRouter(), http.MethodOptions, "/api/orders", map[string]string{
		"Origin":                        "http://example.com",
		"Access-Control-Request-Method": "POST",
	})

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestListFilterRejectsBadIDs(t *testing.T) {
	router := newTestRouter()

	for _, target := range []string{
		"/api/inventory?location_id=abc",
		"/api/sales?region_id=xyz",
		"/api/orders?location_id=1.5",
	} {
		w := perform(router, http.MethodGet, target, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
	}
}

func TestCreateRegionRequiresName(t *testing.T) {
	w := perform(newTestRouter(), http.MethodPost, "/api/regions", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "name is required")
}

func TestCreateLocationValidatesParams(t *testing.T) {
	router := newTestRouter()

	w := perform(router, http.MethodPost, "/api/locations?region_id=1", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "location_name is required")

	w = perform(router, http.MethodPost, "/api/locations?location_name=Test+Store&region_id=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid region_id")
}

func TestCreateProductValidatesParams(t *testing.T) {
	router := newTestRouter()

	w := perform(router, http.MethodPost,
		"/api/products?name=Milk&category_id=1&supplier_id=1&price=cheap&shelf_life_days=7&reorder_point=5", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid price")

	w = perform(router, http.MethodPost,
		"/api/products?name=Milk&category_id=1&supplier_id=1&price=3.49&shelf_life_days=7", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "reorder_point is required")
}

func TestCreateSaleValidatesParams(t *testing.T) {
	w := perform(newTestRouter(), http.MethodPost, "/api/sales?location_id=1&product_id=2&quantity=3", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "total_price is required")
}

func TestCreateOrderRejectsMalformedBody(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/orders", nil)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid request body")
}

func TestCreateOrderBindingAllowsZeroIDs(t *testing.T) {
	// A zero supplier or location id is a well-formed body; it must reach
	// the existence check and fail there, not at binding.
	gin.SetMode(gin.TestMode)

	bind := func(body string) error {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		var req service.CreateOrderRequest
		return c.ShouldBindJSON(&req)
	}

	assert.NoError(t, bind(`{"supplier_id":0,"location_id":0,"status":"Pending"}`))
	assert.Error(t, bind(`{"supplier_id":1,"location_id":1}`), "status is still mandatory")
}
