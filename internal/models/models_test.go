package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderProjectionSubstitutesUnknownNames(t *testing.T) {
	row := OrderRow{
		OrderID:   42,
		Status:    OrderStatusPending,
		CreatedAt: time.Now(),
	}

	p := row.Projection()

	assert.Equal(t, "Unknown", p.SupplierName)
	assert.Equal(t, "Unknown", p.LocationName)
	assert.Equal(t, int64(42), p.OrderID)
}

func TestOrderProjectionKeepsPresentNames(t *testing.T) {
	supplier := "Greenfield Farms"
	location := "Riverton Supermarket"
	row := OrderRow{
		OrderID:      7,
		SupplierName: &supplier,
		LocationName: &location,
		Status:       OrderStatusShipped,
		CreatedAt:    time.Now(),
	}

	p := row.Projection()

	assert.Equal(t, supplier, p.SupplierName)
	assert.Equal(t, location, p.LocationName)
}

func TestSaleProjectionKeepsNullNames(t *testing.T) {
	locationID := int64(3)
	row := SaleRow{
		SaleID:     11,
		LocationID: &locationID,
		Quantity:   2,
		TotalPrice: decimal.RequireFromString("12.50"),
	}

	p := row.Projection()

	assert.Nil(t, p.LocationName)
	assert.Nil(t, p.ProductID)
	assert.Nil(t, p.ProductName)
	assert.Equal(t, 12.5, p.TotalPrice)

	// Missing relations must serialize as JSON null, not be dropped.
	raw, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"product_name":null`)
	assert.Contains(t, string(raw), `"location_name":null`)
}

func TestProductProjectionNullablePrice(t *testing.T) {
	name := "Whole Milk"
	p := Product{ProductID: 5, Name: &name}

	projection := p.Projection()
	assert.Nil(t, projection.Price)

	p.Price = decimal.NullDecimal{Decimal: decimal.RequireFromString("3.49"), Valid: true}
	projection = p.Projection()
	require.NotNil(t, projection.Price)
	assert.Equal(t, 3.49, *projection.Price)
}

func TestInventoryProjectionJSONShape(t *testing.T) {
	p := InventoryProjection{InventoryID: 1, Quantity: 10}

	raw, err := json.Marshal(p)
	require.NoError(t, err)

	assert.Contains(t, string(raw), `"inventory_id":1`)
	assert.Contains(t, string(raw), `"location_name":null`)
	assert.Contains(t, string(raw), `"last_updated":null`)
}
