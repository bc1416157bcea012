// Seeds the grocery inventory database with demonstration data. Applies
// the schema first, then populates every table, including the auxiliary
// ones the API never reads (categories, customers, stock_transfers,
// wastage_records, sales_aggregates, forecasting_results, inventory_logs).
package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"grocery-inventory-api/config"
	"grocery-inventory-api/internal/store"
	"grocery-inventory-api/migrations"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

func main() {
	cfg := config.Load()

	st, err := store.NewStore(cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer st.Close()

	db := st.GetDB()
	db.MustExec(migrations.Schema)
	log.Println("Schema applied")

	regionIDs := seedRegions(db)
	locationIDs := seedLocations(db, regionIDs)
	categoryIDs := seedCategories(db)
	supplierIDs := seedSuppliers(db)
	productIDs := seedProducts(db, categoryIDs, supplierIDs)
	seedInventory(db, locationIDs, productIDs)
	customerIDs := seedCustomers(db)
	seedSales(db, locationIDs, productIDs, customerIDs)
	seedOrders(db, supplierIDs, locationIDs)
	seedStockTransfers(db, locationIDs, productIDs)
	seedWastageRecords(db, locationIDs, productIDs)
	seedSalesAggregates(db, locationIDs, productIDs)
	seedForecastingResults(db, locationIDs, productIDs)
	seedInventoryLogs(db, locationIDs, productIDs)

	log.Println("Seeding complete")
}

func seedRegions(db *sqlx.DB) []int64 {
	ids := make([]int64, 0, len(regionNames))
	for _, name := range regionNames {
		var id int64
		mustGet(db, &id, "INSERT INTO regions (name) VALUES ($1) RETURNING region_id", name)
		ids = append(ids, id)
	}
	log.Printf("Seeded %d regions", len(ids))
	return ids
}

func seedLocations(db *sqlx.DB, regionIDs []int64) []int64 {
	ids := make([]int64, 0, len(cityNames))
	for _, city := range cityNames {
		var id int64
		mustGet(db, &id,
			`INSERT INTO locations (location_name, region_id, manager_id, manager_name)
			 VALUES ($1, $2, $3, $4) RETURNING location_id`,
			city+" Supermarket",
			pick(regionIDs),
			1000+rand.Intn(9000),
			personName(managerFirstNames, managerLastNames))
		ids = append(ids, id)
	}
	log.Printf("Seeded %d locations", len(ids))
	return ids
}

func seedCategories(db *sqlx.DB) []int64 {
	ids := make([]int64, 0, len(categoryNames))
	for _, name := range categoryNames {
		var id int64
		mustGet(db, &id, "INSERT INTO categories (name) VALUES ($1) RETURNING category_id", name)
		ids = append(ids, id)
	}
	log.Printf("Seeded %d categories", len(ids))
	return ids
}

func seedSuppliers(db *sqlx.DB) []int64 {
	ids := make([]int64, 0, len(supplierNames))
	for _, name := range supplierNames {
		var id int64
		mustGet(db, &id,
			"INSERT INTO suppliers (name, contact_info) VALUES ($1, $2) RETURNING supplier_id",
			name, phoneNumber())
		ids = append(ids, id)
	}
	log.Printf("Seeded %d suppliers", len(ids))
	return ids
}

func seedProducts(db *sqlx.DB, categoryIDs, supplierIDs []int64) []int64 {
	ids := make([]int64, 0, len(productNames))
	for _, name := range productNames {
		var id int64
		mustGet(db, &id,
			`INSERT INTO products (name, category_id, supplier_id, price, shelf_life_days, reorder_point)
			 VALUES ($1, $2, $3, $4, $5, $6) RETURNING product_id`,
			name,
			pick(categoryIDs),
			pick(supplierIDs),
			randomPrice(1, 100),
			3+rand.Intn(28),
			5+rand.Intn(16))
		ids = append(ids, id)
	}
	log.Printf("Seeded %d products", len(ids))
	return ids
}

func seedInventory(db *sqlx.DB, locationIDs, productIDs []int64) {
	count := 0
	for _, locationID := range locationIDs {
		for _, productID := range productIDs {
			db.MustExec(
				`INSERT INTO inventory (location_id, product_id, quantity, last_updated)
				 VALUES ($1, $2, $3, $4)`,
				locationID, productID, rand.Intn(500), pastTime(30))
			count++
		}
	}
	log.Printf("Seeded %d inventory rows", count)
}

func seedCustomers(db *sqlx.DB) []int64 {
	ids := make([]int64, 0, 50)
	for i := 0; i < 50; i++ {
		var id int64
		mustGet(db, &id,
			"INSERT INTO customers (name, loyalty_id, contact_info) VALUES ($1, $2, $3) RETURNING customer_id",
			personName(customerFirstNames, customerLastNames),
			uuid.New().String(),
			phoneNumber())
		ids = append(ids, id)
	}
	log.Printf("Seeded %d customers", len(ids))
	return ids
}

func seedSales(db *sqlx.DB, locationIDs, productIDs, customerIDs []int64) {
	for i := 0; i < 5000; i++ {
		quantity := 1 + rand.Intn(10)
		db.MustExec(
			`INSERT INTO sales (location_id, product_id, customer_id, quantity, total_price, timestamp)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			pick(locationIDs), pick(productIDs), pick(customerIDs),
			quantity,
			randomPrice(1, 50).Mul(decimal.NewFromInt(int64(quantity))).Round(2),
			pastTime(365))
	}
	log.Println("Seeded 5000 sales")
}

func seedOrders(db *sqlx.DB, supplierIDs, locationIDs []int64) {
	for i := 0; i < 200; i++ {
		db.MustExec(
			`INSERT INTO orders (supplier_id, location_id, status, created_at)
			 VALUES ($1, $2, $3, $4)`,
			pick(supplierIDs), pick(locationIDs),
			orderStatuses[rand.Intn(len(orderStatuses))],
			pastTime(90))
	}
	log.Println("Seeded 200 orders")
}

func seedStockTransfers(db *sqlx.DB, locationIDs, productIDs []int64) {
	for i := 0; i < 100; i++ {
		db.MustExec(
			`INSERT INTO stock_transfers (from_location, to_location, product_id, quantity, timestamp)
			 VALUES ($1, $2, $3, $4, $5)`,
			pick(locationIDs), pick(locationIDs), pick(productIDs),
			1+rand.Intn(100), pastTime(90))
	}
	log.Println("Seeded 100 stock transfers")
}

func seedWastageRecords(db *sqlx.DB, locationIDs, productIDs []int64) {
	for i := 0; i < 200; i++ {
		db.MustExec(
			`INSERT INTO wastage_records (location_id, product_id, quantity, reason, timestamp)
			 VALUES ($1, $2, $3, $4, $5)`,
			pick(locationIDs), pick(productIDs),
			1+rand.Intn(20),
			wastageReasons[rand.Intn(len(wastageReasons))],
			pastTime(180))
	}
	log.Println("Seeded 200 wastage records")
}

func seedSalesAggregates(db *sqlx.DB, locationIDs, productIDs []int64) {
	for i := 0; i < 300; i++ {
		daily := randomPrice(10, 500)
		db.MustExec(
			`INSERT INTO sales_aggregates (location_id, product_id, daily_sales, weekly_sales, monthly_sales)
			 VALUES ($1, $2, $3, $4, $5)`,
			pick(locationIDs), pick(productIDs),
			daily,
			daily.Mul(decimal.NewFromInt(7)).Round(2),
			daily.Mul(decimal.NewFromInt(30)).Round(2))
	}
	log.Println("Seeded 300 sales aggregates")
}

func seedForecastingResults(db *sqlx.DB, locationIDs, productIDs []int64) {
	for i := 0; i < 300; i++ {
		db.MustExec(
			`INSERT INTO forecasting_results (location_id, product_id, predicted_demand, confidence_level, timestamp)
			 VALUES ($1, $2, $3, $4, $5)`,
			pick(locationIDs), pick(productIDs),
			randomPrice(10, 1000),
			randomPrice(50, 99),
			pastTime(30))
	}
	log.Println("Seeded 300 forecasting results")
}

func seedInventoryLogs(db *sqlx.DB, locationIDs, productIDs []int64) {
	for i := 0; i < 500; i++ {
		db.MustExec(
			`INSERT INTO inventory_logs (location_id, product_id, quantity_change, reason, timestamp)
			 VALUES ($1, $2, $3, $4, $5)`,
			pick(locationIDs), pick(productIDs),
			rand.Intn(101)-50,
			inventoryLogReasons[rand.Intn(len(inventoryLogReasons))],
			pastTime(180))
	}
	log.Println("Seeded 500 inventory logs")
}

func mustGet(db *sqlx.DB, dest *int64, query string, args ...interface{}) {
	if err := db.Get(dest, query, args...); err != nil {
		log.Fatalf("Seed insert failed: %v", err)
	}
}

func pick(ids []int64) int64 {
	return ids[rand.Intn(len(ids))]
}

func personName(first, last []string) string {
	return first[rand.Intn(len(first))] + " " + last[rand.Intn(len(last))]
}

func phoneNumber() string {
	return fmt.Sprintf("(%03d) %03d-%04d", 200+rand.Intn(800), rand.Intn(1000), rand.Intn(10000))
}

func randomPrice(min, max int) decimal.Decimal {
	return decimal.NewFromFloat(float64(min) + rand.Float64()*float64(max-min)).Round(2)
}

func pastTime(maxDaysBack int) time.Time {
	back := time.Duration(rand.Intn(maxDaysBack*24*60)) * time.Minute
	return time.Now().Add(-back)
}
