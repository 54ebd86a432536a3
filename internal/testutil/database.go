package testutil

import (
	"database/sql"
	"fmt"
	"testing"

	_ "github.com/go-sql-driver/mysql"
)

// SetupTestDB configura una base de datos de prueba
// Espera que exista una BD MySQL en localhost:3306 llamada 'restaurant_directory_test'
func SetupTestDB(t *testing.T) *sql.DB {
	dsn := "root:@tcp(localhost:3306)/restaurant_directory_test"
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	// Verify connection
	err = db.Ping()
	if err != nil {
		t.Skipf("test database not available: %v", err)
	}

	return db
}

// CleanupTestDB limpia la BD de prueba
func CleanupTestDB(t *testing.T, db *sql.DB) {
	if db == nil {
		return
	}

	tables := []string{"Orders", "MenuItems", "Restaurants"}
	for _, table := range tables {
		_, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}

	db.Close()
}

// SetupTestTables crea las tablas necesarias para los tests
func SetupTestTables(t *testing.T, db *sql.DB) {
	createRestaurantsTable := `
	CREATE TABLE IF NOT EXISTS Restaurants (
		id VARCHAR(36) NOT NULL PRIMARY KEY,
		bizId VARCHAR(100) NOT NULL UNIQUE,
		name VARCHAR(255) NOT NULL,
		logo JSON,
		coverImages JSON,
		isActive TINYINT(1) NOT NULL DEFAULT 1,
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updatedAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		INDEX idx_biz (bizId)
	)`

	createMenuItemsTable := `
	CREATE TABLE IF NOT EXISTS MenuItems (
		id VARCHAR(36) NOT NULL PRIMARY KEY,
		restaurantId VARCHAR(36) NOT NULL,
		name VARCHAR(255) NOT NULL,
		price DECIMAL(10,3) NOT NULL,
		isAvailable TINYINT(1) NOT NULL DEFAULT 1,
		INDEX idx_restaurant (restaurantId)
	)`

	createOrdersTable := `
	CREATE TABLE IF NOT EXISTS Orders (
		id VARCHAR(36) NOT NULL PRIMARY KEY,
		restaurantId VARCHAR(36) NOT NULL,
		customerName VARCHAR(200) NOT NULL,
		customerEmail VARCHAR(150) NOT NULL,
		customerPhone VARCHAR(30) NOT NULL,
		items JSON NOT NULL,
		orderType VARCHAR(20) NOT NULL,
		paymentMethod VARCHAR(20) NOT NULL,
		subtotal DECIMAL(10,3) NOT NULL,
		tax DECIMAL(10,3) NOT NULL,
		deliveryFee DECIMAL(10,3) NOT NULL,
		tip DECIMAL(10,3) NOT NULL,
		total DECIMAL(10,3) NOT NULL,
		status VARCHAR(30) NOT NULL DEFAULT 'pending',
		paymentStatus VARCHAR(30) NOT NULL DEFAULT 'pending',
		actualDeliveryTime DATETIME,
		createdAt DATETIME NOT NULL,
		updatedAt DATETIME NOT NULL,
		INDEX idx_restaurant (restaurantId),
		INDEX idx_status (status)
	)`

	tables := []struct {
		name  string
		query string
	}{
		{"Restaurants", createRestaurantsTable},
		{"MenuItems", createMenuItemsTable},
		{"Orders", createOrdersTable},
	}

	for _, tbl := range tables {
		_, err := db.Exec(tbl.query)
		if err != nil {
			t.Logf("failed to create table %s: %v", tbl.name, err)
		}
	}
}
