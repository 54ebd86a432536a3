package domain

import "github.com/shopspring/decimal"

// MenuItem is the read-only pricing input owned by the record store. The
// pricing pipeline never mutates it; it only reads price and availability.
type MenuItem struct {
	ID           string
	RestaurantID string
	Name         string
	Price        decimal.Decimal
	IsAvailable  bool
}
