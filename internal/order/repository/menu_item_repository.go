package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/shammazp/restaurant-backend/internal/domain"
	"github.com/shammazp/restaurant-backend/internal/errors"
)

type MySQLMenuItemRepository struct {
	db *sql.DB
}

func NewMySQLMenuItemRepository(db *sql.DB) *MySQLMenuItemRepository {
	return &MySQLMenuItemRepository{db: db}
}

// FindByID reads the live menu row. Pricing always goes through here rather
// than any cache because availability gates whether a line may be ordered.
func (r *MySQLMenuItemRepository) FindByID(ctx context.Context, id string) (*domain.MenuItem, error) {
	query := `
		SELECT id, restaurantId, name, price, isAvailable
		FROM MenuItems
		WHERE id = ?
	`

	var (
		item     domain.MenuItem
		rawPrice string
	)
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&item.ID, &item.RestaurantID, &item.Name, &rawPrice, &item.IsAvailable,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("menu item %s not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying menu item by id: %w", err)
	}

	item.Price, err = decimal.NewFromString(rawPrice)
	if err != nil {
		return nil, fmt.Errorf("parsing menu item price: %w", err)
	}

	return &item, nil
}
