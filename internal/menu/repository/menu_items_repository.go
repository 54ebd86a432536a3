package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/shammazp/restaurant-backend/internal/domain"
)

type MySQLMenuItemsRepository struct {
	db *sql.DB
}

func NewMySQLMenuItemsRepository(db *sql.DB) *MySQLMenuItemsRepository {
	return &MySQLMenuItemsRepository{db: db}
}

// FindByIDsAndRestaurant returns the menu rows matching the requested ids
// that belong to the restaurant. Ids from other restaurants simply do not
// match; the caller reports them as not found.
func (r *MySQLMenuItemsRepository) FindByIDsAndRestaurant(ctx context.Context, ids []string, restaurantID string) ([]domain.MenuItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]interface{}, 0, len(ids)+1)
	for i, id := range ids {
		placeholders[i] = "?"
		args = append(args, id)
	}
	args = append(args, restaurantID)

	query := fmt.Sprintf(`
		SELECT id, restaurantId, name, price, isAvailable
		FROM MenuItems
		WHERE id IN (%s)
		  AND restaurantId = ?`,
		strings.Join(placeholders, ", "),
	)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying menu items: %w", err)
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		var (
			item     domain.MenuItem
			rawPrice string
		)
		err := rows.Scan(&item.ID, &item.RestaurantID, &item.Name, &rawPrice, &item.IsAvailable)
		if err != nil {
			return nil, fmt.Errorf("scanning menu item row: %w", err)
		}

		item.Price, err = decimal.NewFromString(rawPrice)
		if err != nil {
			return nil, fmt.Errorf("parsing price for menu item %s: %w", item.ID, err)
		}

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating menu item rows: %w", err)
	}

	return items, nil
}
