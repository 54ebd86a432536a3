package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/shammazp/restaurant-backend/internal/domain"
	"github.com/shammazp/restaurant-backend/internal/errors"
)

type MySQLRestaurantRepository struct {
	db *sql.DB
}

func NewMySQLRestaurantRepository(db *sql.DB) *MySQLRestaurantRepository {
	return &MySQLRestaurantRepository{db: db}
}

func (r *MySQLRestaurantRepository) FindByID(ctx context.Context, id string) (*domain.Restaurant, error) {
	query := `
		SELECT id, bizId, name, logo, coverImages, isActive, createdAt, updatedAt
		FROM Restaurants
		WHERE id = ?
	`

	var (
		restaurant domain.Restaurant
		logoJSON   sql.NullString
		coversJSON sql.NullString
	)
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&restaurant.ID, &restaurant.BizID, &restaurant.Name,
		&logoJSON, &coversJSON, &restaurant.IsActive,
		&restaurant.CreatedAt, &restaurant.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("restaurant %s not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying restaurant by id: %w", err)
	}

	if logoJSON.Valid && logoJSON.String != "" {
		var logo domain.AssetDescriptor
		if err := json.Unmarshal([]byte(logoJSON.String), &logo); err != nil {
			return nil, fmt.Errorf("decoding restaurant logo: %w", err)
		}
		restaurant.Logo = &logo
	}

	if coversJSON.Valid && coversJSON.String != "" {
		if err := json.Unmarshal([]byte(coversJSON.String), &restaurant.CoverImages); err != nil {
			return nil, fmt.Errorf("decoding restaurant cover images: %w", err)
		}
	}

	return &restaurant, nil
}

// UpdateLogo replaces the logo descriptor; nil clears it. Callers verify the
// restaurant exists before updating so a zero-row update here is not a 404.
func (r *MySQLRestaurantRepository) UpdateLogo(ctx context.Context, id string, logo *domain.AssetDescriptor) error {
	var logoVal interface{}
	if logo != nil {
		raw, err := json.Marshal(logo)
		if err != nil {
			return fmt.Errorf("encoding restaurant logo: %w", err)
		}
		logoVal = string(raw)
	}

	query := `UPDATE Restaurants SET logo = ?, updatedAt = NOW() WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, logoVal, id); err != nil {
		return fmt.Errorf("updating restaurant logo: %w", err)
	}
	return nil
}

func (r *MySQLRestaurantRepository) UpdateCoverImages(ctx context.Context, id string, covers []domain.AssetDescriptor) error {
	var coversVal interface{}
	if len(covers) > 0 {
		raw, err := json.Marshal(covers)
		if err != nil {
			return fmt.Errorf("encoding restaurant cover images: %w", err)
		}
		coversVal = string(raw)
	}

	query := `UPDATE Restaurants SET coverImages = ?, updatedAt = NOW() WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, coversVal, id); err != nil {
		return fmt.Errorf("updating restaurant cover images: %w", err)
	}
	return nil
}
