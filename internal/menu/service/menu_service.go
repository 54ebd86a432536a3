package service

import (
	"context"

	"github.com/shammazp/restaurant-backend/internal/domain"
)

type Repository interface {
	FindByIDsAndRestaurant(ctx context.Context, ids []string, restaurantID string) ([]domain.MenuItem, error)
}

type MenuService struct {
	repo Repository
}

func NewService(repo Repository) *MenuService {
	return &MenuService{repo: repo}
}

// GetMenuItemsByIDsAndRestaurant splits the requested ids into found rows and
// the ids with no matching row. Not-found ids keep their request order.
func (s *MenuService) GetMenuItemsByIDsAndRestaurant(ctx context.Context, ids []string, restaurantID string) ([]domain.MenuItem, []string, error) {
	found, err := s.repo.FindByIDsAndRestaurant(ctx, ids, restaurantID)
	if err != nil {
		return nil, nil, err
	}

	foundSet := make(map[string]struct{}, len(found))
	for _, item := range found {
		foundSet[item.ID] = struct{}{}
	}

	var notFoundIDs []string
	for _, id := range ids {
		if _, ok := foundSet[id]; !ok {
			notFoundIDs = append(notFoundIDs, id)
		}
	}

	return found, notFoundIDs, nil
}
