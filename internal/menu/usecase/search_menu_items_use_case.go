package usecase

import (
	"context"

	"github.com/shammazp/restaurant-backend/internal/domain"
	"github.com/shammazp/restaurant-backend/internal/dto"
)

type Service interface {
	GetMenuItemsByIDsAndRestaurant(ctx context.Context, ids []string, restaurantID string) (found []domain.MenuItem, notFoundIDs []string, err error)
}

type SearchUseCase struct {
	service Service
}

func NewSearchUseCase(service Service) *SearchUseCase {
	return &SearchUseCase{service: service}
}

func (uc *SearchUseCase) SearchMenuItems(ctx context.Context, req dto.SearchMenuItemsRequest) (*dto.SearchMenuItemsResponse, error) {
	found, notFoundIDs, err := uc.service.GetMenuItemsByIDsAndRestaurant(ctx, req.MenuItems, req.Restaurant)
	if err != nil {
		return nil, err
	}

	items := make([]dto.MenuItemDTO, 0, len(found))
	for _, item := range found {
		items = append(items, dto.MenuItemDTO{
			ID:           item.ID,
			RestaurantID: item.RestaurantID,
			Name:         item.Name,
			Price:        item.Price.InexactFloat64(),
			IsAvailable:  item.IsAvailable,
		})
	}

	if notFoundIDs == nil {
		notFoundIDs = []string{}
	}

	return &dto.SearchMenuItemsResponse{
		MenuItems: items,
		NotFound:  notFoundIDs,
	}, nil
}
