package dto

type SearchMenuItemsRequest struct {
	Restaurant string   `json:"restaurant"`
	MenuItems  []string `json:"menuItems"`
}

type SearchMenuItemsResponse struct {
	MenuItems []MenuItemDTO `json:"menuItems"`
	NotFound  []string      `json:"notFound"`
}

type MenuItemDTO struct {
	ID           string  `json:"id"`
	RestaurantID string  `json:"restaurant"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	IsAvailable  bool    `json:"isAvailable"`
}
