package dto

import (
	"time"

	"github.com/shammazp/restaurant-backend/internal/domain"
)

type PricedLineDTO struct {
	MenuItem            string  `json:"menuItem"`
	Quantity            int     `json:"quantity"`
	Price               float64 `json:"price"`
	SpecialInstructions string  `json:"specialInstructions,omitempty"`
}

type OrderResponse struct {
	ID                 string          `json:"id"`
	Restaurant         string          `json:"restaurant"`
	Customer           CustomerDTO     `json:"customer"`
	Items              []PricedLineDTO `json:"items"`
	OrderType          string          `json:"orderType"`
	PaymentMethod      string          `json:"paymentMethod"`
	Subtotal           float64         `json:"subtotal"`
	Tax                float64         `json:"tax"`
	DeliveryFee        float64         `json:"deliveryFee"`
	Tip                float64         `json:"tip"`
	Total              float64         `json:"total"`
	Status             string          `json:"status"`
	PaymentStatus      string          `json:"paymentStatus"`
	ActualDeliveryTime *time.Time      `json:"actualDeliveryTime,omitempty"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}

// NewOrderResponse converts a priced order into its wire shape. Money crosses
// the boundary as float64; all arithmetic already happened in decimals.
func NewOrderResponse(o *domain.Order) OrderResponse {
	items := make([]PricedLineDTO, len(o.Lines))
	for i, l := range o.Lines {
		items[i] = PricedLineDTO{
			MenuItem:            l.MenuItemID,
			Quantity:            l.Quantity,
			Price:               l.UnitPrice.InexactFloat64(),
			SpecialInstructions: l.SpecialInstructions,
		}
	}

	return OrderResponse{
		ID:                 o.ID,
		Restaurant:         o.RestaurantID,
		Customer:           CustomerDTO{Name: o.Customer.Name, Email: o.Customer.Email, Phone: o.Customer.Phone},
		Items:              items,
		OrderType:          string(o.OrderType),
		PaymentMethod:      string(o.PaymentMethod),
		Subtotal:           o.Subtotal.InexactFloat64(),
		Tax:                o.Tax.InexactFloat64(),
		DeliveryFee:        o.DeliveryFee.InexactFloat64(),
		Tip:                o.Tip.InexactFloat64(),
		Total:              o.Total.InexactFloat64(),
		Status:             string(o.Status),
		PaymentStatus:      string(o.PaymentStatus),
		ActualDeliveryTime: o.ActualDeliveryTime,
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
	}
}
