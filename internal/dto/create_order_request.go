package dto

type CustomerDTO struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type CartLineDTO struct {
	MenuItem            string `json:"menuItem"`
	Quantity            int    `json:"quantity"`
	SpecialInstructions string `json:"specialInstructions,omitempty"`
}

type CreateOrderRequest struct {
	Customer      CustomerDTO   `json:"customer"`
	Restaurant    string        `json:"restaurant"`
	Items         []CartLineDTO `json:"items"`
	OrderType     string        `json:"orderType"`
	PaymentMethod string        `json:"paymentMethod"`
	Tip           *float64      `json:"tip,omitempty"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"paymentStatus"`
}
