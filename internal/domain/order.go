package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderType string

const (
	OrderTypeDineIn   OrderType = "dine-in"
	OrderTypeTakeout  OrderType = "takeout"
	OrderTypeDelivery OrderType = "delivery"
)

func (t OrderType) Valid() bool {
	switch t {
	case OrderTypeDineIn, OrderTypeTakeout, OrderTypeDelivery:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentMethodCash          PaymentMethod = "cash"
	PaymentMethodCard          PaymentMethod = "card"
	PaymentMethodDigitalWallet PaymentMethod = "digital_wallet"
	PaymentMethodOther         PaymentMethod = "other"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodDigitalWallet, PaymentMethodOther:
		return true
	}
	return false
}

type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "pending"
	OrderStatusConfirmed      OrderStatus = "confirmed"
	OrderStatusPreparing      OrderStatus = "preparing"
	OrderStatusReady          OrderStatus = "ready"
	OrderStatusOutForDelivery OrderStatus = "out_for_delivery"
	OrderStatusDelivered      OrderStatus = "delivered"
	OrderStatusCancelled      OrderStatus = "cancelled"
)

// ParseOrderStatus maps a raw status value onto the enumerated set.
func ParseOrderStatus(raw string) (OrderStatus, bool) {
	s := OrderStatus(raw)
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusReady, OrderStatusOutForDelivery, OrderStatusDelivered, OrderStatusCancelled:
		return s, true
	}
	return "", false
}

// Terminal reports whether no further fulfillment transitions are allowed.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// CanTransitionTo reports whether the fulfillment machine accepts a move to
// next. Terminal states accept nothing; every other state may advance to any
// enumerated status, cancellation included. Takeout and dine-in orders skip
// out_for_delivery, so strict chain ordering is not enforced.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s.Terminal() {
		return false
	}
	_, ok := ParseOrderStatus(string(next))
	return ok
}

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

func ParsePaymentStatus(raw string) (PaymentStatus, bool) {
	s := PaymentStatus(raw)
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed, PaymentStatusRefunded:
		return s, true
	}
	return "", false
}

// CartLine is one requested menu item within an order request. It only lives
// for the duration of order creation; pricing turns it into a PricedLine.
type CartLine struct {
	MenuItemID          string
	Quantity            int
	SpecialInstructions string
}

// PricedLine is a cart line with its unit price captured at order time. The
// captured price is immutable once the order is persisted and is never
// recomputed from live menu data.
type PricedLine struct {
	MenuItemID          string          `json:"menuItem"`
	Quantity            int             `json:"quantity"`
	UnitPrice           decimal.Decimal `json:"price"`
	SpecialInstructions string          `json:"specialInstructions,omitempty"`
}

func (l PricedLine) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

type Customer struct {
	Name  string
	Email string
	Phone string
}

type Order struct {
	ID                 string
	RestaurantID       string
	Customer           Customer
	Lines              []PricedLine
	OrderType          OrderType
	PaymentMethod      PaymentMethod
	Subtotal           decimal.Decimal
	Tax                decimal.Decimal
	DeliveryFee        decimal.Decimal
	Tip                decimal.Decimal
	Total              decimal.Decimal
	Status             OrderStatus
	PaymentStatus      PaymentStatus
	ActualDeliveryTime *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
