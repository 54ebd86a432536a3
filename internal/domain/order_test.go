package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseOrderStatus(t *testing.T) {
	for _, raw := range []string{"pending", "confirmed", "preparing", "ready", "out_for_delivery", "delivered", "cancelled"} {
		s, ok := ParseOrderStatus(raw)
		assert.True(t, ok, raw)
		assert.Equal(t, OrderStatus(raw), s)
	}

	_, ok := ParseOrderStatus("shipped")
	assert.False(t, ok)

	_, ok = ParseOrderStatus("")
	assert.False(t, ok)
}

func TestOrderStatus_Terminal(t *testing.T) {
	assert.True(t, OrderStatusDelivered.Terminal())
	assert.True(t, OrderStatusCancelled.Terminal())
	assert.False(t, OrderStatusPending.Terminal())
	assert.False(t, OrderStatusOutForDelivery.Terminal())
}

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, OrderStatusPending.CanTransitionTo(OrderStatusCancelled))
	assert.True(t, OrderStatusPending.CanTransitionTo(OrderStatusConfirmed))
	assert.True(t, OrderStatusReady.CanTransitionTo(OrderStatusDelivered))

	assert.False(t, OrderStatusDelivered.CanTransitionTo(OrderStatusPending))
	assert.False(t, OrderStatusDelivered.CanTransitionTo(OrderStatusCancelled))
	assert.False(t, OrderStatusCancelled.CanTransitionTo(OrderStatusConfirmed))
}

func TestOrderType_Valid(t *testing.T) {
	assert.True(t, OrderTypeDineIn.Valid())
	assert.True(t, OrderTypeTakeout.Valid())
	assert.True(t, OrderTypeDelivery.Valid())
	assert.False(t, OrderType("drive-thru").Valid())
}

func TestPaymentMethod_Valid(t *testing.T) {
	assert.True(t, PaymentMethodCash.Valid())
	assert.True(t, PaymentMethodDigitalWallet.Valid())
	assert.False(t, PaymentMethod("check").Valid())
}

func TestParsePaymentStatus(t *testing.T) {
	s, ok := ParsePaymentStatus("refunded")
	assert.True(t, ok)
	assert.Equal(t, PaymentStatusRefunded, s)

	_, ok = ParsePaymentStatus("chargeback")
	assert.False(t, ok)
}

func TestPricedLine_LineTotal(t *testing.T) {
	line := PricedLine{
		MenuItemID: "item-1",
		Quantity:   3,
		UnitPrice:  decimal.RequireFromString("4.25"),
	}

	assert.True(t, line.LineTotal().Equal(decimal.RequireFromString("12.75")))
}

func TestPricedLine_LineTotal_FrozenPrice(t *testing.T) {
	// The stored unit price reproduces the same total regardless of what the
	// live menu price has since become.
	line := PricedLine{MenuItemID: "item-1", Quantity: 2, UnitPrice: decimal.RequireFromString("10.00")}

	first := line.LineTotal()
	second := line.LineTotal()

	assert.True(t, first.Equal(second))
	assert.True(t, first.Equal(decimal.RequireFromString("20.00")))
}
