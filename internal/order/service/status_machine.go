package service

import (
	"fmt"
	"time"

	"github.com/shammazp/restaurant-backend/internal/domain"
	apperrors "github.com/shammazp/restaurant-backend/internal/errors"
)

// StatusMachine owns every post-creation lifecycle mutation of an order.
// Fulfillment status and payment status are independent fields with separate
// enumerated validation.
type StatusMachine struct {
	now func() time.Time
}

func NewStatusMachine() *StatusMachine {
	return &StatusMachine{now: time.Now}
}

// Apply moves the order to the requested status. Entering delivered stamps
// the actual delivery time; no other transition has side effects.
func (m *StatusMachine) Apply(order *domain.Order, rawStatus string) error {
	next, ok := domain.ParseOrderStatus(rawStatus)
	if !ok {
		return apperrors.NewInvalidStatusError(
			fmt.Sprintf("invalid status %q", rawStatus), rawStatus)
	}

	if !order.Status.CanTransitionTo(next) {
		return apperrors.NewInvalidStatusError(
			fmt.Sprintf("cannot transition from %s to %s", order.Status, next), rawStatus)
	}

	order.Status = next
	order.UpdatedAt = m.now()
	if next == domain.OrderStatusDelivered {
		deliveredAt := order.UpdatedAt
		order.ActualDeliveryTime = &deliveredAt
	}

	return nil
}

// ApplyPayment sets the payment status, which is not coupled to the
// fulfillment machine.
func (m *StatusMachine) ApplyPayment(order *domain.Order, rawStatus string) error {
	next, ok := domain.ParsePaymentStatus(rawStatus)
	if !ok {
		return apperrors.NewInvalidPaymentStatusError(
			fmt.Sprintf("invalid payment status %q", rawStatus), rawStatus)
	}

	order.PaymentStatus = next
	order.UpdatedAt = m.now()
	return nil
}
