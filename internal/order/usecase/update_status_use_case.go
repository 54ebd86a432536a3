package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/shammazp/restaurant-backend/internal/domain"
	"github.com/shammazp/restaurant-backend/internal/order/service"
)

type OrderStatusRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus, deliveredAt *time.Time) error
	UpdatePaymentStatus(ctx context.Context, id string, status domain.PaymentStatus) error
}

type StatusEventPublisher interface {
	PublishStatusChanged(ctx context.Context, order *domain.Order, oldStatus domain.OrderStatus) error
}

// UpdateStatusUseCase drives every post-creation order mutation through the
// status machine. Orders are never hard-deleted; cancellation is just one
// more transition.
type UpdateStatusUseCase struct {
	orderRepo OrderStatusRepository
	machine   *service.StatusMachine
	publisher StatusEventPublisher
	logger    *zap.Logger
}

func NewUpdateStatusUseCase(
	orderRepo OrderStatusRepository,
	machine *service.StatusMachine,
	publisher StatusEventPublisher,
	logger *zap.Logger,
) *UpdateStatusUseCase {
	return &UpdateStatusUseCase{
		orderRepo: orderRepo,
		machine:   machine,
		publisher: publisher,
		logger:    logger,
	}
}

func (uc *UpdateStatusUseCase) UpdateStatus(ctx context.Context, orderID string, rawStatus string) (*domain.Order, error) {
	order, err := uc.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	oldStatus := order.Status
	if err := uc.machine.Apply(order, rawStatus); err != nil {
		return nil, err
	}

	var deliveredAt *time.Time
	if order.Status == domain.OrderStatusDelivered {
		deliveredAt = order.ActualDeliveryTime
	}

	if err := uc.orderRepo.UpdateStatus(ctx, orderID, order.Status, deliveredAt); err != nil {
		return nil, err
	}

	uc.logger.Info("order status updated",
		zap.String("orderId", orderID),
		zap.String("from", string(oldStatus)),
		zap.String("to", string(order.Status)))

	if uc.publisher != nil {
		if err := uc.publisher.PublishStatusChanged(ctx, order, oldStatus); err != nil {
			uc.logger.Warn("status changed event publish failed", zap.String("orderId", orderID), zap.Error(err))
		}
	}

	return order, nil
}

func (uc *UpdateStatusUseCase) UpdatePaymentStatus(ctx context.Context, orderID string, rawStatus string) (*domain.Order, error) {
	order, err := uc.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := uc.machine.ApplyPayment(order, rawStatus); err != nil {
		return nil, err
	}

	if err := uc.orderRepo.UpdatePaymentStatus(ctx, orderID, order.PaymentStatus); err != nil {
		return nil, err
	}

	uc.logger.Info("payment status updated",
		zap.String("orderId", orderID),
		zap.String("paymentStatus", string(order.PaymentStatus)))

	return order, nil
}

// Cancel is the delete surface of orders: a status transition, not removal.
func (uc *UpdateStatusUseCase) Cancel(ctx context.Context, orderID string) (*domain.Order, error) {
	return uc.UpdateStatus(ctx, orderID, string(domain.OrderStatusCancelled))
}
