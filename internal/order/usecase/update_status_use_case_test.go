package usecase

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/shammazp/restaurant-backend/internal/domain"
	apperrors "github.com/shammazp/restaurant-backend/internal/errors"
	"github.com/shammazp/restaurant-backend/internal/order/service"
)

type mockOrderStatusRepository struct {
	FindByIDFunc      func(ctx context.Context, id string) (*domain.Order, error)
	statusUpdates     int
	paymentUpdates    int
	lastStatus        domain.OrderStatus
	lastPaymentStatus domain.PaymentStatus
	lastDeliveredAt   *time.Time
}

func (m *mockOrderStatusRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockOrderStatusRepository) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus, deliveredAt *time.Time) error {
	m.statusUpdates++
	m.lastStatus = status
	m.lastDeliveredAt = deliveredAt
	return nil
}

func (m *mockOrderStatusRepository) UpdatePaymentStatus(ctx context.Context, id string, status domain.PaymentStatus) error {
	m.paymentUpdates++
	m.lastPaymentStatus = status
	return nil
}

type mockStatusEventPublisher struct {
	events []string
}

func (m *mockStatusEventPublisher) PublishStatusChanged(ctx context.Context, order *domain.Order, oldStatus domain.OrderStatus) error {
	m.events = append(m.events, string(oldStatus)+"->"+string(order.Status))
	return nil
}

func orderInStatus(status domain.OrderStatus) *mockOrderStatusRepository {
	return &mockOrderStatusRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.Order, error) {
			return &domain.Order{ID: id, RestaurantID: "rest-1", Status: status, PaymentStatus: domain.PaymentStatusPending}, nil
		},
	}
}

func newTestUpdateStatusUseCase(repo OrderStatusRepository, publisher StatusEventPublisher) *UpdateStatusUseCase {
	return NewUpdateStatusUseCase(repo, service.NewStatusMachine(), publisher, zap.NewNop())
}

func TestUpdateStatus_ValidTransitionPersists(t *testing.T) {
	repo := orderInStatus(domain.OrderStatusPending)
	publisher := &mockStatusEventPublisher{}

	uc := newTestUpdateStatusUseCase(repo, publisher)

	order, err := uc.UpdateStatus(context.Background(), "order-1", "confirmed")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Status != domain.OrderStatusConfirmed {
		t.Errorf("expected confirmed, got %s", order.Status)
	}
	if repo.statusUpdates != 1 {
		t.Errorf("expected 1 status update, got %d", repo.statusUpdates)
	}
	if len(publisher.events) != 1 || publisher.events[0] != "pending->confirmed" {
		t.Errorf("expected status change event, got %v", publisher.events)
	}
}

func TestUpdateStatus_InvalidStatusNotPersisted(t *testing.T) {
	repo := orderInStatus(domain.OrderStatusPending)

	uc := newTestUpdateStatusUseCase(repo, nil)

	_, err := uc.UpdateStatus(context.Background(), "order-1", "shipped")
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if _, ok := apperrors.IsInvalidStatusError(err); !ok {
		t.Errorf("expected InvalidStatusError, got %T", err)
	}
	if repo.statusUpdates != 0 {
		t.Errorf("expected no status update, got %d", repo.statusUpdates)
	}
}

func TestUpdateStatus_TerminalStateRejected(t *testing.T) {
	repo := orderInStatus(domain.OrderStatusDelivered)

	uc := newTestUpdateStatusUseCase(repo, nil)

	_, err := uc.UpdateStatus(context.Background(), "order-1", "pending")
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if _, ok := apperrors.IsInvalidStatusError(err); !ok {
		t.Errorf("expected InvalidStatusError, got %T", err)
	}
	if repo.statusUpdates != 0 {
		t.Errorf("expected no status update, got %d", repo.statusUpdates)
	}
}

func TestUpdateStatus_OrderNotFound(t *testing.T) {
	repo := &mockOrderStatusRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.Order, error) {
			return nil, apperrors.NewNotFoundError("order not found")
		},
	}

	uc := newTestUpdateStatusUseCase(repo, nil)

	_, err := uc.UpdateStatus(context.Background(), "order-1", "confirmed")
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if _, ok := apperrors.IsNotFoundError(err); !ok {
		t.Errorf("expected NotFoundError, got %T", err)
	}
}

func TestUpdateStatus_DeliveredPersistsDeliveryTime(t *testing.T) {
	repo := orderInStatus(domain.OrderStatusOutForDelivery)

	uc := newTestUpdateStatusUseCase(repo, nil)

	order, err := uc.UpdateStatus(context.Background(), "order-1", "delivered")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.ActualDeliveryTime == nil {
		t.Fatalf("expected actual delivery time to be stamped")
	}
	if repo.lastDeliveredAt == nil {
		t.Errorf("expected delivery time passed to repository")
	}
}

func TestUpdatePaymentStatus_Valid(t *testing.T) {
	repo := orderInStatus(domain.OrderStatusConfirmed)

	uc := newTestUpdateStatusUseCase(repo, nil)

	order, err := uc.UpdatePaymentStatus(context.Background(), "order-1", "paid")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.PaymentStatus != domain.PaymentStatusPaid {
		t.Errorf("expected paid, got %s", order.PaymentStatus)
	}
	if repo.paymentUpdates != 1 {
		t.Errorf("expected 1 payment update, got %d", repo.paymentUpdates)
	}
}

func TestUpdatePaymentStatus_InvalidRejected(t *testing.T) {
	repo := orderInStatus(domain.OrderStatusConfirmed)

	uc := newTestUpdateStatusUseCase(repo, nil)

	_, err := uc.UpdatePaymentStatus(context.Background(), "order-1", "chargeback")
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if _, ok := apperrors.IsInvalidPaymentStatusError(err); !ok {
		t.Errorf("expected InvalidPaymentStatusError, got %T", err)
	}
	if repo.paymentUpdates != 0 {
		t.Errorf("expected no payment update, got %d", repo.paymentUpdates)
	}
}

func TestCancel_IsStatusTransition(t *testing.T) {
	repo := orderInStatus(domain.OrderStatusPreparing)

	uc := newTestUpdateStatusUseCase(repo, nil)

	order, err := uc.Cancel(context.Background(), "order-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Status != domain.OrderStatusCancelled {
		t.Errorf("expected cancelled, got %s", order.Status)
	}
	if repo.lastStatus != domain.OrderStatusCancelled {
		t.Errorf("expected cancelled persisted, got %s", repo.lastStatus)
	}
}
