package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shammazp/restaurant-backend/internal/domain"
	apperrors "github.com/shammazp/restaurant-backend/internal/errors"
	"github.com/shammazp/restaurant-backend/internal/testutil"
)

// Unit Tests

func TestNewMySQLOrderRepository(t *testing.T) {
	db := &sql.DB{}
	repo := NewMySQLOrderRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

// Integration Tests

func testOrder() *domain.Order {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &domain.Order{
		ID:           "order-1",
		RestaurantID: "rest-1",
		Customer: domain.Customer{
			Name:  "Ana Torres",
			Email: "ana@example.com",
			Phone: "+1-555-0101",
		},
		Lines: []domain.PricedLine{
			{MenuItemID: "item-1", Quantity: 2, UnitPrice: decimal.RequireFromString("9.50")},
			{MenuItemID: "item-2", Quantity: 1, UnitPrice: decimal.RequireFromString("6.00"), SpecialInstructions: "no ice"},
		},
		OrderType:     domain.OrderTypeDelivery,
		PaymentMethod: domain.PaymentMethodCard,
		Subtotal:      decimal.RequireFromString("25.00"),
		Tax:           decimal.RequireFromString("2.125"),
		DeliveryFee:   decimal.RequireFromString("5.99"),
		Tip:           decimal.RequireFromString("2.00"),
		Total:         decimal.RequireFromString("35.115"),
		Status:        domain.OrderStatusPending,
		PaymentStatus: domain.PaymentStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestOrderRepository_InsertAndFindByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)
	order := testOrder()

	err := repo.Insert(context.Background(), order)
	require.NoError(t, err)

	found, err := repo.FindByID(context.Background(), "order-1")
	require.NoError(t, err)

	assert.Equal(t, order.ID, found.ID)
	assert.Equal(t, order.RestaurantID, found.RestaurantID)
	assert.Equal(t, "Ana Torres", found.Customer.Name)
	require.Len(t, found.Lines, 2)
	assert.Equal(t, "item-1", found.Lines[0].MenuItemID)
	assert.True(t, found.Lines[0].UnitPrice.Equal(decimal.RequireFromString("9.50")))
	assert.Equal(t, "no ice", found.Lines[1].SpecialInstructions)
	assert.True(t, found.Subtotal.Equal(order.Subtotal))
	assert.True(t, found.Tax.Equal(order.Tax))
	assert.True(t, found.Total.Equal(order.Total))
	assert.Equal(t, domain.OrderStatusPending, found.Status)
	assert.Equal(t, domain.PaymentStatusPending, found.PaymentStatus)
	assert.Nil(t, found.ActualDeliveryTime)
}

func TestOrderRepository_FindByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)

	found, err := repo.FindByID(context.Background(), "missing")
	assert.Nil(t, found)
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestOrderRepository_UpdateStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)
	require.NoError(t, repo.Insert(context.Background(), testOrder()))

	err := repo.UpdateStatus(context.Background(), "order-1", domain.OrderStatusConfirmed, nil)
	require.NoError(t, err)

	found, err := repo.FindByID(context.Background(), "order-1")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusConfirmed, found.Status)
	assert.Nil(t, found.ActualDeliveryTime)
}

func TestOrderRepository_UpdateStatus_StampsDeliveryTime(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)
	require.NoError(t, repo.Insert(context.Background(), testOrder()))

	deliveredAt := time.Date(2025, 6, 1, 13, 30, 0, 0, time.UTC)
	err := repo.UpdateStatus(context.Background(), "order-1", domain.OrderStatusDelivered, &deliveredAt)
	require.NoError(t, err)

	found, err := repo.FindByID(context.Background(), "order-1")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusDelivered, found.Status)
	require.NotNil(t, found.ActualDeliveryTime)
	assert.Equal(t, deliveredAt, found.ActualDeliveryTime.UTC())
}

func TestOrderRepository_UpdateStatus_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)

	err := repo.UpdateStatus(context.Background(), "missing", domain.OrderStatusConfirmed, nil)
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestOrderRepository_UpdatePaymentStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)
	require.NoError(t, repo.Insert(context.Background(), testOrder()))

	err := repo.UpdatePaymentStatus(context.Background(), "order-1", domain.PaymentStatusPaid)
	require.NoError(t, err)

	found, err := repo.FindByID(context.Background(), "order-1")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPaid, found.PaymentStatus)
}
