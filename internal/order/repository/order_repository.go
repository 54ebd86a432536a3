package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shammazp/restaurant-backend/internal/domain"
	"github.com/shammazp/restaurant-backend/internal/errors"
)

type MySQLOrderRepository struct {
	db *sql.DB
}

func NewMySQLOrderRepository(db *sql.DB) *MySQLOrderRepository {
	return &MySQLOrderRepository{db: db}
}

// Insert persists the priced snapshot. The lines are stored as a JSON
// document so the captured unit prices can never drift with menu updates.
func (r *MySQLOrderRepository) Insert(ctx context.Context, order *domain.Order) error {
	lines, err := json.Marshal(order.Lines)
	if err != nil {
		return fmt.Errorf("encoding order lines: %w", err)
	}

	query := `
		INSERT INTO Orders (
			id, restaurantId, customerName, customerEmail, customerPhone,
			items, orderType, paymentMethod,
			subtotal, tax, deliveryFee, tip, total,
			status, paymentStatus, createdAt, updatedAt
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.ExecContext(ctx, query,
		order.ID, order.RestaurantID,
		order.Customer.Name, order.Customer.Email, order.Customer.Phone,
		string(lines), string(order.OrderType), string(order.PaymentMethod),
		order.Subtotal.String(), order.Tax.String(), order.DeliveryFee.String(),
		order.Tip.String(), order.Total.String(),
		string(order.Status), string(order.PaymentStatus),
		order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return errors.NewStorageError("inserting order", err)
	}

	return nil
}

func (r *MySQLOrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	query := `
		SELECT id, restaurantId, customerName, customerEmail, customerPhone,
		       items, orderType, paymentMethod,
		       subtotal, tax, deliveryFee, tip, total,
		       status, paymentStatus, actualDeliveryTime, createdAt, updatedAt
		FROM Orders
		WHERE id = ?
	`

	var (
		order                                  domain.Order
		rawLines                               string
		orderType, paymentMethod               string
		status, paymentStatus                  string
		subtotal, tax, deliveryFee, tip, total string
		deliveredAt                            sql.NullTime
	)
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&order.ID, &order.RestaurantID,
		&order.Customer.Name, &order.Customer.Email, &order.Customer.Phone,
		&rawLines, &orderType, &paymentMethod,
		&subtotal, &tax, &deliveryFee, &tip, &total,
		&status, &paymentStatus, &deliveredAt,
		&order.CreatedAt, &order.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order %s not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying order by id: %w", err)
	}

	if err := json.Unmarshal([]byte(rawLines), &order.Lines); err != nil {
		return nil, fmt.Errorf("decoding order lines: %w", err)
	}

	order.OrderType = domain.OrderType(orderType)
	order.PaymentMethod = domain.PaymentMethod(paymentMethod)
	order.Status = domain.OrderStatus(status)
	order.PaymentStatus = domain.PaymentStatus(paymentStatus)
	if deliveredAt.Valid {
		order.ActualDeliveryTime = &deliveredAt.Time
	}

	amounts := []struct {
		raw string
		dst *decimal.Decimal
	}{
		{subtotal, &order.Subtotal},
		{tax, &order.Tax},
		{deliveryFee, &order.DeliveryFee},
		{tip, &order.Tip},
		{total, &order.Total},
	}
	for _, a := range amounts {
		d, err := decimal.NewFromString(a.raw)
		if err != nil {
			return nil, fmt.Errorf("parsing order amount: %w", err)
		}
		*a.dst = d
	}

	return &order, nil
}

// UpdateStatus writes the new fulfillment status, stamping the actual
// delivery time when the machine provides one.
func (r *MySQLOrderRepository) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus, deliveredAt *time.Time) error {
	query := `UPDATE Orders SET status = ?, actualDeliveryTime = COALESCE(?, actualDeliveryTime), updatedAt = NOW() WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query, string(status), deliveredAt, id)
	if err != nil {
		return errors.NewStorageError("updating order status", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}
	if affected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("order %s not found", id))
	}

	return nil
}

func (r *MySQLOrderRepository) UpdatePaymentStatus(ctx context.Context, id string, status domain.PaymentStatus) error {
	query := `UPDATE Orders SET paymentStatus = ?, updatedAt = NOW() WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query, string(status), id)
	if err != nil {
		return errors.NewStorageError("updating payment status", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}
	if affected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("order %s not found", id))
	}

	return nil
}
