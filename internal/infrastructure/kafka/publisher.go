package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/shammazp/restaurant-backend/internal/config"
	"github.com/shammazp/restaurant-backend/internal/domain"
)

type OrderCreatedEvent struct {
	Type         string    `json:"type"`
	OrderID      string    `json:"orderId"`
	RestaurantID string    `json:"restaurantId"`
	OrderType    string    `json:"orderType"`
	Total        string    `json:"total"`
	CreatedAt    time.Time `json:"createdAt"`
}

type OrderStatusChangedEvent struct {
	Type         string    `json:"type"`
	OrderID      string    `json:"orderId"`
	RestaurantID string    `json:"restaurantId"`
	OldStatus    string    `json:"oldStatus"`
	NewStatus    string    `json:"newStatus"`
	ChangedAt    time.Time `json:"changedAt"`
}

func NewWriter(cfg config.KafkaConfig) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.OrderTopic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
	}
}

// OrderEventPublisher fans order lifecycle events out to Kafka for downstream
// consumers (analytics, dashboards). Publishing is best-effort; callers log
// failures and never fail the originating request on them.
type OrderEventPublisher struct {
	writer *kafka.Writer
}

func NewOrderEventPublisher(writer *kafka.Writer) *OrderEventPublisher {
	return &OrderEventPublisher{writer: writer}
}

func (p *OrderEventPublisher) PublishOrderCreated(ctx context.Context, order *domain.Order) error {
	event := OrderCreatedEvent{
		Type:         "order.created",
		OrderID:      order.ID,
		RestaurantID: order.RestaurantID,
		OrderType:    string(order.OrderType),
		Total:        order.Total.String(),
		CreatedAt:    order.CreatedAt,
	}
	return p.publish(ctx, order.ID, event)
}

func (p *OrderEventPublisher) PublishStatusChanged(ctx context.Context, order *domain.Order, oldStatus domain.OrderStatus) error {
	event := OrderStatusChangedEvent{
		Type:         "order.status_changed",
		OrderID:      order.ID,
		RestaurantID: order.RestaurantID,
		OldStatus:    string(oldStatus),
		NewStatus:    string(order.Status),
		ChangedAt:    order.UpdatedAt,
	}
	return p.publish(ctx, order.ID, event)
}

func (p *OrderEventPublisher) publish(ctx context.Context, key string, event interface{}) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: payload,
	})
}
