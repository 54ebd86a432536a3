package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/shammazp/restaurant-backend/internal/domain"
	"github.com/shammazp/restaurant-backend/internal/dto"
	apperrors "github.com/shammazp/restaurant-backend/internal/errors"
	"github.com/shammazp/restaurant-backend/internal/order/service"
)

type MenuItemRepository interface {
	FindByID(ctx context.Context, id string) (*domain.MenuItem, error)
}

type OrderRepository interface {
	Insert(ctx context.Context, order *domain.Order) error
}

type RestaurantRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Restaurant, error)
}

type RestaurantCache interface {
	Get(ctx context.Context, id string) (*domain.Restaurant, error)
	Set(ctx context.Context, r *domain.Restaurant) error
}

type EventPublisher interface {
	PublishOrderCreated(ctx context.Context, order *domain.Order) error
}

// CreateOrderUseCase runs the order-pricing pipeline: validate every cart
// line against live menu data, recompute authoritative prices, and persist
// one immutable priced snapshot. The whole cart succeeds or nothing is
// written.
type CreateOrderUseCase struct {
	menuItemRepo   MenuItemRepository
	orderRepo      OrderRepository
	restaurantRepo RestaurantRepository
	cache          RestaurantCache
	publisher      EventPublisher
	pricing        *service.PricingService
	logger         *zap.Logger
}

func NewCreateOrderUseCase(
	menuItemRepo MenuItemRepository,
	orderRepo OrderRepository,
	restaurantRepo RestaurantRepository,
	cache RestaurantCache,
	publisher EventPublisher,
	pricing *service.PricingService,
	logger *zap.Logger,
) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		menuItemRepo:   menuItemRepo,
		orderRepo:      orderRepo,
		restaurantRepo: restaurantRepo,
		cache:          cache,
		publisher:      publisher,
		pricing:        pricing,
		logger:         logger,
	}
}

func (uc *CreateOrderUseCase) Create(ctx context.Context, req dto.CreateOrderRequest) (*domain.Order, error) {
	uc.logger.Info("order creation started",
		zap.String("restaurantId", req.Restaurant),
		zap.Int("itemCount", len(req.Items)))

	if _, err := uc.lookupRestaurant(ctx, req.Restaurant); err != nil {
		return nil, err
	}

	lines, err := uc.priceCartLines(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	tip := decimal.Zero
	if req.Tip != nil {
		tip = decimal.NewFromFloat(*req.Tip)
	}

	breakdown := uc.pricing.Price(lines, domain.OrderType(req.OrderType), tip)

	now := time.Now().UTC()
	order := &domain.Order{
		ID:           uuid.NewString(),
		RestaurantID: req.Restaurant,
		Customer: domain.Customer{
			Name:  req.Customer.Name,
			Email: req.Customer.Email,
			Phone: req.Customer.Phone,
		},
		Lines:         lines,
		OrderType:     domain.OrderType(req.OrderType),
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
		Subtotal:      breakdown.Subtotal,
		Tax:           breakdown.Tax,
		DeliveryFee:   breakdown.DeliveryFee,
		Tip:           breakdown.Tip,
		Total:         breakdown.Total,
		Status:        domain.OrderStatusPending,
		PaymentStatus: domain.PaymentStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := uc.orderRepo.Insert(ctx, order); err != nil {
		uc.logger.Error("order insert failed", zap.String("orderId", order.ID), zap.Error(err))
		return nil, err
	}

	uc.logger.Info("order created",
		zap.String("orderId", order.ID),
		zap.String("restaurantId", order.RestaurantID),
		zap.String("total", order.Total.String()))

	if uc.publisher != nil {
		if err := uc.publisher.PublishOrderCreated(ctx, order); err != nil {
			uc.logger.Warn("order created event publish failed", zap.String("orderId", order.ID), zap.Error(err))
		}
	}

	return order, nil
}

// priceCartLines validates each line against the live menu row and captures
// the unit price in effect right now. Validation is all-or-nothing across the
// cart: the first missing or unavailable item fails the whole order.
func (uc *CreateOrderUseCase) priceCartLines(ctx context.Context, items []dto.CartLineDTO) ([]domain.PricedLine, error) {
	lines := make([]domain.PricedLine, 0, len(items))
	for _, item := range items {
		menuItem, err := uc.menuItemRepo.FindByID(ctx, item.MenuItem)
		if err != nil {
			return nil, err
		}

		if !menuItem.IsAvailable {
			return nil, apperrors.NewItemUnavailableError(menuItem.Name)
		}

		lines = append(lines, domain.PricedLine{
			MenuItemID:          menuItem.ID,
			Quantity:            item.Quantity,
			UnitPrice:           menuItem.Price,
			SpecialInstructions: item.SpecialInstructions,
		})
	}
	return lines, nil
}

func (uc *CreateOrderUseCase) lookupRestaurant(ctx context.Context, id string) (*domain.Restaurant, error) {
	if uc.cache != nil {
		cached, err := uc.cache.Get(ctx, id)
		if err != nil {
			uc.logger.Warn("restaurant cache read failed", zap.String("restaurantId", id), zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	restaurant, err := uc.restaurantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, restaurant); err != nil {
			uc.logger.Warn("restaurant cache write failed", zap.String("restaurantId", id), zap.Error(err))
		}
	}

	return restaurant, nil
}
