package order

import (
	"database/sql"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/shammazp/restaurant-backend/internal/config"
	"github.com/shammazp/restaurant-backend/internal/order/controller"
	orderrepo "github.com/shammazp/restaurant-backend/internal/order/repository"
	"github.com/shammazp/restaurant-backend/internal/order/service"
	"github.com/shammazp/restaurant-backend/internal/order/usecase"
	restaurantrepo "github.com/shammazp/restaurant-backend/internal/restaurant/repository"
)

// NewModule wires the order-pricing pipeline. Cache and publisher are
// optional collaborators; pass nil when Redis or Kafka is not configured.
func NewModule(
	db *sql.DB,
	cache usecase.RestaurantCache,
	publisher usecase.EventPublisher,
	statusPublisher usecase.StatusEventPublisher,
	cfg *config.Config,
	logger *zap.Logger,
) *controller.OrderController {
	menuItemRepo := orderrepo.NewMySQLMenuItemRepository(db)
	orderRepo := orderrepo.NewMySQLOrderRepository(db)
	restaurantRepo := restaurantrepo.NewMySQLRestaurantRepository(db)

	pricing := service.NewPricingService(
		decimal.NewFromFloat(cfg.Pricing.TaxRate),
		decimal.NewFromFloat(cfg.Pricing.FlatDeliveryFee),
	)
	machine := service.NewStatusMachine()

	createUC := usecase.NewCreateOrderUseCase(menuItemRepo, orderRepo, restaurantRepo, cache, publisher, pricing, logger)
	statusUC := usecase.NewUpdateStatusUseCase(orderRepo, machine, statusPublisher, logger)
	getUC := usecase.NewGetOrderUseCase(orderRepo)

	return controller.NewOrderController(createUC, statusUC, getUC, logger)
}
