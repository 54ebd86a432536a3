package menu

import (
	"database/sql"

	"go.uber.org/zap"

	"github.com/shammazp/restaurant-backend/internal/menu/controller"
	"github.com/shammazp/restaurant-backend/internal/menu/repository"
	"github.com/shammazp/restaurant-backend/internal/menu/service"
	"github.com/shammazp/restaurant-backend/internal/menu/usecase"
)

func NewModule(db *sql.DB, logger *zap.Logger) *controller.MenuController {
	repo := repository.NewMySQLMenuItemsRepository(db)
	svc := service.NewService(repo)
	uc := usecase.NewSearchUseCase(svc)
	return controller.NewMenuController(uc, logger)
}
