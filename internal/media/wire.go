package media

import (
	"database/sql"

	"go.uber.org/zap"

	"github.com/shammazp/restaurant-backend/internal/config"
	"github.com/shammazp/restaurant-backend/internal/infrastructure/objectstore"
	"github.com/shammazp/restaurant-backend/internal/media/controller"
	"github.com/shammazp/restaurant-backend/internal/media/service"
	"github.com/shammazp/restaurant-backend/internal/media/usecase"
	restaurantrepo "github.com/shammazp/restaurant-backend/internal/restaurant/repository"
)

// NewModule wires the image-ingestion pipeline. The cache invalidator is
// optional; pass nil when Redis is not configured.
func NewModule(
	db *sql.DB,
	store objectstore.Store,
	cache usecase.CacheInvalidator,
	cfg *config.Config,
	logger *zap.Logger,
) *controller.UploadController {
	restaurantRepo := restaurantrepo.NewMySQLRestaurantRepository(db)

	keygen := service.NewKeyGenerator(cfg.S3.UploadPath)
	transformer := service.NewTransformer(cfg.Upload.TargetWidth, cfg.Upload.TargetHeight, cfg.Upload.JPEGQuality)

	logoUC := usecase.NewUploadLogoUseCase(restaurantRepo, store, keygen, transformer, cache, cfg.Upload, logger)
	coverUC := usecase.NewUploadCoverImagesUseCase(restaurantRepo, store, keygen, transformer, cache, cfg.Upload, logger)

	return controller.NewUploadController(logoUC, coverUC, cfg.Upload, logger)
}
