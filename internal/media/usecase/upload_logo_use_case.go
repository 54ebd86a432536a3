package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/shammazp/restaurant-backend/internal/config"
	"github.com/shammazp/restaurant-backend/internal/domain"
	"github.com/shammazp/restaurant-backend/internal/dto"
	apperrors "github.com/shammazp/restaurant-backend/internal/errors"
	"github.com/shammazp/restaurant-backend/internal/infrastructure/objectstore"
	"github.com/shammazp/restaurant-backend/internal/media/service"
)

type RestaurantRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Restaurant, error)
	UpdateLogo(ctx context.Context, id string, logo *domain.AssetDescriptor) error
	UpdateCoverImages(ctx context.Context, id string, covers []domain.AssetDescriptor) error
}

// CacheInvalidator drops stale cached restaurant records after asset updates.
type CacheInvalidator interface {
	Invalidate(ctx context.Context, id string) error
}

// UploadLogoUseCase runs the single-image pipeline for restaurant logos:
// precondition checks, key generation, resize, durable store, attach. On
// replacement the new asset is fully stored and attached before the old
// object is deleted, so a mid-flow failure never leaves the record pointing
// at nothing.
type UploadLogoUseCase struct {
	restaurantRepo RestaurantRepository
	store          objectstore.Store
	keygen         *service.KeyGenerator
	transformer    *service.Transformer
	cache          CacheInvalidator
	cfg            config.UploadConfig
	logger         *zap.Logger
	now            func() time.Time
}

func NewUploadLogoUseCase(
	restaurantRepo RestaurantRepository,
	store objectstore.Store,
	keygen *service.KeyGenerator,
	transformer *service.Transformer,
	cache CacheInvalidator,
	cfg config.UploadConfig,
	logger *zap.Logger,
) *UploadLogoUseCase {
	return &UploadLogoUseCase{
		restaurantRepo: restaurantRepo,
		store:          store,
		keygen:         keygen,
		transformer:    transformer,
		cache:          cache,
		cfg:            cfg,
		logger:         logger,
		now:            time.Now,
	}
}

func (uc *UploadLogoUseCase) UploadLogo(ctx context.Context, restaurantID string, file dto.UploadedFile) (*domain.AssetDescriptor, error) {
	restaurant, err := uc.restaurantRepo.FindByID(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	if err := validateFile(file, uc.cfg); err != nil {
		return nil, err
	}

	descriptor, err := uc.processAndStore(ctx, restaurant, file)
	if err != nil {
		return nil, err
	}

	oldLogo := restaurant.Logo
	if err := uc.restaurantRepo.UpdateLogo(ctx, restaurantID, descriptor); err != nil {
		return nil, apperrors.NewStorageError("attaching logo to restaurant", err)
	}

	uc.invalidateCache(ctx, restaurantID)

	if oldLogo != nil && oldLogo.Key != "" {
		uc.deleteStored(ctx, oldLogo.Key, restaurantID)
	}

	uc.logger.Info("logo uploaded",
		zap.String("restaurantId", restaurantID),
		zap.String("key", descriptor.Key),
		zap.Int64("size", descriptor.Size))

	return descriptor, nil
}

// DeleteLogo detaches the descriptor and removes the stored binary together,
// never one without the other.
func (uc *UploadLogoUseCase) DeleteLogo(ctx context.Context, restaurantID string) error {
	restaurant, err := uc.restaurantRepo.FindByID(ctx, restaurantID)
	if err != nil {
		return err
	}

	if restaurant.Logo == nil {
		return apperrors.NewNotFoundError("restaurant has no logo")
	}

	oldKey := restaurant.Logo.Key
	if err := uc.restaurantRepo.UpdateLogo(ctx, restaurantID, nil); err != nil {
		return apperrors.NewStorageError("detaching logo from restaurant", err)
	}

	uc.invalidateCache(ctx, restaurantID)

	if oldKey != "" {
		uc.deleteStored(ctx, oldKey, restaurantID)
	}

	return nil
}

func (uc *UploadLogoUseCase) processAndStore(ctx context.Context, restaurant *domain.Restaurant, file dto.UploadedFile) (*domain.AssetDescriptor, error) {
	key := uc.keygen.Generate(file.FileName, restaurant.BizID)

	transformed, err := uc.transformer.Transform(file.Data)
	if err != nil {
		return nil, err
	}

	storeCtx, cancel := context.WithTimeout(ctx, uc.cfg.OperationTimeout)
	defer cancel()

	result, err := uc.store.Put(storeCtx, key, transformed, uc.transformer.ContentType())
	if err != nil {
		return nil, err
	}

	return &domain.AssetDescriptor{
		URL:          result.URL,
		Key:          result.Key,
		OriginalName: file.FileName,
		Size:         int64(len(transformed)),
		UploadedAt:   uc.now().UTC(),
	}, nil
}

// deleteStored cleans up a replaced or detached object. Delete failures are
// logged and swallowed: the record already moved on and the store's delete is
// idempotent, so a later sweep can reclaim the orphan.
func (uc *UploadLogoUseCase) deleteStored(ctx context.Context, key, restaurantID string) {
	deleteCtx, cancel := context.WithTimeout(ctx, uc.cfg.OperationTimeout)
	defer cancel()

	if err := uc.store.Delete(deleteCtx, key); err != nil {
		uc.logger.Warn("deleting replaced asset failed",
			zap.String("restaurantId", restaurantID),
			zap.String("key", key),
			zap.Error(err))
	}
}

func (uc *UploadLogoUseCase) invalidateCache(ctx context.Context, restaurantID string) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Invalidate(ctx, restaurantID); err != nil {
		uc.logger.Warn("restaurant cache invalidation failed", zap.String("restaurantId", restaurantID), zap.Error(err))
	}
}
