package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/shammazp/restaurant-backend/internal/config"
	"github.com/shammazp/restaurant-backend/internal/domain"
	"github.com/shammazp/restaurant-backend/internal/dto"
	apperrors "github.com/shammazp/restaurant-backend/internal/errors"
	"github.com/shammazp/restaurant-backend/internal/infrastructure/objectstore"
	"github.com/shammazp/restaurant-backend/internal/media/service"
)

// CoverUploadResult reports the outcome of a cover-image batch. Successful
// descriptors keep the order the files arrived in; failed files end up in
// Skipped with a human-readable reason.
type CoverUploadResult struct {
	CoverImages []domain.AssetDescriptor
	Skipped     []dto.SkippedFileDTO
}

// UploadCoverImagesUseCase processes cover-image batches. Files are resized
// and stored concurrently, one failure never aborts the batch, and the
// restaurant record is only touched when at least one file made it through.
type UploadCoverImagesUseCase struct {
	restaurantRepo RestaurantRepository
	store          objectstore.Store
	keygen         *service.KeyGenerator
	transformer    *service.Transformer
	cache          CacheInvalidator
	cfg            config.UploadConfig
	logger         *zap.Logger
	now            func() time.Time
}

func NewUploadCoverImagesUseCase(
	restaurantRepo RestaurantRepository,
	store objectstore.Store,
	keygen *service.KeyGenerator,
	transformer *service.Transformer,
	cache CacheInvalidator,
	cfg config.UploadConfig,
	logger *zap.Logger,
) *UploadCoverImagesUseCase {
	return &UploadCoverImagesUseCase{
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

func (uc *UploadCoverImagesUseCase) UploadCoverImages(ctx context.Context, restaurantID string, files []dto.UploadedFile) (*CoverUploadResult, error) {
	if len(files) == 0 {
		return nil, apperrors.NewValidationError("no cover images provided")
	}
	if len(files) > uc.cfg.MaxCoverImages {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("too many cover images: got %d, maximum is %d", len(files), uc.cfg.MaxCoverImages))
	}

	restaurant, err := uc.restaurantRepo.FindByID(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	descriptors := make([]*domain.AssetDescriptor, len(files))
	reasons := make([]string, len(files))

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.cfg.MaxConcurrentResizes)

	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			descriptor, err := uc.processFile(gctx, restaurant, file)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				reasons[i] = err.Error()
				uc.logger.Warn("cover image skipped",
					zap.String("restaurantId", restaurantID),
					zap.String("fileName", file.FileName),
					zap.Error(err))
				return nil
			}
			descriptors[i] = descriptor
			return nil
		})
	}
	// Workers report per-file failures through the slices above, so the only
	// error surfacing here is context cancellation.
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &CoverUploadResult{}
	for i, file := range files {
		if descriptors[i] != nil {
			result.CoverImages = append(result.CoverImages, *descriptors[i])
			continue
		}
		result.Skipped = append(result.Skipped, dto.SkippedFileDTO{FileName: file.FileName, Reason: reasons[i]})
	}

	if len(result.CoverImages) == 0 {
		return result, nil
	}

	oldCovers := restaurant.CoverImages
	if err := uc.restaurantRepo.UpdateCoverImages(ctx, restaurantID, result.CoverImages); err != nil {
		return nil, apperrors.NewStorageError("attaching cover images to restaurant", err)
	}

	uc.invalidateCache(ctx, restaurantID)

	for _, old := range oldCovers {
		if old.Key != "" {
			uc.deleteStored(ctx, old.Key, restaurantID)
		}
	}

	uc.logger.Info("cover images uploaded",
		zap.String("restaurantId", restaurantID),
		zap.Int("stored", len(result.CoverImages)),
		zap.Int("skipped", len(result.Skipped)))

	return result, nil
}

// DeleteCoverImages detaches every cover descriptor and removes the stored
// binaries.
func (uc *UploadCoverImagesUseCase) DeleteCoverImages(ctx context.Context, restaurantID string) error {
	restaurant, err := uc.restaurantRepo.FindByID(ctx, restaurantID)
	if err != nil {
		return err
	}

	if len(restaurant.CoverImages) == 0 {
		return apperrors.NewNotFoundError("restaurant has no cover images")
	}

	oldCovers := restaurant.CoverImages
	if err := uc.restaurantRepo.UpdateCoverImages(ctx, restaurantID, nil); err != nil {
		return apperrors.NewStorageError("detaching cover images from restaurant", err)
	}

	uc.invalidateCache(ctx, restaurantID)

	for _, old := range oldCovers {
		if old.Key != "" {
			uc.deleteStored(ctx, old.Key, restaurantID)
		}
	}

	return nil
}

func (uc *UploadCoverImagesUseCase) processFile(ctx context.Context, restaurant *domain.Restaurant, file dto.UploadedFile) (*domain.AssetDescriptor, error) {
	if err := validateFile(file, uc.cfg); err != nil {
		return nil, err
	}

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

func (uc *UploadCoverImagesUseCase) deleteStored(ctx context.Context, key, restaurantID string) {
	deleteCtx, cancel := context.WithTimeout(ctx, uc.cfg.OperationTimeout)
	defer cancel()

	if err := uc.store.Delete(deleteCtx, key); err != nil {
		uc.logger.Warn("deleting replaced asset failed",
			zap.String("restaurantId", restaurantID),
			zap.String("key", key),
			zap.Error(err))
	}
}

func (uc *UploadCoverImagesUseCase) invalidateCache(ctx context.Context, restaurantID string) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Invalidate(ctx, restaurantID); err != nil {
		uc.logger.Warn("restaurant cache invalidation failed", zap.String("restaurantId", restaurantID), zap.Error(err))
	}
}
