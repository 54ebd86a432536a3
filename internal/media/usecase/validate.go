package usecase

import (
	"strings"

	"github.com/shammazp/restaurant-backend/internal/config"
	"github.com/shammazp/restaurant-backend/internal/dto"
	apperrors "github.com/shammazp/restaurant-backend/internal/errors"
)

// validateFile enforces the upload preconditions on declared metadata before
// any decode, resize, or store work is spent on the payload.
func validateFile(file dto.UploadedFile, cfg config.UploadConfig) error {
	allowed := false
	for _, ct := range cfg.AllowedContentTypes {
		if strings.EqualFold(file.ContentType, ct) {
			allowed = true
			break
		}
	}
	if !allowed {
		return apperrors.NewInvalidFileTypeError(file.ContentType)
	}

	if file.Size > cfg.MaxFileSize {
		return apperrors.NewFileTooLargeError(file.Size, cfg.MaxFileSize)
	}

	return nil
}
