package controller

import (
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shammazp/restaurant-backend/internal/config"
	"github.com/shammazp/restaurant-backend/internal/domain"
	"github.com/shammazp/restaurant-backend/internal/dto"
	apperrors "github.com/shammazp/restaurant-backend/internal/errors"
	"github.com/shammazp/restaurant-backend/internal/media/usecase"
)

type UploadLogoUseCase interface {
	UploadLogo(ctx context.Context, restaurantID string, file dto.UploadedFile) (*domain.AssetDescriptor, error)
	DeleteLogo(ctx context.Context, restaurantID string) error
}

type UploadCoverImagesUseCase interface {
	UploadCoverImages(ctx context.Context, restaurantID string, files []dto.UploadedFile) (*usecase.CoverUploadResult, error)
	DeleteCoverImages(ctx context.Context, restaurantID string) error
}

type UploadController struct {
	logoUseCase  UploadLogoUseCase
	coverUseCase UploadCoverImagesUseCase
	cfg          config.UploadConfig
	logger       *zap.Logger
}

func NewUploadController(
	logoUseCase UploadLogoUseCase,
	coverUseCase UploadCoverImagesUseCase,
	cfg config.UploadConfig,
	logger *zap.Logger,
) *UploadController {
	return &UploadController{
		logoUseCase:  logoUseCase,
		coverUseCase: coverUseCase,
		cfg:          cfg,
		logger:       logger,
	}
}

func (c *UploadController) UploadLogo(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	restaurantID := chi.URLParam(r, "restaurantId")
	if restaurantID == "" {
		c.writeValidationError(w, "restaurant id is required", apperrors.ValidationDetail{
			Field:   "restaurantId",
			Message: "restaurant id must not be empty",
		})
		return
	}

	file, err := c.readMultipartFile(r, "logo")
	if err != nil {
		c.handleError(w, err, logger)
		return
	}

	descriptor, err := c.logoUseCase.UploadLogo(r.Context(), restaurantID, *file)
	if err != nil {
		c.handleError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.LogoUploadResponse{Logo: dto.NewAssetDescriptorDTO(*descriptor)})
}

func (c *UploadController) DeleteLogo(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	restaurantID := chi.URLParam(r, "restaurantId")
	if err := c.logoUseCase.DeleteLogo(r.Context(), restaurantID); err != nil {
		c.handleError(w, err, logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (c *UploadController) UploadCoverImages(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	restaurantID := chi.URLParam(r, "restaurantId")
	if restaurantID == "" {
		c.writeValidationError(w, "restaurant id is required", apperrors.ValidationDetail{
			Field:   "restaurantId",
			Message: "restaurant id must not be empty",
		})
		return
	}

	files, err := c.readMultipartFiles(r, "coverImages")
	if err != nil {
		c.handleError(w, err, logger)
		return
	}

	result, err := c.coverUseCase.UploadCoverImages(r.Context(), restaurantID, files)
	if err != nil {
		c.handleError(w, err, logger)
		return
	}

	response := dto.CoverImagesUploadResponse{
		CoverImages: make([]dto.AssetDescriptorDTO, 0, len(result.CoverImages)),
		Skipped:     result.Skipped,
	}
	for _, cover := range result.CoverImages {
		response.CoverImages = append(response.CoverImages, dto.NewAssetDescriptorDTO(cover))
	}

	c.writeJSON(w, http.StatusOK, response)
}

func (c *UploadController) DeleteCoverImages(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	restaurantID := chi.URLParam(r, "restaurantId")
	if err := c.coverUseCase.DeleteCoverImages(r.Context(), restaurantID); err != nil {
		c.handleError(w, err, logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// readMultipartFile pulls a single file out of the named form field. The
// parse limit is generous on purpose; the byte-accurate size ceiling is
// enforced downstream against the buffered payload.
func (c *UploadController) readMultipartFile(r *http.Request, field string) (*dto.UploadedFile, error) {
	if err := r.ParseMultipartForm(c.parseLimit()); err != nil {
		return nil, apperrors.NewValidationError("request body must be multipart/form-data", apperrors.ValidationDetail{
			Field:   field,
			Message: "could not parse multipart form",
		})
	}

	file, header, err := r.FormFile(field)
	if err != nil {
		return nil, apperrors.NewValidationError("file is required", apperrors.ValidationDetail{
			Field:   field,
			Message: "a file must be provided in the " + field + " field",
		})
	}
	defer file.Close()

	return c.bufferFile(file, header)
}

func (c *UploadController) readMultipartFiles(r *http.Request, field string) ([]dto.UploadedFile, error) {
	if err := r.ParseMultipartForm(c.parseLimit()); err != nil {
		return nil, apperrors.NewValidationError("request body must be multipart/form-data", apperrors.ValidationDetail{
			Field:   field,
			Message: "could not parse multipart form",
		})
	}

	if r.MultipartForm == nil || len(r.MultipartForm.File[field]) == 0 {
		return nil, apperrors.NewValidationError("at least one file is required", apperrors.ValidationDetail{
			Field:   field,
			Message: "files must be provided in the " + field + " field",
		})
	}

	headers := r.MultipartForm.File[field]
	files := make([]dto.UploadedFile, 0, len(headers))
	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			return nil, apperrors.NewInternalError("opening uploaded file", err)
		}

		buffered, err := c.bufferFile(file, header)
		file.Close()
		if err != nil {
			return nil, err
		}
		files = append(files, *buffered)
	}

	return files, nil
}

func (c *UploadController) bufferFile(file multipart.File, header *multipart.FileHeader) (*dto.UploadedFile, error) {
	// Read one byte past the limit so a payload that lies about its size in
	// the part header still gets rejected with the right error.
	data, err := io.ReadAll(io.LimitReader(file, c.cfg.MaxFileSize+1))
	if err != nil {
		return nil, apperrors.NewInternalError("reading uploaded file", err)
	}

	return &dto.UploadedFile{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        int64(len(data)),
		Data:        data,
	}, nil
}

func (c *UploadController) parseLimit() int64 {
	return c.cfg.MaxFileSize * int64(c.cfg.MaxCoverImages+1)
}

func (c *UploadController) handleError(w http.ResponseWriter, err error, logger *zap.Logger) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	if _, ok := apperrors.IsNotFoundError(err); ok {
		c.writeErrorResponse(w, http.StatusNotFound, "NOT_FOUND", err.Error())
		return
	}

	if _, ok := apperrors.IsInvalidFileTypeError(err); ok {
		c.writeErrorResponse(w, http.StatusBadRequest, "INVALID_FILE_TYPE", err.Error())
		return
	}

	if _, ok := apperrors.IsFileTooLargeError(err); ok {
		c.writeErrorResponse(w, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", err.Error())
		return
	}

	if _, ok := apperrors.IsUnsupportedFormatError(err); ok {
		c.writeErrorResponse(w, http.StatusBadRequest, "UNSUPPORTED_FORMAT", err.Error())
		return
	}

	if _, ok := apperrors.IsStorageError(err); ok {
		logger.Error("storage failure", zap.Error(err))
		c.writeErrorResponse(w, http.StatusInternalServerError, "STORAGE_ERROR", "a storage operation failed, please retry")
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	c.writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL_ERROR", "an unexpected error occurred")
}

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *UploadController) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	response := validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	}

	c.writeJSON(w, http.StatusBadRequest, response)
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (c *UploadController) writeErrorResponse(w http.ResponseWriter, status int, code string, message string) {
	c.writeJSON(w, status, errorResponse{Error: code, Message: message})
}

func (c *UploadController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
