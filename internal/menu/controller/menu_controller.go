package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/shammazp/restaurant-backend/internal/dto"
	apperrors "github.com/shammazp/restaurant-backend/internal/errors"
)

type SearchUseCase interface {
	SearchMenuItems(ctx context.Context, req dto.SearchMenuItemsRequest) (*dto.SearchMenuItemsResponse, error)
}

type MenuController struct {
	useCase SearchUseCase
	logger  *zap.Logger
}

func NewMenuController(useCase SearchUseCase, logger *zap.Logger) *MenuController {
	return &MenuController{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *MenuController) SearchMenuItems(w http.ResponseWriter, r *http.Request) {
	var req dto.SearchMenuItemsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if err := c.validateSearchRequest(req); err != nil {
		ve, _ := apperrors.IsValidationError(err)
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	resp, err := c.useCase.SearchMenuItems(r.Context(), req)
	if err != nil {
		c.logger.Error("menu item search failed", zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "INTERNAL_ERROR",
			"message": "an unexpected error occurred",
		})
		return
	}

	c.writeJSON(w, http.StatusOK, resp)
}

func (c *MenuController) validateSearchRequest(req dto.SearchMenuItemsRequest) error {
	if strings.TrimSpace(req.Restaurant) == "" {
		msg := "restaurant is required"
		return apperrors.NewValidationError(msg, apperrors.ValidationDetail{
			Field:   "restaurant",
			Message: msg,
		})
	}

	if len(req.MenuItems) == 0 {
		msg := "menuItems is required"
		return apperrors.NewValidationError(msg, apperrors.ValidationDetail{
			Field:   "menuItems",
			Message: "menuItems must not be empty",
		})
	}

	if len(req.MenuItems) > 100 {
		msg := "menuItems exceeds maximum of 100"
		return apperrors.NewValidationError(msg, apperrors.ValidationDetail{
			Field:   "menuItems",
			Message: msg,
		})
	}

	for _, id := range req.MenuItems {
		if strings.TrimSpace(id) == "" {
			msg := "each menu item id must be non-empty"
			return apperrors.NewValidationError(msg, apperrors.ValidationDetail{
				Field:   "menuItems",
				Message: msg,
			})
		}
	}

	return nil
}

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *MenuController) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c *MenuController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
