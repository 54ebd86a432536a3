package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shammazp/restaurant-backend/internal/domain"
	"github.com/shammazp/restaurant-backend/internal/dto"
	apperrors "github.com/shammazp/restaurant-backend/internal/errors"
)

type CreateOrderUseCase interface {
	Create(ctx context.Context, req dto.CreateOrderRequest) (*domain.Order, error)
}

type UpdateStatusUseCase interface {
	UpdateStatus(ctx context.Context, orderID string, rawStatus string) (*domain.Order, error)
	UpdatePaymentStatus(ctx context.Context, orderID string, rawStatus string) (*domain.Order, error)
	Cancel(ctx context.Context, orderID string) (*domain.Order, error)
}

type GetOrderUseCase interface {
	Get(ctx context.Context, id string) (*domain.Order, error)
}

type OrderController struct {
	createUseCase CreateOrderUseCase
	statusUseCase UpdateStatusUseCase
	getUseCase    GetOrderUseCase
	logger        *zap.Logger
}

func NewOrderController(
	createUseCase CreateOrderUseCase,
	statusUseCase UpdateStatusUseCase,
	getUseCase GetOrderUseCase,
	logger *zap.Logger,
) *OrderController {
	return &OrderController{
		createUseCase: createUseCase,
		statusUseCase: statusUseCase,
		getUseCase:    getUseCase,
		logger:        logger,
	}
}

func (c *OrderController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if validationErr := c.validateCreateOrderRequest(req); validationErr != nil {
		ve, _ := apperrors.IsValidationError(validationErr)
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	order, err := c.createUseCase.Create(r.Context(), req)
	if err != nil {
		c.handleError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusCreated, dto.NewOrderResponse(order))
}

func (c *OrderController) GetOrder(w http.ResponseWriter, r *http.Request) {
	logger := c.logger.With(zap.String("traceId", uuid.New().String()))

	orderID := chi.URLParam(r, "orderId")
	order, err := c.getUseCase.Get(r.Context(), orderID)
	if err != nil {
		c.handleError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.NewOrderResponse(order))
}

func (c *OrderController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	logger := c.logger.With(zap.String("traceId", uuid.New().String()))

	orderID := chi.URLParam(r, "orderId")

	var req dto.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	order, err := c.statusUseCase.UpdateStatus(r.Context(), orderID, req.Status)
	if err != nil {
		c.handleError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.NewOrderResponse(order))
}

func (c *OrderController) UpdatePaymentStatus(w http.ResponseWriter, r *http.Request) {
	logger := c.logger.With(zap.String("traceId", uuid.New().String()))

	orderID := chi.URLParam(r, "orderId")

	var req dto.UpdatePaymentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	order, err := c.statusUseCase.UpdatePaymentStatus(r.Context(), orderID, req.PaymentStatus)
	if err != nil {
		c.handleError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.NewOrderResponse(order))
}

func (c *OrderController) CancelOrder(w http.ResponseWriter, r *http.Request) {
	logger := c.logger.With(zap.String("traceId", uuid.New().String()))

	orderID := chi.URLParam(r, "orderId")
	order, err := c.statusUseCase.Cancel(r.Context(), orderID)
	if err != nil {
		c.handleError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.NewOrderResponse(order))
}

func (c *OrderController) validateCreateOrderRequest(req dto.CreateOrderRequest) error {
	var details []apperrors.ValidationDetail

	if strings.TrimSpace(req.Customer.Name) == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "customer.name",
			Message: "customer name is required",
		})
	}

	if !strings.Contains(req.Customer.Email, "@") {
		details = append(details, apperrors.ValidationDetail{
			Field:   "customer.email",
			Message: "valid customer email is required",
		})
	}

	if strings.TrimSpace(req.Customer.Phone) == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "customer.phone",
			Message: "customer phone is required",
		})
	}

	if strings.TrimSpace(req.Restaurant) == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "restaurant",
			Message: "restaurant id is required",
		})
	}

	if len(req.Items) == 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "items",
			Message: "at least one item is required",
		})
	}

	for idx, item := range req.Items {
		if strings.TrimSpace(item.MenuItem) == "" {
			details = append(details, apperrors.ValidationDetail{
				Field:   "items[" + strconv.Itoa(idx) + "].menuItem",
				Message: "menu item id is required",
			})
		}
		if item.Quantity < 1 {
			details = append(details, apperrors.ValidationDetail{
				Field:   "items[" + strconv.Itoa(idx) + "].quantity",
				Message: "quantity must be at least 1",
			})
		}
	}

	if !domain.OrderType(req.OrderType).Valid() {
		details = append(details, apperrors.ValidationDetail{
			Field:   "orderType",
			Message: "orderType must be one of dine-in, takeout, delivery",
		})
	}

	if !domain.PaymentMethod(req.PaymentMethod).Valid() {
		details = append(details, apperrors.ValidationDetail{
			Field:   "paymentMethod",
			Message: "paymentMethod must be one of cash, card, digital_wallet, other",
		})
	}

	if req.Tip != nil && *req.Tip < 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "tip",
			Message: "tip must be non-negative",
		})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}

	return nil
}

func (c *OrderController) handleError(w http.ResponseWriter, err error, logger *zap.Logger) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	if _, ok := apperrors.IsNotFoundError(err); ok {
		c.writeErrorResponse(w, http.StatusNotFound, "NOT_FOUND", err.Error())
		return
	}

	if _, ok := apperrors.IsItemUnavailableError(err); ok {
		c.writeErrorResponse(w, http.StatusBadRequest, "ITEM_UNAVAILABLE", err.Error())
		return
	}

	if _, ok := apperrors.IsInvalidStatusError(err); ok {
		c.writeErrorResponse(w, http.StatusBadRequest, "INVALID_STATUS", err.Error())
		return
	}

	if _, ok := apperrors.IsInvalidPaymentStatusError(err); ok {
		c.writeErrorResponse(w, http.StatusBadRequest, "INVALID_PAYMENT_STATUS", err.Error())
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

func (c *OrderController) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
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

func (c *OrderController) writeErrorResponse(w http.ResponseWriter, status int, code string, message string) {
	c.writeJSON(w, status, errorResponse{Error: code, Message: message})
}

func (c *OrderController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
