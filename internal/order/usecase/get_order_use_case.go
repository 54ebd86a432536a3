package usecase

import (
	"context"

	"github.com/shammazp/restaurant-backend/internal/domain"
)

type OrderFinder interface {
	FindByID(ctx context.Context, id string) (*domain.Order, error)
}

type GetOrderUseCase struct {
	orderRepo OrderFinder
}

func NewGetOrderUseCase(orderRepo OrderFinder) *GetOrderUseCase {
	return &GetOrderUseCase{orderRepo: orderRepo}
}

func (uc *GetOrderUseCase) Get(ctx context.Context, id string) (*domain.Order, error) {
	return uc.orderRepo.FindByID(ctx, id)
}
