package service

import (
	"github.com/shopspring/decimal"

	"github.com/shammazp/restaurant-backend/internal/domain"
)

// PricingBreakdown is the frozen arithmetic of one order: every field is
// computed exactly once at creation and never revised.
type PricingBreakdown struct {
	Subtotal    decimal.Decimal
	Tax         decimal.Decimal
	DeliveryFee decimal.Decimal
	Tip         decimal.Decimal
	Total       decimal.Decimal
}

// PricingService recomputes authoritative order totals from captured unit
// prices. All arithmetic is decimal so a line-by-line sum is exact; the tax
// base is the subtotal only, excluding tip and delivery fee.
type PricingService struct {
	taxRate         decimal.Decimal
	flatDeliveryFee decimal.Decimal
}

func NewPricingService(taxRate, flatDeliveryFee decimal.Decimal) *PricingService {
	return &PricingService{
		taxRate:         taxRate,
		flatDeliveryFee: flatDeliveryFee,
	}
}

func (s *PricingService) Price(lines []domain.PricedLine, orderType domain.OrderType, tip decimal.Decimal) PricingBreakdown {
	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(line.LineTotal())
	}

	tax := subtotal.Mul(s.taxRate)

	deliveryFee := decimal.Zero
	if orderType == domain.OrderTypeDelivery {
		deliveryFee = s.flatDeliveryFee
	}

	total := subtotal.Add(tax).Add(deliveryFee).Add(tip)

	return PricingBreakdown{
		Subtotal:    subtotal,
		Tax:         tax,
		DeliveryFee: deliveryFee,
		Tip:         tip,
		Total:       total,
	}
}
