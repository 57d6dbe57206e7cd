package services

import (
	"sort"

	"github.com/mediscan/mediscan/internal/domain/entities"
	apperrors "github.com/mediscan/mediscan/pkg/errors"
)

// PricingService compares a medication's pharmacy price quotes.
type PricingService struct{}

// NewPricingService creates a new pricing service.
func NewPricingService() *PricingService {
	return &PricingService{}
}

// Compare sorts quotes ascending by price and derives the cheapest and most
// expensive quotes plus the potential savings between them. Callers must
// check for an empty quote list themselves and render a "no price data"
// state; passing one here is an error. The input slice is not mutated, and
// ties keep their input order.
func (s *PricingService) Compare(prices []entities.PriceQuote) (*entities.PriceComparison, error) {
	if len(prices) == 0 {
		return nil, apperrors.NewValidationError("no price quotes to compare")
	}

	sorted := make([]entities.PriceQuote, len(prices))
	copy(sorted, prices)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Price < sorted[j].Price
	})

	result := &entities.PriceComparison{
		Sorted:        sorted,
		Cheapest:      sorted[0],
		MostExpensive: sorted[len(sorted)-1],
		Savings:       sorted[len(sorted)-1].Price - sorted[0].Price,
	}

	// A lone quote gets no best-price badge; there is nothing to beat.
	if len(sorted) > 1 {
		best := sorted[0]
		result.Best = &best
	}

	return result, nil
}
