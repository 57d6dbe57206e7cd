package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediscan/mediscan/internal/application/services"
	"github.com/mediscan/mediscan/internal/domain/entities"
)

func quotes(pairs ...any) []entities.PriceQuote {
	out := make([]entities.PriceQuote, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		out = append(out, entities.PriceQuote{
			Pharmacy: pairs[i].(string),
			Price:    pairs[i+1].(float64),
		})
	}
	return out
}

func TestPricingService_Compare_SortsAscending(t *testing.T) {
	svc := services.NewPricingService()

	result, err := svc.Compare(quotes("CVS Pharmacy", 8.99, "Walgreens", 7.49, "RiteMed", 9.99))
	require.NoError(t, err)

	require.Len(t, result.Sorted, 3)
	assert.Equal(t, "Walgreens", result.Sorted[0].Pharmacy)
	assert.Equal(t, "CVS Pharmacy", result.Sorted[1].Pharmacy)
	assert.Equal(t, "RiteMed", result.Sorted[2].Pharmacy)

	assert.Equal(t, "Walgreens", result.Cheapest.Pharmacy)
	assert.Equal(t, "RiteMed", result.MostExpensive.Pharmacy)
	assert.InDelta(t, 2.50, result.Savings, 0.0001)

	require.NotNil(t, result.Best)
	assert.Equal(t, "Walgreens", result.Best.Pharmacy)
}

func TestPricingService_Compare_EmptyInputIsCallerError(t *testing.T) {
	svc := services.NewPricingService()

	_, err := svc.Compare(nil)
	assert.Error(t, err)
}

func TestPricingService_Compare_SingleQuoteGetsNoBadge(t *testing.T) {
	svc := services.NewPricingService()

	result, err := svc.Compare(quotes("CVS Pharmacy", 8.99))
	require.NoError(t, err)

	assert.Nil(t, result.Best)
	assert.Equal(t, "CVS Pharmacy", result.Cheapest.Pharmacy)
	assert.Equal(t, "CVS Pharmacy", result.MostExpensive.Pharmacy)
	assert.Zero(t, result.Savings)
}

func TestPricingService_Compare_TiesKeepInputOrder(t *testing.T) {
	svc := services.NewPricingService()

	result, err := svc.Compare(quotes("A", 5.00, "B", 5.00, "C", 4.00))
	require.NoError(t, err)

	assert.Equal(t, "C", result.Sorted[0].Pharmacy)
	assert.Equal(t, "A", result.Sorted[1].Pharmacy)
	assert.Equal(t, "B", result.Sorted[2].Pharmacy)
}

func TestPricingService_Compare_DoesNotMutateInput(t *testing.T) {
	svc := services.NewPricingService()

	input := quotes("CVS Pharmacy", 8.99, "Walgreens", 7.49)
	_, err := svc.Compare(input)
	require.NoError(t, err)

	assert.Equal(t, "CVS Pharmacy", input[0].Pharmacy)
	assert.Equal(t, "Walgreens", input[1].Pharmacy)
}

func TestPricingService_Compare_IdempotentOnSortedOutput(t *testing.T) {
	svc := services.NewPricingService()

	first, err := svc.Compare(quotes("CVS Pharmacy", 8.99, "Walgreens", 7.49, "RiteMed", 9.99))
	require.NoError(t, err)

	second, err := svc.Compare(first.Sorted)
	require.NoError(t, err)

	assert.Equal(t, first.Sorted, second.Sorted)
	assert.Equal(t, first.Cheapest, second.Cheapest)
	assert.Equal(t, first.MostExpensive, second.MostExpensive)
	assert.InDelta(t, first.Savings, second.Savings, 0.0001)
}

func TestPricingService_Compare_CheapestBoundsEveryQuote(t *testing.T) {
	svc := services.NewPricingService()

	result, err := svc.Compare(quotes("A", 12.50, "B", 3.25, "C", 7.00, "D", 3.25))
	require.NoError(t, err)

	assert.GreaterOrEqual(t, result.Savings, 0.0)
	for _, q := range result.Sorted {
		assert.LessOrEqual(t, result.Cheapest.Price, q.Price)
		assert.GreaterOrEqual(t, result.MostExpensive.Price, q.Price)
	}
}
