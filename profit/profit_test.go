package profit

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/utafrali/CommerceCalc/errors"
)

func qty(v float64) *float64 {
	return &v
}

// ============================================================================
// Calculate Tests
// ============================================================================

func TestCalculate_Basic(t *testing.T) {
	result, err := Calculate(Input{SalesPrice: 100, CostPrice: 60, Quantity: qty(1)})
	require.NoError(t, err)
	assert.Equal(t, 100.0, result.Revenue)
	assert.Equal(t, 60.0, result.TotalCost)
	assert.Equal(t, 40.0, result.Profit)
	assert.Equal(t, "40.00%", result.ProfitMargin)
	assert.Equal(t, 1.0, result.Quantity)
}

func TestCalculate_DefaultQuantity(t *testing.T) {
	result, err := Calculate(Input{SalesPrice: 75, CostPrice: 50})
	require.NoError(t, err)
	assert.Equal(t, 75.0, result.Revenue)
	assert.Equal(t, 50.0, result.TotalCost)
	assert.Equal(t, 25.0, result.Profit)
	assert.Equal(t, "33.33%", result.ProfitMargin)
	assert.Equal(t, 1.0, result.Quantity)
}

func TestCalculate_MultipleUnits(t *testing.T) {
	result, err := Calculate(Input{SalesPrice: 10, CostPrice: 4, Quantity: qty(5)})
	require.NoError(t, err)
	assert.Equal(t, 50.0, result.Revenue)
	assert.Equal(t, 20.0, result.TotalCost)
	assert.Equal(t, 30.0, result.Profit)
	assert.Equal(t, "60.00%", result.ProfitMargin)
	assert.Equal(t, 5.0, result.Quantity)
}

func TestCalculate_ZeroRevenue_MarginIsZero(t *testing.T) {
	result, err := Calculate(Input{SalesPrice: 0, CostPrice: 10})
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.Revenue)
	assert.Equal(t, -10.0, result.Profit)
	assert.Equal(t, "0.00%", result.ProfitMargin)
}

func TestCalculate_ZeroQuantity_MarginIsZero(t *testing.T) {
	result, err := Calculate(Input{SalesPrice: 100, CostPrice: 60, Quantity: qty(0)})
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.Revenue)
	assert.Equal(t, 0.0, result.TotalCost)
	assert.Equal(t, "0.00%", result.ProfitMargin)
}

func TestCalculate_Loss_NegativeMargin(t *testing.T) {
	result, err := Calculate(Input{SalesPrice: 50, CostPrice: 75})
	require.NoError(t, err)
	assert.Equal(t, -25.0, result.Profit)
	assert.Equal(t, "-50.00%", result.ProfitMargin)
}

// ============================================================================
// Validation Tests
// ============================================================================

func TestCalculate_NegativeSalesPrice(t *testing.T) {
	_, err := Calculate(Input{SalesPrice: -1, CostPrice: 10})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidValue))
}

func TestCalculate_NegativeCostPrice(t *testing.T) {
	_, err := Calculate(Input{SalesPrice: 10, CostPrice: -1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidValue))
}

func TestCalculate_NegativeQuantity(t *testing.T) {
	_, err := Calculate(Input{SalesPrice: 10, CostPrice: 5, Quantity: qty(-2)})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidValue))
}

func TestCalculate_AllNegative_SingleCombinedError(t *testing.T) {
	_, err := Calculate(Input{SalesPrice: -1, CostPrice: -1, Quantity: qty(-1)})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidValue))
	assert.Contains(t, err.Error(), "must not be negative")
}

func TestCalculate_NaNSalesPrice(t *testing.T) {
	_, err := Calculate(Input{SalesPrice: math.NaN(), CostPrice: 10})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidType))
}

func TestCalculate_InfiniteQuantity(t *testing.T) {
	_, err := Calculate(Input{SalesPrice: 10, CostPrice: 5, Quantity: qty(math.Inf(1))})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidType))
}

func TestCalculate_NoPartialResultOnFailure(t *testing.T) {
	result, err := Calculate(Input{SalesPrice: -1, CostPrice: 10})
	require.Error(t, err)
	assert.Nil(t, result)
}

// ============================================================================
// Purity
// ============================================================================

func TestCalculate_IsIdempotent(t *testing.T) {
	in := Input{SalesPrice: 75, CostPrice: 50, Quantity: qty(3)}

	first, err := Calculate(in)
	require.NoError(t, err)
	second, err := Calculate(in)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
