// Package profit computes revenue, cost, and profit figures for a sale.
package profit

import (
	"errors"
	"fmt"
	"math"

	apperrors "github.com/utafrali/CommerceCalc/errors"
	"github.com/utafrali/CommerceCalc/validator"
)

// Input holds the parameters of a profit calculation. Quantity defaults to 1
// when nil.
type Input struct {
	SalesPrice float64  `json:"sales_price" validate:"gte=0"`
	CostPrice  float64  `json:"cost_price" validate:"gte=0"`
	Quantity   *float64 `json:"quantity,omitempty" validate:"omitnil,gte=0"`
}

// Result holds the computed profit figures. ProfitMargin is a percentage
// string with two decimal places, e.g. "40.00%".
type Result struct {
	Revenue      float64 `json:"revenue"`
	TotalCost    float64 `json:"total_cost"`
	Profit       float64 `json:"profit"`
	ProfitMargin string  `json:"profit_margin"`
	Quantity     float64 `json:"quantity"`
}

// Calculate computes revenue, total cost, profit, and profit margin from the
// given sales price, cost price, and quantity. All figures must be finite
// and non-negative. A zero-revenue sale has a margin of "0.00%".
func Calculate(in Input) (*Result, error) {
	quantity := 1.0
	if in.Quantity != nil {
		quantity = *in.Quantity
	}

	if math.IsNaN(in.SalesPrice) || math.IsInf(in.SalesPrice, 0) {
		return nil, apperrors.InvalidType("sales price must be a finite number")
	}
	if math.IsNaN(in.CostPrice) || math.IsInf(in.CostPrice, 0) {
		return nil, apperrors.InvalidType("cost price must be a finite number")
	}
	if math.IsNaN(quantity) || math.IsInf(quantity, 0) {
		return nil, apperrors.InvalidType("quantity must be a finite number")
	}

	if err := validator.Validate(in); err != nil {
		var valErr *validator.ValidationError
		if errors.As(err, &valErr) {
			return nil, apperrors.InvalidValue("sales price, cost price, and quantity must not be negative")
		}
		return nil, apperrors.Wrap(err, "validate input")
	}

	revenue := in.SalesPrice * quantity
	totalCost := in.CostPrice * quantity
	profit := revenue - totalCost

	margin := 0.0
	if revenue > 0 {
		margin = profit / revenue * 100
	}

	return &Result{
		Revenue:      revenue,
		TotalCost:    totalCost,
		Profit:       profit,
		ProfitMargin: fmt.Sprintf("%.2f%%", margin),
		Quantity:     quantity,
	}, nil
}
