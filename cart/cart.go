// Package cart computes shopping cart totals from a list of priced items.
package cart

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	apperrors "github.com/utafrali/CommerceCalc/errors"
	"github.com/utafrali/CommerceCalc/validator"
)

// Item represents a single cart entry as provided by the caller.
// Price is required; Quantity defaults to 1 when nil. Name takes precedence
// over ProductName when both are set.
type Item struct {
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Quantity    *float64 `json:"quantity,omitempty" validate:"omitnil,gte=0"`
	Name        string   `json:"name,omitempty"`
	ProductName string   `json:"product_name,omitempty"`
}

// ItemDetail is the per-item breakdown produced for a validated cart entry.
type ItemDetail struct {
	Index       int     `json:"index"`
	Price       float64 `json:"price"`
	Quantity    float64 `json:"quantity"`
	ItemTotal   float64 `json:"item_total"`
	ProductName string  `json:"product_name"`
}

// Summary aggregates the whole cart. TotalAmount is rounded to two decimal
// places; ItemCount and the per-item totals are not.
type Summary struct {
	TotalAmount float64      `json:"total_amount"`
	ItemCount   float64      `json:"item_count"`
	ItemDetails []ItemDetail `json:"item_details"`
}

// Float64 returns a pointer to v, for building Item literals.
func Float64(v float64) *float64 {
	return &v
}

// CalculateCartTotal validates every item and accumulates the cart total,
// total quantity, and a per-item breakdown in input order. An empty or nil
// cart yields a zeroed summary. Validation failure at any index fails the
// whole call with no partial result; the error names the offending index.
func CalculateCartTotal(items []Item) (*Summary, error) {
	details := make([]ItemDetail, 0, len(items))
	var total, count float64

	for i, item := range items {
		quantity := 1.0
		if item.Quantity != nil {
			quantity = *item.Quantity
		}

		if item.Price == nil {
			return nil, apperrors.MissingArgument(fmt.Sprintf("item %d: price is required", i))
		}
		if math.IsNaN(*item.Price) || math.IsInf(*item.Price, 0) {
			return nil, apperrors.InvalidType(fmt.Sprintf("item %d: price must be a finite number", i))
		}
		if *item.Price < 0 {
			return nil, apperrors.InvalidValue(fmt.Sprintf("item %d: price must not be negative", i))
		}
		if math.IsNaN(quantity) || math.IsInf(quantity, 0) {
			return nil, apperrors.InvalidType(fmt.Sprintf("item %d: quantity must be a finite number", i))
		}
		if quantity < 0 {
			return nil, apperrors.InvalidValue(fmt.Sprintf("item %d: quantity must not be negative", i))
		}

		itemTotal := *item.Price * quantity

		name := item.Name
		if name == "" {
			name = item.ProductName
		}
		if name == "" {
			name = fmt.Sprintf("Product %d", i+1)
		}

		details = append(details, ItemDetail{
			Index:       i,
			Price:       *item.Price,
			Quantity:    quantity,
			ItemTotal:   itemTotal,
			ProductName: name,
		})

		total += itemTotal
		count += quantity
	}

	// Round on the cents boundary so accumulated float error does not leak
	// into the displayed total.
	return &Summary{
		TotalAmount: math.Round(total*100) / 100,
		ItemCount:   count,
		ItemDetails: details,
	}, nil
}

// ParseItems decodes a JSON array of cart items. The top-level value must be
// an array and every element must be an object with correctly typed fields;
// each decoded item is then checked against its struct validation tags.
// Errors name the offending element index.
func ParseItems(data []byte) ([]Item, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, apperrors.InvalidType("cart items must be a JSON array")
	}

	items := make([]Item, 0, len(raw))
	for i, r := range raw {
		var item Item
		if err := json.Unmarshal(r, &item); err != nil {
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &typeErr) && typeErr.Field != "" {
				return nil, apperrors.InvalidType(fmt.Sprintf("item %d: field %q has the wrong type", i, typeErr.Field))
			}
			return nil, apperrors.InvalidType(fmt.Sprintf("item %d: must be an object", i))
		}

		if err := validator.Validate(item); err != nil {
			var valErr *validator.ValidationError
			if errors.As(err, &valErr) {
				if msg, ok := valErr.Fields()["Price"]; ok && msg == "is required" {
					return nil, apperrors.MissingArgument(fmt.Sprintf("item %d: price is required", i))
				}
				return nil, apperrors.InvalidValue(fmt.Sprintf("item %d: %v", i, valErr))
			}
			return nil, apperrors.Wrap(err, fmt.Sprintf("validate item %d", i))
		}

		items = append(items, item)
	}

	return items, nil
}
