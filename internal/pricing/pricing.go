// Package pricing holds the pure monetary computations for cart lines.
// Everything here is side-effect free; input validation (quantity ≥ 1,
// non-negative prices) is the caller's job.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/model"
)

// ItemSubtotal computes (unitPrice + sum of add-on prices) * quantity.
// decimal.Decimal arithmetic keeps repeated additions exact: ten 0.10 add-ons
// sum to precisely 1.00, with no binary floating-point drift.
func ItemSubtotal(unitPrice decimal.Decimal, quantity int, addOns []model.SelectedAddOn, acaiAddOns []model.SelectedAcaiAddOn) decimal.Decimal {
	perUnit := unitPrice
	for _, a := range addOns {
		perUnit = perUnit.Add(a.Price)
	}
	for _, a := range acaiAddOns {
		perUnit = perUnit.Add(a.Price)
	}
	return perUnit.Mul(decimal.NewFromInt(int64(quantity)))
}
