package rates

import (
	"github.com/shopspring/decimal"
)

// ComputeTotal derives the itemized order total for a subtotal and a
// selected shipping option.
//
// Tax applies to the subtotal only; the courier cost and platform fee
// are carried through from the option unchanged, never recomputed.
// Each derivation rounds independently through the shared helper, so
// totals reconcile exactly with the option produced by Blend.
func ComputeTotal(subtotalMinor int64, opt Option, taxRate decimal.Decimal) Breakdown {
	tax := applyRate(subtotalMinor, taxRate)

	return Breakdown{
		SubtotalMinor:     subtotalMinor,
		ShippingBaseMinor: opt.CourierCostMinor,
		PlatformFeeMinor:  opt.PlatformFeeMinor,
		TaxMinor:          tax,
		TotalMinor:        subtotalMinor + opt.CourierCostMinor + opt.PlatformFeeMinor + tax,
	}
}
