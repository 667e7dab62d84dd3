package rates

import (
	"github.com/shopspring/decimal"
)

// Default platform fee and tax rates. Both are deliberate policy
// values: the fee applies to the courier cost, the tax applies to the
// order subtotal only (shipping is a pass-through service cost).
var (
	DefaultFeeRatio = decimal.NewFromFloat(0.05)
	DefaultTaxRate  = decimal.NewFromFloat(0.075)
)

// minorPerMajor converts naira to kobo.
var minorPerMajor = decimal.NewFromInt(100)

// roundMinor rounds a decimal amount to a whole minor unit,
// half away from zero. Every monetary derivation in this package
// goes through this one helper so platform fee and tax reconcile
// across the blender and the calculator.
func roundMinor(d decimal.Decimal) int64 {
	return d.Round(0).IntPart()
}

// applyRate multiplies an integer minor amount by a fractional rate
// and rounds the product to a whole minor unit.
func applyRate(amountMinor int64, rate decimal.Decimal) int64 {
	return roundMinor(decimal.NewFromInt(amountMinor).Mul(rate))
}

// MajorToMinor converts a decimal major-unit amount (as returned by
// the gateway) to integer minor units.
func MajorToMinor(major decimal.Decimal) int64 {
	return roundMinor(major.Mul(minorPerMajor))
}
