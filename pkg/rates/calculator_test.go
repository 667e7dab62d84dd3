package rates_test

import (
	"testing"

	"github.com/ojamall/shipping/pkg/rates"
	"github.com/stretchr/testify/assert"
)

func selectedOption(courierCost, platformFee int64) rates.Option {
	return rates.Option{
		ID:               "gig-logistics-standard",
		Provider:         rates.ProviderSendbox,
		CourierCostMinor: courierCost,
		PlatformFeeMinor: platformFee,
		TotalCostMinor:   courierCost + platformFee,
		Currency:         "NGN",
	}
}

func TestComputeTotal_CheckoutScenario(t *testing.T) {
	b := rates.ComputeTotal(500000, selectedOption(150000, 7500), rates.DefaultTaxRate)

	assert.Equal(t, int64(500000), b.SubtotalMinor)
	assert.Equal(t, int64(150000), b.ShippingBaseMinor)
	assert.Equal(t, int64(7500), b.PlatformFeeMinor)
	assert.Equal(t, int64(37500), b.TaxMinor) // round(500000 * 0.075)
	assert.Equal(t, int64(695000), b.TotalMinor)
}

func TestComputeTotal_TotalIsExactSum(t *testing.T) {
	subtotals := []int64{0, 1, 13, 100, 999, 10001, 500000, 123456789}
	for _, subtotal := range subtotals {
		b := rates.ComputeTotal(subtotal, selectedOption(150000, 7500), rates.DefaultTaxRate)
		sum := b.SubtotalMinor + b.ShippingBaseMinor + b.PlatformFeeMinor + b.TaxMinor
		assert.Equal(t, sum, b.TotalMinor, "subtotal %d", subtotal)
	}
}

func TestComputeTotal_TaxExcludesShipping(t *testing.T) {
	cheap := rates.ComputeTotal(500000, selectedOption(100000, 5000), rates.DefaultTaxRate)
	dear := rates.ComputeTotal(500000, selectedOption(900000, 45000), rates.DefaultTaxRate)

	// Tax depends on the subtotal only.
	assert.Equal(t, cheap.TaxMinor, dear.TaxMinor)
	assert.Equal(t, int64(37500), cheap.TaxMinor)
}

func TestComputeTotal_TaxRoundsHalfAwayFromZero(t *testing.T) {
	// 20 * 0.075 = 1.5 -> 2
	b := rates.ComputeTotal(20, selectedOption(0, 0), rates.DefaultTaxRate)
	assert.Equal(t, int64(2), b.TaxMinor)

	// 10 * 0.075 = 0.75 -> 1
	b = rates.ComputeTotal(10, selectedOption(0, 0), rates.DefaultTaxRate)
	assert.Equal(t, int64(1), b.TaxMinor)

	// 2 * 0.075 = 0.15 -> 0
	b = rates.ComputeTotal(2, selectedOption(0, 0), rates.DefaultTaxRate)
	assert.Equal(t, int64(0), b.TaxMinor)
}

func TestComputeTotal_FeeCarriedThroughNotRecomputed(t *testing.T) {
	// An option whose fee was rounded at blend time must pass through
	// unchanged, not be re-derived from the courier cost.
	opt := selectedOption(150001, 7500)
	b := rates.ComputeTotal(100000, opt, rates.DefaultTaxRate)

	assert.Equal(t, int64(7500), b.PlatformFeeMinor)
	assert.Equal(t, int64(150001), b.ShippingBaseMinor)
}
