package rates

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Blend prices a quote into a shipping option by adding the platform
// fee. The fee is rounded half away from zero via the shared rounding
// helper; the total is always the exact integer sum and is never
// computed independently.
func Blend(q Quote, feeRatio decimal.Decimal) Option {
	fee := applyRate(q.AmountMinor, feeRatio)

	return Option{
		ID:               optionID(q),
		Name:             optionName(q),
		Description:      optionDescription(q),
		Provider:         q.Provider,
		CourierCostMinor: q.AmountMinor,
		PlatformFeeMinor: fee,
		TotalCostMinor:   q.AmountMinor + fee,
		DeliveryDays:     q.DeliveryDays,
		DeliveryType:     q.DeliveryType,
		Currency:         q.Currency,
	}
}

// optionID derives a stable identifier: provider ID plus delivery
// type for live quotes, the synthetic "standard" ID for the fallback.
func optionID(q Quote) string {
	if q.Provider == ProviderStandard {
		return string(ProviderStandard)
	}
	return fmt.Sprintf("%s-%s", q.ProviderID, q.DeliveryType)
}

func optionName(q Quote) string {
	if q.Provider == ProviderStandard {
		return "Standard Shipping"
	}
	if q.ProviderName != "" {
		return q.ProviderName
	}
	return q.ProviderID
}

func optionDescription(q Quote) string {
	if q.Provider == ProviderStandard {
		return "Flat-rate delivery"
	}
	switch q.DeliveryDays {
	case 0:
		return "Same-day delivery"
	case 1:
		return "Delivery in 1 day"
	default:
		return fmt.Sprintf("Delivery in %d days", q.DeliveryDays)
	}
}
