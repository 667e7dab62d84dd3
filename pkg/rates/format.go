package rates

import (
	"fmt"
	"strconv"
)

// BreakdownStrings is a display-ready rendering of an option's cost
// breakdown.
type BreakdownStrings struct {
	CourierCost string `json:"courier_cost"`
	PlatformFee string `json:"platform_fee"`
	Total       string `json:"total"`
}

// OrderBreakdownStrings is a display-ready rendering of an order
// total breakdown.
type OrderBreakdownStrings struct {
	Subtotal    string `json:"subtotal"`
	Shipping    string `json:"shipping"`
	PlatformFee string `json:"platform_fee"`
	Tax         string `json:"tax"`
	Total       string `json:"total"`
}

// FormatBreakdown renders an option's costs as currency strings.
// Pure formatting: the option is not mutated and no amount is
// recomputed.
func FormatBreakdown(opt Option) BreakdownStrings {
	return BreakdownStrings{
		CourierCost: FormatMinor(opt.CourierCostMinor, opt.Currency),
		PlatformFee: FormatMinor(opt.PlatformFeeMinor, opt.Currency),
		Total:       FormatMinor(opt.TotalCostMinor, opt.Currency),
	}
}

// FormatOrderBreakdown renders an order total breakdown as currency
// strings.
func FormatOrderBreakdown(b Breakdown, currency string) OrderBreakdownStrings {
	return OrderBreakdownStrings{
		Subtotal:    FormatMinor(b.SubtotalMinor, currency),
		Shipping:    FormatMinor(b.ShippingBaseMinor, currency),
		PlatformFee: FormatMinor(b.PlatformFeeMinor, currency),
		Tax:         FormatMinor(b.TaxMinor, currency),
		Total:       FormatMinor(b.TotalMinor, currency),
	}
}

// FormatMinor formats an integer minor-unit amount with the currency
// symbol and thousands separators, e.g. 157500 NGN -> "₦1,575.00".
func FormatMinor(amountMinor int64, currency string) string {
	symbol := currencySymbol(currency)

	sign := ""
	if amountMinor < 0 {
		sign = "-"
		amountMinor = -amountMinor
	}

	major := amountMinor / 100
	minor := amountMinor % 100

	return fmt.Sprintf("%s%s%s.%02d", sign, symbol, groupThousands(major), minor)
}

func currencySymbol(code string) string {
	switch code {
	case "NGN", "":
		return "₦"
	case "USD":
		return "$"
	case "GBP":
		return "£"
	case "EUR":
		return "€"
	default:
		return code + " "
	}
}

// groupThousands inserts commas every three digits.
func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	head := len(s) % 3
	if head == 0 {
		head = 3
	}
	out := s[:head]
	for i := head; i < len(s); i += 3 {
		out += "," + s[i:i+3]
	}
	return out
}
