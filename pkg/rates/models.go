// Package rates provides shipping rate quoting, blending, and order
// total computation for the marketplace checkout flow.
package rates

// Provider identifies the source of a shipping quote.
type Provider string

const (
	// ProviderSendbox marks quotes obtained live from the Sendbox API.
	ProviderSendbox Provider = "sendbox"

	// ProviderStandard marks the synthetic fallback rate used when no
	// live quote is obtainable.
	ProviderStandard Provider = "standard"
)

// DeliveryType classifies a courier service level.
type DeliveryType string

const (
	DeliveryStandard DeliveryType = "standard"
	DeliveryExpress  DeliveryType = "express"
	DeliveryPickup   DeliveryType = "pickup"
)

// Route describes the shipment lane a quote is requested for.
// It is an immutable input and is never persisted by this package.
type Route struct {
	OriginState      string
	DestinationState string
	WeightKg         float64
}

// Quote is a normalized courier quote. Live quotes come from the
// gateway; standard quotes are synthesized from the caller's base
// shipping cost. The Provider tag is the only distinction the
// blender ever looks at.
type Quote struct {
	Provider     Provider
	ProviderID   string // courier identifier, e.g. "gig-logistics"
	ProviderName string
	AmountMinor  int64 // kobo, never negative once normalized
	Currency     string
	DeliveryDays int
	DeliveryType DeliveryType
}

// Option is a fully priced shipping option presented to the caller.
// Constructed fresh per request and never mutated afterwards.
// TotalCostMinor is always CourierCostMinor + PlatformFeeMinor.
type Option struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	Description      string       `json:"description"`
	Provider         Provider     `json:"provider"`
	CourierCostMinor int64        `json:"courier_cost_minor"`
	PlatformFeeMinor int64        `json:"platform_fee_minor"`
	TotalCostMinor   int64        `json:"total_cost_minor"`
	DeliveryDays     int          `json:"delivery_days"`
	DeliveryType     DeliveryType `json:"delivery_type"`
	Currency         string       `json:"currency"`
}

// Breakdown itemizes an order total. TotalMinor is always the exact
// sum of the four components; tax is derived from the subtotal only.
type Breakdown struct {
	SubtotalMinor     int64 `json:"subtotal_minor"`
	ShippingBaseMinor int64 `json:"shipping_base_minor"`
	PlatformFeeMinor  int64 `json:"platform_fee_minor"`
	TaxMinor          int64 `json:"tax_minor"`
	TotalMinor        int64 `json:"total_minor"`
}

// Result is the engine's response to an options request.
// Success is false only for invalid input; gateway failures degrade
// to a standard fallback option with a warning in Error.
type Result struct {
	Success       bool     `json:"success"`
	Options       []Option `json:"options"`
	DefaultOption *Option  `json:"default_option,omitempty"`
	Error         string   `json:"error,omitempty"`
}
