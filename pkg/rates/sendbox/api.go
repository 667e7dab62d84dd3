// Package sendbox provides integration with the Sendbox shipping
// quote API.
package sendbox

import (
	"context"

	"github.com/shopspring/decimal"
)

// APIClient defines the interface for Sendbox API operations. The
// abstraction allows mock implementations during testing and the real
// HTTP implementation in production.
type APIClient interface {
	// GetDeliveryQuote fetches courier rate quotes for a route.
	GetDeliveryQuote(ctx context.Context, req *QuoteRequest) (*QuoteResponse, error)
}

// ============================================================================
// API Request/Response Types (match Sendbox delivery quote structure)
// ============================================================================

// QuoteRequest represents a Sendbox delivery quote request.
// POST /shipping/delivery_quote
type QuoteRequest struct {
	OriginCountry     string  `json:"origin_country"`
	OriginCountryCode string  `json:"origin_country_code"`
	OriginState       string  `json:"origin_state"`
	DestCountry       string  `json:"destination_country"`
	DestCountryCode   string  `json:"destination_country_code"`
	DestState         string  `json:"destination_state"`
	Weight            float64 `json:"weight"` // kg
	Items             []Item  `json:"items,omitempty"`
}

// Item represents a shipment line item.
type Item struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Value    float64 `json:"value,omitempty"`
	Weight   float64 `json:"weight,omitempty"`
}

// QuoteResponse represents the Sendbox delivery quote response.
type QuoteResponse struct {
	ReferenceCode string `json:"reference_code"`
	Rates         []Rate `json:"rates"`
}

// Rate represents a single courier quote. Fee is in major currency
// units (naira) with up to two decimal places.
type Rate struct {
	CourierID       string          `json:"courier_id"`
	CourierName     string          `json:"courier_name"`
	Fee             decimal.Decimal `json:"fee"`
	Currency        string          `json:"currency"`
	DeliveryEtaDays int             `json:"delivery_eta_days"`
	RateType        string          `json:"rate_type"` // "standard", "express", "pickup"
	Description     string          `json:"description,omitempty"`
}

// APIError represents an error from the Sendbox API.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return e.Code + ": " + e.Message
}
