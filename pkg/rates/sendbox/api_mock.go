package sendbox

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MockAPIClient is a mock implementation of APIClient for testing.
type MockAPIClient struct {
	SimulateErrors  bool
	SimulateLatency time.Duration

	OnGetDeliveryQuote func(ctx context.Context, req *QuoteRequest) (*QuoteResponse, error)
}

// NewMockAPIClient creates a new mock API client with default
// behavior.
func NewMockAPIClient() *MockAPIClient {
	return &MockAPIClient{}
}

// GetDeliveryQuote returns mock courier quotes.
func (m *MockAPIClient) GetDeliveryQuote(ctx context.Context, req *QuoteRequest) (*QuoteResponse, error) {
	if m.SimulateLatency > 0 {
		time.Sleep(m.SimulateLatency)
	}

	if m.SimulateErrors {
		return nil, &APIError{Code: "MOCK_ERROR", Message: "Simulated API error"}
	}

	if m.OnGetDeliveryQuote != nil {
		return m.OnGetDeliveryQuote(ctx, req)
	}

	return &QuoteResponse{
		ReferenceCode: "sb-ref-" + uuid.New().String()[:8],
		Rates: []Rate{
			{
				CourierID:       "gig-logistics",
				CourierName:     "GIG Logistics",
				Fee:             decimal.NewFromFloat(1500.00),
				Currency:        "NGN",
				DeliveryEtaDays: 2,
				RateType:        "standard",
			},
			{
				CourierID:       "kwik-delivery",
				CourierName:     "Kwik Delivery",
				Fee:             decimal.NewFromFloat(2000.00),
				Currency:        "NGN",
				DeliveryEtaDays: 1,
				RateType:        "express",
			},
			{
				CourierID:       "red-star",
				CourierName:     "Red Star Express",
				Fee:             decimal.NewFromFloat(1250.50),
				Currency:        "NGN",
				DeliveryEtaDays: 4,
				RateType:        "standard",
			},
		},
	}, nil
}

// Ensure MockAPIClient implements APIClient interface
var _ APIClient = (*MockAPIClient)(nil)
