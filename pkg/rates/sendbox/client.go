package sendbox

import (
	"context"
	"fmt"
	"time"

	"github.com/ojamall/shipping/pkg/rates"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

const gatewayName = "sendbox"

// Config holds Sendbox configuration.
type Config struct {
	BaseURL      string
	AccessToken  string
	ClientSecret string
	AppID        string
	UseMock      bool // When true, uses the mock API client
}

// Gateway is the Sendbox quote gateway. It implements rates.Gateway
// and delegates API calls to the underlying APIClient (mock or HTTP).
type Gateway struct {
	config    Config
	apiClient APIClient
	logger    *otelzap.Logger
}

// New creates a new Sendbox gateway. Missing credentials are a fatal
// configuration error; per-request failures never are.
func New(cfg Config, logger *otelzap.Logger) (*Gateway, error) {
	if cfg.UseMock {
		return NewWithAPIClient(cfg, NewMockAPIClient(), logger), nil
	}

	if cfg.AccessToken == "" || cfg.ClientSecret == "" || cfg.AppID == "" {
		return nil, fmt.Errorf("%w: sendbox access token, client secret and app id are required",
			rates.ErrMissingCredentials)
	}

	apiClient := NewHTTPAPIClient(HTTPAPIClientConfig{
		BaseURL:      cfg.BaseURL,
		AccessToken:  cfg.AccessToken,
		ClientSecret: cfg.ClientSecret,
		AppID:        cfg.AppID,
		Timeout:      30 * time.Second,
	})

	return NewWithAPIClient(cfg, apiClient, logger), nil
}

// NewWithAPIClient creates a new Sendbox gateway with a custom API
// client. This is useful for injecting mock clients in tests.
func NewWithAPIClient(cfg Config, apiClient APIClient, logger *otelzap.Logger) *Gateway {
	return &Gateway{
		config:    cfg,
		apiClient: apiClient,
		logger:    logger,
	}
}

// Name returns the gateway name.
func (g *Gateway) Name() string {
	return gatewayName
}

// FetchQuotes returns normalized courier quotes from Sendbox. Every
// expected failure class (network, timeout, non-2xx, malformed body)
// normalizes to an error matching rates.ErrGatewayUnavailable.
func (g *Gateway) FetchQuotes(ctx context.Context, route *rates.Route) ([]rates.Quote, error) {
	g.logger.Info("Getting Sendbox quotes",
		zap.String("origin_state", route.OriginState),
		zap.String("destination_state", route.DestinationState),
		zap.Float64("weight_kg", route.WeightKg),
	)

	apiReq := &QuoteRequest{
		OriginCountry:     "Nigeria",
		OriginCountryCode: "NG",
		OriginState:       route.OriginState,
		DestCountry:       "Nigeria",
		DestCountryCode:   "NG",
		DestState:         route.DestinationState,
		Weight:            route.WeightKg,
	}

	apiResp, err := g.apiClient.GetDeliveryQuote(ctx, apiReq)
	if err != nil {
		g.logger.Error("Sendbox API error", zap.Error(err))
		return nil, rates.NewGatewayError(gatewayName, "QUOTE_FAILED", "delivery quote request failed").WithCause(err)
	}

	return g.normalizeRates(apiResp.Rates), nil
}

// normalizeRates converts API rates into internal quotes. Negative
// fees are discarded, negative ETAs clamped to zero.
func (g *Gateway) normalizeRates(apiRates []Rate) []rates.Quote {
	quotes := make([]rates.Quote, 0, len(apiRates))
	for _, r := range apiRates {
		if r.Fee.IsNegative() {
			g.logger.Warn("Discarding Sendbox rate with negative fee",
				zap.String("courier_id", r.CourierID),
				zap.String("fee", r.Fee.String()),
			)
			continue
		}

		days := r.DeliveryEtaDays
		if days < 0 {
			days = 0
		}

		currency := r.Currency
		if currency == "" {
			currency = "NGN"
		}

		quotes = append(quotes, rates.Quote{
			Provider:     rates.ProviderSendbox,
			ProviderID:   r.CourierID,
			ProviderName: r.CourierName,
			AmountMinor:  rates.MajorToMinor(r.Fee),
			Currency:     currency,
			DeliveryDays: days,
			DeliveryType: mapDeliveryType(r.RateType),
		})
	}
	return quotes
}

func mapDeliveryType(rateType string) rates.DeliveryType {
	switch rateType {
	case "express", "next_day":
		return rates.DeliveryExpress
	case "pickup", "drop_off":
		return rates.DeliveryPickup
	default:
		return rates.DeliveryStandard
	}
}

// Ensure Gateway implements the rates.Gateway interface
var _ rates.Gateway = (*Gateway)(nil)
