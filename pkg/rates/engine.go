package rates

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// FallbackMessage is the user-facing warning attached to a result
// when live quotes could not be obtained.
const FallbackMessage = "Connection error. Using standard shipping."

const (
	defaultStandardRateMinor    = 250000 // kobo
	defaultStandardDeliveryDays = 5
	defaultCurrency             = "NGN"
)

// Gateway obtains live courier quotes for a route. Implementations
// must normalize expected failures (network, timeout, bad payload,
// auth) into an error matching ErrGatewayUnavailable rather than
// panicking.
type Gateway interface {
	// Name returns the gateway identifier, e.g. "sendbox".
	Name() string

	// FetchQuotes returns zero or more quotes for the route.
	FetchQuotes(ctx context.Context, route *Route) ([]Quote, error)
}

// OptionsRequest carries the inputs for an options computation.
type OptionsRequest struct {
	OriginState      string
	DestinationState string
	WeightKg         float64
	BaseCostMinor    int64
}

// EngineConfig holds engine tuning. Zero values fall back to the
// package defaults.
type EngineConfig struct {
	FeeRatio             decimal.Decimal
	StandardRateMinor    int64
	StandardDeliveryDays int
}

// Engine orchestrates quote fetching, blending, ranking, and default
// selection. It holds no per-request state; concurrent GetOptions
// calls are independent.
type Engine struct {
	gateway      Gateway
	feeRatio     decimal.Decimal
	standardRate int64
	standardDays int
	logger       *otelzap.Logger
}

// NewEngine creates an engine backed by the given gateway.
func NewEngine(cfg EngineConfig, gateway Gateway, logger *otelzap.Logger) *Engine {
	feeRatio := cfg.FeeRatio
	if feeRatio.IsZero() {
		feeRatio = DefaultFeeRatio
	}
	standardRate := cfg.StandardRateMinor
	if standardRate <= 0 {
		standardRate = defaultStandardRateMinor
	}
	standardDays := cfg.StandardDeliveryDays
	if standardDays <= 0 {
		standardDays = defaultStandardDeliveryDays
	}

	return &Engine{
		gateway:      gateway,
		feeRatio:     feeRatio,
		standardRate: standardRate,
		standardDays: standardDays,
		logger:       logger,
	}
}

// FeeRatio returns the platform fee ratio the engine blends with.
func (e *Engine) FeeRatio() decimal.Decimal {
	return e.feeRatio
}

// GetOptions computes the ranked shipping options for a request.
//
// An empty destination fails fast without touching the gateway. A
// gateway failure or an empty quote list degrades to exactly one
// standard option built from the caller's base cost, so the checkout
// UI always has something to render. The result's Success is false
// only for invalid input.
func (e *Engine) GetOptions(ctx context.Context, req OptionsRequest) Result {
	if req.DestinationState == "" {
		return Result{Success: false, Options: []Option{}, Error: ErrDestinationRequired.Error()}
	}

	weight := req.WeightKg
	if weight <= 0 {
		weight = 1
	}

	route := &Route{
		OriginState:      req.OriginState,
		DestinationState: req.DestinationState,
		WeightKg:         weight,
	}

	quotes, err := e.gateway.FetchQuotes(ctx, route)

	warning := ""
	if err != nil {
		e.logger.Warn("Courier gateway unavailable, using standard rate",
			zap.String("gateway", e.gateway.Name()),
			zap.String("destination", req.DestinationState),
			zap.Error(err),
		)
		quotes = nil
		warning = FallbackMessage
	}

	if len(quotes) == 0 {
		quotes = []Quote{e.standardQuote(req.BaseCostMinor)}
	}

	options := make([]Option, 0, len(quotes))
	seen := make(map[string]struct{}, len(quotes))
	for _, q := range quotes {
		if q.AmountMinor < 0 {
			// Should never survive gateway normalization; drop rather
			// than let a negative amount reach a total.
			continue
		}
		opt := Blend(q, e.feeRatio)
		if _, ok := seen[opt.ID]; ok {
			continue
		}
		seen[opt.ID] = struct{}{}
		options = append(options, opt)
	}

	rankOptions(options)

	result := Result{Success: true, Options: options, Error: warning}
	if len(options) > 0 {
		result.DefaultOption = &options[0]
	}
	return result
}

// standardQuote synthesizes the fallback quote from the caller's base
// shipping cost, or the configured flat rate when none was given.
func (e *Engine) standardQuote(baseCostMinor int64) Quote {
	amount := baseCostMinor
	if amount <= 0 {
		amount = e.standardRate
	}
	return Quote{
		Provider:     ProviderStandard,
		ProviderID:   string(ProviderStandard),
		ProviderName: "Standard Shipping",
		AmountMinor:  amount,
		Currency:     defaultCurrency,
		DeliveryDays: e.standardDays,
		DeliveryType: DeliveryStandard,
	}
}

// rankOptions orders ascending by total cost, then shorter delivery,
// then ID, so identical inputs always rank identically.
func rankOptions(options []Option) {
	sort.SliceStable(options, func(i, j int) bool {
		if options[i].TotalCostMinor != options[j].TotalCostMinor {
			return options[i].TotalCostMinor < options[j].TotalCostMinor
		}
		if options[i].DeliveryDays != options[j].DeliveryDays {
			return options[i].DeliveryDays < options[j].DeliveryDays
		}
		return options[i].ID < options[j].ID
	})
}
