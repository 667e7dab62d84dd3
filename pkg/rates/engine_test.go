package rates_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ojamall/shipping/pkg/rates"
	"github.com/ojamall/shipping/pkg/rates/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

func newTestEngine(gw rates.Gateway) *rates.Engine {
	logger := otelzap.New(zap.NewNop())
	return rates.NewEngine(rates.EngineConfig{}, gw, logger)
}

func optionsRequest() rates.OptionsRequest {
	return rates.OptionsRequest{
		OriginState:      "Lagos",
		DestinationState: "Abuja",
		WeightKg:         1.5,
		BaseCostMinor:    100000,
	}
}

func TestEngine_GetOptions_RanksByTotalCost(t *testing.T) {
	gw := mock.New("sendbox")
	gw.Quotes = []rates.Quote{
		liveQuote("courier-b", 200000, 1),
		liveQuote("courier-a", 150000, 2),
	}
	engine := newTestEngine(gw)

	result := engine.GetOptions(context.Background(), optionsRequest())

	require.True(t, result.Success)
	require.Len(t, result.Options, 2)
	assert.Empty(t, result.Error)

	a, b := result.Options[0], result.Options[1]
	assert.Equal(t, "courier-a-standard", a.ID)
	assert.Equal(t, int64(150000), a.CourierCostMinor)
	assert.Equal(t, int64(7500), a.PlatformFeeMinor)
	assert.Equal(t, int64(157500), a.TotalCostMinor)

	assert.Equal(t, "courier-b-standard", b.ID)
	assert.Equal(t, int64(200000), b.CourierCostMinor)
	assert.Equal(t, int64(10000), b.PlatformFeeMinor)
	assert.Equal(t, int64(210000), b.TotalCostMinor)

	require.NotNil(t, result.DefaultOption)
	assert.Equal(t, a.ID, result.DefaultOption.ID)
}

func TestEngine_GetOptions_EmptyDestination(t *testing.T) {
	gw := mock.New("sendbox")
	engine := newTestEngine(gw)

	req := optionsRequest()
	req.DestinationState = ""
	result := engine.GetOptions(context.Background(), req)

	assert.False(t, result.Success)
	assert.Empty(t, result.Options)
	assert.Nil(t, result.DefaultOption)
	assert.NotEmpty(t, result.Error)
	assert.Equal(t, 0, gw.Calls(), "gateway must not be called for invalid input")
}

func TestEngine_GetOptions_GatewayUnavailable(t *testing.T) {
	gw := mock.New("sendbox")
	gw.Err = rates.NewGatewayError("sendbox", "TIMEOUT", "request timed out")
	engine := newTestEngine(gw)

	result := engine.GetOptions(context.Background(), optionsRequest())

	require.True(t, result.Success)
	require.Len(t, result.Options, 1)
	assert.NotEmpty(t, result.Error)

	opt := result.Options[0]
	assert.Equal(t, rates.ProviderStandard, opt.Provider)
	assert.Equal(t, int64(100000), opt.CourierCostMinor)
	assert.Equal(t, int64(5000), opt.PlatformFeeMinor)
	assert.Equal(t, int64(105000), opt.TotalCostMinor)

	require.NotNil(t, result.DefaultOption)
	assert.Equal(t, "standard", result.DefaultOption.ID)
}

func TestEngine_GetOptions_UnrecognizedGatewayError(t *testing.T) {
	gw := mock.New("sendbox")
	gw.Err = errors.New("boom")
	engine := newTestEngine(gw)

	result := engine.GetOptions(context.Background(), optionsRequest())

	assert.True(t, result.Success)
	require.Len(t, result.Options, 1)
	assert.Equal(t, rates.ProviderStandard, result.Options[0].Provider)
	assert.NotEmpty(t, result.Error)
}

func TestEngine_GetOptions_EmptyQuoteList(t *testing.T) {
	gw := mock.New("sendbox")
	gw.Quotes = []rates.Quote{}
	engine := newTestEngine(gw)

	result := engine.GetOptions(context.Background(), optionsRequest())

	require.True(t, result.Success)
	require.Len(t, result.Options, 1)
	assert.Equal(t, rates.ProviderStandard, result.Options[0].Provider)
	// A clean empty quote list is not a gateway failure.
	assert.Empty(t, result.Error)
}

func TestEngine_GetOptions_FallbackWithoutBaseCost(t *testing.T) {
	gw := mock.New("sendbox")
	gw.Err = rates.NewGatewayError("sendbox", "TIMEOUT", "request timed out")
	engine := newTestEngine(gw)

	req := optionsRequest()
	req.BaseCostMinor = 0
	result := engine.GetOptions(context.Background(), req)

	require.True(t, result.Success)
	require.Len(t, result.Options, 1)
	assert.Greater(t, result.Options[0].CourierCostMinor, int64(0),
		"fallback must still price a usable option")
}

func TestEngine_GetOptions_DeduplicatesByID(t *testing.T) {
	gw := mock.New("sendbox")
	gw.Quotes = []rates.Quote{
		liveQuote("courier-a", 150000, 2),
		liveQuote("courier-a", 180000, 3), // same courier+service twice
	}
	engine := newTestEngine(gw)

	result := engine.GetOptions(context.Background(), optionsRequest())

	require.Len(t, result.Options, 1)
	// First occurrence wins.
	assert.Equal(t, int64(150000), result.Options[0].CourierCostMinor)
}

func TestEngine_GetOptions_TieBreaks(t *testing.T) {
	gw := mock.New("sendbox")
	gw.Quotes = []rates.Quote{
		liveQuote("courier-c", 150000, 3),
		liveQuote("courier-b", 150000, 3),
		liveQuote("courier-a", 150000, 1),
	}
	engine := newTestEngine(gw)

	result := engine.GetOptions(context.Background(), optionsRequest())

	require.Len(t, result.Options, 3)
	// Same total: shorter delivery first, then lexicographic ID.
	assert.Equal(t, "courier-a-standard", result.Options[0].ID)
	assert.Equal(t, "courier-b-standard", result.Options[1].ID)
	assert.Equal(t, "courier-c-standard", result.Options[2].ID)
}

func TestEngine_GetOptions_Deterministic(t *testing.T) {
	gw := mock.New("sendbox")
	gw.Quotes = []rates.Quote{
		liveQuote("courier-b", 200000, 1),
		liveQuote("courier-a", 150000, 2),
		liveQuote("courier-c", 150000, 2),
	}
	engine := newTestEngine(gw)

	first := engine.GetOptions(context.Background(), optionsRequest())
	second := engine.GetOptions(context.Background(), optionsRequest())

	assert.Equal(t, first.Options, second.Options)
}

func TestEngine_GetOptions_DefaultIsCheapest(t *testing.T) {
	cases := [][]rates.Quote{
		{liveQuote("a", 150000, 2)},
		{liveQuote("a", 150000, 2), liveQuote("b", 90000, 4)},
		{liveQuote("a", 300000, 1), liveQuote("b", 90000, 4), liveQuote("c", 120000, 2)},
		{liveQuote("a", 100, 1), liveQuote("b", 100, 1), liveQuote("c", 99, 9)},
	}

	for _, quotes := range cases {
		gw := mock.New("sendbox")
		gw.Quotes = quotes
		engine := newTestEngine(gw)

		result := engine.GetOptions(context.Background(), optionsRequest())
		require.NotNil(t, result.DefaultOption)

		for _, opt := range result.Options {
			assert.LessOrEqual(t, result.DefaultOption.TotalCostMinor, opt.TotalCostMinor)
		}
	}
}

func TestEngine_GetOptions_OptionInvariant(t *testing.T) {
	gw := mock.New("sendbox")
	gw.Quotes = []rates.Quote{
		liveQuote("a", 1, 1),
		liveQuote("b", 12345, 2),
		liveQuote("c", 999999999, 3),
	}
	engine := newTestEngine(gw)

	result := engine.GetOptions(context.Background(), optionsRequest())

	for _, opt := range result.Options {
		assert.Equal(t, opt.CourierCostMinor+opt.PlatformFeeMinor, opt.TotalCostMinor)
	}
}

func TestEngine_GetOptions_DiscardsNegativeAmounts(t *testing.T) {
	gw := mock.New("sendbox")
	gw.Quotes = []rates.Quote{
		liveQuote("a", -500, 1),
		liveQuote("b", 150000, 2),
	}
	engine := newTestEngine(gw)

	result := engine.GetOptions(context.Background(), optionsRequest())

	require.Len(t, result.Options, 1)
	assert.Equal(t, "b-standard", result.Options[0].ID)
}

func TestEngine_GetOptions_DefaultsWeightToOne(t *testing.T) {
	gw := mock.New("sendbox")
	gw.OnFetchQuotes = func(ctx context.Context, route *rates.Route) ([]rates.Quote, error) {
		assert.Equal(t, 1.0, route.WeightKg)
		return []rates.Quote{liveQuote("a", 150000, 2)}, nil
	}
	engine := newTestEngine(gw)

	req := optionsRequest()
	req.WeightKg = 0
	result := engine.GetOptions(context.Background(), req)

	assert.True(t, result.Success)
	assert.Equal(t, 1, gw.Calls())
}
