package main

import (
	"context"

	"github.com/ojamall/shipping/internal/config"
	"github.com/ojamall/shipping/internal/telemetry"
	"github.com/ojamall/shipping/pkg/rates"
	"github.com/ojamall/shipping/pkg/rates/sendbox"
	"github.com/shopspring/decimal"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

func loadConfig() (*config.Config, error) {
	return config.Load()
}

func initLogger(level string) (*otelzap.Logger, error) {
	return telemetry.NewLogger(level)
}

func initTracer(ctx context.Context, cfg *config.Config) (func(context.Context) error, error) {
	if !cfg.OTELEnabled {
		return func(context.Context) error { return nil }, nil
	}

	_, shutdown, err := telemetry.InitTracer(ctx, cfg.OTELEndpoint, cfg.ServiceName, cfg.Version)
	return shutdown, err
}

func initEngine(cfg *config.Config, logger *otelzap.Logger) (*rates.Engine, error) {
	gateway, err := sendbox.New(sendbox.Config{
		BaseURL:      cfg.SendboxBaseURL,
		AccessToken:  cfg.SendboxAccessToken,
		ClientSecret: cfg.SendboxClientSecret,
		AppID:        cfg.SendboxAppID,
		UseMock:      cfg.SendboxUseMock,
	}, logger)
	if err != nil {
		return nil, err
	}

	engine := rates.NewEngine(rates.EngineConfig{
		FeeRatio:          decimal.NewFromFloat(cfg.PlatformFeeRatio),
		StandardRateMinor: cfg.StandardRateMinor,
	}, gateway, logger)

	return engine, nil
}
