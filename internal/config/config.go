package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"go.opentelemetry.io/otel/attribute"
)

// Config holds all configuration for the service.
type Config struct {
	// Server
	Port     int    `envconfig:"PORT" default:"80"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Sendbox. Credentials are required at startup unless the mock
	// client is enabled; absence is a fatal configuration error.
	SendboxBaseURL      string `envconfig:"SENDBOX_BASE_URL" default:"https://live.sendbox.co"`
	SendboxAccessToken  string `envconfig:"SENDBOX_ACCESS_TOKEN"`
	SendboxClientSecret string `envconfig:"SENDBOX_CLIENT_SECRET"`
	SendboxAppID        string `envconfig:"SENDBOX_APP_ID"`
	SendboxUseMock      bool   `envconfig:"SENDBOX_USE_MOCK" default:"false"`

	// Pricing
	PlatformFeeRatio  float64 `envconfig:"PLATFORM_FEE_RATIO" default:"0.05"`
	TaxRate           float64 `envconfig:"TAX_RATE" default:"0.075"`
	StandardRateMinor int64   `envconfig:"STANDARD_RATE_MINOR" default:"250000"`

	// Telemetry
	OTELEnabled  bool   `envconfig:"OTEL_ENABLED" default:"true"`
	OTELEndpoint string `envconfig:"OTEL_ENDPOINT" default:"http://jaeger-collector.observability.svc.cluster.local:4318"`
	ServiceName  string `envconfig:"SERVICE_NAME" default:"ojamall-shipping"`
	Version      string `envconfig:"SERVICE_VERSION" default:"0.0.1"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return &cfg, nil
}

// Attributes returns OpenTelemetry attributes for this configuration.
func (c *Config) Attributes() []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("service.name", c.ServiceName),
		attribute.String("service.version", c.Version),
		attribute.Bool("sendbox.mock", c.SendboxUseMock),
	}
}
