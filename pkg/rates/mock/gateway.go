// Package mock provides a mock quote gateway for testing.
package mock

import (
	"context"
	"sync"

	"github.com/ojamall/shipping/pkg/rates"
)

// Gateway is a configurable mock implementation of rates.Gateway.
type Gateway struct {
	name string

	// Quotes and Err are returned by FetchQuotes unless OnFetchQuotes
	// is set.
	Quotes []rates.Quote
	Err    error

	OnFetchQuotes func(ctx context.Context, route *rates.Route) ([]rates.Quote, error)

	mu    sync.Mutex
	calls int
}

// New creates a new mock gateway.
func New(name string) *Gateway {
	return &Gateway{name: name}
}

// Name returns the gateway name.
func (g *Gateway) Name() string {
	return g.name
}

// FetchQuotes returns the configured quotes or error and records the
// call.
func (g *Gateway) FetchQuotes(ctx context.Context, route *rates.Route) ([]rates.Quote, error) {
	g.mu.Lock()
	g.calls++
	g.mu.Unlock()

	if g.OnFetchQuotes != nil {
		return g.OnFetchQuotes(ctx, route)
	}
	if g.Err != nil {
		return nil, g.Err
	}
	return g.Quotes, nil
}

// Calls returns how many times FetchQuotes was invoked.
func (g *Gateway) Calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}
