package provider

import (
	"context"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

// DefaultEndpoints are the localhost ports well-known wallet daemons
// listen on. Frame uses 1248.
var DefaultEndpoints = []string{
	"http://127.0.0.1:1248",
}

const (
	defaultProbeTimeout = 2 * time.Second
	probeRetryDelay     = 250 * time.Millisecond
	probeMaxRetries     = 2
)

// Detector finds a wallet endpoint and keeps the first hit for the rest
// of the session. The single-slot cache never expires on its own; Reset
// is the only invalidation.
type Detector struct {
	mu           sync.Mutex
	cached       *Provider
	endpoints    []string
	probeTimeout time.Duration
}

func NewDetector(endpoints []string, probeTimeout time.Duration) *Detector {
	if len(endpoints) == 0 {
		endpoints = DefaultEndpoints
	}
	if probeTimeout <= 0 {
		probeTimeout = defaultProbeTimeout
	}
	return &Detector{endpoints: endpoints, probeTimeout: probeTimeout}
}

// Detect returns the cached provider or probes the configured endpoints in
// order. ErrNoProvider when nothing answers.
func (d *Detector) Detect(ctx context.Context) (*Provider, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.cached != nil {
		return d.cached, nil
	}

	for _, endpoint := range d.endpoints {
		p, err := d.probe(ctx, endpoint)
		if err != nil {
			zap.S().Debugw("wallet endpoint probe failed", "endpoint", endpoint, "error", err)
			continue
		}
		zap.S().Infow("wallet endpoint detected", "endpoint", endpoint)
		d.cached = p
		return p, nil
	}
	return nil, ErrNoProvider
}

// Reset drops the cached provider so the next Detect probes again.
func (d *Detector) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cached != nil {
		d.cached.Close()
		d.cached = nil
	}
}

func (d *Detector) probe(ctx context.Context, endpoint string) (*Provider, error) {
	p, err := Dial(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	// The chain-id query is the liveness check; a wallet that cannot
	// answer it is not usable.
	op := func() error {
		probeCtx, cancel := context.WithTimeout(ctx, d.probeTimeout)
		defer cancel()
		_, err := p.ChainID(probeCtx)
		return err
	}
	bo := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(probeRetryDelay), probeMaxRetries),
		ctx,
	)
	if err := backoff.Retry(op, bo); err != nil {
		p.Close()
		return nil, err
	}
	return p, nil
}
