// Package probe provides the HTTP health probing the deploy wait step and
// the status command share.
package probe

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultTimeout is the default timeout for a single probe.
const DefaultTimeout = 5 * time.Second

// Prober sends HTTP GET probes and decides healthy/unhealthy.
type Prober struct {
	client      *http.Client
	timeout     time.Duration
	interval    time.Duration
	retries     int
	startPeriod time.Duration
}

// Option configures the Prober.
type Option func(*Prober)

// WithTimeout sets the per-probe timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(p *Prober) {
		p.timeout = timeout
	}
}

// WithInterval sets the delay between consecutive probes.
func WithInterval(interval time.Duration) Option {
	return func(p *Prober) {
		p.interval = interval
	}
}

// WithRetries sets how many consecutive failures mark the target unhealthy.
func WithRetries(retries int) Option {
	return func(p *Prober) {
		p.retries = retries
	}
}

// WithStartPeriod sets the grace period during which failures do not count
// against the retry budget.
func WithStartPeriod(startPeriod time.Duration) Option {
	return func(p *Prober) {
		p.startPeriod = startPeriod
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(p *Prober) {
		p.client = client
	}
}

// New creates a new HTTP prober.
func New(opts ...Option) *Prober {
	p := &Prober{
		timeout:  DefaultTimeout,
		interval: 10 * time.Second,
		retries:  3,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.client == nil {
		p.client = &http.Client{
			Timeout: p.timeout,
			Transport: &http.Transport{
				DisableKeepAlives: true,
			},
			// Don't follow redirects - we want to see the actual response
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		}
	}

	return p
}

// Probe sends a single HTTP GET and returns the status code and response
// time in milliseconds.
func (p *Prober) Probe(ctx context.Context, url string) (int, int64, error) {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", "Skiff-HealthCheck/1.0")

	resp, err := p.client.Do(req)
	if err != nil {
		elapsed := time.Since(start).Milliseconds()
		return 0, elapsed, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	elapsed := time.Since(start).Milliseconds()
	return resp.StatusCode, elapsed, nil
}

// Healthy reports whether a single probe of url succeeds with a 2xx/3xx
// status.
func (p *Prober) Healthy(ctx context.Context, url string) bool {
	statusCode, elapsed, err := p.Probe(ctx, url)
	if err != nil {
		log.Debug().Err(err).Str("url", url).Msg("Probe failed")
		return false
	}

	healthy := statusCode >= 200 && statusCode < 400
	log.Debug().
		Str("url", url).
		Int("status", statusCode).
		Int64("response_time_ms", elapsed).
		Bool("healthy", healthy).
		Msg("Probe complete")

	return healthy
}

// WaitHealthy polls url until it answers healthy. Failures inside the start
// period do not count; after it has elapsed, the configured number of
// consecutive failures marks the target unhealthy and ends the wait.
func (p *Prober) WaitHealthy(ctx context.Context, url string) error {
	started := time.Now()
	failures := 0

	log.Info().
		Str("url", url).
		Dur("interval", p.interval).
		Dur("start_period", p.startPeriod).
		Int("retries", p.retries).
		Msg("Waiting for instance to become healthy")

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		if p.Healthy(ctx, url) {
			log.Info().
				Str("url", url).
				Dur("after", time.Since(started)).
				Msg("Instance is healthy")
			return nil
		}

		if time.Since(started) >= p.startPeriod {
			failures++
			log.Warn().
				Str("url", url).
				Int("failures", failures).
				Int("retries", p.retries).
				Msg("Health probe failed")

			if failures >= p.retries {
				return fmt.Errorf("instance unhealthy: %d consecutive probe failures on %s", failures, url)
			}
		} else {
			log.Debug().Str("url", url).Msg("Probe failed within start period, not counted")
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return fmt.Errorf("health wait cancelled: %w", ctx.Err())
		}
	}
}
