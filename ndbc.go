// Package ndbc retrieves NOAA NDBC realtime buoy observations and normalizes
// them into typed records with explicit units and missing-value handling.
package ndbc

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/coastwatch/ndbc-go/internal/config"
	"github.com/coastwatch/ndbc-go/internal/feed"
	"github.com/coastwatch/ndbc-go/internal/observability"
	"github.com/coastwatch/ndbc-go/models"
	"github.com/coastwatch/ndbc-go/pkg/http/client"
)

const observationPathPrefix = "/data/realtime2/"

// Client fetches and normalizes realtime observations. One logical request
// performs at most two sequential fetches (registry, then feed text) and
// shares no mutable state across calls, so a Client is safe for concurrent
// use.
type Client struct {
	cfg           *config.Config
	httpClient    *client.Client
	ownsTransport bool
	directory     DirectoryProvider
	useCachedDir  bool
	metrics       *observability.Metrics
}

type Option func(*Client)

// WithTransport supplies a pre-configured transport handle. The caller keeps
// ownership; Close will not touch it.
func WithTransport(h *client.Client) Option {
	return func(c *Client) {
		c.httpClient = h
	}
}

// WithDirectory substitutes the station directory provider.
func WithDirectory(d DirectoryProvider) Option {
	return func(c *Client) {
		c.directory = d
	}
}

// WithCachedDirectory wraps the default directory in a TTL'd cache instead of
// re-fetching the registry on every call.
func WithCachedDirectory() Option {
	return func(c *Client) {
		c.useCachedDir = true
	}
}

// WithBaseURL points the client at a different host. Intended for tests; the
// production endpoints are fixed.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.cfg.BaseURL = baseURL
	}
}

func WithHTTPTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.cfg.HTTPTimeout = timeout
	}
}

func WithRegistryTTL(ttl time.Duration) Option {
	return func(c *Client) {
		c.cfg.RegistryTTL = ttl
	}
}

func New(opts ...Option) (*Client, error) {
	c := &Client{
		cfg:     config.New(),
		metrics: observability.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		c.httpClient = client.New(client.Options{
			BaseURL:    c.cfg.BaseURL,
			Timeout:    c.cfg.HTTPTimeout,
			MaxRetries: c.cfg.MaxRetries,
		})
		c.ownsTransport = true
	}

	if c.directory == nil {
		directory := NewStationDirectory(c.httpClient)
		if c.useCachedDir {
			cached, err := NewCachedDirectory(directory, c.cfg.RegistryTTL)
			if err != nil {
				return nil, err
			}
			c.directory = cached
		} else {
			c.directory = directory
		}
	}

	return c, nil
}

// GetObservation resolves the station, fetches its realtime feed and returns
// the normalized record. It either fully succeeds or fails with one of the
// package's error kinds; no partial results.
func (c *Client) GetObservation(ctx context.Context, stationID string) (*models.StructuredObservation, error) {
	station, err := c.directory.Lookup(ctx, stationID)
	if err != nil {
		return nil, err
	}

	path := observationPathPrefix + strings.ToUpper(stationID) + ".txt"

	start := time.Now()
	resp, err := c.httpClient.Get(ctx, path)
	if err != nil {
		c.metrics.FeedRequests.WithLabelValues(observability.FeedObservation, observability.OutcomeError).Inc()
		return nil, NewTransportError(path, 0, err)
	}
	c.metrics.FeedDuration.WithLabelValues(observability.FeedObservation).Observe(time.Since(start).Seconds())

	switch {
	case resp.StatusCode == http.StatusNotFound:
		c.metrics.FeedRequests.WithLabelValues(observability.FeedObservation, observability.OutcomeNotFound).Inc()
		return nil, NewInvalidStationError(stationID)
	case resp.StatusCode != http.StatusOK:
		c.metrics.FeedRequests.WithLabelValues(observability.FeedObservation, observability.OutcomeError).Inc()
		return nil, NewTransportError(path, resp.StatusCode, nil)
	}
	c.metrics.FeedRequests.WithLabelValues(observability.FeedObservation, observability.OutcomeSuccess).Inc()

	rep, err := feed.ReadReport(bytes.NewReader(resp.Body))
	if err != nil {
		return nil, NewMalformedObservationError(stationID, "", err)
	}

	obs, err := buildObservation(station, rep)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("station_id", stationID).
		Str("observed_at", obs.Observation.Time.UTCTime).
		Msg("normalized observation")
	return obs, nil
}

// Close releases the transport handle if the client owns it. Caller-supplied
// handles are left alone.
func (c *Client) Close() {
	if c.ownsTransport {
		c.httpClient.Close()
	}
}
