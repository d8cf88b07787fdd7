package ndbc

import (
	"context"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/coastwatch/ndbc-go/internal/observability"
	"github.com/coastwatch/ndbc-go/models"
)

const directoryCacheSize = 2048

// CachedDirectory is a DirectoryProvider that keeps the latest registry
// snapshot in an LRU for the configured TTL. A lookup that misses the cache
// (unknown id, or stale snapshot) re-fetches the registry before deciding the
// id is invalid.
type CachedDirectory struct {
	source  RegistryFetcher
	entries *lru.Cache[string, models.Station]
	ttl     time.Duration
	clock   clockwork.Clock
	metrics *observability.Metrics

	mu        sync.Mutex
	fetchedAt time.Time
}

func NewCachedDirectory(source RegistryFetcher, ttl time.Duration) (*CachedDirectory, error) {
	entries, err := lru.New[string, models.Station](directoryCacheSize)
	if err != nil {
		return nil, err
	}

	return &CachedDirectory{
		source:  source,
		entries: entries,
		ttl:     ttl,
		clock:   clockwork.NewRealClock(),
		metrics: observability.Default(),
	}, nil
}

// SetClock swaps the time source used for TTL checks. Pass nil to reset to
// real time. Tests freeze time this way.
func (d *CachedDirectory) SetClock(c clockwork.Clock) {
	if c == nil {
		c = clockwork.NewRealClock()
	}
	d.mu.Lock()
	d.clock = c
	d.mu.Unlock()
}

func (d *CachedDirectory) Lookup(ctx context.Context, stationID string) (*models.Station, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.fresh() {
		if station, ok := d.entries.Get(stationID); ok {
			d.metrics.CacheLookups.WithLabelValues("hit").Inc()
			log.Trace().Str("station_id", stationID).Msg("directory cache hit")
			return &station, nil
		}
	}
	d.metrics.CacheLookups.WithLabelValues("miss").Inc()

	stations, err := d.source.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	d.entries.Purge()
	for id, station := range stations {
		d.entries.Add(id, station)
	}
	d.fetchedAt = d.clock.Now()
	log.Debug().Int("station_count", len(stations)).Msg("refreshed directory cache")

	if station, ok := d.entries.Get(stationID); ok {
		return &station, nil
	}
	return nil, NewInvalidStationError(stationID)
}

func (d *CachedDirectory) fresh() bool {
	return !d.fetchedAt.IsZero() && d.clock.Since(d.fetchedAt) <= d.ttl
}
