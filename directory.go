package ndbc

import (
	"context"
	"encoding/xml"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/coastwatch/ndbc-go/internal/observability"
	"github.com/coastwatch/ndbc-go/models"
	"github.com/coastwatch/ndbc-go/pkg/http/client"
)

const registryPath = "/activestations.xml"

// DirectoryProvider resolves a station id to its registry metadata.
type DirectoryProvider interface {
	Lookup(ctx context.Context, stationID string) (*models.Station, error)
}

// RegistryFetcher retrieves a full registry snapshot. CachedDirectory builds
// on this capability so a different snapshot source can be substituted.
type RegistryFetcher interface {
	Fetch(ctx context.Context) (map[string]models.Station, error)
}

// StationDirectory is the uncached provider: every Lookup re-fetches the
// registry document.
type StationDirectory struct {
	httpClient *client.Client
	metrics    *observability.Metrics
}

func NewStationDirectory(httpClient *client.Client) *StationDirectory {
	return &StationDirectory{
		httpClient: httpClient,
		metrics:    observability.Default(),
	}
}

// Fetch retrieves and parses the active-station registry.
func (d *StationDirectory) Fetch(ctx context.Context) (map[string]models.Station, error) {
	start := time.Now()
	resp, err := d.httpClient.Get(ctx, registryPath)
	if err != nil {
		d.metrics.FeedRequests.WithLabelValues(observability.FeedRegistry, observability.OutcomeError).Inc()
		return nil, NewTransportError(registryPath, 0, err)
	}
	d.metrics.FeedDuration.WithLabelValues(observability.FeedRegistry).Observe(time.Since(start).Seconds())

	if resp.StatusCode != http.StatusOK {
		d.metrics.FeedRequests.WithLabelValues(observability.FeedRegistry, observability.OutcomeError).Inc()
		return nil, NewTransportError(registryPath, resp.StatusCode, nil)
	}

	stations, err := parseRegistry(resp.Body)
	if err != nil {
		d.metrics.FeedRequests.WithLabelValues(observability.FeedRegistry, observability.OutcomeError).Inc()
		return nil, NewRegistryParseError(err)
	}
	d.metrics.FeedRequests.WithLabelValues(observability.FeedRegistry, observability.OutcomeSuccess).Inc()

	log.Debug().Int("station_count", len(stations)).Msg("parsed station registry")
	return stations, nil
}

func (d *StationDirectory) Lookup(ctx context.Context, stationID string) (*models.Station, error) {
	stations, err := d.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	station, ok := stations[stationID]
	if !ok {
		log.Debug().Str("station_id", stationID).Msg("station id not present in registry")
		return nil, NewInvalidStationError(stationID)
	}
	return &station, nil
}

type registryDocument struct {
	XMLName  xml.Name          `xml:"stations"`
	Stations []registryStation `xml:"station"`
}

type registryStation struct {
	ID   string  `xml:"id,attr"`
	Lat  float64 `xml:"lat,attr"`
	Lon  float64 `xml:"lon,attr"`
	Elev string  `xml:"elev,attr"`
	Name string  `xml:"name,attr"`
}

func parseRegistry(body []byte) (map[string]models.Station, error) {
	var doc registryDocument
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, err
	}

	stations := make(map[string]models.Station, len(doc.Stations))
	for _, s := range doc.Stations {
		// elev is optional and sometimes fractional ("2.1"); absent means
		// sea level.
		elevation := 0
		if s.Elev != "" {
			f, err := strconv.ParseFloat(s.Elev, 64)
			if err != nil {
				return nil, fmt.Errorf("station %s: invalid elev %q: %w", s.ID, s.Elev, err)
			}
			elevation = int(math.Round(f))
		}

		stations[s.ID] = models.Station{
			ID:        s.ID,
			Name:      s.Name,
			Latitude:  s.Lat,
			Longitude: s.Lon,
			Elevation: elevation,
		}
	}
	return stations, nil
}
