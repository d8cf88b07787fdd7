package ndbc

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/coastwatch/ndbc-go/internal/compass"
	"github.com/coastwatch/ndbc-go/internal/feed"
	"github.com/coastwatch/ndbc-go/models"
)

// sentinel is the feed's marker for a missing measurement.
const sentinel = "MM"

// isoUTCLayout spells the UTC offset as "+00:00" rather than "Z".
const isoUTCLayout = "2006-01-02T15:04:05-07:00"

// buildObservation merges the report's units row and latest-value row with
// the station metadata into the normalized record. Units are copied verbatim
// from the units row; values come from the latest row, with the sentinel
// mapping to nil.
func buildObservation(station *models.Station, rep *feed.Report) (*models.StructuredObservation, error) {
	obsTime, err := buildTime(station.ID, rep.Latest)
	if err != nil {
		return nil, err
	}

	wind, err := buildWind(station.ID, rep)
	if err != nil {
		return nil, err
	}

	waves, err := buildWaves(station.ID, rep)
	if err != nil {
		return nil, err
	}

	weather, err := buildWeather(station.ID, rep)
	if err != nil {
		return nil, err
	}

	return &models.StructuredObservation{
		Location: models.Location{
			Latitude:  station.Latitude,
			Longitude: station.Longitude,
			Elevation: station.Elevation,
			Name:      station.Name,
		},
		Observation: models.Observation{
			Time:    *obsTime,
			Wind:    *wind,
			Waves:   *waves,
			Weather: *weather,
		},
	}, nil
}

var timeFields = [...]string{"YY", "MM", "DD", "hh", "mm"}

// buildTime constructs the UTC timestamp from the latest row. Time fields are
// never sentineled in practice; any non-numeric or out-of-range component is
// a malformed observation, never a silent default.
func buildTime(stationID string, latest feed.Row) (*models.ObservationTime, error) {
	var parts [len(timeFields)]int
	for i, field := range timeFields {
		v, err := strconv.Atoi(latest[field])
		if err != nil {
			return nil, NewMalformedObservationError(stationID, field, err)
		}
		parts[i] = v
	}

	t := time.Date(parts[0], time.Month(parts[1]), parts[2], parts[3], parts[4], 0, 0, time.UTC)

	// time.Date normalizes out-of-range components (month 13 becomes January
	// of the next year); reject anything that does not round-trip.
	if t.Year() != parts[0] || int(t.Month()) != parts[1] || t.Day() != parts[2] ||
		t.Hour() != parts[3] || t.Minute() != parts[4] {
		return nil, NewMalformedObservationError(stationID, "time",
			fmt.Errorf("time components %v out of range", parts))
	}

	return &models.ObservationTime{
		UTCTime:  t.Format(isoUTCLayout),
		UnixTime: t.Unix(),
	}, nil
}

func buildWind(stationID string, rep *feed.Report) (*models.Wind, error) {
	direction, directionCompass, err := bearingValue(stationID, rep.Latest, "WDIR")
	if err != nil {
		return nil, err
	}

	speed, err := floatValue(stationID, rep.Latest, "WSPD")
	if err != nil {
		return nil, err
	}

	gusts, err := floatValue(stationID, rep.Latest, "GST")
	if err != nil {
		return nil, err
	}

	return &models.Wind{
		Direction:        direction,
		DirectionUnit:    rep.Units["WDIR"],
		DirectionCompass: directionCompass,
		Speed:            speed,
		SpeedUnit:        rep.Units["WSPD"],
		Gusts:            gusts,
		GustsUnit:        rep.Units["GST"],
	}, nil
}

func buildWaves(stationID string, rep *feed.Report) (*models.Waves, error) {
	height, err := floatValue(stationID, rep.Latest, "WVHT")
	if err != nil {
		return nil, err
	}

	period, err := intValue(stationID, rep.Latest, "DPD")
	if err != nil {
		return nil, err
	}

	// Dominant period is a plain integer parse while average period rounds a
	// float token; the feed prints them differently and both readings are
	// kept as-is.
	averagePeriod, err := roundedIntValue(stationID, rep.Latest, "APD")
	if err != nil {
		return nil, err
	}

	direction, directionCompass, err := bearingValue(stationID, rep.Latest, "MWD")
	if err != nil {
		return nil, err
	}

	return &models.Waves{
		Height:            height,
		HeightUnit:        rep.Units["WVHT"],
		Period:            period,
		PeriodUnit:        rep.Units["DPD"],
		AveragePeriod:     averagePeriod,
		AveragePeriodUnit: rep.Units["APD"],
		Direction:         direction,
		DirectionUnit:     rep.Units["MWD"],
		DirectionCompass:  directionCompass,
	}, nil
}

func buildWeather(stationID string, rep *feed.Report) (*models.Weather, error) {
	weather := &models.Weather{
		PressureUnit:         rep.Units["PRES"],
		AirTemperatureUnit:   rep.Units["ATMP"],
		WaterTemperatureUnit: rep.Units["WTMP"],
		DewpointUnit:         rep.Units["DEWP"],
		VisibilityUnit:       rep.Units["VIS"],
		PressureTendencyUnit: rep.Units["PTDY"],
		TideUnit:             rep.Units["TIDE"],
	}

	for _, f := range []struct {
		field string
		dst   **float64
	}{
		{"PRES", &weather.Pressure},
		{"ATMP", &weather.AirTemperature},
		{"WTMP", &weather.WaterTemperature},
		{"DEWP", &weather.Dewpoint},
		{"VIS", &weather.Visibility},
		{"PTDY", &weather.PressureTendency},
		{"TIDE", &weather.Tide},
	} {
		v, err := floatValue(stationID, rep.Latest, f.field)
		if err != nil {
			return nil, err
		}
		*f.dst = v
	}

	return weather, nil
}

func floatValue(stationID string, latest feed.Row, field string) (*float64, error) {
	token := latest[field]
	if token == sentinel {
		return nil, nil
	}

	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return nil, NewMalformedObservationError(stationID, field, err)
	}
	return &v, nil
}

func intValue(stationID string, latest feed.Row, field string) (*int, error) {
	token := latest[field]
	if token == sentinel {
		return nil, nil
	}

	v, err := strconv.Atoi(token)
	if err != nil {
		return nil, NewMalformedObservationError(stationID, field, err)
	}
	return &v, nil
}

func roundedIntValue(stationID string, latest feed.Row, field string) (*int, error) {
	token := latest[field]
	if token == sentinel {
		return nil, nil
	}

	f, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return nil, NewMalformedObservationError(stationID, field, err)
	}
	v := int(math.Round(f))
	return &v, nil
}

// bearingValue reads an angular field: the stored value is an integer parse
// of the token, the compass label comes from the same token parsed as a
// float. Both are nil exactly when the token is the sentinel.
func bearingValue(stationID string, latest feed.Row, field string) (*int, *string, error) {
	token := latest[field]
	if token == sentinel {
		return nil, nil, nil
	}

	v, err := strconv.Atoi(token)
	if err != nil {
		return nil, nil, NewMalformedObservationError(stationID, field, err)
	}

	degrees, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return nil, nil, NewMalformedObservationError(stationID, field, err)
	}

	label := compass.Resolve(degrees)
	return &v, &label, nil
}
