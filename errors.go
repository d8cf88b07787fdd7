package ndbc

import "fmt"

// The package reports failures through a closed set of error kinds so callers
// can branch with errors.As instead of matching message text. All of them are
// terminal for the current call; retrying is the caller's decision.

// InvalidStationError means the station id is absent from the registry, or
// the observation feed answered not-found for it.
type InvalidStationError struct {
	StationID string
}

func (e *InvalidStationError) Error() string {
	return fmt.Sprintf("invalid station id %q", e.StationID)
}

func NewInvalidStationError(stationID string) *InvalidStationError {
	return &InvalidStationError{StationID: stationID}
}

// RegistryParseError means the active-station registry document could not be
// parsed into the station mapping.
type RegistryParseError struct {
	Err error
}

func (e *RegistryParseError) Error() string {
	return fmt.Sprintf("parsing station registry: %v", e.Err)
}

func (e *RegistryParseError) Unwrap() error {
	return e.Err
}

func NewRegistryParseError(err error) *RegistryParseError {
	return &RegistryParseError{Err: err}
}

// MalformedObservationError means a non-sentinel token failed numeric
// coercion, the time components were invalid, or the feed did not carry both
// conventional rows. Field names the offending feed column when known.
type MalformedObservationError struct {
	StationID string
	Field     string
	Err       error
}

func (e *MalformedObservationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("malformed observation for station %s, field %s: %v", e.StationID, e.Field, e.Err)
	}
	return fmt.Sprintf("malformed observation for station %s: %v", e.StationID, e.Err)
}

func (e *MalformedObservationError) Unwrap() error {
	return e.Err
}

func NewMalformedObservationError(stationID, field string, err error) *MalformedObservationError {
	return &MalformedObservationError{StationID: stationID, Field: field, Err: err}
}

// TransportError means a feed request failed outright or answered with a
// non-success status that has no station-specific meaning.
type TransportError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("fetching %s: unexpected status %d", e.URL, e.StatusCode)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func NewTransportError(url string, statusCode int, err error) *TransportError {
	return &TransportError{URL: url, StatusCode: statusCode, Err: err}
}
