package models

// Station holds the static metadata for one entry in the NDBC active-station
// registry. Entries are immutable once parsed; ids are unique within a
// registry snapshot.
type Station struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Elevation int     `json:"elevation"`
}
