package models

// StructuredObservation is the fully normalized form of one realtime buoy
// report: station location plus the latest observation with explicit units.
// Measured values are pointers; nil means the feed reported the measurement
// as missing. Units are copied verbatim from the feed's units row and are
// never nil.
type StructuredObservation struct {
	Location    Location    `json:"location"`
	Observation Observation `json:"observation"`
}

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Elevation int     `json:"elevation"`
	Name      string  `json:"name"`
}

type Observation struct {
	Time    ObservationTime `json:"time"`
	Wind    Wind            `json:"wind"`
	Waves   Waves           `json:"waves"`
	Weather Weather         `json:"weather"`
}

// ObservationTime carries the report timestamp in both ISO-8601 UTC form
// (offset spelled "+00:00") and Unix epoch seconds.
type ObservationTime struct {
	UTCTime  string `json:"utc_time"`
	UnixTime int64  `json:"unix_time"`
}

type Wind struct {
	Direction        *int     `json:"direction"`
	DirectionUnit    string   `json:"direction_unit"`
	DirectionCompass *string  `json:"direction_compass"`
	Speed            *float64 `json:"speed"`
	SpeedUnit        string   `json:"speed_unit"`
	Gusts            *float64 `json:"gusts"`
	GustsUnit        string   `json:"gusts_unit"`
}

type Waves struct {
	Height            *float64 `json:"height"`
	HeightUnit        string   `json:"height_unit"`
	Period            *int     `json:"period"`
	PeriodUnit        string   `json:"period_unit"`
	AveragePeriod     *int     `json:"average_period"`
	AveragePeriodUnit string   `json:"average_period_unit"`
	Direction         *int     `json:"direction"`
	DirectionUnit     string   `json:"direction_unit"`
	DirectionCompass  *string  `json:"direction_compass"`
}

type Weather struct {
	Pressure             *float64 `json:"pressure"`
	PressureUnit         string   `json:"pressure_unit"`
	AirTemperature       *float64 `json:"air_temperature"`
	AirTemperatureUnit   string   `json:"air_temperature_unit"`
	WaterTemperature     *float64 `json:"water_temperature"`
	WaterTemperatureUnit string   `json:"water_temperature_unit"`
	Dewpoint             *float64 `json:"dewpoint"`
	DewpointUnit         string   `json:"dewpoint_unit"`
	Visibility           *float64 `json:"visibility"`
	VisibilityUnit       string   `json:"visibility_unit"`
	PressureTendency     *float64 `json:"pressure_tendency"`
	PressureTendencyUnit string   `json:"pressure_tendency_unit"`
	Tide                 *float64 `json:"tide"`
	TideUnit             string   `json:"tide_unit"`
}
