// Package compass buckets a bearing in degrees into one of the sixteen
// conventional compass points.
package compass

// points in clockwise order starting just past north. North itself is the
// fall-through result, covering [0, 11.25] and (348.75, 360].
var points = [...]string{
	"NNE", "NE", "ENE", "E",
	"ESE", "SE", "SSE", "S",
	"SSW", "SW", "WSW", "W",
	"WNW", "NW", "NNW",
}

// Resolve maps degrees to a compass label. Buckets are 22.5 degrees wide with
// (lower, upper] boundaries: a value exactly on a lower boundary belongs to
// the previous bucket, a value exactly on an upper boundary to the current
// one. All boundaries are multiples of 11.25 and therefore exact in float64,
// so the comparisons are boundary-exact.
func Resolve(degrees float64) string {
	lower := 11.25
	for _, label := range points {
		upper := lower + 22.5
		if degrees > lower && degrees <= upper {
			return label
		}
		lower = upper
	}
	return "N"
}
