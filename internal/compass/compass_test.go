package compass

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveBoundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		degrees float64
		want    string
	}{
		// Exact boundaries: lower boundary belongs to the previous bucket,
		// upper boundary to the current one.
		{0.0, "N"},
		{11.25, "N"},
		{11.26, "NNE"},
		{33.75, "NNE"},
		{326.25, "NW"},
		{348.75, "NNW"},
		{348.76, "N"},
		{360.0, "N"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Resolve(tt.degrees), "Resolve(%v)", tt.degrees)
	}
}

func TestResolveBucketCenters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		degrees float64
		want    string
	}{
		{22.5, "NNE"},
		{45, "NE"},
		{67.5, "ENE"},
		{90, "E"},
		{112.5, "ESE"},
		{135, "SE"},
		{157.5, "SSE"},
		{180, "S"},
		{202.5, "SSW"},
		{225, "SW"},
		{247.5, "WSW"},
		{270, "W"},
		{292.5, "WNW"},
		{315, "NW"},
		{337.5, "NNW"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Resolve(tt.degrees), "Resolve(%v)", tt.degrees)
	}
}
