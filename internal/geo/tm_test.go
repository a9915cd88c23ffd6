package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeodeticToTM_ProjectionOrigin(t *testing.T) {
	// The zone origin maps to exactly the false offsets.
	x, y := GeodeticToTM(127.0, 38.0)

	assert.InDelta(t, 200000.0, x, 1e-6)
	assert.InDelta(t, 500000.0, y, 1e-6)
}

func TestGeodeticToTM_DirectionOfAxes(t *testing.T) {
	t.Run("east of meridian increases x", func(t *testing.T) {
		x, _ := GeodeticToTM(128.0, 38.0)
		assert.Greater(t, x, 200000.0)
	})

	t.Run("west of meridian decreases x", func(t *testing.T) {
		x, _ := GeodeticToTM(126.0, 38.0)
		assert.Less(t, x, 200000.0)
	})

	t.Run("south of origin decreases y", func(t *testing.T) {
		_, y := GeodeticToTM(127.0, 36.5)
		assert.Less(t, y, 500000.0)
	})
}

func TestTMToGeodetic_FalseOffsetsMapToOrigin(t *testing.T) {
	// The inverse of the false offsets must land on the zone origin. A
	// footpoint series with the wrong eccentricity parameter drifts the
	// latitude by almost half a degree here.
	lon, lat := TMToGeodetic(200000.0, 500000.0)

	assert.InDelta(t, 127.0, lon, 1e-9)
	assert.InDelta(t, 38.0, lat, 1e-9)
}

func TestTMRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		lon  float64
		lat  float64
	}{
		{"seoul", 126.9780, 37.5665},
		{"busan", 129.0756, 35.1796},
		{"jeju", 126.5312, 33.4996},
		{"gangneung", 128.8761, 37.7519},
		{"western edge", 124.5, 37.0},
		{"eastern edge", 131.5, 37.2},
		{"zone origin", 127.0, 38.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := GeodeticToTM(tt.lon, tt.lat)
			lon, lat := TMToGeodetic(x, y)

			// Series truncation only; no gross divergence.
			assert.InDelta(t, tt.lon, lon, 1e-4)
			assert.InDelta(t, tt.lat, lat, 1e-4)
		})
	}
}

func TestTMRoundTrip_Idempotent(t *testing.T) {
	x1, y1 := GeodeticToTM(126.9780, 37.5665)
	x2, y2 := GeodeticToTM(126.9780, 37.5665)

	assert.Equal(t, x1, x2)
	assert.Equal(t, y1, y2)
}
