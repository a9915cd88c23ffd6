package domain

import (
	"context"
	"log/slog"

	"github.com/hanbit-labs/korea-sensor-etl/internal/geo"
)

// RegionResolver maps a WCONGNAMUL position to Korean administrative
// region detail.
type RegionResolver interface {
	ResolveRegion(ctx context.Context, x, y float64) (RegionInfo, error)
}

// EnrichWithRegion attempts to attach administrative region detail to a
// reading that carries a position. If resolver is nil, the reading has no
// position, or resolution fails, the reading is returned with RegionSrc
// set accordingly (graceful degradation).
func EnrichWithRegion(ctx context.Context, reading SensorReading, resolver RegionResolver, logger *slog.Logger) SensorReading {
	if resolver == nil || reading.Geo == nil {
		return reading
	}

	planar, err := geo.Convert(geo.FromGeodetic(reading.Geo.Lon, reading.Geo.Lat), geo.SystemWCONGNAMUL)
	if err != nil {
		// Unreachable for a WGS84-tagged coordinate; treated as a failed lookup.
		reading.RegionSrc = "failed"
		return reading
	}

	region, err := resolver.ResolveRegion(ctx, planar.Plane.X, planar.Plane.Y)
	if err != nil {
		logger.Warn("region resolution failed",
			"reading_id", reading.ID,
			"lon", reading.Geo.Lon,
			"lat", reading.Geo.Lat,
			"error", err,
		)
		reading.RegionSrc = "failed"
		return reading
	}

	if region == (RegionInfo{}) {
		reading.RegionSrc = "empty"
		return reading
	}

	reading.Region = &region
	reading.RegionSrc = "resolved"
	return reading
}
