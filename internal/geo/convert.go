// Package geo converts positions between WGS84 geodetic coordinates and the
// WCONGNAMUL planar system used by Korean web map services.
//
// WCONGNAMUL is the Korean central-origin (Jungbu) Transverse Mercator grid:
// origin 127°E / 38°N on the GRS80 ellipsoid, scale factor 0.9996, false
// easting 200000 m, false northing 500000 m. A conversion crosses two
// boundaries: a 7-parameter Helmert shift between WGS84 and the Korean
// datum, and the TM projection between geodetic and planar form.
//
// All functions are pure and safe for concurrent use. The math is series
// based and round-trips within roughly 1e-4 degrees over Korea's extent;
// suitable for map and sensor work, not survey-grade.
package geo

import (
	"errors"
	"fmt"
)

// System identifies a coordinate reference system.
type System string

const (
	SystemWGS84      System = "WGS84"
	SystemWCONGNAMUL System = "WCONGNAMUL"
)

// Geodetic is a longitude/latitude pair in degrees.
type Geodetic struct {
	Lon float64 `json:"longitude"`
	Lat float64 `json:"latitude"`
}

// Planar is an easting/northing pair in meters.
type Planar struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Coordinate is a position tagged with the system its values are expressed
// in. Exactly one of Geo or Plane is meaningful, selected by System.
type Coordinate struct {
	System System
	Geo    Geodetic
	Plane  Planar
}

// FromGeodetic builds a WGS84-tagged coordinate.
func FromGeodetic(lon, lat float64) Coordinate {
	return Coordinate{System: SystemWGS84, Geo: Geodetic{Lon: lon, Lat: lat}}
}

// FromPlanar builds a WCONGNAMUL-tagged coordinate.
func FromPlanar(x, y float64) Coordinate {
	return Coordinate{System: SystemWCONGNAMUL, Plane: Planar{X: x, Y: y}}
}

// ErrUnsupportedConversion is returned for any system pair other than the
// two supported directions. It signals a configuration error, not bad data.
var ErrUnsupportedConversion = errors.New("unsupported coordinate conversion")

// Convert transforms a coordinate into the target system. Converting to the
// coordinate's own system returns it unchanged, whatever the system is.
func Convert(c Coordinate, to System) (Coordinate, error) {
	if c.System == to {
		return c, nil
	}

	switch {
	case c.System == SystemWGS84 && to == SystemWCONGNAMUL:
		lon, lat := WGS84ToDatum(c.Geo.Lon, c.Geo.Lat)
		x, y := GeodeticToTM(lon, lat)
		return FromPlanar(x, y), nil

	case c.System == SystemWCONGNAMUL && to == SystemWGS84:
		lon, lat := TMToGeodetic(c.Plane.X, c.Plane.Y)
		lon, lat = DatumToWGS84(lon, lat)
		return FromGeodetic(lon, lat), nil

	default:
		return Coordinate{}, fmt.Errorf("%w: %s to %s", ErrUnsupportedConversion, c.System, to)
	}
}

// Valid reports whether the coordinate falls inside the coarse bounding box
// for Korea in its own system. The bounds reject values the projection math
// is not accurate for; they are not territorial borders. Unknown systems
// are never valid.
func Valid(c Coordinate) bool {
	switch c.System {
	case SystemWGS84:
		return c.Geo.Lon >= 124.0 && c.Geo.Lon <= 132.0 &&
			c.Geo.Lat >= 33.0 && c.Geo.Lat <= 39.0
	case SystemWCONGNAMUL:
		return c.Plane.X >= 100000 && c.Plane.X <= 600000 &&
			c.Plane.Y >= 1000000 && c.Plane.Y <= 1500000
	default:
		return false
	}
}
