package geo

import "math"

// Ellipsoid describes a reference ellipsoid by semi-major axis and flattening.
// The first eccentricity squared is derived once at construction.
type Ellipsoid struct {
	A  float64 // semi-major axis, meters
	F  float64 // flattening
	E2 float64 // first eccentricity squared, 2f - f²
}

func newEllipsoid(a, f float64) Ellipsoid {
	return Ellipsoid{A: a, F: f, E2: 2*f - f*f}
}

var (
	// GRS80 underlies the modern Korean geodetic datum.
	GRS80 = newEllipsoid(6378137.0, 1/298.257222101)

	// Bessel1841 underlies the legacy Korean datum. Kept for reference;
	// the supported conversions run entirely on GRS80.
	Bessel1841 = newEllipsoid(6377397.155, 1/299.1528128)
)

func degToRad(v float64) float64 { return v * math.Pi / 180.0 }
func radToDeg(v float64) float64 { return v * 180.0 / math.Pi }
