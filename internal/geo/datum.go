package geo

import "math"

// helmertParams holds the seven parameters of a Bursa-Wolf similarity
// transform: translation in meters, rotation in radians, and a unitless
// scale difference.
type helmertParams struct {
	dx, dy, dz float64
	wx, wy, wz float64
	k          float64
}

// koreaShift aligns WGS84 with the Korean reference datum. Published
// constants; rotations are given in arc-seconds and converted here.
var koreaShift = helmertParams{
	dx: -115.80,
	dy: 474.99,
	dz: 674.11,
	wx: 1.16 * math.Pi / (180 * 3600),
	wy: -2.31 * math.Pi / (180 * 3600),
	wz: -1.63 * math.Pi / (180 * 3600),
	k:  -6.43e-6,
}

// WGS84ToDatum shifts a geodetic coordinate from WGS84 onto the Korean
// reference datum via an Earth-centered Cartesian intermediate. Degrees in,
// degrees out. Inputs are not range-checked; NaN propagates.
func WGS84ToDatum(lon, lat float64) (float64, float64) {
	x, y, z := geodeticToECEF(degToRad(lon), degToRad(lat), GRS80)

	p := koreaShift
	xs := p.dx + (1+p.k)*x + p.wz*y - p.wy*z
	ys := p.dy - p.wz*x + (1+p.k)*y + p.wx*z
	zs := p.dz + p.wy*x - p.wx*y + (1+p.k)*z

	lonOut, latOut := ecefToGeodetic(xs, ys, zs, GRS80)
	return radToDeg(lonOut), radToDeg(latOut)
}

// DatumToWGS84 applies the reverse shift with negated parameters and a 1-k
// scale, not the exact matrix inverse. Round-trip results depend on this
// form; do not replace it with a true inverse.
func DatumToWGS84(lon, lat float64) (float64, float64) {
	x, y, z := geodeticToECEF(degToRad(lon), degToRad(lat), GRS80)

	p := koreaShift
	xs := -p.dx + (1-p.k)*x - p.wz*y + p.wy*z
	ys := -p.dy + p.wz*x + (1-p.k)*y - p.wx*z
	zs := -p.dz - p.wy*x + p.wx*y + (1-p.k)*z

	lonOut, latOut := ecefToGeodetic(xs, ys, zs, GRS80)
	return radToDeg(lonOut), radToDeg(latOut)
}

// geodeticToECEF converts radians lon/lat on the ellipsoid surface to
// Earth-centered Cartesian coordinates.
func geodeticToECEF(lon, lat float64, ell Ellipsoid) (x, y, z float64) {
	sinLat := math.Sin(lat)
	n := ell.A / math.Sqrt(1-ell.E2*sinLat*sinLat)
	x = n * math.Cos(lat) * math.Cos(lon)
	y = n * math.Cos(lat) * math.Sin(lon)
	z = n * (1 - ell.E2) * sinLat
	return
}

// ecefToGeodetic converts Cartesian coordinates back to radians lon/lat
// using the single-pass closed-form approximation. Good to well under a
// meter for the translation magnitudes of the Korean datum shift; not an
// iterative solver.
func ecefToGeodetic(x, y, z float64, ell Ellipsoid) (lon, lat float64) {
	p := math.Sqrt(x*x + y*y)
	theta := math.Atan(z * ell.A / (p * ell.A * (1 - ell.F)))
	sinTheta := math.Sin(theta)
	cosTheta := math.Cos(theta)

	lat = math.Atan((z + ell.E2*ell.A*(1-ell.F)*sinTheta*sinTheta*sinTheta) /
		(p - ell.E2*ell.A*cosTheta*cosTheta*cosTheta))
	lon = math.Atan2(y, x)
	return
}
