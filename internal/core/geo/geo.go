// Package geo provides great-circle math for shop and courier coordinates.
package geo

import "math"

// earthRadiusMeters is the mean Earth radius used by the haversine formula.
const earthRadiusMeters = 6371e3

// Point is a geographic coordinate in degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// DistanceTo returns the great-circle distance in meters to q.
func (p Point) DistanceTo(q Point) float64 {
	return Haversine(p.Lat, p.Lon, q.Lat, q.Lon)
}

// BearingTo returns the initial bearing in degrees [0, 360) toward q.
func (p Point) BearingTo(q Point) float64 {
	return BearingDeg(p.Lat, p.Lon, q.Lat, q.Lon)
}

// Lerp returns the point at fraction t on the straight line from a to b,
// interpolating latitude and longitude independently.
func Lerp(a, b Point, t float64) Point {
	return Point{
		Lat: Interpolate(a.Lat, b.Lat, t),
		Lon: Interpolate(a.Lon, b.Lon, t),
	}
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// Haversine returns the great-circle distance in meters between two
// coordinates given as (lat, lon) degree pairs.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := toRad(lat1)
	phi2 := toRad(lat2)
	dPhi := toRad(lat2 - lat1)
	dLambda := toRad(lon2 - lon1)

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// BearingDeg returns the initial bearing in degrees [0, 360) from the first
// coordinate toward the second.
func BearingDeg(lat1, lon1, lat2, lon2 float64) float64 {
	y := math.Sin(toRad(lon2-lon1)) * math.Cos(toRad(lat2))
	x := math.Cos(toRad(lat1))*math.Sin(toRad(lat2)) -
		math.Sin(toRad(lat1))*math.Cos(toRad(lat2))*math.Cos(toRad(lon2-lon1))

	return math.Mod(math.Atan2(y, x)*180/math.Pi+360, 360)
}

// Interpolate linearly interpolates between a and b at fraction t.
func Interpolate(a, b, t float64) float64 {
	return a + (b-a)*t
}
