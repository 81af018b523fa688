// Package geo provides the coordinate value type and great-circle math
// shared by the provider adapters and agents.
package geo

import "math"

// earthRadiusKm is the mean Earth radius used for great-circle distances.
const earthRadiusKm = 6371.0

// milesPerKm converts kilometers to statute miles.
const milesPerKm = 0.621371

// Coordinates is an immutable latitude/longitude pair in decimal degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid reports whether the pair lies within the usual ranges:
// latitude in [-90, 90] and longitude in [-180, 180].
func (c Coordinates) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

// Distance returns the haversine great-circle distance between a and b
// in kilometers. It is symmetric and zero for equal points.
func Distance(a, b Coordinates) float64 {
	lat1 := radians(a.Latitude)
	lng1 := radians(a.Longitude)
	lat2 := radians(b.Latitude)
	lng2 := radians(b.Longitude)

	dlat := lat2 - lat1
	dlng := lng2 - lng1

	h := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dlng/2)*math.Sin(dlng/2)
	c := 2 * math.Asin(math.Sqrt(h))

	return c * earthRadiusKm
}

// DistanceMiles returns the great-circle distance between a and b in miles.
func DistanceMiles(a, b Coordinates) float64 {
	return Distance(a, b) * milesPerKm
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
