package geo

import (
	"errors"
	"math"
)

// EarthRadius is the mean Earth radius in metres.
const EarthRadius = 6371000

var ErrInvalidCoordinate = errors.New("geo: invalid coordinate")

// Valid reports whether c is a finite, in-range WGS84 coordinate.
func (c Coordinates) Valid() bool {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lon) || math.IsInf(c.Lat, 0) || math.IsInf(c.Lon, 0) {
		return false
	}
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

// Normalize returns c with latitude and longitude swapped back when the pair
// was clearly supplied in the wrong order, and an error when the result is
// still not a usable coordinate.
func Normalize(c Coordinates) (Coordinates, error) {
	if math.Abs(c.Lat) > 90 && math.Abs(c.Lon) <= 90 {
		c.Lat, c.Lon = c.Lon, c.Lat
	}
	if !c.Valid() {
		return Coordinates{}, ErrInvalidCoordinate
	}
	return c, nil
}

// Distance returns the great-circle distance in metres between a and b. A nil
// reference or a non-finite coordinate yields +Inf so callers can sort such
// entries last without a separate branch.
func Distance(a Coordinates, ref *Coordinates) float64 {
	if ref == nil || !finite(a) || !finite(*ref) {
		return math.Inf(1)
	}
	return haversine(a.Lat, a.Lon, ref.Lat, ref.Lon)
}

func finite(c Coordinates) bool {
	return !math.IsNaN(c.Lat) && !math.IsNaN(c.Lon) && !math.IsInf(c.Lat, 0) && !math.IsInf(c.Lon, 0)
}

func haversine(lat1, lon1, lat2, lon2 float64) float64 {
	φ1 := lat1 * math.Pi / 180
	φ2 := lat2 * math.Pi / 180
	Δφ := (lat2 - lat1) * math.Pi / 180
	Δλ := (lon2 - lon1) * math.Pi / 180
	a := math.Sin(Δφ/2)*math.Sin(Δφ/2) + math.Cos(φ1)*math.Cos(φ2)*math.Sin(Δλ/2)*math.Sin(Δλ/2)
	return EarthRadius * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}
