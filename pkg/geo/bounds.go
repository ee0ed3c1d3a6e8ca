// Package geo holds the small amount of plane geometry the directory needs:
// rectangular bounds, tiling, containment and great-circle distance.
package geo

import "fmt"

// Coordinates is a WGS84 point.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Bounds is a rectangle given by its south-west and north-east corners.
type Bounds struct {
	SW Coordinates `json:"sw"`
	NE Coordinates `json:"ne"`
}

// NewBounds builds Bounds from two corner coordinates.
func NewBounds(swLat, swLon, neLat, neLon float64) Bounds {
	return Bounds{
		SW: Coordinates{Lat: swLat, Lon: swLon},
		NE: Coordinates{Lat: neLat, Lon: neLon},
	}
}

// Contains reports whether c lies inside b. Edges are inclusive.
func (b Bounds) Contains(c Coordinates) bool {
	return c.Lat >= b.SW.Lat && c.Lat <= b.NE.Lat &&
		c.Lon >= b.SW.Lon && c.Lon <= b.NE.Lon
}

// Rect renders the bounds in the "minLon,minLat,maxLon,maxLat" form accepted by
// rectangle-constrained search APIs.
func (b Bounds) Rect() string {
	return fmt.Sprintf("%f,%f,%f,%f", b.SW.Lon, b.SW.Lat, b.NE.Lon, b.NE.Lat)
}

func (b Bounds) String() string {
	return fmt.Sprintf("[%f,%f → %f,%f]", b.SW.Lat, b.SW.Lon, b.NE.Lat, b.NE.Lon)
}

// Split partitions b into rows×cols tiles of equal angular size, ordered row by
// row from the south-west corner. Neighbouring tiles share their edges. Non
// positive rows or cols are treated as 1.
func Split(b Bounds, rows, cols int) []Bounds {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	latStep := (b.NE.Lat - b.SW.Lat) / float64(rows)
	lonStep := (b.NE.Lon - b.SW.Lon) / float64(cols)

	tiles := make([]Bounds, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			tile := Bounds{
				SW: Coordinates{
					Lat: b.SW.Lat + float64(r)*latStep,
					Lon: b.SW.Lon + float64(c)*lonStep,
				},
				NE: Coordinates{
					Lat: b.SW.Lat + float64(r+1)*latStep,
					Lon: b.SW.Lon + float64(c+1)*lonStep,
				},
			}
			// pin the outer edges so floating point drift never leaves a gap
			if r == rows-1 {
				tile.NE.Lat = b.NE.Lat
			}
			if c == cols-1 {
				tile.NE.Lon = b.NE.Lon
			}
			tiles = append(tiles, tile)
		}
	}
	return tiles
}
