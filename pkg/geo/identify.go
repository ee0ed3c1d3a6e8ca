package geo

import "strings"

// Region is a named target area: the box that is tiled for collection and the
// administrative name fragment that confirms membership from an address line.
type Region struct {
	Name   string
	Bounds Bounds
}

// Chuncheon is the default collection region.
var Chuncheon = Region{
	Name:   "춘천시",
	Bounds: NewBounds(37.7500, 127.5500, 38.0300, 127.9000),
}

// InRegion reports whether a point or its address places it in r. Providers
// return boundary-adjacent results whose coordinates fall slightly outside the
// box while the address still names the region, so either signal is enough.
func (r Region) InRegion(c Coordinates, address string) bool {
	if c.Valid() && r.Bounds.Contains(c) {
		return true
	}
	return r.Name != "" && strings.Contains(address, r.Name)
}
