package keys

import (
	"strconv"
	"strings"
)

// Durable store namespaces.
const (
	Interactions = "cafe.interactions.v1"
	Places       = "cafe.places.v1"
)

// Identity returns the stable identity of a place: the provider id when there
// is one, otherwise "lon,lat,name". Every lookup and the deduplicator go
// through this function so the fallback form is produced identically.
func Identity(id string, lon, lat float64, name string) string {
	if id = strings.TrimSpace(id); id != "" {
		return id
	}
	return formatCoord(lon) + "," + formatCoord(lat) + "," + name
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
