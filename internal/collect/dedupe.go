package collect

import (
	"cafe/internal/models"
	"cafe/pkg/geo"
)

// Dedupe keeps the first place seen for every identity key, preserving order.
func Dedupe(places []models.Place) []models.Place {
	seen := make(map[string]struct{}, len(places))
	out := make([]models.Place, 0, len(places))
	for _, p := range places {
		key := p.Key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, p)
	}
	return out
}

// WithinRegion keeps the places whose coordinates fall inside the region box
// or whose address names the region.
func WithinRegion(places []models.Place, region geo.Region) []models.Place {
	out := make([]models.Place, 0, len(places))
	for _, p := range places {
		if region.InRegion(p.Coordinates(), p.DisplayAddress()) {
			out = append(out, p)
		}
	}
	return out
}
