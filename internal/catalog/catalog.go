// Package catalog holds the last collected place list as an immutable
// snapshot and answers detail lookups against it.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"cafe/internal/keys"
	"cafe/internal/metrics"
	"cafe/internal/models"
	"cafe/internal/storage"
)

// ErrNotFound is returned when no place carries the requested identity key.
var ErrNotFound = errors.New("catalog: place not found")

// RegionEntry is one option of a region picker.
type RegionEntry struct {
	// Value is the exact label to filter on; "" selects unlabelled places.
	Value string `json:"value"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Catalog is safe for concurrent readers; it is never mutated after New.
type Catalog struct {
	places  []models.Place
	index   map[string]int
	regions []RegionEntry
}

// New indexes places by identity key. When two places share a key the first
// one wins, matching deduplication.
func New(places []models.Place) *Catalog {
	c := &Catalog{
		places: make([]models.Place, len(places)),
		index:  make(map[string]int, len(places)),
	}
	copy(c.places, places)
	for i, p := range c.places {
		if _, ok := c.index[p.Key()]; !ok {
			c.index[p.Key()] = i
		}
	}
	c.regions = buildRegions(c.places)
	return c
}

// Load reads the snapshot persisted under the places namespace. Missing or
// corrupt data yields an empty catalog.
func Load(ctx context.Context, kv storage.KV) *Catalog {
	blob, err := kv.Get(ctx, keys.Places)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Warn().Err(err).Msg("catalog unreadable, starting empty")
		}
		return New(nil)
	}
	var places []models.Place
	if err := json.Unmarshal(blob, &places); err != nil {
		log.Warn().Err(err).Msg("catalog corrupt, starting empty")
		return New(nil)
	}
	c := New(places)
	metrics.CollectedPlaces.Set(float64(c.Len()))
	return c
}

// Save replaces the persisted snapshot with places.
func Save(ctx context.Context, kv storage.KV, places []models.Place) error {
	blob, err := json.Marshal(places)
	if err != nil {
		return fmt.Errorf("catalog: encode places: %w", err)
	}
	if err := kv.Set(ctx, keys.Places, blob); err != nil {
		return fmt.Errorf("catalog: persist places: %w", err)
	}
	metrics.CollectedPlaces.Set(float64(len(places)))
	return nil
}

func (c *Catalog) Len() int { return len(c.places) }

// Places returns the snapshot in collection order. Callers must not modify
// the returned slice.
func (c *Catalog) Places() []models.Place { return c.places }

// Lookup resolves an identity key.
func (c *Catalog) Lookup(key string) (models.Place, error) {
	i, ok := c.index[key]
	if !ok {
		return models.Place{}, fmt.Errorf("%w: %q", ErrNotFound, key)
	}
	return c.places[i], nil
}

// Regions lists the distinct region labels with their place counts, named
// regions in Korean order followed by the catch-all entry.
func (c *Catalog) Regions() []RegionEntry { return c.regions }

func buildRegions(places []models.Place) []RegionEntry {
	counts := make(map[string]int)
	for _, p := range places {
		counts[p.Region()]++
	}
	out := make([]RegionEntry, 0, len(counts))
	for label, n := range counts {
		e := RegionEntry{Value: label, Label: label, Count: n}
		if label == "" {
			e.Label = models.UnknownRegion
		}
		out = append(out, e)
	}

	col := collate.New(language.Korean)
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if (a.Value == "") != (b.Value == "") {
			return b.Value == ""
		}
		return col.CompareString(a.Value, b.Value) < 0
	})
	return out
}
