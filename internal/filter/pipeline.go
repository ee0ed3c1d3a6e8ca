package filter

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"cafe/internal/models"
	"cafe/internal/rank"
	"cafe/pkg/geo"
)

// Records gives read access to interaction records by identity key.
type Records interface {
	Get(key string) *models.InteractionRecord
}

// Result is one displayed place with the values it was ranked by.
type Result struct {
	Place    models.Place
	Record   *models.InteractionRecord
	Distance float64
	Score    float64
}

// Apply filters places by st and sorts the survivors. It depends only on its
// arguments: ref may be nil, and now fixes the recency window of the score.
func Apply(places []models.Place, st State, ref *geo.Coordinates, recs Records, now time.Time) []Result {
	query := strings.ToLower(strings.TrimSpace(st.Query))

	out := make([]Result, 0, len(places))
	for _, p := range places {
		rec := recs.Get(p.Key())
		if st.FavoritesOnly && (rec == nil || !rec.Favorite) {
			continue
		}
		if st.Region != All && p.Region() != st.Region {
			continue
		}
		if st.Brand != All && string(p.Brand) != st.Brand {
			continue
		}
		if query != "" && !strings.Contains(haystack(p), query) {
			continue
		}
		d := geo.Distance(p.Coordinates(), ref)
		if ref != nil && st.Radius > 0 && !(d <= st.Radius) {
			continue
		}
		out = append(out, Result{Place: p, Record: rec, Distance: d, Score: rank.Score(rec, now)})
	}

	sortResults(out, st.Sort)
	return out
}

func haystack(p models.Place) string {
	return strings.ToLower(strings.Join([]string{p.Name, p.Region(), p.RoadAddress, p.Address, p.Phone}, " "))
}

// sortResults orders by the chosen key and breaks every tie by name, giving
// a total order that does not depend on input order.
func sortResults(rs []Result, order SortOrder) {
	col := collate.New(language.Korean)
	byName := func(i, j int) bool {
		return col.CompareString(rs[i].Place.Name, rs[j].Place.Name) < 0
	}

	var less func(i, j int) bool
	switch order {
	case SortNearest:
		less = func(i, j int) bool {
			a, b := rs[i].Distance, rs[j].Distance
			if a != b {
				return a < b
			}
			return byName(i, j)
		}
	case SortRecent:
		less = func(i, j int) bool {
			a, b := seenAt(rs[i].Record), seenAt(rs[j].Record)
			if a != b {
				return a > b
			}
			return byName(i, j)
		}
	case SortName:
		less = byName
	default:
		less = func(i, j int) bool {
			if rs[i].Score != rs[j].Score {
				return rs[i].Score > rs[j].Score
			}
			return byName(i, j)
		}
	}
	sort.SliceStable(rs, less)
}

// seenAt is lastSeenAt in Unix milliseconds, zero when absent.
func seenAt(rec *models.InteractionRecord) int64 {
	if rec == nil || rec.LastSeenAt == nil {
		return 0
	}
	return rec.LastSeenAt.UnixMilli()
}
