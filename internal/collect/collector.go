// Package collect gathers every place of one category inside a region by
// tiling the region and walking each tile's search results page by page.
package collect

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"cafe/internal/metrics"
	"cafe/internal/models"
	"cafe/pkg/geo"
	"cafe/pkg/graceful"
	"cafe/pkg/kakao"
)

// maxPages is the deepest page the category search will serve.
const maxPages = 45

// Searcher is the place-search provider.
type Searcher interface {
	SearchCategory(ctx context.Context, q kakao.CategoryQuery) (*kakao.CategoryResponse, error)
}

type Options struct {
	Category string
	PageSize int
	Sort     string
	// Pacing is the pause inserted between two tiles.
	Pacing time.Duration
}

func DefaultOptions() Options {
	return Options{
		Category: "CE7",
		PageSize: 15,
		Sort:     kakao.SortAccuracy,
		Pacing:   120 * time.Millisecond,
	}
}

type Collector struct {
	searcher Searcher
	opts     Options
}

func NewCollector(searcher Searcher, opts Options) *Collector {
	return &Collector{searcher: searcher, opts: opts}
}

// Collect searches tiles strictly in order, one at a time, exhausting the
// pagination of a tile before starting the next. A failed or non-OK page ends
// that tile only; what was gathered elsewhere is kept. The result is the plain
// concatenation of all accepted records and may contain duplicates.
//
// Cancelling ctx stops the run: results arriving after cancellation are not
// appended and the partial list is returned together with ctx.Err().
func (c *Collector) Collect(ctx context.Context, tiles []geo.Bounds) ([]models.Place, error) {
	var all []models.Place
	for i, tile := range tiles {
		if i > 0 {
			if err := graceful.Sleep(ctx, c.opts.Pacing); err != nil {
				return all, err
			}
		}
		part := c.collectTile(ctx, tile)
		if err := ctx.Err(); err != nil {
			return all, err
		}
		log.Debug().Int("tile", i).Str("bounds", tile.String()).Int("records", len(part)).Msg("tile collected")
		all = append(all, part...)
	}
	return all, nil
}

func (c *Collector) collectTile(ctx context.Context, tile geo.Bounds) []models.Place {
	var acc []models.Place
	for page := 1; page <= maxPages; page++ {
		resp, err := c.searcher.SearchCategory(ctx, kakao.CategoryQuery{
			Code: c.opts.Category,
			Rect: tile.Rect(),
			Page: page,
			Size: c.opts.PageSize,
			Sort: c.opts.Sort,
		})
		if err != nil {
			metrics.ProviderRequests.WithLabelValues("category_search", metrics.Error).Inc()
			if ctx.Err() == nil {
				log.Warn().Err(err).Str("bounds", tile.String()).Int("page", page).Msg("category search failed, ending tile")
			}
			return acc
		}
		metrics.ProviderRequests.WithLabelValues("category_search", metrics.OK).Inc()

		for _, doc := range resp.Documents {
			p, err := FromDocument(doc)
			if err != nil {
				metrics.RecordsDropped.WithLabelValues("invalid_coordinate").Inc()
				log.Debug().Err(err).Msg("dropping record")
				continue
			}
			acc = append(acc, p)
		}
		if resp.Meta.IsEnd || len(resp.Documents) == 0 {
			return acc
		}
	}
	return acc
}
