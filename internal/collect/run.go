package collect

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"cafe/internal/brand"
	"cafe/internal/enrich"
	"cafe/internal/models"
	"cafe/internal/region"
	"cafe/pkg/geo"
)

// RunOptions configures a full collection run.
type RunOptions struct {
	Region        geo.Region
	Rows, Cols    int
	Collect       Options
	AnnotateBatch int
	AnnotatePause time.Duration
}

// Run performs one collection run over opts.Region: tile, collect, dedupe,
// keep places inside the region, then label regions and classify brands in
// list order. Every returned place carries a region label.
func Run(ctx context.Context, searcher Searcher, src region.Source, classifier *brand.Classifier, opts RunOptions) ([]models.Place, error) {
	tiles := geo.Split(opts.Region.Bounds, opts.Rows, opts.Cols)

	raw, err := NewCollector(searcher, opts.Collect).Collect(ctx, tiles)
	if err != nil {
		return nil, fmt.Errorf("collect: run interrupted after %d records: %w", len(raw), err)
	}
	unique := Dedupe(raw)
	places := WithinRegion(unique, opts.Region)
	log.Info().
		Int("tiles", len(tiles)).
		Int("raw", len(raw)).
		Int("unique", len(unique)).
		Int("in_region", len(places)).
		Msg("collection finished")

	items := make([]*models.Place, len(places))
	for i := range places {
		items[i] = &places[i]
	}
	annotator := region.NewAnnotator(src)
	pipeline := enrich.NewPipeline(
		annotator.Stage(),
		enrich.NewStage("brand", classifier.Step),
	).WithPacing(opts.AnnotateBatch, opts.AnnotatePause)
	if err := pipeline.Process(ctx, items); err != nil {
		return nil, fmt.Errorf("collect: enrichment interrupted: %w", err)
	}
	return places, nil
}
