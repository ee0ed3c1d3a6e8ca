// Package region attaches administrative region labels to places.
package region

import (
	"context"
	"time"

	"cafe/internal/enrich"
	"cafe/internal/models"
)

const (
	DefaultBatch = 10
	DefaultPause = 50 * time.Millisecond
)

// Annotator labels places through a Source, one at a time.
type Annotator struct {
	src   Source
	batch int
	pause time.Duration
}

func NewAnnotator(src Source) *Annotator {
	return &Annotator{src: src, batch: DefaultBatch, pause: DefaultPause}
}

// WithPacing changes how often, and for how long, annotation pauses.
func (a *Annotator) WithPacing(batch int, pause time.Duration) *Annotator {
	a.batch = batch
	a.pause = pause
	return a
}

// Step labels a single place. On failure the label is set to "" and the
// error is returned for logging; the place is never left unlabelled.
func (a *Annotator) Step(ctx context.Context, p *models.Place) error {
	label, err := a.src.Label(ctx, p.Coordinates())
	if err != nil {
		label = ""
	}
	*p = p.WithRegion(label)
	return err
}

// Stage wraps Step for use in a larger enrichment pipeline.
func (a *Annotator) Stage() enrich.Stage[models.Place] {
	return enrich.NewStage("region", a.Step)
}

// Pacing returns the batch size and pause the annotator was configured with.
func (a *Annotator) Pacing() (int, time.Duration) {
	return a.batch, a.pause
}

// Annotate labels places in list order and returns the labelled copy. When
// ctx is cancelled the partial result is discarded and ctx.Err() returned.
func (a *Annotator) Annotate(ctx context.Context, places []models.Place) ([]models.Place, error) {
	out := make([]models.Place, len(places))
	copy(out, places)
	items := make([]*models.Place, len(out))
	for i := range out {
		items[i] = &out[i]
	}
	if err := enrich.NewPipeline(a.Stage()).WithPacing(a.batch, a.pause).Process(ctx, items); err != nil {
		return nil, err
	}
	return out, nil
}
