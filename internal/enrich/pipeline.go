package enrich

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"cafe/pkg/graceful"
)

// Pipeline applies its stages to each item of a list. Items are processed
// strictly in list order and never concurrently; within an item, stages and
// their steps run in declaration order. Step errors are logged and do not
// stop processing.
type Pipeline[T any] struct {
	stages []Stage[T]
	every  int
	pause  time.Duration
}

// NewPipeline constructs a Pipeline from the provided stages.
func NewPipeline[T any](stages ...Stage[T]) *Pipeline[T] {
	return &Pipeline[T]{stages: stages}
}

// WithPacing makes the pipeline pause for d after every n-th item, starting
// with the first one.
func (p *Pipeline[T]) WithPacing(n int, d time.Duration) *Pipeline[T] {
	p.every = n
	p.pause = d
	return p
}

// Process runs all stages over items in place. When ctx is cancelled the
// pipeline stops before touching the next item and returns ctx.Err(); items
// already processed keep their enrichment.
func (p *Pipeline[T]) Process(ctx context.Context, items []*T) error {
	for i, item := range items {
		if err := ctx.Err(); err != nil {
			return err
		}
		for _, stage := range p.stages {
			for _, step := range stage.steps {
				if err := step(ctx, item); err != nil {
					log.Warn().Err(err).Str("stage", stage.name).Int("item", i).Msg("enrichment step failed")
				}
			}
		}
		if p.every > 0 && i%p.every == 0 {
			if err := graceful.Sleep(ctx, p.pause); err != nil {
				return err
			}
		}
	}
	return nil
}
