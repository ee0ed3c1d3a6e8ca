// Package enrich runs an ordered list of enrichment stages over a list of
// items, one item at a time, with a periodic pause so that stages calling
// external services do not flood them.
package enrich

import (
	"context"
)

// Step represents a single enrichment operation that mutates the given item.
// If a step fails it should return an error; the pipeline will log the error
// and continue with the next step. The context can be used to observe
// cancellation or timeouts.
//
// Example:
//
//	func addTitle(ctx context.Context, m *MyType) error { m.Title = "..."; return nil }
type Step[T any] func(ctx context.Context, item *T) error

// Stage groups named steps. Steps of a stage run in the order given.
type Stage[T any] struct {
	name  string
	steps []Step[T]
}

// NewStage constructs a Stage from the provided steps.
func NewStage[T any](name string, steps ...Step[T]) Stage[T] {
	return Stage[T]{name: name, steps: steps}
}

func (s Stage[T]) Name() string { return s.name }
