package filter

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"cafe/pkg/geo"
)

// DefaultLocateTimeout bounds how long a reference point is waited for.
const DefaultLocateTimeout = 7 * time.Second

// Locator yields the user's current position once.
type Locator interface {
	Locate(ctx context.Context) (geo.Coordinates, error)
}

// LocatorFunc adapts a function to Locator.
type LocatorFunc func(ctx context.Context) (geo.Coordinates, error)

func (f LocatorFunc) Locate(ctx context.Context) (geo.Coordinates, error) { return f(ctx) }

// AcquireReference asks loc for a position and waits at most timeout. A
// failure, a timeout or an unusable coordinate all mean "no reference point"
// and yield nil.
func AcquireReference(ctx context.Context, loc Locator, timeout time.Duration) *geo.Coordinates {
	if loc == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type result struct {
		c   geo.Coordinates
		err error
	}
	done := make(chan result, 1)
	go func() {
		c, err := loc.Locate(ctx)
		done <- result{c, err}
	}()

	select {
	case <-ctx.Done():
		log.Debug().Err(ctx.Err()).Msg("reference point unavailable")
		return nil
	case r := <-done:
		if r.err != nil {
			log.Debug().Err(r.err).Msg("reference point unavailable")
			return nil
		}
		c, err := geo.Normalize(r.c)
		if err != nil {
			return nil
		}
		return &c
	}
}
