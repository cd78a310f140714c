// Package bench drives concurrent read-only queries against a static
// world.World. It never calls a mutating method (Add/Remove/Move/Teleport)
// concurrently — only QueryBox/QueryPoint/QuerySegment, which are safe to
// overlap as long as the world itself isn't being mutated at the same time.
package bench

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/duskfall/swept2d/world"
)

// Query is one read-only probe to run against the world.
type Query struct {
	// Kind selects which World method to call: "box", "point", or
	// "segment".
	Kind           string
	L, T, W, H     float64
	X, Y           float64
	X1, Y1, X2, Y2 float64
}

// Result is the outcome of running one Query.
type Result struct {
	Query Query
	Hits  int
	Took  time.Duration
}

// Run executes queries concurrently against w, bounded by concurrency
// goroutines, and returns one Result per query in the same order the
// queries were given.
func Run[T comparable](ctx context.Context, w *world.World[T], queries []Query, concurrency int) ([]Result, error) {
	results := make([]Result, len(queries))

	g, ctx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}

	for i, q := range queries {
		i, q := i, q
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			start := time.Now()
			var hits int
			switch q.Kind {
			case "point":
				hits = len(w.QueryPoint(q.X, q.Y))
			case "segment":
				hits = len(w.QuerySegment(q.X1, q.Y1, q.X2, q.Y2))
			default:
				hits = len(w.QueryBox(q.L, q.T, q.W, q.H))
			}
			results[i] = Result{Query: q, Hits: hits, Took: time.Since(start)}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
