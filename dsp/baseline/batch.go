package baseline

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// EstimateBatch estimates the baselines of many spectra, for example the
// pixels of a hyperspectral cube, with at most workers goroutines.
// workers <= 0 uses GOMAXPROCS. Results are in input order.
//
// The first invalid spectrum or the cancellation of ctx stops the batch
// and its error is returned together with no results.
func EstimateBatch(ctx context.Context, spectra [][]float64, workers int, opts ...Option) ([]Result, error) {
	cfg := ApplyOptions(opts...)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	pool := sync.Pool{
		New: func() any {
			e, _ := NewEstimator(opts...)
			return e
		},
	}

	results := make([]Result, len(spectra))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, spectrum := range spectra {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			e := pool.Get().(*Estimator)
			defer pool.Put(e)

			res, err := e.Process(spectrum)
			if err != nil {
				return fmt.Errorf("spectrum %d: %w", i, err)
			}

			results[i] = res

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
