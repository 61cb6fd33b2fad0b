package app

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/randomtoy/ideawheel/internal/domain"
)

// SimulationResult summarizes a batch of simulated spins.
type SimulationResult struct {
	Sections  []domain.Section
	Tally     domain.Tally
	ChiSquare float64
}

// Simulate runs spins draw-and-resolve rounds over items split across
// workers, skipping the timed phases. newRNG is called once per worker so
// each gets an independent stream.
func Simulate(ctx context.Context, items []domain.Item, spins, workers int, newRNG func(worker int) domain.RNG, cfg WheelConfig) (SimulationResult, error) {
	cfg = cfg.withDefaults()
	sections := domain.Partition(items, cfg.Palette)
	if len(sections) == 0 {
		return SimulationResult{}, domain.ErrNoItems
	}
	if workers < 1 {
		workers = 1
	}

	total := domain.NewTally(len(sections))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	for w := range workers {
		share := spins / workers
		if w < spins%workers {
			share++
		}
		rng := newRNG(w)

		g.Go(func() error {
			tally := domain.NewTally(len(sections))
			rotation := 0.0
			for i := range share {
				if i%4096 == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				rotation += domain.DrawSpin(rng, cfg.MinRotations, cfg.MaxRotations).TotalRotation()
				tally.Add(domain.SectionIndex(rotation, len(sections)))
			}

			mu.Lock()
			total.Merge(tally)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return SimulationResult{}, err
	}

	return SimulationResult{
		Sections:  sections,
		Tally:     total,
		ChiSquare: total.ChiSquare(),
	}, nil
}
