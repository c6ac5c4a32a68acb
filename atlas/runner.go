package atlas

import (
	"context"

	"github.com/nibzard/anytime/onesample"
	"golang.org/x/sync/errgroup"
)

// RunReplicates drives one replicate per scenario concurrently, bounded
// by parallelism (a value <= 0 means unbounded). Every goroutine
// constructs and owns its own CS instance end to end; no instance is
// ever touched by more than one goroutine, so this never shares a
// single-threaded instance across goroutines. The returned slice is
// ordered the same as scenarios regardless of completion order.
func RunReplicates(ctx context.Context, scenarios []Scenario, factory onesample.Factory, rule StoppingRule, parallelism int) ([]ReplicateResult, error) {
	results := make([]ReplicateResult, len(scenarios))

	g, gCtx := errgroup.WithContext(ctx)
	if parallelism > 0 {
		g.SetLimit(parallelism)
	}

	for i, scenario := range scenarios {
		i, scenario := i, scenario
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			result, err := RunReplicate(scenario, factory, rule)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// RunEProcessReplicates is the e-process analogue of RunReplicates.
func RunEProcessReplicates(ctx context.Context, scenarios []Scenario, factory EProcessFactory, parallelism int) ([]EProcessReplicateResult, error) {
	results := make([]EProcessReplicateResult, len(scenarios))

	g, gCtx := errgroup.WithContext(ctx)
	if parallelism > 0 {
		g.SetLimit(parallelism)
	}

	for i, scenario := range scenarios {
		i, scenario := i, scenario
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			result, err := RunEProcessReplicate(scenario, factory)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
