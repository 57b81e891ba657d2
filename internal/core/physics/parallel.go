package physics

import "golang.org/x/sync/errgroup"

// IntegrateAll advances every particle by duration, fanning the work out to
// at most workers goroutines. Integration has no cross-particle
// dependencies, so each goroutine owns a disjoint shard of the slice and no
// locking is needed. workers <= 1 runs serially.
//
// The duration precondition is checked once up front, before any goroutine
// starts. The error return is reserved for per-shard failures and is
// currently always nil.
func IntegrateAll(particles []*Particle, duration float64, workers int) error {
	if duration <= 0 {
		panic("physics: integration duration must be positive")
	}

	if workers <= 1 || len(particles) <= 1 {
		for _, p := range particles {
			p.Integrate(duration)
		}
		return nil
	}

	if workers > len(particles) {
		workers = len(particles)
	}
	chunk := (len(particles) + workers - 1) / workers

	var g errgroup.Group
	for start := 0; start < len(particles); start += chunk {
		end := min(start+chunk, len(particles))
		shard := particles[start:end]
		g.Go(func() error {
			for _, p := range shard {
				p.Integrate(duration)
			}
			return nil
		})
	}
	return g.Wait()
}
