// Package workerpool provides the bounded fork-join helper that the
// additive FFT uses to parallelize its butterfly recursion without
// spawning an unbounded number of goroutines for small subproblems.
package workerpool

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ForkJoin runs left and right concurrently when depth > 0 and the
// caller's shouldFork says the work is worth the goroutine overhead;
// otherwise it runs them sequentially in the calling goroutine. Callers
// pass depth-1 to each nested ForkJoin, so one top-level call spawns at
// most 2^(depth+1)-2 goroutines in total (2^depth at the deepest forking
// level) regardless of how deep the recursion underneath goes.
//
// The two branches must touch disjoint memory (e.g. the two halves of a
// slice split by the caller): ForkJoin makes no attempt to serialize
// access between them.
func ForkJoin(depth int, shouldFork bool, left, right func()) {
	if depth <= 0 || !shouldFork {
		left()
		right()
		return
	}

	g, _ := errgroup.WithContext(context.Background())
	g.Go(func() error {
		left()
		return nil
	})
	g.Go(func() error {
		right()
		return nil
	})
	_ = g.Wait() // left/right never return errors; panics propagate through errgroup
}

// MaxForkDepth returns ceil(log2(GOMAXPROCS)) + 1, the same cap the reference implementation uses to keep task-spawning
// overhead bounded: depth is chosen once per top-level FFT call, not
// recomputed at every recursive step.
func MaxForkDepth() int {
	n := runtime.GOMAXPROCS(0)
	depth := 0
	for (1 << depth) < n {
		depth++
	}
	return depth + 1
}
