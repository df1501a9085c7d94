package ligero

import "github.com/ligerito/ligerito/internal/workerpool"

const minParallelRows = 64

// parallelFor runs fn(i) for i in [0,n), splitting the range across
// worker goroutines down to minParallelRows per leaf task, mirroring the
// fork-join pattern additivefft uses for its own recursion.
func parallelFor(n int, parallel bool, fn func(i int)) {
	if !parallel || n < minParallelRows {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}
	depth := workerpool.MaxForkDepth()
	var rec func(lo, hi, depth int)
	rec = func(lo, hi, depth int) {
		if hi-lo <= 1 {
			for i := lo; i < hi; i++ {
				fn(i)
			}
			return
		}
		if depth <= 0 || hi-lo < minParallelRows {
			for i := lo; i < hi; i++ {
				fn(i)
			}
			return
		}
		mid := (lo + hi) / 2
		workerpool.ForkJoin(depth, true,
			func() { rec(lo, mid, depth-1) },
			func() { rec(mid, hi, depth-1) },
		)
	}
	rec(0, n, depth)
}
