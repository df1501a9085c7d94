package additivefft

import (
	"math/bits"

	"github.com/rs/zerolog"

	"github.com/ligerito/ligerito/internal/workerpool"
)

// Twiddles is the precomputed per-node table a Twiddles value needs to
// run the additive FFT/IFFT recursion: table[idx-1] holds the scalar
// used by the butterfly at the pre-order node idx (root idx = 1,
// children 2*idx and 2*idx+1), exactly mirroring the indexing scheme of
// the reference recursive FFT this package is modeled on.
type Twiddles[T Elem[T]] struct {
	logN  int
	table []T
}

// BuildTwiddles derives a deterministic twiddle table from an F2-basis
// of the domain. It computes, for i = 0..len(basis)-1, the subspace
// "vanishing polynomial" value s_i(e_i) via the recursion
// s_{i+1}(e_j) = s_i(e_j) * (s_i(e_j) + s_i(e_i)),
// which is the standard Gao-Mateer/LCH identity for subspace polynomials
// in characteristic 2 (s_i(x)^2 is itself GF(2)-linear since squaring is
// additive, so the recursion stays linear at every step). Every node at
// tree depth d shares the constant s_d(e_d); the true per-node construction
// additionally varies this by coset offset for optimal code distance,
// which this implementation does not attempt.
func BuildTwiddles[T Elem[T]](basis []T) *Twiddles[T] {
	n := len(basis)
	cur := make([]T, n)
	copy(cur, basis)

	depthConst := make([]T, n)
	for i := 0; i < n; i++ {
		c := cur[i]
		depthConst[i] = c
		next := make([]T, n)
		for j := 0; j < n; j++ {
			next[j] = cur[j].Mul(cur[j].Add(c))
		}
		cur = next
	}

	size := 1 << n
	table := make([]T, size-1)
	for idx := 1; idx < size; idx++ {
		depth := bits.Len(uint(idx)) - 1
		table[idx-1] = depthConst[depth]
	}
	return &Twiddles[T]{logN: n, table: table}
}

// Butterfly applies (u, w) -> (u + lambda*w, w + u + lambda*w) in place.
func Butterfly[T Elem[T]](u, w []T, lambda T) {
	for i := range u {
		t := w[i].Mul(lambda)
		newU := u[i].Add(t)
		newW := w[i].Add(newU)
		u[i] = newU
		w[i] = newW
	}
}

// InvButterfly is the exact algebraic inverse of Butterfly: given
// (u', w') = (u+lambda*w, w+u+lambda*w), w = u'+w' and u = u'+lambda*w.
func InvButterfly[T Elem[T]](u, w []T, lambda T) {
	for i := range u {
		newW := u[i].Add(w[i])
		newU := u[i].Add(lambda.Mul(newW))
		u[i] = newU
		w[i] = newW
	}
}

const minParallelSize = 16384

// FFT evaluates v (interpreted against tw's basis) in place; len(v) must
// be a power of two matching tw's domain size. The recursion always
// starts at the root node of tw's table.
func FFT[T Elem[T]](v []T, tw *Twiddles[T], parallel bool, logger zerolog.Logger) {
	depth := 0
	if parallel {
		depth = workerpool.MaxForkDepth()
	}
	logger.Debug().Int("n", len(v)).Bool("parallel", parallel).Int("fork_depth", depth).Msg("additivefft: FFT")
	fftRec(v, tw.table, 1, depth)
}

func fftRec[T Elem[T]](v []T, table []T, idx int, forkDepth int) {
	n := len(v)
	if n == 1 {
		return
	}
	mid := n / 2
	u, w := v[:mid], v[mid:]
	Butterfly(u, w, table[idx-1])

	fork := forkDepth > 0 && n >= minParallelSize
	workerpool.ForkJoin(forkDepth, fork,
		func() { fftRec(u, table, 2*idx, forkDepth-1) },
		func() { fftRec(w, table, 2*idx+1, forkDepth-1) },
	)
}

// IFFT inverts FFT: it undoes the same recursion bottom-up, restoring
// the per-node split from parallel or sequential top-down application.
func IFFT[T Elem[T]](v []T, tw *Twiddles[T], parallel bool, logger zerolog.Logger) {
	depth := 0
	if parallel {
		depth = workerpool.MaxForkDepth()
	}
	logger.Debug().Int("n", len(v)).Bool("parallel", parallel).Int("fork_depth", depth).Msg("additivefft: IFFT")
	ifftRec(v, tw.table, 1, depth)
}

func ifftRec[T Elem[T]](v []T, table []T, idx int, forkDepth int) {
	n := len(v)
	if n == 1 {
		return
	}
	mid := n / 2
	u, w := v[:mid], v[mid:]

	fork := forkDepth > 0 && n >= minParallelSize
	workerpool.ForkJoin(forkDepth, fork,
		func() { ifftRec(u, table, 2*idx, forkDepth-1) },
		func() { ifftRec(w, table, 2*idx+1, forkDepth-1) },
	)

	InvButterfly(u, w, table[idx-1])
}

// BitReversePermute reorders v according to the bit-reversal permutation
// of its length, the standard precondition for feeding natural-order
// coefficients into this package's decimation-in-frequency recursion.
func BitReversePermute[T any](v []T) {
	n := len(v)
	logN := bits.Len(uint(n)) - 1
	for i := 1; i < n; i++ {
		r := int(bits.Reverse(uint(i)) >> (bits.UintSize - logN))
		if i < r {
			v[i], v[r] = v[r], v[i]
		}
	}
}
