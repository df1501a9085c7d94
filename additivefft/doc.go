// Package additivefft implements the characteristic-2 ("additive")
// analogue of the Cooley-Tukey FFT used to systematically Reed-Solomon
// encode Ligero rows: instead of multiplicative roots of unity it
// recurses over an F2-vector-space basis of the field, using the
// butterfly (u, w) -> (u + lambda*w, w + u + lambda*w).
//
// The butterfly matrix [[1, lambda], [1, 1+lambda]] has determinant
// 1 + lambda + lambda = 1 for every lambda (the two lambda terms cancel
// under XOR), so the transform is invertible for any twiddle table: FFT
// and IFFT are implemented as exact algebraic inverses of the same
// recursion, which is what makes the round-trip property independent of
// exactly which domain basis the twiddle table encodes.
package additivefft

import "github.com/ligerito/ligerito/binaryfield"

// Elem is the constraint additivefft needs from a field element: an
// additive group with a compatible scalar multiplication, satisfied by
// both binaryfield.F32 (the row/column field) and binaryfield.F128 (the
// extension field every recursive layer runs over).
type Elem[T comparable] interface {
	binaryfield.Elem[T]
}
