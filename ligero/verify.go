package ligero

import (
	"github.com/ligerito/ligerito/binaryfield"
	"github.com/ligerito/ligerito/merkle"
)

// Verify checks an Opening against a Commitment: every queried column's
// Merkle leaf hash is re-derived and authenticated against root, and the
// tensor (Lagrange-basis dot product) check is recomputed against the
// prover-sent y_r. It never panics: any structural mismatch yields
// false.
func Verify[T Elem[T]](
	commitment Commitment,
	opening *Opening[T],
	basis []binaryfield.F128,
	embed func(T) binaryfield.F128,
) bool {
	if opening == nil || len(opening.Queries) != len(opening.Columns) || len(opening.Queries) != len(opening.YR) {
		return false
	}
	if len(basis) != commitment.Rows {
		return false
	}
	depth := 0
	for (1 << depth) < commitment.CodeLen {
		depth++
	}

	leaves := make([]merkle.Hash, len(opening.Queries))
	for j, col := range opening.Columns {
		if len(col) != commitment.Rows {
			return false
		}
		leaves[j] = hashColumn[T](col)

		var acc binaryfield.F128
		for i, v := range col {
			acc = acc.Add(basis[i].Mul(embed(v)))
		}
		if acc != opening.YR[j] {
			return false
		}
	}

	return merkle.Verify(commitment.Root, opening.Proof, depth, leaves, opening.Queries)
}
