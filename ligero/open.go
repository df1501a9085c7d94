package ligero

import (
	"github.com/ligerito/ligerito/binaryfield"
	"github.com/ligerito/ligerito/merkle"
)

// Opening is what the prover sends for a set of column queries: the
// queried columns themselves, the Merkle multi-proof over their column
// hashes, and the per-query tensor-check value y_r.
type Opening[T Elem[T]] struct {
	Queries []int
	Columns [][]T // Columns[j] has length Rows, parallel to Queries
	YR      []binaryfield.F128
	Proof   *merkle.Proof
}

// Open answers query indices (each in [0, CodeLen)) against a prior
// Commit result. basis is the Lagrange basis of whatever challenges have
// been bound so far (length Rows); embed lifts a column entry of type T
// into F128 for the tensor check (identity when T is already F128).
func (r *Result[T]) Open(queries []int, basis []binaryfield.F128, embed func(T) binaryfield.F128) *Opening[T] {
	if len(basis) != r.Commitment.Rows {
		panic("ligero: basis length does not match row count")
	}
	columns := make([][]T, len(queries))
	yr := make([]binaryfield.F128, len(queries))
	for j, q := range queries {
		col := make([]T, r.Commitment.Rows)
		for i := 0; i < r.Commitment.Rows; i++ {
			col[i] = r.EncodedRows[i][q]
		}
		columns[j] = col

		var acc binaryfield.F128
		for i, v := range col {
			acc = acc.Add(basis[i].Mul(embed(v)))
		}
		yr[j] = acc
	}
	proof := r.tree.Prove(queries)
	return &Opening[T]{Queries: queries, Columns: columns, YR: yr, Proof: proof}
}
