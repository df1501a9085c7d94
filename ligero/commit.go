package ligero

import (
	"github.com/rs/zerolog"

	"github.com/ligerito/ligerito/additivefft"
	"github.com/ligerito/ligerito/merkle"
)

// Commitment is the public output of Commit: a Merkle root plus the
// dimensions needed to interpret queries against it.
type Commitment struct {
	Root        merkle.Hash
	Rows, Cols  int
	CodeLen     int // cols * r, the query space size
}

// Result bundles the commitment with the prover-side state (the encoded
// matrix and its Merkle tree) needed to answer later openings.
type Result[T Elem[T]] struct {
	Commitment  Commitment
	EncodedRows [][]T // EncodedRows[i] has length CodeLen
	tree        *merkle.Tree
}

func hashColumn[T Elem[T]](col []T) merkle.Hash {
	buf := make([]byte, 0, len(col)*16)
	for _, v := range col {
		buf = append(buf, v.Bytes()...)
	}
	return merkle.HashLeaf(buf)
}

// Commit reshapes poly (length rows*cols) row-major into a rows x cols
// matrix, Reed-Solomon encodes every row with code, and builds a Merkle
// tree over the encoded matrix's columns.
func Commit[T Elem[T]](poly []T, rows, cols int, code *additivefft.RSCode[T], parallel bool, logger zerolog.Logger) *Result[T] {
	if len(poly) != rows*cols {
		panic("ligero: polynomial length does not match rows*cols")
	}
	if code.K != cols {
		panic("ligero: code dimension does not match column count")
	}

	logger.Debug().Int("rows", rows).Int("cols", cols).Bool("parallel", parallel).Msg("ligero: committing")

	encoded := make([][]T, rows)
	parallelFor(rows, parallel, func(i int) {
		row := poly[i*cols : (i+1)*cols]
		encoded[i] = code.Encode(row)
	})

	n := code.N
	leaves := make([]merkle.Hash, n)
	parallelFor(n, parallel, func(q int) {
		col := make([]T, rows)
		for i := 0; i < rows; i++ {
			col[i] = encoded[i][q]
		}
		leaves[q] = hashColumn[T](col)
	})

	tree := merkle.Build(leaves)
	logger.Debug().Int("code_len", n).Msg("ligero: commit tree built")
	return &Result[T]{
		Commitment: Commitment{Root: tree.Root(), Rows: rows, Cols: cols, CodeLen: n},
		EncodedRows: encoded,
		tree:        tree,
	}
}
