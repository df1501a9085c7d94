// Package ligero implements the row-encode/column-query commitment
// scheme that each Ligerito layer uses: a polynomial is reshaped into a
// rows*cols matrix, each row is Reed-Solomon encoded, and the committed
// object is a Merkle tree whose leaves are the *columns* of the encoded
// matrix. Committing by column (rather than by row) is the axis choice
// the module's specification explicitly leaves open ("the scheme MAY
// commit to columns rather than rows depending on the layer dimensions");
// this package always commits by column, which keeps leaf hashing,
// opening, and verification symmetric without ever requiring a full row
// to authenticate a single queried entry. See DESIGN.md for the full
// resolution of this Open Question.
package ligero

import "github.com/ligerito/ligerito/additivefft"

// Elem is the field-element constraint ligero needs: additivefft's
// arithmetic contract plus a canonical byte serialization for Merkle
// leaf hashing.
type Elem[T comparable] interface {
	additivefft.Elem[T]
	Bytes() []byte
}
