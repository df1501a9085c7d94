// Package merkle implements a balanced binary Merkle tree over SHA-256
// digests with multi-proof compression: an opening for a sorted set of
// query indices carries only the sibling hashes that are not themselves
// ancestors of another queried leaf.
package merkle

import "crypto/sha256"

// Hash is a 256-bit digest.
type Hash [32]byte

const (
	leafDomainSep = byte(0x00)
	nodeDomainSep = byte(0x01)
)

// HashLeaf hashes a single encoded row/column, domain-separated from
// internal nodes so a leaf can never be replayed as an internal node or
// vice versa.
func HashLeaf(data []byte) Hash {
	h := sha256.New()
	h.Write([]byte{leafDomainSep})
	h.Write(data)
	var out Hash
	copy(out[:], h.Sum(nil))
	return out
}

func hashNode(left, right Hash) Hash {
	h := sha256.New()
	h.Write([]byte{nodeDomainSep})
	h.Write(left[:])
	h.Write(right[:])
	var out Hash
	copy(out[:], h.Sum(nil))
	return out
}
