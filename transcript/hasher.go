package transcript

import (
	"crypto/sha256"

	"golang.org/x/crypto/sha3"
)

// HashKind selects the hash function backing a Transcript. The kind is
// itself absorbed into the initial state so the two backends never
// collide, per the module's domain-separation rule.
type HashKind byte

const (
	SHA256 HashKind = iota
	SHA3_256
)

func (k HashKind) String() string {
	switch k {
	case SHA256:
		return "sha256"
	case SHA3_256:
		return "sha3-256"
	default:
		return "unknown"
	}
}

// Hasher is the minimal one-shot digest contract a Transcript needs.
// Both implementations are stateless: callers always call Hash on the
// full accumulated input, never Write-then-Sum incrementally, so the
// transcript's own state (not the underlying hash.Hash) carries the
// chain.
type Hasher interface {
	Hash(data []byte) [32]byte
	Kind() HashKind
}

type sha256Hasher struct{}

func (sha256Hasher) Hash(data []byte) [32]byte { return sha256.Sum256(data) }
func (sha256Hasher) Kind() HashKind            { return SHA256 }

type sha3Hasher struct{}

func (sha3Hasher) Hash(data []byte) [32]byte {
	return sha3.Sum256(data)
}
func (sha3Hasher) Kind() HashKind { return SHA3_256 }

// NewHasher constructs the Hasher for the given kind.
func NewHasher(kind HashKind) Hasher {
	switch kind {
	case SHA3_256:
		return sha3Hasher{}
	default:
		return sha256Hasher{}
	}
}
