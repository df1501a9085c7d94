package transcript

import (
	"encoding/binary"

	"github.com/ligerito/ligerito/binaryfield"
)

// Transcript is a single-owner, append-only Fiat-Shamir hash chain.
// State starts from H("ligerito.v1" || kind || seed); Absorb folds in a
// domain-separated (label, bytes) pair; Challenge/ChallengeIndex derive
// pseudorandom output from the current state without advancing it until
// the derivation's own domain-separated absorb step.
type Transcript struct {
	hasher Hasher
	state  [32]byte
	nAbs   uint64
	nChal  uint64
}

// New creates a transcript seeded for one proof. The same (kind, seed)
// pair on both prover and verifier sides is what makes their challenge
// sequences agree.
func New(kind HashKind, seed [32]byte) *Transcript {
	t := &Transcript{hasher: NewHasher(kind)}
	init := make([]byte, 0, len("ligerito.v1")+1+32)
	init = append(init, "ligerito.v1"...)
	init = append(init, byte(kind))
	init = append(init, seed[:]...)
	t.state = t.hasher.Hash(init)
	return t
}

func lengthPrefixed(buf []byte, s []byte) []byte {
	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(s)))
	buf = append(buf, lenBuf[:]...)
	buf = append(buf, s...)
	return buf
}

// Absorb folds label and data into the running state: the proof input
// field element, commitment root, or sumcheck message this call carries
// must have been fully determined by the caller before this point, since
// every subsequent challenge depends on it.
func (t *Transcript) Absorb(label string, data []byte) {
	buf := make([]byte, 0, len(t.state)+8+len(label)+len(data))
	buf = append(buf, t.state[:]...)
	buf = lengthPrefixed(buf, []byte(label))
	buf = lengthPrefixed(buf, data)
	t.state = t.hasher.Hash(buf)
	t.nAbs++
}

// Challenge derives a domain-separated F128 challenge from the current
// state and advances the chain so the same label never repeats the same
// output.
func (t *Transcript) Challenge(label string) binaryfield.F128 {
	buf := make([]byte, 0, len(t.state)+4+len(label))
	buf = append(buf, t.state[:]...)
	buf = append(buf, "chal"...)
	buf = append(buf, []byte(label)...)
	out := t.hasher.Hash(buf)
	t.state = out
	t.nChal++

	var limbs [16]byte
	copy(limbs[:], out[:16])
	return binaryfield.F128FromBytes(limbs)
}

// ChallengeIndex draws an index in [0, bound) by rejection sampling over
// raw transcript bytes, so results are unbiased even when bound is not a
// power of two. When bound is a power of two the low bits are taken
// directly, a special case of the same rejection loop (first sample
// always accepted).
func (t *Transcript) ChallengeIndex(label string, bound uint32) uint32 {
	if bound == 0 {
		panic(&ContractViolation{Op: "ChallengeIndex", Reason: "bound must be positive"})
	}
	mask := nextPowerOfTwo(bound) - 1
	for attempt := 0; ; attempt++ {
		buf := make([]byte, 0, len(t.state)+4+len(label)+4)
		buf = append(buf, t.state[:]...)
		buf = append(buf, "idx"...)
		buf = append(buf, []byte(label)...)
		var attemptBuf [4]byte
		binary.LittleEndian.PutUint32(attemptBuf[:], uint32(attempt))
		buf = append(buf, attemptBuf[:]...)
		out := t.hasher.Hash(buf)
		t.state = out
		t.nChal++

		candidate := binary.LittleEndian.Uint32(out[:4]) & mask
		if candidate < bound {
			return candidate
		}
	}
}

func nextPowerOfTwo(n uint32) uint32 {
	if n == 0 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	return n + 1
}
