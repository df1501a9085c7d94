// Package ligerito is the module root: it drives the recursive Ligero
// fold (package recursive) from a single polynomial down to a proof a
// verifier can check without the polynomial in hand.
//
// Prove/Verify carry no external evaluation point — the scheme proves
// that the committed polynomial is well-formed and that its recursive
// folding is internally consistent, not an evaluation at a
// caller-chosen point. The vector the first layer's sumcheck runs
// against is therefore not a Lagrange basis of some point but a
// transcript-derived random vector (initialG), giving the initial
// layer the same random-linear-combination proximity-test character
// Ligero's row/column consistency check has at every later layer.
package ligerito

import (
	"fmt"

	"github.com/ligerito/ligerito/binaryfield"
	"github.com/ligerito/ligerito/transcript"
)

// ContractViolation is the panic value for caller misuse: a polynomial
// length that does not match the config (Prove), or a proof with no
// layers (Marshal). It is never used for an adversarial or corrupted proof —
// those make Verify return false, not panic. See doc comment on Verify.
type ContractViolation struct {
	Op     string
	Reason string
}

func (e ContractViolation) Error() string {
	return fmt.Sprintf("ligerito: contract violation in %s: %s", e.Op, e.Reason)
}

// initialG derives the first layer's evaluation vector deterministically
// from the config alone, using a transcript instance distinct from the
// one Prove/Verify use for the fold itself, so both sides can compute it
// without access to the polynomial.
func initialG(seed [32]byte, kind transcript.HashKind, n int) []binaryfield.F128 {
	tr := transcript.New(kind, seed)
	tr.Absorb("ligerito_initial_g_setup", []byte{byte(n), byte(n >> 8), byte(n >> 16), byte(n >> 24)})
	out := make([]binaryfield.F128, n)
	for i := range out {
		out[i] = tr.Challenge(fmt.Sprintf("ligerito_initial_g_%d", i))
	}
	return out
}
