package ligerito

import (
	"github.com/ligerito/ligerito/binaryfield"
	"github.com/ligerito/ligerito/config"
	"github.com/ligerito/ligerito/recursive"
)

// Proof is the complete output of Prove: the claimed consistency value
// plus the recursive fold transcript needed to check it.
type Proof struct {
	ClaimedValue binaryfield.F128
	Fold         recursive.FoldProof
}

// Prove runs the full Ligerito commitment and recursive-fold protocol
// over poly under cfg. It panics with a ContractViolation if poly's
// length does not match cfg's configured size — a caller bug, not a
// verification concern.
func Prove(cfg config.ProverConfig, poly []binaryfield.F32) (Proof, error) {
	n := cfg.InitialDims.Rows * cfg.InitialDims.Cols
	if len(poly) != n {
		panic(ContractViolation{Op: "Prove", Reason: "polynomial length does not match cfg.InitialDims"})
	}

	g := initialG(cfg.TranscriptSeed, cfg.TranscriptHash, n)
	fold, claim := recursive.Prove(cfg, poly, g)
	return Proof{ClaimedValue: claim, Fold: fold}, nil
}

// Verify checks proof against cfg. It never panics: any internal
// inconsistency, malformed proof, or contract violation surfaces as
// (false, nil), per the spec's "verifier must not crash on a malformed
// proof" requirement. A non-nil error is reserved for future
// deserialization-layer failures (see serialize.go); Verify itself
// never returns one today.
func Verify(cfg config.VerifierConfig, proof Proof) (ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			ok, err = false, nil
		}
	}()

	n := cfg.InitialDims.Rows * cfg.InitialDims.Cols
	g := initialG(cfg.TranscriptSeed, cfg.TranscriptHash, n)
	return recursive.Verify(cfg, proof.Fold, g, proof.ClaimedValue), nil
}

// VerifyComplete is Verify plus a stricter self-check that the fold
// consumed exactly the configured number of layers and produced a
// final polynomial of exactly the configured final size — catching a
// proof that is well-formed enough to pass the per-layer checks but
// was built against a different (e.g. truncated) layer sequence than
// cfg describes.
func VerifyComplete(cfg config.VerifierConfig, proof Proof) (ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			ok, err = false, nil
		}
	}()

	if len(proof.Fold.Layers) != cfg.RecursiveSteps+1 {
		return false, nil
	}
	if len(proof.Fold.FinalPoly) != cfg.FinalDims.Rows*cfg.FinalDims.Cols {
		return false, nil
	}
	return Verify(cfg, proof)
}
