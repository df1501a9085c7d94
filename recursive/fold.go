package recursive

import (
	"github.com/ligerito/ligerito/additivefft"
	"github.com/ligerito/ligerito/binaryfield"
	"github.com/ligerito/ligerito/config"
	"github.com/ligerito/ligerito/transcript"
)

// FoldProof is the complete recursive-fold transcript: one LayerProof
// per folded layer (the initial layer plus every config.Dims layer),
// followed by the fully-disclosed final polynomial. Once folding has
// reduced the polynomial to config.FinalDims's (deliberately small)
// size, there is nothing left to gain from committing and querying it:
// the prover simply sends it in the clear and the verifier recomputes
// the claimed dot product directly. This is the base case every
// recursive tensor-IOP construction needs; the per-layer Ligero
// commitment exists to tie each smaller polynomial back to the larger
// one it was folded from; a polynomial with nothing folded from it
// needs no such tie. See DESIGN.md.
type FoldProof struct {
	Layers     []LayerProof
	FinalPoly  []binaryfield.F128 // length FinalDims.Rows * FinalDims.Cols
}

func embedPoly(poly []binaryfield.F32) []binaryfield.F128 {
	out := make([]binaryfield.F128, len(poly))
	for i, x := range poly {
		out[i] = binaryfield.EmbedF32ToF128(x)
	}
	return out
}

// rsCodeFor builds the rate-config.Rate Reed-Solomon code for a layer
// with the given column count, drawing evaluation points from the F128
// domain (shared across every layer since every layer operates over
// F128; see doc.go).
func rsCodeFor(cols int) *additivefft.RSCode[binaryfield.F128] {
	n := cols * config.Rate
	domain := additivefft.DomainF128(n)
	return additivefft.NewRSCode[binaryfield.F128](cols, n, domain)
}

// layerDimsAndKs walks a ProverConfig/VerifierConfig's folded-layer
// sequence in order: the initial layer, then each entry of Dims.
// FinalDims is handled separately as the disclosed base case.
func layerDimsAndKs(initialDims config.Dims, initialK int, dims []config.Dims, ks []int) ([]config.Dims, []int) {
	allDims := make([]config.Dims, 0, len(dims)+1)
	allKs := make([]int, 0, len(ks)+1)
	allDims = append(allDims, initialDims)
	allKs = append(allKs, initialK)
	allDims = append(allDims, dims...)
	allKs = append(allKs, ks...)
	return allDims, allKs
}

func dot(f, g []binaryfield.F128) binaryfield.F128 {
	var acc binaryfield.F128
	for i, x := range f {
		acc = acc.Add(x.Mul(g[i]))
	}
	return acc
}

// Prove runs the full recursive fold over poly (length 2^logN, logN
// implied by cfg) against an evaluation vector g of the same length,
// proving that dot(embed(poly), g) equals the value it returns. The
// caller decides what g means: ligero.LagrangeBasis(point) for a
// multilinear-evaluation claim at point, or a transcript-drawn random
// vector for a pure proximity/consistency claim (what the root driver
// package uses, since its Prove/Verify signature carries no evaluation
// point).
func Prove(cfg config.ProverConfig, poly []binaryfield.F32, g []binaryfield.F128) (FoldProof, binaryfield.F128) {
	tr := transcript.New(cfg.TranscriptHash, cfg.TranscriptSeed)

	f := embedPoly(poly)
	claim := dot(f, g)

	allDims, allKs := layerDimsAndKs(cfg.InitialDims, cfg.InitialK, cfg.Dims, cfg.Ks)

	layers := make([]LayerProof, 0, len(allDims))
	for i, dims := range allDims {
		code := rsCodeFor(dims.Cols)
		layerLog := cfg.Logger.With().Int("layer", i).Logger()
		proof, nextF, nextG, nextClaim := ProveLayer(f, g, claim, dims, allKs[i], cfg.QueriesPerLayer[i], code, tr, layerLog)
		layers = append(layers, proof)
		f, g, claim = nextF, nextG, nextClaim
	}

	return FoldProof{Layers: layers, FinalPoly: f}, claim
}

// Verify replays Prove's transcript interactions and checks every
// layer plus the final disclosed polynomial against the running claim.
// It never panics.
func Verify(cfg config.VerifierConfig, proof FoldProof, g []binaryfield.F128, claimedValue binaryfield.F128) bool {
	tr := transcript.New(cfg.TranscriptHash, cfg.TranscriptSeed)

	claim := claimedValue

	allDims, allKs := layerDimsAndKs(cfg.InitialDims, cfg.InitialK, cfg.Dims, cfg.Ks)
	if len(proof.Layers) != len(allDims) {
		return false
	}

	for i, dims := range allDims {
		code := rsCodeFor(dims.Cols)
		layerLog := cfg.Logger.With().Int("layer", i).Logger()
		ok, nextG, nextClaim := VerifyLayer(proof.Layers[i], g, claim, dims, allKs[i], cfg.QueriesPerLayer[i], code.N, tr, layerLog)
		if !ok {
			return false
		}
		g, claim = nextG, nextClaim
	}

	if len(proof.FinalPoly) != cfg.FinalDims.Rows*cfg.FinalDims.Cols || len(proof.FinalPoly) != len(g) {
		return false
	}
	return dot(proof.FinalPoly, g) == claim
}
