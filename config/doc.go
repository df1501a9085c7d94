// Package config builds the parameter tables the driver needs on the
// prover and verifier sides: how a polynomial's length is split into
// row/column dimensions at the initial layer and at each recursive
// step, how many sumcheck rounds ("k") each layer folds, and how many
// queries are drawn per layer.
package config

import (
	"github.com/rs/zerolog"

	"github.com/ligerito/ligerito/transcript"
)

// Dims is a (rows, cols) matrix shape for one Ligero layer.
type Dims struct {
	Rows, Cols int
}

// Variant selects a fold-factor ("k") family, named after the original
// benchmark harness's hardcoded_config_*_k6/_k8/_k10 variants: a larger k
// folds more sumcheck rounds per layer, and the larger-k variants also
// use more layers (2, 3 and 4 steps for k6, k8 and k10), trading
// prover parallelism (K8GPUOptimized) or dot-product batch size
// (K10MaxDotProduct) against the default's balance (K6Default).
type Variant int

const (
	K6Default Variant = iota
	K8GPUOptimized
	K10MaxDotProduct
)

func (v Variant) foldFactor() int {
	switch v {
	case K8GPUOptimized:
		return 8
	case K10MaxDotProduct:
		return 10
	default:
		return 6
	}
}

func (v Variant) steps() int {
	switch v {
	case K8GPUOptimized:
		return 3
	case K10MaxDotProduct:
		return 4
	default:
		return 2
	}
}

// Rate is the Reed-Solomon code rate denominator (code length = cols *
// Rate); fixed at 2 (a rate-1/2 code) throughout the module.
const Rate = 2

// queryLog is the log2 of the number of query indices drawn per
// non-final layer, a fixed illustrative security parameter (this
// module does not attempt to calibrate it to a target soundness error;
// see DESIGN.md).
const queryLog = 2

// ProverConfig carries every parameter the prover needs to run Prove.
type ProverConfig struct {
	RecursiveSteps   int
	InitialDims      Dims
	Dims             []Dims // length RecursiveSteps
	InitialK         int
	Ks               []int // length RecursiveSteps
	FinalDims        Dims
	QueriesPerLayer  []int // length RecursiveSteps+2 (last entry is the final layer)
	TranscriptSeed   [32]byte
	TranscriptHash   transcript.HashKind

	// Logger receives Debug-level structured logs from the recursive
	// fold and the Ligero row commit.
	// Hardcoded always sets this to zerolog.Nop(), so the core stays
	// silent unless a caller opts in with its own zerolog.Logger.
	Logger zerolog.Logger
}

// VerifierConfig carries the subset of ProverConfig the verifier needs;
// it is structurally identical since this module's Reed-Solomon code
// stores only evaluation-domain points (no twiddle tables need
// rebuilding on the verifier side, unlike a from-scratch FFT-based
// encoder would require).
type VerifierConfig struct {
	RecursiveSteps  int
	InitialDims     Dims
	Dims            []Dims
	InitialK        int
	Ks              []int
	FinalDims       Dims
	QueriesPerLayer []int
	TranscriptSeed  [32]byte
	TranscriptHash  transcript.HashKind
	Logger          zerolog.Logger
}

func clampLog2(x, max int) int {
	if x > max {
		return max
	}
	if x < 0 {
		return 0
	}
	return x
}

// Hardcoded builds the prover and verifier configs for a polynomial of
// length 2^logN under the given fold-factor variant. logN is expected to
// be one of the sizes this module is tested against (8, 12, 16, 20), but
// the construction is a general deterministic formula, not a per-size
// lookup table. For smaller logN values it still builds the variant's
// full number of layers, clamping each layer's k and query count to the
// variables that remain.
func Hardcoded(logN int, variant Variant) (ProverConfig, VerifierConfig) {
	k := variant.foldFactor()
	steps := variant.steps()

	remaining := logN
	dims := make([]Dims, 0, steps)
	ks := make([]int, 0, steps)
	queries := make([]int, 0, steps+1)

	for i := 0; i < steps; i++ {
		curK := clampLog2(k, remaining)
		rows := 1 << curK
		colsLog := remaining - curK
		cols := 1 << colsLog
		dims = append(dims, Dims{Rows: rows, Cols: cols})
		ks = append(ks, curK)

		qLog := clampLog2(queryLog, colsLog+1)
		t := 1 << qLog
		queries = append(queries, t)

		remaining = qLog + curK
	}

	finalColsLog := remaining / 2
	finalRowsLog := remaining - finalColsLog
	finalDims := Dims{Rows: 1 << finalRowsLog, Cols: 1 << finalColsLog}
	finalQLog := clampLog2(queryLog, finalColsLog+1)
	queries = append(queries, 1<<finalQLog)

	seed := [32]byte{}
	seed[0] = byte(logN)
	seed[1] = byte(variant)

	prover := ProverConfig{
		RecursiveSteps:  len(dims) - 1,
		InitialDims:     dims[0],
		Dims:            dims[1:],
		InitialK:        ks[0],
		Ks:              ks[1:],
		FinalDims:       finalDims,
		QueriesPerLayer: queries,
		TranscriptSeed:  seed,
		TranscriptHash:  transcript.SHA256,
		Logger:          zerolog.Nop(),
	}
	verifier := VerifierConfig{
		RecursiveSteps:  prover.RecursiveSteps,
		InitialDims:     prover.InitialDims,
		Dims:            prover.Dims,
		InitialK:        prover.InitialK,
		Ks:              prover.Ks,
		FinalDims:       prover.FinalDims,
		QueriesPerLayer: prover.QueriesPerLayer,
		TranscriptSeed:  prover.TranscriptSeed,
		TranscriptHash:  prover.TranscriptHash,
		Logger:          zerolog.Nop(),
	}
	return prover, verifier
}
