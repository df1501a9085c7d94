// Command ligerito-bench times Prove and Verify for a configured
// polynomial size and prints a proof-size breakdown, mirroring the
// per-component byte-count report the original benchmark harness's
// test_proof_sizes_k.rs prints. It is a diagnostic collaborator living
// outside the core library, not part of the protocol itself.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime/pprof"
	"time"

	"github.com/fxamacker/cbor/v2"
	googlepprof "github.com/google/pprof/profile"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ligerito/ligerito/binaryfield"
	"github.com/ligerito/ligerito/config"
	"github.com/ligerito/ligerito/ligerito"
	"github.com/ligerito/ligerito/recursive"
)

// stats is the cross-run comparison snapshot written to -report.
type stats struct {
	LogN        int    `cbor:"log_n"`
	Variant     string `cbor:"variant"`
	ProveNanos  int64  `cbor:"prove_ns"`
	VerifyNanos int64  `cbor:"verify_ns"`
	ProofBytes  int    `cbor:"proof_bytes"`
	InitialBytes int   `cbor:"initial_bytes"`
	LayerBytes   []int `cbor:"layer_bytes"`
	FinalBytes   int   `cbor:"final_bytes"`
}

func parseVariant(s string) (config.Variant, string) {
	switch s {
	case "k8":
		return config.K8GPUOptimized, "k8"
	case "k10":
		return config.K10MaxDotProduct, "k10"
	default:
		return config.K6Default, "k6"
	}
}

func layerByteBreakdown(proof ligerito.Proof) (initial int, perLayer []int, final int) {
	layerBytes := func(layer recursive.LayerProof) int {
		n := 32
		for range layer.SumcheckMsgs {
			n += 48
		}
		if layer.Opening != nil {
			for _, col := range layer.Opening.Columns {
				n += 16 + len(col)*16
			}
		}
		return n
	}
	if len(proof.Fold.Layers) > 0 {
		initial = layerBytes(proof.Fold.Layers[0])
	}
	for _, layer := range proof.Fold.Layers[1:] {
		perLayer = append(perLayer, layerBytes(layer))
	}
	final = len(proof.Fold.FinalPoly) * 16
	return initial, perLayer, final
}

func main() {
	logN := flag.Int("logN", 16, "log2 of the polynomial length to benchmark")
	variantFlag := flag.String("variant", "k6", "fold-factor variant: k6, k8, or k10")
	cpuProfile := flag.String("cpuprofile", "", "write a CPU profile of Prove to this file")
	reportPath := flag.String("report", "", "write a CBOR-encoded stats snapshot to this file")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	variant, variantName := parseVariant(*variantFlag)
	prover, verifier := config.Hardcoded(*logN, variant)

	rng := rand.New(rand.NewSource(1))
	poly := make([]binaryfield.F32, 1<<uint(*logN))
	for i := range poly {
		poly[i] = binaryfield.RandF32(rng)
	}

	var cpuFile *os.File
	if *cpuProfile != "" {
		var err error
		cpuFile, err = os.Create(*cpuProfile)
		if err != nil {
			log.Fatal().Err(err).Msg("creating cpu profile file")
		}
		if err := pprof.StartCPUProfile(cpuFile); err != nil {
			log.Fatal().Err(err).Msg("starting cpu profile")
		}
	}

	proveStart := time.Now()
	proof, err := ligerito.Prove(prover, poly)
	proveElapsed := time.Since(proveStart)
	if err != nil {
		log.Fatal().Err(err).Msg("prove failed")
	}

	if cpuFile != nil {
		pprof.StopCPUProfile()
		cpuFile.Close()
		if f, err := os.Open(*cpuProfile); err == nil {
			if p, err := googlepprof.Parse(f); err == nil {
				log.Info().Int("samples", len(p.Sample)).Msg("cpu profile captured")
			}
			f.Close()
		}
	}

	verifyStart := time.Now()
	ok, err := ligerito.Verify(verifier, proof)
	verifyElapsed := time.Since(verifyStart)
	if err != nil {
		log.Fatal().Err(err).Msg("verify failed")
	}

	encoded := ligerito.Marshal(proof)
	initial, perLayer, final := layerByteBreakdown(proof)

	log.Info().
		Int("logN", *logN).
		Str("variant", variantName).
		Bool("verified", ok).
		Dur("prove", proveElapsed).
		Dur("verify", verifyElapsed).
		Int("proof_bytes", len(encoded)).
		Int("initial_bytes", initial).
		Ints("layer_bytes", perLayer).
		Int("final_bytes", final).
		Msg("ligerito-bench result")

	if *reportPath != "" {
		s := stats{
			LogN:         *logN,
			Variant:      variantName,
			ProveNanos:   proveElapsed.Nanoseconds(),
			VerifyNanos:  verifyElapsed.Nanoseconds(),
			ProofBytes:   len(encoded),
			InitialBytes: initial,
			LayerBytes:   perLayer,
			FinalBytes:   final,
		}
		data, err := cbor.Marshal(s)
		if err != nil {
			log.Fatal().Err(err).Msg("encoding report")
		}
		if err := os.WriteFile(*reportPath, data, 0o644); err != nil {
			log.Fatal().Err(err).Msg("writing report")
		}
	}

	fmt.Println("done")
}
