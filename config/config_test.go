package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHardcodedDimensionInvariants(t *testing.T) {
	for _, logN := range []int{8, 12, 16, 20} {
		for _, variant := range []Variant{K6Default, K8GPUOptimized, K10MaxDotProduct} {
			prover, verifier := Hardcoded(logN, variant)
			require.Equal(t, prover, ProverConfig(verifier))

			require.Equal(t, 1<<uint(logN), prover.InitialDims.Rows*prover.InitialDims.Cols)
			require.Equal(t, 1<<uint(prover.InitialK), prover.InitialDims.Rows)

			n := prover.InitialDims.Rows * prover.InitialDims.Cols
			t0 := prover.QueriesPerLayer[0]
			nextN := t0 * prover.InitialDims.Rows

			for i, d := range prover.Dims {
				require.Equal(t, nextN, d.Rows*d.Cols, "layer %d dims must match prior layer's t*rows", i)
				require.Equal(t, 1<<uint(prover.Ks[i]), d.Rows)
				tNext := prover.QueriesPerLayer[i+1]
				nextN = tNext * d.Rows
			}

			require.Equal(t, nextN, prover.FinalDims.Rows*prover.FinalDims.Cols)
			_ = n
		}
	}
}
