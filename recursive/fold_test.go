package recursive

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ligerito/ligerito/binaryfield"
	"github.com/ligerito/ligerito/config"
	"github.com/ligerito/ligerito/ligero"
)

func randPoly(rng *rand.Rand, n int) []binaryfield.F32 {
	out := make([]binaryfield.F32, n)
	for i := range out {
		out[i] = binaryfield.RandF32(rng)
	}
	return out
}

func randPoint(rng *rand.Rand, n int) []binaryfield.F128 {
	out := make([]binaryfield.F128, n)
	for i := range out {
		out[i] = binaryfield.RandF128(rng)
	}
	return out
}

func TestFoldProveVerifyRoundTrip(t *testing.T) {
	const logN = 8
	rng := rand.New(rand.NewSource(99))
	poly := randPoly(rng, 1<<logN)
	point := randPoint(rng, logN)

	prover, verifier := config.Hardcoded(logN, config.K6Default)
	g := ligero.LagrangeBasis(point)

	proof, claim := Prove(prover, poly, g)
	require.Len(t, proof.Layers, prover.RecursiveSteps+1)

	ok := Verify(verifier, proof, g, claim)
	require.True(t, ok)
}

func TestFoldVerifyRejectsWrongClaim(t *testing.T) {
	const logN = 8
	rng := rand.New(rand.NewSource(100))
	poly := randPoly(rng, 1<<logN)
	point := randPoint(rng, logN)

	prover, verifier := config.Hardcoded(logN, config.K6Default)
	g := ligero.LagrangeBasis(point)
	proof, claim := Prove(prover, poly, g)

	wrongClaim := claim.Add(binaryfield.F128{}.One())
	require.False(t, Verify(verifier, proof, g, wrongClaim))
}

func TestFoldVerifyRejectsTamperedFinalPoly(t *testing.T) {
	const logN = 8
	rng := rand.New(rand.NewSource(101))
	poly := randPoly(rng, 1<<logN)
	point := randPoint(rng, logN)

	prover, verifier := config.Hardcoded(logN, config.K6Default)
	g := ligero.LagrangeBasis(point)
	proof, claim := Prove(prover, poly, g)

	proof.FinalPoly[0] = proof.FinalPoly[0].Add(binaryfield.F128{}.One())
	require.False(t, Verify(verifier, proof, g, claim))
}

func TestFoldVerifyRejectsTamperedLayerOpening(t *testing.T) {
	const logN = 8
	rng := rand.New(rand.NewSource(102))
	poly := randPoly(rng, 1<<logN)
	point := randPoint(rng, logN)

	prover, verifier := config.Hardcoded(logN, config.K6Default)
	g := ligero.LagrangeBasis(point)
	proof, claim := Prove(prover, poly, g)

	proof.Layers[0].Opening.Columns[0][0] = proof.Layers[0].Opening.Columns[0][0].Add(binaryfield.F128{}.One())
	require.False(t, Verify(verifier, proof, g, claim))
}

func TestFoldHigherVariantsRoundTrip(t *testing.T) {
	for _, variant := range []config.Variant{config.K8GPUOptimized, config.K10MaxDotProduct} {
		const logN = 16
		rng := rand.New(rand.NewSource(int64(200) + int64(variant)))
		poly := randPoly(rng, 1<<logN)
		point := randPoint(rng, logN)

		prover, verifier := config.Hardcoded(logN, variant)
		g := ligero.LagrangeBasis(point)
		proof, claim := Prove(prover, poly, g)
		require.True(t, Verify(verifier, proof, g, claim))
	}
}
