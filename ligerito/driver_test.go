package ligerito

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/ligerito/ligerito/binaryfield"
	"github.com/ligerito/ligerito/config"
)

func randPoly(rng *rand.Rand, n int) []binaryfield.F32 {
	out := make([]binaryfield.F32, n)
	for i := range out {
		out[i] = binaryfield.RandF32(rng)
	}
	return out
}

func TestProveVerifyRoundTrip(t *testing.T) {
	const logN = 8
	prover, verifier := config.Hardcoded(logN, config.K6Default)
	poly := randPoly(rand.New(rand.NewSource(1)), 1<<logN)

	proof, err := Prove(prover, poly)
	require.NoError(t, err)

	ok, err := Verify(verifier, proof)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = VerifyComplete(verifier, proof)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestVerifyRejectsTamperedClaim(t *testing.T) {
	const logN = 8
	prover, verifier := config.Hardcoded(logN, config.K6Default)
	poly := randPoly(rand.New(rand.NewSource(2)), 1<<logN)

	proof, err := Prove(prover, poly)
	require.NoError(t, err)

	proof.ClaimedValue = proof.ClaimedValue.Add(binaryfield.F128{}.One())
	ok, err := Verify(verifier, proof)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestProveDifferentSeedsDivergeRoots(t *testing.T) {
	const logN = 8
	poly := randPoly(rand.New(rand.NewSource(3)), 1<<logN)

	proverA, _ := config.Hardcoded(logN, config.K6Default)
	proverB, _ := config.Hardcoded(logN, config.K6Default)
	proverB.TranscriptSeed[31] ^= 0xFF

	proofA, err := Prove(proverA, poly)
	require.NoError(t, err)
	proofB, err := Prove(proverB, poly)
	require.NoError(t, err)

	require.NotEqual(t, proofA.Fold.Layers[1].Root, proofB.Fold.Layers[1].Root)
}

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	const logN = 8
	prover, verifier := config.Hardcoded(logN, config.K6Default)
	poly := randPoly(rand.New(rand.NewSource(4)), 1<<logN)

	proof, err := Prove(prover, poly)
	require.NoError(t, err)

	encoded := Marshal(proof)
	decoded, err := Unmarshal(encoded)
	require.NoError(t, err)

	if diff := cmp.Diff(proof, decoded); diff != "" {
		t.Fatalf("decoded proof differs from original (-want +got):\n%s", diff)
	}

	ok, err := Verify(verifier, decoded)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestMarshalTamperedByteRejects(t *testing.T) {
	const logN = 8
	prover, verifier := config.Hardcoded(logN, config.K6Default)
	poly := randPoly(rand.New(rand.NewSource(5)), 1<<logN)

	proof, err := Prove(prover, poly)
	require.NoError(t, err)

	encoded := Marshal(proof)
	encoded[0] ^= 0xFF

	decoded, err := Unmarshal(encoded)
	if err != nil {
		return
	}
	ok, err := Verify(verifier, decoded)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestUnmarshalRejectsTruncatedInput(t *testing.T) {
	const logN = 8
	prover, _ := config.Hardcoded(logN, config.K6Default)
	poly := randPoly(rand.New(rand.NewSource(6)), 1<<logN)

	proof, err := Prove(prover, poly)
	require.NoError(t, err)

	encoded := Marshal(proof)
	_, err = Unmarshal(encoded[:len(encoded)/2])
	require.Error(t, err)
}

func TestProveHigherVariants(t *testing.T) {
	for _, variant := range []config.Variant{config.K8GPUOptimized, config.K10MaxDotProduct} {
		const logN = 16
		prover, verifier := config.Hardcoded(logN, variant)
		poly := randPoly(rand.New(rand.NewSource(int64(300)+int64(variant))), 1<<logN)

		proof, err := Prove(prover, poly)
		require.NoError(t, err)
		ok, err := Verify(verifier, proof)
		require.NoError(t, err)
		require.True(t, ok)
	}
}
