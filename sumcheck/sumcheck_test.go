package sumcheck

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ligerito/ligerito/binaryfield"
	"github.com/ligerito/ligerito/transcript"
)

func randVec(rng *rand.Rand, n int) []binaryfield.F128 {
	out := make([]binaryfield.F128, n)
	for i := range out {
		out[i] = binaryfield.RandF128(rng)
	}
	return out
}

func dot(f, g []binaryfield.F128) binaryfield.F128 {
	var sum binaryfield.F128
	for i := range f {
		sum = sum.Add(f[i].Mul(g[i]))
	}
	return sum
}

func TestSumcheckProveVerifyRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	const n = 16
	f := randVec(rng, n)
	g := randVec(rng, n)
	claim := dot(f, g)

	seed := [32]byte{1}
	proverTr := transcript.New(transcript.SHA256, seed)
	msgs, proverChallenges, ff, gg := Prove(f, g, claim, 4, proverTr)
	require.Len(t, msgs, 4)

	verifierTr := transcript.New(transcript.SHA256, seed)
	finalClaim, verifierChallenges, ok := Verify(msgs, claim, verifierTr)
	require.True(t, ok)
	require.Equal(t, proverChallenges, verifierChallenges)
	require.Equal(t, ff[0].Mul(gg[0]), finalClaim)
}

func TestSumcheckPartialRoundsLeavesVectors(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	const n = 16
	f := randVec(rng, n)
	g := randVec(rng, n)
	claim := dot(f, g)

	seed := [32]byte{6}
	msgs, _, foldedF, foldedG := Prove(f, g, claim, 2, transcript.New(transcript.SHA256, seed))
	require.Len(t, msgs, 2)
	require.Len(t, foldedF, 4)
	require.Len(t, foldedG, 4)

	finalClaim, _, ok := Verify(msgs, claim, transcript.New(transcript.SHA256, seed))
	require.True(t, ok)
	require.Equal(t, dot(foldedF, foldedG), finalClaim)
}

func TestSumcheckVerifyRejectsTamperedMessage(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const n = 8
	f := randVec(rng, n)
	g := randVec(rng, n)
	claim := dot(f, g)

	seed := [32]byte{2}
	msgs, _, _, _ := Prove(f, g, claim, 3, transcript.New(transcript.SHA256, seed))
	msgs[0].Y0 = msgs[0].Y0.Add(binaryfield.F128{}.One())

	_, _, ok := Verify(msgs, claim, transcript.New(transcript.SHA256, seed))
	require.False(t, ok)
}

func TestSumcheckVerifyRejectsWrongClaim(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	const n = 8
	f := randVec(rng, n)
	g := randVec(rng, n)
	claim := dot(f, g)

	seed := [32]byte{3}
	msgs, _, _, _ := Prove(f, g, claim, 3, transcript.New(transcript.SHA256, seed))

	wrongClaim := claim.Add(binaryfield.F128{}.One())
	_, _, ok := Verify(msgs, wrongClaim, transcript.New(transcript.SHA256, seed))
	require.False(t, ok)
}

func TestCombineClaimsLinearity(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	const n = 8
	f := randVec(rng, n)
	g1 := randVec(rng, n)
	g2 := randVec(rng, n)
	g3 := randVec(rng, n)

	instances := []Claim{
		{G: g1, Claim: dot(f, g1)},
		{G: g2, Claim: dot(f, g2)},
		{G: g3, Claim: dot(f, g3)},
	}

	seed := [32]byte{4}
	proverTr := transcript.New(transcript.SHA256, seed)
	combined := CombineClaims(instances, proverTr)

	require.Equal(t, dot(f, combined.G), combined.Claim)

	verifierTr := transcript.New(transcript.SHA256, seed)
	combinedAgain := CombineClaims(instances, verifierTr)
	require.Equal(t, combined, combinedAgain)
}

func TestCombineClaimsSingleInstanceIsIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	g := randVec(rng, 4)
	inst := Claim{G: g, Claim: dot(randVec(rng, 4), g)}
	combined := CombineClaims([]Claim{inst}, transcript.New(transcript.SHA256, [32]byte{5}))
	require.Equal(t, inst, combined)
}
