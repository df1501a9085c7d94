package sumcheck

import (
	"fmt"

	"github.com/ligerito/ligerito/binaryfield"
	"github.com/ligerito/ligerito/transcript"
)

// Claim is one sumcheck instance sharing a common f: sum_x f(x)*G(x) = Claim.
type Claim struct {
	G     []binaryfield.F128
	Claim binaryfield.F128
}

// CombineClaims folds several simultaneous claims against the same f
// into one, via a transcript-drawn random linear combination: the first
// instance's coefficient is fixed at 1, every other instance's
// coefficient is a fresh challenge. The combined instance is valid
// because sum_x f(x) * (sum_i coeff_i*G_i(x)) = sum_i coeff_i * (sum_x
// f(x)*G_i(x)) = sum_i coeff_i*Claim_i by linearity.
func CombineClaims(instances []Claim, tr *transcript.Transcript) Claim {
	if len(instances) == 0 {
		panic("sumcheck: CombineClaims requires at least one instance")
	}
	if len(instances) == 1 {
		return instances[0]
	}
	n := len(instances[0].G)
	combinedG := make([]binaryfield.F128, n)
	var combinedClaim binaryfield.F128

	for i, inst := range instances {
		if len(inst.G) != n {
			panic("sumcheck: CombineClaims instances must share a domain size")
		}
		coeff := binaryfield.F128{}.One()
		if i > 0 {
			coeff = tr.Challenge(fmt.Sprintf("combine_%d", i))
		}
		for j := range combinedG {
			combinedG[j] = combinedG[j].Add(coeff.Mul(inst.G[j]))
		}
		combinedClaim = combinedClaim.Add(coeff.Mul(inst.Claim))
	}
	return Claim{G: combinedG, Claim: combinedClaim}
}
