package ligero

import "github.com/ligerito/ligerito/binaryfield"

// LagrangeBasis returns the 2^len(challenges) evaluations of the
// multilinear Lagrange basis at the given challenge point: entry j has
// bit i of j selecting (1-r_i) when 0 or r_i when 1, for i from the
// first challenge (most significant in the tensor) to the last.
func LagrangeBasis(challenges []binaryfield.F128) []binaryfield.F128 {
	one := binaryfield.F128{}.One()
	basis := make([]binaryfield.F128, 1)
	basis[0] = one
	size := 1
	for _, r := range challenges {
		oneMinusR := one.Add(r) // char 2: 1 - r = 1 + r
		next := make([]binaryfield.F128, size*2)
		for i := 0; i < size; i++ {
			next[2*i] = basis[i].Mul(oneMinusR)
			next[2*i+1] = basis[i].Mul(r)
		}
		basis = next
		size *= 2
	}
	return basis
}
