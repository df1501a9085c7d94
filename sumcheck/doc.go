// Package sumcheck implements the multilinear sumcheck protocol over
// F128: round j reduces a claim about sum_x f(x)*g(x) over the boolean
// hypercube to a claim about f and g folded at a transcript-derived
// point r_j.
//
// Round messages are sent as three evaluations of the round polynomial
// q_j (at 0, 1, and a fixed third point) rather than the textbook's two
// "nontrivial coefficients plus an implied constant term": over a
// characteristic-2 field, q_j(0)+q_j(1) cancels the constant coefficient
// entirely (2*c0 = 0), so the constant term is NOT in fact recoverable
// from the claim alone the way it is over the rationals or a large prime
// field. Sending q_j(thirdPoint) directly sidesteps that char-2 wrinkle
// at the cost of one extra field element per round. See DESIGN.md.
package sumcheck

import "github.com/ligerito/ligerito/binaryfield"

// thirdPoint is a fixed field element distinct from 0 and 1, used as the
// third interpolation node for every round's degree-2 polynomial.
var thirdPoint = binaryfield.F128FromBytes([16]byte{2})
