package binaryfield

import "math/bits"

// gf2poly holds the handful of GF(2)[x] routines needed to find and
// certify the degree-16 irreducible polynomial that anchors the field
// tower (see f16.go). Every polynomial is represented as the bit vector
// of its coefficients, LSB = constant term, with the polynomial's own
// degree equal to the index of its highest set bit.

func polDegree(a uint64) int {
	if a == 0 {
		return -1
	}
	return bits.Len64(a) - 1
}

// polMulXor is the carryless (XOR, no-carry) product of a and b: exactly
// the multiplication of the two polynomials they encode over GF(2).
func polMulXor(a, b uint64) uint64 {
	var result uint64
	for b != 0 {
		if b&1 == 1 {
			result ^= a
		}
		a <<= 1
		b >>= 1
	}
	return result
}

// polMod reduces a modulo b (ordinary polynomial long division over GF(2),
// returning only the remainder).
func polMod(a, b uint64) uint64 {
	degB := polDegree(b)
	for a != 0 {
		degA := polDegree(a)
		if degA < degB {
			break
		}
		a ^= b << (degA - degB)
	}
	return a
}

func polGCD(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, polMod(a, b)
	}
	return a
}

// polMulMod multiplies a and b and reduces modulo a fixed-degree modulus.
func polMulMod(a, b, modulus uint64, modDeg int) uint64 {
	prod := polMulXor(a, b)
	for {
		d := polDegree(prod)
		if d < modDeg {
			return prod
		}
		prod ^= modulus << (d - modDeg)
	}
}

// polSquareMod is polMulMod(a, a, ...), split out since it is the inner
// loop of both the irreducibility test and every tower field's squaring.
func polSquareMod(a, modulus uint64, modDeg int) uint64 {
	return polMulMod(a, a, modulus, modDeg)
}

// isIrreducibleGF2 runs Rabin's irreducibility test: poly (degree n) is
// irreducible over GF(2) iff x^(2^n) = x (mod poly) and, for every prime
// factor p of n, gcd(x^(2^(n/p)) - x, poly) = 1.
func isIrreducibleGF2(poly uint64, n int, primeFactors []int) bool {
	const x = uint64(2)

	t := x
	for i := 0; i < n; i++ {
		t = polSquareMod(t, poly, n)
	}
	if t != x {
		return false
	}

	for _, p := range primeFactors {
		m := n / p
		g := x
		for i := 0; i < m; i++ {
			g = polSquareMod(g, poly, n)
		}
		if polGCD(g^x, poly) != 1 {
			return false
		}
	}
	return true
}

// findIrreducible searches odd-constant-term candidates of degree n,
// starting at seed and incrementing by 2 (any reducible-by-x candidate
// has a zero constant term and is skipped automatically), returning the
// first that is genuinely irreducible. It is deterministic: given the
// same (n, primeFactors, seed) it always returns the same polynomial, so
// serialized proofs stay reproducible across builds.
func findIrreducible(n int, primeFactors []int, seed uint64) uint64 {
	top := uint64(1) << n
	if seed&1 == 0 {
		seed |= 1
	}
	for cand := seed; cand < top; cand += 2 {
		full := top | cand
		if isIrreducibleGF2(full, n, primeFactors) {
			return full
		}
	}
	panic("binaryfield: no irreducible polynomial found in search range")
}
