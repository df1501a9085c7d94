package binaryfield

// traceToGF2 computes Tr_{T/GF(2)}(a) = a + a^2 + a^4 + ... + a^(2^(bitWidth-1)),
// the GF(2)-linear functional whose kernel has index 2 in T. It is only
// used offline (at package init) to certify the beta constant that
// anchors the next tower level.
func traceToGF2[T Elem[T]](a T, bitWidth int) T {
	t := a
	s := a
	for i := 1; i < bitWidth; i++ {
		t = t.Mul(t)
		s = s.Add(t)
	}
	return s
}

// findBeta scans the candidates produced by next(1), next(2), ... and
// returns the first with odd trace, i.e. the first for which Y^2+Y+beta
// is irreducible over T. Since exactly half of T's elements have odd
// trace this terminates after a handful of iterations in practice.
func findBeta[T Elem[T]](next func(i uint64) T, bitWidth int) T {
	var zero T
	for i := uint64(1); ; i++ {
		c := next(i)
		if traceToGF2[T](c, bitWidth) != zero {
			return c
		}
	}
}
