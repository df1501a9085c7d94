package binaryfield

// F16 is an element of GF(2^16) = GF(2)[x]/r16(x), stored as the 16-bit
// coefficient vector of its degree-<16 representative polynomial.
type F16 uint16

// r16 is the fixed modulus for GF(2^16). It is found once, at package
// init, by a deterministic Rabin irreducibility search (see rabin.go)
// seeded at the classic low-weight pentanomial candidate x^5+x^3+x+1;
// the search is a correctness proof in itself rather than a constant we
// have to take on faith.
var r16 = findIrreducible(16, []int{2}, 0x2B)

func (a F16) IsZero() bool { return a == 0 }

func (a F16) Add(b F16) F16 { return a ^ b }

func (a F16) Mul(b F16) F16 {
	return F16(polMulMod(uint64(a), uint64(b), r16, 16))
}

func (a F16) Square() F16 { return a.Mul(a) }

// One is the multiplicative identity of GF(2^16).
func (F16) One() F16 { return F16(1) }

// Pow computes a^e by square-and-multiply.
func (a F16) Pow(e uint64) F16 { return Pow[F16](a, F16(1), e) }

// Inv returns the multiplicative inverse of a via Fermat's little theorem
// for finite fields: a^(2^16-2) = a^-1 for every nonzero a.
func (a F16) Inv() F16 {
	if a.IsZero() {
		panic("binaryfield: inverse of zero element")
	}
	return a.Pow((uint64(1) << 16) - 2)
}

// traceToGF2 is Tr_{F16/GF(2)}(a) = a + a^2 + a^4 + ... + a^(2^15). The
// beta search in trace.go uses the generic traceToGF2, not this method.
func (a F16) traceToGF2() F16 {
	t := a
	s := a
	for i := 1; i < 16; i++ {
		t = t.Square()
		s = s.Add(t)
	}
	return s
}
