package binaryfield

// F32 is an element of GF(2^32), realized as the quadratic tower
// extension F16[Y]/(Y^2+Y+beta16) rather than a second from-scratch flat
// modulus. Hi is the Y-coefficient, Lo the constant term.
type F32 struct {
	Hi, Lo F16
}

// beta16 anchors F32 over F16: it is the first F16 element (by the
// search order below) with odd trace over GF(2), which is exactly the
// condition for Y^2+Y+beta16 to be irreducible.
var beta16 = findBeta[F16](func(i uint64) F16 { return F16(i) }, 16)

func (a F32) IsZero() bool { return a.Hi == 0 && a.Lo == 0 }

func (a F32) Add(b F32) F32 {
	return F32{Hi: a.Hi.Add(b.Hi), Lo: a.Lo.Add(b.Lo)}
}

// Mul implements (a1 Y + a0)(b1 Y + b0) = (a1 b0 + a0 b1 + a1 b1) Y +
// (a0 b0 + beta a1 b1), the standard Karatsuba-shaped tower product: the
// cross term a1 b0 + a0 b1 is computed directly rather than via the
// (a1+a0)(b1+b0) trick since F16 multiplication is already cheap.
func (a F32) Mul(b F32) F32 {
	a1b1 := a.Hi.Mul(b.Hi)
	hi := a.Hi.Mul(b.Lo).Add(a.Lo.Mul(b.Hi)).Add(a1b1)
	lo := a.Lo.Mul(b.Lo).Add(beta16.Mul(a1b1))
	return F32{Hi: hi, Lo: lo}
}

func (F32) One() F32 { return F32{Hi: 0, Lo: 1} }

func (a F32) Pow(e uint64) F32 { return Pow[F32](a, F32{Hi: 0, Lo: 1}, e) }

// conjugate is the nontrivial automorphism of F32 over F16 (Y -> Y+1).
func (a F32) conjugate() F32 { return F32{Hi: a.Hi, Lo: a.Hi.Add(a.Lo)} }

// norm maps into F16: N(a) = a * conjugate(a) = beta16*a1^2 + a1*a0 + a0^2.
func (a F32) norm() F16 {
	return beta16.Mul(a.Hi.Mul(a.Hi)).Add(a.Hi.Mul(a.Lo)).Add(a.Lo.Mul(a.Lo))
}

// Inv computes a^-1 = conjugate(a) / N(a), the standard tower-field
// inversion formula: a * conjugate(a) always lands in the base field, so
// a single F16 inversion is enough regardless of how large F32 is.
func (a F32) Inv() F32 {
	if a.IsZero() {
		panic("binaryfield: inverse of zero element")
	}
	ninv := a.norm().Inv()
	c := a.conjugate()
	return F32{Hi: c.Hi.Mul(ninv), Lo: c.Lo.Mul(ninv)}
}

// ToUint32 returns the canonical 32-bit serialization of a, obtained by
// interleaving Hi and Lo rather than concatenating them (see interleave.go).
func (a F32) ToUint32() uint32 { return interleave16(a.Hi, a.Lo) }

// F32FromUint32 inverts ToUint32.
func F32FromUint32(x uint32) F32 {
	hi, lo := deinterleave16(x)
	return F32{Hi: hi, Lo: lo}
}

// Bytes returns the little-endian canonical serialization of a, the form
// used as Merkle-leaf and transcript-absorb input throughout the module.
func (a F32) Bytes() []byte {
	x := a.ToUint32()
	return []byte{byte(x), byte(x >> 8), byte(x >> 16), byte(x >> 24)}
}

// EmbedF16ToF32 is the canonical field embedding of F16 into F32. At the
// structural level it is simply "zero Y-coefficient"; what makes it not
// the identity on bits is that F32's serialized form interleaves Hi and
// Lo, so ToUint32(EmbedF16ToF32(a)) spreads a's bits across the even
// positions of a 32-bit word rather than zero-extending them.
func EmbedF16ToF32(a F16) F32 { return F32{Hi: 0, Lo: a} }
