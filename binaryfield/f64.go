package binaryfield

// F64 is an element of GF(2^64), the tower extension F32[Y]/(Y^2+Y+beta32).
type F64 struct {
	Hi, Lo F32
}

var beta32 = findBeta[F32](func(i uint64) F32 { return F32{Hi: 0, Lo: F16(i)} }, 32)

func (a F64) IsZero() bool { return a.Hi.IsZero() && a.Lo.IsZero() }

func (a F64) Add(b F64) F64 {
	return F64{Hi: a.Hi.Add(b.Hi), Lo: a.Lo.Add(b.Lo)}
}

func (a F64) Mul(b F64) F64 {
	a1b1 := a.Hi.Mul(b.Hi)
	hi := a.Hi.Mul(b.Lo).Add(a.Lo.Mul(b.Hi)).Add(a1b1)
	lo := a.Lo.Mul(b.Lo).Add(beta32.Mul(a1b1))
	return F64{Hi: hi, Lo: lo}
}

func (F64) One() F64 { return F64{Hi: F32{}, Lo: F32{Hi: 0, Lo: 1}} }

func (a F64) Pow(e uint64) F64 { return Pow[F64](a, F64{}.One(), e) }

func (a F64) conjugate() F64 { return F64{Hi: a.Hi, Lo: a.Hi.Add(a.Lo)} }

func (a F64) norm() F32 {
	return beta32.Mul(a.Hi.Mul(a.Hi)).Add(a.Hi.Mul(a.Lo)).Add(a.Lo.Mul(a.Lo))
}

func (a F64) Inv() F64 {
	if a.IsZero() {
		panic("binaryfield: inverse of zero element")
	}
	ninv := a.norm().Inv()
	c := a.conjugate()
	return F64{Hi: c.Hi.Mul(ninv), Lo: c.Lo.Mul(ninv)}
}

func (a F64) ToUint64() uint64 { return interleave32(a.Hi, a.Lo) }

func F64FromUint64(x uint64) F64 {
	hi, lo := deinterleave32(x)
	return F64{Hi: hi, Lo: lo}
}

// EmbedF32ToF64 is the canonical field embedding of F32 into F64.
func EmbedF32ToF64(a F32) F64 { return F64{Hi: F32{}, Lo: a} }

// EmbedF16ToF64 composes the F16->F32 and F32->F64 embeddings.
func EmbedF16ToF64(a F16) F64 { return EmbedF32ToF64(EmbedF16ToF32(a)) }
