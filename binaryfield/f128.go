package binaryfield

// F128 is an element of GF(2^128), the tower extension F64[Y]/(Y^2+Y+beta64).
// It is the field the final Ligerito layer and every Fiat-Shamir
// challenge live in.
type F128 struct {
	Hi, Lo F64
}

var beta64 = findBeta[F64](func(i uint64) F64 { return F64{Lo: F32{Hi: 0, Lo: F16(i)}} }, 64)

func (a F128) IsZero() bool { return a.Hi.IsZero() && a.Lo.IsZero() }

func (a F128) Add(b F128) F128 {
	return F128{Hi: a.Hi.Add(b.Hi), Lo: a.Lo.Add(b.Lo)}
}

func (a F128) Mul(b F128) F128 {
	a1b1 := a.Hi.Mul(b.Hi)
	hi := a.Hi.Mul(b.Lo).Add(a.Lo.Mul(b.Hi)).Add(a1b1)
	lo := a.Lo.Mul(b.Lo).Add(beta64.Mul(a1b1))
	return F128{Hi: hi, Lo: lo}
}

func (F128) One() F128 { return F128{Lo: F64{}.One()} }

func (a F128) Pow(e uint64) F128 { return Pow[F128](a, F128{}.One(), e) }

func (a F128) conjugate() F128 { return F128{Hi: a.Hi, Lo: a.Hi.Add(a.Lo)} }

func (a F128) norm() F64 {
	return beta64.Mul(a.Hi.Mul(a.Hi)).Add(a.Hi.Mul(a.Lo)).Add(a.Lo.Mul(a.Lo))
}

func (a F128) Inv() F128 {
	if a.IsZero() {
		panic("binaryfield: inverse of zero element")
	}
	ninv := a.norm().Inv()
	c := a.conjugate()
	return F128{Hi: c.Hi.Mul(ninv), Lo: c.Lo.Mul(ninv)}
}

func (a F128) Equal(b F128) bool { return a == b }

// ToBytes returns the canonical little-endian 16-byte serialization,
// obtained by interleaving the Hi/Lo tower halves (see interleave.go)
// rather than simply concatenating them.
func (a F128) ToBytes() [16]byte {
	hiW, loW := interleave64(a.Hi, a.Lo)
	var out [16]byte
	putUint64LE(out[0:8], loW)
	putUint64LE(out[8:16], hiW)
	return out
}

// Bytes returns the same serialization as ToBytes as a slice, for callers
// generic over field element type that need a uniform []byte method.
func (a F128) Bytes() []byte {
	b := a.ToBytes()
	return b[:]
}

func F128FromBytes(b [16]byte) F128 {
	loW := getUint64LE(b[0:8])
	hiW := getUint64LE(b[8:16])
	hi, lo := deinterleave64(hiW, loW)
	return F128{Hi: hi, Lo: lo}
}

func putUint64LE(b []byte, x uint64) {
	for i := 0; i < 8; i++ {
		b[i] = byte(x >> (8 * i))
	}
}

func getUint64LE(b []byte) uint64 {
	var x uint64
	for i := 0; i < 8; i++ {
		x |= uint64(b[i]) << (8 * i)
	}
	return x
}

// EmbedF64ToF128 is the canonical field embedding of F64 into F128.
func EmbedF64ToF128(a F64) F128 { return F128{Lo: a} }

// EmbedF32ToF128 composes the F32->F64 and F64->F128 embeddings.
func EmbedF32ToF128(a F32) F128 { return EmbedF64ToF128(EmbedF32ToF64(a)) }

// EmbedF16ToF128 composes all three embeddings up to F128.
func EmbedF16ToF128(a F16) F128 { return EmbedF64ToF128(EmbedF16ToF64(a)) }
