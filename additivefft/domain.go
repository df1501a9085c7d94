package additivefft

import "github.com/ligerito/ligerito/binaryfield"

// StandardBasisF32 returns the first n elements of the monomial-bit
// basis {e_0, e_1, ...} of F32 as an F2-vector space, e_j having only
// bit j set in its canonical uint32 encoding.
func StandardBasisF32(n int) []binaryfield.F32 {
	basis := make([]binaryfield.F32, n)
	for j := 0; j < n; j++ {
		basis[j] = binaryfield.F32FromUint32(uint32(1) << uint(j))
	}
	return basis
}

func StandardBasisF128(n int) []binaryfield.F128 {
	basis := make([]binaryfield.F128, n)
	for j := 0; j < n; j++ {
		var b [16]byte
		b[j/8] = 1 << uint(j%8)
		basis[j] = binaryfield.F128FromBytes(b)
	}
	return basis
}

// DomainF32 returns n distinct points of F32, the i-th being the field
// element whose bits equal i, used as Reed-Solomon evaluation points for
// the non-systematic symbols. FFT does not use these points; it works
// from a twiddle table.
func DomainF32(n int) []binaryfield.F32 {
	pts := make([]binaryfield.F32, n)
	for i := range pts {
		pts[i] = binaryfield.F32FromUint32(uint32(i))
	}
	return pts
}

func DomainF128(n int) []binaryfield.F128 {
	pts := make([]binaryfield.F128, n)
	for i := range pts {
		var b [16]byte
		b[0] = byte(i)
		b[1] = byte(i >> 8)
		b[2] = byte(i >> 16)
		pts[i] = binaryfield.F128FromBytes(b)
	}
	return pts
}
