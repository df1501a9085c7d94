package additivefft

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/ligerito/ligerito/binaryfield"
)

func genF32Slice(n int) gopter.Gen {
	return gen.SliceOfN(n, gen.UInt32()).Map(func(words []uint32) []binaryfield.F32 {
		out := make([]binaryfield.F32, len(words))
		for i, w := range words {
			out[i] = binaryfield.F32FromUint32(w)
		}
		return out
	})
}

func TestFFTRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	const logN = 6
	const n = 1 << logN
	basis := StandardBasisF32(logN)
	tw := BuildTwiddles[binaryfield.F32](basis)

	properties.Property("IFFT(FFT(v)) == v for sequential and parallel paths", prop.ForAll(
		func(v []binaryfield.F32) bool {
			seq := make([]binaryfield.F32, n)
			copy(seq, v)
			FFT[binaryfield.F32](seq, tw, false, zerolog.Nop())
			IFFT[binaryfield.F32](seq, tw, false, zerolog.Nop())

			par := make([]binaryfield.F32, n)
			copy(par, v)
			FFT[binaryfield.F32](par, tw, true, zerolog.Nop())
			IFFT[binaryfield.F32](par, tw, true, zerolog.Nop())

			for i := range v {
				if seq[i] != v[i] || par[i] != v[i] {
					return false
				}
			}
			return true
		},
		genF32Slice(n),
	))

	properties.TestingRun(t)
}

func TestBitReversePermuteInvolution(t *testing.T) {
	v := make([]binaryfield.F32, 16)
	for i := range v {
		v[i] = binaryfield.F32FromUint32(uint32(i))
	}
	orig := make([]binaryfield.F32, 16)
	copy(orig, v)

	BitReversePermute(v)
	require.NotEqual(t, orig, v)
	BitReversePermute(v)
	require.Equal(t, orig, v)
}

func TestRSCodeSystematic(t *testing.T) {
	const k, n = 8, 16
	domain := DomainF32(n)
	code := NewRSCode[binaryfield.F32](k, n, domain[k:])

	msg := make([]binaryfield.F32, k)
	for i := range msg {
		msg[i] = binaryfield.F32FromUint32(uint32(i*7 + 1))
	}

	codeword := code.Encode(msg)
	require.Equal(t, n, len(codeword))
	require.Equal(t, msg, codeword[:k])
	require.True(t, code.IsCodeword(codeword))

	tampered := make([]binaryfield.F32, n)
	copy(tampered, codeword)
	tampered[0] = tampered[0].Add(binaryfield.F32FromUint32(1))
	require.False(t, code.IsCodeword(tampered))
}

func TestRSCodeIsLinear(t *testing.T) {
	const k, n = 4, 8
	domain := DomainF32(n)
	code := NewRSCode[binaryfield.F32](k, n, domain[k:])

	a := []binaryfield.F32{
		binaryfield.F32FromUint32(1), binaryfield.F32FromUint32(2),
		binaryfield.F32FromUint32(3), binaryfield.F32FromUint32(4),
	}
	b := []binaryfield.F32{
		binaryfield.F32FromUint32(5), binaryfield.F32FromUint32(6),
		binaryfield.F32FromUint32(7), binaryfield.F32FromUint32(8),
	}
	sum := make([]binaryfield.F32, k)
	for i := range sum {
		sum[i] = a[i].Add(b[i])
	}

	ca := code.Encode(a)
	cb := code.Encode(b)
	csum := code.Encode(sum)

	for i := range csum {
		require.Equal(t, csum[i], ca[i].Add(cb[i]))
	}
}

func TestBuildTwiddlesDeterministic(t *testing.T) {
	basis := StandardBasisF32(4)
	tw1 := BuildTwiddles[binaryfield.F32](basis)
	tw2 := BuildTwiddles[binaryfield.F32](basis)
	require.Equal(t, tw1.table, tw2.table)
}

// subspaceSpan enumerates every element of the additive span of basis,
// including the zero vector.
func subspaceSpan(basis []binaryfield.F32) []binaryfield.F32 {
	span := []binaryfield.F32{{}}
	for _, b := range basis {
		prior := append([]binaryfield.F32(nil), span...)
		for _, v := range prior {
			span = append(span, v.Add(b))
		}
	}
	return span
}

// referenceTwiddle evaluates the LCH subspace vanishing polynomial
// s_depth(x) = prod_{v in span(basis[:depth])} (x+v) at x directly from
// its textbook definition, independently of BuildTwiddles's doubling
// recursion (fft.go). It is O(2^depth) rather than O(log) per entry, so
// it is only used here as a golden-vector cross-check, not in the FFT
// itself.
func referenceTwiddle(basis []binaryfield.F32, depth int, x binaryfield.F32) binaryfield.F32 {
	acc := binaryfield.F32{}.One()
	for _, v := range subspaceSpan(basis[:depth]) {
		acc = acc.Mul(x.Add(v))
	}
	return acc
}

// TestBuildTwiddlesGoldenVectors pins BuildTwiddles's root entry (the
// depth-0 twiddle) to its literal, field-internals-independent expected
// value, and the first table entry at each depth (index 2^depth-1) to an
// independently computed reference value, at each of the four sizes this
// scheme is tested against; all nodes at one depth share that entry's
// constant. The root entry is always exactly basis[0], which under the
// standard basis's bit-interleaved encoding (binaryfield.F32FromUint32)
// is always F32{Hi: 0, Lo: 1} regardless of the field's runtime-searched
// irreducible polynomial (see binaryfield/doc.go); deeper entries depend
// on actual F32 multiplication, so those are checked against
// referenceTwiddle instead of a hand-derived literal.
func TestBuildTwiddlesGoldenVectors(t *testing.T) {
	sizes := map[int]int{8: 3, 16: 4, 64: 6, 1024: 10}
	for n, logN := range sizes {
		basis := StandardBasisF32(logN)
		tw := BuildTwiddles[binaryfield.F32](basis)

		require.Equalf(t, binaryfield.F32{Hi: 0, Lo: 1}, tw.table[0], "n=%d root twiddle", n)

		for depth := 0; depth < logN; depth++ {
			want := referenceTwiddle(basis, depth, basis[depth])
			require.Equalf(t, want, tw.table[(1<<depth)-1], "n=%d depth=%d", n, depth)
		}
	}
}
