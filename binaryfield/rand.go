package binaryfield

import "math/rand"

// RandF32 and RandF128 draw uniformly from their field using the
// supplied source. They exist for test fixtures and benchmarks; the
// protocol itself never samples field elements with a non-transcript
// source of randomness.

func RandF32(rng *rand.Rand) F32 {
	return F32FromUint32(rng.Uint32())
}

func RandF128(rng *rand.Rand) F128 {
	var b [16]byte
	rng.Read(b[:])
	return F128FromBytes(b)
}

func RandF16(rng *rand.Rand) F16 {
	return F16(uint16(rng.Uint32()))
}
