package sumcheck

import (
	"github.com/ligerito/ligerito/binaryfield"
	"github.com/ligerito/ligerito/transcript"
)

// RoundMessage is what the prover sends in one sumcheck round: the
// round polynomial's evaluations at 0, 1, and thirdPoint.
type RoundMessage struct {
	Y0, Y1, Y2 binaryfield.F128
}

func (m RoundMessage) Bytes() []byte {
	b0 := m.Y0.Bytes()
	b1 := m.Y1.Bytes()
	b2 := m.Y2.Bytes()
	out := make([]byte, 0, len(b0)+len(b1)+len(b2))
	out = append(out, b0...)
	out = append(out, b1...)
	out = append(out, b2...)
	return out
}

// Prove runs `rounds` rounds of sumcheck over the vectors f and g with
// the given starting claim, absorbing and squeezing from tr. Passing
// rounds == log2(len(f)) folds all the way down to scalars (the
// standalone-sumcheck case); passing fewer rounds, as the recursive
// Ligerito layering does, leaves f and g folded down to length
// len(f)/2^rounds, returned as foldedF and foldedG.
func Prove(f, g []binaryfield.F128, claim binaryfield.F128, rounds int, tr *transcript.Transcript) (
	msgs []RoundMessage, challenges []binaryfield.F128, foldedF, foldedG []binaryfield.F128,
) {
	if len(f) != len(g) || len(f)&(len(f)-1) != 0 || len(f) == 0 {
		panic("sumcheck: f and g must have equal power-of-two length")
	}
	if 1<<uint(rounds) > len(f) {
		panic("sumcheck: rounds exceeds available variables")
	}

	for j := 0; j < rounds; j++ {
		msg := RoundMessage{
			Y0: evalFoldedDot(f, g, binaryfield.F128{}),
			Y1: evalFoldedDot(f, g, binaryfield.F128{}.One()),
			Y2: evalFoldedDot(f, g, thirdPoint),
		}
		tr.Absorb("sumcheck_round", msg.Bytes())
		r := tr.Challenge("sumcheck_r")

		f = foldVector(f, r)
		g = foldVector(g, r)

		msgs = append(msgs, msg)
		challenges = append(challenges, r)
	}
	return msgs, challenges, f, g
}

// Verify replays the rounds a verifier performs: it checks each round's
// consistency equation (Y0+Y1 == running claim), derives the same
// challenges from tr, and returns the final claim and bound challenges.
// It never panics; ok is false on any consistency failure or malformed
// input. The number of rounds is implied by len(msgs).
func Verify(msgs []RoundMessage, claim binaryfield.F128, tr *transcript.Transcript) (
	finalClaim binaryfield.F128, challenges []binaryfield.F128, ok bool,
) {
	cur := claim
	for _, msg := range msgs {
		if msg.Y0.Add(msg.Y1) != cur {
			return binaryfield.F128{}, nil, false
		}
		tr.Absorb("sumcheck_round", msg.Bytes())
		r := tr.Challenge("sumcheck_r")

		cur = lagrangeEval3(binaryfield.F128{}, msg.Y0, binaryfield.F128{}.One(), msg.Y1, thirdPoint, msg.Y2, r)
		challenges = append(challenges, r)
	}
	return cur, challenges, true
}
