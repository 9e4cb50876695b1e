// Package truth implements the uncertain truth-value calculus: the
// frequency/confidence representation, its w+/w/w- evidence dual, and every
// named truth function of spec.md §4.2's table. Functions are pure: given
// the operand TruthValues (and, where the table says "via evidence", the
// system constant k) they return a fresh TruthValue — no shared state, no
// clamping surprises hidden behind a mutex, mirroring the validate-compute-
// return shape of the teacher's reasoning package.
package truth

import (
	"fmt"

	"nars/internal/nerr"
)

// TruthValue is a (frequency, confidence) pair, frequency in [0,1] and
// confidence in [0,1). DesireValue is structurally identical; goals use a
// TruthValue to carry desire rather than truth (spec.md §3).
type TruthValue struct {
	F float64
	C float64
}

// DesireValue is structurally identical to TruthValue, distinguished only
// by the sentence kind that carries it.
type DesireValue = TruthValue

// New validates and builds a TruthValue. Confidence 1.0 is rejected: a
// sentence's evidential base is always finite, so confidence 1 (infinite
// evidence) never legitimately arises from the evidence mapping.
func New(f, c float64) (TruthValue, error) {
	if f < 0 || f > 1 {
		return TruthValue{}, fmt.Errorf("frequency %f out of [0,1]: %w", f, nerr.ErrInvalidSentence)
	}
	if c < 0 || c >= 1 {
		return TruthValue{}, fmt.Errorf("confidence %f out of [0,1): %w", c, nerr.ErrInvalidSentence)
	}
	return TruthValue{F: f, C: c}, nil
}

// Expectation computes E(f,c) = c*(f-0.5)+0.5, the scalar a decision
// compares against the system threshold.
func Expectation(t TruthValue) float64 {
	return t.C*(t.F-0.5) + 0.5
}

// Decide reports whether a goal with desire value d should be pursued: its
// expectation must differ from indifference (0.5) by more than threshold.
func Decide(d TruthValue, threshold float64) bool {
	e := Expectation(d)
	diff := e - 0.5
	if diff < 0 {
		diff = -diff
	}
	return diff > threshold
}
