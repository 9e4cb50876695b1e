package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nars/internal/term"
)

// TestDoWorkingCycleTemporalizesInduction exercises spec.md §4.4 scenario 6:
// two events at t1 < t2 sharing a middle term derive a predictive
// implication from the earlier event to the later one, not a plain
// Inheritance induction.
func TestDoWorkingCycleTemporalizesInduction(t *testing.T) {
	e := testEngine()
	e.AddInput("(event --> raining). %1.0;0.9% :|:")
	e.AddInput("(event --> wet). %1.0;0.9% :|:")

	for i := 0; i < 300; i++ {
		e.DoWorkingCycle()
	}

	forward, err := term.FromString("(raining =/> wet)")
	require.NoError(t, err)
	backward, err := term.FromString("(wet =/> raining)")
	require.NoError(t, err)

	_, forwardOK := e.QueryConcept(forward)
	_, backwardOK := e.QueryConcept(backward)
	assert.True(t, forwardOK || backwardOK, "expected a predictive implication between raining and wet")

	plain, err := term.FromString("(raining --> wet)")
	require.NoError(t, err)
	if c, ok := e.QueryConcept(plain); ok {
		for _, belief := range c.Beliefs() {
			assert.NotEqual(t, "Induction", belief.GetStamp().DerivedBy,
				"an Induction derivation between two timed events must be temporalized, not left as plain Inheritance")
		}
	}
}
