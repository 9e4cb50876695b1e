package sentence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nars/internal/term"
	"nars/internal/truth"
)

func bird(t *testing.T) term.Term {
	tm, err := term.FromString("bird")
	require.NoError(t, err)
	return tm
}

func TestNewJudgmentHasSingletonEvidentialBase(t *testing.T) {
	tm := bird(t)
	j := NewJudgment(tm, truth.TruthValue{F: 0.9, C: 0.8}, nil)
	assert.Len(t, j.GetStamp().EvidentialBase, 1)
	assert.Equal(t, j.GetStamp().ID, j.GetStamp().EvidentialBase[0])
	assert.Equal(t, JudgmentKind, j.Kind())
}

func TestDerivedJudgmentMergesEvidentialBases(t *testing.T) {
	tm := bird(t)
	j1 := NewJudgment(tm, truth.TruthValue{F: 0.9, C: 0.8}, nil)
	j2 := NewJudgment(tm, truth.TruthValue{F: 0.8, C: 0.7}, nil)

	derived, err := DerivedJudgmentFromTwoPremises(tm, truth.TruthValue{F: 0.85, C: 0.9}, j1.GetStamp(), j2.GetStamp(), "Revision")
	require.NoError(t, err)
	assert.Len(t, derived.GetStamp().EvidentialBase, 2)
	assert.Equal(t, "Revision", derived.GetStamp().DerivedBy)
	// DerivedJudgmentFromTwoPremises no longer marks interaction itself: a
	// single dispatch may call it many times against the same premise pair
	// (once per rule the pairing licenses), so only the dispatch's owner
	// marks interaction, once, after every rule has run.
	assert.False(t, j1.GetStamp().HasInteractedWith(j2.GetStamp()))
}

func TestDerivedJudgmentRejectsOverlappingEvidence(t *testing.T) {
	tm := bird(t)
	j := NewJudgment(tm, truth.TruthValue{F: 0.9, C: 0.8}, nil)

	_, err := DerivedJudgmentFromTwoPremises(tm, truth.TruthValue{F: 0.9, C: 0.8}, j.GetStamp(), j.GetStamp(), "Revision")
	assert.Error(t, err)
}

func TestDerivedJudgmentRejectsRepeatInteraction(t *testing.T) {
	tm := bird(t)
	j1 := NewJudgment(tm, truth.TruthValue{F: 0.9, C: 0.8}, nil)
	j2 := NewJudgment(tm, truth.TruthValue{F: 0.8, C: 0.7}, nil)

	_, err := DerivedJudgmentFromTwoPremises(tm, truth.TruthValue{F: 0.85, C: 0.9}, j1.GetStamp(), j2.GetStamp(), "Revision")
	require.NoError(t, err)

	MarkInteracted(j1.GetStamp(), j2.GetStamp())

	_, err = DerivedJudgmentFromTwoPremises(tm, truth.TruthValue{F: 0.85, C: 0.9}, j1.GetStamp(), j2.GetStamp(), "Revision")
	assert.Error(t, err)
}

func TestOnePremiseDerivationPreservesOccurrenceTime(t *testing.T) {
	tm := bird(t)
	occ := 3.0
	j := NewJudgment(tm, truth.TruthValue{F: 0.9, C: 0.8}, &occ)

	derived := DerivedJudgmentFromOnePremise(tm, truth.Negation(j.Truth()), j.GetStamp(), "Negation")
	require.NotNil(t, derived.GetStamp().OccurrenceTime)
	assert.Equal(t, occ, *derived.GetStamp().OccurrenceTime)
}

func TestGoalAndQuestionKinds(t *testing.T) {
	tm := bird(t)
	g := NewGoal(tm, truth.DesireValue{F: 0.8, C: 0.5}, nil)
	assert.Equal(t, GoalKind, g.Kind())

	q := NewQuestion(tm)
	assert.Equal(t, QuestionKind, q.Kind())
	assert.Nil(t, q.GetStamp().OccurrenceTime)
}
