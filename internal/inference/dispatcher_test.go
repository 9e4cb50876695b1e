package inference

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nars/internal/sentence"
	"nars/internal/syntax"
	"nars/internal/term"
	"nars/internal/truth"
)

func mustTerm(t *testing.T, s string) term.Term {
	t.Helper()
	tm, err := term.FromString(s)
	require.NoError(t, err)
	return tm
}

func tv(t *testing.T, f, c float64) truth.TruthValue {
	t.Helper()
	v, err := truth.New(f, c)
	require.NoError(t, err)
	return v
}

func findRule(js []*sentence.Judgment, rule string) *sentence.Judgment {
	for _, j := range js {
		if j.GetStamp().DerivedBy == rule {
			return j
		}
	}
	return nil
}

func TestTwoPremiseDeduction(t *testing.T) {
	j1 := sentence.NewJudgment(mustTerm(t, "(sparrow --> bird)"), tv(t, 0.9, 0.9), nil)
	j2 := sentence.NewJudgment(mustTerm(t, "(bird --> animal)"), tv(t, 0.8, 0.8), nil)

	derived := TwoPremise(j2, j1, 1.0)
	deduction := findRule(derived, "Deduction")
	require.NotNil(t, deduction)
	assert.Equal(t, "(sparrow --> animal)", deduction.Term().String())
}

func TestTwoPremiseSubjSubjFiresInductionAndComparison(t *testing.T) {
	j1 := sentence.NewJudgment(mustTerm(t, "(bird --> flyer)"), tv(t, 0.9, 0.9), nil)
	j2 := sentence.NewJudgment(mustTerm(t, "(bird --> animal)"), tv(t, 0.8, 0.8), nil)

	derived := TwoPremise(j1, j2, 1.0)
	assert.NotNil(t, findRule(derived, "Induction"))
	assert.NotNil(t, findRule(derived, "Comparison"))
	assert.NotNil(t, findRule(derived, "ExtensionalIntersection"))
}

func TestTwoPremiseRevisionOnSharedTerm(t *testing.T) {
	j1 := sentence.NewJudgment(mustTerm(t, "(bird --> flyer)"), tv(t, 0.9, 0.9), nil)
	j2 := sentence.NewJudgment(mustTerm(t, "(bird --> flyer)"), tv(t, 0.6, 0.6), nil)

	derived := TwoPremise(j1, j2, 1.0)
	require.Len(t, derived, 1)
	assert.Equal(t, "Revision", derived[0].GetStamp().DerivedBy)
	assert.Equal(t, "(bird --> flyer)", derived[0].Term().String())
}

func TestTwoPremiseAnalogy(t *testing.T) {
	asym := sentence.NewJudgment(mustTerm(t, "(robin --> bird)"), tv(t, 0.9, 0.9), nil)
	sym := sentence.NewJudgment(mustTerm(t, "(robin <-> redbreast)"), tv(t, 0.85, 0.85), nil)

	derived := TwoPremise(asym, sym, 1.0)
	analogy := findRule(derived, "Analogy")
	require.NotNil(t, analogy)
}

func TestTwoPremiseResemblance(t *testing.T) {
	j1 := sentence.NewJudgment(mustTerm(t, "(robin <-> redbreast)"), tv(t, 0.9, 0.9), nil)
	j2 := sentence.NewJudgment(mustTerm(t, "(robin <-> thrush)"), tv(t, 0.7, 0.7), nil)

	derived := TwoPremise(j1, j2, 1.0)
	require.NotNil(t, findRule(derived, "Resemblance"))
}

func TestTwoPremiseRejectsCopulaFamilyMismatch(t *testing.T) {
	j1 := sentence.NewJudgment(mustTerm(t, "(bird --> animal)"), tv(t, 0.9, 0.9), nil)
	j2 := sentence.NewJudgment(mustTerm(t, "(rain ==> wet)"), tv(t, 0.9, 0.9), nil)

	derived := TwoPremise(j1, j2, 1.0)
	assert.Empty(t, derived)
}

func TestOnePremiseAlwaysIncludesNegation(t *testing.T) {
	j := sentence.NewJudgment(mustTerm(t, "(bird --> animal)"), tv(t, 0.9, 0.9), nil)
	derived := OnePremise(j, 1.0)
	assert.NotNil(t, findRule(derived, "Negation"))
}

func TestTwoPremiseTemporalizesInductionFromEarlierToLater(t *testing.T) {
	earlier, later := 1.0, 2.0
	jP := sentence.NewJudgment(mustTerm(t, "(bird --> flyer)"), tv(t, 0.9, 0.9), &earlier)
	jS := sentence.NewJudgment(mustTerm(t, "(bird --> animal)"), tv(t, 0.8, 0.8), &later)

	derived := TwoPremise(jP, jS, 1.0)
	induction := findRule(derived, "Induction")
	require.NotNil(t, induction)

	st, ok := induction.Term().(*term.StatementTerm)
	require.True(t, ok)
	assert.Equal(t, syntax.PredictiveImplication, st.Copula())
	assert.Equal(t, "flyer", st.Subject().String())
	assert.Equal(t, "animal", st.Predicate().String())
}

func TestTwoPremiseLeavesInductionUntouchedWithoutOccurrenceTimes(t *testing.T) {
	jP := sentence.NewJudgment(mustTerm(t, "(bird --> flyer)"), tv(t, 0.9, 0.9), nil)
	jS := sentence.NewJudgment(mustTerm(t, "(bird --> animal)"), tv(t, 0.8, 0.8), nil)

	derived := TwoPremise(jP, jS, 1.0)
	induction := findRule(derived, "Induction")
	require.NotNil(t, induction)

	st, ok := induction.Term().(*term.StatementTerm)
	require.True(t, ok)
	assert.Equal(t, syntax.Inheritance, st.Copula())
}

func TestTemporalizeProducesConcurrentImplication(t *testing.T) {
	t1, t2 := 5.0, 5.0
	j1 := sentence.NewJudgment(mustTerm(t, "(bird --> flyer)"), tv(t, 0.9, 0.9), &t1)
	j2 := sentence.NewJudgment(mustTerm(t, "(bird --> animal)"), tv(t, 0.8, 0.8), &t2)
	derived := TwoPremise(j1, j2, 1.0)
	induction := findRule(derived, "Induction")
	require.NotNil(t, induction)

	temporalized := Temporalize(induction, &t2, &t1)
	st, ok := temporalized.Term().(*term.StatementTerm)
	require.True(t, ok)
	assert.True(t, st.Copula().IsTemporal())
}
