package rules

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

func TestDeductionBuildsStatementAndTruth(t *testing.T) {
	s := mustTerm(t, "sparrow")
	p := mustTerm(t, "flyer")
	t1 := tv(t, 0.9, 0.9)
	t2 := tv(t, 0.8, 0.8)
	j, err := Deduction(s, p, syntax.Inheritance, t1, t2, sentence.NewInputStamp(nil), sentence.NewInputStamp(nil))
	require.NoError(t, err)
	assert.Equal(t, "(sparrow --> flyer)", j.Term().String())
	assert.Equal(t, truth.Deduction(t1, t2), j.Truth())
	assert.Equal(t, "Deduction", j.GetStamp().DerivedBy)
}

func TestRevisionRejectsRepeatInteraction(t *testing.T) {
	shared := mustTerm(t, "(bird --> animal)")
	s1 := sentence.NewInputStamp(nil)
	s2 := sentence.NewInputStamp(nil)
	_, err := Revision(shared, tv(t, 0.9, 0.8), tv(t, 0.8, 0.7), s1, s2, 1.0)
	require.NoError(t, err)
	// Derivation leaves the premises' stamps untouched; recording the
	// interaction is the caller's job (as concept.AddBelief does).
	sentence.MarkInteracted(s1, s2)

	_, err = Revision(shared, tv(t, 0.9, 0.8), tv(t, 0.8, 0.7), s1, s2, 1.0)
	assert.Error(t, err)
}

func TestComposeSubjectSide(t *testing.T) {
	s := mustTerm(t, "raven")
	p := mustTerm(t, "crow")
	m := mustTerm(t, "bird")
	j, err := ExtensionalIntersection(s, p, m, syntax.Inheritance, true,
		tv(t, 0.9, 0.9), tv(t, 0.8, 0.8), sentence.NewInputStamp(nil), sentence.NewInputStamp(nil))
	require.NoError(t, err)
	assert.Equal(t, "((&,crow,raven) --> bird)", j.Term().String())
}

func TestComposePredicateSide(t *testing.T) {
	s := mustTerm(t, "raven")
	p := mustTerm(t, "crow")
	m := mustTerm(t, "bird")
	j, err := IntensionalIntersection(s, p, m, syntax.Inheritance, false,
		tv(t, 0.9, 0.9), tv(t, 0.8, 0.8), sentence.NewInputStamp(nil), sentence.NewInputStamp(nil))
	require.NoError(t, err)
	assert.Equal(t, "(bird --> (|,crow,raven))", j.Term().String())
}

func TestNegationWrapsAndFlipsFrequency(t *testing.T) {
	j := sentence.NewJudgment(mustTerm(t, "(raven --> bird)"), tv(t, 0.9, 0.8), nil)
	neg := Negation(j)
	assert.Equal(t, "(--,(raven --> bird))", neg.Term().String())
	assert.InDelta(t, 0.1, neg.Truth().F, 1e-9)
}

func TestConversionRejectsSymmetricCopula(t *testing.T) {
	j := sentence.NewJudgment(mustTerm(t, "(raven <-> bird)"), tv(t, 0.9, 0.8), nil)
	_, err := Conversion(j, 1.0)
	assert.Error(t, err)
}

func TestConversionSwapsSubjectAndPredicate(t *testing.T) {
	j := sentence.NewJudgment(mustTerm(t, "(raven --> bird)"), tv(t, 0.9, 0.8), nil)
	conv, err := Conversion(j, 1.0)
	require.NoError(t, err)
	assert.Equal(t, "(bird --> raven)", conv.Term().String())
}

func TestContrapositionRejectsNonImplication(t *testing.T) {
	j := sentence.NewJudgment(mustTerm(t, "(raven --> bird)"), tv(t, 0.5, 0.8), nil)
	_, err := Contraposition(j, 1.0)
	assert.Error(t, err)
}

func TestContrapositionNegatesBothSides(t *testing.T) {
	j := sentence.NewJudgment(mustTerm(t, "(rain ==> wet)"), tv(t, 0.5, 0.8), nil)
	contra, err := Contraposition(j, 1.0)
	require.NoError(t, err)
	assert.Equal(t, "((--,wet) ==> (--,rain))", contra.Term().String())
}

func TestExtensionalImageExtractsProductMember(t *testing.T) {
	product := term.NewCompound(syntax.Product, []term.Term{mustTerm(t, "tom"), mustTerm(t, "jerry")})
	statement := term.NewStatement(product, mustTerm(t, "chases"), syntax.Inheritance)
	j := sentence.NewJudgment(statement, tv(t, 0.9, 0.9), nil)

	derived, err := ExtensionalImage(j, 0)
	require.NoError(t, err)
	assert.Equal(t, "(tom --> (/,chases,_,jerry))", derived.Term().String())
}

func TestChoicePicksHigherExpectation(t *testing.T) {
	weak := sentence.NewJudgment(mustTerm(t, "a"), tv(t, 0.6, 0.3), nil)
	strong := sentence.NewJudgment(mustTerm(t, "a"), tv(t, 0.9, 0.9), nil)
	assert.Same(t, strong, Choice(weak, strong))
}

func TestChoicePrefersConfidenceWhenTermsMatch(t *testing.T) {
	higherConfidence := sentence.NewJudgment(mustTerm(t, "a"), tv(t, 0.5, 0.95), nil)
	higherExpectationLowerConfidence := sentence.NewJudgment(mustTerm(t, "a"), tv(t, 0.99, 0.5), nil)
	assert.Same(t, higherConfidence, Choice(higherConfidence, higherExpectationLowerConfidence))
	assert.Same(t, higherConfidence, Choice(higherExpectationLowerConfidence, higherConfidence))
}

func TestChoiceFallsBackToExpectationWhenTermsDiffer(t *testing.T) {
	a := sentence.NewJudgment(mustTerm(t, "a"), tv(t, 0.6, 0.3), nil)
	b := sentence.NewJudgment(mustTerm(t, "b"), tv(t, 0.9, 0.9), nil)
	assert.Same(t, b, Choice(a, b))
}

func TestDecisionThreshold(t *testing.T) {
	assert.True(t, Decision(tv(t, 0.95, 0.9), 0.3))
	assert.False(t, Decision(tv(t, 0.55, 0.9), 0.3))
}

func TestProjectRejectsEternalJudgment(t *testing.T) {
	j := sentence.NewJudgment(mustTerm(t, "a"), tv(t, 0.9, 0.8), nil)
	_, err := Project(j, 10, 12)
	assert.Error(t, err)
}

func TestEternalizeDropsOccurrenceTime(t *testing.T) {
	occ := 5.0
	j := sentence.NewJudgment(mustTerm(t, "a"), tv(t, 0.9, 0.8), &occ)
	eternal := Eternalize(j, 1.0)
	assert.Nil(t, eternal.GetStamp().OccurrenceTime)
}
