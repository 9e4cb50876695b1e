// Package inference is the rule dispatcher of spec.md §4.4: given two
// premise Judgments it classifies the pairing by copula family and shared
// term position, fires every rule the canonical-pairings table licenses for
// that shape, and returns the derivations that survived their evidential
// preconditions. Pinned to
// original_source/NARSInferenceEngine.py's do_inference_two_premise /
// do_inference_one_premise classification tree.
package inference

import (
	"nars/internal/rules"
	"nars/internal/sentence"
	"nars/internal/syntax"
	"nars/internal/term"
)

// TwoPremise classifies j1 and j2 and returns every derivation the
// canonical-pairings table licenses for their shape. A rule that fails its
// own precondition (already interacted, overlapping evidential base) is
// silently omitted rather than treated as an error — spec.md §4.4 treats
// these as ordinary no-ops, not failures.
func TwoPremise(j1, j2 *sentence.Judgment, k float64) []*sentence.Judgment {
	s1, ok1 := j1.Term().(*term.StatementTerm)
	s2, ok2 := j2.Term().(*term.StatementTerm)
	if !ok1 || !ok2 {
		return nil // degenerate compound on one side: spec.md §4.4 rejection.
	}

	fam1, fam2 := s1.Copula().IsFirstOrder(), s2.Copula().IsFirstOrder()
	if fam1 != fam2 {
		return nil // copula-kind mismatch.
	}

	var derived []*sentence.Judgment
	switch {
	case s1.Subject() == s2.Subject() && s1.Predicate() == s2.Predicate() && s1.Copula() == s2.Copula():
		derived = collect(revise(s1, j1, j2, k))
	default:
		sym1, sym2 := s1.Copula().IsSymmetric(), s2.Copula().IsSymmetric()
		switch {
		case sym1 && sym2:
			derived = collect(resemblance(s1, s2, j1, j2, k))
		case sym1 != sym2:
			derived = collect(analogy(s1, s2, sym1, j1, j2, k))
		default:
			derived = asymmetricPair(s1, s2, j1, j2, k)
		}
	}

	// subjSubjMatch/predPredMatch fire several rules against this same j1/j2
	// stamp pair in one dispatch (spec.md §4.3's canonical-pairings table
	// names them as simultaneous outputs, not alternatives); marking
	// interaction once here, after every rule has had a chance to fire,
	// is what lets them all succeed instead of only the first.
	if len(derived) > 0 {
		sentence.MarkInteracted(j1.GetStamp(), j2.GetStamp())
	}
	return derived
}

func collect(js ...*sentence.Judgment) []*sentence.Judgment {
	out := make([]*sentence.Judgment, 0, len(js))
	for _, j := range js {
		if j != nil {
			out = append(out, j)
		}
	}
	return out
}

func revise(shared *term.StatementTerm, j1, j2 *sentence.Judgment, k float64) *sentence.Judgment {
	j, err := rules.Revision(shared, j1.Truth(), j2.Truth(), j1.GetStamp(), j2.GetStamp(), k)
	if err != nil {
		return nil
	}
	return j
}

// asymmetricPair handles two non-symmetric premises: Deduction (M-->P,
// S-->M), Exemplification (P-->M, M-->S), or the subj=subj / pred=pred
// match that fires Induction/Abduction plus Comparison and the
// intersection/union/difference family.
func asymmetricPair(s1, s2 *term.StatementTerm, j1, j2 *sentence.Judgment, k float64) []*sentence.Judgment {
	conclusionCopula := baseCopula(s1.Copula(), false)

	switch {
	case s1.Subject() == s2.Predicate(): // M-->P, S-->M |- S-->P
		j, err := rules.Deduction(s2.Subject(), s1.Predicate(), conclusionCopula, j2.Truth(), j1.Truth(), j2.GetStamp(), j1.GetStamp())
		return collect(orNil(j, err))

	case s1.Predicate() == s2.Subject(): // P-->M, M-->S |- S-->P
		j, err := rules.Exemplification(s2.Predicate(), s1.Subject(), conclusionCopula, j1.Truth(), j2.Truth(), j1.GetStamp(), j2.GetStamp(), k)
		return collect(orNil(j, err))

	case s1.Subject() == s2.Subject(): // M-->P, M-->S (subj=subj match)
		return subjSubjMatch(s1.Subject(), s1.Predicate(), s2.Predicate(), conclusionCopula, j1, j2, k)

	case s1.Predicate() == s2.Predicate(): // P-->M, S-->M (pred=pred match)
		return predPredMatch(s1.Predicate(), s1.Subject(), s2.Subject(), conclusionCopula, j1, j2, k)

	default:
		return nil
	}
}

// subjSubjMatch derives every conclusion the M-->P, M-->S pairing licenses:
// Induction and its swap, Comparison, and the composite-subject
// intersection/union/difference family ((S-op-P)-->M). Induction and
// Comparison additionally go through Temporalize (spec.md §4.4's temporal
// specialisation table) when jP and jS both carry occurrence times — this is
// the one place that knows which premise's occurrence time backs the
// conclusion's subject side (jS, since s is always jS's term) versus its
// predicate side (jP, since p is always jP's term).
func subjSubjMatch(m, p, s term.Term, copula syntax.Copula, jP, jS *sentence.Judgment, k float64) []*sentence.Judgment {
	occP, occS := jP.GetStamp().OccurrenceTime, jS.GetStamp().OccurrenceTime

	tP, tS := jP.Truth(), jS.Truth()
	induction, err := rules.Induction(s, p, copula, tP, tS, jP.GetStamp(), jS.GetStamp(), k)
	inductionJ := temporalize(orNil(induction, err), occS, occP)

	swapped, err := rules.Induction(p, s, copula, tS, tP, jS.GetStamp(), jP.GetStamp(), k)
	swappedJ := temporalize(orNil(swapped, err), occP, occS)

	comparisonCopula := comparisonCopula(copula)
	comparison, err := rules.Comparison(s, p, comparisonCopula, tP, tS, jP.GetStamp(), jS.GetStamp(), k)
	comparisonJ := temporalize(orNil(comparison, err), occS, occP)

	extInter, err := rules.ExtensionalIntersection(s, p, m, copula, true, tS, tP, jS.GetStamp(), jP.GetStamp())
	extInterJ := orNil(extInter, err)

	intInter, err := rules.IntensionalIntersection(s, p, m, copula, true, tS, tP, jS.GetStamp(), jP.GetStamp())
	intInterJ := orNil(intInter, err)

	// Union has no dedicated wire connector in the grammar (syntax package):
	// by NAL's extension/intension duality, an extensional union over the
	// composite subject is structurally the intensional intersection of the
	// same parts, so it reuses that connector here (see DESIGN.md).
	union, err := rules.Union(syntax.IntensionalIntersection, s, p, m, copula, true, tS, tP, jS.GetStamp(), jP.GetStamp())
	unionJ := orNil(union, err)

	diff, err := rules.Difference(syntax.ExtensionalDifference, s, p, m, copula, true, tS, tP, jS.GetStamp(), jP.GetStamp())
	diffJ := orNil(diff, err)

	diffSwapped, err := rules.Difference(syntax.ExtensionalDifference, p, s, m, copula, true, tP, tS, jP.GetStamp(), jS.GetStamp())
	diffSwappedJ := orNil(diffSwapped, err)

	return collect(inductionJ, swappedJ, comparisonJ, extInterJ, intInterJ, unionJ, diffJ, diffSwappedJ)
}

// predPredMatch mirrors subjSubjMatch for the P-->M, S-->M pairing:
// Abduction and its swap, Comparison, and the composite-predicate family
// (M-->(S-op-P)). Only Comparison is temporalized here — spec.md §4.4's
// temporal specialisation table covers Induction and Comparison, not
// Abduction.
func predPredMatch(m, p, s term.Term, copula syntax.Copula, jP, jS *sentence.Judgment, k float64) []*sentence.Judgment {
	occP, occS := jP.GetStamp().OccurrenceTime, jS.GetStamp().OccurrenceTime

	tP, tS := jP.Truth(), jS.Truth()
	abduction, err := rules.Abduction(s, p, copula, tP, tS, jP.GetStamp(), jS.GetStamp(), k)
	abductionJ := orNil(abduction, err)

	swapped, err := rules.Abduction(p, s, copula, tS, tP, jS.GetStamp(), jP.GetStamp(), k)
	swappedJ := orNil(swapped, err)

	comparisonCopula := comparisonCopula(copula)
	comparison, err := rules.Comparison(s, p, comparisonCopula, tP, tS, jP.GetStamp(), jS.GetStamp(), k)
	comparisonJ := temporalize(orNil(comparison, err), occS, occP)

	extInter, err := rules.ExtensionalIntersection(s, p, m, copula, false, tS, tP, jS.GetStamp(), jP.GetStamp())
	extInterJ := orNil(extInter, err)

	intInter, err := rules.IntensionalIntersection(s, p, m, copula, false, tS, tP, jS.GetStamp(), jP.GetStamp())
	intInterJ := orNil(intInter, err)

	union, err := rules.Union(syntax.ExtensionalIntersection, s, p, m, copula, false, tS, tP, jS.GetStamp(), jP.GetStamp())
	unionJ := orNil(union, err)

	diff, err := rules.Difference(syntax.IntensionalDifference, s, p, m, copula, false, tS, tP, jS.GetStamp(), jP.GetStamp())
	diffJ := orNil(diff, err)

	diffSwapped, err := rules.Difference(syntax.IntensionalDifference, p, s, m, copula, false, tP, tS, jP.GetStamp(), jS.GetStamp())
	diffSwappedJ := orNil(diffSwapped, err)

	return collect(abductionJ, swappedJ, comparisonJ, extInterJ, intInterJ, unionJ, diffJ, diffSwappedJ)
}

// analogy handles one asymmetric and one symmetric premise: the symmetric
// premise substitutes the shared term for its partner inside the asymmetric
// statement.
func analogy(s1, s2 *term.StatementTerm, sym1 bool, j1, j2 *sentence.Judgment, k float64) *sentence.Judgment {
	asym, symm := s1, s2
	asymJ, symJ := j1, j2
	if sym1 {
		asym, symm = s2, s1
		asymJ, symJ = j2, j1
	}

	var shared, other term.Term
	switch {
	case symm.Subject() == asym.Subject() || symm.Subject() == asym.Predicate():
		shared, other = symm.Subject(), symm.Predicate()
	case symm.Predicate() == asym.Subject() || symm.Predicate() == asym.Predicate():
		shared, other = symm.Predicate(), symm.Subject()
	default:
		return nil
	}

	var subject, predicate term.Term
	switch shared {
	case asym.Subject():
		subject, predicate = other, asym.Predicate()
	case asym.Predicate():
		subject, predicate = asym.Subject(), other
	default:
		return nil
	}

	j, err := rules.Analogy(subject, predicate, asym.Copula(), asymJ.Truth(), symJ.Truth(), asymJ.GetStamp(), symJ.GetStamp())
	return orNil(j, err)
}

// resemblance handles two symmetric premises sharing a term.
func resemblance(s1, s2 *term.StatementTerm, j1, j2 *sentence.Judgment, k float64) *sentence.Judgment {
	var a, b term.Term
	switch {
	case s1.Subject() == s2.Subject():
		a, b = s1.Predicate(), s2.Predicate()
	case s1.Subject() == s2.Predicate():
		a, b = s1.Predicate(), s2.Subject()
	case s1.Predicate() == s2.Subject():
		a, b = s1.Subject(), s2.Predicate()
	case s1.Predicate() == s2.Predicate():
		a, b = s1.Subject(), s2.Subject()
	default:
		return nil
	}
	j, err := rules.Resemblance(a, b, s1.Copula(), j1.Truth(), j2.Truth(), j1.GetStamp(), j2.GetStamp())
	return orNil(j, err)
}

func orNil(j *sentence.Judgment, err error) *sentence.Judgment {
	if err != nil {
		return nil
	}
	return j
}

// temporalize applies Temporalize to j when j is non-nil, letting the
// Induction/Comparison call sites above compose it with orNil without a nil
// check of their own.
func temporalize(j *sentence.Judgment, occSubject, occPredicate *float64) *sentence.Judgment {
	if j == nil {
		return nil
	}
	return Temporalize(j, occSubject, occPredicate)
}

// baseCopula picks the default conclusion copula for a rule family:
// Inheritance for first-order premises, Implication for implication-class
// ones. symmetricConclusion requests the symmetric counterpart instead.
func baseCopula(source syntax.Copula, symmetricConclusion bool) syntax.Copula {
	if source.IsFirstOrder() {
		if symmetricConclusion {
			return syntax.Similarity
		}
		return syntax.Inheritance
	}
	if symmetricConclusion {
		return syntax.Equivalence
	}
	return syntax.Implication
}

func comparisonCopula(source syntax.Copula) syntax.Copula {
	return baseCopula(source, true)
}

// OnePremise applies every one-premise rule whose precondition j satisfies:
// Negation always fires; Conversion and Contraposition fire only when their
// structural preconditions hold (enforced inside rules.Conversion /
// rules.Contraposition).
func OnePremise(j *sentence.Judgment, k float64) []*sentence.Judgment {
	out := []*sentence.Judgment{rules.Negation(j)}
	if conv, err := rules.Conversion(j, k); err == nil {
		out = append(out, conv)
	}
	if contra, err := rules.Contraposition(j, k); err == nil {
		out = append(out, contra)
	}
	return out
}

// Temporalize overrides an Induction- or Comparison-derived judgment's
// copula with its concurrent/predictive specialisation when both parent
// premises carry occurrence times, per spec.md §4.4's temporal
// specialisation table. j must carry a StatementTerm; occSubject is the
// occurrence time backing the premise that contributed j's subject term,
// occPredicate the one backing the premise that contributed its predicate
// term — subjSubjMatch/predPredMatch are the only callers, since they are
// the ones that still know which premise fed which side of the conclusion.
func Temporalize(j *sentence.Judgment, occSubject, occPredicate *float64) *sentence.Judgment {
	st, ok := j.Term().(*term.StatementTerm)
	if !ok || occSubject == nil || occPredicate == nil {
		return j
	}
	isComparison := st.Copula().IsSymmetric()

	var newCopula syntax.Copula
	swap := false
	switch {
	case *occSubject == *occPredicate:
		newCopula = pick(isComparison, syntax.ConcurrentEquivalence, syntax.ConcurrentImplication)
	case *occSubject < *occPredicate:
		newCopula = pick(isComparison, syntax.PredictiveEquivalence, syntax.PredictiveImplication)
	default:
		newCopula = pick(isComparison, syntax.PredictiveEquivalence, syntax.PredictiveImplication)
		swap = true
	}

	subject, predicate := st.Subject(), st.Predicate()
	if swap && !isComparison {
		subject, predicate = predicate, subject
	}
	newTerm := term.NewStatement(subject, predicate, newCopula)
	return sentence.DerivedJudgmentFromOnePremise(newTerm, j.Truth(), j.GetStamp(), j.GetStamp().DerivedBy)
}

func pick(cond bool, ifTrue, ifFalse syntax.Copula) syntax.Copula {
	if cond {
		return ifTrue
	}
	return ifFalse
}
