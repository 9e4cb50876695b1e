// Package rules implements the inference rule catalogue of spec.md §4.3:
// one pure function per named rule, each taking the terms/truth values its
// premises already supply and returning a derived Judgment. Which premise
// supplies which position, and which rules a given premise pairing fires,
// is the dispatcher's job (internal/inference) — pinned to
// original_source/NARSInferenceEngine.py's do_inference_two_premise /
// do_inference_one_premise classification tree. This package only pins the
// per-rule truth-function and term-construction shape, from
// original_source/NALInferenceRules.py.
package rules

import (
	"fmt"

	"nars/internal/nerr"
	"nars/internal/sentence"
	"nars/internal/syntax"
	"nars/internal/term"
	"nars/internal/truth"
)

func conclude(subject, predicate term.Term, copula syntax.Copula, tv truth.TruthValue, s1, s2 *sentence.Stamp, ruleName string) (*sentence.Judgment, error) {
	resultTerm := term.NewStatement(subject, predicate, copula)
	return sentence.DerivedJudgmentFromTwoPremises(resultTerm, tv, s1, s2, ruleName)
}

// Revision combines two judgments about the same term.
func Revision(sharedTerm term.Term, t1, t2 truth.TruthValue, s1, s2 *sentence.Stamp, k float64) (*sentence.Judgment, error) {
	return sentence.DerivedJudgmentFromTwoPremises(sharedTerm, truth.Revision(t1, t2, k), s1, s2, "Revision")
}

// Deduction: (M --> P), (S --> M) |- (S --> P).
func Deduction(s, p term.Term, copula syntax.Copula, t1, t2 truth.TruthValue, s1, s2 *sentence.Stamp) (*sentence.Judgment, error) {
	return conclude(s, p, copula, truth.Deduction(t1, t2), s1, s2, "Deduction")
}

// Exemplification: (P --> M), (M --> S) |- (S --> P).
func Exemplification(s, p term.Term, copula syntax.Copula, t1, t2 truth.TruthValue, s1, s2 *sentence.Stamp, k float64) (*sentence.Judgment, error) {
	return conclude(s, p, copula, truth.Exemplification(t1, t2, k), s1, s2, "Exemplification")
}

// Induction: (M --> P), (M --> S) |- (S --> P).
func Induction(s, p term.Term, copula syntax.Copula, t1, t2 truth.TruthValue, s1, s2 *sentence.Stamp, k float64) (*sentence.Judgment, error) {
	return conclude(s, p, copula, truth.Induction(t1, t2, k), s1, s2, "Induction")
}

// Abduction: (P --> M), (S --> M) |- (S --> P).
func Abduction(s, p term.Term, copula syntax.Copula, t1, t2 truth.TruthValue, s1, s2 *sentence.Stamp, k float64) (*sentence.Judgment, error) {
	return conclude(s, p, copula, truth.Abduction(t1, t2, k), s1, s2, "Abduction")
}

// Analogy: one asymmetric premise, one symmetric premise supplying the
// substitution.
func Analogy(s, p term.Term, copula syntax.Copula, t1, t2 truth.TruthValue, s1, s2 *sentence.Stamp) (*sentence.Judgment, error) {
	return conclude(s, p, copula, truth.Analogy(t1, t2), s1, s2, "Analogy")
}

// Resemblance: both premises symmetric.
func Resemblance(s, p term.Term, copula syntax.Copula, t1, t2 truth.TruthValue, s1, s2 *sentence.Stamp) (*sentence.Judgment, error) {
	return conclude(s, p, copula, truth.Resemblance(t1, t2), s1, s2, "Resemblance")
}

// Comparison concludes a symmetric statement (Similarity for first-order
// premises, Equivalence for implication-class premises).
func Comparison(s, p term.Term, conclusionCopula syntax.Copula, t1, t2 truth.TruthValue, s1, s2 *sentence.Stamp, k float64) (*sentence.Judgment, error) {
	return conclude(s, p, conclusionCopula, truth.Comparison(t1, t2, k), s1, s2, "Comparison")
}

// Compose builds the composite-term conclusions of spec.md §4.3's
// intersection/union/difference family: given two terms a, b to join with
// connector and a third term m, it places the composite on the subject
// side ((a connector b) copula m) or the predicate side (m copula (a
// connector b)), scored by truthFn.
func Compose(connector syntax.Connector, a, b, m term.Term, copula syntax.Copula, compositeIsSubject bool, truthFn func(truth.TruthValue, truth.TruthValue) truth.TruthValue, t1, t2 truth.TruthValue, s1, s2 *sentence.Stamp, ruleName string) (*sentence.Judgment, error) {
	composite := term.NewCompound(connector, []term.Term{a, b})
	var subject, predicate term.Term
	if compositeIsSubject {
		subject, predicate = composite, m
	} else {
		subject, predicate = m, composite
	}
	return conclude(subject, predicate, copula, truthFn(t1, t2), s1, s2, ruleName)
}

// ExtensionalIntersection and IntensionalIntersection share Intersection's
// truth function; they differ only in which connector composes a and b.
func ExtensionalIntersection(a, b, m term.Term, copula syntax.Copula, compositeIsSubject bool, t1, t2 truth.TruthValue, s1, s2 *sentence.Stamp) (*sentence.Judgment, error) {
	return Compose(syntax.ExtensionalIntersection, a, b, m, copula, compositeIsSubject, truth.Intersection, t1, t2, s1, s2, "ExtensionalIntersection")
}

func IntensionalIntersection(a, b, m term.Term, copula syntax.Copula, compositeIsSubject bool, t1, t2 truth.TruthValue, s1, s2 *sentence.Stamp) (*sentence.Judgment, error) {
	return Compose(syntax.IntensionalIntersection, a, b, m, copula, compositeIsSubject, truth.Intersection, t1, t2, s1, s2, "IntensionalIntersection")
}

// Union composes a and b into the disjunctive subject/predicate.
func Union(connector syntax.Connector, a, b, m term.Term, copula syntax.Copula, compositeIsSubject bool, t1, t2 truth.TruthValue, s1, s2 *sentence.Stamp) (*sentence.Judgment, error) {
	return Compose(connector, a, b, m, copula, compositeIsSubject, truth.Union, t1, t2, s1, s2, "Union")
}

// Difference composes a and b into a - b (order matters: call with (p,s)
// instead of (s,p) for the swapped-difference conclusion).
func Difference(connector syntax.Connector, a, b, m term.Term, copula syntax.Copula, compositeIsSubject bool, t1, t2 truth.TruthValue, s1, s2 *sentence.Stamp) (*sentence.Judgment, error) {
	return Compose(connector, a, b, m, copula, compositeIsSubject, truth.Difference, t1, t2, s1, s2, "Difference")
}

// Negation is the one-premise rule that always applies.
func Negation(j *sentence.Judgment) *sentence.Judgment {
	st, ok := j.Term().(*term.StatementTerm)
	var resultTerm term.Term
	if ok {
		resultTerm = term.NewCompound(syntax.Negation, []term.Term{st})
	} else {
		resultTerm = term.NewCompound(syntax.Negation, []term.Term{j.Term()})
	}
	return sentence.DerivedJudgmentFromOnePremise(resultTerm, truth.Negation(j.Truth()), j.GetStamp(), "Negation")
}

// Conversion: (P --> S) |- (S --> P). Valid only when the copula is
// asymmetric and f > 0; otherwise it returns ErrRuleNotApplicable.
func Conversion(j *sentence.Judgment, k float64) (*sentence.Judgment, error) {
	st, ok := j.Term().(*term.StatementTerm)
	if !ok {
		return nil, fmt.Errorf("conversion requires a statement term: %w", nerr.ErrRuleNotApplicable)
	}
	if st.Copula().IsSymmetric() || j.Truth().F <= 0 {
		return nil, fmt.Errorf("conversion precondition failed: %w", nerr.ErrRuleNotApplicable)
	}
	resultTerm := term.NewStatement(st.Predicate(), st.Subject(), st.Copula())
	return sentence.DerivedJudgmentFromOnePremise(resultTerm, truth.Conversion(j.Truth(), k), j.GetStamp(), "Conversion"), nil
}

// Contraposition: (S ==> P) |- ((--,P) ==> (--,S)). Valid only for
// Implication copula and f < 1.
func Contraposition(j *sentence.Judgment, k float64) (*sentence.Judgment, error) {
	st, ok := j.Term().(*term.StatementTerm)
	if !ok || st.Copula() != syntax.Implication || j.Truth().F >= 1 {
		return nil, fmt.Errorf("contraposition precondition failed: %w", nerr.ErrRuleNotApplicable)
	}
	negatedPredicate := term.NewCompound(syntax.Negation, []term.Term{st.Predicate()})
	negatedSubject := term.NewCompound(syntax.Negation, []term.Term{st.Subject()})
	resultTerm := term.NewStatement(negatedPredicate, negatedSubject, syntax.Implication)
	return sentence.DerivedJudgmentFromOnePremise(resultTerm, truth.Contraposition(j.Truth(), k), j.GetStamp(), "Contraposition"), nil
}

// image extracts the subterm at index from the statement's Product and
// relates it to an image built from the other side plus the remaining
// product members, with ImagePlaceholder marking the extracted position
// (Open Question decision #2 in DESIGN.md: the placeholder replaces the
// extracted subterm in place). Shared by ExtensionalImage (product subject,
// extracted term becomes the subject) and IntensionalImage (product
// predicate, extracted term becomes the predicate).
func image(connector syntax.Connector, j *sentence.Judgment, index int, ruleName string) (*sentence.Judgment, error) {
	st, ok := j.Term().(*term.StatementTerm)
	if !ok {
		return nil, fmt.Errorf("image requires a statement term: %w", nerr.ErrRuleNotApplicable)
	}
	intensional := connector == syntax.IntensionalImage
	productSide, otherSide := st.Subject(), st.Predicate()
	if intensional {
		productSide, otherSide = st.Predicate(), st.Subject()
	}
	product, ok := productSide.(*term.CompoundTerm)
	if !ok || product.Connector() != syntax.Product {
		return nil, fmt.Errorf("image requires a product term: %w", nerr.ErrRuleNotApplicable)
	}
	subterms := product.Subterms()
	if index < 0 || index >= len(subterms) {
		return nil, fmt.Errorf("image index out of range: %w", nerr.ErrRuleNotApplicable)
	}

	extracted := subterms[index]
	imageSubterms := make([]term.Term, 0, len(subterms)+1)
	imageSubterms = append(imageSubterms, otherSide)
	for i, s := range subterms {
		if i == index {
			imageSubterms = append(imageSubterms, term.ImagePlaceholder)
		} else {
			imageSubterms = append(imageSubterms, s)
		}
	}
	imageTerm := term.NewCompound(connector, imageSubterms)
	resultTerm := term.NewStatement(extracted, imageTerm, st.Copula())
	if intensional {
		resultTerm = term.NewStatement(imageTerm, extracted, st.Copula())
	}
	return sentence.DerivedJudgmentFromOnePremise(resultTerm, j.Truth(), j.GetStamp(), ruleName), nil
}

// ExtensionalImage: ((*,T1,...,Tn) --> P) |- (Ti --> (/,P,...,_,...,Tn)).
func ExtensionalImage(j *sentence.Judgment, index int) (*sentence.Judgment, error) {
	return image(syntax.ExtensionalImage, j, index, "ExtensionalImage")
}

// IntensionalImage: (P --> (*,T1,...,Tn)) |- ((\,P,...,_,...,Tn) --> Ti).
func IntensionalImage(j *sentence.Judgment, index int) (*sentence.Judgment, error) {
	return image(syntax.IntensionalImage, j, index, "IntensionalImage")
}

// Choice picks the better of two competing judgments (spec.md §4.3's Choice
// rule, used when two candidate answers compete for the same question):
// higher confidence when both state the same subject-predicate pair, higher
// expectation otherwise. Pinned to original_source/NALInferenceRules.py's
// Choice (subjpred1 == subjpred2 branches on confidence; the else branch
// compares Expectation).
func Choice(a, b *sentence.Judgment) *sentence.Judgment {
	if a.Term() == b.Term() {
		if a.Truth().C >= b.Truth().C {
			return a
		}
		return b
	}
	if truth.Expectation(a.Truth()) >= truth.Expectation(b.Truth()) {
		return a
	}
	return b
}

// Decision reports whether a Goal's desire value clears the action
// threshold (spec.md §4.2's Decision rule: |E(d) - 0.5| > threshold).
func Decision(d truth.DesireValue, threshold float64) bool {
	return truth.Decide(d, threshold)
}

// Eternalize converts a temporally-scoped judgment into an eternal one,
// keeping its term and evidential base but dropping the occurrence time.
func Eternalize(j *sentence.Judgment, k float64) *sentence.Judgment {
	tv := truth.Eternalization(j.Truth(), k)
	return sentence.DerivedJudgmentFromOnePremise(j.Term(), tv, &sentence.Stamp{
		ID:             j.GetStamp().ID,
		OccurrenceTime: nil,
		EvidentialBase: j.GetStamp().EvidentialBase,
		Interacted:     j.GetStamp().Interacted,
		DerivedBy:      j.GetStamp().DerivedBy,
		Parents:        j.GetStamp().Parents,
	}, "Eternalization")
}

// Project re-scopes j to occurrence time tT as evaluated at tNow. j must
// carry an occurrence time (projecting an eternal judgment is a no-op the
// caller should skip).
func Project(j *sentence.Judgment, tT, tNow float64) (*sentence.Judgment, error) {
	if j.GetStamp().OccurrenceTime == nil {
		return nil, fmt.Errorf("cannot project an eternal judgment: %w", nerr.ErrRuleNotApplicable)
	}
	tv := truth.Projection(j.Truth(), *j.GetStamp().OccurrenceTime, tT, tNow)
	return sentence.DerivedJudgmentFromOnePremise(j.Term(), tv, j.GetStamp(), "Projection"), nil
}
