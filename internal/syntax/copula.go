// Package syntax holds the fixed Narsese symbol tables: copulas, term
// connectors, punctuation, and bracket pairs, plus the symmetry/first-order/
// temporal predicates the rest of the engine pattern-matches against.
package syntax

// Copula is the binary relation carried by a Statement term.
type Copula string

const (
	Inheritance              Copula = "-->"
	Similarity               Copula = "<->"
	Implication              Copula = "==>"
	Equivalence              Copula = "<=>"
	PredictiveImplication    Copula = "=/>"
	ConcurrentImplication    Copula = "=|>"
	RetrospectiveImplication Copula = "=\\>"
	PredictiveEquivalence    Copula = "</>"
	ConcurrentEquivalence    Copula = "<|>"
)

// copulaWidth is the number of bytes every copula token occupies; fixed at
// 3 so the dispatcher and parser can scan with a constant-width window.
const copulaWidth = 3

var allCopulas = []Copula{
	Inheritance, Similarity, Implication, Equivalence,
	PredictiveImplication, ConcurrentImplication, RetrospectiveImplication,
	PredictiveEquivalence, ConcurrentEquivalence,
}

// ParseCopula returns the Copula matching s and true, or ("", false) if s is
// not a known 3-byte copula token.
func ParseCopula(s string) (Copula, bool) {
	if len(s) != copulaWidth {
		return "", false
	}
	for _, c := range allCopulas {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// IsSymmetric reports whether premises using c may be freely reordered
// (similarity, equivalence, and the equivalence-class temporal copulas).
func (c Copula) IsSymmetric() bool {
	switch c {
	case Similarity, Equivalence, PredictiveEquivalence, ConcurrentEquivalence:
		return true
	default:
		return false
	}
}

// IsFirstOrder reports whether c relates two ordinary terms (as opposed to
// an implication-class copula relating two statements/events).
func (c Copula) IsFirstOrder() bool {
	return c == Inheritance || c == Similarity
}

// IsTemporal reports whether c carries an implicit or explicit time relation.
func (c Copula) IsTemporal() bool {
	switch c {
	case PredictiveImplication, ConcurrentImplication, RetrospectiveImplication,
		PredictiveEquivalence, ConcurrentEquivalence:
		return true
	default:
		return false
	}
}

// IsImplicationClass reports whether c is implication or one of its temporal
// or equivalence variants, i.e. a higher-order (statement-relating) copula.
func (c Copula) IsImplicationClass() bool {
	return !c.IsFirstOrder()
}
