package term

import (
	"strings"

	"nars/internal/syntax"
)

// StatementTerm is a distinguished binary compound carrying a copula. A
// negation-wrapped statement is not a StatementTerm itself: per spec.md §3
// it is represented as an ordinary CompoundTerm (connector Negation) whose
// single subterm is the wrapped StatementTerm.
type StatementTerm struct {
	subject    Term
	predicate  Term
	copula     syntax.Copula
	formatted  string
	complexity int
}

// NewStatement builds (or returns the already interned) statement relating
// subject and predicate via copula. Symmetric copulas (similarity,
// equivalence and their temporal variants) canonically sort the two
// subterms alphabetically, since premise order carries no meaning for them.
func NewStatement(subject, predicate Term, copula syntax.Copula) *StatementTerm {
	if copula.IsSymmetric() && predicate.String() < subject.String() {
		subject, predicate = predicate, subject
	}
	formatted := formatStatement(subject, predicate, copula)
	t := globalInterner.intern(formatted, func() Term {
		return &StatementTerm{
			subject:    subject,
			predicate:  predicate,
			copula:     copula,
			formatted:  formatted,
			complexity: 1 + subject.Complexity() + predicate.Complexity(),
		}
	})
	return t.(*StatementTerm)
}

func formatStatement(subject, predicate Term, copula syntax.Copula) string {
	var b strings.Builder
	b.WriteByte(syntax.StatementOpen)
	b.WriteString(subject.String())
	b.WriteByte(' ')
	b.WriteString(string(copula))
	b.WriteByte(' ')
	b.WriteString(predicate.String())
	b.WriteByte(syntax.StatementClose)
	return b.String()
}

func (t *StatementTerm) String() string  { return t.formatted }
func (t *StatementTerm) Complexity() int { return t.complexity }

func (t *StatementTerm) ContainsVariable() bool {
	return strings.IndexByte(t.formatted, syntax.IndependentVariableSigil) >= 0 ||
		strings.IndexByte(t.formatted, syntax.QueryVariableSigil) >= 0
}

// IsOperation reports whether the statement's subject is a product whose
// first element is SELF (spec.md §3 invariant 5).
func (t *StatementTerm) IsOperation() bool {
	product, ok := t.subject.(*CompoundTerm)
	if !ok || product.connector != syntax.Product || len(product.subterms) == 0 {
		return false
	}
	return product.subterms[0] == SELF
}

func (t *StatementTerm) Subject() Term          { return t.subject }
func (t *StatementTerm) Predicate() Term        { return t.predicate }
func (t *StatementTerm) Copula() syntax.Copula  { return t.copula }
