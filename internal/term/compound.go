package term

import (
	"sort"
	"strings"

	"nars/internal/syntax"
)

// CompoundTerm is a term connector plus an ordered list of subterms,
// including the set-bracket forms (whose "connector" is the opening
// bracket byte rather than a syntax.Connector token).
type CompoundTerm struct {
	connector  syntax.Connector
	subterms   []Term
	isSet      bool
	setStart   byte
	formatted  string
	complexity int
}

func (t *CompoundTerm) String() string      { return t.formatted }
func (t *CompoundTerm) Complexity() int     { return t.complexity }
func (t *CompoundTerm) IsOperation() bool   { return false }
func (t *CompoundTerm) ContainsVariable() bool {
	return strings.IndexByte(t.formatted, syntax.IndependentVariableSigil) >= 0 ||
		strings.IndexByte(t.formatted, syntax.QueryVariableSigil) >= 0
}

func (t *CompoundTerm) Connector() syntax.Connector { return t.connector }
func (t *CompoundTerm) Subterms() []Term            { return append([]Term(nil), t.subterms...) }
func (t *CompoundTerm) IsSet() bool                 { return t.isSet }
func (t *CompoundTerm) IsExtensionalSet() bool {
	return t.isSet && t.setStart == syntax.ExtensionalSetStart
}
func (t *CompoundTerm) IsIntensionalSet() bool {
	return t.isSet && t.setStart == syntax.IntensionalSetStart
}

// NewCompound builds (or returns the already interned) compound term
// joining subterms with connector. Subterms under an order-invariant
// connector are canonically sorted first (spec.md §3 invariant 2).
func NewCompound(connector syntax.Connector, subterms []Term) *CompoundTerm {
	subterms = canonicalizeOrder(connector.IsOrderInvariant(), subterms)
	formatted := formatConnectorCompound(connector, subterms)
	t := globalInterner.intern(formatted, func() Term {
		return &CompoundTerm{
			connector:  connector,
			subterms:   subterms,
			formatted:  formatted,
			complexity: compoundComplexity(subterms),
		}
	})
	return t.(*CompoundTerm)
}

// NewSet builds (or returns) the set term opened by start ('{' extensional
// or '[' intensional) containing elements. A multi-element set is rewritten
// at construction time into an intersection of singleton sets of the same
// bracket polarity (spec.md §3 invariant 3).
func NewSet(start byte, elements []Term) Term {
	elements = canonicalizeOrder(true, elements)

	if len(elements) > 1 {
		singletons := make([]Term, len(elements))
		for i, e := range elements {
			singletons[i] = NewSet(start, []Term{e})
		}
		return NewCompound(syntax.DualIntersectionFor(start), singletons)
	}

	formatted := formatSetCompound(start, elements)
	t := globalInterner.intern(formatted, func() Term {
		return &CompoundTerm{
			subterms:   elements,
			isSet:      true,
			setStart:   start,
			formatted:  formatted,
			complexity: compoundComplexity(elements),
		}
	})
	return t
}

func canonicalizeOrder(orderInvariant bool, subterms []Term) []Term {
	if !orderInvariant || len(subterms) <= 1 {
		return subterms
	}
	sorted := append([]Term(nil), subterms...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].String() < sorted[j].String() })
	return sorted
}

// compoundComplexity sums child complexities plus 1 for the connector,
// which a CompoundTerm (set or connector form) always carries.
func compoundComplexity(subterms []Term) int {
	count := 1
	for _, s := range subterms {
		count += s.Complexity()
	}
	return count
}

func formatConnectorCompound(connector syntax.Connector, subterms []Term) string {
	var b strings.Builder
	b.WriteByte(syntax.StatementOpen)
	b.WriteString(string(connector))
	b.WriteByte(syntax.ArgumentSep)
	for i, s := range subterms {
		if i > 0 {
			b.WriteByte(syntax.ArgumentSep)
		}
		b.WriteString(s.String())
	}
	b.WriteByte(syntax.StatementClose)
	return b.String()
}

func formatSetCompound(start byte, elements []Term) string {
	var b strings.Builder
	b.WriteByte(start)
	for i, e := range elements {
		if i > 0 {
			b.WriteByte(syntax.ArgumentSep)
		}
		b.WriteString(e.String())
	}
	b.WriteByte(syntax.SetEndFor(start))
	return b.String()
}
