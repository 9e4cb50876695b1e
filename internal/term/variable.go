package term

import (
	"strings"

	"nars/internal/syntax"
)

// VariableKind distinguishes the three VariableTerm roles.
type VariableKind int

const (
	Independent VariableKind = iota
	Dependent
	Query
)

// VariableTerm is a variable name carrying a kind and, for dependent
// variables, a dependency list of independent variables it ranges over.
type VariableTerm struct {
	name         string
	kind         VariableKind
	dependencies []Term // nil: no dependency list was given in the source string
	formatted    string
}

// NewVariable interns and returns the VariableTerm identified by kind, name
// and an optional dependency list. Pass a nil dependencies slice for a bare
// independent variable or a query variable; pass a non-nil (possibly empty)
// slice to force rendering of the "(dep1,dep2)" suffix.
func NewVariable(kind VariableKind, name string, dependencies []Term) *VariableTerm {
	formatted := formatVariable(kind, name, dependencies)
	t := globalInterner.intern(formatted, func() Term {
		return &VariableTerm{name: name, kind: kind, dependencies: dependencies, formatted: formatted}
	})
	return t.(*VariableTerm)
}

func sigilFor(kind VariableKind) byte {
	if kind == Query {
		return syntax.QueryVariableSigil
	}
	return syntax.IndependentVariableSigil
}

func formatVariable(kind VariableKind, name string, dependencies []Term) string {
	var b strings.Builder
	b.WriteByte(sigilFor(kind))
	b.WriteString(name)
	if dependencies != nil {
		b.WriteByte(syntax.StatementOpen)
		for i, d := range dependencies {
			if i > 0 {
				b.WriteByte(syntax.ArgumentSep)
			}
			b.WriteString(d.String())
		}
		b.WriteByte(syntax.StatementClose)
	}
	return b.String()
}

func (t *VariableTerm) String() string { return t.formatted }

func (t *VariableTerm) Complexity() int {
	if t.dependencies == nil {
		return 1
	}
	return 1 + len(t.dependencies)
}

func (t *VariableTerm) IsOperation() bool      { return false }
func (t *VariableTerm) ContainsVariable() bool { return true }

func (t *VariableTerm) Kind() VariableKind    { return t.kind }
func (t *VariableTerm) Name() string          { return t.name }
func (t *VariableTerm) Dependencies() []Term  { return t.dependencies }
