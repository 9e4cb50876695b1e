package term

import (
	"fmt"
	"strconv"
	"strings"

	"nars/internal/nerr"
	"nars/internal/syntax"
)

// FromString parses s into its interned Term, per spec.md §4.1: bracket
// balance check, top-level copula scan, recursive descent over subterm
// commas at depth 0, and detection of set openers, the array sigil, and
// variable sigils.
func FromString(s string) (Term, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty term string: %w", nerr.ErrInvalidTerm)
	}

	if cached, ok := globalInterner.lookup(s); ok {
		return cached, nil
	}

	switch {
	case s[0] == syntax.StatementOpen:
		if s[len(s)-1] != syntax.StatementClose {
			return nil, fmt.Errorf("unbalanced term string %q: %w", s, nerr.ErrInvalidTerm)
		}
		if copula, idx, ok := getTopLevelCopula(s); ok {
			return parseStatement(s, copula, idx)
		}
		return parseGenericCompound(s)

	case syntax.IsSetBracketStart(s[0]):
		if s[len(s)-1] != syntax.SetEndFor(s[0]) {
			return nil, fmt.Errorf("unbalanced set string %q: %w", s, nerr.ErrInvalidTerm)
		}
		return parseSet(s)

	case s[0] == syntax.ArraySigil:
		return parseArrayReference(s)

	case s[0] == syntax.IndependentVariableSigil, s[0] == syntax.QueryVariableSigil:
		return parseVariable(s)

	default:
		at, ok := NewAtomic(s)
		if !ok {
			return nil, fmt.Errorf("invalid atomic term %q: %w", s, nerr.ErrInvalidTerm)
		}
		return at, nil
	}
}

// MustFromString parses s, panicking on error. Reserved for well-known
// constants defined at package init time (e.g. SELF).
func MustFromString(s string) Term {
	t, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return t
}

// getTopLevelCopula scans s for a copula token at paren depth 1 (directly
// inside the outermost parens, not nested further), returning its first
// match and byte index, or (_, -1, false) if none is found.
func getTopLevelCopula(s string) (syntax.Copula, int, bool) {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case syntax.StatementOpen:
			depth++
			continue
		case syntax.StatementClose:
			depth--
			continue
		}
		if depth == 1 && i+3 <= len(s) {
			if c, ok := syntax.ParseCopula(s[i : i+3]); ok {
				return c, i, true
			}
		}
	}
	return "", -1, false
}

func parseStatement(s string, copula syntax.Copula, copulaIdx int) (Term, error) {
	subjectStr := s[1:copulaIdx]
	predicateStr := s[copulaIdx+3 : len(s)-1]

	subject, err := FromString(subjectStr)
	if err != nil {
		return nil, err
	}
	predicate, err := FromString(predicateStr)
	if err != nil {
		return nil, err
	}
	return NewStatement(subject, predicate, copula), nil
}

func parseGenericCompound(s string) (Term, error) {
	inner := strings.ReplaceAll(s[1:len(s)-1], " ", "")

	connector, width, ok := syntax.ParseConnector(inner)
	if !ok {
		return nil, fmt.Errorf("unrecognized connector in %q: %w", s, nerr.ErrInvalidTerm)
	}
	if len(inner) <= width || inner[width] != syntax.ArgumentSep {
		return nil, fmt.Errorf("connector not followed by %q in %q: %w", string(syntax.ArgumentSep), s, nerr.ErrInvalidTerm)
	}

	subtermStrings := splitTopLevel(inner[width+1:])
	subterms := make([]Term, len(subtermStrings))
	for i, ss := range subtermStrings {
		t, err := FromString(ss)
		if err != nil {
			return nil, err
		}
		subterms[i] = t
	}
	return NewCompound(connector, subterms), nil
}

func parseSet(s string) (Term, error) {
	inner := strings.ReplaceAll(s[1:len(s)-1], " ", "")
	elementStrings := splitTopLevel(inner)
	elements := make([]Term, len(elementStrings))
	for i, es := range elementStrings {
		t, err := FromString(es)
		if err != nil {
			return nil, err
		}
		elements[i] = t
	}
	return NewSet(s[0], elements), nil
}

// splitTopLevel splits s on the argument separator at bracket depth 0,
// tracking depth across parens and both set-bracket families.
func splitTopLevel(s string) []string {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case syntax.StatementOpen:
			depth++
		case syntax.StatementClose:
			depth--
		default:
			if syntax.IsSetBracketStart(s[i]) {
				depth++
			} else if syntax.IsSetBracketEnd(s[i]) {
				depth--
			}
		}
		if s[i] == syntax.ArgumentSep && depth == 0 {
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	parts = append(parts, s[start:])
	return parts
}

func parseVariable(s string) (Term, error) {
	sigil := s[0]
	openIdx := strings.IndexByte(s, syntax.StatementOpen)

	var name string
	var dependencies []Term
	if openIdx == -1 {
		name = s[1:]
	} else {
		name = s[1:openIdx]
		closeIdx := strings.IndexByte(s, syntax.StatementClose)
		if closeIdx == -1 || closeIdx < openIdx {
			return nil, fmt.Errorf("unbalanced variable dependency list %q: %w", s, nerr.ErrInvalidTerm)
		}
		depString := s[openIdx+1 : closeIdx]
		dependencies = []Term{}
		if depString != "" {
			for _, depStr := range strings.Split(depString, string(syntax.ArgumentSep)) {
				dep, err := FromString(strings.TrimSpace(depStr))
				if err != nil {
					return nil, err
				}
				dependencies = append(dependencies, dep)
			}
		}
	}

	var kind VariableKind
	switch sigil {
	case syntax.QueryVariableSigil:
		kind = Query
	default:
		if dependencies == nil {
			kind = Independent
		} else {
			kind = Dependent
		}
	}

	if name == "" {
		return nil, fmt.Errorf("empty variable name in %q: %w", s, nerr.ErrInvalidTerm)
	}
	return NewVariable(kind, name, dependencies), nil
}

func parseArrayReference(s string) (Term, error) {
	if idx := strings.IndexByte(s, syntax.ArrayElementIndexStart); idx != -1 {
		return parseArrayElement(s, idx)
	}
	// An array term reference with no dimensions must already be interned;
	// this parser cannot fabricate dimensions out of thin air (mirrors
	// original_source/NALGrammar/Terms.py ArrayTerm.from_string).
	if cached, ok := globalInterner.lookup(s); ok {
		return cached, nil
	}
	return nil, fmt.Errorf("array term %q has no known dimensions: %w", s, nerr.ErrInvalidTerm)
}

func parseArrayElement(s string, indexStart int) (Term, error) {
	endIdx := strings.LastIndexByte(s, syntax.ArrayElementIndexEnd)
	if endIdx == -1 || endIdx < indexStart {
		return nil, fmt.Errorf("unbalanced array element indices in %q: %w", s, nerr.ErrInvalidTerm)
	}
	arrayTermStr := s[:indexStart]
	arrayTerm, err := parseArrayReference(arrayTermStr)
	if err != nil {
		return nil, err
	}
	at, ok := arrayTerm.(*ArrayTerm)
	if !ok {
		return nil, fmt.Errorf("%q is not an array term: %w", arrayTermStr, nerr.ErrInvalidTerm)
	}

	indexStrs := strings.Split(s[indexStart+1:endIdx], string(syntax.ArgumentSep))
	indices := make([]float64, len(indexStrs))
	for i, is := range indexStrs {
		v, err := strconv.ParseFloat(strings.TrimSpace(is), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid array index %q: %w", is, nerr.ErrInvalidTerm)
		}
		indices[i] = v
	}
	return NewArrayElement(at, indices), nil
}
