package term

import "nars/internal/syntax"

// Simplify applies the system's structural-rewrite hooks to t (spec.md
// §4.1). Singleton-set normalisation and canonical ordering already happen
// unconditionally at construction time (compound.go); this pass is the
// extension point for the remaining rewrites: double-negation elimination,
// difference simplification, and image placeholder resolution.
//
// original_source/NALGrammar/Terms.py's simplify() reserves exactly these
// five branches and leaves every one a no-op (`pass`). We preserve that: the
// hooks are wired into the dispatch below but intentionally do nothing yet,
// so a caller can already call Simplify anywhere it will eventually need to
// without it changing behavior today.
func Simplify(t Term) Term {
	switch v := t.(type) {
	case *AtomicTerm:
		return v

	case *VariableTerm:
		return v

	case *ArrayTerm, *ArrayTermElementTerm:
		return t

	case *StatementTerm:
		return NewStatement(Simplify(v.subject), Simplify(v.predicate), v.copula)

	case *CompoundTerm:
		switch v.connector {
		case syntax.Negation:
			if len(v.subterms) == 1 {
				// TODO: double-negation elimination (-- (-- A) => A) is not
				// implemented upstream; left as a no-op pending a concrete
				// rewrite rule.
			}
		case syntax.ExtensionalDifference:
			// TODO: (A - A) => no simplification defined upstream.
		case syntax.IntensionalDifference:
			// TODO: (A ~ A) => no simplification defined upstream.
		case syntax.ExtensionalImage:
			// TODO: image placeholder resolution not implemented upstream.
		case syntax.IntensionalImage:
			// TODO: image placeholder resolution not implemented upstream.
		}
		return v

	default:
		return t
	}
}
