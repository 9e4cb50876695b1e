// Package term implements the Narsese term model: the closed set of
// Atomic/Variable/Compound/Statement/Array variants, process-wide
// interning, canonical string rendering, and syntactic complexity, per
// spec.md §3 and §4.1.
package term

// Term is satisfied by every term variant. Equality of canonical string
// form is structural equality (spec.md §3 invariant 1); because every
// constructor routes through the intern table in intern.go, two
// structurally equal terms are always the same Term value, so callers may
// compare Terms with plain `==`.
type Term interface {
	// String returns the term's canonical Narsese rendering.
	String() string

	// Complexity returns the term's syntactic complexity (spec.md §3
	// invariant 4).
	Complexity() int

	// IsOperation reports whether the term is a statement whose subject is
	// a product with SELF as its first element (spec.md §3 invariant 5).
	IsOperation() bool

	// ContainsVariable reports whether the term's canonical string
	// contains a variable or query sigil anywhere in its structure.
	ContainsVariable() bool
}

// SELF is the distinguished term an operation's product subject must begin
// with. It is a regular Atomic term, interned like any other.
var SELF Term = MustFromString("SELF")

// ImagePlaceholder fills the position an image rule extracted a product
// member from (spec.md §4.3 one-premise image rules). A regular Atomic
// term, interned like any other.
var ImagePlaceholder Term = MustFromString("_")
