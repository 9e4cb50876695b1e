// Package nerr defines the reified error kinds shared across the reasoning
// core, so every subsystem returns comparable sentinel errors instead of
// raising ad-hoc strings or panicking on well-formed-but-rejected input.
package nerr

import "errors"

var (
	// ErrInvalidTerm is returned when a term string is not well-formed.
	ErrInvalidTerm = errors.New("invalid term")

	// ErrInvalidSentence is returned when a sentence string is not well-formed,
	// or when a sentence is constructed from structurally inconsistent parts.
	ErrInvalidSentence = errors.New("invalid sentence")

	// ErrEvidentialOverlap is returned by a two-premise rule when the premises'
	// evidential bases are not disjoint. Callers treat this as a silent no-op,
	// not a failure.
	ErrEvidentialOverlap = errors.New("evidential overlap")

	// ErrRuleNotApplicable is returned when a rule's structural preconditions
	// are not met by the given premises. Silent no-op, not a failure.
	ErrRuleNotApplicable = errors.New("rule not applicable")

	// ErrBagFull is a non-fatal condition signalled by Bag.Put when insertion
	// pushed the bag over capacity; the evicted item is still reported back.
	ErrBagFull = errors.New("bag full")

	// ErrUnknownConcept is a non-fatal lookup miss in Memory.
	ErrUnknownConcept = errors.New("unknown concept")

	// ErrUnknownKey is a non-fatal lookup miss in Bag.
	ErrUnknownKey = errors.New("unknown key")

	// ErrDuplicateKey is returned by Bag.Put when the caller violates its own
	// duplicate-key responsibility (see spec.md §4.5).
	ErrDuplicateKey = errors.New("duplicate key")
)
