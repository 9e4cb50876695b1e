// Package sentence implements the Sentence model — Judgment, Goal and
// Question variants, each carrying a Stamp that tracks evidential
// provenance — per spec.md §3.
package sentence

import (
	"fmt"

	"github.com/google/uuid"

	"nars/internal/nerr"
)

// MaxEvidentialBase bounds the number of premise ids a Stamp retains,
// matching NARS's usual small-window evidential base (the assumption of
// insufficient knowledge and resources forbids tracking unboundedly many
// ancestors per sentence).
const MaxEvidentialBase = 20

// Stamp is a sentence's provenance record: a unique id, an optional
// occurrence time (nil means eternal), a bounded evidential base, the set
// of sentence ids it has already been combined with, a derivation label,
// and its immediate parent stamp ids.
type Stamp struct {
	ID             uuid.UUID
	OccurrenceTime *float64
	EvidentialBase []uuid.UUID
	Interacted     map[uuid.UUID]struct{}
	DerivedBy      string
	Parents        []uuid.UUID
}

// NewInputStamp builds the Stamp for a freshly input (not derived) sentence:
// its own id is its sole evidential-base member.
func NewInputStamp(occurrenceTime *float64) *Stamp {
	id := uuid.New()
	return &Stamp{
		ID:             id,
		OccurrenceTime: occurrenceTime,
		EvidentialBase: []uuid.UUID{id},
		Interacted:     make(map[uuid.UUID]struct{}),
		DerivedBy:      "input",
	}
}

// HasInteractedWith reports whether this stamp has already been combined
// with other in a prior two-premise inference.
func (s *Stamp) HasInteractedWith(other *Stamp) bool {
	_, ok := s.Interacted[other.ID]
	return ok
}

// MarkInteracted records mutual interaction between s and other, so a
// later inference attempt over the same pair of sentences is rejected.
func MarkInteracted(s, other *Stamp) {
	s.Interacted[other.ID] = struct{}{}
	other.Interacted[s.ID] = struct{}{}
}

func overlaps(a, b []uuid.UUID) bool {
	seen := make(map[uuid.UUID]struct{}, len(a))
	for _, id := range a {
		seen[id] = struct{}{}
	}
	for _, id := range b {
		if _, ok := seen[id]; ok {
			return true
		}
	}
	return false
}

// mergeEvidentialBases unions two premises' evidential bases, rejecting the
// combination if they are not disjoint (spec.md §4.3's inference
// precondition), and truncates the result to MaxEvidentialBase.
func mergeEvidentialBases(a, b []uuid.UUID) ([]uuid.UUID, error) {
	if overlaps(a, b) {
		return nil, fmt.Errorf("evidential bases overlap: %w", nerr.ErrEvidentialOverlap)
	}
	merged := append(append([]uuid.UUID(nil), a...), b...)
	if len(merged) > MaxEvidentialBase {
		merged = merged[len(merged)-MaxEvidentialBase:]
	}
	return merged, nil
}

// deriveOccurrenceTime picks the occurrence time a two-premise derivation
// inherits: eternal only if both premises are eternal; otherwise the
// earlier of the two timed premises, since that is the one already known
// to have occurred by the time of the later premise.
func deriveOccurrenceTime(a, b *float64) *float64 {
	switch {
	case a == nil && b == nil:
		return nil
	case a == nil:
		return b
	case b == nil:
		return a
	case *a <= *b:
		return a
	default:
		return b
	}
}

// deriveTwoPremise builds the Stamp for a sentence derived from premises p1
// and p2 via the named rule, per
// original_source/NALInferenceRules/HelperFunctions.py's
// create_resultant_sentence_two_premise: merge evidential bases (rejecting
// overlap) and inherit occurrence time. It does not mark p1/p2 as having
// interacted — a single dispatch over one premise pair (internal/inference's
// subjSubjMatch/predPredMatch) calls this indirectly many times, once per
// rule the pairing licenses, and marking interaction here would make every
// call after the first see a false "already interacted" rejection. The
// caller that owns the whole dispatch marks interaction exactly once, after
// every rule for the pair has run (see sentence.MarkInteracted's callers).
func deriveTwoPremise(p1, p2 *Stamp, rule string) (*Stamp, error) {
	base, err := mergeEvidentialBases(p1.EvidentialBase, p2.EvidentialBase)
	if err != nil {
		return nil, err
	}
	return &Stamp{
		ID:             uuid.New(),
		OccurrenceTime: deriveOccurrenceTime(p1.OccurrenceTime, p2.OccurrenceTime),
		EvidentialBase: base,
		Interacted:     make(map[uuid.UUID]struct{}),
		DerivedBy:      rule,
		Parents:        []uuid.UUID{p1.ID, p2.ID},
	}, nil
}

// deriveOnePremise builds the Stamp for a sentence derived from a single
// premise p via the named rule: the evidential base and occurrence time
// carry over unchanged.
func deriveOnePremise(p *Stamp, rule string) *Stamp {
	return &Stamp{
		ID:             uuid.New(),
		OccurrenceTime: p.OccurrenceTime,
		EvidentialBase: append([]uuid.UUID(nil), p.EvidentialBase...),
		Interacted:     make(map[uuid.UUID]struct{}),
		DerivedBy:      rule,
		Parents:        []uuid.UUID{p.ID},
	}
}
