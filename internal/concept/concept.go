// Package concept implements the Concept and Memory model of spec.md §4.6:
// one Concept per distinct term, holding bounded belief/desire tables
// ordered by confidence/expectation, plus the term-link graph connecting a
// concept to its structural sub-terms. Grounded on teacher
// `internal/storage/memory.go` (bounded map + mutex + secondary ordering)
// for the per-concept table shape, generalized from recency order to
// confidence/expectation order by reusing internal/bag as the ordered
// table itself rather than re-deriving a second container type.
package concept

import (
	"sync"

	"github.com/google/uuid"

	"nars/internal/bag"
	"nars/internal/rules"
	"nars/internal/sentence"
	"nars/internal/term"
	"nars/internal/truth"
)

// Concept holds everything memory knows about one term: its bounded belief
// table (ordered by confidence), its bounded desire table (ordered by
// expectation), and any outstanding questions about it.
type Concept struct {
	mu sync.Mutex

	term      term.Term
	beliefs   *bag.Bag[uuid.UUID, *sentence.Judgment]
	desires   *bag.Bag[uuid.UUID, *sentence.Goal]
	questions []*sentence.Question

	k float64
}

// New builds an empty Concept about t with the given belief/desire table
// capacities. k is the system evidential constant used when a newly
// inserted belief triggers Revision against an existing one.
func New(t term.Term, beliefCapacity, desireCapacity int, k float64) *Concept {
	return &Concept{
		term:    t,
		beliefs: bag.New[uuid.UUID, *sentence.Judgment](beliefCapacity, bag.IdentityWeight),
		desires: bag.New[uuid.UUID, *sentence.Goal](desireCapacity, bag.IdentityWeight),
		k:       k,
	}
}

func (c *Concept) Term() term.Term { return c.term }

// AddBelief inserts j into the belief table, ordered by confidence. Per
// spec.md §4.6, insertion first tries Revision against an existing belief
// about the same term whose evidential base does not overlap j's (the two
// can be merged into a single stronger belief); only when every existing
// belief has a different term, overlaps, or has already interacted with j
// does it get stored as a distinct entry.
func (c *Concept) AddBelief(j *sentence.Judgment) (*sentence.Judgment, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, existingID := range c.beliefs.Keys() {
		existing, ok := c.beliefs.PeekUsingKey(existingID)
		if !ok {
			continue
		}
		if existing.Term() != j.Term() {
			continue
		}
		revised, err := rules.Revision(j.Term(), existing.Truth(), j.Truth(), existing.GetStamp(), j.GetStamp(), c.k)
		if err != nil {
			continue
		}
		sentence.MarkInteracted(existing.GetStamp(), j.GetStamp())
		c.beliefs.TakeUsingKey(existingID)
		c.beliefs.Put(revised.GetStamp().ID, revised, bag.Budget{Priority: revised.Truth().C, Durability: 0.9, Quality: 1})
		return revised, true
	}

	c.beliefs.Put(j.GetStamp().ID, j, bag.Budget{Priority: j.Truth().C, Durability: 0.9, Quality: 1})
	return j, false
}

// BestBelief returns the belief with the highest confidence
// (peek_max on the belief bag), or false if the concept has none.
func (c *Concept) BestBelief() (*sentence.Judgment, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, j, ok := c.beliefs.PeekMax()
	return j, ok
}

// SampleBelief probabilistically draws a belief, for the control cycle's
// "semantically related belief" step (spec.md §4.7 step 2).
func (c *Concept) SampleBelief() (*sentence.Judgment, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, j, ok := c.beliefs.Peek()
	return j, ok
}

// StrengthenBelief raises the priority of the belief stored under id
// (spec.md §4.7 step 4: items involved in a successful derivation are
// strengthened).
func (c *Concept) StrengthenBelief(id uuid.UUID, delta float64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.beliefs.Strengthen(id, delta)
}

// DecayBelief lowers the priority of the belief stored under id (spec.md
// §4.7 step 4: touched items decay every cycle).
func (c *Concept) DecayBelief(id uuid.UUID, delta float64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.beliefs.Decay(id, delta)
}

// AddDesire inserts g into the desire table, ordered by expectation.
func (c *Concept) AddDesire(g *sentence.Goal) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.desires.Put(g.GetStamp().ID, g, bag.Budget{Priority: truth.Expectation(g.Desire()), Durability: 0.9, Quality: 1})
}

// BestDesire returns the highest-expectation goal, or false if none.
func (c *Concept) BestDesire() (*sentence.Goal, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, g, ok := c.desires.PeekMax()
	return g, ok
}

// Beliefs returns a snapshot of every belief currently held, in no
// particular order. Used for introspection (query_concept, persistence),
// not the control cycle's sampling path.
func (c *Concept) Beliefs() []*sentence.Judgment {
	c.mu.Lock()
	defer c.mu.Unlock()
	keys := c.beliefs.Keys()
	out := make([]*sentence.Judgment, 0, len(keys))
	for _, k := range keys {
		if j, ok := c.beliefs.PeekUsingKey(k); ok {
			out = append(out, j)
		}
	}
	return out
}

// Desires returns a snapshot of every goal currently held.
func (c *Concept) Desires() []*sentence.Goal {
	c.mu.Lock()
	defer c.mu.Unlock()
	keys := c.desires.Keys()
	out := make([]*sentence.Goal, 0, len(keys))
	for _, k := range keys {
		if g, ok := c.desires.PeekUsingKey(k); ok {
			out = append(out, g)
		}
	}
	return out
}

// AddQuestion records an outstanding question about this concept's term.
func (c *Concept) AddQuestion(q *sentence.Question) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.questions = append(c.questions, q)
}

// AnswerQuestions matches j's term against every outstanding question and
// returns the ones it answers (spec.md §4.7 step 3's "record the answer via
// Choice" — Choice itself is applied by the caller across candidate
// answers, this just reports which questions j is a candidate answer for).
func (c *Concept) AnswerQuestions(j *sentence.Judgment) []*sentence.Question {
	c.mu.Lock()
	defer c.mu.Unlock()
	var answered []*sentence.Question
	remaining := c.questions[:0]
	for _, q := range c.questions {
		if q.Term() == j.Term() {
			answered = append(answered, q)
		} else {
			remaining = append(remaining, q)
		}
	}
	c.questions = remaining
	return answered
}
