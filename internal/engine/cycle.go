package engine

import (
	"nars/internal/inference"
	"nars/internal/rules"
	"nars/internal/sentence"
	"nars/internal/syntax"
	"nars/internal/term"
)

const (
	strengthenDelta = 0.05
	decayDelta      = 0.02
)

// DoWorkingCycle runs the five-step control cycle of spec.md §4.7:
//  1. intake: at most one pending input line is parsed and inserted as a
//     Task.
//  2. main step: a Task is sampled from the experience bag, the Concept
//     for its term is looked up (created, with its term-links, if new),
//     and a second, related belief is sampled from a term-linked
//     neighbour concept, or from the task's own concept when no
//     neighbour holds a belief.
//  3. dispatch: the sampled task and belief are run through the two-premise
//     rules, each derivation is then run through the one-premise rules,
//     and any outstanding question either sampled task or belief answers
//     is recorded via Choice; unanswered questions propagate structurally.
//  4. reinforcement: the sampled task's concept is strengthened when
//     this cycle derived something from it and decayed otherwise; no
//     other concept or belief priority changes.
//  5. the cycle counter advances.
//
// Grounded on original_source/NARSInferenceEngine.py's do_working_cycle,
// adapted from its single global Memory object to this package's
// Engine/Memory/Concept split.
func (e *Engine) DoWorkingCycle() {
	e.metrics.Cycle.RecordCycle()
	e.intake()

	_, task, taskOK := e.experience.Peek()
	if !taskOK {
		e.cycleCount++
		return
	}
	c := e.memory.Concept(task.Sentence.Term())
	belief, beliefOK := e.sampleRelatedBelief(task.Sentence.Term())

	touchedBeliefs := 0

	switch s := task.Sentence.(type) {
	case *sentence.Judgment:
		if beliefOK {
			touchedBeliefs += e.dispatchJudgments(s, belief)
		}
		e.recordIfAnswers(s)
	case *sentence.Goal:
		e.considerGoal(s)
	case *sentence.Question:
		c.AddQuestion(s)
		if beliefOK {
			for _, derived := range inference.PropagateQuestion(s, belief, e.k) {
				e.memory.Concept(derived.Term()).AddQuestion(derived)
			}
			if answered := c.AnswerQuestions(belief); len(answered) > 0 {
				e.recordAnswer(belief)
			}
		}
	}

	e.reinforce(task.Sentence.Term(), touchedBeliefs)
	e.cycleCount++
}

// intake parses and enqueues at most one pending input line per cycle
// (spec.md §4.7 step 1), resolving a tense marker to a concrete occurrence
// time using the engine's own cycle counter — the one piece of context
// Parse itself cannot supply.
func (e *Engine) intake() {
	if len(e.pending) == 0 {
		return
	}
	raw := e.pending[0]
	e.pending = e.pending[1:]

	parsed, err := sentence.Parse(raw)
	if err != nil {
		return
	}

	var occurrence *float64
	if parsed.Tense != syntax.TenseNone {
		now := float64(e.cycleCount)
		occurrence = &now
	}

	var s sentence.Sentence
	switch parsed.Punctuation {
	case syntax.Judgment:
		tv := sentence.DefaultJudgmentTruth
		if parsed.Truth != nil {
			tv = *parsed.Truth
		}
		j := sentence.NewJudgment(parsed.Term, tv, occurrence)
		s = e.memory.FileBelief(j)
	case syntax.Goal:
		dv := sentence.DefaultJudgmentTruth
		if parsed.Truth != nil {
			dv = *parsed.Truth
		}
		g := sentence.NewGoal(parsed.Term, dv, occurrence)
		e.memory.Concept(parsed.Term).AddDesire(g)
		s = g
	case syntax.Question:
		q := sentence.NewQuestion(parsed.Term)
		e.memory.Concept(parsed.Term).AddQuestion(q)
		s = q
	default:
		return
	}

	task := newTask(s, true)
	e.experience.Put(task.id(), task, task.Budget)
}

// dispatchJudgments runs task against belief through the two-premise
// rules, then each derivation through the one-premise rules, inserting
// every surviving conclusion back into memory as a new derived Task. It
// returns the number of belief-table insertions it triggered (a proxy for
// "beliefs touched this cycle", used by reinforce).
func (e *Engine) dispatchJudgments(task *sentence.Judgment, belief *sentence.Judgment) int {
	touched := 0
	for _, derived := range inference.TwoPremise(task, belief, e.k) {
		e.insertDerivation(derived)
		touched++
		for _, onePremise := range inference.OnePremise(derived, e.k) {
			e.insertDerivation(onePremise)
			touched++
		}
		e.recordIfAnswers(derived)
	}
	return touched
}

// recordDerivationMetrics feeds a freshly derived judgment into the rule
// usage collector and, for the Revision rule specifically, the dedicated
// revision counters (spec.md §4.3).
func (e *Engine) recordDerivationMetrics(j *sentence.Judgment) {
	e.metrics.Cycle.RecordDerivation()
	e.metrics.Rules.RecordDerivation(j)
	if j.GetStamp().DerivedBy == "Revision" {
		e.metrics.Revisions.RecordRevision()
	}
}

// insertDerivation files a freshly derived judgment into its concept's
// belief table (and its subterm concepts', per FileBelief) and queues it
// as a derived Task so it can itself participate in future cycles'
// dispatch.
func (e *Engine) insertDerivation(j *sentence.Judgment) {
	e.recordDerivationMetrics(j)
	stored := e.memory.FileBelief(j)
	task := newTask(stored, false)
	e.experience.Put(task.id(), task, task.Budget)
}

// sampleRelatedBelief draws the control cycle's second premise: a belief
// sampled from a concept term-linked to t (spec.md §4.6's propagation
// means a neighbor concept such as "bird" holds beliefs about statements
// mentioning bird, giving dispatch a structurally related second premise),
// falling back to t's own concept when it has no linked neighbors or they
// hold no beliefs.
func (e *Engine) sampleRelatedBelief(t term.Term) (*sentence.Judgment, bool) {
	for _, neighbor := range e.memory.Neighbors(t) {
		if b, ok := neighbor.SampleBelief(); ok {
			return b, true
		}
	}
	return e.memory.Concept(t).SampleBelief()
}

// considerGoal applies the Decision rule (spec.md §4.2) to a sampled Goal:
// a goal that clears the expectation threshold is recorded as desired by
// its concept; this engine does not itself execute operations, matching
// spec.md's Non-goals for an embedding-library boundary.
func (e *Engine) considerGoal(g *sentence.Goal) {
	c := e.memory.Concept(g.Term())
	c.AddDesire(g)
	if rules.Decision(g.Desire(), e.threshold) {
		e.metrics.Cycle.RecordDecisionFired()
	}
}

// recordIfAnswers checks j against every outstanding question on its own
// concept and records it as the best answer so far via Choice.
func (e *Engine) recordIfAnswers(j *sentence.Judgment) {
	c := e.memory.Concept(j.Term())
	if answered := c.AnswerQuestions(j); len(answered) > 0 {
		e.recordAnswer(j)
	}
}

func (e *Engine) recordAnswer(j *sentence.Judgment) {
	key := j.Term().String()
	e.metrics.Cycle.RecordQuestionAnswered()
	if existing, ok := e.answers[key]; ok {
		e.answers[key] = rules.Choice(existing, j)
		return
	}
	e.answers[key] = j
}

// Answer returns the best recorded answer to a question about t, if any.
func (e *Engine) Answer(t term.Term) (*sentence.Judgment, bool) {
	j, ok := e.answers[t.String()]
	return j, ok
}

// reinforce strengthens touchedTerm's concept when this cycle derived
// something from it, and decays it otherwise (spec.md §4.7 step 4). Decay
// is applied only to the concept sampled this cycle rather than a full
// memory scan: AIKR rules out unbounded per-cycle work, so untouched
// concepts elsewhere in memory simply keep their priority until they are
// themselves sampled.
func (e *Engine) reinforce(touchedTerm term.Term, beliefsTouched int) {
	if beliefsTouched > 0 {
		e.memory.StrengthenConcept(touchedTerm, strengthenDelta)
		return
	}
	e.memory.DecayConcept(touchedTerm, decayDelta)
}
