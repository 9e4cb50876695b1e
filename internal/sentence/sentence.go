package sentence

import (
	"fmt"

	"nars/internal/nerr"
	"nars/internal/syntax"
	"nars/internal/term"
	"nars/internal/truth"
)

// Kind distinguishes the three sentence punctuation classes.
type Kind int

const (
	JudgmentKind Kind = iota
	GoalKind
	QuestionKind
)

func (k Kind) Punctuation() syntax.Punctuation {
	switch k {
	case GoalKind:
		return syntax.Goal
	case QuestionKind:
		return syntax.Question
	default:
		return syntax.Judgment
	}
}

// Sentence is satisfied by Judgment, Goal and Question.
type Sentence interface {
	Term() term.Term
	Kind() Kind
	GetStamp() *Stamp
	String() string
}

// Judgment is a term believed true with some truth value.
type Judgment struct {
	term  term.Term
	truth truth.TruthValue
	stamp *Stamp
}

// NewJudgment builds a freshly input Judgment (not a derivation).
func NewJudgment(t term.Term, tv truth.TruthValue, occurrenceTime *float64) *Judgment {
	return &Judgment{term: t, truth: tv, stamp: NewInputStamp(occurrenceTime)}
}

func (j *Judgment) Term() term.Term       { return j.term }
func (j *Judgment) Kind() Kind            { return JudgmentKind }
func (j *Judgment) GetStamp() *Stamp      { return j.stamp }
func (j *Judgment) Truth() truth.TruthValue { return j.truth }

func (j *Judgment) String() string {
	return fmt.Sprintf("%s%c %%%.2f;%.2f%%", j.term.String(), syntax.Judgment, j.truth.F, j.truth.C)
}

// Goal is a term desired with some desire value.
type Goal struct {
	term   term.Term
	desire truth.DesireValue
	stamp  *Stamp
}

// NewGoal builds a freshly input Goal.
func NewGoal(t term.Term, dv truth.DesireValue, occurrenceTime *float64) *Goal {
	return &Goal{term: t, desire: dv, stamp: NewInputStamp(occurrenceTime)}
}

func (g *Goal) Term() term.Term        { return g.term }
func (g *Goal) Kind() Kind             { return GoalKind }
func (g *Goal) GetStamp() *Stamp       { return g.stamp }
func (g *Goal) Desire() truth.DesireValue { return g.desire }

func (g *Goal) String() string {
	return fmt.Sprintf("%s%c %%%.2f;%.2f%%", g.term.String(), syntax.Goal, g.desire.F, g.desire.C)
}

// Question is a term whose truth or desire value is unknown and sought.
type Question struct {
	term  term.Term
	stamp *Stamp
}

// NewQuestion builds a freshly input Question.
func NewQuestion(t term.Term) *Question {
	return &Question{term: t, stamp: NewInputStamp(nil)}
}

func (q *Question) Term() term.Term  { return q.term }
func (q *Question) Kind() Kind       { return QuestionKind }
func (q *Question) GetStamp() *Stamp { return q.stamp }

func (q *Question) String() string {
	return fmt.Sprintf("%s%c", q.term.String(), syntax.Question)
}

// DerivedJudgmentFromTwoPremises builds the Judgment a two-premise rule
// derives from j1 and j2's terms/truth values and stamps, rejecting the
// derivation if the premises' evidential bases overlap or if they have
// already interacted. It does not itself call MarkInteracted — a single
// dispatch over one premise pair may call this many times (once per rule
// the pairing licenses), so the caller that owns the whole dispatch marks
// interaction once, after every rule for the pair has run.
func DerivedJudgmentFromTwoPremises(resultTerm term.Term, tv truth.TruthValue, s1, s2 *Stamp, rule string) (*Judgment, error) {
	if s1.HasInteractedWith(s2) {
		return nil, fmt.Errorf("premises already interacted: %w", nerr.ErrRuleNotApplicable)
	}
	stamp, err := deriveTwoPremise(s1, s2, rule)
	if err != nil {
		return nil, err
	}
	return &Judgment{term: resultTerm, truth: tv, stamp: stamp}, nil
}

// DerivedJudgmentFromOnePremise builds the Judgment a one-premise rule
// derives from j's term/truth value and stamp.
func DerivedJudgmentFromOnePremise(resultTerm term.Term, tv truth.TruthValue, s *Stamp, rule string) *Judgment {
	return &Judgment{term: resultTerm, truth: tv, stamp: deriveOnePremise(s, rule)}
}
