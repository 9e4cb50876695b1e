package inference

import (
	"nars/internal/sentence"
	"nars/internal/truth"
)

// neutralTruth stands in for a question's missing truth value so it can be
// run through TwoPremise's structural classification. None of the
// two-premise rule functions gate on frequency (only the one-premise
// Conversion/Contraposition preconditions do, and PropagateQuestion never
// reaches those), so any valid TruthValue produces the same set of derived
// term shapes; its value is discarded by every caller.
var neutralTruth = truth.TruthValue{F: 0.5, C: 0.5}

// PropagateQuestion derives the questions a belief's shape licenses for an
// outstanding question q, per spec.md §4.4: "the dispatcher produces
// structurally identical derived questions (no truth value), so unanswered
// questions propagate through the inference graph." It reuses TwoPremise's
// classification by wrapping q's term in a throwaway Judgment, then keeps
// only the derived terms.
func PropagateQuestion(q *sentence.Question, belief *sentence.Judgment, k float64) []*sentence.Question {
	asJudgment := sentence.NewJudgment(q.Term(), neutralTruth, nil)
	derived := TwoPremise(asJudgment, belief, k)
	out := make([]*sentence.Question, 0, len(derived))
	for _, d := range derived {
		out = append(out, sentence.NewQuestion(d.Term()))
	}
	return out
}
