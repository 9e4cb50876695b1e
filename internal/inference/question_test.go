package inference

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nars/internal/sentence"
)

func TestPropagateQuestionDerivesFromMatchingBelief(t *testing.T) {
	q := sentence.NewQuestion(mustTerm(t, "(sparrow --> bird)"))
	belief := sentence.NewJudgment(mustTerm(t, "(bird --> animal)"), tv(t, 0.9, 0.9), nil)

	derived := PropagateQuestion(q, belief, 1.0)
	require.NotEmpty(t, derived)
	for _, d := range derived {
		assert.Equal(t, sentence.QuestionKind, d.Kind())
	}
}

func TestPropagateQuestionEmptyOnCopulaMismatch(t *testing.T) {
	q := sentence.NewQuestion(mustTerm(t, "(sparrow --> bird)"))
	belief := sentence.NewJudgment(mustTerm(t, "(rain ==> wet)"), tv(t, 0.9, 0.9), nil)

	derived := PropagateQuestion(q, belief, 1.0)
	assert.Empty(t, derived)
}
