package engine

import (
	"github.com/google/uuid"

	"nars/internal/bag"
	"nars/internal/sentence"
	"nars/internal/truth"
)

// Task wraps a Sentence with the budget it carries through the experience
// bag, and whether it originated from embedder input (as opposed to being
// derived by the dispatcher) — spec.md §4.6/§4.7.
type Task struct {
	Sentence sentence.Sentence
	Budget   bag.Budget
	IsInput  bool
}

func (t *Task) id() uuid.UUID { return t.Sentence.GetStamp().ID }

// defaultPriority picks a Task's initial priority from its sentence kind:
// a Judgment/Goal's expectation (confident, high-expectation sentences
// deserve attention sooner), a Question's fixed priority (there is no
// truth value to compute an expectation from).
func defaultPriority(s sentence.Sentence) float64 {
	switch v := s.(type) {
	case *sentence.Judgment:
		return truth.Expectation(v.Truth())
	case *sentence.Goal:
		return truth.Expectation(v.Desire())
	default:
		return 0.8
	}
}

func newTask(s sentence.Sentence, isInput bool) *Task {
	return &Task{
		Sentence: s,
		Budget:   bag.Budget{Priority: defaultPriority(s), Durability: 0.9, Quality: 1},
		IsInput:  isInput,
	}
}
