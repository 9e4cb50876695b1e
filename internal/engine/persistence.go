package engine

import (
	"errors"

	"nars/internal/sentence"
	"nars/internal/term"
	"nars/internal/truth"
)

// ErrNoPersister is returned by SaveMemory/LoadMemory when the engine was
// built without a Persister (Config.Persister left nil).
var ErrNoPersister = errors.New("engine: no persister configured")

// ConceptSnapshot is the serializable projection of one Concept: its term's
// canonical string plus every belief and desire it currently holds.
// Provenance (evidential base, derivation stamps) is intentionally dropped
// — a reloaded snapshot resumes reasoning as a fresh set of input
// judgments/goals, per spec.md §6's save/load being a convenience rather
// than an exact-state checkpoint.
type ConceptSnapshot struct {
	Term    string
	Beliefs []TruthSnapshot
	Desires []TruthSnapshot
}

// TruthSnapshot is a bare (frequency, confidence) pair.
type TruthSnapshot struct {
	F float64
	C float64
}

// Snapshot is the full persisted state of one Engine's memory.
type Snapshot struct {
	Concepts []ConceptSnapshot
}

// Persister is the storage boundary SaveMemory/LoadMemory write through.
// Grounded on teacher's internal/storage.Storage interface (a narrow,
// swappable persistence seam in front of the actual backend); the concrete
// modernc.org/sqlite-backed implementation lives in internal/persistence so
// this package stays free of a direct database dependency.
type Persister interface {
	Save(path string, snapshot Snapshot) error
	Load(path string) (Snapshot, error)
}

// SaveMemory serializes every concept currently in memory to path via the
// configured Persister.
func (e *Engine) SaveMemory(path string) error {
	if e.persister == nil {
		return ErrNoPersister
	}
	return e.persister.Save(path, e.snapshot())
}

// LoadMemory adds the snapshot stored at path to the engine's current
// memory. Memory is not cleared first: existing concepts are kept, and a
// loaded belief may be revised with an existing belief on the same term.
func (e *Engine) LoadMemory(path string) error {
	if e.persister == nil {
		return ErrNoPersister
	}
	snap, err := e.persister.Load(path)
	if err != nil {
		return err
	}
	e.restore(snap)
	return nil
}

func (e *Engine) snapshot() Snapshot {
	concepts := e.memory.All()
	out := make([]ConceptSnapshot, 0, len(concepts))
	for _, c := range concepts {
		cs := ConceptSnapshot{Term: c.Term().String()}
		for _, j := range c.Beliefs() {
			cs.Beliefs = append(cs.Beliefs, TruthSnapshot{F: j.Truth().F, C: j.Truth().C})
		}
		for _, g := range c.Desires() {
			cs.Desires = append(cs.Desires, TruthSnapshot{F: g.Desire().F, C: g.Desire().C})
		}
		out = append(out, cs)
	}
	return Snapshot{Concepts: out}
}

func (e *Engine) restore(snap Snapshot) {
	for _, cs := range snap.Concepts {
		t, err := term.FromString(cs.Term)
		if err != nil {
			continue // a snapshot written by an incompatible term grammar: skip, don't abort the whole load.
		}
		c := e.memory.Concept(t)
		for _, b := range cs.Beliefs {
			tv, err := truth.New(b.F, b.C)
			if err != nil {
				continue
			}
			c.AddBelief(sentence.NewJudgment(t, tv, nil))
		}
		for _, d := range cs.Desires {
			dv, err := truth.New(d.F, d.C)
			if err != nil {
				continue
			}
			c.AddDesire(sentence.NewGoal(t, dv, nil))
		}
	}
}
