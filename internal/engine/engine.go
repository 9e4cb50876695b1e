// Package engine implements the control cycle of spec.md §4.7: the
// Engine value owning memory, the experience bag, and the cycle counter,
// and the embedding API (AddInput/DoCycle/CyclesElapsed/SaveMemory/
// LoadMemory/QueryConcept) of spec.md §6. Grounded on teacher
// `cmd/server/main.go`'s component-construction style for NewEngine, and
// `internal/orchestration/workflow.go`'s sequential step-runner (adapted
// from a tool-call workflow to the five fixed cycle stages) for
// DoWorkingCycle.
package engine

import (
	"context"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"nars/internal/bag"
	"nars/internal/concept"
	"nars/internal/graphmirror"
	"nars/internal/metrics"
	"nars/internal/sentence"
	"nars/internal/term"
)

// Config bundles every tunable the engine and its memory need at boot.
// Grounded on teacher's internal/config layered-precedence Config struct
// (see internal/config/config.go); cmd/nars/main.go fills one from the
// loaded internal/config Config.
type Config struct {
	// K is the system evidential constant (spec.md §4.2) used by Revision
	// and every evidence-based truth function.
	K float64
	// DecisionThreshold is the expectation threshold the Decision rule
	// compares a desire's expectation against (spec.md §4.2).
	DecisionThreshold float64

	ExperienceCapacity int
	ConceptCapacity    int
	BeliefCapacity     int
	DesireCapacity     int

	// EnableSemanticFallback turns on concept.Memory's optional chromem-go
	// neighbour search (SPEC_FULL.md §4.6 DOMAIN expansion).
	EnableSemanticFallback bool

	// Persister backs SaveMemory/LoadMemory. Nil is valid: those two calls
	// then return ErrNoPersister.
	Persister Persister

	// Metrics collects control-cycle and rule telemetry. Nil is valid: New
	// then allocates a fresh, private Metrics bundle.
	Metrics *metrics.Metrics

	// GraphMirror, if set, mirrors every concept and term-link created into
	// an external Neo4j graph (SPEC_FULL.md §6 DOMAIN expansion). Nil
	// (the default) disables mirroring entirely.
	GraphMirror *graphmirror.Mirror
}

// DefaultConfig returns reasonable boot defaults.
func DefaultConfig() Config {
	return Config{
		K:                  1.0,
		DecisionThreshold:  0.5,
		ExperienceCapacity: 1000,
		ConceptCapacity:    10000,
		BeliefCapacity:     7,
		DesireCapacity:     7,
	}
}

// Engine is the reasoning core: memory, the experience bag of pending
// Tasks, the process-wide cycle counter, and the intake queue of raw
// (unparsed) input lines. Per spec.md §5's concurrency model, an Engine is
// confined to one goroutine; its own fields carry no internal locking,
// matching the "single-owner" design note.
type Engine struct {
	memory     *concept.Memory
	experience *bag.Bag[uuid.UUID, *Task]

	pending []string // raw intake queue (spec.md §5: the sole external-facing buffer)

	cycleCount uint64
	k          float64
	threshold  float64

	answers   map[string]*sentence.Judgment // best answer so far, by question term string
	persister Persister
	metrics   *metrics.Metrics
}

// New builds an Engine from cfg.
func New(cfg Config) *Engine {
	m := cfg.Metrics
	if m == nil {
		m = metrics.New()
	}
	mirror := cfg.GraphMirror
	return &Engine{
		memory: concept.NewMemory(concept.Config{
			ConceptCapacity:        cfg.ConceptCapacity,
			BeliefCapacity:         cfg.BeliefCapacity,
			DesireCapacity:         cfg.DesireCapacity,
			K:                      cfg.K,
			EnableSemanticFallback: cfg.EnableSemanticFallback,
			OnConceptCreated: func(t term.Term) {
				m.Cycle.RecordConceptCreated()
				if mirror != nil {
					_ = mirror.UpsertConcept(context.Background(), t.String())
				}
			},
			OnLinkCreated: func(from, to term.Term) {
				if mirror != nil {
					_ = mirror.UpsertLink(context.Background(), from.String(), to.String())
				}
			},
		}),
		experience: bag.New[uuid.UUID, *Task](cfg.ExperienceCapacity, bag.IdentityWeight),
		cycleCount: 0,
		k:          cfg.K,
		threshold:  cfg.DecisionThreshold,
		answers:    make(map[string]*sentence.Judgment),
		persister:  cfg.Persister,
		metrics:    m,
	}
}

// Metrics returns the engine's telemetry bundle.
func (e *Engine) Metrics() *metrics.Metrics { return e.metrics }

// Result reports what AddInput did with one line of raw text.
type Result struct {
	Accepted bool
	Message  string
}

// reserved input words intercepted before Narsese parsing (spec.md §6),
// pinned to original_source/InputBuffer.py's add_input_string.
const (
	wordCount = "count"
	wordCycle = "cycle"
	wordSave  = "save"
	wordLoad  = "load"

	defaultSnapshotPath = "nars_memory.snapshot"
)

// AddInput accepts one line of raw text: a reserved word, handled
// immediately, or a Narsese sentence, parsed and queued for the next
// cycle's intake step.
func (e *Engine) AddInput(raw string) Result {
	trimmed := strings.TrimSpace(raw)
	switch trimmed {
	case wordCount:
		return Result{Accepted: true, Message: e.countMessage()}
	case wordCycle:
		return Result{Accepted: true, Message: e.cycleMessage()}
	case wordSave:
		if err := e.SaveMemory(defaultSnapshotPath); err != nil {
			return Result{Accepted: false, Message: err.Error()}
		}
		return Result{Accepted: true, Message: "memory saved"}
	case wordLoad:
		if err := e.LoadMemory(defaultSnapshotPath); err != nil {
			return Result{Accepted: false, Message: err.Error()}
		}
		return Result{Accepted: true, Message: "memory loaded"}
	}

	if _, err := sentence.Parse(trimmed); err != nil {
		e.metrics.Cycle.RecordInputRejected()
		return Result{Accepted: false, Message: err.Error()}
	}
	e.metrics.Cycle.RecordInputAccepted()
	e.pending = append(e.pending, trimmed)
	return Result{Accepted: true, Message: "queued"}
}

func (e *Engine) countMessage() string {
	return "concepts: " + itoa(e.memory.Len()) + ", tasks: " + itoa(e.experience.Len())
}

func (e *Engine) cycleMessage() string {
	return "cycle: " + itoa(int(e.cycleCount))
}

// CyclesElapsed returns the number of completed working cycles.
func (e *Engine) CyclesElapsed() uint64 { return e.cycleCount }

// QueryConcept returns the concept currently held for t, if any.
func (e *Engine) QueryConcept(t term.Term) (*concept.Concept, bool) {
	c, err := e.memory.Lookup(t)
	if err != nil {
		return nil, false
	}
	return c, true
}

// DoCycle runs exactly one working cycle to completion (spec.md §6's
// do_cycle() -> unit).
func (e *Engine) DoCycle() { e.DoWorkingCycle() }

func itoa(n int) string { return strconv.Itoa(n) }
