// Package metrics provides lightweight, allocation-free telemetry for the
// control cycle and the inference rules it drives.
package metrics

import "sync/atomic"

// CycleMetrics tracks per-cycle control-loop counters (spec.md §4.7).
// Grounded on teacher's internal/metrics/probabilistic.go: a small struct of
// atomic.Int64 fields plus a GetStats snapshot, adapted from Bayesian-update
// counters to NARS control-cycle counters.
type CycleMetrics struct {
	cyclesTotal       atomic.Int64
	inputsAccepted    atomic.Int64
	inputsRejected    atomic.Int64
	derivationsTotal  atomic.Int64
	questionsAnswered atomic.Int64
	decisionsFired    atomic.Int64
	conceptsCreated   atomic.Int64
}

// NewCycleMetrics creates a new, zeroed cycle metrics tracker.
func NewCycleMetrics() *CycleMetrics {
	return &CycleMetrics{}
}

// RecordCycle records one DoWorkingCycle invocation.
func (m *CycleMetrics) RecordCycle() { m.cyclesTotal.Add(1) }

// RecordInputAccepted records a well-formed sentence queued via AddInput.
func (m *CycleMetrics) RecordInputAccepted() { m.inputsAccepted.Add(1) }

// RecordInputRejected records a malformed sentence refused by AddInput.
func (m *CycleMetrics) RecordInputRejected() { m.inputsRejected.Add(1) }

// RecordDerivation records one conclusion produced by the dispatcher (either
// TwoPremise or OnePremise).
func (m *CycleMetrics) RecordDerivation() { m.derivationsTotal.Add(1) }

// RecordQuestionAnswered records a question resolved via Choice.
func (m *CycleMetrics) RecordQuestionAnswered() { m.questionsAnswered.Add(1) }

// RecordDecisionFired records a goal whose Decision expectation cleared the
// engine's threshold.
func (m *CycleMetrics) RecordDecisionFired() { m.decisionsFired.Add(1) }

// RecordConceptCreated records a new concept entering memory, including
// concepts created implicitly as term-link neighbours.
func (m *CycleMetrics) RecordConceptCreated() { m.conceptsCreated.Add(1) }

// GetStats returns a snapshot of every counter.
func (m *CycleMetrics) GetStats() map[string]int64 {
	return map[string]int64{
		"cycles_total":       m.cyclesTotal.Load(),
		"inputs_accepted":    m.inputsAccepted.Load(),
		"inputs_rejected":    m.inputsRejected.Load(),
		"derivations_total":  m.derivationsTotal.Load(),
		"questions_answered": m.questionsAnswered.Load(),
		"decisions_fired":    m.decisionsFired.Load(),
		"concepts_created":   m.conceptsCreated.Load(),
	}
}

// DerivationsPerCycle returns the average number of derivations per cycle
// run so far, or 0 before the first cycle.
func (m *CycleMetrics) DerivationsPerCycle() float64 {
	cycles := m.cyclesTotal.Load()
	if cycles == 0 {
		return 0.0
	}
	return float64(m.derivationsTotal.Load()) / float64(cycles)
}

// RejectionRate returns the fraction of AddInput calls that were rejected.
func (m *CycleMetrics) RejectionRate() float64 {
	total := m.inputsAccepted.Load() + m.inputsRejected.Load()
	if total == 0 {
		return 0.0
	}
	return float64(m.inputsRejected.Load()) / float64(total)
}
