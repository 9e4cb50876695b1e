package metrics

import "sync/atomic"

// RevisionMetrics tracks the Revision rule's traffic: how often two beliefs
// about the same term are combined, and how often a combination is refused
// because the premises already share evidence (spec.md §4.3's
// already-interacted guard). Grounded on teacher's
// internal/metrics/probabilistic.go ProbabilisticMetrics, adapted from
// Bayesian belief-update counters to NARS belief-revision counters.
type RevisionMetrics struct {
	revisionsTotal    atomic.Int64
	revisionsRejected atomic.Int64
	beliefsCreated    atomic.Int64
	beliefsRevised    atomic.Int64
}

// NewRevisionMetrics creates a new revision metrics tracker.
func NewRevisionMetrics() *RevisionMetrics {
	return &RevisionMetrics{}
}

// RecordRevision records a successful application of the Revision rule.
func (m *RevisionMetrics) RecordRevision() {
	m.revisionsTotal.Add(1)
	m.beliefsRevised.Add(1)
}

// RecordRejected records a Revision attempt refused because the two
// premises already share evidence in their evidential base.
func (m *RevisionMetrics) RecordRejected() {
	m.revisionsTotal.Add(1)
	m.revisionsRejected.Add(1)
}

// RecordBeliefCreated records a belief entering a concept's table for the
// first time (as opposed to revising an existing one).
func (m *RevisionMetrics) RecordBeliefCreated() {
	m.beliefsCreated.Add(1)
}

// GetStats returns a snapshot of every counter.
func (m *RevisionMetrics) GetStats() map[string]int64 {
	return map[string]int64{
		"revisions_total":    m.revisionsTotal.Load(),
		"revisions_rejected": m.revisionsRejected.Load(),
		"beliefs_created":    m.beliefsCreated.Load(),
		"beliefs_revised":    m.beliefsRevised.Load(),
	}
}

// GetRejectionRate returns the fraction of Revision attempts that were
// rejected as already-interacted.
func (m *RevisionMetrics) GetRejectionRate() float64 {
	total := m.revisionsTotal.Load()
	if total == 0 {
		return 0.0
	}
	return float64(m.revisionsRejected.Load()) / float64(total)
}
