package metrics

// Metrics bundles every telemetry tracker the engine keeps, so a caller
// needs only one field to thread through the control cycle and the
// embedding API's future introspection surface (spec.md §6).
type Metrics struct {
	Cycle     *CycleMetrics
	Rules     *Collector
	Revisions *RevisionMetrics
}

// New creates a fresh, zeroed Metrics bundle.
func New() *Metrics {
	return &Metrics{
		Cycle:     NewCycleMetrics(),
		Rules:     NewCollector(),
		Revisions: NewRevisionMetrics(),
	}
}
