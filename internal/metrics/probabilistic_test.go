package metrics_test

import (
	"sync"
	"testing"

	"nars/internal/metrics"
)

func TestNewRevisionMetrics(t *testing.T) {
	m := metrics.NewRevisionMetrics()
	if m == nil {
		t.Fatal("NewRevisionMetrics returned nil")
	}

	stats := m.GetStats()
	if stats["revisions_total"] != 0 {
		t.Errorf("Expected initial revisions_total = 0, got %d", stats["revisions_total"])
	}
	if stats["beliefs_created"] != 0 {
		t.Errorf("Expected initial beliefs_created = 0, got %d", stats["beliefs_created"])
	}
}

func TestRevisionMetrics_RecordRevision(t *testing.T) {
	m := metrics.NewRevisionMetrics()

	for i := 0; i < 5; i++ {
		m.RecordRevision()
	}

	stats := m.GetStats()
	if stats["revisions_total"] != 5 {
		t.Errorf("Expected revisions_total = 5, got %d", stats["revisions_total"])
	}
	if stats["beliefs_revised"] != 5 {
		t.Errorf("Expected beliefs_revised = 5, got %d", stats["beliefs_revised"])
	}
	if stats["revisions_rejected"] != 0 {
		t.Errorf("Expected revisions_rejected = 0, got %d", stats["revisions_rejected"])
	}
}

func TestRevisionMetrics_RecordRejected(t *testing.T) {
	m := metrics.NewRevisionMetrics()

	for i := 0; i < 3; i++ {
		m.RecordRejected()
	}

	stats := m.GetStats()
	if stats["revisions_total"] != 3 {
		t.Errorf("Expected revisions_total = 3, got %d", stats["revisions_total"])
	}
	if stats["revisions_rejected"] != 3 {
		t.Errorf("Expected revisions_rejected = 3, got %d", stats["revisions_rejected"])
	}
}

func TestRevisionMetrics_RecordBeliefCreated(t *testing.T) {
	m := metrics.NewRevisionMetrics()

	for i := 0; i < 10; i++ {
		m.RecordBeliefCreated()
	}

	stats := m.GetStats()
	if stats["beliefs_created"] != 10 {
		t.Errorf("Expected beliefs_created = 10, got %d", stats["beliefs_created"])
	}
}

func TestRevisionMetrics_GetRejectionRate(t *testing.T) {
	tests := []struct {
		name         string
		accepted     int
		rejected     int
		expectedRate float64
	}{
		{"no operations", 0, 0, 0.0},
		{"all accepted", 10, 0, 0.0},
		{"half rejected", 5, 5, 0.5},
		{"all rejected", 0, 10, 1.0},
		{"one rejected", 99, 1, 0.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := metrics.NewRevisionMetrics()

			for i := 0; i < tt.accepted; i++ {
				m.RecordRevision()
			}
			for i := 0; i < tt.rejected; i++ {
				m.RecordRejected()
			}

			rate := m.GetRejectionRate()
			if rate != tt.expectedRate {
				t.Errorf("Expected rate = %.2f, got %.2f", tt.expectedRate, rate)
			}
		})
	}
}

func TestRevisionMetrics_ConcurrentAccess(t *testing.T) {
	m := metrics.NewRevisionMetrics()

	const numGoroutines = 100
	var wg sync.WaitGroup
	wg.Add(numGoroutines * 3)

	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			m.RecordRevision()
		}()
	}
	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			m.RecordRejected()
		}()
	}
	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			m.RecordBeliefCreated()
		}()
	}

	wg.Wait()

	stats := m.GetStats()
	if stats["revisions_total"] != numGoroutines*2 {
		t.Errorf("Expected revisions_total = %d, got %d", numGoroutines*2, stats["revisions_total"])
	}
	if stats["beliefs_created"] != numGoroutines {
		t.Errorf("Expected beliefs_created = %d, got %d", numGoroutines, stats["beliefs_created"])
	}
}
