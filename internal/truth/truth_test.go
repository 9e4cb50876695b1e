package truth

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testK = 1.0

func TestNewValidatesRange(t *testing.T) {
	tests := []struct {
		name    string
		f, c    float64
		wantErr bool
	}{
		{"valid", 0.9, 0.5, false},
		{"f too low", -0.1, 0.5, true},
		{"f too high", 1.1, 0.5, true},
		{"c too low", 0.5, -0.1, true},
		{"c equals one rejected", 0.5, 1.0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.f, tt.c)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestExpectation(t *testing.T) {
	assert.InDelta(t, 0.5, Expectation(TruthValue{F: 0.5, C: 1}), 1e-9)
	assert.InDelta(t, 0.9, Expectation(TruthValue{F: 1, C: 0.8}), 1e-9)
	assert.InDelta(t, 0.5, Expectation(TruthValue{F: 1, C: 0}), 1e-9)
}

func TestDecide(t *testing.T) {
	strong := TruthValue{F: 0.95, C: 0.9}
	weak := TruthValue{F: 0.5, C: 0.9}
	assert.True(t, Decide(strong, 0.3))
	assert.False(t, Decide(weak, 0.3))
}

func TestEvidenceRoundTrip(t *testing.T) {
	orig := TruthValue{F: 0.8, C: 0.6}
	wp, w := EvidenceFromFreqConf(orig.F, orig.C, testK)
	back := TruthFromEvidence(wp, w, testK)
	assert.InDelta(t, orig.F, back.F, 1e-9)
	assert.InDelta(t, orig.C, back.C, 1e-9)
}

func TestDeduction(t *testing.T) {
	t1 := TruthValue{F: 0.9, C: 0.9}
	t2 := TruthValue{F: 0.8, C: 0.8}
	got := Deduction(t1, t2)
	assert.InDelta(t, 0.72, got.F, 1e-9)
	assert.InDelta(t, 0.72*0.9*0.8, got.C, 1e-9)
}

func TestRevisionAccumulatesConfidence(t *testing.T) {
	t1 := TruthValue{F: 0.9, C: 0.5}
	t2 := TruthValue{F: 0.9, C: 0.5}
	revised := Revision(t1, t2, testK)
	assert.Greater(t, revised.C, t1.C)
	assert.InDelta(t, 0.9, revised.F, 1e-9)
}

func TestNegation(t *testing.T) {
	got := Negation(TruthValue{F: 0.3, C: 0.6})
	assert.InDelta(t, 0.7, got.F, 1e-9)
	assert.InDelta(t, 0.6, got.C, 1e-9)
}

func TestIntersectionUnionDifference(t *testing.T) {
	a := TruthValue{F: 0.6, C: 0.8}
	b := TruthValue{F: 0.5, C: 0.7}

	inter := Intersection(a, b)
	assert.InDelta(t, 0.3, inter.F, 1e-9)

	union := Union(a, b)
	assert.InDelta(t, 0.6+0.5-0.3, union.F, 1e-9)

	diff := Difference(a, b)
	assert.InDelta(t, 0.6*0.5, diff.F, 1e-9)
}

func TestEternalizationAndProjection(t *testing.T) {
	present := TruthValue{F: 0.8, C: 0.6}

	eternal := Eternalization(present, testK)
	assert.InDelta(t, 0.8, eternal.F, 1e-9)
	assert.InDelta(t, 1/(testK+0.6), eternal.C, 1e-9)

	sameTime := Projection(present, 10, 10, 10)
	assert.Equal(t, present, sameTime)

	projected := Projection(present, 0, 10, 5)
	require.NotEqual(t, present.C, projected.C)
	assert.Less(t, projected.C, present.C)
}

func TestConversionRequiresPositiveEvidence(t *testing.T) {
	got := Conversion(TruthValue{F: 0.7, C: 0.5}, testK)
	assert.InDelta(t, 1.0, got.F, 1e-9) // wPlus == w by construction
	assert.Greater(t, got.C, 0.0)
}

func TestContrapositionZeroPositiveEvidence(t *testing.T) {
	got := Contraposition(TruthValue{F: 0.2, C: 0.9}, testK)
	assert.InDelta(t, 0, got.F, 1e-9)
}

func TestAbs(t *testing.T) {
	assert.Equal(t, math.Abs(-3.2), abs(-3.2))
	assert.Equal(t, math.Abs(3.2), abs(3.2))
}
