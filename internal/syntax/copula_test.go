package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCopula(t *testing.T) {
	c, ok := ParseCopula("-->")
	assert.True(t, ok)
	assert.Equal(t, Inheritance, c)

	_, ok = ParseCopula("->")
	assert.False(t, ok)

	_, ok = ParseCopula("xyz")
	assert.False(t, ok)
}

func TestCopulaSymmetry(t *testing.T) {
	assert.True(t, Similarity.IsSymmetric())
	assert.True(t, Equivalence.IsSymmetric())
	assert.True(t, PredictiveEquivalence.IsSymmetric())
	assert.True(t, ConcurrentEquivalence.IsSymmetric())
	assert.False(t, Inheritance.IsSymmetric())
	assert.False(t, Implication.IsSymmetric())
	assert.False(t, PredictiveImplication.IsSymmetric())
}

func TestCopulaFirstOrder(t *testing.T) {
	assert.True(t, Inheritance.IsFirstOrder())
	assert.True(t, Similarity.IsFirstOrder())
	assert.False(t, Implication.IsFirstOrder())
	assert.False(t, Equivalence.IsFirstOrder())
}

func TestCopulaTemporal(t *testing.T) {
	assert.True(t, PredictiveImplication.IsTemporal())
	assert.True(t, ConcurrentImplication.IsTemporal())
	assert.True(t, RetrospectiveImplication.IsTemporal())
	assert.False(t, Inheritance.IsTemporal())
	assert.False(t, Implication.IsTemporal())
}
