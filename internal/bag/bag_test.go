package bag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPutAndPeekUsingKey(t *testing.T) {
	b := New[string, int](10, nil)
	_, _, evicted, err := b.Put("a", 1, Budget{Priority: 0.5})
	require.NoError(t, err)
	assert.False(t, evicted)

	v, ok := b.PeekUsingKey("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestPutRejectsDuplicateKey(t *testing.T) {
	b := New[string, int](10, nil)
	_, _, _, err := b.Put("a", 1, Budget{Priority: 0.5})
	require.NoError(t, err)

	_, _, _, err = b.Put("a", 2, Budget{Priority: 0.9})
	assert.Error(t, err)
}

func TestCapacityEvictsMinimumPriority(t *testing.T) {
	b := New[string, int](2, nil)
	_, _, _, err := b.Put("low", 1, Budget{Priority: 0.1})
	require.NoError(t, err)
	_, _, _, err = b.Put("mid", 2, Budget{Priority: 0.5})
	require.NoError(t, err)

	evictedKey, evictedVal, evicted, err := b.Put("high", 3, Budget{Priority: 0.9})
	require.NoError(t, err)
	require.True(t, evicted)
	assert.Equal(t, "low", evictedKey)
	assert.Equal(t, 1, evictedVal)
	assert.Equal(t, 2, b.Len())
}

func TestPeekMax(t *testing.T) {
	b := New[string, int](10, nil)
	b.Put("low", 1, Budget{Priority: 0.1})
	b.Put("high", 2, Budget{Priority: 0.9})

	k, v, ok := b.PeekMax()
	require.True(t, ok)
	assert.Equal(t, "high", k)
	assert.Equal(t, 2, v)
}

func TestTakeUsingKeyRemoves(t *testing.T) {
	b := New[string, int](10, nil)
	b.Put("a", 1, Budget{Priority: 0.5})

	v, ok := b.TakeUsingKey("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = b.PeekUsingKey("a")
	assert.False(t, ok)
	assert.Equal(t, 0, b.Len())
}

func TestChangePriorityClampsAndReordersMax(t *testing.T) {
	b := New[string, int](10, nil)
	b.Put("a", 1, Budget{Priority: 0.2})
	b.Put("b", 2, Budget{Priority: 0.3})

	ok := b.ChangePriority("a", 5.0) // out of range, must clamp to 1
	require.True(t, ok)

	k, _, _ := b.PeekMax()
	assert.Equal(t, "a", k)
}

func TestStrengthenAndDecay(t *testing.T) {
	b := New[string, int](10, nil)
	b.Put("a", 1, Budget{Priority: 0.5})

	b.Strengthen("a", 0.4)
	v, ok := b.PeekUsingKey("a")
	require.True(t, ok)
	_ = v

	k, _, _ := b.PeekMax()
	assert.Equal(t, "a", k)

	b.Decay("a", 0.99)
	// priority now clamped to 0; still present until evicted by capacity.
	_, ok = b.PeekUsingKey("a")
	assert.True(t, ok)
}

func TestPeekUniformFallbackWhenWeightSumZero(t *testing.T) {
	b := New[string, int](10, nil)
	b.Put("a", 1, Budget{Priority: 0})
	b.Put("b", 2, Budget{Priority: 0})

	_, _, ok := b.Peek()
	assert.True(t, ok)
}

func TestPeekWeightedSamplingReturnsStoredItem(t *testing.T) {
	b := New[string, int](10, nil)
	b.Put("a", 1, Budget{Priority: 1.0})

	k, v, ok := b.Peek()
	require.True(t, ok)
	assert.Equal(t, "a", k)
	assert.Equal(t, 1, v)
}
