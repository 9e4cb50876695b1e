package bag

import (
	"container/heap"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"nars/internal/nerr"
)

// Bag is the bounded, probabilistically-sampled priority container of
// spec.md §4.5. All mutating operations are guarded by a single mutex;
// spec.md §5 establishes the engine is single-threaded cooperative, so the
// lock exists for callers that share a Bag across goroutines at the
// embedding boundary (e.g. a server handler reading memory concurrently
// with the cycle goroutine), not to support concurrent cycles.
type Bag[K comparable, V any] struct {
	mu sync.Mutex

	items      map[K]*entry[K, V]
	minHeap    minPriorityHeap[K, V]
	maxHeap    maxPriorityHeap[K, V]
	weightSum  float64
	capacity   int
	weightFunc WeightFunc
	rng        *rand.Rand
}

// New builds an empty Bag with the given capacity and weight function. A
// nil weightFunc defaults to IdentityWeight.
func New[K comparable, V any](capacity int, weightFunc WeightFunc) *Bag[K, V] {
	if weightFunc == nil {
		weightFunc = IdentityWeight
	}
	b := &Bag[K, V]{
		items:      make(map[K]*entry[K, V]),
		capacity:   capacity,
		weightFunc: weightFunc,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	heap.Init(&b.minHeap)
	heap.Init(&b.maxHeap)
	return b
}

// Len returns the current number of items.
func (b *Bag[K, V]) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.items)
}

// Keys returns a snapshot of every key currently stored, in no particular
// order. Unlike Peek/PeekMax this is a full, non-probabilistic enumeration;
// it exists for admin-style introspection (persistence snapshotting,
// query_concept-style listing) rather than the cycle's sampling path.
func (b *Bag[K, V]) Keys() []K {
	b.mu.Lock()
	defer b.mu.Unlock()
	keys := make([]K, 0, len(b.items))
	for k := range b.items {
		keys = append(keys, k)
	}
	return keys
}

// Put inserts value under key with the given budget. It returns
// ErrDuplicateKey if key already exists — the caller, not the Bag, is
// responsible for not re-inserting a live key (spec.md §4.5). If the
// insertion pushes the Bag over capacity, the minimum-priority item is
// evicted and returned.
func (b *Bag[K, V]) Put(key K, value V, budget Budget) (evictedKey K, evictedValue V, evicted bool, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.items[key]; exists {
		return evictedKey, evictedValue, false, fmt.Errorf("key already present: %w", nerr.ErrDuplicateKey)
	}

	budget = budget.Clamp()
	e := &entry[K, V]{
		key:    key,
		value:  value,
		budget: budget,
		weight: b.weightFunc(budget.Priority),
	}
	b.items[key] = e
	heap.Push(&b.minHeap, e)
	heap.Push(&b.maxHeap, e)
	b.weightSum += e.weight

	if len(b.items) > b.capacity {
		min := heap.Pop(&b.minHeap).(*entry[K, V])
		heap.Remove(&b.maxHeap, min.maxIdx)
		delete(b.items, min.key)
		b.weightSum -= min.weight
		return min.key, min.value, true, nil
	}
	return evictedKey, evictedValue, false, nil
}

// PeekUsingKey returns the item stored under key without removing it.
func (b *Bag[K, V]) PeekUsingKey(key K) (V, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	e, ok := b.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	return e.value, true
}

// PeekMax returns the currently highest-priority item without removing it.
func (b *Bag[K, V]) PeekMax() (K, V, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.maxHeap) == 0 {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	top := b.maxHeap[0]
	return top.key, top.value, true
}

// TakeUsingKey removes and returns the item stored under key.
func (b *Bag[K, V]) TakeUsingKey(key K) (V, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	e, ok := b.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	removeBoth(&b.minHeap, &b.maxHeap, e)
	delete(b.items, key)
	b.weightSum -= e.weight
	return e.value, true
}

// ChangePriority sets key's budget priority to p (clamped to [0,1]),
// updating the weight vector, the weight sum, and both order heaps.
func (b *Bag[K, V]) ChangePriority(key K, p float64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	e, ok := b.items[key]
	if !ok {
		return false
	}
	e.budget.Priority = clamp01(p)
	newWeight := b.weightFunc(e.budget.Priority)
	b.weightSum += newWeight - e.weight
	e.weight = newWeight
	fixBoth(&b.minHeap, &b.maxHeap, e)
	return true
}

// Strengthen raises key's priority by delta (spec.md §4.7 step 4: items
// involved in a successful derivation are strengthened).
func (b *Bag[K, V]) Strengthen(key K, delta float64) bool {
	return b.adjustPriority(key, delta)
}

// Decay lowers key's priority by delta (spec.md §4.7 step 4: touched items
// decay each cycle).
func (b *Bag[K, V]) Decay(key K, delta float64) bool {
	return b.adjustPriority(key, -delta)
}

func (b *Bag[K, V]) adjustPriority(key K, delta float64) bool {
	b.mu.Lock()
	e, ok := b.items[key]
	if !ok {
		b.mu.Unlock()
		return false
	}
	newPriority := e.budget.Priority + delta
	b.mu.Unlock()
	return b.ChangePriority(key, newPriority)
}

// Peek samples a key from the weight distribution (uniform over all keys
// if the total weight is 0) and returns its stored item without removal.
func (b *Bag[K, V]) Peek() (K, V, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.peekProbabilistically()
}

// peekProbabilistically mirrors NARSDataStructures/Bag.py's
// _peek_probabilistically: a cumulative-weight scan, with a uniform
// fallback when every weight is zero. Must be called with b.mu held.
func (b *Bag[K, V]) peekProbabilistically() (K, V, bool) {
	n := len(b.minHeap)
	if n == 0 {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}

	if b.weightSum <= 0 {
		chosen := b.minHeap[b.rng.Intn(n)]
		return chosen.key, chosen.value, true
	}

	threshold := b.rng.Float64() * b.weightSum
	var cumulative float64
	for _, e := range b.minHeap {
		cumulative += e.weight
		if cumulative >= threshold {
			return e.key, e.value, true
		}
	}
	last := b.minHeap[n-1]
	return last.key, last.value, true
}
