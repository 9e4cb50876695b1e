package bag

import "container/heap"

// entry is the shared node both the min-heap and max-heap index into,
// mirroring the teacher's doubly-linked-list entry[K,V] node shape
// (pkg/cache/lru.go) but indexed by two heaps instead of threaded by a
// single recency list.
type entry[K comparable, V any] struct {
	key    K
	value  V
	budget Budget
	weight float64
	minIdx int
	maxIdx int
}

// minPriorityHeap and maxPriorityHeap together form the "auxiliary
// double-ended priority queue keyed by raw priority" spec.md §4.5 calls
// for: eviction pops the minimum, peek_max reads the maximum, and a single
// change_priority call fixes both.

type minPriorityHeap[K comparable, V any] []*entry[K, V]

func (h minPriorityHeap[K, V]) Len() int            { return len(h) }
func (h minPriorityHeap[K, V]) Less(i, j int) bool  { return h[i].budget.Priority < h[j].budget.Priority }
func (h minPriorityHeap[K, V]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].minIdx = i
	h[j].minIdx = j
}
func (h *minPriorityHeap[K, V]) Push(x any) {
	e := x.(*entry[K, V])
	e.minIdx = len(*h)
	*h = append(*h, e)
}
func (h *minPriorityHeap[K, V]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	e.minIdx = -1
	return e
}

type maxPriorityHeap[K comparable, V any] []*entry[K, V]

func (h maxPriorityHeap[K, V]) Len() int            { return len(h) }
func (h maxPriorityHeap[K, V]) Less(i, j int) bool  { return h[i].budget.Priority > h[j].budget.Priority }
func (h maxPriorityHeap[K, V]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].maxIdx = i
	h[j].maxIdx = j
}
func (h *maxPriorityHeap[K, V]) Push(x any) {
	e := x.(*entry[K, V])
	e.maxIdx = len(*h)
	*h = append(*h, e)
}
func (h *maxPriorityHeap[K, V]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	e.maxIdx = -1
	return e
}

func fixBoth[K comparable, V any](min *minPriorityHeap[K, V], max *maxPriorityHeap[K, V], e *entry[K, V]) {
	heap.Fix(min, e.minIdx)
	heap.Fix(max, e.maxIdx)
}

func removeBoth[K comparable, V any](min *minPriorityHeap[K, V], max *maxPriorityHeap[K, V], e *entry[K, V]) {
	heap.Remove(min, e.minIdx)
	heap.Remove(max, e.maxIdx)
}
