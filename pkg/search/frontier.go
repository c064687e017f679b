package search

import "container/heap"

// entry is a discovered cell waiting in the frontier.
type entry struct {
	cell int // row-major grid index
	g    int // edges from start
	h    int // Manhattan distance to the goal
	seq  int // insertion counter, breaks ties
}

// frontier is the active set of discovered, not-yet-expanded cells. The
// discipline of pop is the only thing that differs between strategies.
type frontier interface {
	push(e entry)
	pop() entry
	len() int
}

// newFrontier returns the frontier discipline for algo.
func newFrontier(algo Algorithm, capacity int) frontier {
	switch algo {
	case DFS:
		return &stack{items: make([]entry, 0, capacity)}
	case Greedy:
		return newPriorityQueue(capacity, lessGreedy)
	case AStar:
		return newPriorityQueue(capacity, lessAStar)
	default:
		return &queue{items: make([]entry, 0, capacity)}
	}
}

// =============================================================================
// FIFO / LIFO
// =============================================================================

// queue pops the oldest entry first.
type queue struct {
	items []entry
	head  int
}

func (q *queue) push(e entry) { q.items = append(q.items, e) }

func (q *queue) pop() entry {
	e := q.items[q.head]
	q.head++
	return e
}

func (q *queue) len() int { return len(q.items) - q.head }

// stack pops the newest entry first.
type stack struct {
	items []entry
}

func (s *stack) push(e entry) { s.items = append(s.items, e) }

func (s *stack) pop() entry {
	n := len(s.items) - 1
	e := s.items[n]
	s.items = s.items[:n]
	return e
}

func (s *stack) len() int { return len(s.items) }

// =============================================================================
// Priority queue
// =============================================================================

// lessGreedy orders by heuristic only, then insertion order.
func lessGreedy(a, b entry) bool {
	if a.h != b.h {
		return a.h < b.h
	}
	return a.seq < b.seq
}

// lessAStar orders by f = g + h, then by h, then insertion order.
func lessAStar(a, b entry) bool {
	fa, fb := a.g+a.h, b.g+b.h
	if fa != fb {
		return fa < fb
	}
	if a.h != b.h {
		return a.h < b.h
	}
	return a.seq < b.seq
}

// priorityQueue is a binary heap of entries. Superseded entries are not
// removed; the search skips them when they surface.
type priorityQueue struct {
	items entryHeap
}

func newPriorityQueue(capacity int, less func(a, b entry) bool) *priorityQueue {
	return &priorityQueue{items: entryHeap{items: make([]entry, 0, capacity), less: less}}
}

func (pq *priorityQueue) push(e entry) { heap.Push(&pq.items, e) }

func (pq *priorityQueue) pop() entry { return heap.Pop(&pq.items).(entry) }

func (pq *priorityQueue) len() int { return pq.items.Len() }

// entryHeap implements heap.Interface.
type entryHeap struct {
	items []entry
	less  func(a, b entry) bool
}

func (h entryHeap) Len() int           { return len(h.items) }
func (h entryHeap) Less(i, j int) bool { return h.less(h.items[i], h.items[j]) }
func (h entryHeap) Swap(i, j int)      { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *entryHeap) Push(x any) {
	h.items = append(h.items, x.(entry))
}

func (h *entryHeap) Pop() any {
	old := h.items
	n := len(old)
	e := old[n-1]
	h.items = old[:n-1]
	return e
}
