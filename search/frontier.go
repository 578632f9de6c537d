package search

import "github.com/oleiade/lane/v2"

// frontier is the open set: a min-priority structure over packed
// (f, sequence) priorities. Pop must only be called while Len() > 0.
type frontier[S any] interface {
	Push(value S, priority int64)
	Pop() (S, int64)
	Len() int
}

// heapFrontier is the default implementation, backed by lane's binary
// min-heap.
type heapFrontier[S any] struct {
	q *lane.PriorityQueue[S, int64]
	n int
}

func newHeapFrontier[S any]() *heapFrontier[S] {
	return &heapFrontier[S]{q: lane.NewMinPriorityQueue[S, int64]()}
}

func (h *heapFrontier[S]) Push(value S, priority int64) {
	h.q.Push(value, priority)
	h.n++
}

func (h *heapFrontier[S]) Pop() (S, int64) {
	value, priority, _ := h.q.Pop()
	h.n--
	return value, priority
}

func (h *heapFrontier[S]) Len() int { return h.n }
