package point

import "container/heap"

/*
Worklist — priority-ordered unstable-point queue.

Description:
  Supports "pop highest-priority", where priority is NodeId descending,
  ties broken by the ArgTuple total order (spec §4.2). Client problem
  builders allocate ids in post-order over the syntactic structure being
  analysed, so the largest id corresponds to the innermost expression;
  popping highest-NodeId-first gives an inside-out iteration order that
  converges faster for typical data-flow problems (spec §4.2 rationale).

Membership:
  A point may be Add-ed while already queued; Add is then a no-op so the
  heap never carries duplicate live entries. Remove marks a point absent
  without touching the heap directly; a later Pop silently discards any
  heap entry whose point is no longer present. This lazy-deletion scheme
  mirrors a heap-plus-visited-set priority queue (e.g. Dijkstra's).
*/

// Worklist is the unstable-point priority queue (spec §3's `unstable`).
// Not safe for concurrent use.
type Worklist struct {
	present map[string]struct{}
	heap    pointHeap
}

// NewWorklist returns an empty Worklist.
func NewWorklist() *Worklist {
	w := &Worklist{present: make(map[string]struct{})}
	heap.Init(&w.heap)
	return w
}

// Add enqueues p if it is not already present.
func (w *Worklist) Add(p Point) {
	if _, ok := w.present[p.Key()]; ok {
		return
	}
	w.present[p.Key()] = struct{}{}
	heap.Push(&w.heap, p)
}

// Remove dequeues p without requiring a Pop.
func (w *Worklist) Remove(p Point) {
	delete(w.present, p.Key())
}

// Contains reports whether p is currently queued.
func (w *Worklist) Contains(p Point) bool {
	_, ok := w.present[p.Key()]
	return ok
}

// Len reports the number of distinct points currently queued.
func (w *Worklist) Len() int { return len(w.present) }

// Pop removes and returns the highest-priority queued point. The second
// return value is false when the worklist is empty.
func (w *Worklist) Pop() (Point, bool) {
	for w.heap.Len() > 0 {
		p := heap.Pop(&w.heap).(Point)
		if _, ok := w.present[p.Key()]; ok {
			delete(w.present, p.Key())
			return p, true
		}
		// Stale entry left behind by a Remove call; discard and keep popping.
	}
	return Point{}, false
}

// pointHeap orders Points by NodeId descending, ArgTuple ascending on
// ties, implementing container/heap.Interface.
type pointHeap []Point

func (h pointHeap) Len() int { return len(h) }
func (h pointHeap) Less(i, j int) bool {
	if h[i].Node != h[j].Node {
		return h[i].Node > h[j].Node // highest NodeId first
	}
	return h[i].Args.Compare(h[j].Args) < 0
}
func (h pointHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *pointHeap) Push(x interface{}) {
	*h = append(*h, x.(Point))
}
func (h *pointHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
