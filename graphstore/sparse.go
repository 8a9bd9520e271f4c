package graphstore

import (
	"sync"

	"github.com/katalvlaran/fixdataflow/point"
)

/*
SparseStore — hash-map-indexed graph store.

Use case:
  The general case: node ids are not known to be bounded, or the client
  expects a large, sparsely-populated NodeId space (spec §4.3).

Complexity:
  Lookup/UpdatePoint: O(1) expected per touched point.
  LookupLT: O(k log k) where k is the number of known points at node.
*/
type SparseStore[V any] struct {
	mu    sync.Mutex
	nodes map[point.NodeId]*nodeTable[V]
}

// NewSparse returns an empty SparseStore.
func NewSparse[V any]() *SparseStore[V] {
	return &SparseStore[V]{nodes: make(map[point.NodeId]*nodeTable[V])}
}

func (s *SparseStore[V]) getTable(node point.NodeId) (*nodeTable[V], bool) {
	t, ok := s.nodes[node]
	return t, ok
}

func (s *SparseStore[V]) getOrCreateTable(node point.NodeId) *nodeTable[V] {
	t, ok := s.nodes[node]
	if !ok {
		t = newNodeTable[V]()
		s.nodes[node] = t
	}
	return t
}

func (s *SparseStore[V]) Lookup(p point.Point) (PointInfo[V], bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lookup[V](s, p)
}

func (s *SparseStore[V]) LookupLT(node point.NodeId, args point.ArgTuple) []ArgValue[V] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lookupLT[V](s, node, args)
}

func (s *SparseStore[V]) UpdatePoint(p point.Point, newValue V, newRefs []point.Point) PointInfo[V] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return updatePoint[V](s, p, newValue, newRefs)
}

var _ Store[int] = (*SparseStore[int])(nil)
