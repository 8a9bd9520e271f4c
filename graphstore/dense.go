package graphstore

import (
	"errors"
	"fmt"
	"sync"

	"github.com/katalvlaran/fixdataflow/internal/fault"
	"github.com/katalvlaran/fixdataflow/point"
)

// ErrNodeOutOfBound is raised (as a fault.Fatal, recovered at
// solver.SolveProblem's boundary) when a client touches a NodeId beyond
// the bound declared via problem.Dense(maxNodeId). This is a usage
// error: the client promised an upper bound and a transfer function or
// problem-builder allocation broke that promise.
var ErrNodeOutOfBound = errors.New("graphstore: node id exceeds declared dense bound")

/*
DenseStore — array-indexed graph store.

Use case:
  The client declares an upper bound on NodeId up front (spec §4.3);
  this lets the store use a flat, growable slice indexed directly by
  NodeId instead of a hash map, trading flexibility for speed.

Complexity:
  Lookup/UpdatePoint: O(1) per touched point, no hashing of NodeId.
  LookupLT: O(k log k) where k is the number of known points at node.
*/
type DenseStore[V any] struct {
	mu        sync.Mutex
	nodes     []*nodeTable[V]
	maxNodeId point.NodeId
}

// NewDense returns an empty DenseStore sized for node ids in
// [0, maxNodeId].
func NewDense[V any](maxNodeId point.NodeId) *DenseStore[V] {
	return &DenseStore[V]{
		nodes:     make([]*nodeTable[V], maxNodeId+1),
		maxNodeId: maxNodeId,
	}
}

func (s *DenseStore[V]) checkBound(node point.NodeId) {
	if node > s.maxNodeId {
		fault.Raise(fmt.Errorf("%w: node %d, bound %d", ErrNodeOutOfBound, node, s.maxNodeId))
	}
}

func (s *DenseStore[V]) getTable(node point.NodeId) (*nodeTable[V], bool) {
	s.checkBound(node)
	t := s.nodes[node]
	return t, t != nil
}

func (s *DenseStore[V]) getOrCreateTable(node point.NodeId) *nodeTable[V] {
	s.checkBound(node)
	if s.nodes[node] == nil {
		s.nodes[node] = newNodeTable[V]()
	}
	return s.nodes[node]
}

func (s *DenseStore[V]) Lookup(p point.Point) (PointInfo[V], bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lookup[V](s, p)
}

func (s *DenseStore[V]) LookupLT(node point.NodeId, args point.ArgTuple) []ArgValue[V] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lookupLT[V](s, node, args)
}

func (s *DenseStore[V]) UpdatePoint(p point.Point, newValue V, newRefs []point.Point) PointInfo[V] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return updatePoint[V](s, p, newValue, newRefs)
}

var _ Store[int] = (*DenseStore[int])(nil)
