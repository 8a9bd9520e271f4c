// Package problem holds the external interfaces a client supplies to the
// solver (spec §6): the data-flow problem itself (a mapping from NodeId
// to a transfer function and a change detector), the density and
// iteration-bound knobs passed to solveProblem, and the Env contract a
// transfer function is handed to call dependOn.
package problem

import (
	"sync"

	"github.com/katalvlaran/fixdataflow/point"
)

// Env is the ambient context a TransferFunc is handed. It is the
// client-visible face of solver.ExecutionEnv: calling DependOn is the
// only way a transfer function may consult another point's value (spec
// §4.4, §9's "ambient dependency monad").
type Env[V any] interface {
	// DependOn records a reference to (node, args) and returns its
	// current best-known value, recursively triggering recompute or
	// breaking a cycle with the optimistic approximation as needed.
	DependOn(node point.NodeId, args point.ArgTuple) V
}

// TransferFunc computes the value at a point from the values at other
// points, consulted exclusively through env.DependOn. It must be
// monotone with respect to every value it reads; the core does not
// verify this (spec §4.1).
type TransferFunc[V any] func(env Env[V], args point.ArgTuple) V

// ChangeDetector decides whether two successive values at a point differ
// enough to require propagating the change to referrers. It need not be
// equality, but if it returns false, the solver treats the point as
// stable with respect to its referrers (spec §4.1). DefaultChangeDetector
// gives the permissive `old != new` behaviour for comparable types.
type ChangeDetector[V any] func(old, new V) bool

// DefaultChangeDetector returns a ChangeDetector that reports a change
// whenever old != new, the permissive default spec §4.1 describes.
func DefaultChangeDetector[V comparable]() ChangeDetector[V] {
	return func(old, new V) bool { return old != new }
}

// DataFlowProblem maps each NodeId to its TransferFunc and ChangeDetector.
// It is constant for the lifetime of one solve (spec §3) but may be built
// up incrementally beforehand via Register/AllocateNode.
type DataFlowProblem[V any] struct {
	mu       sync.RWMutex
	transfer map[point.NodeId]TransferFunc[V]
	change   map[point.NodeId]ChangeDetector[V]
	nextNode point.NodeId
}

// New returns an empty DataFlowProblem.
func New[V any]() *DataFlowProblem[V] {
	return &DataFlowProblem[V]{
		transfer: make(map[point.NodeId]TransferFunc[V]),
		change:   make(map[point.NodeId]ChangeDetector[V]),
	}
}

// Register binds node to transfer and change, overwriting any prior
// binding. Most clients allocate nodes through AllocateNode instead of
// calling Register directly with a hand-picked id.
func (p *DataFlowProblem[V]) Register(node point.NodeId, transfer TransferFunc[V], change ChangeDetector[V]) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.transfer[node] = transfer
	p.change[node] = change
}

// AllocateNode reserves a fresh NodeId, hands it to f so the transfer
// function can close over its own identity (tying the recursive knot —
// spec §6's allocateNode contract), registers the result, and returns the
// new id.
func (p *DataFlowProblem[V]) AllocateNode(change ChangeDetector[V], f func(self point.NodeId) TransferFunc[V]) point.NodeId {
	p.mu.Lock()
	id := p.nextNode
	p.nextNode++
	p.mu.Unlock()

	p.Register(id, f(id), change)
	return id
}

// Transfer looks up the TransferFunc registered for node.
func (p *DataFlowProblem[V]) Transfer(node point.NodeId) (TransferFunc[V], bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	fn, ok := p.transfer[node]
	return fn, ok
}

// ChangeDetectorFor looks up the ChangeDetector registered for node.
func (p *DataFlowProblem[V]) ChangeDetectorFor(node point.NodeId) (ChangeDetector[V], bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	fn, ok := p.change[node]
	return fn, ok
}
