// Package graphstore implements the two interchangeable graph-store
// backends of spec §4.3: Dense (array-indexed by NodeId, for clients
// that declare an upper bound) and Sparse (map-indexed, for the general
// case). Both share one Store contract so the scheduler never needs to
// know which backend it is driving (spec §9's "existential graph-ref
// parameter", here replaced by runtime dispatch over an interface, the
// way an adjacency-list graph and an array-backed adjacency matrix can
// sit behind the same dispatch for the same algorithms).
package graphstore

import "github.com/katalvlaran/fixdataflow/point"

// PointInfo is an immutable snapshot of a point's record (spec §3).
// Value is only meaningful when HasValue is true; HasValue is false only
// while the point is on the call stack with no prior value (cycle in
// progress) or entirely undiscovered.
type PointInfo[V any] struct {
	Value      V
	HasValue   bool
	References []point.Point
	Referrers  []point.Point
	Iterations uint32
}

// ArgValue pairs an ArgTuple with the PointInfo found at that argument,
// returned by LookupLT.
type ArgValue[V any] struct {
	Args point.ArgTuple
	Info PointInfo[V]
}

// Store is the contract both graph-store backends implement (spec §4.3).
type Store[V any] interface {
	// Lookup returns the current PointInfo for p, or false if p has never
	// been updated by UpdatePoint and never appeared in the reference set
	// passed to an UpdatePoint call for another point.
	Lookup(p point.Point) (PointInfo[V], bool)

	// LookupLT enumerates all known points at node whose ArgTuple is
	// strictly less than args under the tuple's total order, sorted
	// ascending by that order for determinism (spec §4.2's lookup_lt,
	// used by the optimistic approximation in spec §4.5).
	LookupLT(node point.NodeId, args point.ArgTuple) []ArgValue[V]

	// UpdatePoint atomically installs newValue and newRefs at p,
	// restoring the references/referrers symmetry invariant (spec
	// invariant 1) by diffing the prior reference set against newRefs
	// and adjusting the referrers of every gained or lost neighbour. It
	// returns the PointInfo as it stood immediately before this call (an
	// empty PointInfo, HasValue=false, if p was previously unknown), and
	// increments p's iteration count.
	UpdatePoint(p point.Point, newValue V, newRefs []point.Point) PointInfo[V]
}
