package graphstore

import "github.com/katalvlaran/fixdataflow/point"

// New constructs a fresh, empty Store: a DenseStore when dense is true
// (sized to maxNodeId), a SparseStore otherwise. Called once per
// solveProblem invocation (spec §3: "the environment is created fresh
// per solve").
func New[V any](dense bool, maxNodeId point.NodeId) Store[V] {
	if dense {
		return NewDense[V](maxNodeId)
	}
	return NewSparse[V]()
}
