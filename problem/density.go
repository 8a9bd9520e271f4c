package problem

import "github.com/katalvlaran/fixdataflow/point"

// Density selects which graphstore backend a solve uses (spec §6):
// Sparse (map-indexed, the general case) or Dense (array-indexed, for
// clients that can declare an upper bound on NodeId).
type Density struct {
	dense     bool
	maxNodeId point.NodeId
}

// Sparse selects the hash/tree-map-backed graph store.
func Sparse() Density { return Density{} }

// Dense selects the array-indexed graph store, sized for node ids in
// [0, maxNodeId].
func Dense(maxNodeId point.NodeId) Density {
	return Density{dense: true, maxNodeId: maxNodeId}
}

// Params reports the backend choice and, for Dense, its bound.
func (d Density) Params() (dense bool, maxNodeId point.NodeId) {
	return d.dense, d.maxNodeId
}
