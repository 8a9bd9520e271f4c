package graphstore

import (
	"sort"

	"github.com/katalvlaran/fixdataflow/point"
)

// record holds one point's mutable state inside a nodeTable.
type record[V any] struct {
	args       point.ArgTuple
	value      V
	hasValue   bool
	iterations uint32
	references map[string]point.Point // key -> point this record last consulted
	referrers  map[string]point.Point // key -> point that last consulted this one
}

func newRecord[V any](args point.ArgTuple) *record[V] {
	return &record[V]{
		args:       args,
		references: make(map[string]point.Point),
		referrers:  make(map[string]point.Point),
	}
}

func (r *record[V]) snapshot() PointInfo[V] {
	return PointInfo[V]{
		Value:      r.value,
		HasValue:   r.hasValue,
		References: sortedPoints(r.references),
		Referrers:  sortedPoints(r.referrers),
		Iterations: r.iterations,
	}
}

func sortedPoints(m map[string]point.Point) []point.Point {
	if len(m) == 0 {
		return nil
	}
	out := make([]point.Point, 0, len(m))
	for _, p := range m {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Compare(out[j]) < 0 })
	return out
}

// nodeTable holds every known point for a single NodeId.
type nodeTable[V any] struct {
	byArgs map[string]*record[V]
}

func newNodeTable[V any]() *nodeTable[V] {
	return &nodeTable[V]{byArgs: make(map[string]*record[V])}
}

// tableAccessor abstracts over the Dense and Sparse backends' differing
// storage of per-node tables, so the point-level algorithm in shared.go
// (lookup/lookupLT/updatePoint) is written exactly once.
type tableAccessor[V any] interface {
	getTable(node point.NodeId) (*nodeTable[V], bool)
	getOrCreateTable(node point.NodeId) *nodeTable[V]
}
