package graphstore

import (
	"sort"

	"github.com/katalvlaran/fixdataflow/point"
)

// lookup implements Store.Lookup against any tableAccessor.
func lookup[V any](a tableAccessor[V], p point.Point) (PointInfo[V], bool) {
	t, ok := a.getTable(p.Node)
	if !ok {
		return PointInfo[V]{}, false
	}
	r, ok := t.byArgs[p.Args.Key()]
	if !ok {
		return PointInfo[V]{}, false
	}
	return r.snapshot(), true
}

// lookupLT implements Store.LookupLT against any tableAccessor.
func lookupLT[V any](a tableAccessor[V], node point.NodeId, args point.ArgTuple) []ArgValue[V] {
	t, ok := a.getTable(node)
	if !ok {
		return nil
	}
	var out []ArgValue[V]
	for _, r := range t.byArgs {
		if r.args.Compare(args) < 0 {
			out = append(out, ArgValue[V]{Args: r.args, Info: r.snapshot()})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Args.Compare(out[j].Args) < 0 })
	return out
}

// updatePoint implements Store.UpdatePoint against any tableAccessor.
// This is the single place graph invariant (1) — reference/referrer
// symmetry — is restored (spec §4.3).
func updatePoint[V any](a tableAccessor[V], p point.Point, newValue V, newRefs []point.Point) PointInfo[V] {
	t := a.getOrCreateTable(p.Node)
	r, existed := t.byArgs[p.Args.Key()]
	if !existed {
		r = newRecord[V](p.Args)
		t.byArgs[p.Args.Key()] = r
	}
	old := r.snapshot()

	newRefSet := make(map[string]point.Point, len(newRefs))
	for _, q := range newRefs {
		newRefSet[q.Key()] = q
	}

	// Lost references: q was consulted last time but not this time.
	// Drop p from q's referrers.
	for k, q := range r.references {
		if _, stillRef := newRefSet[k]; stillRef {
			continue
		}
		qt := a.getOrCreateTable(q.Node)
		if qr, ok := qt.byArgs[q.Args.Key()]; ok {
			delete(qr.referrers, p.Key())
		}
	}
	// Gained references: q is consulted this time but wasn't before.
	// Add p to q's referrers, creating q's record if undiscovered.
	for k, q := range newRefSet {
		if _, wasRef := r.references[k]; wasRef {
			continue
		}
		qt := a.getOrCreateTable(q.Node)
		qr, ok := qt.byArgs[q.Args.Key()]
		if !ok {
			qr = newRecord[V](q.Args)
			qt.byArgs[q.Args.Key()] = qr
		}
		qr.referrers[p.Key()] = p
	}

	r.references = newRefSet
	r.value = newValue
	r.hasValue = true
	r.iterations++

	return old
}
