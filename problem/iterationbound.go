package problem

import "github.com/katalvlaran/fixdataflow/point"

// Widen is a client-supplied over-approximation applied once a point has
// exceeded its iteration budget. It must return a value greater than or
// equal to any value the transfer function would itself have produced,
// and re-applying it to its own output must be a no-op under the
// problem's ChangeDetector (spec §4.6). The core cannot verify this
// contract; violating it is a silent-but-fatal client bug (spec §7).
type Widen[V any] func(args point.ArgTuple, current V) V

// IterationBound is the two-mode knob from spec §4.6: either rely on V's
// ascending-chain condition (NeverAbort), or force termination after n
// updates via a client-supplied Widen (AbortAfter).
type IterationBound[V any] struct {
	bounded bool
	n       uint32
	widen   Widen[V]
}

// NeverAbort relies on the ascending-chain condition of V for
// termination; every recompute invokes the transfer function.
func NeverAbort[V any]() IterationBound[V] {
	return IterationBound[V]{}
}

// AbortAfter replaces the transfer function's output with widen(args,
// currentValue) once a point has already been updated n times.
func AbortAfter[V any](n uint32, widen Widen[V]) IterationBound[V] {
	return IterationBound[V]{bounded: true, n: n, widen: widen}
}

// AbortWithTop is the convenience widening from spec §4.6: it always
// returns top, for lattices that have one.
func AbortWithTop[V any](n uint32, top V) IterationBound[V] {
	return AbortAfter[V](n, func(point.ArgTuple, V) V { return top })
}

// Params reports whether the bound is active and, if so, its threshold
// and widening function.
func (b IterationBound[V]) Params() (n uint32, widen Widen[V], ok bool) {
	if !b.bounded {
		return 0, nil, false
	}
	return b.n, b.widen, true
}
