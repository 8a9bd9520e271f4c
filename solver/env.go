// Package solver implements the scheduler core: the recompute and
// dependOn primitives, the main worklist loop, and the widening gate
// (spec §4.4–§4.7). It is the algorithms layer of this module, sitting
// on top of a core package pair: the "core" is graphstore plus point,
// and this package is what actually drives them to a fixed point.
package solver

import (
	"fmt"

	"github.com/katalvlaran/fixdataflow/graphstore"
	"github.com/katalvlaran/fixdataflow/internal/fault"
	"github.com/katalvlaran/fixdataflow/lattice"
	"github.com/katalvlaran/fixdataflow/point"
	"github.com/katalvlaran/fixdataflow/problem"
)

// Env is the process-wide state of one solveProblem call (spec §3's
// ExecutionEnv). It is created fresh per solve and torn down on return;
// no state outlives a solve. Env implements problem.Env[V] so transfer
// functions call DependOn directly on the value they are handed.
type Env[V any] struct {
	lat     lattice.Lattice[V]
	prob    *problem.DataFlowProblem[V]
	bound   problem.IterationBound[V]
	store   graphstore.Store[V]
	tracing tracing
	metrics *Metrics

	callStack   *point.Set
	frames      []*point.Set // saved outer current_refs frames, innermost last
	currentRefs *point.Set
	unstable    *point.Worklist
}

func newEnv[V any](lat lattice.Lattice[V], prob *problem.DataFlowProblem[V], bound problem.IterationBound[V], store graphstore.Store[V], cfg *Config) *Env[V] {
	return &Env[V]{
		lat:         lat,
		prob:        prob,
		bound:       bound,
		store:       store,
		tracing:     newTracing(cfg.tracer),
		metrics:     cfg.metrics,
		callStack:   point.NewSet(),
		currentRefs: point.NewSet(),
		unstable:    point.NewWorklist(),
	}
}

// DependOn implements problem.Env[V] (spec §4.4's dependOn primitive).
func (e *Env[V]) DependOn(node point.NodeId, args point.ArgTuple) V {
	q := point.Point{Node: node, Args: args}

	// Step 1: record the reference unconditionally, before any other
	// decision — this is the reference-tracking contract.
	e.currentRefs.Add(q)

	cycle := e.callStack.Contains(q)
	info, known := e.store.Lookup(q)

	if !known || !info.HasValue {
		if cycle {
			// We are inside the evaluation of q transitively: break the
			// cycle with the optimistic approximation rather than
			// recursing forever.
			return e.optimisticApproximation(q)
		}
		// Undiscovered and not on the call stack: descend eagerly
		// (scheme 2, spec §4.4).
		return e.recompute(q)
	}

	// q already has a value, whether settled, merely unstable, or
	// mid-cycle: return it as-is. Eagerly re-descending into a
	// not-yet-stable q here would hand the caller a transient value from
	// q's current pass instead of the value q converges to a few
	// worklist rounds later, which silently corrupts callers that read
	// q more than once per transfer invocation. Convergence for an
	// unstable q happens through the worklist re-enqueuing this point's
	// referrers once q actually changes, not through forcing a second
	// recompute here.
	return info.Value
}

// recompute re-evaluates p, installs the result, and propagates the
// change to referrers if needed (spec §4.4's recompute primitive).
func (e *Env[V]) recompute(p point.Point) V {
	endSpan := e.tracing.startRecompute(p)
	defer endSpan()
	e.metrics.recordRecompute()

	e.enterCall(p)
	defer e.exitCall(p)

	newValue, widened := e.evaluate(p)
	if widened {
		e.metrics.recordWidening()
	}

	refs := e.currentRefs.Items()
	old := e.store.UpdatePoint(p, newValue, refs)
	e.unstable.Remove(p)
	e.metrics.setWorklistDepth(e.unstable.Len())

	changed := true
	if old.HasValue {
		detector, ok := e.prob.ChangeDetectorFor(p.Node)
		if ok {
			changed = detector(old.Value, newValue)
		}
	}
	if changed {
		for _, r := range old.Referrers {
			e.unstable.Add(r)
		}
		if containsPoint(refs, p) {
			// Self-loop: old_info.referrers may not yet list p if this
			// is the first time p referenced itself (spec §4.4 step 6).
			e.unstable.Add(p)
		}
		e.metrics.setWorklistDepth(e.unstable.Len())
	}

	return newValue
}

// evaluate runs either the widening function or the transfer function
// for p, depending on the iteration bound and p's current state.
func (e *Env[V]) evaluate(p point.Point) (value V, widened bool) {
	info, _ := e.store.Lookup(p)
	if n, widen, ok := e.bound.Params(); ok && info.HasValue && info.Iterations >= n {
		return widen(p.Args, info.Value), true
	}

	transfer, ok := e.prob.Transfer(p.Node)
	if !ok {
		fault.Raise(fmt.Errorf("%w: node %d", ErrMissingTransferFunction, p.Node))
	}
	return transfer(e, p.Args), false
}

// optimisticApproximation breaks a cycle with the join of all
// already-discovered points of q's node whose ArgTuple is strictly less
// than q's (spec §4.5); the join of an empty set is bottom.
func (e *Env[V]) optimisticApproximation(q point.Point) V {
	acc := e.lat.Bottom()
	for _, av := range e.store.LookupLT(q.Node, q.Args) {
		if av.Info.HasValue {
			acc = e.lat.Join(acc, av.Info.Value)
		}
	}
	return acc
}

// work drains the worklist, recomputing the highest-priority point each
// iteration until none remain (spec §4.4's work primitive).
func (e *Env[V]) work() {
	for {
		p, ok := e.unstable.Pop()
		if !ok {
			return
		}
		e.recompute(p)
	}
}

func (e *Env[V]) enterCall(p point.Point) {
	e.callStack.Add(p)
	e.frames = append(e.frames, e.currentRefs)
	e.currentRefs = point.NewSet()
}

func (e *Env[V]) exitCall(p point.Point) {
	e.callStack.Remove(p)
	n := len(e.frames)
	e.currentRefs = e.frames[n-1]
	e.frames = e.frames[:n-1]
}

// containsPoint compares by Key rather than ==: ArgTuple implementations
// are free to be slice-backed (e.g. point.IntArgs), which makes the
// Point struct itself incomparable with ==.
func containsPoint(ps []point.Point, target point.Point) bool {
	key := target.Key()
	for _, p := range ps {
		if p.Key() == key {
			return true
		}
	}
	return false
}
