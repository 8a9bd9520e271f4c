package solver

import (
	"fmt"

	"github.com/katalvlaran/fixdataflow/graphstore"
	"github.com/katalvlaran/fixdataflow/internal/fault"
	"github.com/katalvlaran/fixdataflow/lattice"
	"github.com/katalvlaran/fixdataflow/point"
	"github.com/katalvlaran/fixdataflow/problem"
)

// SolveProblem is the solver's single entry point (spec §6). It creates
// a fresh ExecutionEnv seeded with root as the sole unstable point, runs
// the scheduler to a fixed point, and returns root's final value.
//
// It is a solver invariant that root has a value on exit. A root whose
// node has no registered transfer function is reported as
// ErrMissingTransferFunction when the scheduler first recomputes it; if
// the post-condition check still finds no value at root, SolveProblem
// returns ErrRootHasNoValue rather than a zero V, so callers can
// distinguish "the root's value is V's zero value" from "the solve never
// assigned the root a value at all".
func SolveProblem[V any](
	lat lattice.Lattice[V],
	prob *problem.DataFlowProblem[V],
	density problem.Density,
	bound problem.IterationBound[V],
	root point.Point,
	opts ...Option,
) (result V, err error) {
	defer fault.Recover(&err)

	if prob == nil {
		var zero V
		return zero, ErrNilProblem
	}

	cfg := resolveConfig(opts)
	dense, maxNodeId := density.Params()
	store := graphstore.New[V](dense, maxNodeId)
	env := newEnv[V](lat, prob, bound, store, cfg)

	env.unstable.Add(root)
	env.work()

	info, ok := store.Lookup(root)
	if !ok || !info.HasValue {
		var zero V
		return zero, fmt.Errorf("%w: %+v", ErrRootHasNoValue, root)
	}
	return info.Value, nil
}
