package solver_test

import (
	"testing"

	"github.com/katalvlaran/fixdataflow/lattice"
	"github.com/katalvlaran/fixdataflow/point"
	"github.com/katalvlaran/fixdataflow/problem"
	"github.com/katalvlaran/fixdataflow/solver"
)

// BenchmarkSolveProblem_SumChain1000 measures recompute throughput on a
// 1,000-node acyclic dependency chain (the S5 shape), the common case of
// a deep but non-cyclic dependency graph.
func BenchmarkSolveProblem_SumChain1000(b *testing.B) {
	const n = 1000
	nat := lattice.Func[int]{
		BottomFn: func() int { return 0 },
		JoinFn: func(a, c int) int {
			if a > c {
				return a
			}
			return c
		},
	}

	prob := problem.New[int]()
	prob.Register(point.NodeId(0), func(problem.Env[int], point.ArgTuple) int { return 0 }, problem.DefaultChangeDetector[int]())
	for i := 1; i <= n; i++ {
		i := i
		prob.Register(point.NodeId(i), func(env problem.Env[int], _ point.ArgTuple) int {
			return i + env.DependOn(point.NodeId(i-1), point.Unit{})
		}, problem.DefaultChangeDetector[int]())
	}
	root := point.Point{Node: point.NodeId(n), Args: point.Unit{}}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := solver.SolveProblem[int](nat, prob, problem.Dense(point.NodeId(n)), problem.NeverAbort[int](), root)
		if err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSolveProblem_SelfLoopWidening measures the widening gate's
// steady-state cost once a self-loop has hit its iteration bound.
func BenchmarkSolveProblem_SelfLoopWidening(b *testing.B) {
	nat := lattice.Func[int]{
		BottomFn: func() int { return 0 },
		JoinFn: func(a, c int) int {
			if a > c {
				return a
			}
			return c
		},
	}

	prob := problem.New[int]()
	prob.Register(point.NodeId(0), func(env problem.Env[int], _ point.ArgTuple) int {
		return env.DependOn(point.NodeId(0), point.Unit{}) + 1
	}, problem.DefaultChangeDetector[int]())
	bound := problem.AbortAfter[int](5, func(_ point.ArgTuple, current int) int { return current })
	root := point.Point{Node: point.NodeId(0), Args: point.Unit{}}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := solver.SolveProblem[int](nat, prob, problem.Sparse(), bound, root)
		if err != nil {
			b.Fatal(err)
		}
	}
}
