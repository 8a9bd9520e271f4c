package solver_test

import (
	"fmt"

	"github.com/katalvlaran/fixdataflow/lattice"
	"github.com/katalvlaran/fixdataflow/point"
	"github.com/katalvlaran/fixdataflow/problem"
	"github.com/katalvlaran/fixdataflow/solver"
)

// ExampleSolveProblem_fibonacci solves the acyclic Fibonacci recurrence
// of spec §8 scenario S3 over the naturals-under-max lattice.
func ExampleSolveProblem_fibonacci() {
	nat := lattice.Func[int]{
		BottomFn: func() int { return 0 },
		JoinFn: func(a, b int) int {
			if a > b {
				return a
			}
			return b
		},
	}

	prob := problem.New[int]()
	prob.Register(point.NodeId(0), func(problem.Env[int], point.ArgTuple) int { return 0 }, problem.DefaultChangeDetector[int]())
	prob.Register(point.NodeId(1), func(problem.Env[int], point.ArgTuple) int { return 1 }, problem.DefaultChangeDetector[int]())
	for n := 2; n <= 10; n++ {
		n := n
		prob.Register(point.NodeId(n), func(env problem.Env[int], _ point.ArgTuple) int {
			return env.DependOn(point.NodeId(n-1), point.Unit{}) + env.DependOn(point.NodeId(n-2), point.Unit{})
		}, problem.DefaultChangeDetector[int]())
	}

	root := point.Point{Node: point.NodeId(10), Args: point.Unit{}}
	result, err := solver.SolveProblem[int](nat, prob, problem.Sparse(), problem.NeverAbort[int](), root)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(result)
	// Output:
	// 55
}

// ExampleSolveProblem_widening shows AbortAfter forcing termination on a
// recurrence that never saturates on its own.
func ExampleSolveProblem_widening() {
	nat := lattice.Func[int]{
		BottomFn: func() int { return 0 },
		JoinFn: func(a, b int) int {
			if a > b {
				return a
			}
			return b
		},
	}

	prob := problem.New[int]()
	prob.Register(point.NodeId(0), func(env problem.Env[int], _ point.ArgTuple) int {
		return env.DependOn(point.NodeId(0), point.Unit{}) + 1
	}, problem.DefaultChangeDetector[int]())

	bound := problem.AbortAfter[int](5, func(_ point.ArgTuple, current int) int { return current })
	root := point.Point{Node: point.NodeId(0), Args: point.Unit{}}
	result, err := solver.SolveProblem[int](nat, prob, problem.Sparse(), bound, root)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(result)
	// Output:
	// 5
}
