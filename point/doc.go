// Package point's containers are used by ExecutionEnv for the call stack
// and reference frame, and by the scheduler for the worklist; the graph
// store keys its own per-point records by Point.Key. None of these types
// are safe for
// concurrent use — the solver's resource model is strictly sequential
// within a single solveProblem call (spec §5).
package point
