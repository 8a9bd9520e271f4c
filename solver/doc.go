// Package solver's only exported entry point is SolveProblem. Env is
// exported, but its only exported method is DependOn, which implements
// the problem.Env[V] interface — a transfer function only ever sees it
// through that interface.
package solver
