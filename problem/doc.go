// Package problem is consumed, not implemented, by solver: a
// DataFlowProblem is built once (directly via Register/AllocateNode, or
// through the higher-level problembuilder package) and then handed to
// solver.SolveProblem, which treats it as read-only for the duration of
// one solve (spec §3).
package problem
