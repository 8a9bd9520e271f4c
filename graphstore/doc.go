// Package graphstore backends are selected at solve time by
// solver.SolveProblem via New, which mirrors the Dense/Sparse choice a
// client makes through problem.Density.
package graphstore
