// Package problembuilder is the thin node-allocation layer spec.md §6
// describes only at the interface (allocateNode): a convenience wrapper
// around problem.DataFlowProblem.AllocateNode for clients that assemble a
// DataFlowProblem by walking a syntactic structure (e.g. an expression
// tree) and tying each recursive binding to the Node its own transfer
// function will later be registered under.
//
// One entry point (Builder.Allocate) backed by functional options
// resolved once into an immutable config, the same orchestrator-plus-
// options shape as a BuildGraph-style constructor.
package problembuilder
