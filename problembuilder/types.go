package problembuilder

import (
	"github.com/katalvlaran/fixdataflow/point"
	"github.com/katalvlaran/fixdataflow/problem"
)

// Option customizes a Builder, following a functional-options idiom: it
// mutates a config before the Builder is used, and later options
// override earlier ones.
type Option[V any] func(cfg *config[V])

// config holds the Builder's optional defaults.
type config[V any] struct {
	defaultChange problem.ChangeDetector[V]
	density       problem.Density
	densitySet    bool
}

// WithDefaultChangeDetector sets the ChangeDetector Allocate uses when a
// caller does not want to repeat the same detector at every allocation
// site (the common case: most nodes in one problem share a change
// policy). AllocateWithChange still accepts a per-node override.
func WithDefaultChangeDetector[V any](cd problem.ChangeDetector[V]) Option[V] {
	return func(cfg *config[V]) { cfg.defaultChange = cd }
}

// WithDensity records the Density the assembled problem is intended to be
// solved under, so ParallelLoad's caller can read it back via
// Builder.Density instead of threading it separately.
func WithDensity[V any](d problem.Density) Option[V] {
	return func(cfg *config[V]) { cfg.density = d; cfg.densitySet = true }
}

func newConfig[V any](opts []Option[V]) config[V] {
	var cfg config[V]
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Builder assembles a problem.DataFlowProblem one node at a time, tying
// recursive bindings through Allocate the way a client walking a
// syntactic structure (e.g. an expression tree) would: each node's own
// Node id is available to its transfer-function factory before the
// factory closure runs (spec §6's allocateNode contract).
//
// Builder is not safe for concurrent use; see ParallelLoad for the one
// legitimately concurrent ambient task this layer supports.
type Builder[V any] struct {
	prob *problem.DataFlowProblem[V]
	cfg  config[V]
}

// New returns an empty Builder around a fresh DataFlowProblem.
func New[V any](opts ...Option[V]) *Builder[V] {
	return &Builder[V]{
		prob: problem.New[V](),
		cfg:  newConfig[V](opts),
	}
}

// Allocate reserves a fresh NodeId using the Builder's default
// ChangeDetector (set via WithDefaultChangeDetector) and hands it to f so
// f can close over its own identity before building the TransferFunc.
// Allocate panics if no default ChangeDetector was configured — use
// AllocateWithChange instead when nodes need distinct detectors.
func (b *Builder[V]) Allocate(f func(self point.NodeId) problem.TransferFunc[V]) point.NodeId {
	if b.cfg.defaultChange == nil {
		panic("problembuilder: Allocate called without WithDefaultChangeDetector; use AllocateWithChange")
	}
	return b.AllocateWithChange(b.cfg.defaultChange, f)
}

// AllocateWithChange reserves a fresh NodeId bound to change, the
// per-node override of Allocate's default.
func (b *Builder[V]) AllocateWithChange(change problem.ChangeDetector[V], f func(self point.NodeId) problem.TransferFunc[V]) point.NodeId {
	return b.prob.AllocateNode(change, f)
}

// Problem returns the DataFlowProblem assembled so far, ready to be
// handed to solver.SolveProblem. The Builder remains usable afterwards;
// the returned problem shares storage with later allocations.
func (b *Builder[V]) Problem() *problem.DataFlowProblem[V] { return b.prob }

// Density returns the Density recorded via WithDensity, if any, along
// with whether one was set.
func (b *Builder[V]) Density() (problem.Density, bool) {
	return b.cfg.density, b.cfg.densitySet
}
