package problembuilder

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/fixdataflow/problem"
)

// BuildFunc assembles one independent DataFlowProblem, e.g. from one root
// expression in a larger syntactic forest that shares no nodes with its
// siblings.
type BuildFunc[V any] func(ctx context.Context) (*problem.DataFlowProblem[V], error)

// ParallelLoad runs each of builds concurrently via errgroup and returns
// one *problem.DataFlowProblem per slot, in the same order as builds.
//
// This is NOT parallel solving — spec §5 forbids that categorically, and
// nothing here shares an ExecutionEnv. It is the one legitimately
// parallelizable ambient task the problem-builder layer has: several
// unrelated problems (e.g. disjoint root expressions) can be assembled
// concurrently before each is handed, one at a time, to its own
// sequential solver.SolveProblem call.
//
// Every build is launched. Each receives the context errgroup.WithContext
// derives from ctx, which is cancelled when ctx is cancelled or when any
// build returns an error; ParallelLoad waits for all builds and returns
// the first error a build returned. A build that ignores its context runs
// to completion regardless.
func ParallelLoad[V any](ctx context.Context, builds []BuildFunc[V]) ([]*problem.DataFlowProblem[V], error) {
	results := make([]*problem.DataFlowProblem[V], len(builds))

	group, groupCtx := errgroup.WithContext(ctx)
	for i, build := range builds {
		i, build := i, build
		if build == nil {
			return nil, ErrNoBuildFunc
		}
		group.Go(func() error {
			prob, err := build(groupCtx)
			if err != nil {
				return err
			}
			results[i] = prob
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
