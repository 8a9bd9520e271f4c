package problembuilder_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fixdataflow/point"
	"github.com/katalvlaran/fixdataflow/problem"
	"github.com/katalvlaran/fixdataflow/problembuilder"
)

func TestParallelLoadBuildsInOrder(t *testing.T) {
	builds := make([]problembuilder.BuildFunc[int], 5)
	for i := range builds {
		i := i
		builds[i] = func(context.Context) (*problem.DataFlowProblem[int], error) {
			prob := problem.New[int]()
			prob.Register(point.NodeId(0), func(problem.Env[int], point.ArgTuple) int { return i }, problem.DefaultChangeDetector[int]())
			return prob, nil
		}
	}

	results, err := problembuilder.ParallelLoad[int](context.Background(), builds)
	require.NoError(t, err)
	require.Len(t, results, 5)
	for i, prob := range results {
		fn, ok := prob.Transfer(point.NodeId(0))
		require.True(t, ok)
		require.Equal(t, i, fn(nil, point.Unit{}))
	}
}

func TestParallelLoadPropagatesFirstError(t *testing.T) {
	boom := errors.New("boom")
	builds := []problembuilder.BuildFunc[int]{
		func(context.Context) (*problem.DataFlowProblem[int], error) { return problem.New[int](), nil },
		func(context.Context) (*problem.DataFlowProblem[int], error) { return nil, boom },
	}

	_, err := problembuilder.ParallelLoad[int](context.Background(), builds)
	require.ErrorIs(t, err, boom)
}

func TestParallelLoadRejectsNilBuildFunc(t *testing.T) {
	_, err := problembuilder.ParallelLoad[int](context.Background(), []problembuilder.BuildFunc[int]{nil})
	require.ErrorIs(t, err, problembuilder.ErrNoBuildFunc)
}
