package problem_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fixdataflow/point"
	"github.com/katalvlaran/fixdataflow/problem"
)

func TestDefaultChangeDetector(t *testing.T) {
	cd := problem.DefaultChangeDetector[int]()
	require.True(t, cd(1, 2))
	require.False(t, cd(2, 2))
}

func TestRegisterAndLookup(t *testing.T) {
	p := problem.New[int]()
	_, ok := p.Transfer(point.NodeId(0))
	require.False(t, ok)

	p.Register(point.NodeId(0), func(problem.Env[int], point.ArgTuple) int { return 42 }, problem.DefaultChangeDetector[int]())
	fn, ok := p.Transfer(point.NodeId(0))
	require.True(t, ok)
	require.Equal(t, 42, fn(nil, point.Unit{}))
}

func TestAllocateNodeTiesRecursiveBinding(t *testing.T) {
	p := problem.New[int]()
	var selfID point.NodeId
	id := p.AllocateNode(problem.DefaultChangeDetector[int](), func(self point.NodeId) problem.TransferFunc[int] {
		selfID = self
		return func(env problem.Env[int], args point.ArgTuple) int {
			return int(self)
		}
	})
	require.Equal(t, id, selfID)

	fn, ok := p.Transfer(id)
	require.True(t, ok)
	require.Equal(t, int(id), fn(nil, point.Unit{}))
}

func TestAllocateNodeIsSequential(t *testing.T) {
	p := problem.New[int]()
	var ids []point.NodeId
	for i := 0; i < 3; i++ {
		id := p.AllocateNode(problem.DefaultChangeDetector[int](), func(self point.NodeId) problem.TransferFunc[int] {
			return func(problem.Env[int], point.ArgTuple) int { return 0 }
		})
		ids = append(ids, id)
	}
	require.Equal(t, []point.NodeId{0, 1, 2}, ids)
}

func TestDensityParams(t *testing.T) {
	dense, max := problem.Dense(point.NodeId(7)).Params()
	require.True(t, dense)
	require.Equal(t, point.NodeId(7), max)

	sparse, _ := problem.Sparse().Params()
	require.False(t, sparse)
}

func TestIterationBoundParams(t *testing.T) {
	_, _, ok := problem.NeverAbort[int]().Params()
	require.False(t, ok)

	n, widen, ok := problem.AbortAfter[int](5, func(point.ArgTuple, int) int { return 99 }).Params()
	require.True(t, ok)
	require.Equal(t, uint32(5), n)
	require.Equal(t, 99, widen(point.Unit{}, 1))
}

func TestAbortWithTop(t *testing.T) {
	n, widen, ok := problem.AbortWithTop[int](3, 1000).Params()
	require.True(t, ok)
	require.Equal(t, uint32(3), n)
	require.Equal(t, 1000, widen(point.Unit{}, 7))
}
