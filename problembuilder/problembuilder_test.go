package problembuilder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fixdataflow/point"
	"github.com/katalvlaran/fixdataflow/problem"
	"github.com/katalvlaran/fixdataflow/problembuilder"
)

func TestAllocateTiesRecursiveBinding(t *testing.T) {
	b := problembuilder.New[int](problembuilder.WithDefaultChangeDetector(problem.DefaultChangeDetector[int]()))

	var selfID point.NodeId
	id := b.Allocate(func(self point.NodeId) problem.TransferFunc[int] {
		selfID = self
		return func(problem.Env[int], point.ArgTuple) int { return int(self) }
	})
	require.Equal(t, id, selfID)

	fn, ok := b.Problem().Transfer(id)
	require.True(t, ok)
	require.Equal(t, int(id), fn(nil, point.Unit{}))
}

func TestAllocateWithoutDefaultChangeDetectorPanics(t *testing.T) {
	b := problembuilder.New[int]()
	require.Panics(t, func() {
		b.Allocate(func(point.NodeId) problem.TransferFunc[int] {
			return func(problem.Env[int], point.ArgTuple) int { return 0 }
		})
	})
}

func TestAllocateWithChangeOverridesDefault(t *testing.T) {
	b := problembuilder.New[int](problembuilder.WithDefaultChangeDetector(problem.DefaultChangeDetector[int]()))
	alwaysStable := func(int, int) bool { return false }

	id := b.AllocateWithChange(alwaysStable, func(point.NodeId) problem.TransferFunc[int] {
		return func(problem.Env[int], point.ArgTuple) int { return 1 }
	})

	cd, ok := b.Problem().ChangeDetectorFor(id)
	require.True(t, ok)
	require.False(t, cd(1, 2), "per-node override must take precedence over the builder default")
}

func TestDensityRoundTrip(t *testing.T) {
	b := problembuilder.New[int]()
	_, ok := b.Density()
	require.False(t, ok)

	b2 := problembuilder.New[int](problembuilder.WithDensity[int](problem.Dense(point.NodeId(10))))
	d, ok := b2.Density()
	require.True(t, ok)
	dense, max := d.Params()
	require.True(t, dense)
	require.Equal(t, point.NodeId(10), max)
}
