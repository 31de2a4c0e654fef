package asyncprim_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joeycumines/go-asyncprim"
	"github.com/joeycumines/go-asyncprim/scheduler"
)

// TestCell_FinalizerExactlyOnce checks that the finalizer runs exactly
// once, after the last reference is dropped, with the value most
// recently assigned.
func TestCell_FinalizerExactlyOnce(t *testing.T) {
	var finalized int
	var got int

	c := asyncprim.NewCell(func(v int) {
		finalized++
		got = v
	}, 0)

	other := c.Retain()
	*c.Value() = 42

	c.Release()
	require.Equal(t, 0, finalized, "finalizer must not run while other handle is still live")

	other.Release()
	require.Equal(t, 1, finalized)
	require.Equal(t, 42, got)
}

func TestCell_UseAfterFinalizePanics(t *testing.T) {
	c := asyncprim.NewCell(func(int) {}, 0)
	c.Release()
	require.Panics(t, func() { c.Value() })
	require.Panics(t, func() { c.Release() })
	require.Panics(t, func() { c.Retain() })
}

func TestNewCell_NilFinalizerPanics(t *testing.T) {
	require.Panics(t, func() {
		asyncprim.NewCell[int](nil, 0)
	})
}

// TestCell_TreeFanInViaResultCell fans two independent deferred producers
// into a result cell of type (int, int): one delivering 10 into field 0,
// and one delivering 20 into field 1. The finalizer, invoked after both
// producers release their setters, receives (10, 20).
func TestCell_TreeFanInViaResultCell(t *testing.T) {
	type pair struct{ a, b int }

	q := scheduler.New(nil)

	var result pair
	var finalized bool
	cell := asyncprim.NewCell(func(v pair) {
		finalized = true
		result = v
	}, pair{})

	setA := asyncprim.SetterFor(cell, func(dst *pair, v int) { dst.a = v })
	setB := asyncprim.SetterFor(cell, func(dst *pair, v int) { dst.b = v })
	cell.Release() // the constructor's own handle is not one of the two branches

	require.NoError(t, q.Schedule(func() { setA(10) }))
	require.NoError(t, q.Schedule(func() { setB(20) }))

	require.False(t, finalized)
	q.DrainAll()

	require.True(t, finalized)
	require.Equal(t, pair{10, 20}, result)
}
