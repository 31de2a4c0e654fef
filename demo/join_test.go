package demo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joeycumines/go-asyncprim/demo"
)

// TestJoin_InnerJoin checks that joining a numeric range [1..6] with a
// tree traversal stream, as a pairwise join that signals end when either
// input ends, produces (1,1), (2,11), (3,111), (4,112), (5,12), then
// end-of-stream.
func TestJoin_InnerJoin(t *testing.T) {
	tree := &demo.Node{
		Payload: 1,
		Children: []*demo.Node{
			{
				Payload: 11,
				Children: []*demo.Node{
					{Payload: 111},
					{Payload: 112},
				},
			},
			{Payload: 12},
		},
	}

	left := demo.RangeProvider(1, 6)
	right := demo.TreeProvider(tree)
	joined := demo.Join(left, right)

	var got []demo.Pair[int, int]
	var ended bool
	for range 6 {
		joined.Request(func(item demo.Item[demo.Pair[int, int]]) {
			if item.End {
				ended = true
				return
			}
			got = append(got, item.Value)
		})
	}

	require.Equal(t, []demo.Pair[int, int]{
		{A: 1, B: 1},
		{A: 2, B: 11},
		{A: 3, B: 111},
		{A: 4, B: 112},
		{A: 5, B: 12},
	}, got)
	require.True(t, ended)
}
