package demo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joeycumines/go-asyncprim/demo"
)

// TestTreeProvider_PreOrderThenInfiniteEnd checks that a tree with
// payloads 1 -> {11 -> {111, 112}, 12} traversed pre-order through a
// slot-backed provider yields payloads [1, 11, 111, 112, 12], then
// end-of-stream, then (after end) infinite end-of-stream responses.
func TestTreeProvider_PreOrderThenInfiniteEnd(t *testing.T) {
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

	slot := demo.TreeProvider(tree)

	var got []int
	var ended bool
	request := func() {
		slot.Request(func(item demo.Item[int]) {
			if item.End {
				ended = true
				return
			}
			got = append(got, item.Value)
		})
	}

	for range 5 {
		request()
	}
	require.Equal(t, []int{1, 11, 111, 112, 12}, got)
	require.False(t, ended)

	request()
	require.True(t, ended)

	// infinite end-of-stream responses after exhaustion
	for range 10 {
		ended = false
		request()
		require.True(t, ended)
	}
}

func TestTreeProvider_EmptyTree(t *testing.T) {
	slot := demo.TreeProvider(nil)
	var ended bool
	slot.Request(func(item demo.Item[int]) { ended = item.End })
	require.True(t, ended)
}
