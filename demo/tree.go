package demo

import "github.com/joeycumines/go-asyncprim"

// Node is an in-memory tree node traversed by [TreeProvider].
type Node struct {
	Payload  int
	Children []*Node
}

// TreeProvider pre-order traverses root, delivering one payload per
// consumer request, via a [asyncprim.Slot] driven internally by a
// [asyncprim.Loop]. Once the traversal is exhausted, every further
// request is answered with an End item, forever.
func TreeProvider(root *Node) *asyncprim.Slot[Item[int]] {
	slot, producer := asyncprim.NewSlot[Item[int]]()

	var stack []*Node
	if root != nil {
		stack = append(stack, root)
	}

	_ = asyncprim.NewLoop(func(k asyncprim.Continuation) {
		producer.Await(func(terminated bool) {
			if terminated {
				logger.Debug("demo: tree provider abandoned")
				return
			}

			if len(stack) == 0 {
				logger.Debug("demo: tree provider exhausted")
				producer.Deliver(Item[int]{End: true})
				k()
				return
			}

			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for i := len(n.Children) - 1; i >= 0; i-- {
				stack = append(stack, n.Children[i])
			}

			logger.Debug("demo: tree provider delivering", "payload", n.Payload)
			producer.Deliver(Item[int]{Value: n.Payload})
			k()
		})
	})

	return slot
}
