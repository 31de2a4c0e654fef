package demo

import "github.com/joeycumines/go-asyncprim"

// Join produces a provider of [Pair] values, drawing one item from each of
// left and right per downstream request. It ends — delivering an End item,
// and every item after — as soon as either input ends, regardless of
// which one.
func Join[A, B any](left *asyncprim.Slot[Item[A]], right *asyncprim.Slot[Item[B]]) *asyncprim.Slot[Item[Pair[A, B]]] {
	slot, producer := asyncprim.NewSlot[Item[Pair[A, B]]]()

	_ = asyncprim.NewLoop(func(k asyncprim.Continuation) {
		producer.Await(func(terminated bool) {
			if terminated {
				return
			}

			left.Request(func(a Item[A]) {
				if a.End {
					producer.Deliver(Item[Pair[A, B]]{End: true})
					k()
					return
				}

				right.Request(func(b Item[B]) {
					if b.End {
						producer.Deliver(Item[Pair[A, B]]{End: true})
						k()
						return
					}

					producer.Deliver(Item[Pair[A, B]]{Value: Pair[A, B]{A: a.Value, B: b.Value}})
					k()
				})
			})
		})
	})

	return slot
}
