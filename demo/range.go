package demo

import (
	"golang.org/x/exp/constraints"

	"github.com/joeycumines/go-asyncprim"
)

// RangeProvider delivers the inclusive range [lo, hi], one value per
// consumer request, then an infinite run of End items, via the same
// [asyncprim.Slot]-backed, [asyncprim.Loop]-driven shape as
// [TreeProvider]. T may be any integer type, not just int, since the
// range itself never does anything but count.
func RangeProvider[T constraints.Integer](lo, hi T) *asyncprim.Slot[Item[T]] {
	slot, producer := asyncprim.NewSlot[Item[T]]()

	next := lo

	_ = asyncprim.NewLoop(func(k asyncprim.Continuation) {
		producer.Await(func(terminated bool) {
			if terminated {
				logger.Debug("demo: range provider abandoned")
				return
			}

			if next > hi {
				producer.Deliver(Item[T]{End: true})
				k()
				return
			}

			v := next
			next++
			logger.Debug("demo: range provider delivering", "value", v)
			producer.Deliver(Item[T]{Value: v})
			k()
		})
	})

	return slot
}
