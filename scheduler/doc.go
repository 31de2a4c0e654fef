// Package scheduler provides a trivial, single-threaded deferred-task
// queue: the external executor collaborator that
// [github.com/joeycumines/go-asyncprim]'s primitives assume, but
// deliberately do not provide themselves.
//
// Queue is not a production event loop — for that, see
// [github.com/joeycumines/go-eventloop] — it exists only to give tests and
// the [github.com/joeycumines/go-asyncprim/demo] package something to drain
// deferred continuations with.
package scheduler
