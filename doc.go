// Package asyncprim provides a small set of composable primitives for
// writing callback-driven asynchronous code: a self-driving [Loop] that
// trampolines synchronous re-entry into flat iteration, a reference-counted
// [Cell] that runs a finalizer exactly once when its last handle is
// released, and a single-element [Slot] that rendezvous a consumer's
// request with a producer's delivery.
//
// None of the three types are safe for concurrent use from more than one
// goroutine at a time; they assume a single cooperative, sequential
// execution context, the same way [github.com/joeycumines/go-longpoll] and
// [github.com/joeycumines/go-microbatch] assume their own, different,
// concurrency disciplines. Driving that context — deciding when queued
// continuations run — is the job of an external scheduler, such as the
// one in [github.com/joeycumines/go-asyncprim/scheduler], not of this
// package.
//
// See [github.com/joeycumines/go-asyncprim/demo] for worked examples:
// a tree traversal and a range built as [Slot]-backed providers, a
// pairwise join of two such providers, and an asynchronous directory-size
// computation built from [Loop] and [Cell].
package asyncprim
