// Package demo exercises github.com/joeycumines/go-asyncprim's core
// primitives with traversals and joins deliberately kept out of the
// core library itself: a tree and a range, each built as a
// [asyncprim.Slot]-backed provider driven internally by a
// [asyncprim.Loop]; a pairwise inner [Join] of two such providers; and an
// asynchronous directory-size computation ([TreeSize]) built from
// [asyncprim.Loop] and [asyncprim.Cell] fan-out/fan-in.
//
// None of this package is part of the library's public contract — it is
// here to demonstrate the primitives, not to extend them.
package demo
