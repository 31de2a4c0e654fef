package demo

import (
	"github.com/joeycumines/go-asyncprim"
	"github.com/joeycumines/go-asyncprim/scheduler"
)

// AsyncDir is an asynchronous directory: every call hands its result to a
// callback, rather than returning it, and that callback is expected to
// fire later — typically via a [scheduler.Queue] — rather than
// synchronously.
type AsyncDir interface {
	// Files delivers the sizes of every regular file directly in this
	// directory.
	Files(cb func(sizes []int64))
	// Subdirs delivers this directory's immediate subdirectories.
	Subdirs(cb func(dirs []AsyncDir))
}

// TreeSize computes the total size of dir's tree asynchronously, reporting
// the result to report once every file and subdirectory has been
// accounted for. It never blocks; progress happens only as q's deferred
// tasks are drained.
//
// The computation is built from a [asyncprim.Cell] fan-out/fan-in: one
// retained handle per outstanding branch (the Files call, the Subdirs
// call, and one per subdirectory's own [TreeSize]), each releasing its
// handle when its
// contribution has been added, with the finalizer — report — firing once
// every branch has released.
func TreeSize(dir AsyncDir, report func(total int64)) {
	cell := asyncprim.NewCell(func(total int64) {
		report(total)
	}, int64(0))

	filesHandle := cell.Retain()
	dir.Files(func(sizes []int64) {
		var sum int64
		for _, s := range sizes {
			sum += s
		}
		*filesHandle.Value() += sum
		filesHandle.Release()
	})

	subdirsHandle := cell.Retain()
	dir.Subdirs(func(dirs []AsyncDir) {
		for _, child := range dirs {
			childHandle := subdirsHandle.Retain()
			TreeSize(child, func(childTotal int64) {
				*childHandle.Value() += childTotal
				childHandle.Release()
			})
		}
		subdirsHandle.Release()
	})

	cell.Release()
}

// depthDir is a deterministic directory-tree generator: at depth d
// (root = 0), it contains d files of size d each, and maxDepth-d
// subdirectories.
type depthDir struct {
	depth, maxDepth int
	q               *scheduler.Queue
}

// GenerateDepthTree builds a depthDir tree rooted at depth 0, with
// maxDepth as the point at which a directory stops having
// subdirectories. Every Files/Subdirs call is answered via a task
// scheduled on q, rather than synchronously.
func GenerateDepthTree(maxDepth int, q *scheduler.Queue) AsyncDir {
	return &depthDir{depth: 0, maxDepth: maxDepth, q: q}
}

func (d *depthDir) Files(cb func(sizes []int64)) {
	sizes := make([]int64, d.depth)
	for i := range sizes {
		sizes[i] = int64(d.depth)
	}
	_ = d.q.Schedule(func() { cb(sizes) })
}

func (d *depthDir) Subdirs(cb func(dirs []AsyncDir)) {
	n := d.maxDepth - d.depth
	if n < 0 {
		n = 0
	}
	dirs := make([]AsyncDir, n)
	for i := range dirs {
		dirs[i] = &depthDir{depth: d.depth + 1, maxDepth: d.maxDepth, q: d.q}
	}
	_ = d.q.Schedule(func() { cb(dirs) })
}
