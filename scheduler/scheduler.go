package scheduler

import (
	"container/heap"
	"errors"
	"time"
)

// ErrSchedulerClosed is returned by [Queue.Schedule] and [Queue.After] once
// [Queue.Close] has run.
var ErrSchedulerClosed = errors.New("scheduler: queue closed")

// Config models optional configuration for [New].
type Config struct {
	// InitialCapacity hints the pending-task buffer's initial size.
	//
	// Defaults to 16, if 0.
	InitialCapacity int
}

// Queue is a single-threaded, cooperative deferred-task queue, sufficient
// to drive [github.com/joeycumines/go-asyncprim]'s primitives without any
// real concurrency. It runs no goroutines of its own; [Queue.Drain] and
// [Queue.Advance] must
// be called by the caller's own single-threaded loop.
//
// A Queue is not safe for concurrent use from more than one goroutine.
type Queue struct {
	jobs      []func()
	jobsSpare []func()
	timers    timerHeap
	now       time.Duration
	nextSeq   uint64
	closed    bool
}

// New constructs a Queue. cfg may be nil, for the documented defaults.
func New(cfg *Config) *Queue {
	capacity := 16
	if cfg != nil && cfg.InitialCapacity != 0 {
		capacity = cfg.InitialCapacity
	}
	return &Queue{
		jobs:      make([]func(), 0, capacity),
		jobsSpare: make([]func(), 0, capacity),
	}
}

// Schedule enqueues fn to run on a future call to [Queue.Drain] or
// [Queue.DrainAll]. This implementation runs Schedule'd tasks in the order
// they were submitted, but that ordering is an implementation detail, not
// a contract callers should rely on.
//
// Returns [ErrSchedulerClosed] if the queue has been closed. Panics if fn
// is nil.
func (q *Queue) Schedule(fn func()) error {
	if fn == nil {
		panic("scheduler: nil task")
	}
	if q.closed {
		return ErrSchedulerClosed
	}
	q.jobs = append(q.jobs, fn)
	return nil
}

// After enqueues fn to run once the queue's virtual clock has advanced by
// at least d, via [Queue.Advance] or [Queue.DrainAll]. d <= 0 is treated as
// due at the current virtual time: it runs on the next [Queue.Advance]
// (even Advance(0)) or [Queue.DrainAll], but not on a plain [Queue.Drain].
//
// Returns [ErrSchedulerClosed] if the queue has been closed. Panics if fn
// is nil.
func (q *Queue) After(d time.Duration, fn func()) error {
	if fn == nil {
		panic("scheduler: nil task")
	}
	if q.closed {
		return ErrSchedulerClosed
	}
	if d < 0 {
		d = 0
	}
	q.nextSeq++
	heap.Push(&q.timers, &timerTask{due: q.now + d, seq: q.nextSeq, fn: fn})
	return nil
}

// Drain runs every currently Schedule'd task, including ones Schedule'd by
// tasks that ran during this same call, until none remain. It does not
// advance the virtual clock, so [Queue.After] tasks are left pending.
// Returns the number of tasks run.
func (q *Queue) Drain() (ran int) {
	for len(q.jobs) > 0 {
		q.jobs, q.jobsSpare = q.jobsSpare[:0], q.jobs
		for _, fn := range q.jobsSpare {
			fn()
			ran++
		}
	}
	return ran
}

// Advance moves the virtual clock forward by d, running every [Queue.After]
// task whose deadline is now due, in deadline order (ties broken by
// submission order). Returns the number of tasks run.
func (q *Queue) Advance(d time.Duration) (ran int) {
	if d < 0 {
		panic("scheduler: negative duration")
	}
	q.now += d
	for q.timers.Len() > 0 && q.timers[0].due <= q.now {
		task := heap.Pop(&q.timers).(*timerTask)
		task.fn()
		ran++
	}
	return ran
}

// DrainAll alternates [Queue.Drain] and advancing to the next pending
// timer's deadline, until both the task queue and the timer heap are
// empty. It is the convenience entry point for tests and demos that just
// want "run everything to quiescence."
func (q *Queue) DrainAll() (ran int) {
	ran += q.Drain()
	for q.timers.Len() > 0 {
		next := q.timers[0].due
		var step time.Duration
		if next > q.now {
			step = next - q.now
		}
		ran += q.Advance(step)
		ran += q.Drain()
	}
	return ran
}

// Close marks the queue closed: further [Queue.Schedule] and [Queue.After]
// calls return [ErrSchedulerClosed]. Already-pending tasks are unaffected
// and may still be run via [Queue.Drain], [Queue.Advance], or
// [Queue.DrainAll].
func (q *Queue) Close() {
	q.closed = true
}

type timerTask struct {
	due time.Duration
	seq uint64
	fn  func()
}

// timerHeap is a container/heap min-heap ordered by deadline, then
// submission sequence.
type timerHeap []*timerTask

func (h timerHeap) Len() int { return len(h) }
func (h timerHeap) Less(i, j int) bool {
	if h[i].due != h[j].due {
		return h[i].due < h[j].due
	}
	return h[i].seq < h[j].seq
}
func (h timerHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *timerHeap) Push(x any)   { *h = append(*h, x.(*timerTask)) }
func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}
