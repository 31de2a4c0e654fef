package asyncprim

// Continuation is handed to a [Body] on every invocation. Calling it
// schedules another iteration of the owning [Loop]. It takes no arguments
// and returns nothing; the iteration context itself is whatever the body
// closure captured.
type Continuation func()

// Body is the user-supplied iteration step of a [Loop]. It receives a
// [Continuation] that, when called, causes the body to run again. A body
// that never calls its continuation, directly or by retaining it for later
// asynchronous invocation, ends the loop when it returns.
type Body func(next Continuation)

// Loop drives a [Body] through repeated iterations, collapsing synchronous
// re-entry of its [Continuation] into a flat, non-recursive trampoline.
// Asynchronous invocation of the continuation — calling it later, from a
// scheduled task — simply starts another drive cycle at that point.
//
// A Loop is not safe for concurrent use from more than one goroutine; see
// the package doc.
type Loop struct {
	body   Body
	active bool
}

// NewLoop constructs a Loop around body and immediately runs its first
// iteration. body is stored exactly once and is never copied; every
// [Continuation] the loop ever hands out closes over the same *Loop.
//
// Panics if body is nil.
func NewLoop(body Body) *Loop {
	if body == nil {
		panic("asyncprim: nil loop body")
	}
	l := &Loop{body: body}
	l.drive()
	return l
}

// drive is the trampoline: active starts false;
// toggling it true means "run the body once more"; toggling it false means
// "nothing more was requested, stop". A synchronous call to next from
// within body re-enters drive, which observes active already true,
// toggles it to false, and returns immediately without invoking body —
// that request is instead picked up by the outer drive's loop once body
// returns.
func (l *Loop) drive() {
	for {
		l.active = !l.active
		if !l.active {
			return
		}
		l.body(l.next)
	}
}

// next is the Continuation bound to this Loop, handed to body on every
// invocation.
func (l *Loop) next() {
	l.drive()
}
