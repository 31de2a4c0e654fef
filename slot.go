package asyncprim

// slotState is the shared record behind a [Slot] and its [Producer]. The
// consumer (holder of the Slot) owns its liveness; the producer only
// observes it.
type slotState[T any] struct {
	awaitsRequest func(terminated bool)
	awaitsData    func(value T)
	consumerLive  bool
}

// Slot is the consumer side of a single-element, request/response
// rendezvous with one producer. Call [Slot.Request] to ask for the next
// value; call [Slot.Close] when no more values are wanted, which signals
// abandonment to the producer side.
//
// A Slot is not safe for concurrent use from more than one goroutine.
type Slot[T any] struct {
	state *slotState[T]
}

// Producer is the producer side of a [Slot]. It is conceptually a weak
// observer of the consumer's liveness: once the consumer calls
// [Slot.Close], [Producer.Await] reports termination instead of parking,
// and [Producer.Deliver] panics.
//
// A Producer is not safe for concurrent use from more than one goroutine.
type Producer[T any] struct {
	state *slotState[T]
}

// NewSlot constructs a rendezvous point and returns its consumer and
// producer handles.
func NewSlot[T any]() (*Slot[T], *Producer[T]) {
	state := &slotState[T]{consumerLive: true}
	return &Slot[T]{state: state}, &Producer[T]{state: state}
}

// Request registers h as waiting for the next value. If the producer is
// already waiting via [Producer.Await], that wait fires immediately with
// terminated=false, and h is stored to be delivered via the producer's
// subsequent [Producer.Deliver]; otherwise h is parked until either the
// producer awaits (firing immediately, per the rule above) or delivers
// directly into an already-pending wait from the other ordering.
//
// h is cleared from the slot before it is invoked, so a nested call to
// Request from within h observes a slot with no data-waiting callback
// registered — re-entrancy here is expected and supported.
//
// Panics if a data-waiting callback is already registered, or if h is
// nil.
func (s *Slot[T]) Request(h func(value T)) {
	if h == nil {
		panic("asyncprim: nil slot request handler")
	}
	if s.state.awaitsData != nil {
		panic("asyncprim: slot already has a pending request")
	}
	// h must already be in place before a parked awaitsRequest fires below:
	// that callback is expected to call Deliver, whose precondition is a
	// pending request.
	s.state.awaitsData = h
	if r := s.state.awaitsRequest; r != nil {
		s.state.awaitsRequest = nil
		r(false)
	}
}

// Close abandons the slot. If a request-waiting callback was parked on the
// producer side, it fires once with terminated=true. This is the only
// cancellation signal this package provides; the producer is expected to
// drop its own context, including its Producer handle, in response.
//
// Close is idempotent: closing an already-closed Slot is a no-op.
func (s *Slot[T]) Close() {
	if !s.state.consumerLive {
		return
	}
	s.state.consumerLive = false
	if r := s.state.awaitsRequest; r != nil {
		s.state.awaitsRequest = nil
		r(true)
	}
}

// Await registers r as waiting for the consumer's next request. If the
// consumer has already been closed, r fires immediately with
// terminated=true. If a request is already pending (the consumer called
// [Slot.Request] first), r fires immediately with terminated=false, and
// the caller is expected to follow up with [Producer.Deliver]. Otherwise r
// is parked until the consumer requests, or closes.
//
// Panics if a request-waiting callback is already registered, or if r is
// nil.
func (p *Producer[T]) Await(r func(terminated bool)) {
	if r == nil {
		panic("asyncprim: nil slot await handler")
	}
	if !p.state.consumerLive {
		r(true)
		return
	}
	if p.state.awaitsRequest != nil {
		panic("asyncprim: slot already has a pending await")
	}
	if p.state.awaitsData != nil {
		r(false)
		return
	}
	p.state.awaitsRequest = r
}

// Deliver supplies v to the consumer's pending request. The data-waiting
// callback is cleared before it is invoked, matching [Slot.Request]'s
// re-entrancy contract.
//
// Panics if the consumer has no pending request, or has been closed.
func (p *Producer[T]) Deliver(v T) {
	if !p.state.consumerLive {
		panic("asyncprim: deliver to a closed slot")
	}
	h := p.state.awaitsData
	if h == nil {
		panic("asyncprim: deliver without a pending request")
	}
	p.state.awaitsData = nil
	h(v)
}
