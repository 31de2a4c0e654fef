package asyncprim

// Finalizer receives the final value stored in a [Cell], the moment the
// cell's last handle is released. It must not retain or otherwise smuggle
// out a reference to the owning Cell — that is undefined behaviour, and
// this package makes no attempt to detect it.
type Finalizer[T any] func(value T)

// cellState is the shared record backing every handle obtained from the
// same [NewCell] call, or from [Cell.Retain].
type cellState[T any] struct {
	value     T
	finalizer Finalizer[T]
	refs      int
	finalized bool
}

// Cell is a reference-counted box around a value and a finalizer callback.
// Go has no destructors to hook the "last owner dropped its handle" moment
// automatically, so that moment is explicit: every handle obtained from
// [NewCell] or [Cell.Retain] must eventually call [Cell.Release] exactly
// once. When the count reaches zero, the finalizer runs synchronously,
// inline, with the value that was most recently assigned.
//
// A Cell is not safe for concurrent use from more than one goroutine.
type Cell[T any] struct {
	state *cellState[T]
}

// NewCell constructs a Cell holding initial, with finalizer as its
// release-triggered callback, and returns the first (already-retained)
// handle to it.
//
// Panics if finalizer is nil.
func NewCell[T any](finalizer Finalizer[T], initial T) *Cell[T] {
	if finalizer == nil {
		panic("asyncprim: nil cell finalizer")
	}
	return &Cell[T]{state: &cellState[T]{
		value:     initial,
		finalizer: finalizer,
		refs:      1,
	}}
}

// Retain returns a new handle sharing this Cell's underlying record,
// incrementing its reference count. The returned handle must be released
// independently of the one it was retained from.
//
// Panics if the cell has already been finalized.
func (c *Cell[T]) Retain() *Cell[T] {
	c.checkLive()
	c.state.refs++
	return &Cell[T]{state: c.state}
}

// Release drops this handle. If it was the last live handle, the
// finalizer runs immediately, with the value most recently assigned via
// [Cell.Value], and the cell is marked finalized: every remaining handle
// (there should be none, if callers hold up their end of the contract)
// becomes unusable.
//
// Releasing an already-finalized cell's handle a second time panics —
// Release, like the rest of this type, assumes each handle is released
// exactly once.
func (c *Cell[T]) Release() {
	c.checkLive()
	c.state.refs--
	if c.state.refs == 0 {
		c.state.finalized = true
		value := c.state.value
		var zero T
		c.state.value = zero
		c.state.finalizer(value)
	}
}

// Value returns a pointer into the cell's live record, for reading or
// mutating the stored value in place.
//
// Panics if the cell has already been finalized.
func (c *Cell[T]) Value() *T {
	c.checkLive()
	return &c.state.value
}

func (c *Cell[T]) checkLive() {
	if c.state.finalized {
		panic("asyncprim: cell used after finalize")
	}
}

// SetterFor manufactures a small closure that retains c, and, when called
// with a value, writes it into *c's record via assign and releases the
// retained handle.
//
// This is the library's replacement for counting outstanding sub-results
// in a "wait for every branch" aggregation: hand one setter per branch
// to independent producers, built from retained handles on the
// same Cell, and the finalizer fires once every setter (and every other
// outstanding handle) has been used and released.
func SetterFor[T, F any](c *Cell[T], assign func(dst *T, value F)) func(value F) {
	handle := c.Retain()
	return func(value F) {
		assign(handle.Value(), value)
		handle.Release()
	}
}
