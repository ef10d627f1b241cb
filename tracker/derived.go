package tracker

import (
	mapset "github.com/deckarep/golang-set/v2"
)

type derivedState uint8

const (
	stateUnevaluated derivedState = iota
	stateEvaluating
	stateValid
	stateInvalid
)

// Derived is a lazily evaluated, memoized computation. It is a consumer of
// whatever its thunk reads and a producer of its own output: reading it
// from another consumer body subscribes that consumer, and invalidation of
// any of its own dependencies propagates through it lazily, without
// re-running the thunk until the next Get.
type Derived[T any] struct {
	rt    *Runtime
	id    uint64
	label string

	thunk func() (T, error)

	state     derivedState
	value     T
	err       error
	ctx       *Context
	subs      mapset.Set[*Context]
	destroyed bool
}

func (d *Derived[T]) isNode() {}

// Derive creates a derived computation. The thunk does not run here; it
// runs on the first Get.
func Derive[T any](rt *Runtime, thunk func() (T, error)) *Derived[T] {
	return DeriveNamed(rt, "", thunk)
}

// DeriveNamed is Derive with a diagnostic label, which also names the node
// in cycle errors.
func DeriveNamed[T any](rt *Runtime, label string, thunk func() (T, error)) *Derived[T] {
	rt.lk.lock()
	defer rt.lk.unlock()
	return &Derived[T]{
		rt:    rt,
		id:    rt.nextNodeID(label),
		label: label,
		thunk: thunk,
		subs:  mapset.NewSet[*Context](),
	}
}

// Get returns the memoized value, evaluating the thunk only when the cached
// result is missing or invalidated. Errors are cached exactly like values:
// until the next invalidation, repeated Gets replay the same error without
// re-running the thunk. Re-entering a node that is mid-evaluation is a
// dependency cycle and fails immediately.
func (d *Derived[T]) Get() (T, error) {
	d.rt.lk.lock()
	defer d.rt.lk.unlock()

	var zero T
	if d.destroyed {
		return zero, ErrDestroyed
	}

	switch d.state {
	case stateEvaluating:
		return zero, &CycleError{Name: d.describe()}
	case stateValid:
		d.dependLocked()
		return d.value, d.err
	}

	d.state = stateEvaluating
	ctx, err := d.rt.runWithNewContext(d, kindDerived, d.describe(), func() error {
		v, err := d.thunk()
		d.value = v
		return err
	})
	d.ctx = ctx
	d.err = err
	d.state = stateValid

	ctx.onInvalidateLocked(func() {
		if d.state == stateValid {
			d.state = stateInvalid
		}
		d.propagateLocked()
	})

	d.dependLocked()
	return d.value, d.err
}

// Use implements Source.
func (d *Derived[T]) Use() (T, error) {
	return d.Get()
}

// Destroy detaches the computation from its dependencies and propagates a
// final invalidation downstream. Get afterwards returns ErrDestroyed; the
// thunk never runs again.
func (d *Derived[T]) Destroy() {
	d.rt.lk.lock()
	defer d.rt.lk.unlock()
	if d.destroyed {
		return
	}
	d.destroyed = true
	if d.ctx != nil {
		d.ctx.invalidateLocked()
	}
	d.subs.Clear()
	d.rt.maybeFlush()
}

// propagateLocked invalidates every subscriber of this computation's
// output, clearing the set first so re-entrant invalidation cannot loop.
func (d *Derived[T]) propagateLocked() {
	snapshot := d.subs.ToSlice()
	d.subs.Clear()
	for _, ctx := range snapshot {
		ctx.invalidateLocked()
	}
}

func (d *Derived[T]) dependLocked() {
	cur := d.rt.current
	if cur == nil {
		return
	}
	if d.subs.Add(cur) {
		cur.onInvalidateLocked(func() { d.subs.Remove(cur) })
	}
}

func (d *Derived[T]) describe() string {
	return describe(d.label, d.id)
}
