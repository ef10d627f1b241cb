package tracker

import (
	"reflect"

	mapset "github.com/deckarep/golang-set/v2"
)

// Source is the capability shared by cells and derived computations: read
// the current value (or replayed error), subscribing the current context if
// one is installed. It is what lets the scheduler and the lift wrappers
// treat producers uniformly.
type Source[T any] interface {
	Use() (T, error)
}

// Cell is a mutable reactive value: a value, a set of subscriber contexts
// and a revision counter. Reading from inside a consumer body subscribes
// that consumer; writing invalidates every subscriber.
type Cell[T any] struct {
	rt    *Runtime
	id    uint64
	label string

	value    T
	revision uint64
	equals   func(prev, next T) bool
	subs     mapset.Set[*Context]
}

// NewCell creates a cell. Every Write invalidates subscribers, equal values
// included; use NewCellEq to opt into the equality short-circuit.
func NewCell[T any](rt *Runtime, initial T) *Cell[T] {
	return newCell(rt, "", initial, nil)
}

// NewCellNamed is NewCell with a diagnostic label.
func NewCellNamed[T any](rt *Runtime, label string, initial T) *Cell[T] {
	return newCell(rt, label, initial, nil)
}

// NewCellEq creates a cell that skips invalidation when equals reports the
// written value unchanged. This is a per-cell opt-in: holders of a plain
// cell may rely on every write propagating.
func NewCellEq[T any](rt *Runtime, initial T, equals func(prev, next T) bool) *Cell[T] {
	return newCell(rt, "", initial, equals)
}

func newCell[T any](rt *Runtime, label string, initial T, equals func(prev, next T) bool) *Cell[T] {
	rt.lk.lock()
	defer rt.lk.unlock()
	return &Cell[T]{
		rt:     rt,
		id:     rt.nextNodeID(label),
		label:  label,
		value:  initial,
		equals: equals,
		subs:   mapset.NewSet[*Context](),
	}
}

// Read returns the current value, subscribing the current context if a
// consumer is executing. A bare top-level read registers nothing.
func (c *Cell[T]) Read() T {
	c.rt.lk.lock()
	defer c.rt.lk.unlock()
	c.dependLocked()
	return c.value
}

// Peek returns the current value without subscribing anyone, regardless of
// context.
func (c *Cell[T]) Peek() T {
	c.rt.lk.lock()
	defer c.rt.lk.unlock()
	return c.value
}

// Use implements Source.
func (c *Cell[T]) Use() (T, error) {
	return c.Read(), nil
}

// Revision returns the number of effective writes so far.
func (c *Cell[T]) Revision() uint64 {
	c.rt.lk.lock()
	defer c.rt.lk.unlock()
	return c.revision
}

// Write replaces the value, invalidates every subscriber, and flushes
// unless a batch is open or a flush is already running. Safe to call from
// inside an invalidation callback: contexts invalidate at most once.
func (c *Cell[T]) Write(v T) {
	c.rt.lk.lock()
	defer c.rt.lk.unlock()

	if cur := c.rt.current; cur != nil && cur.kind == kindDerived {
		c.rt.warnf("tracker: cell %s written while %s is evaluating; derived computations should be side-effect free", c.describe(), cur.label)
	}

	if c.equals != nil && c.equals(c.value, v) {
		return
	}
	c.value = v
	c.revision++

	snapshot := c.subs.ToSlice()
	c.subs.Clear()
	for _, ctx := range snapshot {
		ctx.invalidateLocked()
	}

	c.rt.maybeFlush()
}

// dependLocked subscribes the current context, if any. Redundant reads
// within one execution are free: the set deduplicates by identity. A read
// by an already-invalidated context still sees the latest value; its
// subscription tears itself down immediately.
func (c *Cell[T]) dependLocked() {
	cur := c.rt.current
	if cur == nil {
		return
	}
	if cur.invalidated && c.rt.debug {
		c.rt.warnf("tracker: stale read of cell %s by invalidated context %s", c.describe(), cur.label)
	}
	if c.subs.Add(cur) {
		cur.onInvalidateLocked(func() { c.subs.Remove(cur) })
	}
}

func (c *Cell[T]) describe() string {
	return describe(c.label, c.id)
}

// Comparable is an equality function for NewCellEq over comparable types.
func Comparable[T comparable]() func(prev, next T) bool {
	return func(prev, next T) bool { return prev == next }
}

// DeepEqual is an equality function for NewCellEq over arbitrary types.
func DeepEqual[T any]() func(prev, next T) bool {
	return func(prev, next T) bool { return reflect.DeepEqual(prev, next) }
}
