package tracker

// contextKind records what sort of consumer owns a context, for diagnostics
// and for the write-during-derivation warning.
type contextKind uint8

const (
	kindObserver contextKind = iota
	kindDerived
)

// Context is the execution token for one run of a consumer. Producers read
// it off the runtime to discover who is reading them; neither side ever
// holds a direct reference to the other. A context is single-use: the
// owning consumer makes a fresh one for every re-execution, and once
// invalidated a context never becomes valid again.
type Context struct {
	rt    *Runtime
	id    uint64
	kind  contextKind
	label string
	owner Node

	invalidated  bool
	onInvalidate []func()
}

// ID is unique per execution within a runtime.
func (c *Context) ID() uint64 { return c.id }

// Label is the diagnostic name of the owning consumer.
func (c *Context) Label() string { return c.label }

// Owner is the consumer this context belongs to.
func (c *Context) Owner() Node { return c.owner }

// Invalidated reports whether this context has been marked stale. The flag
// only ever goes one way.
func (c *Context) Invalidated() bool {
	c.rt.lk.lock()
	defer c.rt.lk.unlock()
	return c.invalidated
}

// OnInvalidate registers fn to run when the context is invalidated.
// Callbacks run in registration order. Registering on an already
// invalidated context runs fn immediately.
func (c *Context) OnInvalidate(fn func()) {
	c.rt.lk.lock()
	defer c.rt.lk.unlock()
	c.onInvalidateLocked(fn)
}

// Invalidate marks the context stale and fires its callbacks, exactly once.
func (c *Context) Invalidate() {
	c.rt.lk.lock()
	defer c.rt.lk.unlock()
	c.invalidateLocked()
	c.rt.maybeFlush()
}

func (c *Context) onInvalidateLocked(fn func()) {
	if c.invalidated {
		fn()
		return
	}
	c.onInvalidate = append(c.onInvalidate, fn)
}

func (c *Context) invalidateLocked() {
	if c.invalidated {
		return
	}
	c.invalidated = true
	cbs := c.onInvalidate
	c.onInvalidate = nil
	for _, fn := range cbs {
		fn()
	}
}

// runWithNewContext installs a fresh context as current, runs body, and
// restores the previous context on every exit path, panics included. A
// require-gate halt unwinding through here becomes a *HaltError; any other
// panic propagates after restoration.
func (rt *Runtime) runWithNewContext(owner Node, kind contextKind, label string, body func() error) (ctx *Context, err error) {
	rt.nextCtxID++
	ctx = &Context{
		rt:    rt,
		id:    rt.nextCtxID,
		kind:  kind,
		label: label,
		owner: owner,
	}

	prev := rt.current
	rt.current = ctx
	defer func() {
		rt.current = prev
		if r := recover(); r != nil {
			h, ok := r.(haltPanic)
			if !ok {
				panic(r)
			}
			err = &HaltError{CancelOutput: h.cancel}
		}
	}()

	err = body()
	return ctx, err
}
