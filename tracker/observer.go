package tracker

// Observer is an eager consumer with no output value: it runs its action
// for side effects, once on creation and again after every invalidation of
// its current context. Each run gets a fresh context. Re-runs are queued
// and executed by the flush cycle, so a burst of invalidations from one
// write cascade costs a single re-run.
type Observer struct {
	rt     *Runtime
	id     uint64
	label  string
	action func() error

	ctx        *Context
	destroyed  bool
	suppressed bool
	queued     bool

	flushStamp uint64
	flushRuns  int
}

func (o *Observer) isNode() {}

// Observe creates an observer and schedules its first run, which happens on
// the next flush (immediately, unless a batch is open or a flush is already
// draining).
func Observe(rt *Runtime, action func() error) *Observer {
	return ObserveNamed(rt, "", action)
}

// ObserveNamed is Observe with a diagnostic label.
func ObserveNamed(rt *Runtime, label string, action func() error) *Observer {
	rt.lk.lock()
	defer rt.lk.unlock()
	o := &Observer{
		rt:     rt,
		id:     rt.nextNodeID(label),
		label:  label,
		action: action,
	}
	rt.schedule(o)
	rt.maybeFlush()
	return o
}

// rerun executes the action under a fresh context and arranges the next
// re-schedule. Action errors go to the runtime error callback; halts do
// not. Lock held (called from the flush loop).
func (o *Observer) rerun() {
	ctx, err := o.rt.runWithNewContext(o, kindObserver, o.describe(), o.action)
	o.ctx = ctx
	ctx.onInvalidateLocked(func() {
		if !o.destroyed && !o.suppressed {
			o.rt.schedule(o)
		}
	})
	o.rt.fault(o, err)
}

// Destroy makes the observer inert: it never runs again and holds no
// subscriptions. Idempotent.
func (o *Observer) Destroy() {
	o.rt.lk.lock()
	defer o.rt.lk.unlock()
	if o.destroyed {
		return
	}
	o.destroyed = true
	if o.ctx != nil {
		o.ctx.invalidateLocked()
	}
}

// Destroyed reports whether Destroy has been called.
func (o *Observer) Destroyed() bool {
	o.rt.lk.lock()
	defer o.rt.lk.unlock()
	return o.destroyed
}

// Suppress stops the observer from being re-enqueued when invalidated. The
// observer keeps its subscriptions; pending runs are dropped.
func (o *Observer) Suppress() {
	o.rt.lk.lock()
	defer o.rt.lk.unlock()
	o.suppressed = true
}

// Resume lifts suppression and forces one unconditional re-run, whether or
// not anything was invalidated while suppressed.
func (o *Observer) Resume() {
	o.rt.lk.lock()
	defer o.rt.lk.unlock()
	if !o.suppressed || o.destroyed {
		return
	}
	o.suppressed = false
	o.rt.schedule(o)
	o.rt.maybeFlush()
}

// Invalidate marks the observer's current run stale, scheduling a re-run.
func (o *Observer) Invalidate() {
	o.rt.lk.lock()
	defer o.rt.lk.unlock()
	if o.ctx != nil {
		o.ctx.invalidateLocked()
		o.rt.maybeFlush()
	}
}

// Context returns the context of the most recent run, nil before the first.
func (o *Observer) Context() *Context {
	o.rt.lk.lock()
	defer o.rt.lk.unlock()
	return o.ctx
}

func (o *Observer) describe() string {
	return describe(o.label, o.id)
}
