package tracker

import (
	"log"
	"sync"
	"sync/atomic"

	"github.com/petermattis/goid"
)

// OnErrorFunc receives errors raised by consumer bodies (observer actions,
// output computations). Silent halts never reach it.
type OnErrorFunc func(from Node, err error)

// Node is anything that can be reported as the origin of an error or
// warning: observers, derived computations, outputs.
type Node interface {
	isNode()
}

// WarnFunc receives diagnostics that are worth surfacing but are not
// failures: writes from inside a derived evaluation, stale reads in debug
// mode, observers hitting the per-flush rerun cap.
type WarnFunc func(format string, args ...any)

// Runtime owns one dependency graph: the current execution context, the
// batch depth and the FIFO queue of pending observers. All state is guarded
// by a goroutine-reentrant lock so external producers (tickers, input
// adapters on other goroutines) serialize against the running flush, while
// consumer bodies re-entering the runtime on the flushing goroutine pass
// straight through. Execution stays cooperative: consumer bodies never run
// in parallel.
type Runtime struct {
	lk relock

	onError OnErrorFunc
	warnf   WarnFunc
	debug   bool

	current *Context
	paused  []*Context

	batchDepth int
	inFlush    bool
	flushPass  uint64

	queue      []*Observer
	deferred   []*Observer
	afterFlush []func()

	nextCtxID  uint64
	nextAnonID uint64
}

// New creates an empty runtime. onError may be nil, in which case consumer
// errors are only visible to whoever holds the failing node.
func New(onError OnErrorFunc) *Runtime {
	return &Runtime{
		onError: onError,
		warnf:   log.Printf,
	}
}

// SetWarnHandler replaces the diagnostics sink. A nil handler silences
// diagnostics entirely.
func (rt *Runtime) SetWarnHandler(fn WarnFunc) {
	rt.lk.lock()
	defer rt.lk.unlock()
	if fn == nil {
		fn = func(string, ...any) {}
	}
	rt.warnf = fn
}

// SetDebug toggles stale-read reporting.
func (rt *Runtime) SetDebug(on bool) {
	rt.lk.lock()
	defer rt.lk.unlock()
	rt.debug = on
}

// CurrentContext returns the context of the consumer currently executing,
// or nil for a bare top-level read.
func (rt *Runtime) CurrentContext() *Context {
	rt.lk.lock()
	defer rt.lk.unlock()
	return rt.current
}

// Active reports whether a consumer body is currently executing.
func (rt *Runtime) Active() bool {
	return rt.CurrentContext() != nil
}

// StartBatch suspends flushing until the matching EndBatch. Writes inside a
// batch still invalidate and enqueue; they just don't re-run anything yet.
func (rt *Runtime) StartBatch() {
	rt.lk.lock()
	defer rt.lk.unlock()
	rt.batchDepth++
}

// EndBatch closes the innermost batch. Closing the outermost batch flushes.
func (rt *Runtime) EndBatch() {
	rt.lk.lock()
	defer rt.lk.unlock()
	rt.batchDepth--
	if rt.batchDepth == 0 {
		rt.maybeFlush()
	}
}

// Batch runs fn with flushing suspended, so that any number of writes
// inside fn coalesce into a single re-run per affected observer.
func (rt *Runtime) Batch(fn func()) {
	rt.StartBatch()
	defer rt.EndBatch()
	fn()
}

// Flush drains the pending queue now. A no-op inside a batch or while a
// flush is already running.
func (rt *Runtime) Flush() {
	rt.lk.lock()
	defer rt.lk.unlock()
	rt.maybeFlush()
}

// AfterFlush registers fn to run once the pending queue next drains, after
// all pending observers have re-run.
func (rt *Runtime) AfterFlush(fn func()) {
	rt.lk.lock()
	defer rt.lk.unlock()
	rt.afterFlush = append(rt.afterFlush, fn)
	rt.maybeFlush()
}

// PauseTracking swaps the current context out for "no context". Reads made
// until ResumeTracking register no subscription.
func (rt *Runtime) PauseTracking() {
	rt.lk.lock()
	defer rt.lk.unlock()
	rt.paused = append(rt.paused, rt.current)
	rt.current = nil
}

// ResumeTracking restores the context saved by the matching PauseTracking.
func (rt *Runtime) ResumeTracking() {
	rt.lk.lock()
	defer rt.lk.unlock()
	last := len(rt.paused) - 1
	rt.current = rt.paused[last]
	rt.paused = rt.paused[:last]
}

// Isolate runs fn with tracking paused: reads inside fn are fully evaluated
// but create no dependency edge on the calling consumer. This is the escape
// hatch that lets a consumer read-then-write a cell without invalidating
// itself.
func (rt *Runtime) Isolate(fn func()) {
	rt.lk.lock()
	defer rt.lk.unlock()
	rt.PauseTracking()
	defer rt.ResumeTracking()
	fn()
}

// Isolated is the value-returning form of Runtime.Isolate.
func Isolated[T any](rt *Runtime, fn func() T) T {
	var v T
	rt.Isolate(func() { v = fn() })
	return v
}

// maxRerunsPerFlush bounds an observer that unconditionally re-invalidates
// itself within a single flush. Such observers are legal (they are how
// polling sources are built) but must not hang the flush loop; past the cap
// they are deferred to the next flush.
const maxRerunsPerFlush = 1024

func (rt *Runtime) maybeFlush() {
	if rt.batchDepth == 0 && !rt.inFlush {
		rt.flush()
	}
}

// flush drains pending observers in FIFO order of becoming pending, then
// runs after-flush hooks. Observers enqueued mid-flush (including
// indirectly by themselves) are picked up by the same drain. Lock held.
func (rt *Runtime) flush() {
	rt.inFlush = true
	rt.flushPass++
	defer func() { rt.inFlush = false }()

	for {
		if len(rt.queue) > 0 {
			o := rt.queue[0]
			rt.queue = rt.queue[1:]
			o.queued = false
			if o.destroyed || o.suppressed {
				continue
			}
			if o.flushStamp != rt.flushPass {
				o.flushStamp = rt.flushPass
				o.flushRuns = 0
			}
			if o.flushRuns >= maxRerunsPerFlush {
				rt.warnf("tracker: observer %s re-ran %d times in one flush, deferring", o.describe(), o.flushRuns)
				rt.deferred = append(rt.deferred, o)
				continue
			}
			o.flushRuns++
			o.rerun()
			continue
		}
		if len(rt.afterFlush) > 0 {
			fn := rt.afterFlush[0]
			rt.afterFlush = rt.afterFlush[1:]
			fn()
			continue
		}
		break
	}

	for _, o := range rt.deferred {
		rt.schedule(o)
	}
	rt.deferred = rt.deferred[:0]
}

// schedule enqueues an observer, idempotently. Lock held.
func (rt *Runtime) schedule(o *Observer) {
	if o.queued || o.destroyed || o.suppressed {
		return
	}
	o.queued = true
	rt.queue = append(rt.queue, o)
}

// fault reports a consumer error through the runtime callback. Halts are
// not failures and are swallowed here.
func (rt *Runtime) fault(from Node, err error) {
	if err == nil || IsHalt(err) {
		return
	}
	if rt.onError != nil {
		rt.onError(from, err)
	}
}

// relock is a goroutine-reentrant mutex keyed on goroutine ids. The flush
// loop holds the runtime lock while consumer bodies run; those bodies call
// straight back into Read/Write/Get on the same goroutine and must pass
// through, while writers on other goroutines (tickers) must block.
type relock struct {
	mu    sync.Mutex
	owner atomic.Int64
	depth int
}

func (l *relock) lock() {
	g := goid.Get()
	if l.owner.Load() == g {
		l.depth++
		return
	}
	l.mu.Lock()
	l.owner.Store(g)
	l.depth = 1
}

func (l *relock) unlock() {
	l.depth--
	if l.depth == 0 {
		l.owner.Store(0)
		l.mu.Unlock()
	}
}
