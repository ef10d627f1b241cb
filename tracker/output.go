package tracker

import "errors"

// Sink receives the values an output consumer publishes. Discard is called
// when a cancelling halt asks for the published value to be dropped rather
// than left as-is.
type Sink[T any] interface {
	Publish(value T)
	Discard()
}

// Output is a render-target consumer: an observer whose action computes a
// value and publishes it to an external sink. Visibility is a toggle:
// Suppress keeps the output dormant even when invalidated, Resume forces
// one unconditional re-run.
type Output[T any] struct {
	obs     *Observer
	sink    Sink[T]
	compute func() (T, error)
}

func (out *Output[T]) isNode() {}

// NewOutput creates an output consumer and schedules its first publish.
func NewOutput[T any](rt *Runtime, sink Sink[T], compute func() (T, error)) *Output[T] {
	return NewOutputNamed(rt, "", sink, compute)
}

// NewOutputNamed is NewOutput with a diagnostic label.
func NewOutputNamed[T any](rt *Runtime, label string, sink Sink[T], compute func() (T, error)) *Output[T] {
	out := &Output[T]{
		sink:    sink,
		compute: compute,
	}
	out.obs = ObserveNamed(rt, label, out.run)
	return out
}

// run computes and publishes. A plain halt skips publishing and keeps the
// last published value; a cancelling halt additionally discards it. Real
// errors surface through the runtime error callback.
func (out *Output[T]) run() error {
	v, err := capture(out.compute)
	if err != nil {
		var h *HaltError
		if errors.As(err, &h) {
			if h.CancelOutput {
				out.sink.Discard()
			}
			return nil
		}
		return err
	}
	out.sink.Publish(v)
	return nil
}

// Suppress makes the output dormant: invalidations no longer re-enqueue it.
func (out *Output[T]) Suppress() { out.obs.Suppress() }

// Resume restores the output and forces one unconditional publish.
func (out *Output[T]) Resume() { out.obs.Resume() }

// Destroy permanently stops the output.
func (out *Output[T]) Destroy() { out.obs.Destroy() }

// Observer exposes the underlying observer handle.
func (out *Output[T]) Observer() *Observer { return out.obs }
