package tracker

import "reflect"

// haltPanic is the sentinel thrown by the require gate. It is recovered at
// the context boundary (or by capture, for outputs) and converted to a
// *HaltError; it never escapes the runtime.
type haltPanic struct {
	cancel bool
}

// Require halts the current consumer body, without error, when v is absent:
// nil, false, an empty string, an empty slice or map, a nil pointer, or an
// error value. Statements after the gate do not run for this execution; the
// consumer re-runs normally on its next invalidation. Must be called from
// within a consumer body.
func Require(rt *Runtime, v any) {
	requireValue(rt, v, false)
}

// RequireCancel is Require, but an output consumer halted by it discards
// its published value instead of keeping the last one.
func RequireCancel(rt *Runtime, v any) {
	requireValue(rt, v, true)
}

func requireValue(rt *Runtime, v any, cancel bool) {
	if truthy(v) {
		return
	}
	if rt.CurrentContext() == nil {
		rt.warnf("tracker: require gate outside of a consumer body, ignoring")
		return
	}
	panic(haltPanic{cancel: cancel})
}

// capture runs fn, converting a require-gate halt into the error it stands
// for. Other panics propagate.
func capture[T any](fn func() (T, error)) (v T, err error) {
	defer func() {
		if r := recover(); r != nil {
			h, ok := r.(haltPanic)
			if !ok {
				panic(r)
			}
			err = &HaltError{CancelOutput: h.cancel}
		}
	}()
	return fn()
}

// truthy decides presence for the require gate. Numbers are always present,
// zero included; absence is about missing input, not falsy arithmetic.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case error:
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array, reflect.Chan:
		return rv.Len() > 0
	case reflect.Pointer, reflect.Interface, reflect.Func:
		return !rv.IsNil()
	}
	return true
}
