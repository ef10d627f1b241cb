package tracker_test

import (
	"fmt"
	"testing"

	"github.com/ripplekit/ripple/tracker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// a failed gate halts the body before the statements after it
func TestRequireHaltsBody(t *testing.T) {
	rt := tracker.New(nil)

	user := tracker.NewCell[*string](rt, nil)
	log := []string{}
	tracker.Observe(rt, func() error {
		u := user.Read()
		tracker.Require(rt, u)
		log = append(log, *u)
		return nil
	})
	assert.Empty(t, log)

	name := "ada"
	user.Write(&name)
	assert.Equal(t, []string{"ada"}, log)
}

// a halt is not an error: the runtime error callback stays silent
func TestRequireHaltIsNotAFault(t *testing.T) {
	faults := 0
	rt := tracker.New(func(from tracker.Node, err error) { faults++ })

	ready := tracker.NewCell(rt, false)
	tracker.Observe(rt, func() error {
		tracker.Require(rt, ready.Read())
		return nil
	})
	ready.Write(false)
	assert.Equal(t, 0, faults)
}

// subscriptions made before the gate stay live, so the consumer re-runs
// when the gated input arrives
func TestRequireKeepsEarlierSubscriptions(t *testing.T) {
	rt := tracker.New(nil)

	a := tracker.NewCell(rt, "")
	b := tracker.NewCell(rt, "x")
	log := []string{}
	tracker.Observe(rt, func() error {
		v := a.Read()
		tracker.Require(rt, v)
		log = append(log, v+b.Read())
		return nil
	})
	assert.Empty(t, log)

	// b was never read before the halt; writing it does nothing
	b.Write("y")
	assert.Empty(t, log)

	a.Write("ok")
	assert.Equal(t, []string{"oky"}, log)
}

func TestRequireTruthiness(t *testing.T) {
	rt := tracker.New(nil)

	gate := tracker.NewCell[any](rt, nil)
	passed := 0
	tracker.Observe(rt, func() error {
		tracker.Require(rt, gate.Read())
		passed++
		return nil
	})

	halting := []any{
		nil,
		false,
		"",
		[]int{},
		map[string]int{},
		(*int)(nil),
		fmt.Errorf("not found"),
	}
	for _, v := range halting {
		before := passed
		gate.Write(v)
		assert.Equal(t, before, passed, "expected halt for %#v", v)
	}

	present := []any{
		true,
		0, // zero is a value, not an absence
		0.0,
		-1,
		"s",
		[]int{0},
		map[string]int{"k": 0},
		struct{}{},
	}
	for _, v := range present {
		before := passed
		gate.Write(v)
		assert.Equal(t, before+1, passed, "expected pass for %#v", v)
	}
}

// outside any consumer the gate cannot halt; it warns and returns
func TestRequireOutsideConsumerWarns(t *testing.T) {
	rt := tracker.New(nil)

	warnings := 0
	rt.SetWarnHandler(func(format string, args ...any) { warnings++ })

	require.NotPanics(t, func() {
		tracker.Require(rt, nil)
	})
	assert.Equal(t, 1, warnings)

	tracker.Require(rt, "fine")
	assert.Equal(t, 1, warnings)
}

// the gate works inside derived thunks too: the halt becomes the cached error
func TestRequireInsideDerived(t *testing.T) {
	rt := tracker.New(nil)

	src := tracker.NewCell(rt, "")
	d := tracker.Derive(rt, func() (string, error) {
		v := src.Read()
		tracker.Require(rt, v)
		return "got " + v, nil
	})

	_, err := d.Get()
	require.Error(t, err)
	assert.True(t, tracker.IsHalt(err))

	src.Write("data")
	v, err := d.Get()
	require.NoError(t, err)
	assert.Equal(t, "got data", v)
}
