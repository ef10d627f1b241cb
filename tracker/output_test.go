package tracker_test

import (
	"fmt"
	"testing"

	"github.com/ripplekit/ripple/tracker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordSink keeps the publish/discard history for assertions.
type recordSink struct {
	log []string
}

func (s *recordSink) Publish(v string) { s.log = append(s.log, "publish "+v) }
func (s *recordSink) Discard()         { s.log = append(s.log, "discard") }

func TestOutputPublishesOnEveryRun(t *testing.T) {
	rt := tracker.New(nil)

	name := tracker.NewCell(rt, "ada")
	sink := &recordSink{}
	tracker.NewOutput[string](rt, sink, func() (string, error) {
		return "hello " + name.Read(), nil
	})
	assert.Equal(t, []string{"publish hello ada"}, sink.log)

	name.Write("grace")
	assert.Equal(t, []string{"publish hello ada", "publish hello grace"}, sink.log)
}

// a plain halt skips the publish and keeps whatever was published last
func TestOutputHaltKeepsLastValue(t *testing.T) {
	rt := tracker.New(nil)

	name := tracker.NewCell(rt, "ada")
	sink := &recordSink{}
	tracker.NewOutput[string](rt, sink, func() (string, error) {
		v := name.Read()
		tracker.Require(rt, v)
		return "hello " + v, nil
	})
	require.Equal(t, []string{"publish hello ada"}, sink.log)

	name.Write("")
	assert.Equal(t, []string{"publish hello ada"}, sink.log)

	name.Write("grace")
	assert.Equal(t, []string{"publish hello ada", "publish hello grace"}, sink.log)
}

// a cancelling halt discards the published value instead
func TestOutputCancelHaltDiscards(t *testing.T) {
	rt := tracker.New(nil)

	name := tracker.NewCell(rt, "ada")
	sink := &recordSink{}
	tracker.NewOutput[string](rt, sink, func() (string, error) {
		v := name.Read()
		tracker.RequireCancel(rt, v)
		return "hello " + v, nil
	})
	require.Equal(t, []string{"publish hello ada"}, sink.log)

	name.Write("")
	assert.Equal(t, []string{"publish hello ada", "discard"}, sink.log)
}

// compute errors do not reach the sink; they go to the runtime callback
func TestOutputErrorGoesToCallback(t *testing.T) {
	var faults []error
	rt := tracker.New(func(from tracker.Node, err error) {
		faults = append(faults, err)
	})

	name := tracker.NewCell(rt, "ada")
	sink := &recordSink{}
	tracker.NewOutput[string](rt, sink, func() (string, error) {
		v := name.Read()
		if v == "bad" {
			return "", fmt.Errorf("render failed")
		}
		return "hello " + v, nil
	})
	require.Empty(t, faults)

	name.Write("bad")
	assert.Equal(t, []string{"publish hello ada"}, sink.log)
	require.Len(t, faults, 1)
	assert.EqualError(t, faults[0], "render failed")
}

func TestOutputSuppressResume(t *testing.T) {
	rt := tracker.New(nil)

	name := tracker.NewCell(rt, "ada")
	sink := &recordSink{}
	out := tracker.NewOutput[string](rt, sink, func() (string, error) {
		return name.Read(), nil
	})
	require.Equal(t, []string{"publish ada"}, sink.log)

	out.Suppress()
	name.Write("grace")
	name.Write("edsger")
	assert.Equal(t, []string{"publish ada"}, sink.log)

	// resume publishes the current value exactly once
	out.Resume()
	assert.Equal(t, []string{"publish ada", "publish edsger"}, sink.log)
}

func TestOutputDestroy(t *testing.T) {
	rt := tracker.New(nil)

	name := tracker.NewCell(rt, "ada")
	sink := &recordSink{}
	out := tracker.NewOutput[string](rt, sink, func() (string, error) {
		return name.Read(), nil
	})

	out.Destroy()
	assert.True(t, out.Observer().Destroyed())

	name.Write("grace")
	assert.Equal(t, []string{"publish ada"}, sink.log)
}
