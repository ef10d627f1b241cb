package tracker_test

import (
	"testing"

	"github.com/ripplekit/ripple/tracker"
	"github.com/stretchr/testify/assert"
)

func TestCellReadWrite(t *testing.T) {
	rt := tracker.New(nil)

	count := tracker.NewCell(rt, 1)
	assert.Equal(t, 1, count.Read())
	assert.Equal(t, uint64(0), count.Revision())

	count.Write(2)
	assert.Equal(t, 2, count.Read())
	assert.Equal(t, uint64(1), count.Revision())
}

// a top-level read outside any consumer registers no subscription
func TestCellTopLevelReadDoesNotSubscribe(t *testing.T) {
	rt := tracker.New(nil)

	a := tracker.NewCell(rt, 1)
	_ = a.Read()

	runs := 0
	tracker.Observe(rt, func() error {
		runs++
		return nil
	})
	assert.Equal(t, 1, runs)

	a.Write(2)
	assert.Equal(t, 1, runs)
}

// every write to a plain cell propagates, equal values included
func TestCellPlainWriteAlwaysPropagates(t *testing.T) {
	rt := tracker.New(nil)

	a := tracker.NewCell(rt, 5)
	runs := 0
	tracker.Observe(rt, func() error {
		a.Read()
		runs++
		return nil
	})
	assert.Equal(t, 1, runs)

	a.Write(5)
	assert.Equal(t, 2, runs)
}

// a cell with an equality function skips invalidation on unchanged writes
func TestCellEqualityShortCircuit(t *testing.T) {
	rt := tracker.New(nil)

	a := tracker.NewCellEq(rt, 5, tracker.Comparable[int]())
	runs := 0
	tracker.Observe(rt, func() error {
		a.Read()
		runs++
		return nil
	})
	assert.Equal(t, 1, runs)

	a.Write(5)
	assert.Equal(t, 1, runs)
	assert.Equal(t, uint64(0), a.Revision())

	a.Write(6)
	assert.Equal(t, 2, runs)
	assert.Equal(t, uint64(1), a.Revision())
}

func TestCellDeepEquality(t *testing.T) {
	rt := tracker.New(nil)

	a := tracker.NewCellEq(rt, []int{1, 2}, tracker.DeepEqual[[]int]())
	runs := 0
	tracker.Observe(rt, func() error {
		a.Read()
		runs++
		return nil
	})
	assert.Equal(t, 1, runs)

	a.Write([]int{1, 2})
	assert.Equal(t, 1, runs)

	a.Write([]int{1, 2, 3})
	assert.Equal(t, 2, runs)
}

// Peek never subscribes, even inside a consumer body
func TestCellPeekDoesNotSubscribe(t *testing.T) {
	rt := tracker.New(nil)

	a := tracker.NewCell(rt, 1)
	runs := 0
	tracker.Observe(rt, func() error {
		_ = a.Peek()
		runs++
		return nil
	})
	assert.Equal(t, 1, runs)

	a.Write(2)
	assert.Equal(t, 1, runs)
}

// redundant reads within one execution subscribe once; the next write still
// causes exactly one re-run
func TestCellRedundantReads(t *testing.T) {
	rt := tracker.New(nil)

	a := tracker.NewCell(rt, 1)
	runs := 0
	tracker.Observe(rt, func() error {
		a.Read()
		a.Read()
		a.Read()
		runs++
		return nil
	})
	assert.Equal(t, 1, runs)

	a.Write(2)
	assert.Equal(t, 2, runs)
}
