package tracker_test

import (
	"sync"
	"testing"
	"time"

	"github.com/ripplekit/ripple/tracker"
	"github.com/stretchr/testify/assert"
)

// the ticker writes from its own goroutine; consumers re-run per tick
func TestTickerInvalidatesReaders(t *testing.T) {
	rt := tracker.New(nil)

	tick := tracker.NewTicker(rt, 10*time.Millisecond)
	defer tick.Stop()

	var mu sync.Mutex
	runs := 0
	tracker.Observe(rt, func() error {
		tick.Read()
		mu.Lock()
		runs++
		mu.Unlock()
		return nil
	})

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return runs >= 3
	}, 2*time.Second, 5*time.Millisecond)
}

func TestTickerStop(t *testing.T) {
	rt := tracker.New(nil)

	tick := tracker.NewTicker(rt, 5*time.Millisecond)

	var mu sync.Mutex
	runs := 0
	tracker.Observe(rt, func() error {
		tick.Read()
		mu.Lock()
		runs++
		mu.Unlock()
		return nil
	})

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return runs >= 2
	}, 2*time.Second, 2*time.Millisecond)

	tick.Stop()
	tick.Stop() // idempotent

	// after stop, in-flight ticks drain and then nothing moves
	time.Sleep(30 * time.Millisecond)
	mu.Lock()
	settled := runs
	mu.Unlock()

	time.Sleep(50 * time.Millisecond)
	mu.Lock()
	final := runs
	mu.Unlock()
	assert.Equal(t, settled, final)

	// the cell keeps its last tick
	assert.False(t, tick.Read().IsZero())
}
