package tracker

import (
	"sync"
	"time"
)

// Ticker is a timer-driven invalidation source: an external producer that
// periodically writes the current time into a cell it owns. Consumers that
// read the cell re-run once per tick. Stop is the only cancellation; there
// is no token threaded through the graph.
type Ticker struct {
	cell *Cell[time.Time]
	tick *time.Ticker
	done chan struct{}
	once sync.Once
}

// NewTicker starts a ticker writing every interval.
func NewTicker(rt *Runtime, interval time.Duration) *Ticker {
	t := &Ticker{
		cell: NewCellNamed(rt, "ticker", time.Now()),
		tick: time.NewTicker(interval),
		done: make(chan struct{}),
	}
	go t.loop()
	return t
}

func (t *Ticker) loop() {
	for {
		select {
		case now := <-t.tick.C:
			t.cell.Write(now)
		case <-t.done:
			return
		}
	}
}

// Read returns the last tick time, subscribing the current context.
func (t *Ticker) Read() time.Time {
	return t.cell.Read()
}

// Cell exposes the underlying cell.
func (t *Ticker) Cell() *Cell[time.Time] {
	return t.cell
}

// Stop halts the producer. The cell keeps its last value; nothing further
// invalidates its readers. Idempotent.
func (t *Ticker) Stop() {
	t.once.Do(func() {
		t.tick.Stop()
		close(t.done)
	})
}
