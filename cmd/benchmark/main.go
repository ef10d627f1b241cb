package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/ripplekit/ripple/tracker"
)

func main() {
	flag.Parse()

	f, err := os.Create("default.pgo")
	if err != nil {
		log.Fatal(err)
	}
	pprof.StartCPUProfile(f)
	defer pprof.StopCPUProfile()

	log.Printf("warming up")

	benchmarkPropagate(true)
	benchmarkBatchedWrites(true)
}

var (
	ww    = []int{1, 10, 100, 1_000}
	hh    = []int{1, 10, 100}
	iters = 100
)

// w parallel chains of h derived computations each, every chain capped by an
// observer; one write at the root propagates through everything.
func benchmarkPropagate(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("ripple propagate")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, w := range ww {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			rt := tracker.New(func(from tracker.Node, err error) {
				log.Panic(err)
			})
			src := tracker.NewCell(rt, 1)
			for i := 0; i < w; i++ {
				var last tracker.Source[int] = src
				for j := 0; j < h; j++ {
					prev := last
					last = tracker.Derive(rt, func() (int, error) {
						v, err := prev.Use()
						return v + 1, err
					})
				}

				leaf := last
				tracker.Observe(rt, func() error {
					_, err := leaf.Use()
					return err
				})
			}

			for i := 0; i < iters; i++ {
				start := time.Now()
				src.Write(src.Peek() + 1)
				tach.AddTime(time.Since(start))
			}

			calc := tach.Calc()
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("propagate: %d * %d", w, h),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
				},
			})
		}
	}

	if shouldRender {
		tbl.Render()
	}
}

// many cells written inside one batch, one observer reading them all; the
// measured cost is the coalesced flush.
func benchmarkBatchedWrites(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("ripple batched writes")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, w := range ww {
		tach := tachymeter.New(&tachymeter.Config{Size: iters})

		rt := tracker.New(func(from tracker.Node, err error) {
			log.Panic(err)
		})
		cells := make([]*tracker.Cell[int], w)
		for i := range cells {
			cells[i] = tracker.NewCell(rt, i)
		}
		tracker.Observe(rt, func() error {
			sum := 0
			for _, c := range cells {
				sum += c.Read()
			}
			_ = sum
			return nil
		})

		for i := 0; i < iters; i++ {
			start := time.Now()
			rt.Batch(func() {
				for _, c := range cells {
					c.Write(c.Peek() + 1)
				}
			})
			tach.AddTime(time.Since(start))
		}

		calc := tach.Calc()
		tbl.AppendRows([]table.Row{
			{
				fmt.Sprintf("batched: %d cells", w),
				calc.Time.Avg,
				calc.Time.Min,
				calc.Time.P75,
				calc.Time.P99,
				calc.Time.Max,
			},
		})
	}

	if shouldRender {
		tbl.Render()
	}
}
