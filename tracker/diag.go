package tracker

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// nextNodeID assigns a diagnostic id: labeled nodes hash their label so the
// id is stable across runs, anonymous nodes take a counter. Lock held.
func (rt *Runtime) nextNodeID(label string) uint64 {
	if label != "" {
		return xxhash.Sum64String(label)
	}
	rt.nextAnonID++
	return rt.nextAnonID
}

func describe(label string, id uint64) string {
	if label != "" {
		return label
	}
	return fmt.Sprintf("#%d", id)
}
