package storage

import (
	"fmt"
	"io"
	"runtime"
)

// HeapStats is a snapshot of the runtime heap counters.
type HeapStats struct {
	HeapAlloc   uint64
	HeapObjects uint64
	Mallocs     uint64
	Frees       uint64
	NumGC       uint32
}

// ReadHeap returns current memory statistics
func ReadHeap() HeapStats {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return HeapStats{
		HeapAlloc:   m.HeapAlloc,
		HeapObjects: m.HeapObjects,
		Mallocs:     m.Mallocs,
		Frees:       m.Frees,
		NumGC:       m.NumGC,
	}
}

// Fprint outputs memory usage information
func (h HeapStats) Fprint(w io.Writer, label string) error {
	_, err := fmt.Fprintf(w, "  [%s] heap alloc: %d KB, live objects: %d, GC cycles: %d\n",
		label, h.HeapAlloc/1024, h.HeapObjects, h.NumGC)
	return err
}
