package metrics

import "runtime"

// MemorySnapshot holds a point-in-time memory reading.
type MemorySnapshot struct {
	HeapAlloc    uint64 // bytes in use
	TotalAlloc   uint64 // cumulative bytes allocated
	Sys          uint64 // total bytes obtained from the OS
	NumGC        uint32 // completed GC cycles
	PauseTotalNs uint64 // cumulative GC pause time
	Mallocs      uint64 // cumulative heap allocations
}

// MemoryDelta is the difference between two snapshots, reported after
// a run.
type MemoryDelta struct {
	PeakHeap     uint64
	Allocated    uint64
	Allocations  uint64
	GCCycles     uint32
	PauseTotalNs uint64
}

// MemoryCollector reads runtime memory statistics.
type MemoryCollector struct{}

// NewMemoryCollector creates a new memory collector.
func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{}
}

// Snapshot reads current memory statistics.
func (mc *MemoryCollector) Snapshot() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc:    m.HeapAlloc,
		TotalAlloc:   m.TotalAlloc,
		Sys:          m.Sys,
		NumGC:        m.NumGC,
		PauseTotalNs: m.PauseTotalNs,
		Mallocs:      m.Mallocs,
	}
}

// Since returns what was allocated between before and now.
func (mc *MemoryCollector) Since(before MemorySnapshot) MemoryDelta {
	now := mc.Snapshot()
	return MemoryDelta{
		PeakHeap:     max(now.HeapAlloc, before.HeapAlloc),
		Allocated:    now.TotalAlloc - before.TotalAlloc,
		Allocations:  now.Mallocs - before.Mallocs,
		GCCycles:     now.NumGC - before.NumGC,
		PauseTotalNs: now.PauseTotalNs - before.PauseTotalNs,
	}
}
