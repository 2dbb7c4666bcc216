// Package sysmon samples host CPU and memory load for the verbose run
// report.
package sysmon

import (
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats is one host-wide snapshot.
type Stats struct {
	CPUPercent   float64 // 0.0 .. 100.0, since the previous sample
	MemPercent   float64 // 0.0 .. 100.0
	MemAvailable uint64  // bytes
}

// Sample reads host CPU and memory usage. Readings that fail are left at
// zero. The first CPU reading of a process measures since boot.
func Sample() Stats {
	var s Stats
	if pcts, err := cpu.Percent(0, false); err == nil && len(pcts) > 0 {
		s.CPUPercent = pcts[0]
	}
	if vm, err := mem.VirtualMemory(); err == nil && vm != nil {
		s.MemPercent = vm.UsedPercent
		s.MemAvailable = vm.Available
	}
	return s
}
