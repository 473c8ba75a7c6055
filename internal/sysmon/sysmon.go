// Package sysmon provides system-wide CPU, memory and load sampling for the
// TUI dashboard and benchmark report headers.
package sysmon

import (
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats holds a single snapshot of system-wide resource usage.
type Stats struct {
	CPUPercent float64 // 0.0 .. 100.0
	MemPercent float64 // 0.0 .. 100.0
	MemUsedMB  float64 // used physical memory, MiB
	MemTotalMB float64 // total physical memory, MiB
	Load1      float64 // 1-minute load average, 0 where unsupported
}

// Sample collects a single system-wide resource snapshot.
// CPU uses interval=0 (delta since last call). Fields individually fall back
// to zero values on error; a benchmark header with partial numbers beats one
// that refuses to render.
func Sample() Stats {
	var s Stats
	cpuPcts, err := cpu.Percent(0, false)
	if err == nil && len(cpuPcts) > 0 {
		s.CPUPercent = cpuPcts[0]
	}
	vmem, err := mem.VirtualMemory()
	if err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
		s.MemUsedMB = float64(vmem.Used) / (1024 * 1024)
		s.MemTotalMB = float64(vmem.Total) / (1024 * 1024)
	}
	avg, err := load.Avg()
	if err == nil && avg != nil {
		s.Load1 = avg.Load1
	}
	return s
}
