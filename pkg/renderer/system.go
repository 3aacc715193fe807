package renderer

import (
	"fmt"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
)

// SystemInfo describes the host a render runs on
type SystemInfo struct {
	CPUModel     string
	LogicalCores int
	ClockGHz     float64
	TotalRAMGB   uint64
}

// String formats the info as a single log line
func (s SystemInfo) String() string {
	return fmt.Sprintf("%s (%d logical cores @ %.2f GHz), %d GB RAM", s.CPUModel, s.LogicalCores, s.ClockGHz, s.TotalRAMGB)
}

// GetSystemInfo queries CPU and memory details
func GetSystemInfo() (SystemInfo, error) {
	cpuInfo, err := cpu.Info()
	if err != nil {
		return SystemInfo{}, err
	}
	if len(cpuInfo) == 0 {
		return SystemInfo{}, fmt.Errorf("no CPU information available")
	}

	memInfo, err := mem.VirtualMemory()
	if err != nil {
		return SystemInfo{}, err
	}

	return SystemInfo{
		CPUModel:     cpuInfo[0].ModelName,
		LogicalCores: HardwareConcurrency(),
		ClockGHz:     cpuInfo[0].Mhz / 1000,
		TotalRAMGB:   memInfo.Total / (1024 * 1024 * 1024),
	}, nil
}
