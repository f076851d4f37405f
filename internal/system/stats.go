package system

import (
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// Stats represents host statistics for the system endpoint
type Stats struct {
	Hostname      string      `json:"hostname"`
	UptimeSeconds uint64      `json:"uptime_seconds"`
	CPU           CPUStats    `json:"cpu"`
	Memory        MemoryStats `json:"memory"`
	Disk          DiskStats   `json:"disk"`
	Timestamp     time.Time   `json:"timestamp"`
}

// CPUStats represents CPU usage statistics
type CPUStats struct {
	UsagePercent float64 `json:"usage_percent"`
	Cores        int     `json:"cores"`
}

// MemoryStats represents memory usage statistics
type MemoryStats struct {
	Total        uint64  `json:"total_bytes"`
	Used         uint64  `json:"used_bytes"`
	Available    uint64  `json:"available_bytes"`
	UsagePercent float64 `json:"usage_percent"`
}

// DiskStats represents disk usage statistics
type DiskStats struct {
	Total        uint64  `json:"total_bytes"`
	Used         uint64  `json:"used_bytes"`
	Free         uint64  `json:"free_bytes"`
	UsagePercent float64 `json:"usage_percent"`
	Path         string  `json:"path"`
}

// Collector collects host statistics
type Collector struct {
	diskPath string
}

// NewCollector creates a stats collector sampling disk usage at diskPath
func NewCollector(diskPath string) *Collector {
	if diskPath == "" {
		diskPath = "/"
	}
	return &Collector{diskPath: diskPath}
}

// Collect retrieves host statistics. Individual probe failures degrade to
// zero values rather than failing the whole collection.
func (c *Collector) Collect() *Stats {
	slog.Debug("collecting host statistics")

	hostname, err := os.Hostname()
	if err != nil {
		slog.Warn("failed to get hostname", "error", err)
		hostname = "unknown"
	}

	var (
		cpuStats  CPUStats
		memStats  MemoryStats
		diskStats DiskStats
		uptime    uint64
	)

	var wg sync.WaitGroup
	wg.Add(4)

	go func() {
		defer wg.Done()
		cpuStats = c.getCPUStats()
	}()

	go func() {
		defer wg.Done()
		memStats = c.getMemoryStats()
	}()

	go func() {
		defer wg.Done()
		diskStats = c.getDiskStats()
	}()

	go func() {
		defer wg.Done()
		uptime = c.getUptime()
	}()

	wg.Wait()

	return &Stats{
		Hostname:      hostname,
		UptimeSeconds: uptime,
		CPU:           cpuStats,
		Memory:        memStats,
		Disk:          diskStats,
		Timestamp:     time.Now(),
	}
}

func (c *Collector) getCPUStats() CPUStats {
	cores, err := cpu.Counts(true)
	if err != nil {
		slog.Warn("failed to get CPU count", "error", err)
		cores = 1
	}

	// Zero duration returns the percentage since the last call instead of
	// blocking the request for a sampling window
	percentages, err := cpu.Percent(0, false)
	if err != nil || len(percentages) == 0 {
		slog.Warn("failed to get CPU usage", "error", err)
		return CPUStats{UsagePercent: 0, Cores: cores}
	}

	return CPUStats{UsagePercent: percentages[0], Cores: cores}
}

func (c *Collector) getMemoryStats() MemoryStats {
	vm, err := mem.VirtualMemory()
	if err != nil {
		slog.Warn("failed to get memory stats", "error", err)
		return MemoryStats{}
	}

	return MemoryStats{
		Total:        vm.Total,
		Used:         vm.Used,
		Available:    vm.Available,
		UsagePercent: vm.UsedPercent,
	}
}

func (c *Collector) getDiskStats() DiskStats {
	usage, err := disk.Usage(c.diskPath)
	if err != nil {
		slog.Warn("failed to get disk stats", "path", c.diskPath, "error", err)
		return DiskStats{Path: c.diskPath}
	}

	return DiskStats{
		Total:        usage.Total,
		Used:         usage.Used,
		Free:         usage.Free,
		UsagePercent: usage.UsedPercent,
		Path:         c.diskPath,
	}
}

func (c *Collector) getUptime() uint64 {
	uptime, err := host.Uptime()
	if err != nil {
		slog.Warn("failed to get host uptime", "error", err)
		return 0
	}
	return uptime
}
