// Package proc produces point-in-time snapshots of OS processes and system
// memory. A snapshot is a pure function of OS state; nothing is retained
// between calls.
package proc

import (
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/process"

	"github.com/sweeptools/memsweep/pkg/model"
)

// Swappable for tests.
var (
	enumerate     = listRecords
	virtualMemory = mem.VirtualMemory
)

// Sample takes one complete snapshot of all processes visible at the caller's
// privilege level plus the whole-system memory summary. A failed summary read
// is reported on Snapshot.MemoryErr rather than as an error, so it stays
// distinguishable from a legitimately empty process list. The returned error
// covers only total enumeration failure. Record order is unspecified.
func Sample() (model.Snapshot, error) {
	snap := model.Snapshot{Taken: time.Now()}

	vm, err := virtualMemory()
	if err != nil {
		snap.MemoryErr = fmt.Errorf("read memory summary: %w", err)
	} else {
		snap.Memory = model.MemorySummary{
			Total:     vm.Total,
			Available: vm.Available,
			Used:      vm.Used,
		}
	}

	procs, err := enumerate()
	if err != nil {
		return snap, err
	}
	snap.Procs = procs
	return snap, nil
}

// listRecords walks the live process table. A process that exits mid-walk or
// denies access is skipped; one unreadable process never fails the sample.
func listRecords() ([]model.ProcessRecord, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, fmt.Errorf("enumerate processes: %w", err)
	}

	records := make([]model.ProcessRecord, 0, len(procs))
	for _, p := range procs {
		name, err := p.Name()
		if err != nil {
			continue
		}
		if name == "" {
			name = "?"
		}

		var rss uint64
		if mi, err := p.MemoryInfo(); err == nil && mi != nil {
			rss = mi.RSS
		}

		records = append(records, model.ProcessRecord{
			PID:           p.Pid,
			Name:          name,
			ResidentBytes: rss,
		})
	}
	return records, nil
}
