package output

import (
	"encoding/json"
	"sort"

	"github.com/sweeptools/memsweep/internal/guard"
	"github.com/sweeptools/memsweep/pkg/model"
)

type listing struct {
	Memory      *model.MemorySummary  `json:"memory,omitempty"`
	MemoryError string                `json:"memory_error,omitempty"`
	Processes   []model.ProcessRecord `json:"processes"`
}

// classify returns the snapshot's records sorted by resident memory
// descending with the essential flag filled in from the guard.
func classify(snap model.Snapshot, g *guard.List) []model.ProcessRecord {
	procs := make([]model.ProcessRecord, len(snap.Procs))
	copy(procs, snap.Procs)
	for i := range procs {
		procs[i].Essential = g.Essential(procs[i].PID, procs[i].Name)
	}
	sort.SliceStable(procs, func(i, j int) bool {
		return procs[i].ResidentBytes > procs[j].ResidentBytes
	})
	return procs
}

// ToJSON renders one snapshot for scripting.
func ToJSON(snap model.Snapshot, g *guard.List) (string, error) {
	l := listing{Processes: classify(snap, g)}
	if snap.MemoryErr != nil {
		l.MemoryError = snap.MemoryErr.Error()
	} else {
		mem := snap.Memory
		l.Memory = &mem
	}

	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
