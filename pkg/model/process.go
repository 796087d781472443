package model

import "time"

// ProcessRecord is one process as seen in a single sample. Records are
// rebuilt on every refresh and never retained across cycles.
type ProcessRecord struct {
	PID           int32  `json:"pid"`
	Name          string `json:"name"`
	ResidentBytes uint64 `json:"resident_bytes"`
	Essential     bool   `json:"essential"`
}

// MemorySummary holds whole-system memory totals in bytes. Used+Available
// does not necessarily equal Total; accounting differs per OS.
type MemorySummary struct {
	Total     uint64 `json:"total"`
	Available uint64 `json:"available"`
	Used      uint64 `json:"used"`
}

// Snapshot is one complete, immutable sample of process and memory state.
// MemoryErr is set when the system summary could not be read; an empty
// Procs slice with a nil MemoryErr is a legitimately empty system.
type Snapshot struct {
	Procs     []ProcessRecord
	Memory    MemorySummary
	MemoryErr error
	Taken     time.Time
}
