package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/indent"

	"github.com/sweeptools/memsweep/internal/guard"
	"github.com/sweeptools/memsweep/pkg/model"
)

// RenderTable writes a plain-text listing of one snapshot: the system memory
// summary followed by processes ranked by resident memory.
func RenderTable(w io.Writer, snap model.Snapshot, g *guard.List) {
	if snap.MemoryErr != nil {
		fmt.Fprintf(w, "Memory: unavailable (%v)\n", snap.MemoryErr)
	} else {
		fmt.Fprintf(w, "Memory: %.2f GB used, %.2f GB available, %.2f GB total\n",
			gb(snap.Memory.Used), gb(snap.Memory.Available), gb(snap.Memory.Total))
	}
	fmt.Fprintln(w)

	var b strings.Builder
	fmt.Fprintf(&b, "%-8s %-32s %12s  %s\n", "PID", "PROCESS", "RAM (MB)", "CLASS")
	for _, p := range classify(snap, g) {
		class := "nonessential"
		if p.Essential {
			class = "essential"
		}
		fmt.Fprintf(&b, "%-8d %-32s %12.1f  %s\n", p.PID, truncate(p.Name, 32), mb(p.ResidentBytes), class)
	}
	fmt.Fprint(w, indent.String(b.String(), 2))
}

func gb(bytes uint64) float64 {
	return float64(bytes) / (1 << 30)
}

func mb(bytes uint64) float64 {
	return float64(bytes) / (1 << 20)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}
