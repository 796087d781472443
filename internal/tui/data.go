package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sweeptools/memsweep/internal/config"
	"github.com/sweeptools/memsweep/internal/proc"
	"github.com/sweeptools/memsweep/internal/reconcile"
)

func waitTick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// refreshNow samples off the UI loop and hands the completed snapshot back
// as a message. The reconciler only ever sees finished snapshots.
func (m MainModel) refreshNow() tea.Cmd {
	return func() tea.Msg {
		snap, err := proc.Sample()
		return snapshotMsg{snap: snap, err: err}
	}
}

func listenConfig(ch <-chan *config.Config) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		cfg, ok := <-ch
		if !ok {
			return nil
		}
		return configMsg{cfg: cfg}
	}
}

// applySnapshot runs one reconciliation: selection is captured from the
// cursor by PID, the state diffs the snapshot into the sink, and the table
// is rebuilt from the surviving rows.
func (m *MainModel) applySnapshot(snap snapshotMsg) {
	m.refreshing = false

	if snap.err != nil {
		m.statusMsg = fmt.Sprintf("Refresh failed: %v", snap.err)
		return
	}

	m.memory = snap.snap.Memory
	m.memErr = snap.snap.MemoryErr
	m.sampledAt = snap.snap.Taken

	if pid, ok := m.cursorPID(); ok {
		m.state.Select(pid)
	} else {
		m.state.ClearSelection()
	}

	m.sink.begin(m.scrollFraction())
	m.state.Apply(m.sink, snap.snap.Procs, m.guard.Essential)
	m.syncTable()
}

// syncTable pushes the reconciled rows into the table widget, honoring the
// filter and the reconciler's selection/scroll requests.
func (m *MainModel) syncTable() {
	filter := strings.ToLower(m.input.Value())

	m.visible = m.visible[:0]
	rows := make([]table.Row, 0, len(m.sink.rows))
	for _, r := range m.sink.rows {
		if !matchesFilter(r, filter) {
			continue
		}
		m.visible = append(m.visible, r)

		class := nonessentialStyle.Render("nonessential")
		if r.Essential {
			class = essentialStyle.Render("essential")
		}
		rows = append(rows, table.Row{
			strconv.Itoa(int(r.PID)),
			r.Name,
			fmt.Sprintf("%.1f", float64(r.ResidentBytes)/(1<<20)),
			class,
		})
	}
	m.table.SetRows(rows)

	if len(m.visible) == 0 {
		m.table.SetCursor(0)
		return
	}

	// Selection survives by PID; scrolling the selected row into view wins
	// over the raw scroll restore.
	if pid, ok := m.state.Selected(); ok {
		for i, r := range m.visible {
			if r.PID == pid {
				m.table.SetCursor(i)
				return
			}
		}
	}
	m.table.SetCursor(fractionIndex(m.sink.scroll, len(m.visible)))
}

func matchesFilter(r *reconcile.Row, filter string) bool {
	if filter == "" {
		return true
	}
	return strings.Contains(strings.ToLower(r.Name), filter) ||
		strings.Contains(strconv.Itoa(int(r.PID)), filter)
}

// cursorPID resolves the row under the cursor, if any.
func (m *MainModel) cursorPID() (int32, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.visible) {
		return 0, false
	}
	return m.visible[idx].PID, true
}

func (m *MainModel) scrollFraction() float64 {
	if len(m.visible) <= 1 {
		return 0
	}
	return float64(m.table.Cursor()) / float64(len(m.visible)-1)
}

func fractionIndex(f float64, n int) int {
	if n <= 1 {
		return 0
	}
	idx := int(math.Round(f * float64(n-1)))
	if idx < 0 {
		idx = 0
	}
	if idx >= n {
		idx = n - 1
	}
	return idx
}

func formatBytes(bytes uint64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := uint64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
		if exp >= 5 { //avoid index out of range
			break
		}
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
