package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/sweeptools/memsweep/internal/config"
	"github.com/sweeptools/memsweep/pkg/model"
)

func snapshotOf(procs ...model.ProcessRecord) snapshotMsg {
	return snapshotMsg{snap: model.Snapshot{
		Procs:  procs,
		Memory: model.MemorySummary{Total: 8 << 30, Available: 2 << 30, Used: 5 << 30},
	}}
}

func TestApplySnapshotRanksByMemory(t *testing.T) {
	t.Parallel()

	m := InitialModel(config.Default(), "")
	m.applySnapshot(snapshotOf(
		model.ProcessRecord{PID: 10, Name: "editor", ResidentBytes: 100 << 20},
		model.ProcessRecord{PID: 20, Name: "browser", ResidentBytes: 900 << 20},
		model.ProcessRecord{PID: 30, Name: "shell", ResidentBytes: 5 << 20},
	))

	rows := m.table.Rows()
	if len(rows) != 3 {
		t.Fatalf("row count %d", len(rows))
	}
	if rows[0][0] != "20" || rows[1][0] != "10" || rows[2][0] != "30" {
		t.Fatalf("rows not ranked by memory: %v", rows)
	}
	if m.refreshing {
		t.Fatalf("refresh guard not released")
	}
}

func TestCursorFollowsPIDAcrossRefresh(t *testing.T) {
	t.Parallel()

	m := InitialModel(config.Default(), "")
	m.applySnapshot(snapshotOf(
		model.ProcessRecord{PID: 1, Name: "a", ResidentBytes: 300},
		model.ProcessRecord{PID: 2, Name: "b", ResidentBytes: 200},
		model.ProcessRecord{PID: 3, Name: "c", ResidentBytes: 100},
	))
	m.table.SetCursor(2) // pid 3

	// pid 3 jumps to the top.
	m.applySnapshot(snapshotOf(
		model.ProcessRecord{PID: 1, Name: "a", ResidentBytes: 300},
		model.ProcessRecord{PID: 2, Name: "b", ResidentBytes: 200},
		model.ProcessRecord{PID: 3, Name: "c", ResidentBytes: 900},
	))

	if m.table.Cursor() != 0 {
		t.Fatalf("cursor at %d, want 0 (following pid 3)", m.table.Cursor())
	}
	if pid, _ := m.cursorPID(); pid != 3 {
		t.Fatalf("cursor resolves to pid %d, want 3", pid)
	}
}

func TestFilterNarrowsVisibleRows(t *testing.T) {
	t.Parallel()

	m := InitialModel(config.Default(), "")
	m.applySnapshot(snapshotOf(
		model.ProcessRecord{PID: 1, Name: "chrome", ResidentBytes: 300},
		model.ProcessRecord{PID: 2, Name: "slack", ResidentBytes: 200},
		model.ProcessRecord{PID: 3, Name: "chromium", ResidentBytes: 100},
	))

	m.input.SetValue("chrom")
	m.syncTable()

	if len(m.visible) != 2 {
		t.Fatalf("visible %d rows, want 2", len(m.visible))
	}
	for _, r := range m.visible {
		if !strings.Contains(r.Name, "chrom") {
			t.Fatalf("filter leaked row %q", r.Name)
		}
	}
}

func TestTerminateRefusedForEssential(t *testing.T) {
	t.Parallel()

	m := InitialModel(config.Default(), "")
	m.applySnapshot(snapshotOf(
		model.ProcessRecord{PID: 1, Name: "launchd", ResidentBytes: 900},
		model.ProcessRecord{PID: 50, Name: "game", ResidentBytes: 100},
	))
	m.table.SetCursor(0) // launchd, ranked first

	res, _ := m.requestTerminate()
	got := res.(MainModel)
	if got.pendingAction != actionNone {
		t.Fatalf("essential target must not open a confirm prompt")
	}
	if !strings.Contains(got.statusMsg, "essential") {
		t.Fatalf("refusal not surfaced: %q", got.statusMsg)
	}
}

func TestTerminateOpensConfirmForOrdinaryProcess(t *testing.T) {
	t.Parallel()

	m := InitialModel(config.Default(), "")
	m.applySnapshot(snapshotOf(
		model.ProcessRecord{PID: 50, Name: "game", ResidentBytes: 100},
	))
	m.table.SetCursor(0)

	res, _ := m.requestTerminate()
	got := res.(MainModel)
	if got.pendingAction != actionTerm || got.pendingPID != 50 {
		t.Fatalf("confirm prompt not armed: %+v", got.pendingAction)
	}
}

func TestSummaryFailureIsDistinctState(t *testing.T) {
	t.Parallel()

	m := InitialModel(config.Default(), "")
	msg := snapshotOf(model.ProcessRecord{PID: 50, Name: "game", ResidentBytes: 100})
	msg.snap.MemoryErr = errors.New("no sysctl")
	m.applySnapshot(msg)

	line := m.memoryLine()
	if !strings.Contains(line, "unavailable") {
		t.Fatalf("summary failure not shown: %q", line)
	}
	if len(m.visible) != 1 {
		t.Fatalf("process rows must survive a summary failure")
	}
}

func TestFractionIndex(t *testing.T) {
	t.Parallel()

	cases := []struct {
		f    float64
		n    int
		want int
	}{
		{0, 10, 0},
		{1, 10, 9},
		{0.5, 11, 5},
		{0.75, 1, 0},
		{2.0, 4, 3},
		{-1, 4, 0},
	}
	for _, c := range cases {
		if got := fractionIndex(c.f, c.n); got != c.want {
			t.Fatalf("fractionIndex(%v, %d) = %d, want %d", c.f, c.n, got, c.want)
		}
	}
}

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	if got := formatBytes(512); got != "512 B" {
		t.Fatalf("formatBytes(512) = %q", got)
	}
	if got := formatBytes(2 << 30); got != "2.0 GB" {
		t.Fatalf("formatBytes(2GB) = %q", got)
	}
}
