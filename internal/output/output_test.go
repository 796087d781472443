package output

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/sweeptools/memsweep/internal/guard"
	"github.com/sweeptools/memsweep/pkg/model"
)

func sampleSnapshot() model.Snapshot {
	return model.Snapshot{
		Procs: []model.ProcessRecord{
			{PID: 300, Name: "chrome", ResidentBytes: 512 << 20},
			{PID: 1, Name: "launchd", ResidentBytes: 64 << 20},
			{PID: 200, Name: "slack", ResidentBytes: 768 << 20},
		},
		Memory: model.MemorySummary{Total: 16 << 30, Available: 4 << 30, Used: 11 << 30},
	}
}

func TestToJSONSortsAndClassifies(t *testing.T) {
	t.Parallel()

	out, err := ToJSON(sampleSnapshot(), guard.Default())
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}

	var got struct {
		Memory    *model.MemorySummary  `json:"memory"`
		Processes []model.ProcessRecord `json:"processes"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if got.Memory == nil || got.Memory.Total != 16<<30 {
		t.Fatalf("memory summary missing: %+v", got.Memory)
	}
	if len(got.Processes) != 3 {
		t.Fatalf("process count: %d", len(got.Processes))
	}
	wantOrder := []int32{200, 300, 1}
	for i, pid := range wantOrder {
		if got.Processes[i].PID != pid {
			t.Fatalf("order[%d] = %d, want %d", i, got.Processes[i].PID, pid)
		}
	}
	if !got.Processes[2].Essential {
		t.Fatalf("launchd not classified essential")
	}
	if got.Processes[0].Essential {
		t.Fatalf("slack classified essential")
	}
}

func TestToJSONSummaryFailure(t *testing.T) {
	t.Parallel()

	snap := sampleSnapshot()
	snap.MemoryErr = errors.New("sysctl blocked")

	out, err := ToJSON(snap, guard.Default())
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	if !strings.Contains(out, "memory_error") || strings.Contains(out, `"memory":`) {
		t.Fatalf("summary failure not kept distinct from totals:\n%s", out)
	}
}

func TestRenderTable(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	RenderTable(&b, sampleSnapshot(), guard.Default())
	out := b.String()

	if !strings.Contains(out, "11.00 GB used") {
		t.Fatalf("memory summary missing:\n%s", out)
	}
	slack := strings.Index(out, "slack")
	chrome := strings.Index(out, "chrome")
	launchd := strings.Index(out, "launchd")
	if slack == -1 || chrome == -1 || launchd == -1 {
		t.Fatalf("rows missing:\n%s", out)
	}
	if !(slack < chrome && chrome < launchd) {
		t.Fatalf("rows not ranked by memory:\n%s", out)
	}
	if !strings.Contains(out, "essential") {
		t.Fatalf("class column missing:\n%s", out)
	}
}
