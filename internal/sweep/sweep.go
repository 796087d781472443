// Package sweep delivers termination signals, gated by the essential-process
// guard. Essential targets are refused before any OS call is made.
package sweep

import (
	"errors"
	"fmt"
	"os"
	"syscall"

	"github.com/shirou/gopsutil/v4/process"

	"github.com/sweeptools/memsweep/internal/guard"
	"github.com/sweeptools/memsweep/internal/reconcile"
	"github.com/sweeptools/memsweep/pkg/model"
)

// Sweeper terminates processes. The signal func is swappable so tests never
// touch real processes.
type Sweeper struct {
	guard  *guard.List
	signal func(pid int32) error
}

// New returns a Sweeper that sends SIGTERM through gopsutil.
func New(g *guard.List) *Sweeper {
	return &Sweeper{guard: g, signal: sendTerm}
}

// NewWithSignal returns a Sweeper with a custom signal delivery func.
func NewWithSignal(g *guard.List, signal func(pid int32) error) *Sweeper {
	return &Sweeper{guard: g, signal: signal}
}

func sendTerm(pid int32) error {
	p, err := process.NewProcess(pid)
	if err != nil {
		return err
	}
	return p.Terminate()
}

// Terminate asks pid to exit. Essential targets return Blocked without any
// signal being issued. A process that is already gone returns NotFound, which
// callers treat as success. The error is non-nil only for PermissionDenied
// and names the target for display.
func (s *Sweeper) Terminate(pid int32, name string) (model.Outcome, error) {
	if s.guard.Essential(pid, name) {
		return model.Blocked, nil
	}

	err := s.signal(pid)
	switch {
	case err == nil:
		return model.Sent, nil
	case isGone(err):
		return model.NotFound, nil
	default:
		return model.PermissionDenied, fmt.Errorf("terminate %s (pid %d): %w", name, pid, err)
	}
}

func isGone(err error) bool {
	return errors.Is(err, syscall.ESRCH) ||
		errors.Is(err, os.ErrProcessDone) ||
		errors.Is(err, process.ErrorProcessNotRunning)
}

// Clean terminates every non-essential row currently displayed. It works off
// the rows the reconciler already holds and never re-samples mid-operation.
// Blocked and denied targets are counted, not fatal.
func (s *Sweeper) Clean(rows []*reconcile.Row) model.SweepSummary {
	var sum model.SweepSummary
	for _, row := range rows {
		outcome, _ := s.Terminate(row.PID, row.Name)
		switch outcome {
		case model.Sent:
			sum.Sent++
		case model.Blocked:
			sum.Blocked++
		case model.NotFound:
			sum.Gone++
		case model.PermissionDenied:
			sum.Denied++
		}
	}
	return sum
}
