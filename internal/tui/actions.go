package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sweeptools/memsweep/pkg/model"
)

// requestTerminate opens the confirm prompt for the selected process. An
// essential target is refused outright; no prompt, no OS call.
func (m MainModel) requestTerminate() (tea.Model, tea.Cmd) {
	pid, ok := m.cursorPID()
	if !ok {
		m.statusMsg = "No process selected"
		return m, nil
	}
	row, ok := m.state.Row(pid)
	if !ok {
		return m, nil
	}
	if m.guard.Essential(row.PID, row.Name) {
		m.statusMsg = fmt.Sprintf("%s (PID %d) is essential and cannot be terminated", row.Name, row.PID)
		return m, nil
	}
	m.pendingAction = actionTerm
	m.pendingPID = row.PID
	m.pendingName = row.Name
	return m, nil
}

func (m MainModel) requestClean() (tea.Model, tea.Cmd) {
	candidates := 0
	for _, row := range m.state.Rows() {
		if !m.guard.Essential(row.PID, row.Name) {
			candidates++
		}
	}
	if candidates == 0 {
		m.statusMsg = "Nothing to clean"
		return m, nil
	}
	m.pendingAction = actionClean
	return m, nil
}

func (m MainModel) terminatePending() (tea.Model, tea.Cmd) {
	outcome, err := m.sweeper.Terminate(m.pendingPID, m.pendingName)
	switch outcome {
	case model.Sent:
		m.statusMsg = fmt.Sprintf("Terminate signal sent to %s (PID %d)", m.pendingName, m.pendingPID)
	case model.Blocked:
		m.statusMsg = fmt.Sprintf("%s (PID %d) is essential and cannot be terminated", m.pendingName, m.pendingPID)
	case model.NotFound:
		// Already gone; the next refresh drops the row.
		m.statusMsg = fmt.Sprintf("%s (PID %d) already exited", m.pendingName, m.pendingPID)
	case model.PermissionDenied:
		m.statusMsg = fmt.Sprintf("Permission denied: %v", err)
	}

	if !m.refreshing {
		m.refreshing = true
		return m, m.refreshNow()
	}
	return m, nil
}

// cleanNonessential sweeps the rows currently displayed. It deliberately
// works off the reconciled row set rather than a fresh sample, so what gets
// terminated is exactly what the operator was looking at.
func (m MainModel) cleanNonessential() (tea.Model, tea.Cmd) {
	sum := m.sweeper.Clean(m.state.Rows())
	msg := fmt.Sprintf("Sent terminate signal to %d processes", sum.Sent)
	if sum.Denied > 0 {
		msg += fmt.Sprintf(" (%d denied)", sum.Denied)
	}
	m.statusMsg = msg

	if !m.refreshing {
		m.refreshing = true
		return m, m.refreshNow()
	}
	return m, nil
}
