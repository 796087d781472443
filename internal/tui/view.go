package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m MainModel) View() string {
	if m.quitting {
		return ""
	}

	outerStyle := baseStyle.
		Width(m.width-2).
		Height(m.height-2).
		Padding(0, 1)

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		titleStyle.Render("memsweep"),
		lipgloss.NewStyle().PaddingLeft(2).Render(m.memoryLine()),
	)

	status := "Mode: Navigation (Press / to search)"
	if m.input.Focused() {
		status = "Mode: Searching (Press Esc/Enter to stop)"
	}
	if m.statusMsg != "" {
		status = errorStyle.Render(m.statusMsg)
	}

	var helpText string
	switch m.pendingAction {
	case actionTerm:
		helpText = confirmStyle.Render(
			fmt.Sprintf("Terminate %s (PID %d)? [y]es / [n]o", m.pendingName, m.pendingPID))
	case actionClean:
		helpText = confirmStyle.Render("Terminate ALL non-essential processes? [y]es / [n]o")
	default:
		helpText = fmt.Sprintf("Total: %d | t: Terminate | c: Clean non-essential | r: Refresh | /: Search | Esc/q: Quit", len(m.visible))
	}
	footerContent := helpText
	if m.version != "" && m.pendingAction == actionNone {
		gap := m.width - 6 - lipgloss.Width(helpText) - lipgloss.Width(m.version)
		if gap > 0 {
			footerContent = helpText + strings.Repeat(" ", gap) + m.version
		}
	}

	return outerStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header,
			lipgloss.NewStyle().Height(1).Render(""),
			lipgloss.NewStyle().MarginBottom(1).PaddingLeft(1).Render(status),
			lipgloss.NewStyle().MarginBottom(1).PaddingLeft(1).Render(m.input.View()),
			m.table.View(),
			lipgloss.NewStyle().Height(1).Render(""),
			footerStyle.Width(m.width-4).Render(footerContent),
		),
	)
}

// memoryLine renders the system summary. A failed summary read is its own
// display state, not zeros.
func (m MainModel) memoryLine() string {
	if m.memErr != nil {
		return errorStyle.Render("RAM: unavailable")
	}
	if m.sampledAt.IsZero() {
		return ramStyle.Render("RAM: sampling...")
	}
	return ramStyle.Render(fmt.Sprintf(
		"Used: %s   Available: %s   Total: %s",
		formatBytes(m.memory.Used),
		formatBytes(m.memory.Available),
		formatBytes(m.memory.Total),
	))
}
