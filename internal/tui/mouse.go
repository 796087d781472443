package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// handleMouse supports wheel scrolling and click-to-select on the table.
func (m MainModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.statusMsg = "" // clear any transient message on interaction

	isWheel := msg.Button == tea.MouseButtonWheelUp ||
		msg.Button == tea.MouseButtonWheelDown

	if isWheel {
		// Convert wheel to key so the table scrolls by one row without
		// jumping the cursor to the mouse Y position.
		var keyMsg tea.KeyMsg
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			keyMsg = tea.KeyMsg{Type: tea.KeyUp}
		case tea.MouseButtonWheelDown:
			keyMsg = tea.KeyMsg{Type: tea.KeyDown}
		}
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(keyMsg)
		return m, cmd
	}

	if msg.Action != tea.MouseActionPress {
		return m, nil
	}

	// Translate into table coordinates: header rows above the table are the
	// title, spacer, status, and search lines.
	tableMsg := msg
	tableMsg.X -= 2
	tableMsg.Y -= 7
	if tableMsg.X >= 0 && tableMsg.Y >= 0 {
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(tableMsg)
		return m, cmd
	}
	return m, nil
}
