package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sweeptools/memsweep/internal/config"
	"github.com/sweeptools/memsweep/internal/sweep"
	"github.com/sweeptools/memsweep/pkg/model"
)

type tickMsg time.Time

type snapshotMsg struct {
	snap model.Snapshot
	err  error
}

type configMsg struct {
	cfg *config.Config
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		var cmd tea.Cmd
		if !m.quitting && !m.refreshing {
			m.refreshing = true
			cmd = m.refreshNow()
		}
		if m.quitting {
			return m, nil
		}
		return m, tea.Batch(cmd, waitTick(m.interval))

	case snapshotMsg:
		m.applySnapshot(msg)
		return m, nil

	case configMsg:
		m.guard = msg.cfg.Guard()
		m.sweeper = sweep.New(m.guard)
		m.interval = msg.cfg.Interval()
		m.statusMsg = "Config reloaded"
		return m, listenConfig(m.configCh)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		tableHeight := msg.Height - 12
		if tableHeight < 5 {
			tableHeight = 5
		}
		tableWidth := msg.Width - 8
		if tableWidth < 40 {
			tableWidth = 40
		}

		columns := m.table.Columns()
		nameWidth := tableWidth - 8 - 12 - 14 - 10
		if nameWidth < 16 {
			nameWidth = 16
		}
		columns[1].Width = nameWidth
		m.table.SetColumns(columns)
		m.table.SetWidth(tableWidth)
		m.table.SetHeight(tableHeight)
	}

	return m, nil
}

func (m MainModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.statusMsg = "" // clear any transient message on interaction

	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	}

	// Confirmation prompt swallows everything except yes/no.
	if m.pendingAction != actionNone {
		switch msg.String() {
		case "y", "Y":
			action := m.pendingAction
			m.pendingAction = actionNone
			switch action {
			case actionTerm:
				return m.terminatePending()
			case actionClean:
				return m.cleanNonessential()
			}
		case "n", "N", "esc", "q":
			m.pendingAction = actionNone
		}
		return m, nil
	}

	if m.input.Focused() {
		if msg.String() == "enter" || msg.String() == "esc" {
			m.input.Blur()
			return m, nil
		}
		var inputCmd tea.Cmd
		m.input, inputCmd = m.input.Update(msg)
		m.syncTable()
		m.table.SetCursor(0)
		return m, inputCmd
	}

	switch msg.String() {
	case "q", "esc":
		m.quitting = true
		return m, tea.Quit

	case "/":
		m.input.Focus()
		return m, textinput.Blink

	case "r":
		if !m.refreshing {
			m.refreshing = true
			return m, m.refreshNow()
		}
		return m, nil

	case "t":
		return m.requestTerminate()

	case "c":
		return m.requestClean()
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}
