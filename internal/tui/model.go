package tui

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sweeptools/memsweep/internal/config"
	"github.com/sweeptools/memsweep/internal/guard"
	"github.com/sweeptools/memsweep/internal/reconcile"
	"github.com/sweeptools/memsweep/internal/sweep"
	"github.com/sweeptools/memsweep/pkg/model"
)

var (
	baseStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#585858")) // Dark Gray

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")). // White
			Background(lipgloss.Color("#7D56F4")). // Purple
			Padding(0, 1)

	tableHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#5f5fd7")). // Purple/Blue
				Bold(true).
				Border(lipgloss.NormalBorder(), false, false, true, false).
				BorderForeground(lipgloss.Color("#585858")). // Dark Gray
				Padding(0, 1)

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5f5fd7")). // Purple/Blue
			Bold(true)

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#767676")). // Dimmed Gray
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(lipgloss.Color("#585858")). // Dark Gray
			Padding(0, 1)

	ramStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87d787")) // Soft Green

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff5f5f")). // Soft red
			Bold(true)

	confirmStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffaf5f")). // Orange-amber
			Bold(true)

	essentialStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff5f5f")) // Soft red

	nonessentialStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#22aa22")) // Green
)

type actionKind int

const (
	actionNone  actionKind = iota
	actionTerm             // terminate the selected process
	actionClean            // terminate every non-essential process
)

type MainModel struct {
	table table.Model
	input textinput.Model

	state   *reconcile.State
	sink    *tableSink
	visible []*reconcile.Row // rows after filtering, in table order

	guard   *guard.List
	sweeper *sweep.Sweeper

	memory    model.MemorySummary
	memErr    error
	sampledAt time.Time

	interval   time.Duration
	refreshing bool

	pendingAction actionKind
	pendingPID    int32
	pendingName   string
	statusMsg     string // transient status/error message shown in the footer

	configCh <-chan *config.Config

	width    int
	height   int
	quitting bool
	version  string
}

func InitialModel(cfg *config.Config, version string) MainModel {
	columns := []table.Column{
		{Title: "PID", Width: 8},
		{Title: "Process", Width: 40},
		{Title: "RAM (MB)", Width: 12},
		{Title: "Class", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(20),
	)

	s := table.DefaultStyles()
	s.Header = tableHeaderStyle.BorderForeground(lipgloss.Color("#585858"))
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#ffffaf")). // Light Yellow
		Background(lipgloss.Color("#5f00d7")). // Purple
		Bold(false)
	t.SetStyles(s)

	ti := textinput.New()
	ti.Placeholder = "Search PID or name..."
	ti.CharLimit = 64
	ti.Width = 40
	ti.Prompt = "> "
	ti.PromptStyle = promptStyle
	ti.Blur()

	g := cfg.Guard()
	return MainModel{
		table:    t,
		input:    ti,
		state:    reconcile.NewState(),
		sink:     newTableSink(),
		guard:    g,
		sweeper:  sweep.New(g),
		interval: cfg.Interval(),
		// Init fires the first sample immediately; the guard keeps the
		// first timer tick from racing it.
		refreshing: true,
		version:    version,
	}
}

// Start runs the TUI until the operator quits. The config watcher is stopped
// before Start returns, so no reload can land on a torn-down display.
func Start(cfg *config.Config, configPath, version string) error {
	if os.Getenv("COLORTERM") == "" {
		os.Setenv("COLORTERM", "truecolor") //nolint:errcheck
	}

	m := InitialModel(cfg, version)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := make(chan *config.Config, 1)
	go func() {
		defer close(ch)
		_ = config.Watch(ctx, configPath, func(c *config.Config) {
			select {
			case ch <- c:
			case <-ctx.Done():
			}
		})
	}()
	m.configCh = ch

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running tui: %w", err)
	}
	return nil
}

func (m MainModel) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.refreshNow(),
		waitTick(m.interval),
		listenConfig(m.configCh),
		tea.EnableMouseCellMotion,
	)
}
