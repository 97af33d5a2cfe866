package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"arbeitszeit/internal/cli/formatter"
	"arbeitszeit/internal/config"
	"arbeitszeit/internal/files"
	"arbeitszeit/internal/ledger"
)

// Model owns Bubble Tea state for the interactive week view.
type Model struct {
	ctx     context.Context
	manager *files.Manager

	weeks   []*ledger.Week
	weekIdx int
	open    bool
	last    string

	totalWorktime *time.Duration
	totalDelta    *time.Duration

	mode  mode
	input textinput.Model

	loading    bool
	statusLine string
	errorLine  string
}

type mode uint8

const (
	modeNormal mode = iota
	modeStartInput
	modeStopInput
)

type ledgerLoadedMsg struct {
	weeks         []*ledger.Week
	open          bool
	last          string
	totalWorktime *time.Duration
	totalDelta    *time.Duration
	err           error
}

type mutationMsg struct {
	verb   string
	record *ledger.Record
	err    error
}

// NewModel seeds a Bubble Tea model with required collaborators.
func NewModel(ctx context.Context, manager *files.Manager) Model {
	input := textinput.New()
	input.Placeholder = "HH:MM (empty = now)"
	input.CharLimit = 5
	input.Width = 16

	return Model{
		ctx:        ctx,
		manager:    manager,
		weekIdx:    -1,
		mode:       modeNormal,
		input:      input,
		loading:    true,
		statusLine: "Loading ledger...",
	}
}

// Init loads the ledger.
func (m Model) Init() tea.Cmd {
	return m.loadLedgerCmd()
}

// Update wires TUI state transitions from user input and async commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case ledgerLoadedMsg:
		return m.handleLedgerLoaded(msg)
	case mutationMsg:
		return m.handleMutation(msg)
	default:
		return m, nil
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode != modeNormal {
		return m.handleInputKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "left", "h", "p":
		if m.weekIdx > 0 {
			m.weekIdx--
			m.statusLine = fmt.Sprintf("Week %d of %d", m.weekIdx+1, len(m.weeks))
			m.errorLine = ""
		}
	case "right", "l", "n":
		if m.weekIdx >= 0 && m.weekIdx < len(m.weeks)-1 {
			m.weekIdx++
			m.statusLine = fmt.Sprintf("Week %d of %d", m.weekIdx+1, len(m.weeks))
			m.errorLine = ""
		}
	case "t":
		if len(m.weeks) > 0 {
			m.weekIdx = len(m.weeks) - 1
			m.statusLine = "Latest week."
			m.errorLine = ""
		}
	case "r":
		return m.reload()
	case "s":
		return m.beginInput(modeStartInput, "Clock in at:")
	case "S", "e":
		return m.beginInput(modeStopInput, "Clock out at:")
	}

	return m, nil
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		return m.submitInput()
	case tea.KeyEsc:
		return m.cancelInput("Cancelled.")
	case tea.KeyCtrlC:
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) beginInput(target mode, label string) (tea.Model, tea.Cmd) {
	m.mode = target
	m.input.SetValue("")
	m.input.Prompt = label + " "
	m.statusLine = ""
	m.errorLine = ""
	return m, m.input.Focus()
}

func (m Model) submitInput() (tea.Model, tea.Cmd) {
	timeText := strings.TrimSpace(m.input.Value())
	verb := "start"
	if m.mode == modeStopInput {
		verb = "stop"
	}

	m.mode = modeNormal
	m.input.Blur()
	m.statusLine = "Saving..."
	m.errorLine = ""
	return m, m.mutateCmd(verb, timeText)
}

func (m Model) cancelInput(message string) (tea.Model, tea.Cmd) {
	m.mode = modeNormal
	m.input.Blur()
	m.input.SetValue("")
	m.statusLine = message
	m.errorLine = ""
	return m, nil
}

func (m Model) reload() (tea.Model, tea.Cmd) {
	m.loading = true
	m.statusLine = "Refreshing..."
	m.errorLine = ""
	return m, m.loadLedgerCmd()
}

func (m Model) handleLedgerLoaded(msg ledgerLoadedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.err != nil {
		m.errorLine = fmt.Sprintf("Failed to load ledger: %v", msg.err)
		m.statusLine = ""
		return m, nil
	}

	m.errorLine = ""
	m.weeks = msg.weeks
	m.open = msg.open
	m.last = msg.last
	m.totalWorktime = msg.totalWorktime
	m.totalDelta = msg.totalDelta
	if m.weekIdx < 0 || m.weekIdx >= len(m.weeks) {
		m.weekIdx = len(m.weeks) - 1
	}
	if len(m.weeks) == 0 {
		m.statusLine = "Ledger is empty. Press s to clock in."
	} else {
		m.statusLine = fmt.Sprintf("Loaded %d week%s.", len(m.weeks), plural(len(m.weeks)))
	}
	return m, nil
}

func (m Model) handleMutation(msg mutationMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.errorLine = fmt.Sprintf("%s failed: %v", msg.verb, msg.err)
		m.statusLine = ""
		return m, nil
	}

	m.errorLine = ""
	m.statusLine = fmt.Sprintf("Recorded %s.", msg.record.Text())
	m.loading = true
	// Jump back to the latest week, where the mutation landed.
	m.weekIdx = -1
	return m, m.loadLedgerCmd()
}

func (m Model) loadLedgerCmd() tea.Cmd {
	manager := m.manager
	return func() tea.Msg {
		ldg, err := openLedger(manager)
		if err != nil {
			return ledgerLoadedMsg{err: err}
		}
		msg := ledgerLoadedMsg{
			weeks:         ldg.Weeks(),
			open:          ldg.Open(),
			totalWorktime: ldg.TotalWorktime(),
			totalDelta:    ldg.TotalDelta(),
		}
		if last := ldg.Last(); last != nil {
			msg.last = last.Text()
		}
		return msg
	}
}

func (m Model) mutateCmd(verb, timeText string) tea.Cmd {
	manager := m.manager
	return func() tea.Msg {
		ldg, err := openLedger(manager)
		if err != nil {
			return mutationMsg{verb: verb, err: err}
		}
		var record *ledger.Record
		if verb == "start" {
			record, err = ldg.Start(timeText)
		} else {
			record, err = ldg.End(timeText)
		}
		if err != nil {
			return mutationMsg{verb: verb, err: err}
		}
		return mutationMsg{verb: verb, record: record}
	}
}

func openLedger(manager *files.Manager) (*ledger.Ledger, error) {
	cfg, err := config.Load(manager)
	if err != nil {
		return nil, err
	}
	baseline, err := cfg.Baseline()
	if err != nil {
		return nil, err
	}
	return ledger.Open(cfg.LedgerPath(), baseline)
}

// View renders the frame.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(formatter.Header("arbeitszeit"))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString("Loading...\n")
	} else if len(m.weeks) == 0 {
		b.WriteString("(no records)\n")
	} else {
		week := m.weeks[m.weekIdx]
		b.WriteString(formatter.WeekBlock(week))
		b.WriteByte('\n')
		b.WriteByte('\n')
		b.WriteString(formatter.TotalLine(m.totalWorktime, m.totalDelta))
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	if m.open {
		b.WriteString(formatter.StyleYellow.Render("● shift open"))
		b.WriteString(formatter.StyleDim.Render("  " + m.last))
	} else {
		b.WriteString(formatter.StyleDim.Render("○ no open shift"))
	}
	b.WriteByte('\n')

	if m.errorLine != "" {
		b.WriteString("\n! ")
		b.WriteString(formatter.StyleRed.Render(m.errorLine))
		b.WriteByte('\n')
	} else if m.statusLine != "" {
		b.WriteByte('\n')
		b.WriteString(m.statusLine)
		b.WriteByte('\n')
	}

	if m.mode != modeNormal {
		b.WriteByte('\n')
		b.WriteString(m.input.View())
		b.WriteByte('\n')
		b.WriteString(formatter.StyleDim.Render("Enter to save, Esc to cancel"))
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	b.WriteString(formatter.StyleDim.Render("Navigation: <-/h prev week  ->/l next week  t latest  r reload"))
	b.WriteByte('\n')
	b.WriteString(formatter.StyleDim.Render("Actions: s start  S/e stop  q quit"))
	b.WriteByte('\n')

	return b.String()
}

func plural(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}
