package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/tracker/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/stopwatch"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

type trackKeyMap struct {
	Stop   key.Binding
	Cancel key.Binding
}

func defaultTrackKeys() trackKeyMap {
	return trackKeyMap{
		Stop:   key.NewBinding(key.WithKeys("enter", " ", "q"), key.WithHelp("any key", "stop and record")),
		Cancel: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "cancel")),
	}
}

func (k trackKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Stop, k.Cancel}
}

// trackModel shows a running stopwatch until any key is pressed. Ctrl+C
// cancels the run without recording it.
type trackModel struct {
	started   time.Time
	stopwatch stopwatch.Model
	keys      trackKeyMap
	help      help.Model

	stopped   bool
	cancelled bool
}

func newTrackModel(started time.Time) trackModel {
	return trackModel{
		started:   started,
		stopwatch: stopwatch.NewWithInterval(time.Second),
		keys:      defaultTrackKeys(),
		help:      help.New(),
	}
}

func (m trackModel) Init() tea.Cmd {
	return m.stopwatch.Init()
}

func (m trackModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Cancel) {
			m.cancelled = true
			return m, tea.Quit
		}
		m.stopped = true
		return m, tea.Quit
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.stopwatch, cmd = m.stopwatch.Update(msg)
	return m, cmd
}

func (m trackModel) View() string {
	if m.stopped || m.cancelled {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n\n", formatter.StyleHeader.Render("Tracking since"), m.started.Format("15:04:05"))
	fmt.Fprintf(&b, "  %s\n\n", formatter.StyleGreen.Render(m.stopwatch.View()))
	b.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))
	b.WriteString("\n")
	return b.String()
}

// runStopwatch runs the tracking model on the command's input and output.
func runStopwatch(cmd *cobra.Command, started time.Time) (bool, error) {
	p := tea.NewProgram(newTrackModel(started),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	final, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("running tracker: %w", err)
	}
	m, ok := final.(trackModel)
	if !ok {
		return false, fmt.Errorf("running tracker: unexpected model %T", final)
	}
	return m.cancelled, nil
}
