// Package tui implements the interactive prompt: the rendered day or week
// activity report above a task input line. Typed :commands switch modes,
// open the editor, or quit; any other input logs a finished task.
package tui

import (
	"os/exec"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xolan/timelog/internal/cli"
	"github.com/xolan/timelog/internal/command"
	"github.com/xolan/timelog/internal/service"
	"github.com/xolan/timelog/internal/timelog"
	"github.com/xolan/timelog/internal/tui/ui"
)

const helpText = `
:w - switch to weekly mode (:w2 shows the last two weeks)
:d - switch to daily mode (:d7 shows the last seven days)
:e - open the timelog in your editor
:h - toggle this help
:q - quit (also ctrl+d)

Any other input is the description of a task that you just finished.`

// Model is the interactive prompt model
type Model struct {
	services *service.Services

	tl       *timelog.Timelog
	warnings []timelog.ParseWarning

	mode  command.Mode
	count int

	input  textinput.Model
	keys   ui.KeyMap
	styles ui.Styles

	width    int
	height   int
	showHelp bool
	status   string
	err      error
}

// editorFinishedMsg is sent when the external editor exits
type editorFinishedMsg struct {
	err error
}

// New creates the prompt model, loading the timelog up front.
// A corrupt log fails here so the tool stops with a clear message instead of
// producing a silently wrong report.
func New(services *service.Services) (Model, error) {
	tl, warnings, err := services.Log.Load()
	if err != nil {
		return Model{}, err
	}

	themeProvider := ui.NewThemeProvider(services.Config.Theme)
	styles := themeProvider.Styles()

	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "task you just finished, or :h for help"
	input.CharLimit = 200
	input.ShowSuggestions = true
	input.Focus()

	mode := command.Day
	if services.Config.DefaultMode == "week" {
		mode = command.Week
	}

	m := Model{
		services: services,
		tl:       tl,
		warnings: warnings,
		mode:     mode,
		count:    1,
		input:    input,
		keys:     ui.DefaultKeyMap(),
		styles:   styles,
	}
	m.refreshSuggestions()
	return m, nil
}

// Run starts the interactive prompt and blocks until it exits.
func Run(services *service.Services) error {
	m, err := New(services)
	if err != nil {
		return err
	}

	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - 6
		return m, nil

	case editorFinishedMsg:
		if msg.err != nil {
			m.status = "Editor failed: " + msg.err.Error()
			return m, nil
		}
		// the log may have been rewritten arbitrarily; reload it
		tl, warnings, err := m.services.Log.Load()
		if err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.tl = tl
		m.warnings = warnings
		m.status = ""
		m.refreshSuggestions()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Clear):
			m.input.SetValue("")
			m.status = ""
			return m, nil

		case key.Matches(msg, m.keys.Submit):
			return m.handleSubmit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleSubmit interprets the current input line
func (m Model) handleSubmit() (Model, tea.Cmd) {
	value := strings.TrimRight(m.input.Value(), " \t")
	m.status = ""

	c := command.Parse(value)
	switch c.Kind {
	case command.Nothing:
		m.input.SetValue("")

	case command.Quit:
		return m, tea.Quit

	case command.Help:
		m.showHelp = !m.showHelp
		m.input.SetValue("")

	case command.Edit:
		m.input.SetValue("")
		return m, m.openEditor()

	case command.SwitchMode:
		m.mode = c.Mode
		m.count = c.Count
		m.showHelp = false
		m.input.SetValue("")
		m.refreshSuggestions()

	case command.Add:
		m.tl.Add(c.Task)
		if err := m.tl.Save(); err != nil {
			m.status = "Error: " + err.Error()
			return m, nil
		}
		m.input.SetValue("")
		m.refreshSuggestions()

	case command.Invalid:
		m.status = "Error: " + c.Reason
	}
	return m, nil
}

// openEditor suspends the TUI and runs the editor on the log file
func (m Model) openEditor() tea.Cmd {
	c := exec.Command(m.services.Editor(), m.tl.Path())
	return tea.ExecProcess(c, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

// report returns the activity report for the current mode and period count
func (m Model) report() service.Report {
	now := m.services.Log.Now()
	if m.mode == command.Week {
		return m.services.Log.WeekReport(m.tl, now, m.count)
	}
	return m.services.Log.DayReport(m.tl, now, m.count)
}

// refreshSuggestions seeds prompt history from the tasks currently on screen
func (m *Model) refreshSuggestions() {
	m.input.SetSuggestions(timelog.GetHistory(m.report().Entries))
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	report := m.report()
	if m.mode == command.Week {
		b.WriteString(m.styles.Title.Render("Work done this week " + report.Header))
	} else {
		b.WriteString(m.styles.Title.Render("Work done today " + report.Header))
	}
	b.WriteString("\n")

	for _, w := range m.warnings {
		b.WriteString(m.styles.Warning.Render(cli.FormatWarning(w)))
		b.WriteString("\n")
	}

	if len(report.Activities.Activities) == 0 {
		b.WriteString(m.styles.NoReport.Render("nothing logged in this period"))
		b.WriteString("\n")
	} else {
		for _, a := range report.Activities.Activities {
			style := m.styles.Work
			if strings.HasPrefix(a.Name, "**") {
				style = m.styles.Slack
			}
			b.WriteString(style.Render(a.String()))
			b.WriteString("\n")
		}
	}
	b.WriteString(m.styles.Divider.Render("-------"))
	b.WriteString("\n")
	b.WriteString(m.styles.Totals.Render("Total work done: " + cli.FormatDuration(report.Activities.TotalWork)))
	b.WriteString("\n")
	b.WriteString(m.styles.Totals.Render("Total slacking: " + cli.FormatDuration(report.Activities.TotalSlack)))
	b.WriteString("\n")

	if m.showHelp {
		b.WriteString(m.styles.HelpDesc.Render(helpText))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(m.styles.Error.Render(m.status))
	} else {
		b.WriteString(m.styles.Status.Render(m.services.Log.SinceLast(m.tl)))
		b.WriteString(m.styles.Hint.Render("  (:h for help)"))
	}
	b.WriteString("\n")
	b.WriteString(m.input.View())

	return m.styles.App.Render(b.String())
}
