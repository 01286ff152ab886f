package ui

import (
	"github.com/charmbracelet/lipgloss"
	tint "github.com/lrstanley/bubbletint"
)

// Styles contains all the styles used by the interactive prompt
type Styles struct {
	// App is the outer frame
	App lipgloss.Style

	// Report
	Title    lipgloss.Style
	Work     lipgloss.Style
	Slack    lipgloss.Style
	Divider  lipgloss.Style
	Totals   lipgloss.Style
	NoReport lipgloss.Style

	// Status line and prompt
	Status lipgloss.Style
	Hint   lipgloss.Style
	Prompt lipgloss.Style

	// Help overlay
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	// Diagnostics
	Error   lipgloss.Style
	Warning lipgloss.Style
}

// NewStylesFromRegistry creates a Styles struct using colors from a
// bubbletint registry, mapping theme colors to report elements:
// work entries use the default foreground, slack entries are muted,
// totals and the title are emphasized.
func NewStylesFromRegistry(r *tint.Registry) Styles {
	primary := r.Purple()
	secondary := r.Cyan()
	muted := r.BrightBlack()
	warning := r.Yellow()
	errorColor := r.Red()
	fg := r.Fg()

	return Styles{
		App: lipgloss.NewStyle().Padding(1, 2),

		Title: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			MarginBottom(1),
		Work: lipgloss.NewStyle().
			Foreground(fg),
		Slack: lipgloss.NewStyle().
			Foreground(muted),
		Divider: lipgloss.NewStyle().
			Foreground(muted),
		Totals: lipgloss.NewStyle().
			Foreground(secondary).
			Bold(true),
		NoReport: lipgloss.NewStyle().
			Foreground(muted).
			Italic(true),

		Status: lipgloss.NewStyle().
			Foreground(secondary),
		Hint: lipgloss.NewStyle().
			Foreground(muted),
		Prompt: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true),

		HelpKey: lipgloss.NewStyle().
			Foreground(secondary).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(muted),

		Error: lipgloss.NewStyle().
			Foreground(errorColor),
		Warning: lipgloss.NewStyle().
			Foreground(warning),
	}
}
