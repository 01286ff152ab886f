package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xolan/timelog/internal/cli"
	"github.com/xolan/timelog/internal/service"
	"github.com/xolan/timelog/internal/timelog"
)

var rootCmd = &cobra.Command{
	Use:   "timelog",
	Short: "A gtimelog-style activity logger",
	Long: `timelog keeps an append-only log of finished tasks and reports how your
time was spent, split into work and slack.

Usage:
  timelog                      Show today's activity report
  timelog add <task...>        Log a task that you just finished
  timelog day [YYYY-MM-DD]     Show the report for one day
  timelog week [YYYY-MM-DD]    Show the report for one ISO week
  timelog tui                  Start the interactive prompt
  timelog edit                 Open the log file in your editor
  timelog path                 Print the log file location

A task starting with "** " counts as slack instead of work, e.g. "** lunch".`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		services, ok := loadServices()
		if !ok {
			return
		}
		tl, ok := loadTimelog(services)
		if !ok {
			return
		}
		report := services.Log.DayReport(tl, services.Log.Now(), 1)
		printReport("Work done today "+report.Header, report)
	},
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"timelog version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// loadServices builds the service layer, reporting failure on stderr.
func loadServices() (*service.Services, bool) {
	services, err := deps.NewServices()
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return nil, false
	}
	return services, true
}

// loadTimelog loads the store, printing skipped-line warnings to stderr.
// A corrupt (non-monotonic) log aborts with a clear message rather than
// producing a silently wrong report.
func loadTimelog(services *service.Services) (*timelog.Timelog, bool) {
	tl, warnings, err := services.Log.Load()
	if err != nil {
		var corrupt *timelog.CorruptLogError
		if errors.As(err, &corrupt) {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", corrupt)
			_, _ = fmt.Fprintf(deps.Stderr, "Fix the log with 'timelog edit': %s\n", services.Log.LogPath())
		} else {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		}
		deps.Exit(1)
		return nil, false
	}
	for _, w := range warnings {
		_, _ = fmt.Fprintln(deps.Stderr, cli.FormatWarning(w))
	}
	return tl, true
}

// printReport writes a period header and the rendered activity report.
func printReport(header string, report service.Report) {
	_, _ = fmt.Fprintf(deps.Stdout, "%s:\n", header)
	_, _ = fmt.Fprint(deps.Stdout, report.Activities)
}
