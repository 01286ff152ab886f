package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xolan/timelog/internal/tui"
)

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the interactive prompt",
	Long: `Start the interactive prompt: the current activity report with a task
input line below it.

Type the description of a task you just finished and press enter to log it.
Colon commands switch views:
  :d / :d<n>  daily report, optionally the last n days
  :w / :w<n>  weekly report, optionally the last n weeks
  :e          open the log file in your editor
  :h          toggle help
  :q          quit`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runTUI()
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

// runTUI initializes services and runs the interactive prompt
func runTUI() {
	services, ok := loadServices()
	if !ok {
		return
	}

	if err := tui.Run(services); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
	}
}
