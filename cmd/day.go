package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// dayCmd represents the day command
var dayCmd = &cobra.Command{
	Use:   "day [YYYY-MM-DD]",
	Short: "Show the activity report for one day",
	Long: `Show per-task durations and the work/slack totals for one calendar day.
Without an argument the report covers today.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		showDay(args)
	},
}

func init() {
	rootCmd.AddCommand(dayCmd)
}

// parseDateArg parses an optional YYYY-MM-DD argument, defaulting to today.
func parseDateArg(args []string, today time.Time) (time.Time, bool) {
	if len(args) == 0 {
		return today, true
	}
	day, err := time.ParseInLocation("2006-01-02", args[0], time.Local)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: invalid date %q, expected YYYY-MM-DD\n", args[0])
		deps.Exit(1)
		return time.Time{}, false
	}
	return day, true
}

func showDay(args []string) {
	services, ok := loadServices()
	if !ok {
		return
	}
	day, ok := parseDateArg(args, services.Log.Now())
	if !ok {
		return
	}
	tl, ok := loadTimelog(services)
	if !ok {
		return
	}

	report := services.Log.DayReport(tl, day, 1)
	printReport("Work done "+report.Header, report)
}
