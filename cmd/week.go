package cmd

import (
	"github.com/spf13/cobra"
)

// weekCmd represents the week command
var weekCmd = &cobra.Command{
	Use:   "week [YYYY-MM-DD]",
	Short: "Show the activity report for one ISO week",
	Long: `Show per-task durations and the work/slack totals for the ISO week
containing the given date (Monday through Sunday). Without an argument the
report covers the current week.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		showWeek(args)
	},
}

func init() {
	rootCmd.AddCommand(weekCmd)
}

func showWeek(args []string) {
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

	report := services.Log.WeekReport(tl, day, 1)
	printReport("Work done "+report.Header, report)
}
