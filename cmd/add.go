package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xolan/timelog/internal/service"
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add <task...>",
	Short: "Log a task that you just finished",
	Long: `Record that a task just ended, stamped with the current time, and save
the log. Quote or escape nothing; all arguments are joined into the task text.

Examples:
  timelog add reviewed frontend PR
  timelog add '** lunch'`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		addEntry(strings.Join(args, " "))
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}

// addEntry appends one finished task and saves the log
func addEntry(task string) {
	services, ok := loadServices()
	if !ok {
		return
	}

	if err := services.Log.Append(task); err != nil {
		if errors.Is(err, service.ErrEmptyTask) {
			_, _ = fmt.Fprintln(deps.Stderr, "Error: task description cannot be empty")
		} else {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		}
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Logged: %s\n", task)
}
