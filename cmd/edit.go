package cmd

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"
)

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the log file in your editor",
	Long: `Open the log file in the configured editor ($EDITOR by default).
After the editor exits, the log is re-parsed so mistakes that would corrupt
it (timestamps going backwards) are reported immediately.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		editLog()
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
}

// editLog spawns the editor on the log file and re-validates it afterwards
func editLog() {
	services, ok := loadServices()
	if !ok {
		return
	}

	editor := services.Editor()
	c := exec.Command(editor, services.Log.LogPath())
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	if err := c.Run(); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: failed to run %s on %s: %v\n", editor, services.Log.LogPath(), err)
		deps.Exit(1)
		return
	}

	// surfaces corruption introduced by the edit
	if _, ok := loadTimelog(services); !ok {
		return
	}
}
