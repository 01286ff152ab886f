package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// pathCmd represents the path command
var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the log file location",
	Long: `Print the resolved location of the log file. A legacy ~/.gtimelog
directory is honored when it exists; otherwise the file lives under
$XDG_DATA_HOME (or ~/.local/share).`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		services, ok := loadServices()
		if !ok {
			return
		}
		_, _ = fmt.Fprintln(deps.Stdout, services.Log.LogPath())
	},
}

func init() {
	rootCmd.AddCommand(pathCmd)
}
