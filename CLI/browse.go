package cli

import (
	"github.com/spf13/cobra"

	"QuickExplorer/app"
	"QuickExplorer/logging"
)

var browseCmd = &cobra.Command{
	Use:   "browse [path]",
	Short: "Opens the interactive directory panel",
	Long:  `Opens the interactive directory panel at path, which becomes the project root.
A relative path is taken from the working directory. Without a path the saved
defaultPath, the workspace or the home directory is used.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := sessionConfig(firstArg(args), settings)
		// the panel supplies its own status-line notifier
		cfg.Notifier = nil

		logging.L().Info("opening panel", logging.String("start", cfg.StartPath))
		return app.StartApp(cfg)
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
