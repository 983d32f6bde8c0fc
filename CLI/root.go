package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"QuickExplorer/config"
	"QuickExplorer/logging"
)

var (
	opts     config.Options
	settings *config.FileStore
)

var rootCmd = &cobra.Command{
	Use:               "quickexplorer",
	Short:             "QuickExplorer is a folder-first directory browser for the terminal",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logging.Sync()
	},
}

func init() {
	cwd, _ := os.Getwd()

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.SettingsPath, "config", config.DefaultSettingsPath(), "Settings file")
	flags.StringVar(&opts.Workspace, "workspace", cwd, "Workspace root used for relative paths; empty disables it")
	flags.StringVar(&opts.Locale, "locale", "", "Locale for name ordering, e.g. de-DE (default from LC_ALL, LC_COLLATE or LANG)")
	flags.StringVar(&opts.LogFile, "log-file", logging.DefaultLogPath(), "Log file (stdout and stderr are accepted)")
	flags.StringVar(&opts.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flags.StringVar(&opts.LogFormat, "log-format", "json", "Log format: json or console")
}

// setup validates the flags and brings up logging and the settings store.
func setup(cmd *cobra.Command, args []string) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	if err := logging.Init(logging.Config{
		Level:      opts.LogLevel,
		Format:     opts.LogFormat,
		OutputPath: opts.LogFile,
	}); err != nil {
		return fmt.Errorf("initialising logging: %w", err)
	}

	store, err := config.OpenFileStore(opts.SettingsPath)
	if err != nil {
		return err
	}
	settings = store

	logging.L().Debug("command started",
		logging.String("command", cmd.Name()),
		logging.String("settings", opts.SettingsPath),
		logging.String("workspace", opts.Workspace),
	)
	return nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logging.L().Error("command failed", logging.Err(err))
		_ = logging.Sync()
		color.Red("❌ %v", err)
		os.Exit(1)
	}
}
