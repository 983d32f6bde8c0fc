package cli

import (
	"github.com/fatih/color"

	"QuickExplorer/explorer"
	"QuickExplorer/logging"
)

// sessionConfig builds the collaborators shared by every command that opens a
// directory. startPath may be empty.
func sessionConfig(startPath string, store explorer.Settings) explorer.SessionConfig {
	locale := explorer.LocaleFromEnv()
	if opts.Locale != "" {
		locale = explorer.ParseLocale(opts.Locale)
	}

	return explorer.SessionConfig{
		Settings:  store,
		Workspace: explorer.StaticWorkspace(opts.Workspace),
		Notifier:  consoleNotifier{},
		Lister:    explorer.NewReader(locale),
		StartPath: startPath,
	}
}

func firstArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}

// sortOverride answers the sort order setting from a flag and keeps writes
// in memory, so a one-shot listing never changes the saved preference.
type sortOverride struct {
	explorer.Settings
	order string
}

func (s sortOverride) Get(key, defaultValue string) string {
	if key == explorer.KeyDefaultSortOrder && s.order != "" {
		return s.order
	}
	return s.Settings.Get(key, defaultValue)
}

func (s sortOverride) Set(key, value string) error {
	return nil
}

// consoleNotifier prints notices on stderr.
type consoleNotifier struct{}

var _ explorer.Notifier = consoleNotifier{}

func (consoleNotifier) Info(msg string) {
	logging.L().Info(msg)
	color.New(color.FgCyan).Fprintf(color.Error, "ℹ️  %s\n", msg)
}

func (consoleNotifier) Warn(msg string) {
	logging.L().Warn(msg)
	color.New(color.FgYellow).Fprintf(color.Error, "⚠️  %s\n", msg)
}

func (consoleNotifier) Error(msg string) {
	logging.L().Error(msg)
	color.New(color.FgRed, color.Bold).Fprintf(color.Error, "❌ %s\n", msg)
}
