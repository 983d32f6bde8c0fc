package cli

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"QuickExplorer/explorer"
)

var settingKeys = []string{explorer.KeyDefaultPath, explorer.KeyDefaultSortOrder}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Reads and writes saved settings",
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Prints one setting, or all of them",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			printSettings(cmd.OutOrStdout(), settings.All())
			return nil
		}
		if err := checkSettingKey(args[0]); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), settings.Get(args[0], ""))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Saves a setting",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := validateSetting(key, value); err != nil {
			return err
		}
		if err := settings.Set(key, value); err != nil {
			return err
		}
		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✅ %s = %s\n", key, value)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Prints the settings file location",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), settings.Path())
	},
}

func checkSettingKey(key string) error {
	if !slices.Contains(settingKeys, key) {
		return fmt.Errorf("unknown setting %q, expected one of %s", key, strings.Join(settingKeys, ", "))
	}
	return nil
}

func validateSetting(key, value string) error {
	if err := checkSettingKey(key); err != nil {
		return err
	}
	if key == explorer.KeyDefaultSortOrder && !explorer.IsValidSortOrderString(value) {
		return fmt.Errorf("unknown sort order %q, expected one of %s", value, sortOrderChoices())
	}
	return nil
}

func printSettings(w io.Writer, values map[string]string) {
	label := color.New(color.FgGreen).SprintFunc()
	unset := color.New(color.FgHiBlack).SprintFunc()

	for _, key := range settingKeys {
		if v, ok := values[key]; ok {
			fmt.Fprintf(w, "%s %s\n", label(key+":"), v)
		} else {
			fmt.Fprintf(w, "%s %s\n", label(key+":"), unset("(unset)"))
		}
	}
}

func init() {
	configCmd.AddCommand(configGetCmd, configSetCmd, configPathCmd)
	rootCmd.AddCommand(configCmd)
}
