package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"QuickExplorer/Utils"
	"QuickExplorer/explorer"
	"QuickExplorer/logging"
)

var statCmd = &cobra.Command{
	Use:   "stat [path]",
	Short: "Displays storage status of the partition holding a directory",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session := explorer.NewSession(sessionConfig(firstArg(args), settings))
		return stat(cmd, session.Nav.CurrentDirectory())
	},
}

func stat(cmd *cobra.Command, dir string) error {
	out := cmd.OutOrStdout()
	header := color.New(color.FgCyan, color.Bold).SprintFunc()
	section := color.New(color.FgHiYellow, color.Bold).SprintFunc()
	label := color.New(color.FgGreen).SprintFunc()
	value := color.New(color.FgWhite).SprintFunc()
	usedPercent := color.New(color.FgRed, color.Bold).SprintFunc()
	freePercent := color.New(color.FgGreen, color.Bold).SprintFunc()

	usage, err := Utils.DiskUsage(dir)
	if err != nil {
		return err
	}
	logging.S().Debugw("disk usage", "dir", dir, "fstype", usage.Fstype, "usedPercent", usage.UsedPercent)

	fmt.Fprintln(out, header("\n📊 Storage Status"))
	fmt.Fprintln(out, section("────────────────────────────"))
	fmt.Fprintf(out, "\n%s %s\n", label("Directory:"), value(dir))
	fmt.Fprintf(out, "  %s %s\n", label("Filesystem:"), value(usage.Fstype))
	fmt.Fprintf(out, "  %s %s\n", label("Total:"), value(Utils.FormatSize(int64(usage.Total))))
	fmt.Fprintf(out, "  %s %s\n", label("Free:"), value(Utils.FormatSize(int64(usage.Free))))
	fmt.Fprintf(out, "  %s %s\n", label("Used:"), value(Utils.FormatSize(int64(usage.Used))))
	fmt.Fprintf(out, "  %s %s\n", label("Used space Percent:"), usedPercent(fmt.Sprintf("%.2f%%", usage.UsedPercent)))
	fmt.Fprintf(out, "  %s %s\n", label("Free space Percent:"), freePercent(fmt.Sprintf("%.2f%%", 100-usage.UsedPercent)))
	return nil
}

func init() {
	rootCmd.AddCommand(statCmd)
}
