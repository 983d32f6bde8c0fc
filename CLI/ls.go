package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"QuickExplorer/Utils"
	"QuickExplorer/explorer"
	"QuickExplorer/logging"
)

var lsSort string

var lsCmd = &cobra.Command{
	Use:   "ls [path]",
	Short: "Prints the folder-first listing of a directory",
	Long:  `Prints the folder-first listing of path (relative to the working directory).
Without a path the saved defaultPath, the workspace or the home directory is used.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if lsSort != "" && !explorer.IsValidSortOrderString(lsSort) {
			return fmt.Errorf("unknown sort order %q, expected one of %s", lsSort, sortOrderChoices())
		}

		timer := Utils.StartTimer()
		session := explorer.NewSession(sessionConfig(firstArg(args), sortOverride{Settings: settings, order: lsSort}))
		rows := session.View.Rows(cmd.Context())

		printListing(cmd.OutOrStdout(), session, rows)

		entries, elapsed := countEntries(rows), timer.Elapsed()
		logging.L().Info("listed directory",
			logging.String("dir", session.Nav.CurrentDirectory()),
			logging.Int("entries", entries),
			logging.Duration("elapsed", elapsed),
		)
		color.New(color.FgHiMagenta).Fprintf(cmd.OutOrStdout(), "\n⏱️  Listed %d entries in %v\n", entries, elapsed)
		return nil
	},
}

func init() {
	lsCmd.Flags().StringVar(&lsSort, "sort", "", "Sort order for this listing: "+sortOrderChoices())
	rootCmd.AddCommand(lsCmd)
}

// printListing writes the rows the panel would show for session.
func printListing(w io.Writer, session *explorer.Session, rows []explorer.Row) {
	header := color.New(color.FgCyan, color.Bold).SprintFunc()
	section := color.New(color.FgHiYellow, color.Bold).SprintFunc()
	dirName := color.New(color.FgGreen, color.Bold).SprintFunc()
	parent := color.New(color.FgHiCyan).SprintFunc()
	dim := color.New(color.FgHiBlack).SprintFunc()

	fmt.Fprintf(w, "%s %s\n", header("📂 "+session.Title()), dim("("+session.Nav.SortOrder().Label()+")"))
	fmt.Fprintln(w, section("────────────────────────────"))

	if len(rows) == 0 {
		fmt.Fprintln(w, dim("  (empty)"))
		return
	}

	for _, row := range rows {
		item := session.View.Item(row)
		switch row.Kind {
		case explorer.RowParent:
			fmt.Fprintf(w, "%s  %s\n", item.Icon, parent(item.Label))
		case explorer.RowDirectory:
			fmt.Fprintf(w, "%s  %-32s %10s  %s\n", item.Icon, dirName(item.Label+"/"), "", dim(Utils.FormatModTime(row.Entry.ModifiedTime)))
		default:
			fmt.Fprintf(w, "%s  %-32s %10s  %s\n", item.Icon, item.Label, Utils.FormatSize(row.Entry.Size), dim(Utils.FormatModTime(row.Entry.ModifiedTime)))
		}
	}
}

func countEntries(rows []explorer.Row) int {
	n := 0
	for _, row := range rows {
		if row.Kind != explorer.RowParent {
			n++
		}
	}
	return n
}

func sortOrderChoices() string {
	values := make([]string, 0, 4)
	for _, o := range explorer.SortOrders() {
		values = append(values, explorer.SortOrderToString(o))
	}
	return strings.Join(values, ", ")
}
