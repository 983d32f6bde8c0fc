package app

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"QuickExplorer/Utils"
	"QuickExplorer/explorer"
	"QuickExplorer/styling"
)

const usageBarWidth = 20

// render replaces the tree with a listing and refreshes the header and details.
func (p *Panel) render(l listing) {
	title := p.session.Title()
	rows := l.rows
	p.diskText = l.disk

	root := tview.NewTreeNode(Utils.GetFileIcon(title, true) + " " + title).
		SetColor(tcell.ColorGreen).
		SetSelectable(false)

	var selected *tview.TreeNode
	for _, row := range rows {
		node := p.rowNode(row)
		root.AddChild(node)
		if selected == nil || (p.selectPath != "" && row.Path == p.selectPath && row.Kind != explorer.RowParent) {
			selected = node
		}
	}
	p.selectPath = ""

	p.treeView.SetRoot(root)
	p.treeView.SetTitle(" " + p.session.Nav.CurrentDirectory() + " ")
	if selected != nil {
		p.treeView.SetCurrentNode(selected)
	} else {
		p.treeView.SetCurrentNode(root)
	}

	p.headerView.SetText(p.headerText(title))
	p.showDetails(selected)
}

func (p *Panel) rowNode(row explorer.Row) *tview.TreeNode {
	item := p.session.View.Item(row)

	color := tcell.ColorWhite
	switch row.Kind {
	case explorer.RowParent:
		color = tcell.ColorAqua
	case explorer.RowDirectory:
		color = tcell.ColorGreen
	}

	return tview.NewTreeNode(item.Icon + " " + item.Label).
		SetReference(row).
		SetColor(color).
		SetSelectable(true)
}

func (p *Panel) headerText(title string) string {
	brand := styling.NewStyleBuilder().
		WithBold().
		WithTextColor(tcell.ColorBlue).
		Build()

	return styling.ApplyStyle("QuickExplorer", brand) + "  " +
		styling.CreateInfoText("Path", title, tcell.ColorGreen) + "  " +
		styling.CreateInfoText("Sort", p.session.Nav.SortOrder().Label(), tcell.ColorYellow)
}

// showDetails fills the details pane for the highlighted node.
func (p *Panel) showDetails(node *tview.TreeNode) {
	var b strings.Builder

	b.WriteString(styling.CreateHeader("Selection"))
	b.WriteString("\n")
	if node != nil {
		if row, ok := node.GetReference().(explorer.Row); ok {
			b.WriteString(p.rowDetails(row))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(styling.CreateHeader("Disk"))
	b.WriteString("\n")
	b.WriteString(p.diskText)

	p.statsView.SetText(b.String())
}

func (p *Panel) rowDetails(row explorer.Row) string {
	item := p.session.View.Item(row)

	lines := []string{
		styling.CreateInfoText("Name", item.Label, tcell.ColorWhite),
		styling.CreateInfoText("Kind", item.Context, tcell.ColorAqua),
		styling.CreateInfoText("Path", item.Tooltip, tcell.ColorGreen),
	}
	if row.Kind != explorer.RowParent {
		lines = append(lines, styling.CreateInfoText("Modified", Utils.FormatModTime(row.Entry.ModifiedTime), tcell.ColorYellow))
	}
	if row.Kind == explorer.RowFile {
		lines = append(lines, styling.CreateInfoText("Size", Utils.FormatSize(row.Entry.Size), tcell.ColorYellow))
	}
	if row.Entry.IsSymlink {
		lines = append(lines, styling.CreateInfoText("Link", "yes", tcell.ColorFuchsia))
	}
	return strings.Join(lines, "\n")
}

func diskDetails(dir string) string {
	usage, err := Utils.DiskUsage(dir)
	if err != nil {
		return styling.ApplyStyle(fmt.Sprintf("unavailable: %v", err), styling.NotificationStyle("warn"))
	}

	return strings.Join([]string{
		styling.CreateInfoText("Total", Utils.FormatSize(int64(usage.Total)), tcell.ColorWhite),
		styling.CreateInfoText("Used", Utils.FormatSize(int64(usage.Used)), styling.UsageColor(usage.UsedPercent)),
		styling.CreateInfoText("Free", Utils.FormatSize(int64(usage.Free)), tcell.ColorGreen),
		styling.CreateProgressBar(float64(usage.Used), float64(usage.Total), usageBarWidth),
	}, "\n")
}
