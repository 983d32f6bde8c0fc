package explorer

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"QuickExplorer/Utils"
	"QuickExplorer/logging"
)

// RowKind tells the renderer what a row stands for.
type RowKind int

const (
	RowParent RowKind = iota
	RowDirectory
	RowFile
)

func (k RowKind) String() string {
	switch k {
	case RowParent:
		return "parentDirectory"
	case RowDirectory:
		return "folder"
	default:
		return "file"
	}
}

// Row is one line of the flat view. Entry is the zero value for RowParent.
type Row struct {
	Kind  RowKind
	Path  string
	Entry DirectoryEntry
}

// Action is what activating an item does.
type Action int

const (
	ActionChangeDirectory Action = iota
	ActionRevealFile
)

// Item is the renderer-facing description of a row.
type Item struct {
	Label   string
	Icon    string
	Tooltip string
	Context string
	Action  Action
	Target  string
}

// TreeProvider is what a renderer needs from the core.
type TreeProvider interface {
	Children(ctx context.Context, parent *Row) []Row
	Item(row Row) Item
	OnChange(fn func()) func()
}

// ViewProjector turns the navigation state into display rows.
type ViewProjector struct {
	nav      *NavigationState
	lister   Lister
	notifier Notifier
	log      *zap.Logger
}

var _ TreeProvider = (*ViewProjector)(nil)

func NewViewProjector(nav *NavigationState, lister Lister, notifier Notifier) *ViewProjector {
	return &ViewProjector{
		nav:      nav,
		lister:   lister,
		notifier: notifier,
		log:      logging.Named("view"),
	}
}

// Rows is Children for the top level.
func (v *ViewProjector) Rows(ctx context.Context) []Row {
	return v.Children(ctx, nil)
}

// Children returns the rows under parent. Only the top level has children: an
// "up" row when the current directory is below the project root, then one row
// per entry. A listing failure is logged, reported and yields no rows.
func (v *ViewProjector) Children(ctx context.Context, parent *Row) []Row {
	if parent != nil {
		return nil
	}

	current := v.nav.CurrentDirectory()
	order := v.nav.SortOrder()

	entries, err := v.lister.List(ctx, current, order)
	if err != nil {
		v.log.Error("failed to get directory contents", zap.String("dir", current), zap.Error(err))
		if v.notifier != nil {
			v.notifier.Error(fmt.Sprintf("Failed to read directory: %s. %v", current, errCause(err)))
		}
		return []Row{}
	}

	rows := make([]Row, 0, len(entries)+1)
	if current != v.nav.ProjectRoot() {
		rows = append(rows, Row{Kind: RowParent, Path: Utils.ParentOf(current)})
	}
	for _, entry := range entries {
		kind := RowFile
		if entry.IsDirectory {
			kind = RowDirectory
		}
		rows = append(rows, Row{Kind: kind, Path: entry.Path, Entry: entry})
	}
	return rows
}

// Item describes how row is displayed and what activating it does.
func (v *ViewProjector) Item(row Row) Item {
	rel := Utils.RelativeTo(v.nav.ProjectRoot(), row.Path)

	switch row.Kind {
	case RowParent:
		return Item{
			Label:   "..",
			Icon:    Utils.ParentIcon,
			Tooltip: "Go to parent directory: " + rel,
			Context: row.Kind.String(),
			Action:  ActionChangeDirectory,
			Target:  row.Path,
		}
	case RowDirectory:
		return Item{
			Label:   row.Entry.Name,
			Icon:    entryIcon(row.Entry),
			Tooltip: rel,
			Context: row.Kind.String(),
			Action:  ActionChangeDirectory,
			Target:  row.Path,
		}
	default:
		return Item{
			Label:   row.Entry.Name,
			Icon:    entryIcon(row.Entry),
			Tooltip: rel,
			Context: row.Kind.String(),
			Action:  ActionRevealFile,
			Target:  row.Path,
		}
	}
}

func (v *ViewProjector) OnChange(fn func()) func() {
	return v.nav.OnChange(fn)
}

func entryIcon(e DirectoryEntry) string {
	if e.IsSymlink && !e.IsDirectory {
		return Utils.LinkIcon
	}
	return Utils.GetFileIcon(e.Name, e.IsDirectory)
}

// errCause drops the FileSystemError prefix, which repeats the path.
func errCause(err error) error {
	var fsErr *FileSystemError
	if errors.As(err, &fsErr) && fsErr.Err != nil {
		return fsErr.Err
	}
	return err
}
