package app

import (
	"context"
	"errors"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"

	"QuickExplorer/explorer"
)

// reload lists the current directory off the UI goroutine and renders the
// result unless a newer reload has started meanwhile.
func (p *Panel) reload() {
	gen := p.generation.Add(1)
	go func() {
		l := p.load(context.Background())
		p.app.QueueUpdateDraw(func() {
			if p.generation.Load() != gen {
				p.log.Debug("dropping stale listing", zap.Uint64("generation", gen))
				return
			}
			p.render(l)
		})
	}()
}

// listing is what one reload produces: the rows and the disk summary.
type listing struct {
	rows []explorer.Row
	disk string
}

// load does the blocking filesystem work of a reload.
func (p *Panel) load(ctx context.Context) listing {
	return listing{
		rows: p.session.View.Rows(ctx),
		disk: diskDetails(p.session.Nav.CurrentDirectory()),
	}
}

// openNode activates the selected row.
func (p *Panel) openNode(node *tview.TreeNode) {
	row, ok := node.GetReference().(explorer.Row)
	if !ok {
		return
	}

	item := p.session.View.Item(row)
	switch item.Action {
	case explorer.ActionChangeDirectory:
		from := p.session.Nav.CurrentDirectory()
		if row.Kind == explorer.RowParent {
			p.selectPath = from
		}
		p.changeDirectory(item.Target)
	case explorer.ActionRevealFile:
		p.showDetails(node)
		p.openFile(item.Target)
	}
}

func (p *Panel) goUp() {
	from := p.session.Nav.CurrentDirectory()
	moved, err := p.session.GoUp()
	if err != nil {
		p.log.Debug("go up rejected", zap.Error(err))
		return
	}
	if moved {
		p.selectPath = from
	}
}

func (p *Panel) changeDirectory(path string) {
	if err := p.session.ChangeDirectory(path); err != nil {
		// the notifier has already told the user
		p.log.Debug("change directory rejected", zap.Bool("aboveRoot", errors.Is(err, explorer.ErrAboveRoot)), zap.Error(err))
	}
}

func (p *Panel) startChangeDirectoryPrompt() {
	p.cdInput.SetText("")
	p.app.SetFocus(p.cdInput)
}

func (p *Panel) finishChangeDirectoryPrompt(key tcell.Key) {
	target := strings.TrimSpace(p.cdInput.GetText())
	p.cdInput.SetText("")
	p.app.SetFocus(p.treeView)

	if key == tcell.KeyEnter && target != "" {
		p.changeDirectory(target)
	}
}
