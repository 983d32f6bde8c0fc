package app

import (
	"context"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"

	"QuickExplorer/explorer"
	"QuickExplorer/logging"
	"QuickExplorer/styling"
)

// Panel is the interactive directory panel.
type Panel struct {
	app     *tview.Application
	session *explorer.Session
	log     *zap.Logger

	layout     *tview.Flex
	headerView *tview.TextView
	treeView   *tview.TreeView
	statsView  *tview.TextView
	cdInput    *tview.InputField
	footerView *tview.TextView
	statusView *tview.TextView

	actions  *styling.ActionRegistry
	notifier *StatusNotifier

	// diskText is the usage summary of the listed directory's filesystem,
	// computed with each listing.
	diskText string
	// generation drops listings that finish after a newer one was requested.
	generation atomic.Uint64
	// selectPath is the row to highlight after the next render.
	selectPath string
}

// StartApp opens the panel on the session described by cfg and blocks until
// the user quits.
func StartApp(cfg explorer.SessionConfig) error {
	return open(tview.NewApplication(), cfg).run()
}

// open builds the panel and its session. Notices raised while the session
// starts are shown once the event loop runs.
func open(application *tview.Application, cfg explorer.SessionConfig) *Panel {
	p := newPanel(application)
	p.notifier = NewStatusNotifier(p.app, p.statusView)

	cfg.Notifier = p.notifier
	p.attach(explorer.NewSession(cfg))
	return p
}

func (p *Panel) run() error {
	p.log.Info("panel started",
		zap.String("root", p.session.Nav.ProjectRoot()),
		zap.String("order", string(p.session.Nav.SortOrder())),
	)
	defer p.log.Info("panel stopped")

	return p.app.SetRoot(p.layout, true).EnableMouse(true).SetFocus(p.treeView).Run()
}

func newPanel(application *tview.Application) *Panel {
	p := &Panel{
		app:     application,
		log:     logging.Named("panel"),
		actions: styling.NewActionRegistry(),
	}

	p.headerView = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignLeft)

	p.treeView = tview.NewTreeView()
	p.treeView.SetBorder(true)
	p.treeView.SetSelectedFunc(p.openNode)
	p.treeView.SetChangedFunc(p.showDetails)

	p.statsView = tview.NewTextView().
		SetDynamicColors(true).
		SetWordWrap(true)
	p.statsView.SetBorder(true).SetTitle(" Details ")

	p.cdInput = tview.NewInputField().
		SetLabel("cd: ").
		SetFieldBackgroundColor(tcell.ColorDefault)
	p.cdInput.SetDoneFunc(p.finishChangeDirectoryPrompt)

	p.footerView = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter)
	p.actions.InstallClickHandler(p.footerView)
	p.footerView.SetText(p.footerText())

	p.statusView = tview.NewTextView().
		SetDynamicColors(true)

	body := tview.NewFlex().
		AddItem(p.treeView, 0, 2, true).
		AddItem(p.statsView, 0, 1, false)

	p.layout = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(p.headerView, 1, 0, false).
		AddItem(body, 0, 1, true).
		AddItem(p.cdInput, 1, 0, false).
		AddItem(p.statusView, 1, 0, false).
		AddItem(p.footerView, 1, 0, false)

	p.app.SetInputCapture(p.handleKey)
	return p
}

// attach binds the panel to a session and renders the first listing.
func (p *Panel) attach(session *explorer.Session) {
	p.session = session
	session.View.OnChange(p.reload)
	p.render(p.load(context.Background()))
}

func (p *Panel) handleKey(event *tcell.EventKey) *tcell.EventKey {
	if p.app.GetFocus() == p.cdInput {
		return event
	}

	switch event.Key() {
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		p.goUp()
		return nil
	case tcell.KeyRune:
		switch event.Rune() {
		case 'q', 'Q':
			p.app.Stop()
			return nil
		case 's', 'S':
			p.session.ToggleSortOrder()
			return nil
		case 'r', 'R', ' ':
			p.session.Refresh()
			return nil
		case ':':
			p.startChangeDirectoryPrompt()
			return nil
		}
	}
	return event
}

func (p *Panel) footerText() string {
	style := styling.ClickableStyle()
	hint := styling.NewStyleBuilder().WithTextColor(tcell.ColorGray).WithItalic().Build()

	return p.actions.MakeClickable("Up", style, func() { p.goUp() }) + "  " +
		p.actions.MakeClickable("Sort", style, func() { p.session.ToggleSortOrder() }) + "  " +
		p.actions.MakeClickable("Refresh", style, func() { p.session.Refresh() }) + "  " +
		p.actions.MakeClickable("Quit", style, func() { p.app.Stop() }) + "  " +
		styling.ApplyStyle("ENTER: Open | BACKSPACE: Up | S: Sort | R/SPACE: Refresh | :: cd | Q: Quit", hint)
}
