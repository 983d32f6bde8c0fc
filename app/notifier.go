package app

import (
	"sync/atomic"

	"github.com/rivo/tview"
	"go.uber.org/zap"

	"QuickExplorer/explorer"
	"QuickExplorer/logging"
	"QuickExplorer/styling"
)

// StatusNotifier shows user-facing messages on the panel's status line.
type StatusNotifier struct {
	app  *tview.Application
	view *tview.TextView
	log  *zap.Logger

	seq atomic.Uint64
	// shown is only touched on the UI goroutine.
	shown uint64
}

var _ explorer.Notifier = (*StatusNotifier)(nil)

func NewStatusNotifier(app *tview.Application, view *tview.TextView) *StatusNotifier {
	return &StatusNotifier{app: app, view: view, log: logging.Named("notify")}
}

func (n *StatusNotifier) Info(msg string) {
	n.log.Info(msg)
	n.show("info", msg)
}

func (n *StatusNotifier) Warn(msg string) {
	n.log.Warn(msg)
	n.show("warn", msg)
}

func (n *StatusNotifier) Error(msg string) {
	n.log.Error(msg)
	n.show("error", msg)
}

// show does not wait for the event loop: it is called from key handlers running
// on that loop and while the session is built before Run. Updates may land out
// of order, so an older message never replaces a newer one.
func (n *StatusNotifier) show(level, msg string) {
	text := statusText(level, msg)
	seq := n.seq.Add(1)
	go n.app.QueueUpdateDraw(func() {
		if seq < n.shown {
			return
		}
		n.shown = seq
		n.view.SetText(text)
	})
}

func statusText(level, msg string) string {
	prefix := map[string]string{"info": "ℹ️  ", "warn": "⚠️  ", "error": "❌ "}[level]
	return styling.ApplyStyle(prefix+msg, styling.NotificationStyle(level))
}
