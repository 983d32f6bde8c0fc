package explorer

import (
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"QuickExplorer/Utils"
	"QuickExplorer/logging"
)

// NavigationState tracks the directory a view shows. The current directory never
// leaves the project root fixed at construction.
type NavigationState struct {
	checker  DirectoryChecker
	settings Settings
	notifier Notifier
	log      *zap.Logger

	projectRoot   string
	workspaceRoot string

	mu        sync.RWMutex
	current   string
	sortOrder SortOrder

	listenersMu sync.Mutex
	listeners   map[int]func()
	nextID      int
}

// NewNavigationState starts at initialDir, which also becomes the project root.
// The sort order is read from the defaultSortOrder setting.
func NewNavigationState(initialDir, workspaceRoot string, checker DirectoryChecker, settings Settings, notifier Notifier) *NavigationState {
	root := filepath.Clean(initialDir)
	order := DefaultSortOrder
	if settings != nil {
		order = StringToSortOrder(settings.Get(KeyDefaultSortOrder, SortOrderToString(DefaultSortOrder)))
	}

	return &NavigationState{
		checker:       checker,
		settings:      settings,
		notifier:      notifier,
		log:           logging.Named("navigation"),
		projectRoot:   root,
		workspaceRoot: workspaceRoot,
		current:       root,
		sortOrder:     order,
		listeners:     make(map[int]func()),
	}
}

func (n *NavigationState) CurrentDirectory() string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.current
}

func (n *NavigationState) ProjectRoot() string {
	return n.projectRoot
}

func (n *NavigationState) SortOrder() SortOrder {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.sortOrder
}

// AtRoot reports whether the current directory is the project root.
func (n *NavigationState) AtRoot() bool {
	return n.CurrentDirectory() == n.projectRoot
}

// Navigate moves to target. A relative target is taken from the current
// directory. The state is unchanged when target is not a directory
// (ErrNotADirectory) or lies outside the project root (ErrAboveRoot).
func (n *NavigationState) Navigate(target string) error {
	if !filepath.IsAbs(target) {
		target = filepath.Join(n.CurrentDirectory(), target)
	}
	target = filepath.Clean(target)

	if n.checker == nil || !n.checker.Exists(target) {
		n.log.Debug("navigation rejected", zap.String("target", target), zap.String("reason", "not a directory"))
		n.warn("Not a directory: " + target)
		return &NavigationError{Target: target, Reason: ErrNotADirectory}
	}

	if !Utils.IsWithin(target, n.projectRoot) {
		n.log.Debug("navigation rejected", zap.String("target", target), zap.String("reason", "above root"))
		n.info("Cannot navigate above project root")
		return &NavigationError{Target: target, Reason: ErrAboveRoot}
	}

	n.mu.Lock()
	n.current = target
	n.mu.Unlock()

	n.log.Debug("navigated", zap.String("dir", target))
	n.fire()
	return nil
}

// GoUp moves to the parent directory. At the project root it does nothing and
// reports false.
func (n *NavigationState) GoUp() (bool, error) {
	current := n.CurrentDirectory()
	if current == n.projectRoot {
		n.info("Already at project root")
		return false, nil
	}
	if err := n.Navigate(Utils.ParentOf(current)); err != nil {
		return false, err
	}
	return true, nil
}

// ToggleSortOrder advances to the next sort order and saves it.
func (n *NavigationState) ToggleSortOrder() SortOrder {
	n.mu.Lock()
	n.sortOrder = n.sortOrder.Next()
	next := n.sortOrder
	n.mu.Unlock()

	if n.settings != nil {
		if err := n.settings.Set(KeyDefaultSortOrder, SortOrderToString(next)); err != nil {
			n.log.Warn("saving sort order failed", zap.Error(err))
			n.warn("Could not save sort order: " + err.Error())
		}
	}

	n.fire()
	return next
}

// Refresh signals listeners without changing anything.
func (n *NavigationState) Refresh() {
	n.fire()
}

// RelativeDisplayPath is the current directory relative to the workspace root,
// or to the project root when there is no workspace.
func (n *NavigationState) RelativeDisplayPath() string {
	base := n.workspaceRoot
	if base == "" {
		base = n.projectRoot
	}
	return Utils.RelativeTo(base, n.CurrentDirectory())
}

// OnChange registers fn to run whenever the view becomes stale. The returned
// function removes it.
func (n *NavigationState) OnChange(fn func()) func() {
	n.listenersMu.Lock()
	defer n.listenersMu.Unlock()

	id := n.nextID
	n.nextID++
	n.listeners[id] = fn

	return func() {
		n.listenersMu.Lock()
		defer n.listenersMu.Unlock()
		delete(n.listeners, id)
	}
}

func (n *NavigationState) fire() {
	n.listenersMu.Lock()
	fns := make([]func(), 0, len(n.listeners))
	for i := 0; i < n.nextID; i++ {
		if fn, ok := n.listeners[i]; ok {
			fns = append(fns, fn)
		}
	}
	n.listenersMu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

func (n *NavigationState) info(msg string) {
	if n.notifier != nil {
		n.notifier.Info(msg)
	}
}

func (n *NavigationState) warn(msg string) {
	if n.notifier != nil {
		n.notifier.Warn(msg)
	}
}
