package explorer

// SessionConfig carries the collaborators a Session is built from.
type SessionConfig struct {
	Settings  Settings
	Workspace Workspace
	Notifier  Notifier
	// Lister defaults to a Reader using the environment's locale.
	Lister Lister
	// StartPath is an optional explicit starting directory.
	StartPath string
}

// Session is one open panel: its navigation state, its view, and the commands
// the host binds to keys or buttons. After each command the host re-reads
// View.Rows and Title.
type Session struct {
	Nav  *NavigationState
	View *ViewProjector

	notifier Notifier
}

// NewSession resolves the starting directory and builds the session around it.
func NewSession(cfg SessionConfig) *Session {
	lister := cfg.Lister
	if lister == nil {
		lister = NewReader(LocaleFromEnv())
	}

	resolver := NewResolver(cfg.Settings, cfg.Workspace, cfg.Notifier, lister)
	resolver.StartPath = cfg.StartPath
	initial := resolver.InitialDirectory()

	var workspaceRoot string
	if cfg.Workspace != nil {
		if root, ok := cfg.Workspace.Root(); ok {
			workspaceRoot = root
		}
	}

	nav := NewNavigationState(initial, workspaceRoot, lister, cfg.Settings, cfg.Notifier)
	return &Session{
		Nav:      nav,
		View:     NewViewProjector(nav, lister, cfg.Notifier),
		notifier: cfg.Notifier,
	}
}

func (s *Session) ChangeDirectory(path string) error {
	return s.Nav.Navigate(path)
}

func (s *Session) GoUp() (bool, error) {
	return s.Nav.GoUp()
}

func (s *Session) ToggleSortOrder() SortOrder {
	return s.Nav.ToggleSortOrder()
}

// Refresh re-projects the view without changing state.
func (s *Session) Refresh() {
	s.Nav.Refresh()
	if s.notifier != nil {
		s.notifier.Info("Folder view refreshed")
	}
}

// Title is the breadcrumb shown above the view.
func (s *Session) Title() string {
	return s.Nav.RelativeDisplayPath()
}
