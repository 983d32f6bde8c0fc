package explorer

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"QuickExplorer/logging"
)

var (
	userHomeDirFn = os.UserHomeDir
	getwdFn       = os.Getwd
)

// Resolver decides which directory a new session starts in.
type Resolver struct {
	settings  Settings
	workspace Workspace
	notifier  Notifier
	checker   DirectoryChecker

	// StartPath, when set, is tried before the defaultPath setting. A relative
	// StartPath is taken from the working directory.
	StartPath string
}

// NewResolver wires a Resolver to its collaborators. workspace and notifier may be nil.
func NewResolver(settings Settings, workspace Workspace, notifier Notifier, checker DirectoryChecker) *Resolver {
	return &Resolver{
		settings:  settings,
		workspace: workspace,
		notifier:  notifier,
		checker:   checker,
	}
}

// InitialDirectory returns the first usable directory out of: the explicit start
// path, the defaultPath setting, the workspace root and the home directory.
// It never fails; invalid configured paths only produce a warning.
func (r *Resolver) InitialDirectory() string {
	log := logging.Named("resolver")

	if dir, err := r.tryConfigured("argument", r.StartPath, workingDirectory); err != nil {
		log.Warn("start path rejected", zap.Error(err))
		r.warn("Start path is not a valid directory: " + r.StartPath)
	} else if dir != "" {
		return dir
	}

	if r.settings != nil {
		value := r.settings.Get(KeyDefaultPath, "")
		if dir, err := r.tryConfigured(KeyDefaultPath, value, r.settingsBase); err != nil {
			log.Warn("configured default path rejected", zap.Error(err))
			r.warn("Configured default path is not a valid directory: " + value)
		} else if dir != "" {
			return dir
		}
	}

	if root, ok := r.workspaceRoot(); ok {
		return root
	}

	return homeDirectory()
}

// tryConfigured returns "" with a nil error when value is blank. Relative values
// are joined to base().
func (r *Resolver) tryConfigured(source, value string, base func() string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", nil
	}

	resolved := resolvePath(value, base)
	if r.checker == nil || !r.checker.Exists(resolved) {
		return "", &InvalidConfiguredPathError{Source: source, Value: value, Resolved: resolved}
	}
	return resolved, nil
}

func resolvePath(value string, base func() string) string {
	if value == "~" || strings.HasPrefix(value, "~/") || strings.HasPrefix(value, `~\`) {
		return filepath.Join(homeDirectory(), value[1:])
	}
	if filepath.IsAbs(value) {
		return filepath.Clean(value)
	}
	return filepath.Join(base(), value)
}

// settingsBase anchors a relative defaultPath: the workspace root, else home.
func (r *Resolver) settingsBase() string {
	if root, ok := r.workspaceRoot(); ok {
		return root
	}
	return homeDirectory()
}

func (r *Resolver) workspaceRoot() (string, bool) {
	if r.workspace == nil {
		return "", false
	}
	root, ok := r.workspace.Root()
	if !ok || root == "" {
		return "", false
	}
	return root, true
}

func (r *Resolver) warn(msg string) {
	if r.notifier != nil {
		r.notifier.Warn(msg)
	}
}

func workingDirectory() string {
	if wd, err := getwdFn(); err == nil && wd != "" {
		return wd
	}
	return homeDirectory()
}

// homeDirectory falls back to the working directory, then the filesystem root.
func homeDirectory() string {
	if home, err := userHomeDirFn(); err == nil && home != "" {
		return home
	}
	if wd, err := getwdFn(); err == nil && wd != "" {
		return wd
	}
	return string(filepath.Separator)
}
