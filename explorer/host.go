package explorer

// Setting keys read and written through Settings.
const (
	KeyDefaultPath      = "defaultPath"
	KeyDefaultSortOrder = "defaultSortOrder"
)

// Workspace reports the host's current project folder, if any.
type Workspace interface {
	Root() (string, bool)
}

// Notifier shows short messages to the user. Calls must not block.
type Notifier interface {
	Info(msg string)
	Warn(msg string)
	Error(msg string)
}

// Settings is the string key-value store behind the user's preferences.
type Settings interface {
	Get(key, defaultValue string) string
	Set(key, value string) error
}

// StaticWorkspace is a Workspace with a fixed root; the empty string means none.
type StaticWorkspace string

func (w StaticWorkspace) Root() (string, bool) {
	if w == "" {
		return "", false
	}
	return string(w), true
}
