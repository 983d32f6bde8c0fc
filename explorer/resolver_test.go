package explorer

import (
	"errors"
	"path/filepath"
	"testing"

	"golang.org/x/text/language"
)

// withHome points the home-directory lookup at dir for one test.
func withHome(t *testing.T, dir string) {
	t.Helper()
	prev := userHomeDirFn
	userHomeDirFn = func() (string, error) { return dir, nil }
	t.Cleanup(func() { userHomeDirFn = prev })
}

func TestResolver_InitialDirectory(t *testing.T) {
	home := t.TempDir()
	workspace := t.TempDir()
	configured := t.TempDir()
	mustMkdir(t, filepath.Join(workspace, "sub"))
	mustMkdir(t, filepath.Join(home, "notes"))
	withHome(t, home)

	tests := []struct {
		name      string
		setting   string
		start     string
		workspace Workspace
		want      string
		warned    bool
	}{
		{"configured wins over workspace", configured, "", StaticWorkspace(workspace), configured, false},
		{"invalid configured falls back to workspace", filepath.Join(configured, "missing"), "", StaticWorkspace(workspace), workspace, true},
		{"nothing set uses home", "", "", nil, home, false},
		{"empty workspace uses home", "", "", StaticWorkspace(""), home, false},
		{"blank setting is skipped silently", "   ", "", StaticWorkspace(workspace), workspace, false},
		{"relative setting resolves against workspace", "sub", "", StaticWorkspace(workspace), filepath.Join(workspace, "sub"), false},
		{"relative setting resolves against home without workspace", "notes", "", nil, filepath.Join(home, "notes"), false},
		{"tilde expands to home", "~/notes", "", StaticWorkspace(workspace), filepath.Join(home, "notes"), false},
		{"start path wins over setting", configured, workspace, nil, workspace, false},
		{"invalid start path falls back to setting", configured, filepath.Join(home, "missing"), nil, configured, true},
		{"invalid configured and no workspace uses home", filepath.Join(home, "missing"), "", nil, home, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notifier := &recordingNotifier{}
			settings := newFakeSettings(KeyDefaultPath, tt.setting)
			resolver := NewResolver(settings, tt.workspace, notifier, NewReader(language.Und))
			resolver.StartPath = tt.start

			if got := resolver.InitialDirectory(); got != tt.want {
				t.Errorf("InitialDirectory() = %q, want %q", got, tt.want)
			}
			if warned := notifier.count("warn") > 0; warned != tt.warned {
				t.Errorf("warned = %v, want %v (messages: %+v)", warned, tt.warned, notifier.messages)
			}
		})
	}
}

func TestResolver_WarningNamesConfiguredValue(t *testing.T) {
	withHome(t, t.TempDir())
	notifier := &recordingNotifier{}
	settings := newFakeSettings(KeyDefaultPath, "/definitely/not/here")

	NewResolver(settings, nil, notifier, NewReader(language.Und)).InitialDirectory()

	if !notifier.has("warn", "/definitely/not/here") {
		t.Errorf("warning does not name the configured value: %+v", notifier.messages)
	}
}

func TestResolver_HomeFallsBackToWorkingDirectory(t *testing.T) {
	wd := t.TempDir()

	prevHome, prevWd := userHomeDirFn, getwdFn
	userHomeDirFn = func() (string, error) { return "", errors.New("no home") }
	getwdFn = func() (string, error) { return wd, nil }
	t.Cleanup(func() { userHomeDirFn, getwdFn = prevHome, prevWd })

	if got := NewResolver(nil, nil, nil, NewReader(language.Und)).InitialDirectory(); got != wd {
		t.Errorf("InitialDirectory() = %q, want %q", got, wd)
	}
}

func TestResolver_RelativeStartPathUsesWorkingDirectory(t *testing.T) {
	home := t.TempDir()
	wd := t.TempDir()
	workspace := t.TempDir()
	mustMkdir(t, filepath.Join(wd, "sub"))
	mustMkdir(t, filepath.Join(home, "sub"))
	mustMkdir(t, filepath.Join(workspace, "sub"))
	withHome(t, home)

	prevWd := getwdFn
	getwdFn = func() (string, error) { return wd, nil }
	t.Cleanup(func() { getwdFn = prevWd })

	for _, ws := range []Workspace{nil, StaticWorkspace(""), StaticWorkspace(workspace)} {
		resolver := NewResolver(newFakeSettings(), ws, nil, NewReader(language.Und))
		resolver.StartPath = "sub"
		if got, want := resolver.InitialDirectory(), filepath.Join(wd, "sub"); got != want {
			t.Errorf("workspace %v: InitialDirectory() = %q, want %q", ws, got, want)
		}
	}
}

func TestInvalidConfiguredPathError_Message(t *testing.T) {
	err := &InvalidConfiguredPathError{Source: KeyDefaultPath, Value: "docs", Resolved: "/home/u/docs"}
	want := `configured defaultPath "docs" (/home/u/docs) is not a directory`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
