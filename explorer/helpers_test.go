package explorer

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

type fakeSettings struct {
	mu     sync.Mutex
	values map[string]string
	setErr error
	sets   int
}

func newFakeSettings(kv ...string) *fakeSettings {
	s := &fakeSettings{values: make(map[string]string)}
	for i := 0; i+1 < len(kv); i += 2 {
		s.values[kv[i]] = kv[i+1]
	}
	return s
}

func (s *fakeSettings) Get(key, defaultValue string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.values[key]; ok {
		return v
	}
	return defaultValue
}

func (s *fakeSettings) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sets++
	if s.setErr != nil {
		return s.setErr
	}
	s.values[key] = value
	return nil
}

type message struct {
	level string
	text  string
}

type recordingNotifier struct {
	mu       sync.Mutex
	messages []message
}

func (n *recordingNotifier) add(level, text string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, message{level, text})
}

func (n *recordingNotifier) Info(msg string)  { n.add("info", msg) }
func (n *recordingNotifier) Warn(msg string)  { n.add("warn", msg) }
func (n *recordingNotifier) Error(msg string) { n.add("error", msg) }

func (n *recordingNotifier) count(level string) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	c := 0
	for _, m := range n.messages {
		if m.level == level {
			c++
		}
	}
	return c
}

func (n *recordingNotifier) has(level, substr string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, m := range n.messages {
		if m.level == level && strings.Contains(m.text, substr) {
			return true
		}
	}
	return false
}

var (
	oldTime = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	newTime = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
)

// createSortFixture builds folderA/folderB/fileA.txt/fileB.txt where the "A"
// entries are old and the "B" entries are new.
func createSortFixture(t *testing.T, dir string) {
	t.Helper()
	mustMkdir(t, filepath.Join(dir, "folderA"))
	mustMkdir(t, filepath.Join(dir, "folderB"))
	mustWrite(t, filepath.Join(dir, "fileA.txt"), "content A")
	mustWrite(t, filepath.Join(dir, "fileB.txt"), "content B")

	mustChtimes(t, filepath.Join(dir, "fileA.txt"), oldTime)
	mustChtimes(t, filepath.Join(dir, "fileB.txt"), newTime)
	mustChtimes(t, filepath.Join(dir, "folderA"), oldTime)
	mustChtimes(t, filepath.Join(dir, "folderB"), newTime)
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
}

func mustWrite(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func mustChtimes(t *testing.T, path string, ts time.Time) {
	t.Helper()
	if err := os.Chtimes(path, ts, ts); err != nil {
		t.Fatalf("chtimes %s: %v", path, err)
	}
}

func names(entries []DirectoryEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

var errSaveFailed = errors.New("settings file is read-only")
