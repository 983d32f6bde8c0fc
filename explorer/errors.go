package explorer

import (
	"errors"
	"fmt"
)

var (
	// ErrNotADirectory rejects a navigation target that is not an existing directory.
	ErrNotADirectory = errors.New("not a directory")
	// ErrAboveRoot rejects a navigation target outside the project root.
	ErrAboveRoot = errors.New("cannot navigate above project root")
)

// FileSystemError wraps a failed read of a directory.
type FileSystemError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileSystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileSystemError) Unwrap() error { return e.Err }

// NavigationError is returned when a navigation request leaves the state untouched.
type NavigationError struct {
	Target string
	Reason error
}

func (e *NavigationError) Error() string {
	return fmt.Sprintf("navigate to %s: %v", e.Target, e.Reason)
}

func (e *NavigationError) Unwrap() error { return e.Reason }

// InvalidConfiguredPathError describes a start path that could not be used.
type InvalidConfiguredPathError struct {
	Source   string // "argument" or the setting key
	Value    string
	Resolved string
}

func (e *InvalidConfiguredPathError) Error() string {
	if e.Resolved != "" && e.Resolved != e.Value {
		return fmt.Sprintf("configured %s %q (%s) is not a directory", e.Source, e.Value, e.Resolved)
	}
	return fmt.Sprintf("configured %s %q is not a directory", e.Source, e.Value)
}
