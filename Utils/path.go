package Utils

import (
	"path/filepath"
	"strings"
)

// ParentOf returns the directory containing path.
func ParentOf(path string) string {
	return filepath.Dir(path)
}

// IsFilesystemRoot reports whether path has no parent above it.
func IsFilesystemRoot(path string) bool {
	return ParentOf(path) == path
}

// IsWithin reports whether path is root itself or lies below it.
// Separators are compared in '/' form; case and symlinks are left alone.
func IsWithin(path, root string) bool {
	p := normalizeSeparators(path)
	r := normalizeSeparators(root)

	if p == r {
		return true
	}
	if !strings.HasSuffix(r, "/") {
		r += "/"
	}
	return strings.HasPrefix(p, r)
}

// RelativeTo returns path relative to base, or "." when they are the same.
func RelativeTo(base, path string) string {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return path
	}
	if rel == "" {
		return "."
	}
	return rel
}

func normalizeSeparators(path string) string {
	return strings.ReplaceAll(path, "\\", "/")
}
