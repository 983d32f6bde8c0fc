package explorer

import "time"

// DirectoryEntry is one child of a listed directory. A fresh slice is built on
// every listing; entries are never cached.
type DirectoryEntry struct {
	Name         string
	Path         string
	IsDirectory  bool
	IsSymlink    bool
	ModifiedTime time.Time
	Size         int64
}
