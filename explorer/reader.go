package explorer

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"QuickExplorer/logging"
)

// DirectoryChecker answers whether a path is an existing directory.
type DirectoryChecker interface {
	Exists(path string) bool
}

// Lister produces the sorted entries of one directory.
type Lister interface {
	DirectoryChecker
	List(ctx context.Context, dir string, order SortOrder) ([]DirectoryEntry, error)
}

// Reader lists directories on the local filesystem.
type Reader struct {
	locale language.Tag
}

// NewReader returns a Reader that compares names with the collation rules of locale.
func NewReader(locale language.Tag) *Reader {
	return &Reader{locale: locale}
}

// List reads the direct children of dir and sorts them by order.
func (r *Reader) List(ctx context.Context, dir string, order SortOrder) ([]DirectoryEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, &FileSystemError{Op: "list", Path: dir, Err: err}
	}

	dirEntries, err := os.ReadDir(abs)
	if err != nil {
		return nil, &FileSystemError{Op: "list", Path: abs, Err: err}
	}

	log := logging.Named("reader")
	entries := make([]DirectoryEntry, 0, len(dirEntries))
	for _, de := range dirEntries {
		info, err := de.Info()
		if err != nil {
			// removed between ReadDir and Info
			log.Debug("skipping entry", zap.String("name", de.Name()), zap.Error(err))
			continue
		}

		entry := DirectoryEntry{
			Name:         de.Name(),
			Path:         filepath.Join(abs, de.Name()),
			IsDirectory:  de.IsDir(),
			ModifiedTime: info.ModTime(),
			Size:         info.Size(),
		}
		if info.Mode()&os.ModeSymlink != 0 {
			entry.IsSymlink = true
			if target, err := os.Stat(entry.Path); err == nil {
				entry.IsDirectory = target.IsDir()
				entry.ModifiedTime = target.ModTime()
				entry.Size = target.Size()
			}
		}
		entries = append(entries, entry)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	SortEntries(entries, order, collate.New(r.locale))
	log.Debug("listed directory",
		zap.String("dir", abs),
		zap.Int("entries", len(entries)),
		zap.String("order", string(order)),
	)
	return entries, nil
}

// Exists reports whether path is an existing directory. Errors count as false.
func (r *Reader) Exists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// SortEntries orders entries in place: directories first, then files, each
// group ordered by order. Equal keys keep their input order.
func SortEntries(entries []DirectoryEntry, order SortOrder, col *collate.Collator) {
	byName := order.byName()
	desc := order.descending()

	slices.SortStableFunc(entries, func(a, b DirectoryEntry) int {
		if a.IsDirectory != b.IsDirectory {
			if a.IsDirectory {
				return -1
			}
			return 1
		}

		var c int
		if byName {
			c = col.CompareString(a.Name, b.Name)
		} else {
			c = a.ModifiedTime.Compare(b.ModifiedTime)
		}
		if desc {
			return -c
		}
		return c
	})
}

// LocaleFromEnv picks the collation locale from LC_ALL, LC_COLLATE or LANG.
// "C", "POSIX" and unparsable values give the root collation.
func LocaleFromEnv() language.Tag {
	for _, key := range []string{"LC_ALL", "LC_COLLATE", "LANG"} {
		if value := os.Getenv(key); value != "" {
			return ParseLocale(value)
		}
	}
	return language.Und
}

// ParseLocale turns a POSIX locale such as "ja_JP.UTF-8" into a language tag.
func ParseLocale(value string) language.Tag {
	if i := strings.IndexAny(value, ".@"); i >= 0 {
		value = value[:i]
	}
	if value == "" || value == "C" || value == "POSIX" {
		return language.Und
	}
	tag, err := language.Parse(strings.ReplaceAll(value, "_", "-"))
	if err != nil {
		return language.Und
	}
	return tag
}
