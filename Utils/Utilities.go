package Utils

import (
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

func FormatSize(size int64) string {
	const (
		KB = 1 << 10
		MB = 1 << 20
		GB = 1 << 30
		TB = 1 << 40
	)

	switch {
	case size >= TB:
		return FormatFloat(float64(size)/TB) + " TB"
	case size >= GB:
		return FormatFloat(float64(size)/GB) + " GB"
	case size >= MB:
		return FormatFloat(float64(size)/MB) + " MB"
	case size >= KB:
		return FormatFloat(float64(size)/KB) + " KB"
	default:
		return strconv.FormatInt(size, 10) + " B"
	}
}

func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

// FormatModTime renders a modification time the way the listing shows it.
func FormatModTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}

// GetFileIcon picks the row icon for an entry name.
func GetFileIcon(filename string, isDir bool) string {
	if isDir {
		return "📁"
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".go":
		return "🔷"
	case ".txt", ".md":
		return "📝"
	case ".jpg", ".jpeg", ".png", ".gif":
		return "🖼️"
	case ".mp3", ".wav":
		return "🎵"
	case ".mp4", ".avi", ".mov":
		return "🎞️"
	case ".pdf":
		return "📕"
	case ".zip", ".tar", ".gz":
		return "📦"
	case ".exe", ".app":
		return "⚙️"
	default:
		return "📄"
	}
}

// ParentIcon is shown on the row that leads one directory up.
const ParentIcon = "⬆️"

// LinkIcon marks symlinked entries.
const LinkIcon = "🔗"
