package explorer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"testing"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

func TestReader_List_SortOrders(t *testing.T) {
	dir := t.TempDir()
	createSortFixture(t, dir)
	reader := NewReader(language.English)

	tests := []struct {
		order SortOrder
		want  []string
	}{
		{FolderFirstNameAsc, []string{"folderA", "folderB", "fileA.txt", "fileB.txt"}},
		{FolderFirstNameDesc, []string{"folderB", "folderA", "fileB.txt", "fileA.txt"}},
		{FolderFirstModifiedAsc, []string{"folderA", "folderB", "fileA.txt", "fileB.txt"}},
		{FolderFirstModifiedDesc, []string{"folderB", "folderA", "fileB.txt", "fileA.txt"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.order), func(t *testing.T) {
			entries, err := reader.List(context.Background(), dir, tt.order)
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}
			if got := names(entries); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("List() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReader_List_ModifiedOrderIgnoresNames(t *testing.T) {
	dir := t.TempDir()
	mustWrite(t, filepath.Join(dir, "a.txt"), "")
	mustWrite(t, filepath.Join(dir, "b.txt"), "")
	mustChtimes(t, filepath.Join(dir, "a.txt"), newTime)
	mustChtimes(t, filepath.Join(dir, "b.txt"), oldTime)

	entries, err := NewReader(language.Und).List(context.Background(), dir, FolderFirstModifiedAsc)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if got, want := names(entries), []string{"b.txt", "a.txt"}; !reflect.DeepEqual(got, want) {
		t.Errorf("List() = %v, want %v", got, want)
	}
}

func TestReader_List_EntryProperties(t *testing.T) {
	dir := t.TempDir()
	createSortFixture(t, dir)

	entries, err := NewReader(language.Und).List(context.Background(), dir, FolderFirstNameAsc)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	var file *DirectoryEntry
	for i := range entries {
		if entries[i].Name == "fileA.txt" {
			file = &entries[i]
		}
	}
	if file == nil {
		t.Fatalf("fileA.txt missing from %v", names(entries))
	}
	if file.Path != filepath.Join(dir, "fileA.txt") {
		t.Errorf("Path = %q, want %q", file.Path, filepath.Join(dir, "fileA.txt"))
	}
	if file.IsDirectory {
		t.Errorf("fileA.txt reported as directory")
	}
	if !file.ModifiedTime.Equal(oldTime) {
		t.Errorf("ModifiedTime = %v, want %v", file.ModifiedTime, oldTime)
	}
	if file.Size != int64(len("content A")) {
		t.Errorf("Size = %d, want %d", file.Size, len("content A"))
	}
}

func TestReader_List_DirectChildrenOnly(t *testing.T) {
	dir := t.TempDir()
	mustMkdir(t, filepath.Join(dir, "outer", "inner"))
	mustWrite(t, filepath.Join(dir, "outer", "inner", "deep.txt"), "x")

	entries, err := NewReader(language.Und).List(context.Background(), dir, FolderFirstNameAsc)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if got, want := names(entries), []string{"outer"}; !reflect.DeepEqual(got, want) {
		t.Errorf("List() = %v, want %v", got, want)
	}
}

func TestReader_List_SymlinkToDirectoryIsDirectory(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}
	dir := t.TempDir()
	mustMkdir(t, filepath.Join(dir, "target"))
	if err := os.Symlink(filepath.Join(dir, "target"), filepath.Join(dir, "link")); err != nil {
		t.Fatalf("symlink: %v", err)
	}
	if err := os.Symlink(filepath.Join(dir, "missing"), filepath.Join(dir, "dangling")); err != nil {
		t.Fatalf("symlink: %v", err)
	}

	entries, err := NewReader(language.Und).List(context.Background(), dir, FolderFirstNameAsc)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	byName := map[string]DirectoryEntry{}
	for _, e := range entries {
		byName[e.Name] = e
	}
	if e := byName["link"]; !e.IsDirectory || !e.IsSymlink {
		t.Errorf("link = %+v, want symlinked directory", e)
	}
	if e := byName["dangling"]; e.IsDirectory || !e.IsSymlink {
		t.Errorf("dangling = %+v, want symlinked file", e)
	}
}

func TestReader_List_MissingDirectory(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does-not-exist")

	_, err := NewReader(language.Und).List(context.Background(), missing, FolderFirstNameAsc)
	if err == nil {
		t.Fatal("List() error = nil, want error")
	}

	var fsErr *FileSystemError
	if !errors.As(err, &fsErr) {
		t.Fatalf("List() error = %T, want *FileSystemError", err)
	}
	if fsErr.Path != missing {
		t.Errorf("FileSystemError.Path = %q, want %q", fsErr.Path, missing)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("errors.Is(err, fs.ErrNotExist) = false for %v", err)
	}
}

func TestReader_List_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewReader(language.Und).List(ctx, t.TempDir(), FolderFirstNameAsc); !errors.Is(err, context.Canceled) {
		t.Errorf("List() error = %v, want context.Canceled", err)
	}
}

func TestReader_Exists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	mustWrite(t, file, "x")
	reader := NewReader(language.Und)

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"directory", dir, true},
		{"file", file, false},
		{"missing", filepath.Join(dir, "missing"), false},
		{"below a file", filepath.Join(file, "child"), false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := reader.Exists(tt.path); got != tt.want {
				t.Errorf("Exists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestSortEntries_DirectoriesAlwaysFirst(t *testing.T) {
	base := time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC)
	var input []DirectoryEntry
	for i := 0; i < 30; i++ {
		input = append(input, DirectoryEntry{
			Name:         fmt.Sprintf("%c-entry-%02d", 'a'+(i*7)%26, i),
			IsDirectory:  i%3 == 0,
			ModifiedTime: base.Add(time.Duration((i*13)%17) * time.Hour),
		})
	}

	for _, order := range SortOrders() {
		t.Run(string(order), func(t *testing.T) {
			entries := append([]DirectoryEntry(nil), input...)
			SortEntries(entries, order, collate.New(language.Und))

			seenFile := false
			for _, e := range entries {
				if !e.IsDirectory {
					seenFile = true
				} else if seenFile {
					t.Fatalf("directory %q sorted after a file: %v", e.Name, names(entries))
				}
			}
		})
	}
}

func TestSortEntries_StableOnTies(t *testing.T) {
	same := time.Date(2023, 3, 3, 0, 0, 0, 0, time.UTC)
	input := []DirectoryEntry{
		{Name: "c.txt", ModifiedTime: same},
		{Name: "a.txt", ModifiedTime: same},
		{Name: "b.txt", ModifiedTime: same},
	}

	for _, order := range []SortOrder{FolderFirstModifiedAsc, FolderFirstModifiedDesc} {
		entries := append([]DirectoryEntry(nil), input...)
		SortEntries(entries, order, collate.New(language.Und))
		if got, want := names(entries), []string{"c.txt", "a.txt", "b.txt"}; !reflect.DeepEqual(got, want) {
			t.Errorf("%s: SortEntries() = %v, want input order %v", order, got, want)
		}
	}
}

func TestSortEntries_LocaleCollation(t *testing.T) {
	entries := []DirectoryEntry{
		{Name: "zebra"},
		{Name: "Äpfel"},
		{Name: "apple"},
	}
	SortEntries(entries, FolderFirstNameAsc, collate.New(language.German))

	// Byte order would put "Äpfel" last.
	if got, want := names(entries), []string{"Äpfel", "apple", "zebra"}; !reflect.DeepEqual(got, want) {
		t.Errorf("SortEntries() = %v, want %v", got, want)
	}
}

func TestParseLocale(t *testing.T) {
	tests := []struct {
		value string
		want  language.Tag
	}{
		{"ja_JP.UTF-8", language.MustParse("ja-JP")},
		{"de_DE@euro", language.MustParse("de-DE")},
		{"en", language.English},
		{"C", language.Und},
		{"POSIX", language.Und},
		{"", language.Und},
		{"!!", language.Und},
	}
	for _, tt := range tests {
		if got := ParseLocale(tt.value); got != tt.want {
			t.Errorf("ParseLocale(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}
