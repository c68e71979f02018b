package scanner

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/spf13/afero"

	"github.com/moyu-x/file-sorter/internal"
)

func newMemFs(t *testing.T, files []string, dirs []string) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	for _, dir := range dirs {
		if err := fs.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create directory: %v", err)
		}
	}
	for _, file := range files {
		if err := afero.WriteFile(fs, file, []byte("test content"), 0644); err != nil {
			t.Fatalf("Failed to create test file: %v", err)
		}
	}
	return fs
}

func TestDirScanner_Scan(t *testing.T) {
	fs := newMemFs(t,
		[]string{"/data/a.txt", "/data/readme", "/data/.gitignore", "/data/sub/nested.txt"},
		[]string{"/data", "/data/sub", "/data/empty"},
	)

	entries, err := NewDirScanner(fs).Scan("/data")
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	got := make(map[string]internal.FileEntry)
	for _, e := range entries {
		got[e.Name] = e
	}

	if len(got) != 5 {
		names := make([]string, 0, len(got))
		for name := range got {
			names = append(names, name)
		}
		sort.Strings(names)
		t.Fatalf("Expected 5 entries, got %d: %v", len(got), names)
	}

	if _, ok := got["nested.txt"]; ok {
		t.Error("Scan should not recurse into subdirectories")
	}

	for _, name := range []string{"a.txt", "readme", ".gitignore"} {
		e, ok := got[name]
		if !ok {
			t.Errorf("entry %s missing", name)
			continue
		}
		if !e.Regular {
			t.Errorf("entry %s should be a regular file", name)
		}
		if e.Path != filepath.Join("/data", name) {
			t.Errorf("entry %s path = %s", name, e.Path)
		}
		if e.Size != int64(len("test content")) {
			t.Errorf("entry %s size = %d", name, e.Size)
		}
	}

	for _, name := range []string{"sub", "empty"} {
		if got[name].Regular {
			t.Errorf("directory %s should not be regular", name)
		}
	}
}

func TestDirScanner_Scan_EmptyDir(t *testing.T) {
	fs := newMemFs(t, nil, []string{"/empty"})

	entries, err := NewDirScanner(fs).Scan("/empty")
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected 0 entries, got %d", len(entries))
	}
}

func TestDirScanner_Scan_NonExistentDir(t *testing.T) {
	_, err := NewDirScanner(afero.NewMemMapFs()).Scan("/non/existent/directory")
	if !errors.Is(err, internal.ErrOpenDirectory) {
		t.Errorf("Expected ErrOpenDirectory, got %v", err)
	}
}

func TestDirScanner_Validate(t *testing.T) {
	fs := newMemFs(t, []string{"/data/file.txt"}, []string{"/data"})
	s := NewDirScanner(fs)

	if err := s.Validate("/data"); err != nil {
		t.Errorf("Validate(dir) error = %v", err)
	}

	err := s.Validate("/missing")
	if !errors.Is(err, internal.ErrNotExist) {
		t.Errorf("Validate(missing) = %v, want ErrNotExist", err)
	}

	err = s.Validate("/data/file.txt")
	if !errors.Is(err, internal.ErrNotDirectory) {
		t.Errorf("Validate(file) = %v, want ErrNotDirectory", err)
	}

	err = s.Validate("")
	if !errors.Is(err, internal.ErrNotExist) {
		t.Errorf("Validate(empty) = %v, want ErrNotExist", err)
	}
}

var errReaddir = errors.New("readdir interrupted")

// brokenDirFs 打开的目录只返回前 keep 个条目并附带读取错误
type brokenDirFs struct {
	afero.Fs
	keep int
}

func (fs brokenDirFs) Open(name string) (afero.File, error) {
	f, err := fs.Fs.Open(name)
	if err != nil {
		return nil, err
	}
	return brokenDir{File: f, keep: fs.keep}, nil
}

type brokenDir struct {
	afero.File
	keep int
}

func (d brokenDir) Readdir(count int) ([]os.FileInfo, error) {
	infos, err := d.File.Readdir(count)
	if err != nil {
		return nil, err
	}
	if len(infos) > d.keep {
		infos = infos[:d.keep]
	}
	return infos, errReaddir
}

func TestDirScanner_Scan_PartialListing(t *testing.T) {
	mem := newMemFs(t, []string{"/data/a.txt", "/data/b.jpg", "/data/c.mp3"}, []string{"/data"})

	entries, err := NewDirScanner(brokenDirFs{Fs: mem, keep: 2}).Scan("/data")
	if err != nil {
		t.Fatalf("Scan() error = %v, want partial listing without error", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries from partial listing, got %d", len(entries))
	}
	for _, e := range entries {
		if !e.Regular || e.Err != nil || filepath.Dir(e.Path) != "/data" {
			t.Errorf("unexpected entry %+v", e)
		}
	}
}

func TestDirScanner_Scan_ListingFailsWithoutEntries(t *testing.T) {
	mem := newMemFs(t, []string{"/data/a.txt"}, []string{"/data"})

	_, err := NewDirScanner(brokenDirFs{Fs: mem, keep: 0}).Scan("/data")
	if !errors.Is(err, internal.ErrOpenDirectory) || !errors.Is(err, errReaddir) {
		t.Errorf("Scan() error = %v, want ErrOpenDirectory wrapping the read error", err)
	}
}

func TestDirScanner_Scan_WithSymlinks(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping symlink test in short mode")
	}

	tempDir := t.TempDir()

	filePath := filepath.Join(tempDir, "file.txt")
	if err := os.WriteFile(filePath, []byte("test content"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	subDir := filepath.Join(tempDir, "sub")
	if err := os.Mkdir(subDir, 0755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	links := map[string]string{
		"link.txt":   filePath,
		"dirlink":    subDir,
		"broken.txt": filepath.Join(tempDir, "gone.txt"),
	}
	for name, target := range links {
		if err := os.Symlink(target, filepath.Join(tempDir, name)); err != nil {
			t.Skipf("Skipping symlink test: %v", err)
		}
	}

	entries, err := NewDirScanner(afero.NewOsFs()).Scan(tempDir)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	got := make(map[string]internal.FileEntry)
	for _, e := range entries {
		got[e.Name] = e
	}

	if e := got["link.txt"]; !e.Regular || e.Err != nil {
		t.Errorf("link to file should resolve to a regular file, got %+v", e)
	}
	if e := got["dirlink"]; e.Regular || e.Err != nil {
		t.Errorf("link to directory should not be regular, got %+v", e)
	}
	if e := got["broken.txt"]; e.Err == nil {
		t.Errorf("broken link should carry an error, got %+v", e)
	}
}
