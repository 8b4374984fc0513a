package listing

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/Prathameshp2025/WrapExplorer/internal/model"
)

func TestListFoldersFirstWithPendingSizes(t *testing.T) {
	tmp := t.TempDir()

	mustWriteSized(t, filepath.Join(tmp, "A", "one.bin"), 200)
	mustWriteSized(t, filepath.Join(tmp, "A", "two.bin"), 100)
	if err := os.MkdirAll(filepath.Join(tmp, "B"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	mustWriteSized(t, filepath.Join(tmp, "f.txt"), 100)

	entries, err := List(tmp)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	if entries[0].Name != "A" || !entries[0].IsFolder() {
		t.Errorf("entries[0] = %q (%v), want folder A", entries[0].Name, entries[0].Kind)
	}
	if entries[1].Name != "B" || !entries[1].IsFolder() {
		t.Errorf("entries[1] = %q (%v), want folder B", entries[1].Name, entries[1].Kind)
	}
	if entries[2].Name != "f.txt" || entries[2].IsFolder() {
		t.Errorf("entries[2] = %q (%v), want file f.txt", entries[2].Name, entries[2].Kind)
	}

	if entries[0].Size != model.SizePending || entries[1].Size != model.SizePending {
		t.Error("folder sizes should be pending")
	}
	if entries[2].Size != 100 {
		t.Errorf("file size = %d, want 100", entries[2].Size)
	}
	if entries[2].TypeLabel != "TXT File" {
		t.Errorf("file type label = %q, want %q", entries[2].TypeLabel, "TXT File")
	}
}

func TestListSkipsHidden(t *testing.T) {
	tmp := t.TempDir()
	mustWriteSized(t, filepath.Join(tmp, ".hidden"), 10)
	mustWriteSized(t, filepath.Join(tmp, "visible.txt"), 10)
	if err := os.MkdirAll(filepath.Join(tmp, ".git"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	entries, err := List(tmp)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Name != "visible.txt" {
		t.Fatalf("expected only visible.txt, got %d entries", len(entries))
	}
}

func TestListNotFound(t *testing.T) {
	_, err := List(filepath.Join(t.TempDir(), "does-not-exist"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListAccessDenied(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits not enforced this way on Windows")
	}
	if os.Geteuid() == 0 {
		t.Skip("running as root, permissions not enforced")
	}

	tmp := t.TempDir()
	locked := filepath.Join(tmp, "locked")
	if err := os.MkdirAll(locked, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.Chmod(locked, 0o000); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	_, err := List(locked)
	if !errors.Is(err, ErrAccessDenied) {
		t.Fatalf("expected ErrAccessDenied, got %v", err)
	}
}

func TestFolders(t *testing.T) {
	entries := []*model.Entry{
		{Name: "a", Kind: model.KindFolder},
		{Name: "b.txt", Kind: model.KindFile},
		{Name: "c", Kind: model.KindFolder},
	}

	folders := Folders(entries)
	if len(folders) != 2 || folders[0].Name != "a" || folders[1].Name != "c" {
		t.Fatalf("Folders returned wrong subset: %v", folders)
	}
}

func mustWriteSized(t *testing.T, path string, size int) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, make([]byte, size), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}
