package files

import (
	"os"
	"path/filepath"
	"testing"
)

func TestManagerPaths(t *testing.T) {
	tmp := t.TempDir()

	mgr, err := NewManager(tmp)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	if got, want := mgr.ConfigPath(), filepath.Join(tmp, "config.yaml"); got != want {
		t.Fatalf("ConfigPath() = %q, want %q", got, want)
	}
	if got, want := mgr.DefaultLedgerPath(), filepath.Join(tmp, "arbeitszeit.txt"); got != want {
		t.Fatalf("DefaultLedgerPath() = %q, want %q", got, want)
	}
}

func TestEnsureBaseDirCreatesTree(t *testing.T) {
	tmp := t.TempDir()
	base := filepath.Join(tmp, "nested", "root")

	mgr, err := NewManager(base)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	if err := mgr.EnsureBaseDir(); err != nil {
		t.Fatalf("EnsureBaseDir: %v", err)
	}

	info, err := os.Stat(base)
	if err != nil {
		t.Fatalf("expected directory %q to exist: %v", base, err)
	}
	if !info.IsDir() {
		t.Fatalf("expected %q to be a directory", base)
	}
}

func TestWriteAtomicReplacesContent(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "ledger.txt")

	if err := WriteAtomic(path, []byte("first")); err != nil {
		t.Fatalf("WriteAtomic first: %v", err)
	}
	if err := WriteAtomic(path, []byte("second")); err != nil {
		t.Fatalf("WriteAtomic second: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != "second\n" {
		t.Fatalf("file contents = %q, want %q", got, "second\n")
	}

	// No temp files may be left behind.
	entries, err := os.ReadDir(tmp)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected only the target file in %q, found %d entries", tmp, len(entries))
	}
}

func TestWriteAtomicPreservesMode(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "ledger.txt")

	if err := os.WriteFile(path, []byte("x\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := WriteAtomic(path, []byte("y")); err != nil {
		t.Fatalf("WriteAtomic: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("mode = %v, want 0600", info.Mode().Perm())
	}
}
