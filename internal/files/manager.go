package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	dirPermissions  = 0o755
	filePermissions = 0o644
)

// Manager centralizes where the config and ledger files live on disk.
type Manager struct {
	basePath string
}

// NewManager constructs a Manager rooted at the provided directory. If
// basePath is empty, it falls back to ~/.arbeitszeit (or another location
// determined by ResolveBasePath).
func NewManager(basePath string) (*Manager, error) {
	var err error
	if basePath == "" {
		basePath, err = ResolveBasePath()
		if err != nil {
			return nil, err
		}
	}
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, err
	}

	return &Manager{basePath: abs}, nil
}

// BasePath returns the root directory storing config and ledger.
func (m *Manager) BasePath() string {
	return m.basePath
}

// ConfigPath resolves the absolute path to the YAML config file.
func (m *Manager) ConfigPath() string {
	return filepath.Join(m.basePath, "config.yaml")
}

// DefaultLedgerPath resolves where the ledger lives unless the config points
// elsewhere.
func (m *Manager) DefaultLedgerPath() string {
	return filepath.Join(m.basePath, "arbeitszeit.txt")
}

// EnsureBaseDir guarantees the base directory tree exists.
func (m *Manager) EnsureBaseDir() error {
	if m == nil {
		return errors.New("files.Manager is nil")
	}
	if err := os.MkdirAll(m.basePath, dirPermissions); err != nil {
		return fmt.Errorf("create base directory: %w", err)
	}
	return nil
}

// WriteAtomic replaces the file at path with data via a temp file and
// rename, preserving the existing mode. Content always ends with a newline.
func WriteAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}

	temp, err := os.CreateTemp(dir, "arbeitszeit-*")
	if err != nil {
		return err
	}
	defer os.Remove(temp.Name())

	content := string(data)
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}

	if _, err := temp.WriteString(content); err != nil {
		temp.Close()
		return err
	}
	if err := temp.Sync(); err != nil {
		temp.Close()
		return err
	}
	if err := temp.Close(); err != nil {
		return err
	}

	mode := os.FileMode(filePermissions)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode()
	}
	if err := os.Chmod(temp.Name(), mode); err != nil {
		return err
	}

	return os.Rename(temp.Name(), path)
}
